package http

import (
	"time"

	"notice-calendar/internal/model"
	"notice-calendar/internal/notice"
)

// --- Request DTOs ---

type analyzeReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (r analyzeReq) toInput() notice.AnalyzeInput {
	return notice.AnalyzeInput{Text: r.Text}
}

// scheduleReq mirrors an extracted event record so clients can correct fields
// before scheduling.
type scheduleReq struct {
	Subject     string   `json:"subject"     binding:"required,min=1,max=255"`
	Dates       []string `json:"dates"       binding:"required,min=1"`
	Location    string   `json:"location"    binding:"max=500"`
	Description string   `json:"description" binding:"max=2000"`
	EventType   string   `json:"event_type"  binding:"max=100"`
	Reminder    string   `json:"reminder"    binding:"max=100"`
}

func (r scheduleReq) toInput() notice.ScheduleInput {
	return notice.ScheduleInput{
		Record: model.EventRecord{
			Subject:     r.Subject,
			Dates:       model.DateList(r.Dates),
			Location:    r.Location,
			Description: r.Description,
			EventType:   r.EventType,
			ReminderTag: model.ReminderTag(r.Reminder).Normalize(),
		},
	}
}

// --- Response DTOs ---

type recordResp struct {
	Subject     string   `json:"subject"`
	Dates       []string `json:"dates"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	EventType   string   `json:"event_type,omitempty"`
	Reminder    string   `json:"reminder"`
}

func newRecordResp(rec model.EventRecord) recordResp {
	return recordResp{
		Subject:     rec.Subject,
		Dates:       []string(rec.Dates),
		Location:    rec.Location,
		Description: rec.Description,
		EventType:   rec.EventType,
		Reminder:    string(rec.ReminderTag),
	}
}

type eventResp struct {
	ID        string    `json:"id"`
	HtmlLink  string    `json:"html_link"`
	Summary   string    `json:"summary"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Fallback  bool      `json:"fallback"`
}

func newEventResps(events []model.CreatedEvent) []eventResp {
	resps := make([]eventResp, len(events))
	for i, ev := range events {
		resps[i] = eventResp{
			ID:        ev.ID,
			HtmlLink:  ev.HtmlLink,
			Summary:   ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Fallback:  ev.Fallback,
		}
	}
	return resps
}

type convertResp struct {
	RecognizedText string      `json:"recognized_text"`
	Record         recordResp  `json:"record"`
	Events         []eventResp `json:"events"`
}

func (h *handler) newConvertResp(out notice.ConvertOutput) convertResp {
	return convertResp{
		RecognizedText: out.RecognizedText,
		Record:         newRecordResp(out.Record),
		Events:         newEventResps(out.Events),
	}
}

type analyzeResp struct {
	Record recordResp `json:"record"`
}

func (h *handler) newAnalyzeResp(out notice.AnalyzeOutput) analyzeResp {
	return analyzeResp{Record: newRecordResp(out.Record)}
}

type scheduleResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newScheduleResp(out notice.ScheduleOutput) scheduleResp {
	return scheduleResp{Events: newEventResps(out.Events)}
}
