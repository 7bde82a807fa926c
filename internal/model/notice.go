package model

import (
	"encoding/json"
	"time"
)

// ReminderTag selects one of the reminder policies the extraction prompt is
// allowed to emit. Values are the Korean wire literals.
type ReminderTag string

const (
	// ReminderTwoDaysBefore reminds 2 days before the event start.
	ReminderTwoDaysBefore ReminderTag = "이벤트 2일 전"

	// ReminderDayOfMorning reminds at 08:45 on the event day.
	ReminderDayOfMorning ReminderTag = "당일 오전 8시 45분"

	// ReminderDefault keeps the calendar provider's default reminders.
	ReminderDefault ReminderTag = "기본 알림"
)

// Normalize maps unknown or missing tags to ReminderDefault.
func (t ReminderTag) Normalize() ReminderTag {
	switch t {
	case ReminderTwoDaysBefore, ReminderDayOfMorning, ReminderDefault:
		return t
	default:
		return ReminderDefault
	}
}

// DateList is an ordered list of raw date strings. The extraction model may
// return a single string instead of an array; both decode to a DateList.
type DateList []string

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (d *DateList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*d = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*d = DateList{one}
	return nil
}

// EventRecord is the structured result of extracting event fields from the
// recognized text of one notice. JSON keys follow the Korean extraction
// contract.
type EventRecord struct {
	Subject     string      `json:"주제"`
	Dates       DateList    `json:"일시"`
	Location    string      `json:"위치"`
	Description string      `json:"설명"`
	EventType   string      `json:"이벤트_유형,omitempty"`
	ReminderTag ReminderTag `json:"알림_설정"`
}

// CreatedEvent is the handle returned by the calendar provider for one
// materialized event.
type CreatedEvent struct {
	ID        string
	HtmlLink  string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Fallback  bool // the start time came from the date-parse fallback policy
}
