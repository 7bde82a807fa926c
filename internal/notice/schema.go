package notice

import (
	"fmt"
	"strings"

	"notice-calendar/internal/model"
)

// ExtractionSchema is the versioned contract between the pipeline and the
// language model: which fields to extract, under which JSON keys, and which
// reminder tags are legal. The orchestration core depends on the schema
// value, never on prompt wording.
type ExtractionSchema struct {
	Name    string
	Version int

	SubjectKey     string
	DatesKey       string
	LocationKey    string
	DescriptionKey string
	EventTypeKey   string
	ReminderKey    string

	// DateLayout is the human-readable datetime format dates must use.
	DateLayout string

	ReminderTags []model.ReminderTag
}

// DefaultExtractionSchema returns v1 of the notice extraction contract.
func DefaultExtractionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:           "notice-event",
		Version:        1,
		SubjectKey:     "주제",
		DatesKey:       "일시",
		LocationKey:    "위치",
		DescriptionKey: "설명",
		EventTypeKey:   "이벤트_유형",
		ReminderKey:    "알림_설정",
		DateLayout:     "YYYY년 MM월 DD일 HH:MM",
		ReminderTags: []model.ReminderTag{
			model.ReminderTwoDaysBefore,
			model.ReminderDayOfMorning,
			model.ReminderDefault,
		},
	}
}

// SystemInstruction renders the schema into the system prompt sent to the
// language model. currentYear anchors dates the notice states without a year.
func (s ExtractionSchema) SystemInstruction(currentYear int) string {
	var sb strings.Builder

	sb.WriteString("다음 텍스트에서 이벤트 정보를 추출해주세요. JSON 형식으로 다음 정보를 반환해주세요:\n\n")
	sb.WriteString(fmt.Sprintf("1. %s: 이벤트의 주제 또는 제목\n", s.SubjectKey))
	sb.WriteString(fmt.Sprintf("2. %s: '%s' 형식으로 제공 (여러 개 가능, 배열로 반환)\n", s.DatesKey, s.DateLayout))
	sb.WriteString(fmt.Sprintf("3. %s: 이벤트 장소 (구체적인 주소나 장소명 포함)\n", s.LocationKey))
	sb.WriteString(fmt.Sprintf("4. %s: 이벤트에 대한 간단한 설명\n", s.DescriptionKey))
	sb.WriteString(fmt.Sprintf("5. %s: '신청', '참여', '참석' 중 하나 (해당되는 경우)\n", s.EventTypeKey))
	sb.WriteString(fmt.Sprintf("6. %s:\n", s.ReminderKey))
	sb.WriteString(fmt.Sprintf("   - '신청' 관련 내용이면 %q\n", string(model.ReminderTwoDaysBefore)))
	sb.WriteString(fmt.Sprintf("   - '참여' 또는 '참석' 관련 내용이면 %q\n", string(model.ReminderDayOfMorning)))
	sb.WriteString(fmt.Sprintf("   - 그 외의 경우 %q\n\n", string(model.ReminderDefault)))
	sb.WriteString(fmt.Sprintf("현재 연도(%d년)를 기준으로 정보를 추출하세요. JSON만 반환하고 다른 텍스트는 포함하지 마세요.", currentYear))

	return sb.String()
}
