package gcalendar

import "time"

// ReminderOverride is one explicit reminder attached to an event.
type ReminderOverride struct {
	Method  string // "popup" or "email"
	Minutes int    // lead time before event start
}

// ReminderSpec selects between the provider's default reminder behavior and
// explicit overrides.
type ReminderSpec struct {
	UseDefault bool
	Overrides  []ReminderOverride
}

// DefaultReminders is the spec for events that keep the calendar's own
// reminder settings.
func DefaultReminders() ReminderSpec {
	return ReminderSpec{UseDefault: true}
}

// PopupReminder is a spec with a single popup override at the given lead time.
func PopupReminder(minutes int) ReminderSpec {
	return ReminderSpec{
		Overrides: []ReminderOverride{{Method: "popup", Minutes: minutes}},
	}
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Location    string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Seoul"
	Reminders   ReminderSpec
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Location    string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
