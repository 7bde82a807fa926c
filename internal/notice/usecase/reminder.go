package usecase

import (
	"time"

	"notice-calendar/internal/model"
	"notice-calendar/pkg/gcalendar"
)

const (
	twoDaysMinutes = 2 * 24 * 60

	dayOfReminderHour   = 8
	dayOfReminderMinute = 45
)

// resolveReminder maps a reminder tag to the concrete reminder block for one
// event. Matching is exact; anything unrecognized keeps the calendar's
// default reminders.
func resolveReminder(tag model.ReminderTag, start time.Time) gcalendar.ReminderSpec {
	switch tag {
	case model.ReminderTwoDaysBefore:
		return gcalendar.PopupReminder(twoDaysMinutes)

	case model.ReminderDayOfMorning:
		anchor := time.Date(start.Year(), start.Month(), start.Day(),
			dayOfReminderHour, dayOfReminderMinute, 0, 0, start.Location())
		minutes := int(anchor.Sub(start).Minutes())
		// Events starting at or after 08:45 get a reminder at start time,
		// never a negative lead.
		if minutes < 0 {
			minutes = 0
		}
		return gcalendar.PopupReminder(minutes)

	default:
		return gcalendar.DefaultReminders()
	}
}
