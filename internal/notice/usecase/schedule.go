package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notice-calendar/internal/model"
	"notice-calendar/internal/notice"
	"notice-calendar/pkg/gcalendar"
)

// Schedule creates one calendar event per date entry, in input order. A date
// that fails to parse gets the fallback start time and never aborts the
// batch; a failed submission aborts the batch at that date. Events created
// before the failure are still returned.
func (uc *implUseCase) Schedule(ctx context.Context, input notice.ScheduleInput) (notice.ScheduleOutput, error) {
	if uc.calendar == nil {
		return notice.ScheduleOutput{}, notice.ErrAuthorizationRequired
	}

	now := time.Now()
	events := make([]model.CreatedEvent, 0, len(input.Record.Dates))

	for _, raw := range input.Record.Dates {
		resolved := uc.resolver.Resolve(raw, now)
		if resolved.Fallback {
			uc.l.Infof(ctx, "schedule: date %q did not parse, substituted %s",
				raw, resolved.Start.Format(time.RFC3339))
		}

		created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     input.Record.Subject,
			Location:    input.Record.Location,
			Description: input.Record.Description,
			StartTime:   resolved.Start,
			EndTime:     resolved.End,
			Timezone:    uc.timezone,
			Reminders:   resolveReminder(input.Record.ReminderTag, resolved.Start),
		})
		if err != nil {
			if errors.Is(err, gcalendar.ErrAuthorizationRequired) {
				return notice.ScheduleOutput{Events: events}, notice.ErrAuthorizationRequired
			}
			return notice.ScheduleOutput{Events: events},
				fmt.Errorf("%w: date %q: %v", notice.ErrEventCreateFailed, raw, err)
		}

		events = append(events, model.CreatedEvent{
			ID:        created.ID,
			HtmlLink:  created.HtmlLink,
			Summary:   created.Summary,
			StartTime: resolved.Start,
			EndTime:   resolved.End,
			Fallback:  resolved.Fallback,
		})
	}

	return notice.ScheduleOutput{Events: events}, nil
}
