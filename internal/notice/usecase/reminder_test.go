package usecase

import (
	"testing"
	"time"

	"notice-calendar/internal/model"
)

func TestResolveReminderTwoDaysBefore(t *testing.T) {
	starts := []time.Time{
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
	}
	for _, start := range starts {
		spec := resolveReminder(model.ReminderTwoDaysBefore, start)
		if spec.UseDefault {
			t.Fatalf("UseDefault = true for explicit override")
		}
		if len(spec.Overrides) != 1 || spec.Overrides[0].Minutes != 2880 {
			t.Errorf("start %v: overrides = %+v, want single 2880-minute popup", start, spec.Overrides)
		}
	}
}

func TestResolveReminderDayOfMorning(t *testing.T) {
	tests := []struct {
		name        string
		start       time.Time
		wantMinutes int
	}{
		{
			name:        "Start after 08:45 clamps to zero",
			start:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			wantMinutes: 0,
		},
		{
			name:        "Start before 08:45 gets positive lead",
			start:       time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC),
			wantMinutes: 105,
		},
		{
			name:        "Start exactly at 08:45",
			start:       time.Date(2024, 3, 15, 8, 45, 0, 0, time.UTC),
			wantMinutes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := resolveReminder(model.ReminderDayOfMorning, tt.start)
			if spec.UseDefault {
				t.Fatalf("UseDefault = true for explicit override")
			}
			if len(spec.Overrides) != 1 {
				t.Fatalf("overrides = %+v, want exactly one", spec.Overrides)
			}
			if spec.Overrides[0].Minutes != tt.wantMinutes {
				t.Errorf("minutes = %d, want %d", spec.Overrides[0].Minutes, tt.wantMinutes)
			}
			if spec.Overrides[0].Method != "popup" {
				t.Errorf("method = %q, want popup", spec.Overrides[0].Method)
			}
		})
	}
}

func TestResolveReminderDefault(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	for _, tag := range []model.ReminderTag{model.ReminderDefault, "", "알 수 없는 태그"} {
		spec := resolveReminder(tag, start)
		if !spec.UseDefault {
			t.Errorf("tag %q: UseDefault = false, want true", tag)
		}
		if len(spec.Overrides) != 0 {
			t.Errorf("tag %q: overrides = %+v, want none", tag, spec.Overrides)
		}
	}
}
