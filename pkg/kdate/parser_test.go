package kdate_test

import (
	"testing"
	"time"

	"notice-calendar/pkg/kdate"
)

func TestNewResolver(t *testing.T) {
	_, err := kdate.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = kdate.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	resolver, _ := kdate.NewResolver("Asia/Seoul")
	seoul := resolver.Location()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, seoul)

	tests := []struct {
		name         string
		raw          string
		wantStart    time.Time
		wantFallback bool
	}{
		{
			name:      "Well-formed datetime",
			raw:       "2024년 03월 15일 10:00",
			wantStart: time.Date(2024, 3, 15, 10, 0, 0, 0, seoul),
		},
		{
			name:      "Leading and trailing whitespace",
			raw:       "  2024년 01월 01일 09:00  ",
			wantStart: time.Date(2024, 1, 1, 9, 0, 0, 0, seoul),
		},
		{
			name:         "English date falls back",
			raw:          "March 15",
			wantStart:    base.AddDate(0, 0, 7),
			wantFallback: true,
		},
		{
			name:         "Empty string falls back",
			raw:          "",
			wantStart:    base.AddDate(0, 0, 7),
			wantFallback: true,
		},
		{
			name:         "Out-of-range month falls back",
			raw:          "2024년 13월 01일 10:00",
			wantStart:    base.AddDate(0, 0, 7),
			wantFallback: true,
		},
		{
			name:         "Missing time falls back",
			raw:          "2024년 03월 15일",
			wantStart:    base.AddDate(0, 0, 7),
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.raw, base)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Resolve() start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantStart.Add(time.Hour)) {
				t.Errorf("Resolve() end = %v, want start + 1h", got.End)
			}
			if got.Fallback != tt.wantFallback {
				t.Errorf("Resolve() fallback = %v, want %v", got.Fallback, tt.wantFallback)
			}
		})
	}
}

func TestResolveEndIsOneHourAfterStart(t *testing.T) {
	resolver, _ := kdate.NewResolver("Asia/Seoul")

	got := resolver.Resolve("2024년 03월 15일 10:00", time.Now())
	want := time.Date(2024, 3, 15, 11, 0, 0, 0, resolver.Location())
	if !got.End.Equal(want) {
		t.Errorf("Resolve() end = %v, want %v", got.End, want)
	}
}
