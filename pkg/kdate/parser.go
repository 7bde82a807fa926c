package kdate

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the datetime format extracted notices carry,
// e.g. "2024년 03월 15일 10:00".
const Layout = "2006년 01월 02일 15:04"

const (
	// FallbackDays is how far ahead an unparseable date is pushed.
	FallbackDays = 7

	// EventDuration is the fixed length of every materialized event.
	EventDuration = time.Hour
)

// Resolved is one date entry turned into a concrete event time range.
type Resolved struct {
	Start    time.Time
	End      time.Time
	Fallback bool // true when Start came from the fallback policy, not the input
}

// Resolver parses notice date strings in a fixed timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Seoul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve parses one date string against Layout. On any parse failure it
// substitutes base + FallbackDays instead of returning an error, so a single
// bad date never blocks the rest of a notice. The end time is always
// Start + EventDuration; notices carry no duration information.
func (r *Resolver) Resolve(raw string, base time.Time) Resolved {
	start, err := time.ParseInLocation(Layout, strings.TrimSpace(raw), r.location)
	if err != nil {
		start = base.In(r.location).AddDate(0, 0, FallbackDays)
		return Resolved{Start: start, End: start.Add(EventDuration), Fallback: true}
	}
	return Resolved{Start: start, End: start.Add(EventDuration)}
}
