package testutil

import (
	"time"

	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/google/uuid"
)

// Day returns a fixed reference date shifted by offset days.
func Day(offset int) domain.Date {
	return domain.NewDate(2026, time.January, 5).AddDays(offset)
}

// RecordOption customizes a test SessionRecord.
type RecordOption func(*domain.SessionRecord)

func WithCategory(c domain.Category) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Category = c
	}
}

func WithDate(d domain.Date) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Date = d
	}
}

// NewTestRecord builds a record directly, bypassing TrackerState.
func NewTestRecord(minutes int, opts ...RecordOption) domain.SessionRecord {
	r := domain.SessionRecord{
		ID:              uuid.New().String(),
		Date:            Day(0),
		DurationMinutes: minutes,
		Category:        domain.CategoryCardio,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// FixedClock returns a clock that always reports the given date at noon UTC.
func FixedClock(d domain.Date) func() time.Time {
	return func() time.Time {
		return d.Time().Add(12 * time.Hour)
	}
}
