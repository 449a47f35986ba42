package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryUpperBody    Category = "Upper Body"
	CategoryLowerBody    Category = "Lower Body"
	CategoryCardio       Category = "Cardio"
	CategoryFullBody     Category = "Full Body"
	CategoryTimedWorkout Category = "Timed Workout"
	CategoryGeneral      Category = "General"
)

// ManualCategories lists the categories offered when logging a session by
// hand, in menu order.
var ManualCategories = []Category{
	CategoryUpperBody,
	CategoryLowerBody,
	CategoryCardio,
	CategoryFullBody,
}

// CategoryForChoice maps a 1-based menu choice onto ManualCategories.
// Anything out of range falls back to CategoryGeneral.
func CategoryForChoice(choice int) Category {
	if choice < 1 || choice > len(ManualCategories) {
		return CategoryGeneral
	}
	return ManualCategories[choice-1]
}

// SessionRecord is one completed, logged activity. Records are never
// modified after creation.
type SessionRecord struct {
	ID              string
	Date            Date
	DurationMinutes int
	Category        Category
}

// MaxSessionMinutes caps a single session at one day.
const MaxSessionMinutes = 24 * 60

// MaxTimedSeconds is MaxSessionMinutes in seconds.
const MaxTimedSeconds = MaxSessionMinutes * 60

// ValidateMinutes accepts 1..MaxSessionMinutes.
func ValidateMinutes(minutes int) error {
	if minutes < 1 || minutes > MaxSessionMinutes {
		return fmt.Errorf("%w: %d minutes (must be 1-%d)", ErrInvalidDuration, minutes, MaxSessionMinutes)
	}
	return nil
}

// ValidateTimedSeconds accepts 1..MaxTimedSeconds.
func ValidateTimedSeconds(seconds int) error {
	if seconds < 1 || seconds > MaxTimedSeconds {
		return fmt.Errorf("%w: %d seconds (must be 1-%d)", ErrInvalidDuration, seconds, MaxTimedSeconds)
	}
	return nil
}

// NewSessionRecord builds a record, rejecting durations outside
// 1..MaxSessionMinutes.
func NewSessionRecord(date Date, minutes int, category Category) (SessionRecord, error) {
	if err := ValidateMinutes(minutes); err != nil {
		return SessionRecord{}, err
	}
	return SessionRecord{
		ID:              uuid.New().String(),
		Date:            date,
		DurationMinutes: minutes,
		Category:        category,
	}, nil
}

// CategorySummary aggregates sessions recorded under one category.
type CategorySummary struct {
	Category Category
	Sessions int
	Minutes  int
}
