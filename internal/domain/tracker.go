package domain

import (
	"fmt"
	"math"
)

// TrackerState holds the running totals, streak and ordered history of
// recorded sessions. The zero value is an empty tracker.
//
// Totals are kept in step with history: TotalSessions == len(History()) and
// TotalMinutes is the sum of every record's duration.
type TrackerState struct {
	totalSessions   int
	totalMinutes    int
	streak          int
	lastSessionDate *Date
	history         []SessionRecord
}

// NewTrackerState returns an empty tracker.
func NewTrackerState() *TrackerState {
	return &TrackerState{}
}

// RecordSession logs a session of the given length on today and returns the
// created record. A duration outside 1..MaxSessionMinutes, or one that would
// overflow TotalMinutes, fails with ErrInvalidDuration and leaves the state
// untouched.
func (s *TrackerState) RecordSession(minutes int, category Category, today Date) (SessionRecord, error) {
	rec, err := NewSessionRecord(today, minutes, category)
	if err != nil {
		return SessionRecord{}, err
	}
	if s.totalMinutes > math.MaxInt-minutes {
		return SessionRecord{}, fmt.Errorf("%w: total minutes would overflow", ErrInvalidDuration)
	}

	s.totalSessions++
	s.totalMinutes += minutes
	s.streak = ComputeStreak(s.lastSessionDate, today, s.streak)
	last := today
	s.lastSessionDate = &last
	s.history = append(s.history, rec)
	return rec, nil
}

// AverageDuration returns the mean session length in whole minutes, or 0
// when nothing has been recorded.
func (s *TrackerState) AverageDuration() int {
	if s.totalSessions == 0 {
		return 0
	}
	return s.totalMinutes / s.totalSessions
}

// Reset discards every session and returns the tracker to its empty state.
func (s *TrackerState) Reset() {
	s.totalSessions = 0
	s.totalMinutes = 0
	s.streak = 0
	s.lastSessionDate = nil
	s.history = nil
}

func (s *TrackerState) TotalSessions() int { return s.totalSessions }
func (s *TrackerState) TotalMinutes() int  { return s.totalMinutes }
func (s *TrackerState) Streak() int        { return s.streak }

// LastSessionDate reports the date of the most recent session, if any.
func (s *TrackerState) LastSessionDate() (Date, bool) {
	if s.lastSessionDate == nil {
		return Date{}, false
	}
	return *s.lastSessionDate, true
}

// LastSession returns the most recently recorded session, if any.
func (s *TrackerState) LastSession() (SessionRecord, bool) {
	if len(s.history) == 0 {
		return SessionRecord{}, false
	}
	return s.history[len(s.history)-1], true
}

// History returns a copy of the recorded sessions in recording order.
func (s *TrackerState) History() []SessionRecord {
	out := make([]SessionRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Clone returns an independent copy of the tracker.
func (s *TrackerState) Clone() *TrackerState {
	c := &TrackerState{
		totalSessions: s.totalSessions,
		totalMinutes:  s.totalMinutes,
		streak:        s.streak,
	}
	if s.lastSessionDate != nil {
		d := *s.lastSessionDate
		c.lastSessionDate = &d
	}
	if len(s.history) > 0 {
		c.history = s.History()
	}
	return c
}
