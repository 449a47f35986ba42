package domain

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertConsistent(t *testing.T, s *TrackerState) {
	t.Helper()
	history := s.History()
	sum := 0
	for _, r := range history {
		sum += r.DurationMinutes
	}
	assert.Equal(t, len(history), s.TotalSessions())
	assert.Equal(t, sum, s.TotalMinutes())

	_, hasLast := s.LastSessionDate()
	assert.Equal(t, len(history) == 0, s.Streak() == 0)
	assert.Equal(t, len(history) == 0, !hasLast)
}

func TestTrackerState_Scenario(t *testing.T) {
	day1 := NewDate(2026, time.January, 5)
	s := NewTrackerState()

	_, err := s.RecordSession(30, CategoryCardio, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalSessions())
	assert.Equal(t, 30, s.TotalMinutes())
	assert.Equal(t, 1, s.Streak())

	_, err = s.RecordSession(20, CategoryCardio, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak())
	assert.Equal(t, 50, s.TotalMinutes())

	_, err = s.RecordSession(15, CategoryCardio, day1.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Streak())

	_, err = s.RecordSession(10, CategoryCardio, day1.AddDays(4))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak())

	assert.Equal(t, 4, s.TotalSessions())
	assert.Equal(t, 75, s.TotalMinutes())
	assert.Equal(t, 18, s.AverageDuration())
	assertConsistent(t, s)
}

func TestTrackerState_RecordSession_ReturnsAppendedRecord(t *testing.T) {
	day := NewDate(2026, time.February, 9)
	s := NewTrackerState()

	rec, err := s.RecordSession(45, CategoryUpperBody, day)
	require.NoError(t, err)
	assert.Equal(t, day, rec.Date)
	assert.Equal(t, 45, rec.DurationMinutes)
	assert.Equal(t, CategoryUpperBody, rec.Category)

	last, ok := s.LastSession()
	require.True(t, ok)
	assert.Equal(t, rec, last)

	lastDate, ok := s.LastSessionDate()
	require.True(t, ok)
	assert.Equal(t, day, lastDate)
}

func TestTrackerState_RecordSession_InvalidDurationLeavesStateUntouched(t *testing.T) {
	day := NewDate(2026, time.February, 9)
	s := NewTrackerState()
	_, err := s.RecordSession(30, CategoryCardio, day)
	require.NoError(t, err)
	before := s.Clone()

	_, err = s.RecordSession(0, CategoryCardio, day.AddDays(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	assert.Empty(t, cmp.Diff(before, s, cmp.AllowUnexported(TrackerState{})))
}

func TestTrackerState_RecordSession_RejectsOversizedDuration(t *testing.T) {
	day := NewDate(2026, time.February, 9)
	s := NewTrackerState()
	_, err := s.RecordSession(MaxSessionMinutes, CategoryCardio, day)
	require.NoError(t, err, "a full day is accepted")
	before := s.Clone()

	for _, minutes := range []int{MaxSessionMinutes + 1, math.MaxInt} {
		_, err = s.RecordSession(minutes, CategoryCardio, day)
		assert.ErrorIs(t, err, ErrInvalidDuration, "minutes %d", minutes)
	}

	assert.Empty(t, cmp.Diff(before, s, cmp.AllowUnexported(TrackerState{})))
	assertConsistent(t, s)
}

func TestTrackerState_RecordSession_RejectsTotalOverflow(t *testing.T) {
	day := NewDate(2026, time.February, 9)
	s := NewTrackerState()
	_, err := s.RecordSession(10, CategoryCardio, day)
	require.NoError(t, err)
	s.totalMinutes = math.MaxInt - 5
	before := s.Clone()

	_, err = s.RecordSession(6, CategoryCardio, day)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Empty(t, cmp.Diff(before, s, cmp.AllowUnexported(TrackerState{})))

	_, err = s.RecordSession(5, CategoryCardio, day)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, s.TotalMinutes())
}

func TestTrackerState_FirstSessionAlwaysStartsStreak(t *testing.T) {
	for _, day := range []Date{NewDate(1999, time.December, 31), NewDate(2026, time.July, 1)} {
		s := NewTrackerState()
		_, err := s.RecordSession(5, CategoryGeneral, day)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Streak())
	}
}

func TestTrackerState_ConsecutiveDaysIncrement(t *testing.T) {
	start := NewDate(2026, time.March, 28)
	s := NewTrackerState()
	for i := 0; i < 10; i++ {
		_, err := s.RecordSession(20, CategoryFullBody, start.AddDays(i))
		require.NoError(t, err)
		assert.Equal(t, i+1, s.Streak())
	}
}

func TestTrackerState_AverageDuration(t *testing.T) {
	s := NewTrackerState()
	assert.Equal(t, 0, s.AverageDuration(), "no sessions must not divide by zero")

	day := NewDate(2026, time.May, 1)
	_, _ = s.RecordSession(10, CategoryCardio, day)
	_, _ = s.RecordSession(15, CategoryCardio, day)
	_, _ = s.RecordSession(16, CategoryCardio, day)
	assert.Equal(t, 13, s.AverageDuration(), "41/3 truncates")
}

func TestTrackerState_ResetMatchesFreshState(t *testing.T) {
	day := NewDate(2026, time.May, 1)
	s := NewTrackerState()
	for i := 0; i < 5; i++ {
		_, err := s.RecordSession(10+i, CategoryLowerBody, day.AddDays(i))
		require.NoError(t, err)
	}

	s.Reset()
	assert.Empty(t, cmp.Diff(NewTrackerState(), s, cmp.AllowUnexported(TrackerState{})))
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.AverageDuration())
	_, ok := s.LastSession()
	assert.False(t, ok)

	s.Reset()
	assert.Empty(t, cmp.Diff(NewTrackerState(), s, cmp.AllowUnexported(TrackerState{})), "reset is idempotent")

	_, err := s.RecordSession(30, CategoryCardio, day.AddDays(10))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak())
}

func TestTrackerState_HistoryIsACopy(t *testing.T) {
	s := NewTrackerState()
	_, _ = s.RecordSession(30, CategoryCardio, NewDate(2026, time.May, 1))

	h := s.History()
	h[0].DurationMinutes = 999
	assert.Equal(t, 30, s.History()[0].DurationMinutes)
}

func TestTrackerState_CloneIsIndependent(t *testing.T) {
	day := NewDate(2026, time.May, 1)
	s := NewTrackerState()
	_, _ = s.RecordSession(30, CategoryCardio, day)

	c := s.Clone()
	_, _ = c.RecordSession(20, CategoryCardio, day.AddDays(1))

	assert.Equal(t, 1, s.TotalSessions())
	assert.Equal(t, 1, s.Streak())
	assert.Equal(t, 2, c.TotalSessions())
	assert.Equal(t, 2, c.Streak())
}

// TestTrackerState_Invariants_RandomSequences checks the totals and streak
// laws over random recording sequences.
func TestTrackerState_Invariants_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		s := NewTrackerState()
		day := NewDate(2026, time.January, 1)
		var prev *Date
		prevStreak := 0
		steps := rng.Intn(30) + 1

		for step := 0; step < steps; step++ {
			// -1: clock skew, 0: same day, 1: next day, 2+: gap
			day = day.AddDays(rng.Intn(5) - 1)
			minutes := rng.Intn(120) + 1

			_, err := s.RecordSession(minutes, CategoryForChoice(rng.Intn(6)), day)
			require.NoError(t, err)

			switch {
			case prev == nil:
				assert.Equal(t, 1, s.Streak(), "trial %d step %d", trial, step)
			case day.Equal(*prev):
				assert.Equal(t, prevStreak, s.Streak(), "trial %d step %d", trial, step)
			case day.Equal(prev.AddDays(1)):
				assert.Equal(t, prevStreak+1, s.Streak(), "trial %d step %d", trial, step)
			default:
				assert.Equal(t, 1, s.Streak(), "trial %d step %d", trial, step)
			}

			d := day
			prev = &d
			prevStreak = s.Streak()
			assertConsistent(t, s)
		}
	}
}
