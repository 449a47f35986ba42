package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/alexanderramin/repstreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestTrackerService_ObservesUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestTracker(t, obs)
	ctx := context.Background()

	_, err := svc.RecordSession(ctx, 30, domain.CategoryCardio, testutil.Day(0))
	require.NoError(t, err)
	_, err = svc.RecordSession(ctx, 0, domain.CategoryCardio, testutil.Day(0))
	require.Error(t, err)
	_, err = svc.RecordTimedSession(ctx, 125, testutil.Day(1))
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	require.Len(t, obs.events, 4)

	assert.Equal(t, "record-session", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].Fields["streak"])

	assert.Equal(t, "record-session", obs.events[1].Name)
	assert.False(t, obs.events[1].Success)
	assert.True(t, errors.Is(obs.events[1].Err, domain.ErrInvalidDuration))

	assert.Equal(t, "record-timed-session", obs.events[2].Name)
	assert.Equal(t, 2, obs.events[2].Fields["minutes"])
	assert.Equal(t, 2, obs.events[2].Fields["streak"])

	assert.Equal(t, "reset", obs.events[3].Name)
	assert.Equal(t, 2, obs.events[3].Fields["discarded_sessions"])
}

func TestLogUseCaseObserver_WritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestTracker(t, NewLogUseCaseObserver(&buf))
	ctx := context.Background()

	_, err := svc.RecordSession(ctx, 30, domain.CategoryCardio, testutil.Day(0))
	require.NoError(t, err)
	_, _ = svc.RecordSession(ctx, -1, domain.CategoryCardio, testutil.Day(0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], "use_case=record-session")
	assert.Contains(t, lines[0], "category=Cardio")
	assert.Contains(t, lines[0], "minutes=30")
	assert.Contains(t, lines[1], "level=ERROR")
	assert.Contains(t, lines[1], "invalid duration")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
