package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/repstreak/internal/contract"
	"github.com/alexanderramin/repstreak/internal/db"
	"github.com/alexanderramin/repstreak/internal/domain"
	"github.com/alexanderramin/repstreak/internal/repository"
)

type trackerService struct {
	state    *domain.TrackerState
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTrackerService(sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		state:    domain.NewTrackerState(),
		sessions: sessions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) RecordSession(ctx context.Context, minutes int, category domain.Category, today domain.Date) (rec domain.SessionRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"minutes":  minutes,
		"category": string(category),
		"date":     today.String(),
	}
	defer func() {
		s.observe(ctx, "record-session", startedAt, fields, err)
	}()

	rec, err = s.record(ctx, minutes, category, today)
	if err != nil {
		return domain.SessionRecord{}, err
	}
	fields["streak"] = s.state.Streak()
	return rec, nil
}

func (s *trackerService) RecordTimedSession(ctx context.Context, seconds int, today domain.Date) (rec domain.SessionRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"seconds": seconds,
		"date":    today.String(),
	}
	defer func() {
		s.observe(ctx, "record-timed-session", startedAt, fields, err)
	}()

	if err = domain.ValidateTimedSeconds(seconds); err != nil {
		return domain.SessionRecord{}, err
	}

	minutes := domain.MinutesFromSeconds(seconds)
	fields["minutes"] = minutes
	rec, err = s.record(ctx, minutes, domain.CategoryTimedWorkout, today)
	if err != nil {
		return domain.SessionRecord{}, err
	}
	fields["streak"] = s.state.Streak()
	return rec, nil
}

// record applies the session to a copy of the state and installs the copy
// only once the journal row is committed.
func (s *trackerService) record(ctx context.Context, minutes int, category domain.Category, today domain.Date) (domain.SessionRecord, error) {
	next := s.state.Clone()
	rec, err := next.RecordSession(minutes, category, today)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, rec)
	})
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("recording session: %w", err)
	}

	s.state = next
	return rec, nil
}

func (s *trackerService) Stats(ctx context.Context) (*contract.StatsResponse, error) {
	byCategory, err := s.sessions.SummaryByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	resp := &contract.StatsResponse{
		TotalSessions:  s.state.TotalSessions(),
		TotalMinutes:   s.state.TotalMinutes(),
		AverageMinutes: s.state.AverageDuration(),
		StreakDays:     s.state.Streak(),
		ByCategory:     byCategory,
	}
	if last, ok := s.state.LastSession(); ok {
		resp.LastSession = &last
	}
	return resp, nil
}

func (s *trackerService) History(ctx context.Context) ([]domain.SessionRecord, error) {
	return s.state.History(), nil
}

func (s *trackerService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"discarded_sessions": s.state.TotalSessions()}
	defer func() {
		s.observe(ctx, "reset", startedAt, fields, err)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).DeleteAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("resetting tracker: %w", err)
	}

	s.state.Reset()
	return nil
}

func (s *trackerService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
