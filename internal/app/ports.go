package app

import (
	"context"

	"github.com/alexanderramin/repstreak/internal/domain"
)

type RecordSessionUseCase interface {
	RecordSession(ctx context.Context, minutes int, category domain.Category, today domain.Date) (domain.SessionRecord, error)
}

type TimedSessionUseCase interface {
	RecordTimedSession(ctx context.Context, seconds int, today domain.Date) (domain.SessionRecord, error)
}

type StatsUseCase interface {
	Stats(ctx context.Context) (*StatsResponse, error)
}

type HistoryUseCase interface {
	History(ctx context.Context) ([]domain.SessionRecord, error)
}

type ResetUseCase interface {
	Reset(ctx context.Context) error
}
