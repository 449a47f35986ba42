package repository

import (
	"context"

	"github.com/alexanderramin/repstreak/internal/domain"
)

// SessionRepo is the session journal: an append-only mirror of the tracker
// history used for aggregate queries.
type SessionRepo interface {
	Create(ctx context.Context, rec domain.SessionRecord) error
	SummaryByCategory(ctx context.Context) ([]domain.CategorySummary, error)
	DeleteAll(ctx context.Context) error
}
