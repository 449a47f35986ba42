package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/repstreak/internal/db"
	"github.com/alexanderramin/repstreak/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over a DBTX.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a repo bound to a database or transaction.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, rec domain.SessionRecord) error {
	query := `INSERT INTO session_records (id, session_date, duration_min, category, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Date.String(),
		rec.DurationMinutes,
		string(rec.Category),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting session record: %w", err)
	}
	return nil
}

// SummaryByCategory totals sessions and minutes per category, largest
// minute totals first.
func (r *SQLiteSessionRepo) SummaryByCategory(ctx context.Context) ([]domain.CategorySummary, error) {
	query := `SELECT category, COUNT(*), SUM(duration_min)
		FROM session_records
		GROUP BY category
		ORDER BY SUM(duration_min) DESC, category`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing sessions by category: %w", err)
	}
	defer rows.Close()

	var out []domain.CategorySummary
	for rows.Next() {
		var s domain.CategorySummary
		var category string
		if err := rows.Scan(&category, &s.Sessions, &s.Minutes); err != nil {
			return nil, fmt.Errorf("scanning category summary: %w", err)
		}
		s.Category = domain.Category(category)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category summaries: %w", err)
	}
	return out, nil
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_records`); err != nil {
		return fmt.Errorf("deleting session records: %w", err)
	}
	return nil
}
