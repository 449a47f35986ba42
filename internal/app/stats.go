package app

import "github.com/alexanderramin/repstreak/internal/domain"

// StatsResponse is the snapshot shown by the stats view and the menu header.
type StatsResponse struct {
	TotalSessions  int
	TotalMinutes   int
	AverageMinutes int
	StreakDays     int
	LastSession    *domain.SessionRecord
	ByCategory     []domain.CategorySummary
}

// HasSessions reports whether anything has been recorded.
func (r *StatsResponse) HasSessions() bool {
	return r != nil && r.TotalSessions > 0
}
