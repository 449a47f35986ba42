package service

import "github.com/alexanderramin/repstreak/internal/app"

// TrackerService owns the process-wide TrackerState. Calls are expected to
// arrive one at a time from a single interaction loop.
type TrackerService interface {
	app.RecordSessionUseCase
	app.TimedSessionUseCase
	app.StatsUseCase
	app.HistoryUseCase
	app.ResetUseCase
}
