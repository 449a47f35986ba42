package cli

import (
	"context"

	"github.com/alexanderramin/repstreak/internal/contract"
)

// SharedState holds context shared across all views via pointer. It is only
// mutated from Update; commands read App and Ctx but never write here.
type SharedState struct {
	App *App
	Ctx context.Context

	// Stats is the latest snapshot delivered by a trackerResultMsg.
	Stats *contract.StatsResponse

	// Busy is set while a tracker call is in flight. Menu actions wait for
	// it to clear so calls never overlap.
	Busy bool

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
