package bodytext

import "context"

// RunService persists completed batch runs for audit and history.
type RunService interface {
	// SaveRun stores a finished run and all of its rows atomically.
	// Assigns ID and CreatedAt when unset.
	SaveRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its rows in position order.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves recent runs, newest first, without their rows.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
