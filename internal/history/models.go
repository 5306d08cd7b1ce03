package history

import "time"

// Tool names the assetkit command that produced a run.
type Tool string

const (
	ToolStrip Tool = "strip"
	ToolVocab Tool = "vocab"
)

// RunStatus is the terminal state of a run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	// RunPartial marks a strip batch where some files were missing or failed.
	RunPartial RunStatus = "partial"
	RunFailed  RunStatus = "failed"
)

// Run is one invocation of a tool.
type Run struct {
	ID         string
	Tool       Tool
	Status     RunStatus
	Summary    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is the wall time of a finished run, or zero while running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunItem is the per-file outcome attached to a run.
type RunItem struct {
	RunID   string
	Name    string
	Status  string
	Message string
}

// ListFilter narrows List results. Zero values mean no restriction.
type ListFilter struct {
	Tool  Tool
	Limit int
}
