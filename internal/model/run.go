package model

import "time"

// RunStatus tracks the lifecycle of a stored extraction run.
type RunStatus string

const (
	RunQueued  RunStatus = "queued"
	RunRunning RunStatus = "running"
	RunDone    RunStatus = "done"
	RunFailed  RunStatus = "failed"
)

// Run is one persisted extraction invocation.
type Run struct {
	ID        string            `json:"id"`
	WellName  string            `json:"well_name"`
	Status    RunStatus         `json:"status"`
	Result    *WellExtraction   `json:"result,omitempty"`
	Report    *ValidationReport `json:"report,omitempty"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
