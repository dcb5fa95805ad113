package agent

import (
	"fmt"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Status
// -----------------------------------------------------------------------------

// Status is the execution state of an agent node. The machine is cyclic:
// success and intervention both re-enter running on the next workflow run.
//
//	PENDING -> RUNNING -> {SUCCESS, INTERVENTION} -> RUNNING -> ...
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusRunning      Status = "RUNNING"
	StatusSuccess      Status = "SUCCESS"
	StatusIntervention Status = "INTERVENTION"
)

var statusTransitions = map[Status][]Status{
	StatusPending:      {StatusRunning},
	StatusRunning:      {StatusSuccess, StatusIntervention},
	StatusSuccess:      {StatusRunning},
	StatusIntervention: {StatusRunning},
}

// CanTransitionTo reports whether to is in the legal transition set for s.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a lifecycle transition request outside the
// legal set. The instance is left untouched when it is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// MarkRunning moves the instance into RUNNING. Any prior failure reason is
// cleared on entry.
func (a *Instance) MarkRunning() error {
	if !a.Status.CanTransitionTo(StatusRunning) {
		return &InvalidTransitionError{From: a.Status, To: StatusRunning}
	}
	a.Status = StatusRunning
	a.FailureReason = ""
	return nil
}

// MarkSuccess moves the instance into SUCCESS, recording the run timestamp.
// When progress tracking is in use it is pinned to 100.
func (a *Instance) MarkSuccess(at time.Time) error {
	if !a.Status.CanTransitionTo(StatusSuccess) {
		return &InvalidTransitionError{From: a.Status, To: StatusSuccess}
	}
	a.Status = StatusSuccess
	a.LastRunAt = &at
	a.FailureReason = ""
	if a.Progress != nil {
		done := 100
		a.Progress = &done
	}
	return nil
}

// MarkIntervention moves the instance into INTERVENTION. The reason is
// required; it is the only state where a failure reason is meaningful.
func (a *Instance) MarkIntervention(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("intervention requires a non-empty reason")
	}
	if !a.Status.CanTransitionTo(StatusIntervention) {
		return &InvalidTransitionError{From: a.Status, To: StatusIntervention}
	}
	a.Status = StatusIntervention
	a.FailureReason = reason
	return nil
}

// SetProgress records execution progress. Progress is only meaningful while
// the instance is RUNNING.
func (a *Instance) SetProgress(pct int) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("progress must be within 0..100, got %d", pct)
	}
	if a.Status != StatusRunning {
		return fmt.Errorf("progress is only tracked while running, status is %s", a.Status)
	}
	a.Progress = &pct
	return nil
}

// SetSummary records the short human-readable status line shown while the
// instance is RUNNING.
func (a *Instance) SetSummary(summary string) {
	a.Summary = summary
}
