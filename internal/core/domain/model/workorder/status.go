package workorder

import (
	"fmt"

	"ostrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions so orders follow
// the production workflow.
//
// State transitions:
//
//	Created ────────────┐
//	InProgress ──report──> PendingReview ──approve──> InProgress(next) / Finalized
//	Reproved ───────────┘        │
//	Paused ─────────────┘        └──────reject──────> Reproved
//
//	InProgress ──sweep──> Paused
//	any ──force finalize──> Finalized
//
// Finalized is absorbing: no report or validation is accepted afterwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the status of an order registered by planning before any
	// sector has touched it.
	Created

	// InProgress indicates the order sits with its current routing sector.
	InProgress

	// PendingReview indicates a sector reported production and the report
	// awaits the planning decision.
	PendingReview

	// Reproved indicates planning rejected the most recent production report.
	Reproved

	// Paused indicates the automatic sweep stopped the order mid-production.
	Paused

	// Finalized indicates the order completed its routing or was closed by
	// planning. This is the terminal state.
	Finalized
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Created:       "Created",
		InProgress:    "InProgress",
		PendingReview: "PendingReview",
		Reproved:      "Reproved",
		Paused:        "Paused",
		Finalized:     "Finalized",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:       "Created",
		InProgress:    "InProgress",
		PendingReview: "PendingReview",
		Reproved:      "Reproved",
		Paused:        "Paused",
		Finalized:     "Finalized",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unrecognized names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is the terminal Finalized state.
func (s Status) IsFinal() bool {
	return s == Finalized
}

// Report transitions the status to PendingReview after a production report.
//
// Reports are accepted from any non-final status: InProgress is the normal
// case, Reproved covers resubmission after a rejection, and Paused/Created
// cover sectors reporting against orders the sweep or planning left idle.
// A report against a Finalized order is an authorization failure, not a
// state failure, mirroring how the routing rules are enforced upstream.
func (s Status) Report() (Status, error) {
	if s.IsFinal() {
		return 0, errs.NewAccessForbiddenErrorWithCause(
			"reportProduction", "",
			fmt.Errorf("order is already %s", s.String()),
		)
	}
	return PendingReview, nil
}

// Approve transitions out of PendingReview after planning accepts a report.
// last indicates the pending sector was the final routing step; in that case
// the order is Finalized, otherwise it moves back to InProgress with the
// next sector.
func (s Status) Approve(last bool) (Status, error) {
	if s != PendingReview {
		return 0, errs.NewInvalidStateError("validate", s.String())
	}
	if last {
		return Finalized, nil
	}
	return InProgress, nil
}

// Reject transitions PendingReview to Reproved after planning refuses a report.
func (s Status) Reject() (Status, error) {
	if s != PendingReview {
		return 0, errs.NewInvalidStateError("validate", s.String())
	}
	return Reproved, nil
}

// Pause transitions InProgress to Paused. Used by the automatic sweep; any
// other status is left untouched and reported as an invalid state.
func (s Status) Pause() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError("pause", s.String())
	}
	return Paused, nil
}

// Finalize unconditionally transitions to Finalized. This is the
// administrative override available to planning from any state.
func (s Status) Finalize() Status {
	return Finalized
}
