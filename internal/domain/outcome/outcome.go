// Package outcome classifies a create-then-submit exchange with the external
// document system into exactly one of three UI states: success, warning or
// error. The three are mutually exclusive; a submission never surfaces two.
package outcome

import (
	"fmt"
	"strings"
)

// Status is the three-way submission classification.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// referencePrefixes are the generated-reference prefixes the document system
// uses for the two document kinds.
var referencePrefixes = []string{"ACC-SINV-", "SINV-", "PO-"}

// benignPatterns downgrade an error to a warning when the failure text
// matches a recognized non-fatal condition.
var benignPatterns = []string{"currency"}

// Submission carries the raw signals gathered from the create and submit
// calls against the document system.
type Submission struct {
	// Reference is the generated document name, e.g. "SINV-2026-00001".
	Reference string
	// DocStatus is the document system's status code: 0 draft, 1 submitted.
	DocStatus int
	// FailureReason is the upstream error text, empty when both calls succeeded.
	FailureReason string
}

// Result is the resolved classification with its user-facing message.
type Result struct {
	Status    Status
	Message   string
	Reference string
}

// Resolve classifies a submission. Error signals take precedence over success
// signals unless the failure matches a known-benign pattern, in which case
// the outcome is downgraded to a warning and the user may retry.
func Resolve(sub Submission) Result {
	if sub.FailureReason != "" {
		if benign(sub.FailureReason) {
			return Result{
				Status:    StatusWarning,
				Message:   sub.FailureReason,
				Reference: sub.Reference,
			}
		}
		return Result{
			Status:    StatusError,
			Message:   sub.FailureReason,
			Reference: sub.Reference,
		}
	}

	if sub.Reference == "" {
		return Result{
			Status:  StatusError,
			Message: "Document system returned no reference number",
		}
	}

	if hasKnownPrefix(sub.Reference) && sub.DocStatus == 1 {
		return Result{
			Status:    StatusSuccess,
			Message:   fmt.Sprintf("Document %s submitted successfully", sub.Reference),
			Reference: sub.Reference,
		}
	}

	if sub.DocStatus == 0 {
		return Result{
			Status:    StatusWarning,
			Message:   fmt.Sprintf("Document %s was created but not submitted", sub.Reference),
			Reference: sub.Reference,
		}
	}

	return Result{
		Status:    StatusWarning,
		Message:   fmt.Sprintf("Document system returned unrecognized reference %s", sub.Reference),
		Reference: sub.Reference,
	}
}

func hasKnownPrefix(reference string) bool {
	for _, p := range referencePrefixes {
		if strings.HasPrefix(reference, p) {
			return true
		}
	}
	return false
}

func benign(reason string) bool {
	lower := strings.ToLower(reason)
	for _, p := range benignPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
