// Package service orchestrates a document's upload/process/submit lifecycle,
// wiring the extractor, the document model, the validator, the document
// system client and the outcome resolver around the workflow state machine.
package service

import (
	"context"
	"errors"

	"github.com/docuflow/document-intelligence/internal/domain/workflow"
	"github.com/docuflow/document-intelligence/internal/erpnext"
)

// MsgInvalidFile is the exact message surfaced when a non-PDF file is
// selected.
const MsgInvalidFile = "Please select a valid PDF file"

var (
	// ErrInvalidFile rejects a non-PDF selection; the lifecycle stays in EMPTY.
	ErrInvalidFile = errors.New(MsgInvalidFile)

	// ErrNotEditable is returned for edits outside the POPULATED (or
	// re-editable FAILED) states.
	ErrNotEditable = errors.New("document is not editable in its current state")
)

// DocumentSystem is the slice of the document-system client the sessions
// consume. *erpnext.Client satisfies it.
type DocumentSystem interface {
	CompanyCurrency(ctx context.Context, company string) (string, error)
	EnsureExists(ctx context.Context, doctype, name string, payload any) error
	CreateDocument(ctx context.Context, doctype string, payload any) (*erpnext.Document, error)
	SubmitDocument(ctx context.Context, doctype, name string) (*erpnext.Document, error)
}

// ensureEditable admits edits in POPULATED, and transparently re-opens a
// FAILED document for re-editing.
func ensureEditable(ctx context.Context, machine *workflow.Machine) error {
	switch machine.State() {
	case workflow.StatePopulated:
		return nil
	case workflow.StateFailed:
		return machine.Fire(ctx, workflow.TriggerReedit)
	default:
		return ErrNotEditable
	}
}

// selectFile runs the guarded SELECT_FILE transition, translating a guard
// rejection into the user-facing invalid-file error.
func selectFile(ctx context.Context, machine *workflow.Machine, filename string) (context.Context, error) {
	fctx := workflow.WithFilename(ctx, filename)
	if err := machine.Fire(fctx, workflow.TriggerSelectFile); err != nil {
		if errors.Is(err, workflow.ErrGuardFailed) {
			return fctx, ErrInvalidFile
		}
		return fctx, err
	}
	return fctx, nil
}
