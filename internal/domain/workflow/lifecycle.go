package workflow

import (
	"context"
	"path/filepath"
)

type filenameKey struct{}

// WithFilename attaches the selected file name to the context so the
// file-type guard can inspect it when SELECT_FILE fires.
func WithFilename(ctx context.Context, filename string) context.Context {
	return context.WithValue(ctx, filenameKey{}, filename)
}

// FilenameFromContext returns the selected file name, if any.
func FilenameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(filenameKey{}).(string)
	return name, ok
}

// IsPDFFilename reports whether the name carries a lowercase .pdf extension.
// The upload API accepts exactly this, so the guard matches it.
func IsPDFFilename(filename string) bool {
	return filepath.Ext(filename) == ".pdf"
}

// NewDocumentLifecycle builds a machine for one document instance:
//
//	EMPTY → UPLOADING → PROCESSING → POPULATED → VALIDATING → SUBMITTING → SUBMITTED
//	                                     ↑            |            |
//	                                     └────────────┘            ↓
//	                                     ↑ (re-edit)             FAILED
//	                                     └───────────────────────┘
//
// SELECT_FILE is guarded by the PDF file-type check: a non-PDF selection is
// rejected and the machine stays in EMPTY. A failed extraction returns to
// EMPTY so another file can be selected. SUBMIT is only declared for
// POPULATED, so a second submission cannot start while one is in flight.
func NewDocumentLifecycle() *Machine {
	b := NewBuilder()

	b.Configure(StateEmpty).
		PermitIf(TriggerSelectFile, StateUploading, func(ctx context.Context) bool {
			name, ok := FilenameFromContext(ctx)
			return ok && IsPDFFilename(name)
		})

	b.Configure(StateUploading).
		Permit(TriggerAcceptUpload, StateProcessing)

	b.Configure(StateProcessing).
		Permit(TriggerReceiveExtraction, StatePopulated).
		Permit(TriggerFailExtraction, StateEmpty)

	b.Configure(StatePopulated).
		Permit(TriggerSubmit, StateValidating)

	b.Configure(StateValidating).
		Permit(TriggerPassValidation, StateSubmitting).
		Permit(TriggerFailValidation, StatePopulated)

	b.Configure(StateSubmitting).
		Permit(TriggerCompleteSubmission, StateSubmitted).
		Permit(TriggerFailSubmission, StateFailed)

	b.Configure(StateFailed).
		Permit(TriggerReedit, StatePopulated)

	return b.Build(StateEmpty)
}
