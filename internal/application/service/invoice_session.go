package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/docuflow/document-intelligence/internal/domain/document"
	"github.com/docuflow/document-intelligence/internal/domain/outcome"
	"github.com/docuflow/document-intelligence/internal/domain/validate"
	"github.com/docuflow/document-intelligence/internal/domain/workflow"
	"github.com/docuflow/document-intelligence/internal/erpnext"
	"github.com/docuflow/document-intelligence/internal/extraction"
)

// InvoiceSession drives one sales invoice from file selection to submission.
// Not safe for concurrent use; one session serves one user document instance.
type InvoiceSession struct {
	machine   *workflow.Machine
	extractor extraction.Extractor
	erp       DocumentSystem
	logger    *zap.Logger

	invoice *document.Invoice
}

// NewInvoiceSession creates an empty invoice session.
func NewInvoiceSession(extractor extraction.Extractor, erp DocumentSystem, logger *zap.Logger) *InvoiceSession {
	return &InvoiceSession{
		machine:   workflow.NewDocumentLifecycle(),
		extractor: extractor,
		erp:       erp,
		logger:    logger,
	}
}

// State returns the current lifecycle state.
func (s *InvoiceSession) State() workflow.State {
	return s.machine.State()
}

// Invoice returns the populated document, nil before extraction completes.
func (s *InvoiceSession) Invoice() *document.Invoice {
	return s.invoice
}

// Upload accepts a selected file, runs it through extraction and bulk-assigns
// the document. A non-PDF selection fails with ErrInvalidFile and leaves the
// session in EMPTY.
func (s *InvoiceSession) Upload(ctx context.Context, file io.Reader, filename string) error {
	fctx, err := selectFile(ctx, s.machine, filename)
	if err != nil {
		return err
	}
	if err := s.machine.Fire(fctx, workflow.TriggerAcceptUpload); err != nil {
		return err
	}

	data, err := s.extractor.ExtractInvoice(ctx, file, filename)
	if err != nil {
		if ferr := s.machine.Fire(fctx, workflow.TriggerFailExtraction); ferr != nil {
			return ferr
		}
		return fmt.Errorf("extracting invoice: %w", err)
	}
	if err := s.machine.Fire(fctx, workflow.TriggerReceiveExtraction); err != nil {
		return err
	}

	s.invoice = document.NewInvoiceFromExtraction(data)
	s.logger.Info("Invoice populated from extraction",
		zap.String("invoice_id", s.invoice.InvoiceID),
		zap.Int("items", len(s.invoice.Items)))
	return nil
}

// SetCompany edits the company field. The first non-empty company also fixes
// the invoice currency from the company's default; the currency is read-only
// afterwards.
func (s *InvoiceSession) SetCompany(ctx context.Context, name string) error {
	if err := ensureEditable(ctx, s.machine); err != nil {
		return err
	}
	s.invoice.CompanyName = name

	if name == "" || s.invoice.Currency() != "" {
		return nil
	}
	currency, err := s.erp.CompanyCurrency(ctx, name)
	if err != nil {
		s.logger.Warn("Company currency lookup failed",
			zap.String("company", name),
			zap.Error(err))
		return nil
	}
	if err := s.invoice.SetCurrency(currency); err != nil {
		return err
	}
	return nil
}

// Edit applies a field-by-field mutation in an editable state. The document's
// own setters keep derived fields consistent.
func (s *InvoiceSession) Edit(ctx context.Context, mutate func(*document.Invoice) error) error {
	if err := ensureEditable(ctx, s.machine); err != nil {
		return err
	}
	return mutate(s.invoice)
}

// Submit validates the document and pushes it to the document system. A
// validation failure returns the *validate.RuleError and the session back in
// POPULATED with fields editable; otherwise the resolved outcome decides
// between SUBMITTED and the resubmittable FAILED state.
func (s *InvoiceSession) Submit(ctx context.Context) (outcome.Result, error) {
	if err := s.machine.Fire(ctx, workflow.TriggerSubmit); err != nil {
		return outcome.Result{}, err
	}

	if err := validate.Invoice(s.invoice); err != nil {
		if ferr := s.machine.Fire(ctx, workflow.TriggerFailValidation); ferr != nil {
			return outcome.Result{}, ferr
		}
		s.logger.Info("Invoice validation failed", zap.String("reason", err.Error()))
		return outcome.Result{}, err
	}
	if err := s.machine.Fire(ctx, workflow.TriggerPassValidation); err != nil {
		return outcome.Result{}, err
	}

	res := outcome.Resolve(s.push(ctx))

	next := workflow.TriggerFailSubmission
	if res.Status == outcome.StatusSuccess {
		next = workflow.TriggerCompleteSubmission
	}
	if err := s.machine.Fire(ctx, next); err != nil {
		return res, err
	}

	s.logger.Info("Invoice submission resolved",
		zap.String("status", res.Status.String()),
		zap.String("reference", res.Reference))
	return res, nil
}

// push runs the create-then-submit sequence and gathers its raw signals.
// Counterparty and item records are created on demand first.
func (s *InvoiceSession) push(ctx context.Context) outcome.Submission {
	inv := s.invoice

	if err := s.erp.EnsureExists(ctx, erpnext.DoctypeCustomer, inv.CustomerName, map[string]any{
		"customer_name": inv.CustomerName,
	}); err != nil {
		return outcome.Submission{FailureReason: err.Error()}
	}
	for _, item := range inv.Items {
		if err := s.erp.EnsureExists(ctx, erpnext.DoctypeItem, item.Description, map[string]any{
			"item_code":  item.Description,
			"item_group": item.Category,
		}); err != nil {
			return outcome.Submission{FailureReason: err.Error()}
		}
	}

	created, err := s.erp.CreateDocument(ctx, erpnext.DoctypeSalesInvoice, invoicePayload(inv))
	if err != nil {
		return outcome.Submission{FailureReason: err.Error()}
	}

	submitted, err := s.erp.SubmitDocument(ctx, erpnext.DoctypeSalesInvoice, created.Name)
	if err != nil {
		return outcome.Submission{
			Reference:     created.Name,
			DocStatus:     created.DocStatus,
			FailureReason: err.Error(),
		}
	}

	return outcome.Submission{Reference: submitted.Name, DocStatus: submitted.DocStatus}
}

func invoicePayload(inv *document.Invoice) map[string]any {
	items := make([]map[string]any, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, map[string]any{
			"item_code":   it.Description,
			"description": it.Description,
			"qty":         it.Quantity,
			"rate":        it.Rate,
			"amount":      it.Amount,
		})
	}
	return map[string]any{
		"customer":      inv.CustomerName,
		"company":       inv.CompanyName,
		"currency":      inv.Currency(),
		"posting_date":  inv.InvoiceDate,
		"due_date":      inv.DueDate,
		"items":         items,
		"shipping_cost": inv.ShippingCost,
		"taxes":         inv.Tax,
		"grand_total":   inv.Total,
	}
}
