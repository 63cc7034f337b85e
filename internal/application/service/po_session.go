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

// PurchaseOrderSession drives one purchase order from file selection to
// submission. Not safe for concurrent use.
type PurchaseOrderSession struct {
	machine   *workflow.Machine
	extractor extraction.Extractor
	erp       DocumentSystem
	logger    *zap.Logger

	po *document.PurchaseOrder
}

// NewPurchaseOrderSession creates an empty purchase order session.
func NewPurchaseOrderSession(extractor extraction.Extractor, erp DocumentSystem, logger *zap.Logger) *PurchaseOrderSession {
	return &PurchaseOrderSession{
		machine:   workflow.NewDocumentLifecycle(),
		extractor: extractor,
		erp:       erp,
		logger:    logger,
	}
}

// State returns the current lifecycle state.
func (s *PurchaseOrderSession) State() workflow.State {
	return s.machine.State()
}

// PurchaseOrder returns the populated document, nil before extraction
// completes.
func (s *PurchaseOrderSession) PurchaseOrder() *document.PurchaseOrder {
	return s.po
}

// Upload accepts a selected file, runs it through extraction and bulk-assigns
// the document. A non-PDF selection fails with ErrInvalidFile and leaves the
// session in EMPTY.
func (s *PurchaseOrderSession) Upload(ctx context.Context, file io.Reader, filename string) error {
	fctx, err := selectFile(ctx, s.machine, filename)
	if err != nil {
		return err
	}
	if err := s.machine.Fire(fctx, workflow.TriggerAcceptUpload); err != nil {
		return err
	}

	data, err := s.extractor.ExtractPurchaseOrder(ctx, file, filename)
	if err != nil {
		if ferr := s.machine.Fire(fctx, workflow.TriggerFailExtraction); ferr != nil {
			return ferr
		}
		return fmt.Errorf("extracting purchase order: %w", err)
	}
	if err := s.machine.Fire(fctx, workflow.TriggerReceiveExtraction); err != nil {
		return err
	}

	s.po = document.NewPurchaseOrderFromExtraction(data)
	s.logger.Info("Purchase order populated from extraction",
		zap.String("po_number", s.po.PONumber),
		zap.Int("items", len(s.po.Items)))
	return nil
}

// Edit applies a field-by-field mutation in an editable state.
func (s *PurchaseOrderSession) Edit(ctx context.Context, mutate func(*document.PurchaseOrder) error) error {
	if err := ensureEditable(ctx, s.machine); err != nil {
		return err
	}
	return mutate(s.po)
}

// Submit validates the document and pushes it to the document system,
// mirroring the invoice flow.
func (s *PurchaseOrderSession) Submit(ctx context.Context) (outcome.Result, error) {
	if err := s.machine.Fire(ctx, workflow.TriggerSubmit); err != nil {
		return outcome.Result{}, err
	}

	if err := validate.PurchaseOrder(s.po); err != nil {
		if ferr := s.machine.Fire(ctx, workflow.TriggerFailValidation); ferr != nil {
			return outcome.Result{}, ferr
		}
		s.logger.Info("Purchase order validation failed", zap.String("reason", err.Error()))
		return outcome.Result{}, err
	}
	if err := s.machine.Fire(ctx, workflow.TriggerPassValidation); err != nil {
		return outcome.Result{}, err
	}

	res := outcome.Resolve(s.push(ctx))

	next := workflow.TriggerFailSubmission
	if res.Status == outcome.StatusSuccess {
		next = workflow.TriggerCompleteSubmission
		s.po.Status = document.POStatusSubmitted
	}
	if err := s.machine.Fire(ctx, next); err != nil {
		return res, err
	}

	s.logger.Info("Purchase order submission resolved",
		zap.String("status", res.Status.String()),
		zap.String("reference", res.Reference))
	return res, nil
}

func (s *PurchaseOrderSession) push(ctx context.Context) outcome.Submission {
	po := s.po

	if err := s.erp.EnsureExists(ctx, erpnext.DoctypeSupplier, po.SupplierName, map[string]any{
		"supplier_name": po.SupplierName,
	}); err != nil {
		return outcome.Submission{FailureReason: err.Error()}
	}
	for _, item := range po.Items {
		code := item.ItemCode
		if code == "" {
			code = item.Description
		}
		if err := s.erp.EnsureExists(ctx, erpnext.DoctypeItem, code, map[string]any{
			"item_code":   code,
			"description": item.Description,
		}); err != nil {
			return outcome.Submission{FailureReason: err.Error()}
		}
	}

	created, err := s.erp.CreateDocument(ctx, erpnext.DoctypePurchaseOrder, purchaseOrderPayload(po))
	if err != nil {
		return outcome.Submission{FailureReason: err.Error()}
	}

	submitted, err := s.erp.SubmitDocument(ctx, erpnext.DoctypePurchaseOrder, created.Name)
	if err != nil {
		return outcome.Submission{
			Reference:     created.Name,
			DocStatus:     created.DocStatus,
			FailureReason: err.Error(),
		}
	}

	return outcome.Submission{Reference: submitted.Name, DocStatus: submitted.DocStatus}
}

func purchaseOrderPayload(po *document.PurchaseOrder) map[string]any {
	items := make([]map[string]any, 0, len(po.Items))
	for _, it := range po.Items {
		items = append(items, map[string]any{
			"item_code":   it.ItemCode,
			"description": it.Description,
			"qty":         it.Quantity,
			"rate":        it.UnitPrice,
			"amount":      it.Total,
		})
	}
	return map[string]any{
		"supplier":      po.SupplierName,
		"company":       po.CompanyName,
		"currency":      po.Currency,
		"schedule_date": po.DeliveryDate,
		"items":         items,
		"grand_total":   po.TotalAmount,
	}
}
