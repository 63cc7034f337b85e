// Package erpnext implements the consumed contract of the external document
// system: resource lookup, document creation (docstatus 0) and submission
// (docstatus 1). It also ships a mock server implementing the same contract
// with explicit typed endpoints for tests and local development.
package erpnext

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Doctypes this gateway touches.
const (
	DoctypeSalesInvoice  = "Sales Invoice"
	DoctypePurchaseOrder = "Purchase Order"
	DoctypeCompany       = "Company"
	DoctypeCustomer      = "Customer"
	DoctypeSupplier      = "Supplier"
	DoctypeItem          = "Item"
)

// ErrNotFound is returned for lookups the document system answers with
// HTTP 404 and an "exc" body.
var ErrNotFound = errors.New("resource not found")

// Document is the name/docstatus pair the document system returns for
// create and submit calls. Docstatus 0 is draft, 1 is submitted.
type Document struct {
	Name      string `json:"name"`
	DocStatus int    `json:"docstatus"`
}

// Company is the company resource; DefaultCurrency seeds the invoice
// currency field.
type Company struct {
	Name            string `json:"name"`
	DefaultCurrency string `json:"default_currency"`
}

type apiEnvelope struct {
	Data json.RawMessage `json:"data"`
	Exc  string          `json:"exc"`
}

// Config holds client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin HTTP client for the document system's resource API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a document-system client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetDocument fetches one resource by name. Missing resources yield
// ErrNotFound.
func (c *Client) GetDocument(ctx context.Context, doctype, name string) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodGet, c.resourceURL(doctype, name), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDocument creates a draft resource and returns its generated name
// with docstatus 0.
func (c *Client) CreateDocument(ctx context.Context, doctype string, payload any) (*Document, error) {
	var doc Document
	if err := c.do(ctx, http.MethodPost, c.resourceURL(doctype, ""), payload, &doc); err != nil {
		return nil, err
	}
	c.logger.Info("Document created",
		zap.String("doctype", doctype),
		zap.String("name", doc.Name),
		zap.Int("docstatus", doc.DocStatus))
	return &doc, nil
}

// SubmitDocument submits a previously created draft, moving it to docstatus 1.
func (c *Client) SubmitDocument(ctx context.Context, doctype, name string) (*Document, error) {
	payload := map[string]int{"docstatus": 1}
	var doc Document
	if err := c.do(ctx, http.MethodPut, c.resourceURL(doctype, name), payload, &doc); err != nil {
		return nil, err
	}
	c.logger.Info("Document submitted",
		zap.String("doctype", doctype),
		zap.String("name", doc.Name),
		zap.Int("docstatus", doc.DocStatus))
	return &doc, nil
}

// CompanyCurrency returns the company's default currency.
func (c *Client) CompanyCurrency(ctx context.Context, company string) (string, error) {
	var resp Company
	if err := c.do(ctx, http.MethodGet, c.resourceURL(DoctypeCompany, company), nil, &resp); err != nil {
		return "", err
	}
	return resp.DefaultCurrency, nil
}

// EnsureExists creates the named resource when the lookup reports it missing.
// Other lookup failures are returned as-is.
func (c *Client) EnsureExists(ctx context.Context, doctype, name string, payload any) error {
	_, err := c.GetDocument(ctx, doctype, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, err := c.CreateDocument(ctx, doctype, payload); err != nil {
		return fmt.Errorf("creating %s %q: %w", doctype, name, err)
	}
	return nil
}

func (c *Client) resourceURL(doctype, name string) string {
	u := c.baseURL + "/api/resource/" + url.PathEscape(doctype)
	if name != "" {
		u += "/" + url.PathEscape(name)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling document system: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding response (%s): %w", resp.Status, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, envelope.Exc)
	}
	if resp.StatusCode >= 400 {
		reason := envelope.Exc
		if reason == "" {
			reason = resp.Status
		}
		return fmt.Errorf("document system error: %s", reason)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding data: %w", err)
		}
	}
	return nil
}
