// Package extraction defines the contract with the document-intelligence
// collaborator: the raw schemas an extraction call returns for each document
// kind, and the Extractor port the rest of the application consumes.
//
// Field names are part of the wire contract and are case-sensitive.
package extraction

import (
	"context"
	"io"
)

// InvoiceItemData is one raw line item of an extracted invoice.
type InvoiceItemData struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// InvoiceData is the raw extraction result for an invoice PDF.
type InvoiceData struct {
	InvoiceID               string            `json:"InvoiceId"`
	VendorName              string            `json:"VendorName"`
	InvoiceDate             string            `json:"InvoiceDate"`
	DueDate                 string            `json:"DueDate,omitempty"`
	BillingAddressRecipient string            `json:"BillingAddressRecipient"`
	ShippingAddress         string            `json:"ShippingAddress"`
	Currency                string            `json:"Currency,omitempty"`
	SubTotal                float64           `json:"SubTotal"`
	ShippingCost            float64           `json:"ShippingCost"`
	Tax                     float64           `json:"Tax"`
	InvoiceTotal            float64           `json:"InvoiceTotal"`
	Items                   []InvoiceItemData `json:"Items"`
}

// PurchaseOrderItemData is one raw line item of an extracted purchase order.
type PurchaseOrderItemData struct {
	ItemCode    string  `json:"item_code,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// PurchaseOrderData is the raw extraction result for a purchase order PDF.
type PurchaseOrderData struct {
	PONumber     string                  `json:"po_number"`
	Date         string                  `json:"date"`
	DeliveryDate string                  `json:"delivery_date"`
	SupplierName string                  `json:"supplier_name"`
	CompanyName  string                  `json:"company_name"`
	Currency     string                  `json:"currency,omitempty"`
	TotalAmount  float64                 `json:"total_amount"`
	Status       string                  `json:"status"`
	Items        []PurchaseOrderItemData `json:"items"`
}

// Extractor turns an uploaded PDF into structured field data. The real
// document-intelligence engine lives behind this port; this repository only
// ships the mock implementation.
type Extractor interface {
	ExtractInvoice(ctx context.Context, file io.Reader, filename string) (*InvoiceData, error)
	ExtractPurchaseOrder(ctx context.Context, file io.Reader, filename string) (*PurchaseOrderData, error)
}
