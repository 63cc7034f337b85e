// Package document holds the form-side data model: the two line-item variants
// and the invoice and purchase order documents the frontend populates, edits
// and submits.
//
// Derived numeric fields (line amounts, subtotals, grand totals) are never set
// independently: every edit entry point recomputes them synchronously through
// the calc package, so a document can never carry a stale total.
package document

import (
	"errors"

	"github.com/docuflow/document-intelligence/internal/domain/calc"
	"github.com/docuflow/document-intelligence/internal/extraction"
)

// ErrCurrencyFixed is returned when changing an invoice currency that has
// already been set from its company.
var ErrCurrencyFixed = errors.New("currency is fixed once set from the company")

// ErrItemIndex is returned when an edit refers to a line item that does not exist.
var ErrItemIndex = errors.New("line item index out of range")

// POStatus is the purchase order status.
type POStatus string

const (
	POStatusDraft     POStatus = "Draft"
	POStatusPending   POStatus = "Pending"
	POStatusSubmitted POStatus = "Submitted"
)

// InvoiceItem is one invoice line. Amount is derived from Quantity and Rate.
type InvoiceItem struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// PurchaseOrderItem is one purchase order line. Total is derived from
// Quantity and UnitPrice.
type PurchaseOrderItem struct {
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice is the sales invoice form model. Subtotal and Total are derived;
// the currency is read-only once fetched from the company.
type Invoice struct {
	InvoiceID       string        `json:"invoice_id"`
	VendorName      string        `json:"vendor_name"`
	CustomerName    string        `json:"customer_name"`
	CompanyName     string        `json:"company_name"`
	InvoiceDate     string        `json:"invoice_date"`
	DueDate         string        `json:"due_date"`
	BillingAddress  string        `json:"billing_address"`
	ShippingAddress string        `json:"shipping_address"`
	Items           []InvoiceItem `json:"items"`
	ShippingCost    float64       `json:"shipping_cost"`
	Tax             float64       `json:"tax"`
	Subtotal        float64       `json:"subtotal"`
	Total           float64       `json:"total"`

	currency string
}

// NewInvoiceFromExtraction bulk-assigns an invoice from a raw extraction
// result and recomputes every derived field, discarding whatever totals the
// extraction claimed.
func NewInvoiceFromExtraction(data *extraction.InvoiceData) *Invoice {
	inv := &Invoice{
		InvoiceID:       data.InvoiceID,
		VendorName:      data.VendorName,
		CustomerName:    data.BillingAddressRecipient,
		InvoiceDate:     data.InvoiceDate,
		DueDate:         data.DueDate,
		BillingAddress:  data.BillingAddressRecipient,
		ShippingAddress: data.ShippingAddress,
		ShippingCost:    data.ShippingCost,
		Tax:             data.Tax,
	}
	for _, it := range data.Items {
		inv.Items = append(inv.Items, InvoiceItem{
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		})
	}
	inv.Recalculate()
	return inv
}

// Currency returns the invoice currency, empty until set from the company.
func (inv *Invoice) Currency() string {
	return inv.currency
}

// SetCurrency fixes the invoice currency. It may be called exactly once;
// later calls fail with ErrCurrencyFixed unless the value is unchanged.
func (inv *Invoice) SetCurrency(currency string) error {
	if inv.currency != "" && inv.currency != currency {
		return ErrCurrencyFixed
	}
	inv.currency = currency
	return nil
}

// SetItemQuantity edits one line quantity and recomputes derived fields.
func (inv *Invoice) SetItemQuantity(index int, quantity float64) error {
	if index < 0 || index >= len(inv.Items) {
		return ErrItemIndex
	}
	inv.Items[index].Quantity = quantity
	inv.Recalculate()
	return nil
}

// SetItemRate edits one line rate and recomputes derived fields.
func (inv *Invoice) SetItemRate(index int, rate float64) error {
	if index < 0 || index >= len(inv.Items) {
		return ErrItemIndex
	}
	inv.Items[index].Rate = rate
	inv.Recalculate()
	return nil
}

// SetShippingCost edits the shipping adjustment and recomputes the total.
func (inv *Invoice) SetShippingCost(cost float64) {
	inv.ShippingCost = cost
	inv.Recalculate()
}

// SetTax edits the tax adjustment and recomputes the total.
func (inv *Invoice) SetTax(tax float64) {
	inv.Tax = tax
	inv.Recalculate()
}

// Recalculate recomputes every derived field from the current inputs.
func (inv *Invoice) Recalculate() {
	amounts := make([]float64, len(inv.Items))
	for i := range inv.Items {
		inv.Items[i].Amount = calc.LineAmount(inv.Items[i].Quantity, inv.Items[i].Rate)
		amounts[i] = inv.Items[i].Amount
	}
	inv.Subtotal = calc.Subtotal(amounts)
	inv.Total = calc.GrandTotal(inv.Subtotal, inv.ShippingCost, inv.Tax)
}

// PurchaseOrder is the purchase order form model. TotalAmount is derived.
// Unlike the invoice, the currency is prefilled from extraction but editable.
type PurchaseOrder struct {
	PONumber     string              `json:"po_number"`
	OrderDate    string              `json:"order_date"`
	DeliveryDate string              `json:"delivery_date"`
	SupplierName string              `json:"supplier_name"`
	CompanyName  string              `json:"company_name"`
	Currency     string              `json:"currency"`
	Items        []PurchaseOrderItem `json:"items"`
	TotalAmount  float64             `json:"total_amount"`
	Status       POStatus            `json:"status"`
}

// NewPurchaseOrderFromExtraction bulk-assigns a purchase order from a raw
// extraction result and recomputes every derived field.
func NewPurchaseOrderFromExtraction(data *extraction.PurchaseOrderData) *PurchaseOrder {
	po := &PurchaseOrder{
		PONumber:     data.PONumber,
		OrderDate:    data.Date,
		DeliveryDate: data.DeliveryDate,
		SupplierName: data.SupplierName,
		CompanyName:  data.CompanyName,
		Currency:     data.Currency,
		Status:       POStatus(data.Status),
	}
	if po.Status == "" {
		po.Status = POStatusDraft
	}
	for _, it := range data.Items {
		po.Items = append(po.Items, PurchaseOrderItem{
			ItemCode:    it.ItemCode,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	po.Recalculate()
	return po
}

// SetItemQuantity edits one line quantity and recomputes derived fields.
func (po *PurchaseOrder) SetItemQuantity(index int, quantity float64) error {
	if index < 0 || index >= len(po.Items) {
		return ErrItemIndex
	}
	po.Items[index].Quantity = quantity
	po.Recalculate()
	return nil
}

// SetItemUnitPrice edits one line unit price and recomputes derived fields.
func (po *PurchaseOrder) SetItemUnitPrice(index int, unitPrice float64) error {
	if index < 0 || index >= len(po.Items) {
		return ErrItemIndex
	}
	po.Items[index].UnitPrice = unitPrice
	po.Recalculate()
	return nil
}

// Recalculate recomputes every derived field from the current inputs.
func (po *PurchaseOrder) Recalculate() {
	totals := make([]float64, len(po.Items))
	for i := range po.Items {
		po.Items[i].Total = calc.LineAmount(po.Items[i].Quantity, po.Items[i].UnitPrice)
		totals[i] = po.Items[i].Total
	}
	po.TotalAmount = calc.Subtotal(totals)
}
