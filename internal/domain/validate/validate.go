// Package validate decides whether a populated document is submittable.
//
// Validation is an ordered rule list: rules run in a fixed priority order and
// the first failing rule wins, so a document violating several rules always
// surfaces the same, highest-priority message. A document with no line items
// passes the quantity rule vacuously.
package validate

import (
	"fmt"
	"time"

	"github.com/docuflow/document-intelligence/internal/domain/document"
)

// User-facing messages. These are part of the UI contract and must not be
// reworded.
const (
	MsgInvoiceCompanyRequired = "Please specify a company before creating the invoice."
	MsgCustomerRequired       = "Customer name is required"
	MsgPOCompanyRequired      = "Please specify a company before creating the purchase order."
	MsgSupplierRequired       = "Supplier name is required"
	MsgDeliveryDateRequired   = "Delivery date is required"
	MsgDeliveryBeforeOrder    = "Delivery date cannot be before order date"

	msgQuantityFormat = "Item %d: Quantity must be greater than zero"
)

const dateLayout = "2006-01-02"

// RuleError reports the first violated rule with its exact user-facing message.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// rule pairs a predicate with the message surfaced when it fails.
type rule struct {
	ok      func() bool
	message string
}

// Invoice returns nil when the invoice is submittable, or a *RuleError
// carrying the first violation in priority order.
func Invoice(inv *document.Invoice) error {
	rules := []rule{
		{func() bool { return inv.CompanyName != "" }, MsgInvoiceCompanyRequired},
		{func() bool { return inv.CustomerName != "" }, MsgCustomerRequired},
	}
	for i := range inv.Items {
		item := inv.Items[i]
		rules = append(rules, rule{
			ok:      func() bool { return item.Quantity > 0 },
			message: fmt.Sprintf(msgQuantityFormat, i+1),
		})
	}
	return evaluate(rules)
}

// PurchaseOrder returns nil when the purchase order is submittable, or a
// *RuleError carrying the first violation in priority order.
func PurchaseOrder(po *document.PurchaseOrder) error {
	rules := []rule{
		{func() bool { return po.CompanyName != "" }, MsgPOCompanyRequired},
		{func() bool { return po.SupplierName != "" }, MsgSupplierRequired},
	}
	for i := range po.Items {
		item := po.Items[i]
		rules = append(rules, rule{
			ok:      func() bool { return item.Quantity > 0 },
			message: fmt.Sprintf(msgQuantityFormat, i+1),
		})
	}
	rules = append(rules,
		rule{func() bool { return po.DeliveryDate != "" }, MsgDeliveryDateRequired},
		rule{func() bool { return !deliveryBeforeOrder(po.OrderDate, po.DeliveryDate) }, MsgDeliveryBeforeOrder},
	)
	return evaluate(rules)
}

// evaluate runs the rules in order and short-circuits on the first failure.
func evaluate(rules []rule) error {
	for _, r := range rules {
		if !r.ok() {
			return &RuleError{Message: r.message}
		}
	}
	return nil
}

// deliveryBeforeOrder compares the two dates when both parse; dates that do
// not parse cannot be ordered and are left to the required-field rules.
func deliveryBeforeOrder(orderDate, deliveryDate string) bool {
	order, err := time.Parse(dateLayout, orderDate)
	if err != nil {
		return false
	}
	delivery, err := time.Parse(dateLayout, deliveryDate)
	if err != nil {
		return false
	}
	return delivery.Before(order)
}
