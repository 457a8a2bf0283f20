package entity

import (
	"time"

	"github.com/carewise/hms/pkg/record"
)

// PrefixInvoice prefixes invoice identifiers.
const PrefixInvoice = "INV"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "PENDING"
	InvoicePaid     InvoiceStatus = "PAID"
	InvoicePartial  InvoiceStatus = "PARTIAL"
	InvoiceCanceled InvoiceStatus = "CANCELED"
)

var invoiceStatusNames = []string{
	string(InvoicePending),
	string(InvoicePaid),
	string(InvoicePartial),
	string(InvoiceCanceled),
}

// Invoice bills a patient for a completed appointment.
type Invoice struct {
	ID           string
	CustomerID   string
	ApptID       string
	ServiceFee   float64
	TotalAmount  float64
	TaxRate      float64
	Balance      float64
	CurrentPaid  float64
	TotalPayable float64
	IssueDate    time.Time
	Status       InvoiceStatus
}

// NewInvoice creates a pending invoice for a service fee. The fee is
// folded into the running total and the tax rate applied to produce
// the payable amount and outstanding balance.
func NewInvoice(id, customerID, apptID string, serviceFee, taxRate float64) *Invoice {
	inv := &Invoice{
		ID:         id,
		CustomerID: customerID,
		ApptID:     apptID,
		ServiceFee: serviceFee,
		TaxRate:    taxRate,
		IssueDate:  time.Now(),
		Status:     InvoicePending,
	}
	inv.TotalAmount += serviceFee
	inv.TotalPayable = inv.TotalAmount * (1 + taxRate)
	inv.Balance = serviceFee * (1 + taxRate)
	return inv
}

// GetID returns the unique identifier of the invoice.
func (inv *Invoice) GetID() string {
	return inv.ID
}

// Outstanding reports the amount still owed.
func (inv *Invoice) Outstanding() float64 {
	return inv.Balance
}

// Pay records a payment and moves the status to PARTIAL or PAID.
func (inv *Invoice) Pay(amount float64) {
	inv.CurrentPaid += amount
	inv.Balance -= amount
	if inv.Balance <= 0 {
		inv.Balance = 0
		inv.Status = InvoicePaid
		return
	}
	inv.Status = InvoicePartial
}

// InvoiceCatalog orders the invoice columns.
var InvoiceCatalog = record.Catalog[*Invoice]{
	Name: "invoice",
	New:  func() *Invoice { return &Invoice{} },
	Fields: []record.Field[*Invoice]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(inv *Invoice) any { return inv.ID },
			Set: func(inv *Invoice, v any) error { return assign(&inv.ID, v) },
		},
		{
			Name: "customerId", Kind: record.KindString,
			Get: func(inv *Invoice) any { return inv.CustomerID },
			Set: func(inv *Invoice, v any) error { return assign(&inv.CustomerID, v) },
		},
		{
			Name: "apptId", Kind: record.KindString,
			Get: func(inv *Invoice) any { return inv.ApptID },
			Set: func(inv *Invoice, v any) error { return assign(&inv.ApptID, v) },
		},
		{
			Name: "serviceFee", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.ServiceFee },
			Set: func(inv *Invoice, v any) error { return assign(&inv.ServiceFee, v) },
		},
		{
			Name: "totalAmount", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.TotalAmount },
			Set: func(inv *Invoice, v any) error { return assign(&inv.TotalAmount, v) },
		},
		{
			Name: "taxRate", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.TaxRate },
			Set: func(inv *Invoice, v any) error { return assign(&inv.TaxRate, v) },
		},
		{
			Name: "balance", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.Balance },
			Set: func(inv *Invoice, v any) error { return assign(&inv.Balance, v) },
		},
		{
			Name: "currentPaid", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.CurrentPaid },
			Set: func(inv *Invoice, v any) error { return assign(&inv.CurrentPaid, v) },
		},
		{
			Name: "totalPayable", Kind: record.KindFloat,
			Get: func(inv *Invoice) any { return inv.TotalPayable },
			Set: func(inv *Invoice, v any) error { return assign(&inv.TotalPayable, v) },
		},
		{
			Name: "issueDate", Kind: record.KindDateTime,
			Get: func(inv *Invoice) any { return inv.IssueDate },
			Set: func(inv *Invoice, v any) error { return assign(&inv.IssueDate, v) },
		},
		{
			Name: "status", Kind: record.KindEnum, Enum: invoiceStatusNames,
			Get: func(inv *Invoice) any { return string(inv.Status) },
			Set: func(inv *Invoice, v any) error { return assignEnum(&inv.Status, v) },
		},
	},
}
