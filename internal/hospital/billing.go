package hospital

import (
	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// CreateInvoice issues the invoice for a completed appointment. The
// base fee comes from the configured fee table; dispensed medication is
// added by RecalculateInvoice once the prescription is filled.
func (h *Hospital) CreateInvoice(appt *entity.Appointment) *entity.Invoice {
	fee := h.cfg.Billing.ServiceFee(string(appt.Service))
	inv := entity.NewInvoice(h.Invoices.NextTypeID(),
		appt.PatientID, appt.ID, fee, h.cfg.Billing.TaxRate)
	h.Invoices.Add(inv)
	h.log.Info("invoice issued",
		zap.String("invoice", inv.ID),
		zap.String("appointment", appt.ID),
		zap.Float64("payable", inv.TotalPayable))
	return inv
}

// RecalculateInvoice refreshes an appointment's invoice from the
// current dispensed prescription items: unit cost times quantity on top
// of the service fee, taxed at the configured rate. Payments already
// made are preserved.
func (h *Hospital) RecalculateInvoice(invoiceID string) (*entity.Invoice, error) {
	inv, ok := h.Invoices.Get(invoiceID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "invoice %s not found", invoiceID)
	}
	if inv.Status == entity.InvoiceCanceled {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"invoice %s is canceled", invoiceID)
	}

	total := inv.ServiceFee
	for _, presc := range h.Prescriptions.FindByField("apptId", inv.ApptID) {
		for _, item := range h.ItemsOf(presc.ID) {
			if item.Status != entity.ItemDispensed {
				continue
			}
			med, ok := h.Medicines.Get(item.MedicineID)
			if !ok {
				return nil, errors.Newf(errors.ErrorTypeNotFound,
					"medicine %s on item %s not found", item.MedicineID, item.ID)
			}
			total += med.UnitCost * float64(item.Quantity)
		}
	}

	inv.TotalAmount = total
	inv.TotalPayable = total * (1 + inv.TaxRate)
	inv.Balance = inv.TotalPayable - inv.CurrentPaid
	if inv.Balance < 0 {
		inv.Balance = 0
	}
	h.Invoices.Update(inv)
	return inv, nil
}

// PayInvoice records a payment against an invoice. Paying the full
// balance marks the invoice PAID; anything less marks it PARTIAL.
func (h *Hospital) PayInvoice(invoiceID string, amount float64) (*entity.Invoice, error) {
	inv, ok := h.Invoices.Get(invoiceID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "invoice %s not found", invoiceID)
	}
	if inv.Status == entity.InvoiceCanceled {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"invoice %s is canceled", invoiceID)
	}
	if amount <= 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"payment amount must be positive, got %.2f", amount)
	}
	if amount > inv.Outstanding() {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"payment %.2f exceeds outstanding balance %.2f", amount, inv.Outstanding())
	}

	inv.Pay(amount)
	h.Invoices.Update(inv)
	if inv.Status == entity.InvoicePaid {
		h.Notify(inv.CustomerID, "Invoice "+inv.ID+" fully paid, thank you")
	}
	return inv, nil
}

// CancelInvoice voids an invoice that has received no payment.
func (h *Hospital) CancelInvoice(invoiceID string) error {
	inv, ok := h.Invoices.Get(invoiceID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "invoice %s not found", invoiceID)
	}
	if inv.CurrentPaid > 0 {
		return errors.Newf(errors.ErrorTypeValidation,
			"invoice %s has payments recorded and cannot be canceled", invoiceID)
	}
	inv.Status = entity.InvoiceCanceled
	inv.Balance = 0
	h.Invoices.Update(inv)
	return nil
}

// DeleteInvoice removes an invoice entirely.
func (h *Hospital) DeleteInvoice(invoiceID string) error {
	inv, ok := h.Invoices.Get(invoiceID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "invoice %s not found", invoiceID)
	}
	h.Invoices.Remove(inv)
	return nil
}

// InvoicesByCustomer returns all invoices billed to a patient.
func (h *Hospital) InvoicesByCustomer(customerID string) []*entity.Invoice {
	return h.Invoices.FindByField("customerId", customerID)
}

// InvoiceForAppointment returns the invoice issued for an appointment.
func (h *Hospital) InvoiceForAppointment(apptID string) (*entity.Invoice, error) {
	invs := h.Invoices.FindByField("apptId", apptID)
	if len(invs) == 0 {
		return nil, errors.Newf(errors.ErrorTypeNotFound,
			"no invoice for appointment %s", apptID)
	}
	return invs[0], nil
}
