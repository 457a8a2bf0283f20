package hospital

import (
	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// CreatePrescription opens an active prescription for a completed
// appointment. One appointment carries at most one prescription.
func (h *Hospital) CreatePrescription(apptID string) (*entity.Prescription, error) {
	appt, ok := h.Appointments.Get(apptID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "appointment %s not found", apptID)
	}
	if appt.Status != entity.ApptCompleted && appt.Status != entity.ApptConfirmed {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"appointment %s is %s, prescriptions need a confirmed or completed appointment",
			apptID, appt.Status)
	}
	if existing := h.Prescriptions.FindByField("apptId", apptID); len(existing) > 0 {
		return nil, errors.Newf(errors.ErrorTypeConflict,
			"appointment %s already has prescription %s", apptID, existing[0].ID)
	}

	presc := entity.NewPrescription(h.Prescriptions.NextTypeID(), apptID)
	h.Prescriptions.Add(presc)
	h.log.Info("prescription created",
		zap.String("prescription", presc.ID),
		zap.String("appointment", apptID))
	return presc, nil
}

// SetPrescriptionActive flips a prescription's active flag.
func (h *Hospital) SetPrescriptionActive(prescriptionID string, active bool) error {
	presc, ok := h.Prescriptions.Get(prescriptionID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "prescription %s not found", prescriptionID)
	}
	presc.IsActive = active
	h.Prescriptions.Update(presc)
	return nil
}

// CancelPrescription deactivates a prescription and cancels its pending
// items. Dispensed items stay dispensed.
func (h *Hospital) CancelPrescription(prescriptionID string) error {
	presc, ok := h.Prescriptions.Get(prescriptionID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "prescription %s not found", prescriptionID)
	}
	for _, item := range h.ItemsOf(prescriptionID) {
		if item.Status == entity.ItemPending {
			item.Status = entity.ItemCancelled
			h.Items.Update(item)
		}
	}
	presc.IsActive = false
	h.Prescriptions.Update(presc)
	return nil
}

// PrescriptionCompleted reports whether every item of the prescription
// has been dispensed or cancelled.
func (h *Hospital) PrescriptionCompleted(prescriptionID string) bool {
	for _, item := range h.ItemsOf(prescriptionID) {
		if item.Status == entity.ItemPending {
			return false
		}
	}
	return true
}

// AddPrescriptionItem adds a medication line to an active prescription.
func (h *Hospital) AddPrescriptionItem(prescriptionID, medicineID string, quantity int, notes string) (*entity.PrescriptionItem, error) {
	presc, ok := h.Prescriptions.Get(prescriptionID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "prescription %s not found", prescriptionID)
	}
	if !presc.IsActive {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"prescription %s is inactive", prescriptionID)
	}
	if _, ok := h.Medicines.Get(medicineID); !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	if quantity <= 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"item quantity must be positive, got %d", quantity)
	}

	item := entity.NewPrescriptionItem(h.Items.NextTypeID(),
		prescriptionID, medicineID, quantity, notes)
	h.Items.Add(item)
	return item, nil
}

// UpdatePrescriptionItem changes the quantity and notes of a pending
// item.
func (h *Hospital) UpdatePrescriptionItem(itemID string, quantity int, notes string) (*entity.PrescriptionItem, error) {
	item, ok := h.Items.Get(itemID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "prescription item %s not found", itemID)
	}
	if item.Status != entity.ItemPending {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"item %s is %s and cannot be changed", itemID, item.Status)
	}
	if quantity <= 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"item quantity must be positive, got %d", quantity)
	}
	item.Quantity = quantity
	item.Notes = notes
	h.Items.Update(item)
	return item, nil
}

// RemovePrescriptionItem deletes an item from its prescription.
func (h *Hospital) RemovePrescriptionItem(itemID string) error {
	item, ok := h.Items.Get(itemID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "prescription item %s not found", itemID)
	}
	h.Items.Remove(item)
	return nil
}

// DispenseItem hands out one pending prescription item, deducting the
// dispensed quantity from stock. When the last pending item of the
// prescription is dispensed the prescription goes inactive.
func (h *Hospital) DispenseItem(itemID string) (*entity.PrescriptionItem, error) {
	item, ok := h.Items.Get(itemID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "prescription item %s not found", itemID)
	}
	if item.Status != entity.ItemPending {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"item %s is %s and cannot be dispensed", itemID, item.Status)
	}

	if _, err := h.DeductStock(item.MedicineID, item.Quantity); err != nil {
		return nil, err
	}

	item.Status = entity.ItemDispensed
	h.Items.Update(item)
	h.log.Info("prescription item dispensed",
		zap.String("item", item.ID),
		zap.String("medicine", item.MedicineID),
		zap.Int("quantity", item.Quantity))

	if h.PrescriptionCompleted(item.PrescriptionID) {
		if presc, ok := h.Prescriptions.Get(item.PrescriptionID); ok {
			presc.IsActive = false
			h.Prescriptions.Update(presc)
		}
	}
	return item, nil
}

// ItemsOf returns the items of one prescription.
func (h *Hospital) ItemsOf(prescriptionID string) []*entity.PrescriptionItem {
	return h.Items.FindByField("prescriptionId", prescriptionID)
}

// ActivePrescriptions returns every prescription still open for
// dispensing.
func (h *Hospital) ActivePrescriptions() []*entity.Prescription {
	return h.Prescriptions.FindByField("isActive", true)
}
