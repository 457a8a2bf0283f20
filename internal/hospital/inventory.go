package hospital

import (
	"strings"

	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// AddMedicine registers a new medicine in the inventory.
func (h *Hospital) AddMedicine(name string, stock int, unitCost, dosage float64, lowStockThreshold int) (*entity.Medicine, error) {
	if name == "" {
		return nil, errors.New(errors.ErrorTypeValidation, "medicine name is required")
	}
	if stock < 0 || unitCost < 0 || lowStockThreshold < 0 {
		return nil, errors.New(errors.ErrorTypeValidation,
			"stock, unit cost and threshold must not be negative")
	}
	med := entity.NewMedicine(h.Medicines.NextTypeID(), name, stock, unitCost, dosage, lowStockThreshold)
	h.Medicines.Add(med)
	h.log.Info("medicine added", zap.String("medicine", med.ID), zap.String("name", name))
	return med, nil
}

// RemoveMedicine deletes a medicine from the inventory.
func (h *Hospital) RemoveMedicine(medicineID string) error {
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	h.Medicines.Remove(med)
	return nil
}

// RestockMedicine increases a medicine's stock by quantity.
func (h *Hospital) RestockMedicine(medicineID string, quantity int) (*entity.Medicine, error) {
	if quantity <= 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"restock quantity must be positive, got %d", quantity)
	}
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	med.IncStock(quantity)
	h.Medicines.Update(med)
	return med, nil
}

// DeductStock decreases a medicine's stock, rejecting a deduction that
// would drive it negative. Falling below the low-stock threshold
// notifies every pharmacist.
func (h *Hospital) DeductStock(medicineID string, quantity int) (*entity.Medicine, error) {
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	if err := med.DecStock(quantity); err != nil {
		return nil, err
	}
	h.Medicines.Update(med)

	if med.LowStock() {
		h.notifyRole(entity.RolePharmacist,
			"Medicine "+med.Name+" ("+med.ID+") is below its low-stock threshold")
	}
	return med, nil
}

// SetStock overwrites a medicine's stock level.
func (h *Hospital) SetStock(medicineID string, quantity int) (*entity.Medicine, error) {
	if quantity < 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"stock cannot be negative, got %d", quantity)
	}
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	med.StockQuantity = quantity
	h.Medicines.Update(med)
	return med, nil
}

// SetLowStockThreshold updates a medicine's alert threshold.
func (h *Hospital) SetLowStockThreshold(medicineID string, threshold int) (*entity.Medicine, error) {
	if threshold < 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"threshold cannot be negative, got %d", threshold)
	}
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	med.LowStockThreshold = threshold
	h.Medicines.Update(med)
	return med, nil
}

// LowStockMedicines returns every medicine below its threshold.
func (h *Hospital) LowStockMedicines() []*entity.Medicine {
	var out []*entity.Medicine
	for med := range h.Medicines.All() {
		if med.LowStock() {
			out = append(out, med)
		}
	}
	return out
}

// FindMedicineByName returns the medicines whose name contains the
// query, case-insensitively.
func (h *Hospital) FindMedicineByName(query string) []*entity.Medicine {
	q := strings.ToLower(query)
	var out []*entity.Medicine
	for med := range h.Medicines.All() {
		if strings.Contains(strings.ToLower(med.Name), q) {
			out = append(out, med)
		}
	}
	return out
}

// Medicine returns a medicine by identifier.
func (h *Hospital) Medicine(medicineID string) (*entity.Medicine, error) {
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	return med, nil
}
