package entity

import (
	"github.com/carewise/hms/pkg/record"
)

// Prescription and prescription item identifier prefixes. PRSCI is
// longer than PRSC on purpose; allocation matching is anchored, so the
// two namespaces never collide.
const (
	PrefixPrescription     = "PRSC"
	PrefixPrescriptionItem = "PRSCI"
)

// Prescription groups the medication items issued for one appointment.
type Prescription struct {
	ID       string
	ApptID   string
	IsActive bool
}

// NewPrescription creates an active prescription for an appointment.
func NewPrescription(id, apptID string) *Prescription {
	return &Prescription{ID: id, ApptID: apptID, IsActive: true}
}

// GetID returns the unique identifier of the prescription.
func (p *Prescription) GetID() string {
	return p.ID
}

// PrescriptionCatalog orders the prescription columns.
var PrescriptionCatalog = record.Catalog[*Prescription]{
	Name: "prescription",
	New:  func() *Prescription { return &Prescription{} },
	Fields: []record.Field[*Prescription]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(p *Prescription) any { return p.ID },
			Set: func(p *Prescription, v any) error { return assign(&p.ID, v) },
		},
		{
			Name: "apptId", Kind: record.KindString,
			Get: func(p *Prescription) any { return p.ApptID },
			Set: func(p *Prescription, v any) error { return assign(&p.ApptID, v) },
		},
		{
			Name: "isActive", Kind: record.KindBool,
			Get: func(p *Prescription) any { return p.IsActive },
			Set: func(p *Prescription, v any) error { return assign(&p.IsActive, v) },
		},
	},
}

// ItemStatus is the dispensing state of one prescription item.
type ItemStatus string

const (
	ItemPending   ItemStatus = "PENDING"
	ItemCancelled ItemStatus = "CANCELLED"
	ItemDispensed ItemStatus = "DISPENSED"
)

var itemStatusNames = []string{
	string(ItemPending),
	string(ItemCancelled),
	string(ItemDispensed),
}

// PrescriptionItem is one medication line of a prescription.
type PrescriptionItem struct {
	ID             string
	PrescriptionID string
	MedicineID     string
	Quantity       int
	Status         ItemStatus
	Notes          string
}

// NewPrescriptionItem creates a pending prescription item.
func NewPrescriptionItem(id, prescriptionID, medicineID string, quantity int, notes string) *PrescriptionItem {
	return &PrescriptionItem{
		ID:             id,
		PrescriptionID: prescriptionID,
		MedicineID:     medicineID,
		Quantity:       quantity,
		Status:         ItemPending,
		Notes:          notes,
	}
}

// GetID returns the unique identifier of the prescription item.
func (i *PrescriptionItem) GetID() string {
	return i.ID
}

// PrescriptionItemCatalog orders the prescription item columns.
var PrescriptionItemCatalog = record.Catalog[*PrescriptionItem]{
	Name: "prescription_item",
	New:  func() *PrescriptionItem { return &PrescriptionItem{} },
	Fields: []record.Field[*PrescriptionItem]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(i *PrescriptionItem) any { return i.ID },
			Set: func(i *PrescriptionItem, v any) error { return assign(&i.ID, v) },
		},
		{
			Name: "prescriptionId", Kind: record.KindString,
			Get: func(i *PrescriptionItem) any { return i.PrescriptionID },
			Set: func(i *PrescriptionItem, v any) error { return assign(&i.PrescriptionID, v) },
		},
		{
			Name: "medicineId", Kind: record.KindString,
			Get: func(i *PrescriptionItem) any { return i.MedicineID },
			Set: func(i *PrescriptionItem, v any) error { return assign(&i.MedicineID, v) },
		},
		{
			Name: "quantity", Kind: record.KindInt,
			Get: func(i *PrescriptionItem) any { return i.Quantity },
			Set: func(i *PrescriptionItem, v any) error { return assign(&i.Quantity, v) },
		},
		{
			Name: "status", Kind: record.KindEnum, Enum: itemStatusNames,
			Get: func(i *PrescriptionItem) any { return string(i.Status) },
			Set: func(i *PrescriptionItem, v any) error { return assignEnum(&i.Status, v) },
		},
		{
			Name: "notes", Kind: record.KindString,
			Get: func(i *PrescriptionItem) any { return i.Notes },
			Set: func(i *PrescriptionItem, v any) error { return assign(&i.Notes, v) },
		},
	},
}
