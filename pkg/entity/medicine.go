package entity

import (
	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/record"
)

// PrefixMedicine tags medicine identifiers.
const PrefixMedicine = "MED"

// Medicine is an inventory item with a low-stock threshold.
type Medicine struct {
	ID                string
	Name              string
	StockQuantity     int
	UnitCost          float64
	Dosage            float64 // mg
	LowStockThreshold int
}

// NewMedicine creates a medicine inventory entry.
func NewMedicine(id, name string, stock int, unitCost, dosage float64, lowStockThreshold int) *Medicine {
	return &Medicine{
		ID:                id,
		Name:              name,
		StockQuantity:     stock,
		UnitCost:          unitCost,
		Dosage:            dosage,
		LowStockThreshold: lowStockThreshold,
	}
}

// GetID returns the unique identifier of the medicine.
func (m *Medicine) GetID() string {
	return m.ID
}

// Available reports whether any stock remains.
func (m *Medicine) Available() bool {
	return m.StockQuantity > 0
}

// LowStock reports whether stock has fallen below the threshold.
func (m *Medicine) LowStock() bool {
	return m.StockQuantity < m.LowStockThreshold
}

// IncStock increases the stock quantity.
func (m *Medicine) IncStock(qty int) {
	m.StockQuantity += qty
}

// DecStock decreases the stock quantity, guarding against negative
// stock.
func (m *Medicine) DecStock(qty int) error {
	if m.StockQuantity-qty < 0 {
		return errors.Newf(errors.ErrorTypeValidation,
			"stock of %s cannot go negative", m.ID)
	}
	m.StockQuantity -= qty
	return nil
}

// MedicineCatalog orders the medicine columns.
var MedicineCatalog = record.Catalog[*Medicine]{
	Name: "medicine",
	New:  func() *Medicine { return &Medicine{} },
	Fields: []record.Field[*Medicine]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(m *Medicine) any { return m.ID },
			Set: func(m *Medicine, v any) error { return assign(&m.ID, v) },
		},
		{
			Name: "medicineName", Kind: record.KindString,
			Get: func(m *Medicine) any { return m.Name },
			Set: func(m *Medicine, v any) error { return assign(&m.Name, v) },
		},
		{
			Name: "stockQuantity", Kind: record.KindInt,
			Get: func(m *Medicine) any { return m.StockQuantity },
			Set: func(m *Medicine, v any) error { return assign(&m.StockQuantity, v) },
		},
		{
			Name: "unitCost", Kind: record.KindFloat,
			Get: func(m *Medicine) any { return m.UnitCost },
			Set: func(m *Medicine, v any) error { return assign(&m.UnitCost, v) },
		},
		{
			Name: "dosage", Kind: record.KindFloat,
			Get: func(m *Medicine) any { return m.Dosage },
			Set: func(m *Medicine, v any) error { return assign(&m.Dosage, v) },
		},
		{
			Name: "lowStockThreshold", Kind: record.KindInt,
			Get: func(m *Medicine) any { return m.LowStockThreshold },
			Set: func(m *Medicine, v any) error { return assign(&m.LowStockThreshold, v) },
		},
	},
}
