package entity

import (
	"time"

	"github.com/carewise/hms/pkg/record"
)

// PrefixUnavailableDate prefixes staff unavailability identifiers.
const PrefixUnavailableDate = "UD"

// UnavailableDate blocks one calendar day for a staff member.
type UnavailableDate struct {
	ID      string
	StaffID string
	Date    time.Time
}

// NewUnavailableDate marks a staff member unavailable on a date.
func NewUnavailableDate(id, staffID string, date time.Time) *UnavailableDate {
	return &UnavailableDate{ID: id, StaffID: staffID, Date: date}
}

// GetID returns the unique identifier of the unavailability entry.
func (u *UnavailableDate) GetID() string {
	return u.ID
}

// UnavailableDateCatalog orders the unavailability columns.
var UnavailableDateCatalog = record.Catalog[*UnavailableDate]{
	Name: "unavailable_date",
	New:  func() *UnavailableDate { return &UnavailableDate{} },
	Fields: []record.Field[*UnavailableDate]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(u *UnavailableDate) any { return u.ID },
			Set: func(u *UnavailableDate, v any) error { return assign(&u.ID, v) },
		},
		{
			Name: "staffId", Kind: record.KindString,
			Get: func(u *UnavailableDate) any { return u.StaffID },
			Set: func(u *UnavailableDate, v any) error { return assign(&u.StaffID, v) },
		},
		{
			Name: "date", Kind: record.KindDateTime,
			Get: func(u *UnavailableDate) any { return u.Date },
			Set: func(u *UnavailableDate, v any) error { return assign(&u.Date, v) },
		},
	},
}
