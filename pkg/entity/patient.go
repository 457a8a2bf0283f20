package entity

import (
	"time"

	"github.com/carewise/hms/pkg/auth"
	"github.com/carewise/hms/pkg/record"
)

// PrefixPatient tags patient identifiers.
const PrefixPatient = "P"

// Patient is a registered patient account.
type Patient struct {
	User
	BloodType     string
	ContactNumber string
	Email         string
}

// NewPatient creates a patient with the default password already
// hashed.
func NewPatient(id, name, gender string, dob time.Time, bloodType, contactNumber, email string) *Patient {
	return &Patient{
		User: User{
			IsPatient: true,
			ID:        id,
			Password:  auth.HashPassword(auth.DefaultPassword),
			Name:      name,
			Gender:    gender,
			DOB:       dob,
		},
		BloodType:     bloodType,
		ContactNumber: contactNumber,
		Email:         email,
	}
}

// PatientCatalog orders the patient columns: the shared user fields
// first, then the patient's own.
var PatientCatalog = record.Catalog[*Patient]{
	Name: "patient",
	New:  func() *Patient { return &Patient{} },
	Fields: append(userFields(func(p *Patient) *User { return &p.User }),
		record.Field[*Patient]{
			Name: "bloodType", Kind: record.KindString,
			Get: func(p *Patient) any { return p.BloodType },
			Set: func(p *Patient, v any) error { return assign(&p.BloodType, v) },
		},
		record.Field[*Patient]{
			Name: "contactNumber", Kind: record.KindString,
			Get: func(p *Patient) any { return p.ContactNumber },
			Set: func(p *Patient, v any) error { return assign(&p.ContactNumber, v) },
		},
		record.Field[*Patient]{
			Name: "email", Kind: record.KindString,
			Get: func(p *Patient) any { return p.Email },
			Set: func(p *Patient, v any) error { return assign(&p.Email, v) },
		},
	),
}
