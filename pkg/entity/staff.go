package entity

import (
	"strings"
	"time"

	"github.com/carewise/hms/pkg/auth"
	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/record"
)

// Role is the discriminant of the staff hierarchy. Its external
// encoding is the identifier prefix: D for doctors, PH for pharmacists,
// A for administrators.
type Role string

const (
	RoleDoctor        Role = "DOCTOR"
	RolePharmacist    Role = "PHARMACIST"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// roleNames lists the canonical symbolic names for the role column.
var roleNames = []string{
	string(RoleDoctor),
	string(RolePharmacist),
	string(RoleAdministrator),
}

// Prefix returns the identifier prefix encoding the role.
func (r Role) Prefix() (string, error) {
	switch r {
	case RoleDoctor:
		return "D", nil
	case RolePharmacist:
		return "PH", nil
	case RoleAdministrator:
		return "A", nil
	default:
		return "", errors.Newf(errors.ErrorTypeValidation, "invalid staff role: %s", r)
	}
}

// RoleFromID derives the role from an identifier's prefix. PH is
// checked before the shorter prefixes so pharmacist IDs are never
// misread.
func RoleFromID(id string) (Role, error) {
	switch {
	case strings.HasPrefix(id, "PH"):
		return RolePharmacist, nil
	case strings.HasPrefix(id, "D"):
		return RoleDoctor, nil
	case strings.HasPrefix(id, "A"):
		return RoleAdministrator, nil
	default:
		return "", errors.Newf(errors.ErrorTypeFormat, "invalid prefix in staff id: %s", id)
	}
}

// Staff is a hospital staff member. The former doctor/pharmacist/
// administrator subclasses carried no fields of their own, so the
// hierarchy collapses into one struct tagged by Role.
type Staff struct {
	User
	Role Role
}

// NewStaff creates a staff member with the default password already
// hashed.
func NewStaff(id, name, gender string, dob time.Time, role Role) *Staff {
	return &Staff{
		User: User{
			IsPatient: false,
			ID:        id,
			Password:  auth.HashPassword(auth.DefaultPassword),
			Name:      name,
			Gender:    gender,
			DOB:       dob,
		},
		Role: role,
	}
}

// StaffCatalog orders the staff columns: the shared user fields first,
// then the role. Rows are decoded through NewByID so the role variant
// is fixed from the identifier prefix before field assignment.
var StaffCatalog = record.Catalog[*Staff]{
	Name: "staff",
	New:  func() *Staff { return &Staff{} },
	NewByID: func(id string) (*Staff, error) {
		role, err := RoleFromID(id)
		if err != nil {
			return nil, err
		}
		return &Staff{Role: role}, nil
	},
	Fields: append(userFields(func(s *Staff) *User { return &s.User }),
		record.Field[*Staff]{
			Name: "role", Kind: record.KindEnum, Enum: roleNames,
			Get: func(s *Staff) any { return string(s.Role) },
			Set: func(s *Staff, v any) error { return assignEnum(&s.Role, v) },
		},
	),
}
