package entity

import (
	"time"

	"github.com/carewise/hms/pkg/auth"
	"github.com/carewise/hms/pkg/record"
)

// User holds the account fields shared by patients and hospital staff.
// Types embedding User inherit its columns at the front of their
// catalogs, in declaring order.
type User struct {
	IsPatient bool
	ID        string
	Password  string // hex SHA-256 digest, never plain text
	Name      string
	Gender    string
	DOB       time.Time
}

// GetID returns the unique identifier of the user.
func (u *User) GetID() string {
	return u.ID
}

// ChangePassword hashes the plain-text input and stores the digest.
func (u *User) ChangePassword(plain string) {
	u.Password = auth.HashPassword(plain)
}

// CheckPassword reports whether the plain-text input matches the stored
// digest.
func (u *User) CheckPassword(plain string) bool {
	return auth.Verify(plain, u.Password)
}

// userFields builds the shared base-field descriptors for a type
// embedding User. The base columns precede the type's own columns in
// every user-derived catalog.
func userFields[T record.Record](user func(T) *User) []record.Field[T] {
	return []record.Field[T]{
		{
			Name: "isPatient", Kind: record.KindBool,
			Get: func(r T) any { return user(r).IsPatient },
			Set: func(r T, v any) error { return assign(&user(r).IsPatient, v) },
		},
		{
			Name: "id", Kind: record.KindString,
			Get: func(r T) any { return user(r).ID },
			Set: func(r T, v any) error { return assign(&user(r).ID, v) },
		},
		{
			Name: "password", Kind: record.KindString,
			Get: func(r T) any { return user(r).Password },
			Set: func(r T, v any) error { return assign(&user(r).Password, v) },
		},
		{
			Name: "name", Kind: record.KindString,
			Get: func(r T) any { return user(r).Name },
			Set: func(r T, v any) error { return assign(&user(r).Name, v) },
		},
		{
			Name: "gender", Kind: record.KindString,
			Get: func(r T) any { return user(r).Gender },
			Set: func(r T, v any) error { return assign(&user(r).Gender, v) },
		},
		{
			Name: "dob", Kind: record.KindDate,
			Get: func(r T) any { return user(r).DOB },
			Set: func(r T, v any) error { return assign(&user(r).DOB, v) },
		},
	}
}
