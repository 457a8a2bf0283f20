package hospital

import (
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

var (
	emailPattern   = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,6}$`)
	contactPattern = regexp.MustCompile(`^[89][0-9]{7}$`)
)

// validateContactDetails checks the contact number and email formats.
// Empty values pass: the record format treats an empty cell as absent,
// and both fields are optional at registration.
func validateContactDetails(contactNumber, email string) error {
	if contactNumber != "" && !contactPattern.MatchString(contactNumber) {
		return errors.Newf(errors.ErrorTypeValidation,
			"contact number %q must be 8 digits starting with 8 or 9", contactNumber)
	}
	if email != "" && !emailPattern.MatchString(email) {
		return errors.Newf(errors.ErrorTypeValidation, "invalid email address %q", email)
	}
	return nil
}

// RegisterPatient creates a patient account with a freshly allocated ID
// and the default password.
func (h *Hospital) RegisterPatient(name, gender string, dob time.Time, bloodType, contactNumber, email string) (*entity.Patient, error) {
	if name == "" {
		return nil, errors.New(errors.ErrorTypeValidation, "patient name is required")
	}
	if err := validateContactDetails(contactNumber, email); err != nil {
		return nil, err
	}
	p := entity.NewPatient(h.Patients.NextTypeID(), name, gender, dob,
		bloodType, contactNumber, email)
	h.Patients.Add(p)
	h.log.Info("patient registered", zap.String("patient", p.GetID()))
	return p, nil
}

// UpdatePatientContact changes a patient's contact number and email.
func (h *Hospital) UpdatePatientContact(patientID, contactNumber, email string) (*entity.Patient, error) {
	p, ok := h.Patients.Get(patientID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "patient %s not found", patientID)
	}
	if err := validateContactDetails(contactNumber, email); err != nil {
		return nil, err
	}
	p.ContactNumber = contactNumber
	p.Email = email
	h.Patients.Update(p)
	return p, nil
}

// AddStaff creates a staff account. The identifier prefix is derived
// from the role, so doctors, pharmacists and administrators draw from
// separate number sequences within the shared staff store.
func (h *Hospital) AddStaff(name, gender string, dob time.Time, role entity.Role) (*entity.Staff, error) {
	if name == "" {
		return nil, errors.New(errors.ErrorTypeValidation, "staff name is required")
	}
	prefix, err := role.Prefix()
	if err != nil {
		return nil, err
	}
	s := entity.NewStaff(h.Staff.NextID(prefix), name, gender, dob, role)
	h.Staff.Add(s)
	h.log.Info("staff added",
		zap.String("staff", s.GetID()),
		zap.String("role", string(role)))
	return s, nil
}

// UpdateStaff changes a staff member's name and gender.
func (h *Hospital) UpdateStaff(staffID, name, gender string) (*entity.Staff, error) {
	s, ok := h.Staff.Get(staffID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "staff %s not found", staffID)
	}
	if name != "" {
		s.Name = name
	}
	if gender != "" {
		s.Gender = gender
	}
	h.Staff.Update(s)
	return s, nil
}

// RemoveStaff deletes a staff account.
func (h *Hospital) RemoveStaff(staffID string) error {
	s, ok := h.Staff.Get(staffID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "staff %s not found", staffID)
	}
	h.Staff.Remove(s)
	return nil
}

// StaffByRole returns every staff member holding a role.
func (h *Hospital) StaffByRole(role entity.Role) []*entity.Staff {
	return h.Staff.FindByField("role", string(role))
}

// Doctors returns every doctor on staff.
func (h *Hospital) Doctors() []*entity.Staff {
	return h.StaffByRole(entity.RoleDoctor)
}

// ChangePassword verifies the current password of a patient or staff
// account and stores the hash of the new one.
func (h *Hospital) ChangePassword(userID, current, next string) error {
	if next == "" {
		return errors.New(errors.ErrorTypeValidation, "new password must not be empty")
	}

	if p, ok := h.Patients.Get(userID); ok {
		if !p.CheckPassword(current) {
			return errors.New(errors.ErrorTypeAuthentication, "current password does not match")
		}
		p.ChangePassword(next)
		h.Patients.Update(p)
		return nil
	}
	if s, ok := h.Staff.Get(userID); ok {
		if !s.CheckPassword(current) {
			return errors.New(errors.ErrorTypeAuthentication, "current password does not match")
		}
		s.ChangePassword(next)
		h.Staff.Update(s)
		return nil
	}
	return errors.Newf(errors.ErrorTypeNotFound, "user %s not found", userID)
}
