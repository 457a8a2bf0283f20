package entity

import (
	"strings"
	"time"

	"github.com/carewise/hms/pkg/errors"
	"github.com/carewise/hms/pkg/record"
)

// PrefixAppointment tags appointment identifiers.
const PrefixAppointment = "APPT"

// Service is the type of service provided in an appointment.
type Service string

const (
	ServiceConsultation Service = "CONSULTATION"
	ServiceXRay         Service = "XRAY"
	ServiceLabTest      Service = "LABTEST"
)

var serviceNames = []string{
	string(ServiceConsultation),
	string(ServiceXRay),
	string(ServiceLabTest),
}

// ParseService matches a raw value against the service names the same
// way the record decoder does, ignoring case. Anything outside the
// known names is rejected so it can never reach a data file.
func ParseService(raw string) (Service, error) {
	f, _ := AppointmentCatalog.Field("service")
	name, err := f.CanonicalEnum(raw)
	if err != nil {
		return "", errors.Newf(errors.ErrorTypeValidation,
			"invalid service %q, want one of %s", raw, strings.Join(serviceNames, ", "))
	}
	return Service(name), nil
}

// ApptStatus is the lifecycle state of an appointment.
type ApptStatus string

const (
	ApptPending   ApptStatus = "PENDING"
	ApptConfirmed ApptStatus = "CONFIRMED"
	ApptCompleted ApptStatus = "COMPLETED"
	ApptCanceled  ApptStatus = "CANCELED"
)

var apptStatusNames = []string{
	string(ApptPending),
	string(ApptConfirmed),
	string(ApptCompleted),
	string(ApptCanceled),
}

// Appointment links a patient and a doctor to a scheduled service slot.
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	DateTime  time.Time
	Service   Service
	Status    ApptStatus
	Diagnosis string
	Notes     string
}

// NewAppointment creates a pending appointment for the given slot.
func NewAppointment(id, patientID, doctorID string, service Service, dateTime time.Time) *Appointment {
	return &Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  dateTime,
		Service:   service,
		Status:    ApptPending,
	}
}

// GetID returns the unique identifier of the appointment.
func (a *Appointment) GetID() string {
	return a.ID
}

// AppointmentCatalog orders the appointment columns.
var AppointmentCatalog = record.Catalog[*Appointment]{
	Name: "appointment",
	New:  func() *Appointment { return &Appointment{} },
	Fields: []record.Field[*Appointment]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(a *Appointment) any { return a.ID },
			Set: func(a *Appointment, v any) error { return assign(&a.ID, v) },
		},
		{
			Name: "patientId", Kind: record.KindString,
			Get: func(a *Appointment) any { return a.PatientID },
			Set: func(a *Appointment, v any) error { return assign(&a.PatientID, v) },
		},
		{
			Name: "doctorId", Kind: record.KindString,
			Get: func(a *Appointment) any { return a.DoctorID },
			Set: func(a *Appointment, v any) error { return assign(&a.DoctorID, v) },
		},
		{
			Name: "apptDateTime", Kind: record.KindDateTime,
			Get: func(a *Appointment) any { return a.DateTime },
			Set: func(a *Appointment, v any) error { return assign(&a.DateTime, v) },
		},
		{
			Name: "service", Kind: record.KindEnum, Enum: serviceNames,
			Get: func(a *Appointment) any { return string(a.Service) },
			Set: func(a *Appointment, v any) error { return assignEnum(&a.Service, v) },
		},
		{
			Name: "status", Kind: record.KindEnum, Enum: apptStatusNames,
			Get: func(a *Appointment) any { return string(a.Status) },
			Set: func(a *Appointment, v any) error { return assignEnum(&a.Status, v) },
		},
		{
			Name: "diagnosis", Kind: record.KindString,
			Get: func(a *Appointment) any { return a.Diagnosis },
			Set: func(a *Appointment, v any) error { return assign(&a.Diagnosis, v) },
		},
		{
			Name: "notes", Kind: record.KindString,
			Get: func(a *Appointment) any { return a.Notes },
			Set: func(a *Appointment, v any) error { return assign(&a.Notes, v) },
		},
	},
}
