package hospital

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// defaultSlots are the bookable hours of a working day: three morning
// slots and three afternoon slots, on the hour.
var defaultSlots = []int{9, 10, 11, 14, 15, 16}

// DefaultSlots returns the bookable slot times for a calendar day.
func DefaultSlots(day time.Time) []time.Time {
	slots := make([]time.Time, 0, len(defaultSlots))
	for _, hour := range defaultSlots {
		slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(),
			hour, 0, 0, 0, day.Location()))
	}
	return slots
}

// ScheduleAppointment books a pending appointment for a patient with a
// doctor at the given slot. The slot must be free for that doctor and
// the doctor must not be marked unavailable on that day.
func (h *Hospital) ScheduleAppointment(patientID, doctorID string, service entity.Service, at time.Time) (*entity.Appointment, error) {
	svc, err := entity.ParseService(string(service))
	if err != nil {
		return nil, err
	}
	if _, ok := h.Patients.Get(patientID); !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "patient %s not found", patientID)
	}
	doctor, ok := h.Staff.Get(doctorID)
	if !ok || doctor.Role != entity.RoleDoctor {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "doctor %s not found", doctorID)
	}
	if err := h.checkSlotFree(doctorID, at); err != nil {
		return nil, err
	}

	appt := entity.NewAppointment(h.Appointments.NextTypeID(), patientID, doctorID, svc, at)
	h.Appointments.Add(appt)
	h.log.Info("appointment scheduled",
		zap.String("appointment", appt.ID),
		zap.String("doctor", doctorID),
		zap.Time("at", at))

	h.Notify(doctorID, fmt.Sprintf("New appointment %s requested for %s",
		appt.ID, at.Format("2006-01-02 15:04")))
	return appt, nil
}

// RescheduleAppointment moves a pending or confirmed appointment to a
// new slot, which must be free for the same doctor.
func (h *Hospital) RescheduleAppointment(apptID string, at time.Time) (*entity.Appointment, error) {
	appt, ok := h.Appointments.Get(apptID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "appointment %s not found", apptID)
	}
	if appt.Status == entity.ApptCompleted || appt.Status == entity.ApptCanceled {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"appointment %s is %s and cannot be rescheduled", apptID, appt.Status)
	}
	if err := h.checkSlotFree(appt.DoctorID, at); err != nil {
		return nil, err
	}

	appt.DateTime = at
	appt.Status = entity.ApptPending
	h.Appointments.Update(appt)
	h.Notify(appt.DoctorID, fmt.Sprintf("Appointment %s rescheduled to %s",
		appt.ID, at.Format("2006-01-02 15:04")))
	return appt, nil
}

// DecideAppointment records the doctor's verdict on a pending
// appointment: accepted appointments become CONFIRMED, declined ones
// CANCELED. The patient is notified either way.
func (h *Hospital) DecideAppointment(apptID string, accept bool) (*entity.Appointment, error) {
	appt, ok := h.Appointments.Get(apptID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "appointment %s not found", apptID)
	}
	if appt.Status != entity.ApptPending {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"appointment %s is %s, only pending appointments can be decided", apptID, appt.Status)
	}

	if accept {
		appt.Status = entity.ApptConfirmed
		h.Notify(appt.PatientID, fmt.Sprintf("Appointment %s confirmed for %s",
			appt.ID, appt.DateTime.Format("2006-01-02 15:04")))
	} else {
		appt.Status = entity.ApptCanceled
		h.Notify(appt.PatientID, fmt.Sprintf("Appointment %s was declined", appt.ID))
	}
	h.Appointments.Update(appt)
	return appt, nil
}

// CompleteAppointment closes a confirmed appointment with the doctor's
// diagnosis and notes and issues the invoice for the service fee.
func (h *Hospital) CompleteAppointment(apptID, diagnosis, notes string) (*entity.Invoice, error) {
	appt, ok := h.Appointments.Get(apptID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "appointment %s not found", apptID)
	}
	if appt.Status != entity.ApptConfirmed {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"appointment %s is %s, only confirmed appointments can be completed", apptID, appt.Status)
	}

	appt.Status = entity.ApptCompleted
	appt.Diagnosis = diagnosis
	appt.Notes = notes
	h.Appointments.Update(appt)

	inv := h.CreateInvoice(appt)
	h.Notify(appt.PatientID, fmt.Sprintf("Appointment %s completed, invoice %s issued",
		appt.ID, inv.ID))
	return inv, nil
}

// CancelAppointment cancels an appointment that has not been completed.
func (h *Hospital) CancelAppointment(apptID string) error {
	appt, ok := h.Appointments.Get(apptID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "appointment %s not found", apptID)
	}
	if appt.Status == entity.ApptCompleted {
		return errors.Newf(errors.ErrorTypeValidation,
			"appointment %s is completed and cannot be canceled", apptID)
	}
	appt.Status = entity.ApptCanceled
	h.Appointments.Update(appt)
	h.Notify(appt.DoctorID, fmt.Sprintf("Appointment %s was canceled", appt.ID))
	return nil
}

// checkSlotFree rejects a slot already taken by a live appointment of
// the doctor or falling on one of the doctor's unavailable dates.
func (h *Hospital) checkSlotFree(doctorID string, at time.Time) error {
	if h.StaffUnavailableOn(doctorID, at) {
		return errors.Newf(errors.ErrorTypeConflict,
			"doctor %s is unavailable on %s", doctorID, at.Format("2006-01-02"))
	}
	for _, appt := range h.AppointmentsByDoctor(doctorID) {
		if appt.Status == entity.ApptCanceled {
			continue
		}
		if appt.DateTime.Equal(at) {
			return errors.Newf(errors.ErrorTypeConflict,
				"doctor %s already has appointment %s at %s",
				doctorID, appt.ID, at.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

// AvailableSlots computes the open slots for a doctor on a day: the
// default slots minus booked and unavailable ones. The result is in
// chronological order; an unavailable day yields no slots.
func (h *Hospital) AvailableSlots(doctorID string, day time.Time) []time.Time {
	if h.StaffUnavailableOn(doctorID, day) {
		return nil
	}

	taken := make(map[time.Time]bool)
	for _, appt := range h.AppointmentsByDoctor(doctorID) {
		if appt.Status != entity.ApptCanceled {
			taken[appt.DateTime] = true
		}
	}

	var free []time.Time
	for _, slot := range DefaultSlots(day) {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// AppointmentsByDoctor returns all appointments assigned to a doctor.
func (h *Hospital) AppointmentsByDoctor(doctorID string) []*entity.Appointment {
	return h.Appointments.FindByField("doctorId", doctorID)
}

// AppointmentsByPatient returns all appointments booked by a patient.
func (h *Hospital) AppointmentsByPatient(patientID string) []*entity.Appointment {
	return h.Appointments.FindByField("patientId", patientID)
}

// AppointmentsByStatus returns all appointments in the given state.
func (h *Hospital) AppointmentsByStatus(status entity.ApptStatus) []*entity.Appointment {
	return h.Appointments.FindByField("status", string(status))
}

// AppointmentsOn returns the appointments of a doctor on a calendar
// day.
func (h *Hospital) AppointmentsOn(doctorID string, day time.Time) []*entity.Appointment {
	var out []*entity.Appointment
	for _, appt := range h.AppointmentsByDoctor(doctorID) {
		if sameDay(appt.DateTime, day) {
			out = append(out, appt)
		}
	}
	return out
}

// AppointmentOutcome is the record of a completed appointment together
// with its prescription, if one was issued.
type AppointmentOutcome struct {
	Appointment  *entity.Appointment
	Prescription *entity.Prescription
	Items        []*entity.PrescriptionItem
}

// Outcomes returns the completed appointments of a patient with their
// prescriptions and items.
func (h *Hospital) Outcomes(patientID string) []AppointmentOutcome {
	var out []AppointmentOutcome
	for _, appt := range h.AppointmentsByPatient(patientID) {
		if appt.Status != entity.ApptCompleted {
			continue
		}
		o := AppointmentOutcome{Appointment: appt}
		if prescs := h.Prescriptions.FindByField("apptId", appt.ID); len(prescs) > 0 {
			o.Prescription = prescs[0]
			o.Items = h.ItemsOf(o.Prescription.ID)
		}
		out = append(out, o)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
