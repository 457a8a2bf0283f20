package hospital

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carewise/hms/pkg/auth"
	"github.com/carewise/hms/pkg/codec"
	"github.com/carewise/hms/pkg/config"
	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// newTestHospital opens a hospital over a temp data directory seeded
// with header-only files.
func newTestHospital(t *testing.T) *Hospital {
	t.Helper()
	dir := t.TempDir()

	headers := map[string][]string{
		PatientFile:          entity.PatientCatalog.Header(),
		StaffFile:            entity.StaffCatalog.Header(),
		AppointmentFile:      entity.AppointmentCatalog.Header(),
		MedicineFile:         entity.MedicineCatalog.Header(),
		PrescriptionFile:     entity.PrescriptionCatalog.Header(),
		PrescriptionItemFile: entity.PrescriptionItemCatalog.Header(),
		InvoiceFile:          entity.InvoiceCatalog.Header(),
		NotificationFile:     entity.NotificationCatalog.Header(),
		MedicineRequestFile:  entity.MedicineRequestCatalog.Header(),
		UnavailableDateFile:  entity.UnavailableDateCatalog.Header(),
	}
	for name, header := range headers {
		content := strings.Join(header, codec.Delimiter) + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	cfg := config.Default()
	cfg.DataDir = dir
	h, err := New(cfg)
	require.NoError(t, err)
	return h
}

func TestNewFailsOnMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeStorage))
}

func TestStaffIDAllocationByRole(t *testing.T) {
	h := newTestHospital(t)
	dob := time.Date(1980, 4, 2, 0, 0, 0, 0, time.UTC)

	d1, err := h.AddStaff("Alice Tan", "F", dob, entity.RoleDoctor)
	require.NoError(t, err)
	ph1, err := h.AddStaff("Bob Lee", "M", dob, entity.RolePharmacist)
	require.NoError(t, err)
	d2, err := h.AddStaff("Carol Ng", "F", dob, entity.RoleDoctor)
	require.NoError(t, err)
	a1, err := h.AddStaff("Derek Ong", "M", dob, entity.RoleAdministrator)
	require.NoError(t, err)

	assert.Equal(t, "D001", d1.GetID())
	assert.Equal(t, "PH001", ph1.GetID())
	assert.Equal(t, "D002", d2.GetID())
	assert.Equal(t, "A001", a1.GetID())
}

func TestLogin(t *testing.T) {
	h := newTestHospital(t)
	dob := time.Date(1992, 6, 1, 0, 0, 0, 0, time.UTC)

	p, err := h.RegisterPatient("Dana Loh", "F", dob, "O+", "91234567", "dana@example.com")
	require.NoError(t, err)
	d, err := h.AddStaff("Alice Tan", "F", dob, entity.RoleDoctor)
	require.NoError(t, err)

	sess, err := h.Login(p.GetID(), auth.DefaultPassword)
	require.NoError(t, err)
	assert.True(t, sess.IsPatient)
	assert.Equal(t, "Dana Loh", sess.Name)

	sess, err = h.Login(d.GetID(), auth.DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, sess.Role)

	_, err = h.Login(p.GetID(), "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAuthentication))

	_, err = h.Login("P999", auth.DefaultPassword)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAuthentication))
}

func TestPatientContactValidation(t *testing.T) {
	h := newTestHospital(t)

	_, err := h.RegisterPatient("Dana Loh", "F", time.Time{}, "", "71234567", "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = h.RegisterPatient("Dana Loh", "F", time.Time{}, "", "", "not-an-email")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	p, err := h.RegisterPatient("Dana Loh", "F", time.Time{}, "", "91234567", "dana@example.com")
	require.NoError(t, err)

	_, err = h.UpdatePatientContact(p.GetID(), "1234", "dana@example.com")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	updated, err := h.UpdatePatientContact(p.GetID(), "81234567", "dana@clinic.example.org")
	require.NoError(t, err)
	assert.Equal(t, "81234567", updated.ContactNumber)
}

func TestChangePasswordFlow(t *testing.T) {
	h := newTestHospital(t)
	p, err := h.RegisterPatient("Dana Loh", "F", time.Time{}, "", "", "")
	require.NoError(t, err)

	require.NoError(t, h.ChangePassword(p.GetID(), auth.DefaultPassword, "n3w"))

	_, err = h.Login(p.GetID(), auth.DefaultPassword)
	assert.Error(t, err)
	_, err = h.Login(p.GetID(), "n3w")
	assert.NoError(t, err)

	err = h.ChangePassword(p.GetID(), "stale", "x")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAuthentication))
}

func seedAppointment(t *testing.T, h *Hospital) (*entity.Patient, *entity.Staff, *entity.Appointment) {
	t.Helper()
	dob := time.Date(1980, 4, 2, 0, 0, 0, 0, time.UTC)
	p, err := h.RegisterPatient("Dana Loh", "F", dob, "O+", "", "")
	require.NoError(t, err)
	d, err := h.AddStaff("Alice Tan", "F", dob, entity.RoleDoctor)
	require.NoError(t, err)

	slot := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	appt, err := h.ScheduleAppointment(p.GetID(), d.GetID(), entity.ServiceConsultation, slot)
	require.NoError(t, err)
	return p, d, appt
}

func TestScheduleAppointment(t *testing.T) {
	h := newTestHospital(t)
	p, d, appt := seedAppointment(t, h)

	assert.Equal(t, "APPT001", appt.ID)
	assert.Equal(t, entity.ApptPending, appt.Status)

	// The doctor is notified of the new booking.
	assert.Equal(t, 1, h.UnreadCount(d.GetID()))

	// Same slot cannot be booked twice.
	_, err := h.ScheduleAppointment(p.GetID(), d.GetID(), entity.ServiceXRay, appt.DateTime)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))

	// Unknown participants are rejected.
	_, err = h.ScheduleAppointment("P999", d.GetID(), entity.ServiceXRay, appt.DateTime.Add(time.Hour))
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	_, err = h.ScheduleAppointment(p.GetID(), "D999", entity.ServiceXRay, appt.DateTime.Add(time.Hour))
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestScheduleRejectsUnknownService(t *testing.T) {
	h := newTestHospital(t)
	p, d, appt := seedAppointment(t, h)

	_, err := h.ScheduleAppointment(p.GetID(), d.GetID(), entity.Service("FOO"),
		appt.DateTime.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	// Lowercase input is accepted and stored under its symbolic name.
	booked, err := h.ScheduleAppointment(p.GetID(), d.GetID(), entity.Service("xray"),
		appt.DateTime.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceXRay, booked.Service)

	// The rejected value never reached the file: reloading succeeds.
	reopened, err := New(h.Config())
	require.NoError(t, err)
	assert.Len(t, reopened.AppointmentsByDoctor(d.GetID()), 2)
}

func TestAvailableSlots(t *testing.T) {
	h := newTestHospital(t)
	_, d, appt := seedAppointment(t, h)

	day := appt.DateTime
	slots := h.AvailableSlots(d.GetID(), day)
	require.Len(t, slots, 5) // 9:00 is booked
	for _, s := range slots {
		assert.False(t, s.Equal(appt.DateTime))
	}

	// An unavailable day has no slots at all.
	nextDay := day.AddDate(0, 0, 1)
	_, err := h.MarkUnavailable(d.GetID(), nextDay)
	require.NoError(t, err)
	assert.Empty(t, h.AvailableSlots(d.GetID(), nextDay))

	// And cannot be booked.
	p2, err := h.RegisterPatient("Evan Sim", "M", time.Time{}, "", "", "")
	require.NoError(t, err)
	_, err = h.ScheduleAppointment(p2.GetID(), d.GetID(), entity.ServiceLabTest,
		time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 10, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
}

func TestAppointmentLifecycle(t *testing.T) {
	h := newTestHospital(t)
	p, _, appt := seedAppointment(t, h)

	// Completion requires confirmation first.
	_, err := h.CompleteAppointment(appt.ID, "flu", "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	decided, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.ApptConfirmed, decided.Status)

	// A decided appointment cannot be decided again.
	_, err = h.DecideAppointment(appt.ID, false)
	assert.Error(t, err)

	inv, err := h.CompleteAppointment(appt.ID, "flu", "rest and fluids")
	require.NoError(t, err)
	assert.Equal(t, p.GetID(), inv.CustomerID)
	assert.InDelta(t, 50*1.09, inv.TotalPayable, 1e-9)

	got, ok := h.Appointments.Get(appt.ID)
	require.True(t, ok)
	assert.Equal(t, entity.ApptCompleted, got.Status)
	assert.Equal(t, "flu", got.Diagnosis)

	// Completed appointments cannot be canceled.
	err = h.CancelAppointment(appt.ID)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestRescheduleAppointment(t *testing.T) {
	h := newTestHospital(t)
	_, _, appt := seedAppointment(t, h)

	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)

	newSlot := appt.DateTime.Add(time.Hour)
	moved, err := h.RescheduleAppointment(appt.ID, newSlot)
	require.NoError(t, err)
	assert.True(t, moved.DateTime.Equal(newSlot))
	// A move drops the confirmation back to pending.
	assert.Equal(t, entity.ApptPending, moved.Status)
}

func TestDispenseFlow(t *testing.T) {
	h := newTestHospital(t)
	_, _, appt := seedAppointment(t, h)
	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	_, err = h.CompleteAppointment(appt.ID, "infection", "")
	require.NoError(t, err)

	med, err := h.AddMedicine("Amoxicillin", 50, 1.2, 250, 48)
	require.NoError(t, err)

	presc, err := h.CreatePrescription(appt.ID)
	require.NoError(t, err)
	assert.True(t, presc.IsActive)

	// One prescription per appointment.
	_, err = h.CreatePrescription(appt.ID)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))

	item, err := h.AddPrescriptionItem(presc.ID, med.GetID(), 10, "twice daily")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemPending, item.Status)

	dispensed, err := h.DispenseItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemDispensed, dispensed.Status)

	// Stock dropped and fell below the threshold, so pharmacists are
	// notified. Dispensing the only item also closes the prescription.
	got, err := h.Medicine(med.GetID())
	require.NoError(t, err)
	assert.Equal(t, 40, got.StockQuantity)
	assert.True(t, got.LowStock())

	closed, ok := h.Prescriptions.Get(presc.ID)
	require.True(t, ok)
	assert.False(t, closed.IsActive)

	// A dispensed item cannot be dispensed twice.
	_, err = h.DispenseItem(item.ID)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestDispenseRejectsInsufficientStock(t *testing.T) {
	h := newTestHospital(t)
	_, _, appt := seedAppointment(t, h)
	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	_, err = h.CompleteAppointment(appt.ID, "", "")
	require.NoError(t, err)

	med, err := h.AddMedicine("Rarexin", 3, 9.5, 10, 1)
	require.NoError(t, err)
	presc, err := h.CreatePrescription(appt.ID)
	require.NoError(t, err)
	item, err := h.AddPrescriptionItem(presc.ID, med.GetID(), 5, "")
	require.NoError(t, err)

	_, err = h.DispenseItem(item.ID)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	// Nothing changed: the item stays pending, the stock untouched.
	got, _ := h.Items.Get(item.ID)
	assert.Equal(t, entity.ItemPending, got.Status)
	m, _ := h.Medicines.Get(med.GetID())
	assert.Equal(t, 3, m.StockQuantity)
}

func TestRecalculateAndPayInvoice(t *testing.T) {
	h := newTestHospital(t)
	_, _, appt := seedAppointment(t, h)
	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	inv, err := h.CompleteAppointment(appt.ID, "infection", "")
	require.NoError(t, err)

	med, err := h.AddMedicine("Amoxicillin", 50, 1.2, 250, 10)
	require.NoError(t, err)
	presc, err := h.CreatePrescription(appt.ID)
	require.NoError(t, err)
	item, err := h.AddPrescriptionItem(presc.ID, med.GetID(), 10, "")
	require.NoError(t, err)
	_, err = h.DispenseItem(item.ID)
	require.NoError(t, err)

	inv, err = h.RecalculateInvoice(inv.ID)
	require.NoError(t, err)
	wantTotal := 50 + 1.2*10
	assert.InDelta(t, wantTotal, inv.TotalAmount, 1e-9)
	assert.InDelta(t, wantTotal*1.09, inv.TotalPayable, 1e-9)

	inv, err = h.PayInvoice(inv.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePartial, inv.Status)

	// Overpayment is rejected.
	_, err = h.PayInvoice(inv.ID, inv.Balance+1)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	inv, err = h.PayInvoice(inv.ID, inv.Balance)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, inv.Status)
	assert.Equal(t, 0.0, inv.Balance)
}

func TestRecalculateRejectsCanceledInvoice(t *testing.T) {
	h := newTestHospital(t)
	_, _, appt := seedAppointment(t, h)
	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	inv, err := h.CompleteAppointment(appt.ID, "infection", "")
	require.NoError(t, err)

	require.NoError(t, h.CancelInvoice(inv.ID))

	_, err = h.RecalculateInvoice(inv.ID)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	// The voided invoice keeps its zeroed balance.
	got, ok := h.Invoices.Get(inv.ID)
	require.True(t, ok)
	assert.Equal(t, entity.InvoiceCanceled, got.Status)
	assert.Equal(t, 0.0, got.Balance)
}

func TestRestockRequestFlow(t *testing.T) {
	h := newTestHospital(t)
	dob := time.Date(1990, 9, 17, 0, 0, 0, 0, time.UTC)
	ph, err := h.AddStaff("Bob Lee", "M", dob, entity.RolePharmacist)
	require.NoError(t, err)
	admin, err := h.AddStaff("Derek Ong", "M", dob, entity.RoleAdministrator)
	require.NoError(t, err)
	med, err := h.AddMedicine("Paracetamol", 5, 0.5, 500, 30)
	require.NoError(t, err)

	req, err := h.CreateRestockRequest(ph.GetID(), med.GetID(), 100)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, req.Status)
	require.Len(t, h.PendingRequests(), 1)

	// The administrator was notified of the pending request.
	assert.Equal(t, 1, h.UnreadCount(admin.GetID()))

	approved, err := h.ApproveRequest(req.ID, admin.GetID())
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, approved.Status)
	assert.Equal(t, admin.GetID(), approved.ApproverID)

	got, _ := h.Medicines.Get(med.GetID())
	assert.Equal(t, 105, got.StockQuantity)
	assert.Empty(t, h.PendingRequests())

	// A decided request cannot be decided again.
	_, err = h.RejectRequest(req.ID, admin.GetID())
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	// Only pharmacists may file, only administrators may approve.
	_, err = h.CreateRestockRequest(admin.GetID(), med.GetID(), 10)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	req2, err := h.CreateRestockRequest(ph.GetID(), med.GetID(), 10)
	require.NoError(t, err)
	_, err = h.ApproveRequest(req2.ID, ph.GetID())
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestNotifications(t *testing.T) {
	h := newTestHospital(t)
	p, err := h.RegisterPatient("Dana Loh", "F", time.Time{}, "", "", "")
	require.NoError(t, err)

	h.Notify(p.GetID(), "first")
	h.Notify(p.GetID(), "second")
	assert.Equal(t, 2, h.UnreadCount(p.GetID()))

	list := h.NotificationsFor(p.GetID())
	require.Len(t, list, 2)

	require.NoError(t, h.MarkNotificationRead(list[0].ID))
	assert.Equal(t, 1, h.UnreadCount(p.GetID()))

	h.MarkAllRead(p.GetID())
	assert.Equal(t, 0, h.UnreadCount(p.GetID()))
}

func TestOutcomes(t *testing.T) {
	h := newTestHospital(t)
	p, _, appt := seedAppointment(t, h)
	_, err := h.DecideAppointment(appt.ID, true)
	require.NoError(t, err)
	_, err = h.CompleteAppointment(appt.ID, "flu", "")
	require.NoError(t, err)

	med, err := h.AddMedicine("Oseltamivir", 20, 4, 75, 5)
	require.NoError(t, err)
	presc, err := h.CreatePrescription(appt.ID)
	require.NoError(t, err)
	_, err = h.AddPrescriptionItem(presc.ID, med.GetID(), 10, "")
	require.NoError(t, err)

	outcomes := h.Outcomes(p.GetID())
	require.Len(t, outcomes, 1)
	assert.Equal(t, appt.ID, outcomes[0].Appointment.ID)
	require.NotNil(t, outcomes[0].Prescription)
	assert.Len(t, outcomes[0].Items, 1)
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	h := newTestHospital(t)
	p, _, appt := seedAppointment(t, h)

	reopened, err := New(h.Config())
	require.NoError(t, err)

	got, ok := reopened.Appointments.Get(appt.ID)
	require.True(t, ok)
	assert.Equal(t, p.GetID(), got.PatientID)
	assert.True(t, got.DateTime.Equal(appt.DateTime))
}
