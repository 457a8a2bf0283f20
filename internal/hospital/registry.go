// Package hospital implements the business operations of the hospital
// administration system on top of the file-backed entity stores:
// appointments, billing, inventory, prescriptions, restock requests,
// notifications, user accounts, and staff unavailability.
//
// A Hospital owns exactly one store per record type, all opened at
// startup from the configured data directory. Opening fails when any
// backing file is missing or malformed; there is no partial startup.
package hospital

import (
	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/codec"
	"github.com/carewise/hms/pkg/config"
	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/logger"
	"github.com/carewise/hms/pkg/record"
	"github.com/carewise/hms/pkg/store"
)

// Backing file names, fixed relative to the configured data directory.
const (
	PatientFile          = "Patient_List.csv"
	StaffFile            = "Staff_List.csv"
	AppointmentFile      = "Appointment_List.csv"
	MedicineFile         = "Medicine_List.csv"
	PrescriptionFile     = "Prescription_List.csv"
	PrescriptionItemFile = "PrescriptionItem_List.csv"
	InvoiceFile          = "Invoice_List.csv"
	NotificationFile     = "Notification_List.csv"
	MedicineRequestFile  = "MedicineRequest_List.csv"
	UnavailableDateFile  = "UnavailableDate_List.csv"
)

// Hospital is the service facade over the entity stores. All operations
// are synchronous and single-threaded.
type Hospital struct {
	cfg *config.Config
	log *zap.Logger

	Patients      *store.Store[*entity.Patient]
	Staff         *store.Store[*entity.Staff]
	Appointments  *store.Store[*entity.Appointment]
	Medicines     *store.Store[*entity.Medicine]
	Prescriptions *store.Store[*entity.Prescription]
	Items         *store.Store[*entity.PrescriptionItem]
	Invoices      *store.Store[*entity.Invoice]
	Notifications *store.Store[*entity.Notification]
	Requests      *store.Store[*entity.MedicineRequest]
	Unavailable   *store.Store[*entity.UnavailableDate]
}

// New opens every store from the configured data directory. Any store
// that fails to load aborts construction.
func New(cfg *config.Config) (*Hospital, error) {
	h := &Hospital{
		cfg: cfg,
		log: logger.With(zap.String("component", "hospital")),
	}

	var err error
	if h.Patients, err = open(cfg, PatientFile, entity.PrefixPatient, &entity.PatientCatalog); err != nil {
		return nil, err
	}
	// Staff IDs carry per-role prefixes, so the store itself has none.
	if h.Staff, err = open(cfg, StaffFile, "", &entity.StaffCatalog); err != nil {
		return nil, err
	}
	if h.Appointments, err = open(cfg, AppointmentFile, entity.PrefixAppointment, &entity.AppointmentCatalog); err != nil {
		return nil, err
	}
	if h.Medicines, err = open(cfg, MedicineFile, entity.PrefixMedicine, &entity.MedicineCatalog); err != nil {
		return nil, err
	}
	if h.Prescriptions, err = open(cfg, PrescriptionFile, entity.PrefixPrescription, &entity.PrescriptionCatalog); err != nil {
		return nil, err
	}
	if h.Items, err = open(cfg, PrescriptionItemFile, entity.PrefixPrescriptionItem, &entity.PrescriptionItemCatalog); err != nil {
		return nil, err
	}
	if h.Invoices, err = open(cfg, InvoiceFile, entity.PrefixInvoice, &entity.InvoiceCatalog); err != nil {
		return nil, err
	}
	if h.Notifications, err = open(cfg, NotificationFile, entity.PrefixNotification, &entity.NotificationCatalog); err != nil {
		return nil, err
	}
	if h.Requests, err = open(cfg, MedicineRequestFile, entity.PrefixMedicineRequest, &entity.MedicineRequestCatalog); err != nil {
		return nil, err
	}
	if h.Unavailable, err = open(cfg, UnavailableDateFile, entity.PrefixUnavailableDate, &entity.UnavailableDateCatalog); err != nil {
		return nil, err
	}

	h.log.Info("hospital stores opened",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("patients", h.Patients.Len()),
		zap.Int("staff", h.Staff.Len()),
		zap.Int("appointments", h.Appointments.Len()),
		zap.Int("medicines", h.Medicines.Len()))
	return h, nil
}

// Config returns the configuration the hospital was opened with.
func (h *Hospital) Config() *config.Config {
	return h.cfg
}

func open[T record.Record](cfg *config.Config, file, prefix string, cat *record.Catalog[T]) (*store.Store[T], error) {
	return store.Open(cfg.FilePath(file), prefix, codec.New(cat))
}
