// Package hms is a single-user hospital administration system persisted
// entirely in plain CSV files.
//
// The module manages patients, staff, appointments, the medicine
// inventory, prescriptions and dispensing, invoices, restock requests,
// notifications and staff unavailability for one hospital. All state
// lives in a flat data directory of delimited text files; every
// mutation rewrites the affected file in full.
//
// # Architecture
//
// The core is a small stack of generic packages:
//
//  1. pkg/record: the field catalog, a compile-time-registered
//     descriptor table pairing each persisted column with typed get/set
//     accessors.
//
//  2. pkg/codec: the bidirectional row mapper between records and
//     comma-delimited text, driven entirely by a catalog.
//
//  3. pkg/store: the file-backed keyed collection for one record type,
//     loaded once at startup and rewritten on every mutation.
//
//  4. pkg/idgen: sequential, prefix-namespaced identifier allocation
//     (P001, MED019, APPT002...).
//
// Domain types and their catalogs live in pkg/entity; the business
// operations in internal/hospital; the console front end in cmd/hms.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.DataDir = "data"
//
//	h, err := hospital.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, _ := h.RegisterPatient("Dana Loh", "F", dob, "O+", "91234567", "dana@example.com")
//	appt, _ := h.ScheduleAppointment(p.GetID(), "D001", entity.ServiceConsultation, slot)
package hms
