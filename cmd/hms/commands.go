package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carewise/hms/pkg/codec"
	"github.com/carewise/hms/pkg/entity"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(codec.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(codec.DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, want YYYY-MM-DDTHH:MM", s)
	}
	return t, nil
}

func newLoginCmd() *cobra.Command {
	var id, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify a user's credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			sess, err := h.Login(id, password)
			if err != nil {
				return err
			}
			if sess.IsPatient {
				fmt.Printf("Logged in as patient %s (%s)\n", sess.Name, sess.UserID)
			} else {
				fmt.Printf("Logged in as %s %s (%s)\n", sess.Role, sess.Name, sess.UserID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "User ID")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newPasswdCmd() *cobra.Command {
	var id, current, next string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change a user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.ChangePassword(id, current, next); err != nil {
				return err
			}
			fmt.Printf("Password of %s changed\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "User ID")
	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func newPatientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Manage patient accounts",
	}

	var name, gender, dob, bloodType, contact, email string
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			born, err := parseDate(dob)
			if err != nil {
				return err
			}
			p, err := h.RegisterPatient(name, gender, born, bloodType, contact, email)
			if err != nil {
				return err
			}
			fmt.Printf("Registered patient %s (%s)\n", p.Name, p.GetID())
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "Full name")
	register.Flags().StringVar(&gender, "gender", "", "Gender")
	register.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	register.Flags().StringVar(&bloodType, "blood-type", "", "Blood type")
	register.Flags().StringVar(&contact, "contact", "", "Contact number")
	register.Flags().StringVar(&email, "email", "", "Email address")
	_ = register.MarkFlagRequired("name")
	_ = register.MarkFlagRequired("dob")

	var patientID string
	update := &cobra.Command{
		Use:   "update-contact",
		Short: "Update a patient's contact details",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			p, err := h.UpdatePatientContact(patientID, contact, email)
			if err != nil {
				return err
			}
			fmt.Printf("Updated contact details of %s\n", p.GetID())
			return nil
		},
	}
	update.Flags().StringVar(&patientID, "id", "", "Patient ID")
	update.Flags().StringVar(&contact, "contact", "", "Contact number")
	update.Flags().StringVar(&email, "email", "", "Email address")
	_ = update.MarkFlagRequired("id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, p := range h.Patients.List() {
				fmt.Printf("%-8s %-24s %-8s %s\n",
					p.GetID(), p.Name, p.Gender, p.DOB.Format(codec.DateLayout))
			}
			return nil
		},
	}

	outcomes := &cobra.Command{
		Use:   "outcomes",
		Short: "Show a patient's completed appointments and prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, o := range h.Outcomes(patientID) {
				a := o.Appointment
				fmt.Printf("%s %s %s diagnosis=%q\n",
					a.ID, a.DateTime.Format(codec.DateTimeLayout), a.Service, a.Diagnosis)
				if o.Prescription != nil {
					for _, item := range o.Items {
						fmt.Printf("  %s medicine=%s qty=%d status=%s\n",
							item.ID, item.MedicineID, item.Quantity, item.Status)
					}
				}
			}
			return nil
		},
	}
	outcomes.Flags().StringVar(&patientID, "id", "", "Patient ID")
	_ = outcomes.MarkFlagRequired("id")

	cmd.AddCommand(register, update, list, outcomes)
	return cmd
}

func newStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff accounts",
	}

	var name, gender, dob, role, staffID string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			born, err := parseDate(dob)
			if err != nil {
				return err
			}
			s, err := h.AddStaff(name, gender, born, entity.Role(role))
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %s (%s)\n", s.Role, s.Name, s.GetID())
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Full name")
	add.Flags().StringVar(&gender, "gender", "", "Gender")
	add.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	add.Flags().StringVar(&role, "role", "", "Role (DOCTOR, PHARMACIST, ADMINISTRATOR)")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("dob")
	_ = add.MarkFlagRequired("role")

	update := &cobra.Command{
		Use:   "update",
		Short: "Update a staff member's details",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			s, err := h.UpdateStaff(staffID, name, gender)
			if err != nil {
				return err
			}
			fmt.Printf("Updated staff %s\n", s.GetID())
			return nil
		},
	}
	update.Flags().StringVar(&staffID, "id", "", "Staff ID")
	update.Flags().StringVar(&name, "name", "", "Full name")
	update.Flags().StringVar(&gender, "gender", "", "Gender")
	_ = update.MarkFlagRequired("id")

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.RemoveStaff(staffID); err != nil {
				return err
			}
			fmt.Printf("Removed staff %s\n", staffID)
			return nil
		},
	}
	remove.Flags().StringVar(&staffID, "id", "", "Staff ID")
	_ = remove.MarkFlagRequired("id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List staff, optionally by role",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			staff := h.Staff.List()
			if role != "" {
				staff = h.StaffByRole(entity.Role(role))
			}
			for _, s := range staff {
				fmt.Printf("%-8s %-16s %-24s %s\n", s.GetID(), s.Role, s.Name, s.Gender)
			}
			return nil
		},
	}
	list.Flags().StringVar(&role, "role", "", "Filter by role")

	cmd.AddCommand(add, update, remove, list)
	return cmd
}

func newAppointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"appt"},
		Short:   "Manage appointments",
	}

	var patientID, doctorID, service, at, apptID, diagnosis, notes, day string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Book an appointment slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			slot, err := parseDateTime(at)
			if err != nil {
				return err
			}
			appt, err := h.ScheduleAppointment(patientID, doctorID, entity.Service(service), slot)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %s with %s at %s\n",
				appt.ID, appt.DoctorID, appt.DateTime.Format(codec.DateTimeLayout))
			return nil
		},
	}
	schedule.Flags().StringVar(&patientID, "patient", "", "Patient ID")
	schedule.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	schedule.Flags().StringVar(&service, "service", "CONSULTATION", "Service (CONSULTATION, XRAY, LABTEST)")
	schedule.Flags().StringVar(&at, "at", "", "Slot (YYYY-MM-DDTHH:MM)")
	_ = schedule.MarkFlagRequired("patient")
	_ = schedule.MarkFlagRequired("doctor")
	_ = schedule.MarkFlagRequired("at")

	reschedule := &cobra.Command{
		Use:   "reschedule",
		Short: "Move an appointment to a new slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			slot, err := parseDateTime(at)
			if err != nil {
				return err
			}
			appt, err := h.RescheduleAppointment(apptID, slot)
			if err != nil {
				return err
			}
			fmt.Printf("Rescheduled %s to %s\n",
				appt.ID, appt.DateTime.Format(codec.DateTimeLayout))
			return nil
		},
	}
	reschedule.Flags().StringVar(&apptID, "id", "", "Appointment ID")
	reschedule.Flags().StringVar(&at, "at", "", "New slot (YYYY-MM-DDTHH:MM)")
	_ = reschedule.MarkFlagRequired("id")
	_ = reschedule.MarkFlagRequired("at")

	var accept bool
	decide := &cobra.Command{
		Use:   "decide",
		Short: "Accept or decline a pending appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			appt, err := h.DecideAppointment(apptID, accept)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s\n", appt.ID, appt.Status)
			return nil
		},
	}
	decide.Flags().StringVar(&apptID, "id", "", "Appointment ID")
	decide.Flags().BoolVar(&accept, "accept", false, "Accept instead of decline")
	_ = decide.MarkFlagRequired("id")

	complete := &cobra.Command{
		Use:   "complete",
		Short: "Complete an appointment and issue its invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			inv, err := h.CompleteAppointment(apptID, diagnosis, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Completed %s, invoice %s payable %.2f\n",
				apptID, inv.ID, inv.TotalPayable)
			return nil
		},
	}
	complete.Flags().StringVar(&apptID, "id", "", "Appointment ID")
	complete.Flags().StringVar(&diagnosis, "diagnosis", "", "Diagnosis")
	complete.Flags().StringVar(&notes, "notes", "", "Consultation notes")
	_ = complete.MarkFlagRequired("id")

	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.CancelAppointment(apptID); err != nil {
				return err
			}
			fmt.Printf("Canceled appointment %s\n", apptID)
			return nil
		},
	}
	cancel.Flags().StringVar(&apptID, "id", "", "Appointment ID")
	_ = cancel.MarkFlagRequired("id")

	slots := &cobra.Command{
		Use:   "slots",
		Short: "Show a doctor's open slots on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			d, err := parseDate(day)
			if err != nil {
				return err
			}
			for _, slot := range h.AvailableSlots(doctorID, d) {
				fmt.Println(slot.Format(codec.DateTimeLayout))
			}
			return nil
		},
	}
	slots.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	slots.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD)")
	_ = slots.MarkFlagRequired("doctor")
	_ = slots.MarkFlagRequired("day")

	list := &cobra.Command{
		Use:   "list",
		Short: "List appointments by doctor or patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			var appts []*entity.Appointment
			switch {
			case doctorID != "":
				appts = h.AppointmentsByDoctor(doctorID)
			case patientID != "":
				appts = h.AppointmentsByPatient(patientID)
			default:
				appts = h.Appointments.List()
			}
			for _, a := range appts {
				fmt.Printf("%-10s %-8s %-8s %s %-12s %s\n",
					a.ID, a.PatientID, a.DoctorID,
					a.DateTime.Format(codec.DateTimeLayout), a.Service, a.Status)
			}
			return nil
		},
	}
	list.Flags().StringVar(&doctorID, "doctor", "", "Filter by doctor ID")
	list.Flags().StringVar(&patientID, "patient", "", "Filter by patient ID")

	cmd.AddCommand(schedule, reschedule, decide, complete, cancel, slots, list)
	return cmd
}

func newMedicineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medicine",
		Short: "Manage the medicine inventory",
	}

	var name, medicineID string
	var stock, quantity, threshold int
	var unitCost, dosage float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a medicine",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			med, err := h.AddMedicine(name, stock, unitCost, dosage, threshold)
			if err != nil {
				return err
			}
			fmt.Printf("Added medicine %s (%s)\n", med.Name, med.GetID())
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Medicine name")
	add.Flags().IntVar(&stock, "stock", 0, "Opening stock")
	add.Flags().Float64Var(&unitCost, "unit-cost", 0, "Unit cost")
	add.Flags().Float64Var(&dosage, "dosage", 0, "Dosage in mg")
	add.Flags().IntVar(&threshold, "low-stock-threshold", 0, "Low-stock alert threshold")
	_ = add.MarkFlagRequired("name")

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove a medicine",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.RemoveMedicine(medicineID); err != nil {
				return err
			}
			fmt.Printf("Removed medicine %s\n", medicineID)
			return nil
		},
	}
	remove.Flags().StringVar(&medicineID, "id", "", "Medicine ID")
	_ = remove.MarkFlagRequired("id")

	restock := &cobra.Command{
		Use:   "restock",
		Short: "Increase a medicine's stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			med, err := h.RestockMedicine(medicineID, quantity)
			if err != nil {
				return err
			}
			fmt.Printf("Medicine %s stock is now %d\n", med.GetID(), med.StockQuantity)
			return nil
		},
	}
	restock.Flags().StringVar(&medicineID, "id", "", "Medicine ID")
	restock.Flags().IntVar(&quantity, "quantity", 0, "Units to add")
	_ = restock.MarkFlagRequired("id")
	_ = restock.MarkFlagRequired("quantity")

	setThreshold := &cobra.Command{
		Use:   "set-threshold",
		Short: "Update a medicine's low-stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			med, err := h.SetLowStockThreshold(medicineID, threshold)
			if err != nil {
				return err
			}
			fmt.Printf("Medicine %s threshold is now %d\n", med.GetID(), med.LowStockThreshold)
			return nil
		},
	}
	setThreshold.Flags().StringVar(&medicineID, "id", "", "Medicine ID")
	setThreshold.Flags().IntVar(&threshold, "threshold", 0, "New threshold")
	_ = setThreshold.MarkFlagRequired("id")
	_ = setThreshold.MarkFlagRequired("threshold")

	var query string
	var lowOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List medicines",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			meds := h.Medicines.List()
			switch {
			case lowOnly:
				meds = h.LowStockMedicines()
			case query != "":
				meds = h.FindMedicineByName(query)
			}
			for _, m := range meds {
				marker := " "
				if m.LowStock() {
					marker = "!"
				}
				fmt.Printf("%s %-8s %-24s stock=%-5d cost=%.2f dosage=%.2fmg\n",
					marker, m.GetID(), m.Name, m.StockQuantity, m.UnitCost, m.Dosage)
			}
			return nil
		},
	}
	list.Flags().StringVar(&query, "name", "", "Filter by name substring")
	list.Flags().BoolVar(&lowOnly, "low-stock", false, "Only medicines below threshold")

	cmd.AddCommand(add, remove, restock, setThreshold, list)
	return cmd
}

func newPrescriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prescription",
		Aliases: []string{"rx"},
		Short:   "Manage prescriptions and dispensing",
	}

	var apptID, prescriptionID, medicineID, itemID, notes string
	var quantity int
	create := &cobra.Command{
		Use:   "create",
		Short: "Open a prescription for an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			presc, err := h.CreatePrescription(apptID)
			if err != nil {
				return err
			}
			fmt.Printf("Created prescription %s for %s\n", presc.ID, apptID)
			return nil
		},
	}
	create.Flags().StringVar(&apptID, "appointment", "", "Appointment ID")
	_ = create.MarkFlagRequired("appointment")

	addItem := &cobra.Command{
		Use:   "add-item",
		Short: "Add a medication line to a prescription",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			item, err := h.AddPrescriptionItem(prescriptionID, medicineID, quantity, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Added item %s to %s\n", item.ID, prescriptionID)
			return nil
		},
	}
	addItem.Flags().StringVar(&prescriptionID, "prescription", "", "Prescription ID")
	addItem.Flags().StringVar(&medicineID, "medicine", "", "Medicine ID")
	addItem.Flags().IntVar(&quantity, "quantity", 0, "Units prescribed")
	addItem.Flags().StringVar(&notes, "notes", "", "Dosage notes")
	_ = addItem.MarkFlagRequired("prescription")
	_ = addItem.MarkFlagRequired("medicine")
	_ = addItem.MarkFlagRequired("quantity")

	dispense := &cobra.Command{
		Use:   "dispense",
		Short: "Dispense a prescription item, deducting stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			item, err := h.DispenseItem(itemID)
			if err != nil {
				return err
			}
			fmt.Printf("Dispensed %s (%d x %s)\n", item.ID, item.Quantity, item.MedicineID)
			return nil
		},
	}
	dispense.Flags().StringVar(&itemID, "item", "", "Prescription item ID")
	_ = dispense.MarkFlagRequired("item")

	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a prescription and its pending items",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.CancelPrescription(prescriptionID); err != nil {
				return err
			}
			fmt.Printf("Canceled prescription %s\n", prescriptionID)
			return nil
		},
	}
	cancel.Flags().StringVar(&prescriptionID, "prescription", "", "Prescription ID")
	_ = cancel.MarkFlagRequired("prescription")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show a prescription's items",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, item := range h.ItemsOf(prescriptionID) {
				fmt.Printf("%-10s %-8s qty=%-4d %-10s %s\n",
					item.ID, item.MedicineID, item.Quantity, item.Status, item.Notes)
			}
			return nil
		},
	}
	show.Flags().StringVar(&prescriptionID, "prescription", "", "Prescription ID")
	_ = show.MarkFlagRequired("prescription")

	cmd.AddCommand(create, addItem, dispense, cancel, show)
	return cmd
}

func newInvoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices and payments",
	}

	var invoiceID, customerID string
	var amount float64
	pay := &cobra.Command{
		Use:   "pay",
		Short: "Record a payment against an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			inv, err := h.PayInvoice(invoiceID, amount)
			if err != nil {
				return err
			}
			fmt.Printf("Invoice %s: paid %.2f, balance %.2f, status %s\n",
				inv.ID, amount, inv.Balance, inv.Status)
			return nil
		},
	}
	pay.Flags().StringVar(&invoiceID, "id", "", "Invoice ID")
	pay.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	_ = pay.MarkFlagRequired("id")
	_ = pay.MarkFlagRequired("amount")

	recalc := &cobra.Command{
		Use:   "recalculate",
		Short: "Refresh an invoice from its dispensed items",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			inv, err := h.RecalculateInvoice(invoiceID)
			if err != nil {
				return err
			}
			fmt.Printf("Invoice %s: total %.2f, payable %.2f, balance %.2f\n",
				inv.ID, inv.TotalAmount, inv.TotalPayable, inv.Balance)
			return nil
		},
	}
	recalc.Flags().StringVar(&invoiceID, "id", "", "Invoice ID")
	_ = recalc.MarkFlagRequired("id")

	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Void an unpaid invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.CancelInvoice(invoiceID); err != nil {
				return err
			}
			fmt.Printf("Canceled invoice %s\n", invoiceID)
			return nil
		},
	}
	cancel.Flags().StringVar(&invoiceID, "id", "", "Invoice ID")
	_ = cancel.MarkFlagRequired("id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List invoices, optionally by customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			invs := h.Invoices.List()
			if customerID != "" {
				invs = h.InvoicesByCustomer(customerID)
			}
			for _, inv := range invs {
				fmt.Printf("%-8s %-8s %-10s payable=%-8.2f balance=%-8.2f %s\n",
					inv.ID, inv.CustomerID, inv.ApptID,
					inv.TotalPayable, inv.Balance, inv.Status)
			}
			return nil
		},
	}
	list.Flags().StringVar(&customerID, "customer", "", "Filter by customer ID")

	cmd.AddCommand(pay, recalc, cancel, list)
	return cmd
}

func newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Manage medicine restock requests",
	}

	var requestorID, approverID, medicineID, requestID string
	var quantity int
	create := &cobra.Command{
		Use:   "create",
		Short: "File a restock request",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			req, err := h.CreateRestockRequest(requestorID, medicineID, quantity)
			if err != nil {
				return err
			}
			fmt.Printf("Filed request %s for %d x %s\n", req.ID, quantity, medicineID)
			return nil
		},
	}
	create.Flags().StringVar(&requestorID, "requestor", "", "Pharmacist ID")
	create.Flags().StringVar(&medicineID, "medicine", "", "Medicine ID")
	create.Flags().IntVar(&quantity, "quantity", 0, "Units requested")
	_ = create.MarkFlagRequired("requestor")
	_ = create.MarkFlagRequired("medicine")
	_ = create.MarkFlagRequired("quantity")

	approve := &cobra.Command{
		Use:   "approve",
		Short: "Approve a request and restock the medicine",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			req, err := h.ApproveRequest(requestID, approverID)
			if err != nil {
				return err
			}
			fmt.Printf("Approved request %s\n", req.ID)
			return nil
		},
	}
	approve.Flags().StringVar(&requestID, "id", "", "Request ID")
	approve.Flags().StringVar(&approverID, "approver", "", "Administrator ID")
	_ = approve.MarkFlagRequired("id")
	_ = approve.MarkFlagRequired("approver")

	reject := &cobra.Command{
		Use:   "reject",
		Short: "Reject a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			req, err := h.RejectRequest(requestID, approverID)
			if err != nil {
				return err
			}
			fmt.Printf("Rejected request %s\n", req.ID)
			return nil
		},
	}
	reject.Flags().StringVar(&requestID, "id", "", "Request ID")
	reject.Flags().StringVar(&approverID, "approver", "", "Administrator ID")
	_ = reject.MarkFlagRequired("id")
	_ = reject.MarkFlagRequired("approver")

	pending := &cobra.Command{
		Use:   "pending",
		Short: "List requests awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, req := range h.PendingRequests() {
				fmt.Printf("%-10s %-8s %-8s qty=%-5d %s\n",
					req.ID, req.RequestorID, req.MedicineID, req.Quantity,
					req.TimeCreated.Format(codec.DateTimeLayout))
			}
			return nil
		},
	}

	cmd.AddCommand(create, approve, reject, pending)
	return cmd
}

func newNotificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notification",
		Aliases: []string{"inbox"},
		Short:   "Read and manage notifications",
	}

	var userID, notificationID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List a user's notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, n := range h.NotificationsFor(userID) {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %-10s %s %s\n",
					marker, n.ID, n.DateTime.Format(codec.DateTimeLayout), n.Message)
			}
			return nil
		},
	}
	list.Flags().StringVar(&userID, "user", "", "User ID")
	_ = list.MarkFlagRequired("user")

	read := &cobra.Command{
		Use:   "read",
		Short: "Mark a notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.MarkNotificationRead(notificationID); err != nil {
				return err
			}
			fmt.Printf("Marked %s read\n", notificationID)
			return nil
		},
	}
	read.Flags().StringVar(&notificationID, "id", "", "Notification ID")
	_ = read.MarkFlagRequired("id")

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark all of a user's notifications as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			h.MarkAllRead(userID)
			fmt.Printf("Marked all notifications of %s read\n", userID)
			return nil
		},
	}
	readAll.Flags().StringVar(&userID, "user", "", "User ID")
	_ = readAll.MarkFlagRequired("user")

	cmd.AddCommand(list, read, readAll)
	return cmd
}

func newUnavailableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unavailable",
		Short: "Manage staff unavailable dates",
	}

	var staffID, day, id string
	mark := &cobra.Command{
		Use:   "mark",
		Short: "Mark a staff member unavailable on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			d, err := parseDate(day)
			if err != nil {
				return err
			}
			ud, err := h.MarkUnavailable(staffID, d)
			if err != nil {
				return err
			}
			fmt.Printf("Marked %s unavailable on %s (%s)\n",
				staffID, day, ud.GetID())
			return nil
		},
	}
	mark.Flags().StringVar(&staffID, "staff", "", "Staff ID")
	mark.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD)")
	_ = mark.MarkFlagRequired("staff")
	_ = mark.MarkFlagRequired("day")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove an unavailability entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			if err := h.ClearUnavailable(id); err != nil {
				return err
			}
			fmt.Printf("Cleared %s\n", id)
			return nil
		},
	}
	clear.Flags().StringVar(&id, "id", "", "Unavailability entry ID")
	_ = clear.MarkFlagRequired("id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List a staff member's unavailable dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}
			for _, ud := range h.UnavailableDatesOf(staffID) {
				fmt.Printf("%-8s %s\n", ud.GetID(), ud.Date.Format(codec.DateLayout))
			}
			return nil
		},
	}
	list.Flags().StringVar(&staffID, "staff", "", "Staff ID")
	_ = list.MarkFlagRequired("staff")

	cmd.AddCommand(mark, clear, list)
	return cmd
}
