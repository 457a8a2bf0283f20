package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/carewise/hms/pkg/entity"
)

// snapshot is the full-database JSON export shape.
type snapshot struct {
	Patients      []*entity.Patient          `json:"patients"`
	Staff         []*entity.Staff            `json:"staff"`
	Appointments  []*entity.Appointment      `json:"appointments"`
	Medicines     []*entity.Medicine         `json:"medicines"`
	Prescriptions []*entity.Prescription     `json:"prescriptions"`
	Items         []*entity.PrescriptionItem `json:"prescription_items"`
	Invoices      []*entity.Invoice          `json:"invoices"`
	Notifications []*entity.Notification     `json:"notifications"`
	Requests      []*entity.MedicineRequest  `json:"medicine_requests"`
	Unavailable   []*entity.UnavailableDate  `json:"unavailable_dates"`
}

func newExportCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full database as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHospital()
			if err != nil {
				return err
			}

			snap := snapshot{
				Patients:      h.Patients.List(),
				Staff:         h.Staff.List(),
				Appointments:  h.Appointments.List(),
				Medicines:     h.Medicines.List(),
				Prescriptions: h.Prescriptions.List(),
				Items:         h.Items.List(),
				Invoices:      h.Invoices.List(),
				Notifications: h.Notifications.List(),
				Requests:      h.Requests.List(),
				Unavailable:   h.Unavailable.List(),
			}

			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal snapshot: %w", err)
			}

			if outFile == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Printf("Exported snapshot to %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default stdout)")
	return cmd
}
