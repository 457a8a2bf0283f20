package entity

import (
	"time"

	"github.com/carewise/hms/pkg/record"
)

// PrefixMedicineRequest prefixes medicine restock request identifiers.
const PrefixMedicineRequest = "MEDREQ"

// RequestStatus is the review state of a request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestRejected RequestStatus = "REJECTED"
	RequestApproved RequestStatus = "APPROVED"
)

var requestStatusNames = []string{
	string(RequestPending),
	string(RequestRejected),
	string(RequestApproved),
}

// MedicineRequest asks an administrator to restock a medicine.
type MedicineRequest struct {
	ID           string
	RequestorID  string
	ApproverID   string
	Status       RequestStatus
	TimeCreated  time.Time
	TimeModified time.Time
	MedicineID   string
	Quantity     int
}

// NewMedicineRequest creates a pending restock request stamped with
// the current time.
func NewMedicineRequest(id, requestorID, medicineID string, quantity int) *MedicineRequest {
	now := time.Now()
	return &MedicineRequest{
		ID:           id,
		RequestorID:  requestorID,
		Status:       RequestPending,
		TimeCreated:  now,
		TimeModified: now,
		MedicineID:   medicineID,
		Quantity:     quantity,
	}
}

// GetID returns the unique identifier of the request.
func (r *MedicineRequest) GetID() string {
	return r.ID
}

// Decide records the approver's verdict and bumps the modified time.
func (r *MedicineRequest) Decide(approverID string, status RequestStatus) {
	r.ApproverID = approverID
	r.Status = status
	r.TimeModified = time.Now()
}

// MedicineRequestCatalog orders the medicine request columns.
var MedicineRequestCatalog = record.Catalog[*MedicineRequest]{
	Name: "medicine_request",
	New:  func() *MedicineRequest { return &MedicineRequest{} },
	Fields: []record.Field[*MedicineRequest]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(r *MedicineRequest) any { return r.ID },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.ID, v) },
		},
		{
			Name: "requestorId", Kind: record.KindString,
			Get: func(r *MedicineRequest) any { return r.RequestorID },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.RequestorID, v) },
		},
		{
			Name: "approverId", Kind: record.KindString,
			Get: func(r *MedicineRequest) any { return r.ApproverID },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.ApproverID, v) },
		},
		{
			Name: "status", Kind: record.KindEnum, Enum: requestStatusNames,
			Get: func(r *MedicineRequest) any { return string(r.Status) },
			Set: func(r *MedicineRequest, v any) error { return assignEnum(&r.Status, v) },
		},
		{
			Name: "timeCreated", Kind: record.KindDateTime,
			Get: func(r *MedicineRequest) any { return r.TimeCreated },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.TimeCreated, v) },
		},
		{
			Name: "timeModified", Kind: record.KindDateTime,
			Get: func(r *MedicineRequest) any { return r.TimeModified },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.TimeModified, v) },
		},
		{
			Name: "medicineId", Kind: record.KindString,
			Get: func(r *MedicineRequest) any { return r.MedicineID },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.MedicineID, v) },
		},
		{
			Name: "quantity", Kind: record.KindInt,
			Get: func(r *MedicineRequest) any { return r.Quantity },
			Set: func(r *MedicineRequest, v any) error { return assign(&r.Quantity, v) },
		},
	},
}
