package hospital

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// CreateRestockRequest files a pharmacist's request to replenish a
// medicine. Administrators are notified of the new request.
func (h *Hospital) CreateRestockRequest(requestorID, medicineID string, quantity int) (*entity.MedicineRequest, error) {
	requestor, ok := h.Staff.Get(requestorID)
	if !ok || requestor.Role != entity.RolePharmacist {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "pharmacist %s not found", requestorID)
	}
	med, ok := h.Medicines.Get(medicineID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "medicine %s not found", medicineID)
	}
	if quantity <= 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"request quantity must be positive, got %d", quantity)
	}

	req := entity.NewMedicineRequest(h.Requests.NextTypeID(), requestorID, medicineID, quantity)
	h.Requests.Add(req)
	h.log.Info("restock request filed",
		zap.String("request", req.ID),
		zap.String("medicine", medicineID),
		zap.Int("quantity", quantity))

	h.notifyRole(entity.RoleAdministrator,
		fmt.Sprintf("Restock request %s for %s (%d units) awaits review", req.ID, med.Name, quantity))
	return req, nil
}

// ApproveRequest approves a pending restock request and restocks the
// medicine with the requested quantity. The requestor is notified.
func (h *Hospital) ApproveRequest(requestID, approverID string) (*entity.MedicineRequest, error) {
	req, err := h.pendingRequest(requestID)
	if err != nil {
		return nil, err
	}
	approver, ok := h.Staff.Get(approverID)
	if !ok || approver.Role != entity.RoleAdministrator {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "administrator %s not found", approverID)
	}

	if _, err := h.RestockMedicine(req.MedicineID, req.Quantity); err != nil {
		return nil, err
	}
	req.Decide(approverID, entity.RequestApproved)
	h.Requests.Update(req)
	h.Notify(req.RequestorID, "Restock request "+req.ID+" was approved")
	return req, nil
}

// RejectRequest rejects a pending restock request. The requestor is
// notified.
func (h *Hospital) RejectRequest(requestID, approverID string) (*entity.MedicineRequest, error) {
	req, err := h.pendingRequest(requestID)
	if err != nil {
		return nil, err
	}
	req.Decide(approverID, entity.RequestRejected)
	h.Requests.Update(req)
	h.Notify(req.RequestorID, "Restock request "+req.ID+" was rejected")
	return req, nil
}

// RemoveRequest deletes a restock request.
func (h *Hospital) RemoveRequest(requestID string) error {
	req, ok := h.Requests.Get(requestID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound, "request %s not found", requestID)
	}
	h.Requests.Remove(req)
	return nil
}

// PendingRequests returns every request still awaiting review.
func (h *Hospital) PendingRequests() []*entity.MedicineRequest {
	return h.Requests.FindByField("status", string(entity.RequestPending))
}

// RequestsByRequestor returns the requests filed by one staff member.
func (h *Hospital) RequestsByRequestor(requestorID string) []*entity.MedicineRequest {
	return h.Requests.FindByField("requestorId", requestorID)
}

func (h *Hospital) pendingRequest(requestID string) (*entity.MedicineRequest, error) {
	req, ok := h.Requests.Get(requestID)
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "request %s not found", requestID)
	}
	if req.Status != entity.RequestPending {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"request %s is already %s", requestID, req.Status)
	}
	return req, nil
}
