package hospital

import (
	"time"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// MarkUnavailable blocks a calendar day for a staff member. Marking a
// day twice is a conflict.
func (h *Hospital) MarkUnavailable(staffID string, day time.Time) (*entity.UnavailableDate, error) {
	if _, ok := h.Staff.Get(staffID); !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "staff %s not found", staffID)
	}
	if h.StaffUnavailableOn(staffID, day) {
		return nil, errors.Newf(errors.ErrorTypeConflict,
			"staff %s is already unavailable on %s", staffID, day.Format("2006-01-02"))
	}
	ud := entity.NewUnavailableDate(h.Unavailable.NextTypeID(), staffID, day)
	h.Unavailable.Add(ud)
	return ud, nil
}

// ClearUnavailable removes an unavailability entry.
func (h *Hospital) ClearUnavailable(id string) error {
	ud, ok := h.Unavailable.Get(id)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound,
			"unavailable date %s not found", id)
	}
	h.Unavailable.Remove(ud)
	return nil
}

// UnavailableDatesOf returns all unavailability entries of a staff
// member.
func (h *Hospital) UnavailableDatesOf(staffID string) []*entity.UnavailableDate {
	return h.Unavailable.FindByField("staffId", staffID)
}

// StaffUnavailableOn reports whether the staff member is marked
// unavailable on the calendar day containing t.
func (h *Hospital) StaffUnavailableOn(staffID string, t time.Time) bool {
	for _, ud := range h.UnavailableDatesOf(staffID) {
		if sameDay(ud.Date, t) {
			return true
		}
	}
	return false
}
