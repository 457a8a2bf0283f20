package hospital

import (
	"sort"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// Notify delivers a message to a user's inbox.
func (h *Hospital) Notify(userID, message string) *entity.Notification {
	n := entity.NewNotification(h.Notifications.NextTypeID(), userID, message)
	h.Notifications.Add(n)
	return n
}

// notifyRole delivers a message to every staff member holding a role.
func (h *Hospital) notifyRole(role entity.Role, message string) {
	for staff := range h.Staff.All() {
		if staff.Role == role {
			h.Notify(staff.GetID(), message)
		}
	}
}

// NotificationsFor returns a user's notifications, newest first.
func (h *Hospital) NotificationsFor(userID string) []*entity.Notification {
	out := h.Notifications.FindByField("userId", userID)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateTime.After(out[j].DateTime)
	})
	return out
}

// UnreadCount returns the number of unread notifications of a user.
func (h *Hospital) UnreadCount(userID string) int {
	count := 0
	for _, n := range h.NotificationsFor(userID) {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flags one notification as read.
func (h *Hospital) MarkNotificationRead(notificationID string) error {
	n, ok := h.Notifications.Get(notificationID)
	if !ok {
		return errors.Newf(errors.ErrorTypeNotFound,
			"notification %s not found", notificationID)
	}
	n.MarkRead()
	h.Notifications.Update(n)
	return nil
}

// MarkAllRead flags every notification of a user as read.
func (h *Hospital) MarkAllRead(userID string) {
	for _, n := range h.NotificationsFor(userID) {
		if !n.Read {
			n.MarkRead()
			h.Notifications.Update(n)
		}
	}
}
