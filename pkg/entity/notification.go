package entity

import (
	"time"

	"github.com/carewise/hms/pkg/record"
)

// PrefixNotification prefixes notification identifiers.
const PrefixNotification = "NOTI"

// Notification is a message delivered to one user's inbox.
type Notification struct {
	ID       string
	UserID   string
	Message  string
	DateTime time.Time
	Read     bool
}

// NewNotification creates an unread notification stamped with the
// current time.
func NewNotification(id, userID, message string) *Notification {
	return &Notification{
		ID:       id,
		UserID:   userID,
		Message:  message,
		DateTime: time.Now(),
	}
}

// GetID returns the unique identifier of the notification.
func (n *Notification) GetID() string {
	return n.ID
}

// MarkRead flags the notification as read.
func (n *Notification) MarkRead() {
	n.Read = true
}

// NotificationCatalog orders the notification columns.
var NotificationCatalog = record.Catalog[*Notification]{
	Name: "notification",
	New:  func() *Notification { return &Notification{} },
	Fields: []record.Field[*Notification]{
		{
			Name: "id", Kind: record.KindString,
			Get: func(n *Notification) any { return n.ID },
			Set: func(n *Notification, v any) error { return assign(&n.ID, v) },
		},
		{
			Name: "userId", Kind: record.KindString,
			Get: func(n *Notification) any { return n.UserID },
			Set: func(n *Notification, v any) error { return assign(&n.UserID, v) },
		},
		{
			Name: "message", Kind: record.KindString,
			Get: func(n *Notification) any { return n.Message },
			Set: func(n *Notification, v any) error { return assign(&n.Message, v) },
		},
		{
			Name: "datetime", Kind: record.KindDateTime,
			Get: func(n *Notification) any { return n.DateTime },
			Set: func(n *Notification, v any) error { return assign(&n.DateTime, v) },
		},
		{
			Name: "read", Kind: record.KindBool,
			Get: func(n *Notification) any { return n.Read },
			Set: func(n *Notification, v any) error { return assign(&n.Read, v) },
		},
	},
}
