package hospital

import (
	"go.uber.org/zap"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

// Session identifies the logged-in user for the duration of a run. Role
// is empty for patients.
type Session struct {
	UserID    string
	Name      string
	IsPatient bool
	Role      entity.Role
}

// Login authenticates a user by identifier and password against the
// patient and staff stores. Failures never say which of the identifier
// or password was wrong.
func (h *Hospital) Login(userID, password string) (*Session, error) {
	if p, ok := h.Patients.Get(userID); ok {
		if !p.CheckPassword(password) {
			return nil, errors.New(errors.ErrorTypeAuthentication, "invalid credentials")
		}
		h.log.Info("patient logged in", zap.String("user", userID))
		return &Session{UserID: p.GetID(), Name: p.Name, IsPatient: true}, nil
	}
	if s, ok := h.Staff.Get(userID); ok {
		if !s.CheckPassword(password) {
			return nil, errors.New(errors.ErrorTypeAuthentication, "invalid credentials")
		}
		h.log.Info("staff logged in",
			zap.String("user", userID),
			zap.String("role", string(s.Role)))
		return &Session{UserID: s.GetID(), Name: s.Name, Role: s.Role}, nil
	}
	return nil, errors.New(errors.ErrorTypeAuthentication, "invalid credentials")
}
