package store

import (
	"errors"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// ErrInvalidCredentials is returned when a login name and password do not
// match an active subject.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateStore abstracts authentication storage operations
type AuthenticateStore interface {
	// Authenticate returns the active subject whose principal matches name
	// and password
	Authenticate(name, password string) (*model.Subject, error)

	// ChangePassword stores a new password for a principal, creating the
	// principal when it does not exist
	ChangePassword(name, password string) error
}
