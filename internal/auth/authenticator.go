// Package auth gates the admin console. The shipped authenticator is a
// deliberate placeholder comparing a single configured credential pair; a
// real deployment would swap in an external identity provider behind the
// same interface.
package auth

import "github.com/bokyaa/portfolio-backend/internal/projects/domain"

// Authenticator decides whether a credential pair grants admin access.
type Authenticator interface {
	Authenticate(username, password string) error
}

// StaticAuthenticator checks against one fixed pair. No hashing, no
// lockout, no rate limiting. Failures carry no field-level detail.
type StaticAuthenticator struct {
	username string
	password string
}

// NewStaticAuthenticator creates an authenticator for the given pair.
func NewStaticAuthenticator(username, password string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, password: password}
}

func (a *StaticAuthenticator) Authenticate(username, password string) error {
	if username != a.username || password != a.password {
		return domain.ErrBadCredentials
	}
	return nil
}
