// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response structs;
// they never mutate state.
package queries

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrAuthenticateAgentQueryIsNotConstructed = errors.New(
		"AuthenticateAgentQuery must be created via NewAuthenticateAgentQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("username and password are required")
)

// AuthenticateAgentQuery represents a stateless credential check for an agent.
// No session or token is issued; each request authenticates independently.
type AuthenticateAgentQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAgentQuery creates a query to authenticate an agent by
// username and plaintext password. Both must be non-empty; a blank credential
// can never match, so it is rejected before touching storage.
func NewAuthenticateAgentQuery(username string, password string) (AuthenticateAgentQuery, error) {
	if username == "" || password == "" {
		return AuthenticateAgentQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateAgentQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateAgentQueryIsNotConstructed if validation fails.
func (q AuthenticateAgentQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAgentQueryIsNotConstructed)
}

// Username returns the login name to authenticate (case-sensitive exact match).
func (q AuthenticateAgentQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to verify against the stored digest.
func (q AuthenticateAgentQuery) Password() string {
	return q.password
}

// AuthenticateAgentQueryResponse identifies a successfully authenticated agent.
// The password digest is never part of the response.
type AuthenticateAgentQueryResponse struct {
	AgentID  kernel.UUID
	Username string
}
