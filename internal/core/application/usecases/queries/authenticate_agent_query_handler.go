package queries

import (
	"context"
	"database/sql"
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for every failed authentication, whether the
// username does not exist or the password does not match. Returning one error for
// both cases prevents username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateAgentQueryHandler performs the stateless credential check that
// gates access to an agent's parcels. It looks the agent up by exact username
// and verifies the password against the stored digest.
//
// Example:
//
//	handler := NewAuthenticateAgentQueryHandler(db, hasher)
//	query, _ := NewAuthenticateAgentQuery("alice", "secret123")
//
//	identity, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // same response for unknown user and wrong password
//	}
type AuthenticateAgentQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewAuthenticateAgentQueryHandler creates a handler for authentication checks.
// Requires a GORM database connection and the credential verifier.
func NewAuthenticateAgentQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateAgentQueryHandler {
	return AuthenticateAgentQueryHandler{db: db, hasher: hasher}
}

// Handle executes the credential check.
// A lookup miss and a digest mismatch are indistinguishable to the caller; both
// yield ErrInvalidCredentials. The digest never leaves this handler.
func (h AuthenticateAgentQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAgentQuery,
) (AuthenticateAgentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateAgentQueryResponse{}, err
	}

	var id uuid.UUID
	var username, passwordDigest string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_digest
		FROM agents
		WHERE username = ?
	`, query.Username()).Row()

	if err := row.Scan(&id, &username, &passwordDigest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticateAgentQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateAgentQueryResponse{}, err
	}

	if !h.hasher.Verify(query.Password(), passwordDigest) {
		return AuthenticateAgentQueryResponse{}, ErrInvalidCredentials
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateAgentQueryResponse{}, err
	}

	return AuthenticateAgentQueryResponse{
		AgentID:  agentID,
		Username: username,
	}, nil
}
