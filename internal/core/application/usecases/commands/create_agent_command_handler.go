package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/ports"
)

// CreateAgentCommandHandler handles the business logic for agent provisioning.
// Hashes the plaintext password through the credential verifier and persists the
// new agent; a taken username surfaces as an already-exists conflict.
//
// Example:
//
//	handler := NewCreateAgentCommandHandler(uowFactory, hasher)
//	cmd, _ := NewCreateAgentCommand(kernel.NewUUID(), "alice", "secret123")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("agent provisioning failed: %w", err)
//	}
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateAgentCommandHandler creates a handler for agent provisioning operations.
// Requires an AgentUoWFactory for transactional persistence and a PasswordHasher
// for digest generation.
func NewCreateAgentCommandHandler(
	uowFactory AgentUoWFactory,
	hasher ports.PasswordHasher,
) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the agent provisioning command.
// Hashes the password, constructs the agent aggregate, and persists it within a
// transaction. Only the digest ever reaches storage.
func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	digest, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	aggregate, err := agent.NewAgent(cmd.AgentID(), cmd.Username(), digest)
	if err != nil {
		return err
	}

	if err = agentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
