package commands

import (
	"context"
	"time"

	"paquexpress/internal/core/domain/model/parcel"
)

// AssignParcelCommandHandler handles parcel registration and assignment.
// Resolves the owning agent first so an unknown agent surfaces as a not-found
// error before any parcel is written, then persists the pending parcel.
//
// Example:
//
//	handler := NewAssignParcelCommandHandler(uowFactory)
//	cmd, _ := NewAssignParcelCommand(parcelID, agentID, "TRK-001", "Av. Reforma 123", "Small box")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such agent")
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    log.Println("Tracking code already registered")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignParcelCommandHandler creates a handler for parcel assignment operations.
// Requires a UoWFactory because the handler reads the agent aggregate and writes
// the parcel aggregate within one transaction.
func NewAssignParcelCommandHandler(uowFactory UoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel assignment command.
// Verifies the agent exists, creates the parcel in Pending status owned by that
// agent, and persists it. A duplicate tracking code surfaces as an already-exists
// conflict from the repository.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.AgentRepository().Get(ctx, cmd.AgentID()); err != nil {
		return err
	}

	agentID := cmd.AgentID()
	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingCode(),
		cmd.Address(),
		cmd.Description(),
		&agentID,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
