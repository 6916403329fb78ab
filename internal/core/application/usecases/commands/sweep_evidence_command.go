package commands

import (
	"errors"
	"time"

	"paquexpress/internal/pkg/guard"
)

var (
	ErrSweepEvidenceCommandIsNotConstructed = errors.New(
		"SweepEvidenceCommand must be created via NewSweepEvidenceCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// SweepEvidenceCommand requests removal of orphaned evidence files: photos that
// were written to the store but whose delivery was never committed (a persistence
// failure after the upload strands the file). Files younger than the retention
// window are left alone so an in-flight delivery is never raced.
type SweepEvidenceCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewSweepEvidenceCommand creates a command to sweep orphaned evidence files
// older than the given retention window. Retention must be positive.
func NewSweepEvidenceCommand(retention time.Duration) (SweepEvidenceCommand, error) {
	if retention <= 0 {
		return SweepEvidenceCommand{}, ErrRetentionIsInvalid
	}

	return SweepEvidenceCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepEvidenceCommandIsNotConstructed if validation fails.
func (c SweepEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrSweepEvidenceCommandIsNotConstructed)
}

// Retention returns the minimum age a file must reach before it is eligible
// for removal.
func (c SweepEvidenceCommand) Retention() time.Duration {
	return c.retention
}
