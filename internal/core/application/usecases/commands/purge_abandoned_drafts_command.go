package commands

import (
	"errors"
	"fmt"
	"time"

	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

var (
	ErrPurgeAbandonedDraftsCommandIsNotConstructed = errors.New(
		"PurgeAbandonedDraftsCommand must be created via NewPurgeAbandonedDraftsCommand constructor",
	)
)

// PurgeAbandonedDraftsCommand represents a request to remove Active drafts
// that were not touched within the retention window. Sessions that never
// reached submission leave their draft behind; the cleanup job issues this
// command periodically.
type PurgeAbandonedDraftsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeAbandonedDraftsCommand creates a purge command with the given
// retention window. The retention must be positive.
func NewPurgeAbandonedDraftsCommand(retention time.Duration) (PurgeAbandonedDraftsCommand, error) {
	cmd := PurgeAbandonedDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeAbandonedDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeAbandonedDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAbandonedDraftsCommandIsNotConstructed)
}

// Retention returns how long an untouched Active draft is kept.
func (c PurgeAbandonedDraftsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeAbandonedDraftsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("retention is invalid",
			fmt.Errorf("%s is not greater than 0", retention))
	}
	c.retention = retention
	return nil
}
