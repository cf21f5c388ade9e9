package draft

import (
	"errors"
	"time"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft instance was not created
// through the NewDraft or RestoreDraft factory functions.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// ErrDraftIsSuperseded is returned when a snapshot replacement is attempted
// on a draft that has already been finalized into an order.
var ErrDraftIsSuperseded = errors.New("draft is superseded and no longer accepts updates")

// Draft is the aggregate root preserving one wizard session's partial
// progress. It holds the latest FormState snapshot, the step at which it was
// last saved and its lifecycle status.
//
// Draft follows these invariants:
//   - Must have a valid unique identifier
//   - The saved step always mirrors the snapshot's current step
//   - Snapshot updates are full replacements and only allowed while Active
type Draft struct {
	id        kernel.UUID
	snapshot  intake.FormState
	savedStep intake.Step
	status    Status
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDraft creates an Active draft from the session's current form snapshot.
// The saved step is taken from the snapshot itself.
func NewDraft(id kernel.UUID, snapshot intake.FormState, at time.Time) (*Draft, error) {
	d := &Draft{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSnapshot(snapshot),
		d.setUpdatedAt(at),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDraft reconstructs a Draft from persistent storage.
func RestoreDraft(id kernel.UUID, snapshot intake.FormState, status Status, updatedAt time.Time) (*Draft, error) {
	d := &Draft{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSnapshot(snapshot),
		d.setStatus(status),
		d.setUpdatedAt(updatedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Draft was properly constructed.
func (d *Draft) Validate() error {
	if d == nil {
		return ErrDraftIsNotConstructed
	}
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// IsEqual compares two drafts by their unique identifiers.
func (d *Draft) IsEqual(other *Draft) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the draft's unique identifier.
func (d *Draft) ID() kernel.UUID {
	return d.id
}

// Snapshot returns the latest stored form snapshot.
func (d *Draft) Snapshot() intake.FormState {
	return d.snapshot
}

// SavedStep returns the wizard step at which the snapshot was last saved.
func (d *Draft) SavedStep() intake.Step {
	return d.savedStep
}

// Status returns the draft's lifecycle status.
func (d *Draft) Status() Status {
	return d.status
}

// UpdatedAt returns the time of the last snapshot replacement.
func (d *Draft) UpdatedAt() time.Time {
	return d.updatedAt
}

// ReplaceSnapshot overwrites the stored snapshot with the client's complete
// current form. This is deliberately a full replace, not a field-level merge:
// the wizard always sends its entire FormState, and concurrent saves resolve
// as last write wins. Fails on superseded drafts.
func (d *Draft) ReplaceSnapshot(snapshot intake.FormState, at time.Time) error {
	if d.status != Active {
		return ErrDraftIsSuperseded
	}
	if err := d.setSnapshot(snapshot); err != nil {
		return err
	}
	return d.setUpdatedAt(at)
}

// Supersede marks the draft as finalized into a real order. The snapshot is
// kept untouched for traceability.
func (d *Draft) Supersede() error {
	newStatus, err := d.status.Supersede()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

func (d *Draft) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Draft) setSnapshot(snapshot intake.FormState) error {
	if err := snapshot.CurrentStep.Validate(); err != nil {
		return err
	}
	d.snapshot = snapshot
	d.savedStep = snapshot.CurrentStep
	return nil
}

func (d *Draft) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Draft) setUpdatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	d.updatedAt = at
	return nil
}
