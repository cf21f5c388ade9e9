package queries

import (
	"errors"
	"time"

	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var (
	ErrGetDraftQueryIsNotConstructed = errors.New(
		"GetDraftQuery must be created via NewGetDraftQuery constructor",
	)
)

// GetDraftQuery reloads a saved draft so a returning session can resume the
// wizard with the exact field values it left behind.
type GetDraftQuery struct { //nolint:recvcheck //using for validation
	draftID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDraftQuery creates a query for the draft with the given id.
func NewGetDraftQuery(draftID kernel.UUID) (GetDraftQuery, error) {
	if err := draftID.Validate(); err != nil {
		return GetDraftQuery{}, err
	}

	return GetDraftQuery{
		draftID: draftID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// DraftID returns the draft to reload.
func (q GetDraftQuery) DraftID() kernel.UUID {
	return q.draftID
}

// GetDraftQueryResponse carries the reloaded snapshot. Form reproduces the
// saved field values bit for bit, including the step at which the draft was
// last saved and the draft's own id.
type GetDraftQueryResponse struct {
	Form      intake.FormState
	Status    string
	UpdatedAt time.Time
}
