package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDraftQueryHandler reloads a stored draft snapshot for session resume.
type GetDraftQueryHandler struct {
	db *gorm.DB
}

// NewGetDraftQueryHandler creates a handler for draft reload queries.
// Requires a GORM database connection for query execution.
func NewGetDraftQueryHandler(db *gorm.DB) GetDraftQueryHandler {
	return GetDraftQueryHandler{db: db}
}

// Handle fetches the draft row and rebuilds the FormState it stores.
// Returns ObjectNotFoundError when the id is unknown.
func (h GetDraftQueryHandler) Handle(
	ctx context.Context,
	query GetDraftQuery,
) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			identification,
			phone,
			email,
			street,
			city,
			province,
			instructions,
			current_step,
			customer_mode,
			bound_customer_id,
			status,
			updated_at
		FROM drafts
		WHERE id = ?
	`, query.DraftID().Bytes()).Row()

	var id uuid.UUID
	var boundCustomerID *uuid.UUID
	var form intake.FormState
	var step, mode, status int
	var updatedAt time.Time

	err := row.Scan(
		&id,
		&form.FirstName,
		&form.LastName,
		&form.Identification,
		&form.Phone,
		&form.Email,
		&form.Street,
		&form.City,
		&form.Province,
		&form.Instructions,
		&step,
		&mode,
		&boundCustomerID,
		&status,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDraftQueryResponse{}, errs.NewObjectNotFoundError("draft", query.DraftID().String())
		}
		return GetDraftQueryResponse{}, err
	}

	draftID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDraftQueryResponse{}, err
	}
	form.DraftID = &draftID
	form.CurrentStep = intake.Step(step)
	form.Mode = intake.CustomerMode(mode)

	if boundCustomerID != nil {
		bound, idErr := kernel.UUIDFromBytes((*boundCustomerID)[:])
		if idErr != nil {
			return GetDraftQueryResponse{}, idErr
		}
		form.BoundCustomerID = &bound
	}

	return GetDraftQueryResponse{
		Form:      form,
		Status:    draft.Status(status).String(),
		UpdatedAt: updatedAt,
	}, nil
}
