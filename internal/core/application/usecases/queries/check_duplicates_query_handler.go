package queries

import (
	"context"

	"gorm.io/gorm"
)

// CheckDuplicatesQueryHandler runs the exhaustive duplicate guard against the
// customer index. Uses direct SQL for optimal read performance in the CQRS
// pattern; the check is read-only and never mutates customer records.
//
// A database failure surfaces as an error, deliberately distinct from a
// response with no collisions: callers must not conflate "store down" with
// "no conflict".
type CheckDuplicatesQueryHandler struct {
	db *gorm.DB
}

// NewCheckDuplicatesQueryHandler creates a handler for duplicate-guard queries.
// Requires a GORM database connection for query execution.
func NewCheckDuplicatesQueryHandler(db *gorm.DB) CheckDuplicatesQueryHandler {
	return CheckDuplicatesQueryHandler{db: db}
}

// Handle checks every non-empty field independently and reports all
// collisions at once.
func (h CheckDuplicatesQueryHandler) Handle(
	ctx context.Context,
	query CheckDuplicatesQuery,
) (CheckDuplicatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckDuplicatesQueryResponse{}, err
	}

	var response CheckDuplicatesQueryResponse

	if query.Identification() != "" {
		exists, err := h.exists(ctx, "identification", query.Identification())
		if err != nil {
			return CheckDuplicatesQueryResponse{}, err
		}
		response.Identification = exists
	}

	if query.Email() != "" {
		exists, err := h.exists(ctx, "email", query.Email())
		if err != nil {
			return CheckDuplicatesQueryResponse{}, err
		}
		response.Email = exists
	}

	if query.Phone() != "" {
		exists, err := h.exists(ctx, "phone", query.Phone())
		if err != nil {
			return CheckDuplicatesQueryResponse{}, err
		}
		response.Phone = exists
	}

	return response, nil
}

func (h CheckDuplicatesQueryHandler) exists(ctx context.Context, column, value string) (bool, error) {
	var found bool
	err := h.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM customers WHERE "+column+" = ?)",
		value,
	).Scan(&found).Error
	if err != nil {
		return false, err
	}
	return found, nil
}
