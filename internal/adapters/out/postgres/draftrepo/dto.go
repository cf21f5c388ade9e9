// Package draftrepo provides data transfer objects and mapping functions for
// draft persistence. Drafts store the complete form snapshot in flat columns
// so the reload query can rebuild the exact FormState the wizard saved.
package draftrepo

import (
	"time"

	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DraftDTO represents the database structure for persisting draft aggregates.
// The snapshot is flattened into one row per draft; every save replaces the
// whole row, which is what makes concurrent saves resolve as last write wins.
type DraftDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string
	LastName        string
	Identification  string
	Phone           string
	Email           string
	Street          string
	City            string
	Province        string
	Instructions    string
	CurrentStep     int
	CustomerMode    int
	BoundCustomerID *uuid.UUID `gorm:"type:uuid"`
	Status          int        `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for draft entities.
func (DraftDTO) TableName() string {
	return "drafts"
}

// fromDomain converts a draft domain aggregate to its database representation.
func fromDomain(draft *draft.Draft) DraftDTO {
	snapshot := draft.Snapshot()

	var boundCustomerID *uuid.UUID
	if snapshot.BoundCustomerID != nil {
		raw := snapshot.BoundCustomerID.Bytes()
		boundCustomerID = &raw
	}

	return DraftDTO{
		ID:              draft.ID().Bytes(),
		FirstName:       snapshot.FirstName,
		LastName:        snapshot.LastName,
		Identification:  snapshot.Identification,
		Phone:           snapshot.Phone,
		Email:           snapshot.Email,
		Street:          snapshot.Street,
		City:            snapshot.City,
		Province:        snapshot.Province,
		Instructions:    snapshot.Instructions,
		CurrentStep:     int(snapshot.CurrentStep),
		CustomerMode:    int(snapshot.Mode),
		BoundCustomerID: boundCustomerID,
		Status:          int(draft.Status()),
		UpdatedAt:       draft.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a draft domain aggregate.
// The rebuilt FormState carries the row id as its draft identifier.
func toDomain(dto DraftDTO) (*draft.Draft, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var boundCustomerID *kernel.UUID
	if dto.BoundCustomerID != nil {
		bound, boundErr := kernel.UUIDFromBytes((*dto.BoundCustomerID)[:])
		if boundErr != nil {
			return nil, boundErr
		}

		boundCustomerID = &bound
	}

	snapshot := intake.FormState{
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Identification:  dto.Identification,
		Phone:           dto.Phone,
		Email:           dto.Email,
		Street:          dto.Street,
		City:            dto.City,
		Province:        dto.Province,
		Instructions:    dto.Instructions,
		CurrentStep:     intake.Step(dto.CurrentStep),
		Mode:            intake.CustomerMode(dto.CustomerMode),
		DraftID:         &id,
		BoundCustomerID: boundCustomerID,
	}

	return draft.RestoreDraft(id, snapshot, draft.Status(dto.Status), dto.UpdatedAt)
}
