package customerrepo

import (
	"context"
	"errors"

	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique index violation.
const uniqueViolation = "23505"

// ErrCustomerConflict signals that a unique customer key (identification,
// email or phone) is already taken by another record.
var ErrCustomerConflict = errors.New("customer identification, email or phone is already taken")

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database. Unique index violations on the
// deduplication keys are reported as ErrCustomerConflict so a racing
// finalization never silently creates a second record for the same person.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapConflict(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database. The whole row is
// written so a removed value never lingers from the previous state.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return mapConflict(result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIdentification retrieves a customer by national id / passport.
func (r *GormCustomerRepository) GetByIdentification(ctx context.Context, identification string) (*customer.Customer, error) {
	return r.getByField(ctx, "identification", identification)
}

// GetByEmail retrieves a customer by exact email match.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.getByField(ctx, "email", email)
}

// GetByPhone retrieves a customer by exact phone match.
func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return r.getByField(ctx, "phone", phone)
}

func (r *GormCustomerRepository) getByField(ctx context.Context, column, value string) (*customer.Customer, error) {
	if value == "" {
		return nil, errs.NewValueIsRequiredError(column)
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, column+" = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", value)
		}
		return nil, err
	}

	return toDomain(dto)
}

// mapConflict translates a PostgreSQL unique violation into the repository's
// conflict error, leaving every other error untouched.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errors.Join(ErrCustomerConflict, err)
	}
	return err
}
