package commands

import (
	"context"
	"errors"
	"time"

	"intake/internal/core/domain/model/customer"
	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/ports"
	"intake/internal/pkg/errs"
)

// IntakeCompletedEvent is the typed refresh signal emitted after a successful
// finalization so list and dashboard views can re-fetch.
type IntakeCompletedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	DraftID    kernel.UUID
	OccurredAt time.Time
}

// CompletionNotifier receives the refresh signal after the finalization
// transaction committed. Implementations must not block the handler.
type CompletionNotifier interface {
	IntakeCompleted(event IntakeCompletedEvent)
}

// FinalizeIntakeResult carries the identifiers created by a finalization.
type FinalizeIntakeResult struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
}

// FinalizeIntakeCommandHandler turns a completed intake into a customer plus
// final order pair within one transaction.
//
// The operation is idempotent by identification: a retry after a partial
// failure finds the customer created by the earlier attempt instead of
// duplicating it, and a retry after a committed finalization returns the
// order already created for the draft.
type FinalizeIntakeCommandHandler struct {
	uowFactory UoWFactory
	notifier   CompletionNotifier
}

// NewFinalizeIntakeCommandHandler creates a handler for intake finalization.
// The notifier may be nil when no view needs refresh signals.
func NewFinalizeIntakeCommandHandler(uowFactory UoWFactory, notifier CompletionNotifier) FinalizeIntakeCommandHandler {
	return FinalizeIntakeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the finalization command. On failure nothing is persisted
// and the draft stays intact, so the caller can retry without data loss.
func (h *FinalizeIntakeCommandHandler) Handle(ctx context.Context, cmd FinalizeIntakeCommand) (FinalizeIntakeResult, error) {
	if err := cmd.Validate(); err != nil {
		return FinalizeIntakeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return FinalizeIntakeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draftRepo := uow.DraftRepository()
	d, err := draftRepo.Get(ctx, cmd.DraftID())
	if err != nil {
		return FinalizeIntakeResult{}, err
	}

	if d.Status() == draft.Superseded {
		// An earlier attempt already committed; hand back its order.
		existing, getErr := uow.OrderRepository().GetByDraftID(ctx, cmd.DraftID())
		if getErr != nil {
			return FinalizeIntakeResult{}, getErr
		}
		return FinalizeIntakeResult{OrderID: existing.ID(), CustomerID: existing.CustomerID()}, nil
	}

	form := cmd.Form()
	address, err := customer.NewAddress(form.Street, form.City, form.Province, form.Instructions)
	if err != nil {
		return FinalizeIntakeResult{}, err
	}

	cust, err := h.createOrUpdateCustomer(ctx, uow.CustomerRepository(), form, address)
	if err != nil {
		return FinalizeIntakeResult{}, err
	}

	now := time.Now().UTC()
	finalOrder, err := order.NewOrder(kernel.NewUUID(), cust.ID(), cmd.DraftID(), address, now)
	if err != nil {
		return FinalizeIntakeResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, finalOrder); err != nil {
		return FinalizeIntakeResult{}, err
	}

	if err = d.Supersede(); err != nil {
		return FinalizeIntakeResult{}, err
	}
	if err = draftRepo.Update(ctx, d); err != nil {
		return FinalizeIntakeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return FinalizeIntakeResult{}, err
	}

	if h.notifier != nil {
		h.notifier.IntakeCompleted(IntakeCompletedEvent{
			OrderID:    finalOrder.ID(),
			CustomerID: cust.ID(),
			DraftID:    cmd.DraftID(),
			OccurredAt: now,
		})
	}

	return FinalizeIntakeResult{OrderID: finalOrder.ID(), CustomerID: cust.ID()}, nil
}

// createOrUpdateCustomer resolves the customer the order belongs to. Sessions
// bound to an existing record update it; new-customer sessions first look up
// the identification so a finalization retry never creates a duplicate.
func (h *FinalizeIntakeCommandHandler) createOrUpdateCustomer(
	ctx context.Context,
	customerRepo ports.CustomerRepository,
	form intake.FormState,
	address customer.Address,
) (*customer.Customer, error) {
	var cust *customer.Customer
	var err error

	switch {
	case form.BoundCustomerID != nil:
		cust, err = customerRepo.Get(ctx, *form.BoundCustomerID)
	default:
		cust, err = customerRepo.GetByIdentification(ctx, form.Identification)
		if err != nil && errors.Is(err, errs.ErrObjectNotFound) {
			return h.createCustomer(ctx, customerRepo, form, address)
		}
	}
	if err != nil {
		return nil, err
	}

	if err = cust.UpdateContact(form.FirstName, form.LastName, form.Email, form.Phone); err != nil {
		return nil, err
	}
	if err = cust.SetAddress(address); err != nil {
		return nil, err
	}
	if err = customerRepo.Update(ctx, cust); err != nil {
		return nil, err
	}

	return cust, nil
}

func (h *FinalizeIntakeCommandHandler) createCustomer(
	ctx context.Context,
	customerRepo ports.CustomerRepository,
	form intake.FormState,
	address customer.Address,
) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(
		kernel.NewUUID(),
		form.Identification,
		form.FirstName,
		form.LastName,
		form.Email,
		form.Phone,
	)
	if err != nil {
		return nil, err
	}

	if err = cust.SetAddress(address); err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, cust); err != nil {
		return nil, err
	}

	return cust, nil
}
