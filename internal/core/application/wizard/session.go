package wizard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/services"
	"intake/internal/pkg/errs"
)

// DraftSaver persists the form as a recoverable draft.
// Implemented by commands.SaveDraftCommandHandler.
type DraftSaver interface {
	Handle(ctx context.Context, cmd commands.SaveDraftCommand) (kernel.UUID, error)
}

// DraftLoader reloads a previously saved draft.
// Implemented by queries.GetDraftQueryHandler.
type DraftLoader interface {
	Handle(ctx context.Context, query queries.GetDraftQuery) (queries.GetDraftQueryResponse, error)
}

// CustomerSearcher runs the single-field identity search of the
// existing-customer path. Implemented by queries.SearchCustomerQueryHandler.
type CustomerSearcher interface {
	Handle(ctx context.Context, query queries.SearchCustomerQuery) (queries.SearchCustomerQueryResponse, error)
}

// DuplicateChecker runs the exhaustive duplicate guard of the new-customer
// path. Implemented by queries.CheckDuplicatesQueryHandler.
type DuplicateChecker interface {
	Handle(ctx context.Context, query queries.CheckDuplicatesQuery) (queries.CheckDuplicatesQueryResponse, error)
}

// IntakeFinalizer submits the completed form.
// Implemented by commands.FinalizeIntakeCommandHandler.
type IntakeFinalizer interface {
	Handle(ctx context.Context, cmd commands.FinalizeIntakeCommand) (commands.FinalizeIntakeResult, error)
}

// CompletedEvent is the typed notification a session emits to its registered
// subscribers after a successful submission.
type CompletedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	DraftID    kernel.UUID
	OccurredAt time.Time
}

// Dependencies are the collaborators a session orchestrates.
type Dependencies struct {
	DraftSaver       DraftSaver
	DraftLoader      DraftLoader
	CustomerSearcher CustomerSearcher
	DuplicateChecker DuplicateChecker
	Finalizer        IntakeFinalizer
}

// Validate checks that every collaborator is present.
func (d Dependencies) Validate() error {
	if d.DraftSaver == nil {
		return errs.NewValueIsRequiredError("draftSaver")
	}
	if d.DraftLoader == nil {
		return errs.NewValueIsRequiredError("draftLoader")
	}
	if d.CustomerSearcher == nil {
		return errs.NewValueIsRequiredError("customerSearcher")
	}
	if d.DuplicateChecker == nil {
		return errs.NewValueIsRequiredError("duplicateChecker")
	}
	if d.Finalizer == nil {
		return errs.NewValueIsRequiredError("finalizer")
	}
	return nil
}

// Session is one run of the intake wizard: a single user filling a single
// FormState. It sequences the steps, gates forward transitions on validation
// and duplicate checks, saves the draft before every advance and submits the
// completed form.
//
// All methods serialize on an internal mutex, so a transition requested while
// a draft save is outstanding waits for the save to resolve instead of
// interleaving with it. Store-bound calls run under the session context;
// Close cancels it and any response arriving afterwards is discarded.
//
// Example:
//
//	session, err := wizard.NewSession(ctx, deps)
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	session.OnCompleted(func(e wizard.CompletedEvent) {
//	    refreshOrderList(e.OrderID)
//	})
//
//	_ = session.SelectMode(intake.ModeNew)
//	if err := session.Next(); err != nil {
//	    // surface per-field errors, step pointer unchanged
//	}
type Session struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	form             intake.FormState
	validator        services.StepValidator
	validationErrors intake.ValidationErrorSet
	duplicateErrors  intake.DuplicateErrorSet

	deps Dependencies

	completedSubs []func(CompletedEvent)
}

// NewSession creates a wizard session in its initial state: the client-type
// step, an empty form, no mode chosen, no draft and no customer binding.
func NewSession(ctx context.Context, deps Dependencies) (*Session, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	return &Session{
		ctx:              sessionCtx,
		cancel:           cancel,
		form:             intake.NewFormState(),
		validator:        services.NewStepValidator(),
		validationErrors: intake.ValidationErrorSet{},
		duplicateErrors:  intake.DuplicateErrorSet{},
		deps:             deps,
	}, nil
}

// Form returns a copy of the current form state.
func (s *Session) Form() intake.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Step returns the step the wizard currently shows.
func (s *Session) Step() intake.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.CurrentStep
}

// ValidationErrors returns a copy of the current per-field validation errors.
func (s *Session) ValidationErrors() intake.ValidationErrorSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySet(s.validationErrors)
}

// DuplicateErrors returns a copy of the current per-field duplicate conflicts.
func (s *Session) DuplicateErrors() intake.DuplicateErrorSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySet(s.duplicateErrors)
}

// OnCompleted registers a subscriber for the completion event. Subscribers
// are invoked after a successful submission, once the session has already
// been reset for the next entry.
func (s *Session) OnCompleted(fn func(CompletedEvent)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completedSubs = append(s.completedSubs, fn)
}

// SelectMode records the existing-vs-new choice of the first page. Choosing
// the new-customer mode drops any binding left from an earlier identity
// search; the entered field values always survive.
func (s *Session) SelectMode(mode intake.CustomerMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.form.Mode = mode
	if mode == intake.ModeNew {
		s.form.BoundCustomerID = nil
	}
	delete(s.validationErrors, intake.FieldClientType)
	s.duplicateErrors = intake.DuplicateErrorSet{}
	return nil
}

// SearchExistingCustomer runs the single-field identity search. A match
// pre-fills the identity and contact fields, copies the saved address when
// the record carries one and binds the session to the matched customer. No
// match leaves the form untouched and reports found false with a nil error;
// store failures are returned as a PersistenceError.
func (s *Session) SearchExistingCustomer(searchType queries.SearchType, identifier string) (bool, error) {
	query, err := queries.NewSearchCustomerQuery(searchType, identifier)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return false, ErrSessionClosed
	}
	if s.form.Mode != intake.ModeExisting {
		return false, errs.NewValueIsInvalidError("identity search requires the existing customer mode")
	}

	response, err := s.deps.CustomerSearcher.Handle(s.ctx, query)
	if err != nil {
		return false, &PersistenceError{cause: err}
	}
	if s.closed.Load() {
		// The session was torn down while the lookup was in flight.
		return false, ErrSessionClosed
	}
	if !response.Found {
		return false, nil
	}

	matched := response.Customer
	s.form.FirstName = matched.FirstName
	s.form.LastName = matched.LastName
	s.form.Identification = matched.Identification
	s.form.Email = matched.Email
	s.form.Phone = matched.Phone
	if matched.Address != nil {
		s.form.Street = matched.Address.Street
		s.form.City = matched.Address.City
		s.form.Province = matched.Address.Province
		s.form.Instructions = matched.Address.Instructions
	}
	id := matched.ID
	s.form.BoundCustomerID = &id
	s.validationErrors = intake.ValidationErrorSet{}
	s.duplicateErrors = intake.DuplicateErrorSet{}
	return true, nil
}

// SetField assigns a value to a form field. The stale error for that field is
// dropped the instant the new value arrives, then the field is re-validated
// against the current step's schema.
func (s *Session) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}

	if err := s.form.Set(field, value); err != nil {
		return err
	}

	delete(s.validationErrors, field)
	delete(s.duplicateErrors, field)
	if message, ok := s.validator.ValidateStep(s.form, s.form.CurrentStep)[field]; ok {
		s.validationErrors[field] = message
	}
	return nil
}

// LoadDraft reloads a saved draft into the session, restoring the field
// values, the mode, the binding and the step at which the draft was last
// saved.
func (s *Session) LoadDraft(draftID kernel.UUID) error {
	query, err := queries.NewGetDraftQuery(draftID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}

	response, err := s.deps.DraftLoader.Handle(s.ctx, query)
	if err != nil {
		return &PersistenceError{cause: err}
	}
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.form = response.Form
	s.validationErrors = intake.ValidationErrorSet{}
	s.duplicateErrors = intake.DuplicateErrorSet{}
	return nil
}

// Next advances the wizard one step. The current step must validate, the
// draft save must succeed before the step pointer moves, and leaving the
// identity step in new-customer mode additionally requires the exhaustive
// duplicate guard to come back clean. On any failure the pointer stays where
// it is and the form keeps every entered value.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}

	next, err := s.form.CurrentStep.Next()
	if err != nil {
		return err
	}

	stepErrors := s.validator.ValidateStep(s.form, s.form.CurrentStep)
	if !stepErrors.IsEmpty() {
		s.validationErrors = stepErrors
		return &ValidationError{Fields: copySet(stepErrors)}
	}
	s.validationErrors = intake.ValidationErrorSet{}

	if s.form.CurrentStep == intake.StepIdentity && s.form.Mode == intake.ModeNew {
		if err = s.runDuplicateGuard(); err != nil {
			return err
		}
	}

	if err = s.saveDraft(); err != nil {
		return err
	}

	s.form.CurrentStep = next
	return nil
}

// Back moves the wizard one step backwards. Always permitted, no validation,
// no persistence side effects.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}

	prev, err := s.form.CurrentStep.Prev()
	if err != nil {
		return err
	}
	s.form.CurrentStep = prev
	return nil
}

// Submit finalizes the intake from the review step. The full form must
// satisfy the submission invariant; the customer and the final order are
// created atomically. On success the registered subscribers receive the
// completion event and the session resets to its initial state for the next
// entry. On failure the session stays on the review step with the draft
// intact, so submission can be retried without data loss.
func (s *Session) Submit() error {
	event, err := s.submit()
	if err != nil {
		return err
	}

	for _, fn := range event.subs {
		fn(event.CompletedEvent)
	}
	return nil
}

type completedNotification struct {
	CompletedEvent
	subs []func(CompletedEvent)
}

func (s *Session) submit() (completedNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return completedNotification{}, ErrSessionClosed
	}

	if s.form.CurrentStep != intake.StepReview {
		return completedNotification{}, errs.NewValueIsInvalidError("submission is only possible from the review step")
	}

	formErrors := s.validator.ValidateForm(s.form)
	if !formErrors.IsEmpty() {
		s.validationErrors = formErrors
		return completedNotification{}, &ValidationError{Fields: copySet(formErrors)}
	}
	if !s.duplicateErrors.IsEmpty() {
		return completedNotification{}, &DuplicateError{Fields: copySet(s.duplicateErrors)}
	}
	if !s.form.Bound() && !s.form.IdentityComplete() {
		return completedNotification{}, errs.NewValueIsRequiredError("identity and contact fields")
	}
	if s.form.DraftID == nil {
		return completedNotification{}, errs.NewValueIsRequiredError("draft id")
	}

	cmd, err := commands.NewFinalizeIntakeCommand(s.form, *s.form.DraftID)
	if err != nil {
		return completedNotification{}, err
	}

	result, err := s.deps.Finalizer.Handle(s.ctx, cmd)
	if err != nil {
		return completedNotification{}, &FinalizationError{cause: err}
	}
	if s.closed.Load() {
		return completedNotification{}, ErrSessionClosed
	}

	notification := completedNotification{
		CompletedEvent: CompletedEvent{
			OrderID:    result.OrderID,
			CustomerID: result.CustomerID,
			DraftID:    *s.form.DraftID,
			OccurredAt: time.Now().UTC(),
		},
		subs: s.completedSubs,
	}

	s.form = intake.NewFormState()
	s.validationErrors = intake.ValidationErrorSet{}
	s.duplicateErrors = intake.DuplicateErrorSet{}
	return notification, nil
}

// Close tears the session down: the context is cancelled, in-flight calls
// are abandoned and every later operation reports ErrSessionClosed.
func (s *Session) Close() {
	s.closed.Store(true)
	s.cancel()
}

// runDuplicateGuard checks identification, email and phone against the
// existing customer index and blocks the transition on any collision.
// Called with the session lock held.
func (s *Session) runDuplicateGuard() error {
	query, err := queries.NewCheckDuplicatesQuery(s.form.Identification, s.form.Email, s.form.Phone)
	if err != nil {
		return err
	}

	response, err := s.deps.DuplicateChecker.Handle(s.ctx, query)
	if err != nil {
		// Store unavailability must never read as "no conflict".
		return &PersistenceError{cause: err}
	}
	if s.closed.Load() {
		return ErrSessionClosed
	}

	if response.AnyCollision() {
		s.duplicateErrors = response.ErrorSet()
		return &DuplicateError{Fields: copySet(s.duplicateErrors)}
	}
	s.duplicateErrors = intake.DuplicateErrorSet{}
	return nil
}

// saveDraft persists the current form, assigning the session its draft id on
// the first save and reusing it afterwards. Called with the session lock
// held; the step pointer only moves after this returned nil.
func (s *Session) saveDraft() error {
	cmd, err := commands.NewSaveDraftCommand(s.form, s.form.DraftID)
	if err != nil {
		return err
	}

	draftID, err := s.deps.DraftSaver.Handle(s.ctx, cmd)
	if err != nil {
		return &PersistenceError{cause: err}
	}
	if s.closed.Load() {
		return ErrSessionClosed
	}

	s.form.DraftID = &draftID
	return nil
}

func copySet[S ~map[string]string](set S) S {
	copied := make(S, len(set))
	for field, message := range set {
		copied[field] = message
	}
	return copied
}
