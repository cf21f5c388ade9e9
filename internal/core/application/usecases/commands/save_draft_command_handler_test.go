package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/draft"
	"intake/internal/core/domain/model/intake"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/ports"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDraftRepository struct{ mock.Mock }

func (m *MockDraftRepository) Add(ctx context.Context, d *draft.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDraftRepository) Update(ctx context.Context, d *draft.Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDraftRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*draft.Draft), args.Error(1)
}
func (m *MockDraftRepository) DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDraftUoW struct{ mock.Mock }

func (m *MockDraftUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDraftUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDraftUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDraftUoW) DraftRepository() ports.DraftRepository {
	args := m.Called()
	return args.Get(0).(ports.DraftRepository)
}

type MockDraftUoWFactory struct{ mock.Mock }

func (m *MockDraftUoWFactory) Create() commands.DraftUoW {
	args := m.Called()
	return args.Get(0).(commands.DraftUoW)
}

func TestSaveDraftCommandHandler_Handle_FirstSaveCreatesDraft(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), nil)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*draft.Draft")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	added := repo.Calls[0].Arguments.Get(1).(*draft.Draft)
	assert.True(t, added.ID().IsEqual(id))
	assert.Equal(t, draft.Active, added.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle_SubsequentSaveReplacesSnapshot(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing, err := draft.NewDraft(id, draftForm(), time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)

	updatedForm := draftForm()
	updatedForm.Street = "Av. Amazonas N36-152"
	updatedForm.CurrentStep = intake.StepAddress
	cmd, _ := commands.NewSaveDraftCommand(updatedForm, &id)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	savedID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, savedID.IsEqual(id))
	assert.Equal(t, updatedForm, existing.Snapshot())
	assert.Equal(t, intake.StepAddress, existing.SavedStep())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SaveDraftCommand{} // not constructed properly
	factory := new(MockDraftUoWFactory)
	h := commands.NewSaveDraftCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSaveDraftCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), nil)

	uow := new(MockDraftUoW)
	factory := new(MockDraftUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSaveDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSaveDraftCommandHandler_Handle_UnknownDraftID(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), &id)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("draft", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle_SupersededDraftRejectsSave(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	superseded, err := draft.RestoreDraft(id, draftForm(), draft.Superseded, time.Now().UTC())
	require.NoError(t, err)
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), &id)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(superseded, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, draft.ErrDraftIsSuperseded)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), nil)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*draft.Draft")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveDraftCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSaveDraftCommand(draftForm(), nil)

	repo := new(MockDraftRepository)
	uow := new(MockDraftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DraftRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*draft.Draft")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDraftUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSaveDraftCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
