package cmd

import (
	"intake/internal/adapters/out/postgres"
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSaveDraftCommandHandler() commands.SaveDraftCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeIntakeCommandHandler(
	notifier commands.CompletionNotifier,
) commands.FinalizeIntakeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeIntakeCommandHandler(f, notifier)
}

func (c *CompositionRoot) CreatePurgeAbandonedDraftsCommandHandler() commands.PurgeAbandonedDraftsCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeAbandonedDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckDuplicatesQueryHandler() queries.CheckDuplicatesQueryHandler {
	return queries.NewCheckDuplicatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchCustomerQueryHandler() queries.SearchCustomerQueryHandler {
	return queries.NewSearchCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.gormDB)
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
