package cmd

import (
	"paquexpress/internal/adapters/out/filestore"
	"paquexpress/internal/adapters/out/passwords"
	"paquexpress/internal/adapters/out/postgres"
	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	evidenceStore *filestore.DiskEvidenceStore
	hasher        passwords.BcryptHasher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	evidenceStore, err := filestore.NewDiskEvidenceStore(configs.EvidenceDir, configs.EvidencePublicPrefix)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		evidenceStore: evidenceStore,
		hasher:        passwords.NewBcryptHasher(configs.BcryptCost),
	}, nil
}

func (c *CompositionRoot) EvidenceStore() *filestore.DiskEvidenceStore {
	return c.evidenceStore
}

func (c *CompositionRoot) CreateSubmitDeliveryCommandHandler() commands.SubmitDeliveryCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryCommandHandler(f, c.evidenceStore)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateAssignParcelCommandHandler() commands.AssignParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepEvidenceCommandHandler() commands.SweepEvidenceCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepEvidenceCommandHandler(f, c.evidenceStore)
}

func (c *CompositionRoot) CreateAuthenticateAgentQueryHandler() queries.AuthenticateAgentQueryHandler {
	return queries.NewAuthenticateAgentQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateGetPendingParcelsQueryHandler() queries.GetPendingParcelsQueryHandler {
	return queries.NewGetPendingParcelsQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
