package cmd

import (
	"log/slog"

	"casetrack/internal/adapters/out/postgres"
	"casetrack/internal/adapters/out/techniciandir"
	"casetrack/internal/adapters/out/tenantdir"
	"casetrack/internal/core/application/usecases/commands"
	"casetrack/internal/core/application/usecases/queries"
	"casetrack/internal/core/ports"
	"casetrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB              *gorm.DB
	uowFactory          postgres.GormUnitOfWorkFactory
	labDirectory        ports.LabDirectory
	technicianDirectory ports.TechnicianDirectory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	labDirectory, err := tenantdir.NewConfigLabDirectory(configs.LabCodes)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:              gormDB,
		uowFactory:          *postgres.NewGormUnitOfWorkFactory(gormDB),
		labDirectory:        labDirectory,
		technicianDirectory: techniciandir.NewGormTechnicianDirectory(gormDB),
	}, nil
}

func (c *CompositionRoot) CreateCreateCaseCommandHandler() commands.CreateCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCaseCommandHandler(f, c.labDirectory)
}

func (c *CompositionRoot) CreateTransitionCaseStatusCommandHandler() commands.TransitionCaseStatusCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionCaseStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTechnicianCommandHandler(f, c.technicianDirectory)
}

func (c *CompositionRoot) CreateAssignPendingCaseCommandHandler() commands.AssignPendingCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingCaseCommandHandler(f, c.technicianDirectory)
}

func (c *CompositionRoot) CreateSoftDeleteCaseCommandHandler() commands.SoftDeleteCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSoftDeleteCaseCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenQualityCheckCommandHandler() commands.OpenQualityCheckCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenQualityCheckCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteQualityCheckCommandHandler() commands.CompleteQualityCheckCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteQualityCheckCommandHandler(f)
}

func (c *CompositionRoot) CreateEscalateOverdueCasesCommandHandler() commands.EscalateOverdueCasesCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateOverdueCasesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveCasesQueryHandler() queries.GetActiveCasesQueryHandler {
	return queries.NewGetActiveCasesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCaseQualityChecksQueryHandler() queries.GetCaseQualityChecksQueryHandler {
	return queries.NewGetCaseQualityChecksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignPendingCaseCommandHandler(),
		c.CreateEscalateOverdueCasesCommandHandler(),
		logger,
	)
}

type FuncCaseUoWFactory func() commands.CaseUoW

func (f FuncCaseUoWFactory) Create() commands.CaseUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
