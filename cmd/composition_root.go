package cmd

import (
	"log/slog"
	"strings"

	httpin "ostrack/internal/adapters/in/http"
	"ostrack/internal/adapters/out/postgres"
	"ostrack/internal/adapters/out/postgres/userrepo"
	"ostrack/internal/core/application/usecases/commands"
	"ostrack/internal/core/application/usecases/queries"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/services"
	"ostrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReportProductionCommandHandler() commands.ReportProductionCommandHandler {
	return commands.NewReportProductionCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateValidateProductionCommandHandler() commands.ValidateProductionCommandHandler {
	return commands.NewValidateProductionCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeWorkOrderCommandHandler() commands.FinalizeWorkOrderCommandHandler {
	return commands.NewFinalizeWorkOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePatchWorkOrderCommandHandler() commands.PatchWorkOrderCommandHandler {
	return commands.NewPatchWorkOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePauseInProgressCommandHandler() commands.PauseInProgressCommandHandler {
	return commands.NewPauseInProgressCommandHandler(c.fullUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateLogEntryCommandHandler() commands.CreateLogEntryCommandHandler {
	return commands.NewCreateLogEntryCommandHandler(c.logUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLogEntryCommandHandler() commands.DeleteLogEntryCommandHandler {
	return commands.NewDeleteLogEntryCommandHandler(c.logUoWFactory())
}

func (c *CompositionRoot) CreateRenameLogOrderNumberCommandHandler() commands.RenameLogOrderNumberCommandHandler {
	return commands.NewRenameLogOrderNumberCommandHandler(c.logUoWFactory())
}

func (c *CompositionRoot) CreateGetAllWorkOrdersQueryHandler() queries.GetAllWorkOrdersQueryHandler {
	return queries.NewGetAllWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSectorWorkOrdersQueryHandler() queries.GetSectorWorkOrdersQueryHandler {
	return queries.NewGetSectorWorkOrdersQueryHandler(c.gormDB, c.AssemblyGroupConfig())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllLogEntriesQueryHandler() queries.GetAllLogEntriesQueryHandler {
	return queries.NewGetAllLogEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderLogEntriesQueryHandler() queries.GetWorkOrderLogEntriesQueryHandler {
	return queries.NewGetWorkOrderLogEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateWorkOrderCommandHandler(),
		c.CreateReportProductionCommandHandler(),
		c.CreateValidateProductionCommandHandler(),
		c.CreateFinalizeWorkOrderCommandHandler(),
		c.CreateDeleteWorkOrderCommandHandler(),
		c.CreatePatchWorkOrderCommandHandler(),
		c.CreatePauseInProgressCommandHandler(),
		c.CreateCreateLogEntryCommandHandler(),
		c.CreateDeleteLogEntryCommandHandler(),
		c.CreateRenameLogOrderNumberCommandHandler(),
		c.CreateGetAllWorkOrdersQueryHandler(),
		c.CreateGetSectorWorkOrdersQueryHandler(),
		c.CreateGetWorkOrderQueryHandler(),
		c.CreateGetAllLogEntriesQueryHandler(),
		c.CreateGetWorkOrderLogEntriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	return httpin.NewAuthenticator(userrepo.NewGormUserRepository(c.gormDB), c.JWTSecret())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePauseInProgressCommandHandler(), c.config.SweepCron, c.logger)
}

func (c *CompositionRoot) JWTSecret() []byte {
	return []byte(c.config.JWTSecret)
}

// AssemblyGroupConfig builds the assembly-group visibility configuration
// from the environment. The upstream list is comma separated.
func (c *CompositionRoot) AssemblyGroupConfig() services.AssemblyGroupConfig {
	var upstream []kernel.Sector
	for _, name := range strings.Split(c.config.AssemblyUpstreamSectors, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		upstream = append(upstream, kernel.Sector(name))
	}

	return services.AssemblyGroupConfig{
		Member:   kernel.Sector(strings.TrimSpace(c.config.AssemblySector)),
		Upstream: upstream,
	}
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) logUoWFactory() commands.LogUoWFactory {
	return FuncLogUoWFactory(func() commands.LogUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLogUoWFactory func() commands.LogUoW

func (f FuncLogUoWFactory) Create() commands.LogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
