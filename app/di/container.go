package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"garage-hub/app/config"
	"garage-hub/app/driver/kratos"
	"garage-hub/app/driver/postgres"
	"garage-hub/app/gateway"
	"garage-hub/app/port"
	"garage-hub/app/rest"
	"garage-hub/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	AuthGateway port.AuthGateway

	// Usecases
	Directory  port.TenantDirectory
	Roles      port.RoleVerifier
	Reconciler port.Reconciler
	Selector   port.Selector
	Sessions   *usecase.SessionContextRegistry
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize kratos client: %w", err)
	}

	// Repositories
	tenantRepo := postgres.NewTenantRepository(container.DB.Pool(), logger)
	profileRepo := postgres.NewProfileRepository(container.DB.Pool(), logger)
	roleRepo := postgres.NewRoleRepository(container.DB.Pool(), logger)

	// Gateways
	kratosAdapter := kratos.NewClientAdapter(container.KratosClient, logger)
	container.AuthGateway = gateway.NewAuthGateway(kratosAdapter, logger)

	// Usecases
	container.Directory = usecase.NewDirectoryUsecase(tenantRepo, cfg.StoreTimeout, logger)
	container.Roles = usecase.NewRoleUsecase(roleRepo, logger)
	container.Reconciler = usecase.NewReconcilerUsecase(
		tenantRepo,
		profileRepo,
		container.Roles,
		container.AuthGateway,
		logger,
	)
	container.Selector = usecase.NewSelectorUsecase(profileRepo, logger)
	container.Sessions = usecase.NewSessionContextRegistry(
		container.Directory,
		container.Reconciler,
		cfg.StoreTimeout,
		logger,
	)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:       c.Logger,
		AuthGateway:  c.AuthGateway,
		Directory:    c.Directory,
		Selector:     c.Selector,
		Reconciler:   c.Reconciler,
		Roles:        c.Roles,
		Sessions:     c.Sessions,
		Health:       c.DB,
		StoreTimeout: c.Config.StoreTimeout,
		EnableDebug:  c.Config.EnableDebugRoutes,
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container resources released")
	return nil
}
