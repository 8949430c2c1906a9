package main

import (
	"fmt"
	"os"

	appcatalog "github.com/retail/backend/internal/application/catalog"
	appdelivery "github.com/retail/backend/internal/application/delivery"
	apporder "github.com/retail/backend/internal/application/order"
	appparty "github.com/retail/backend/internal/application/party"
	"github.com/retail/backend/internal/application/roles"
	"github.com/retail/backend/internal/infrastructure/config"
	"github.com/retail/backend/internal/infrastructure/event"
	"github.com/retail/backend/internal/infrastructure/logger"
	"github.com/retail/backend/internal/infrastructure/persistence"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// app bundles the wired services for the command actions. The binary
// holds no business logic of its own; every operation goes through the
// role façades.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *persistence.Database

	auth      *appparty.AuthService
	customers *appparty.CustomerService
	employees *appparty.EmployeeService
	products  *appcatalog.ProductService
	tags      *appcatalog.TagService
	points    *appdelivery.DeliveryPointService
	orders    *apporder.OrderService

	staffOps *roles.StaffOps
	adminOps *roles.AdminOps
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("starting retail core",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	pointRepo := persistence.NewGormDeliveryPointRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewLoggingHandler(log))

	productService := appcatalog.NewProductService(productRepo, tagRepo)
	tagService := appcatalog.NewTagService(tagRepo)
	customerService := appparty.NewCustomerService(customerRepo)
	employeeService := appparty.NewEmployeeService(employeeRepo)
	authService := appparty.NewAuthService(customerRepo, employeeRepo)
	pointService := appdelivery.NewDeliveryPointService(pointRepo)
	orderService := apporder.NewOrderService(scope, orderRepo, customerRepo, pointRepo)

	productService.SetEventPublisher(bus)
	tagService.SetEventPublisher(bus)
	customerService.SetEventPublisher(bus)
	employeeService.SetEventPublisher(bus)
	pointService.SetEventPublisher(bus)
	orderService.SetEventPublisher(bus)

	staffOps := roles.NewStaffOps(productService, orderService)
	adminOps := roles.NewAdminOps(staffOps, tagService, customerService, employeeService, pointService)

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		auth:      authService,
		customers: customerService,
		employees: employeeService,
		products:  productService,
		tags:      tagService,
		points:    pointService,
		orders:    orderService,
		staffOps:  staffOps,
		adminOps:  adminOps,
	}, nil
}

// customerOps builds the capability set for a logged-in customer
func (a *app) customerOps(customerID int64) *roles.CustomerOps {
	return roles.NewCustomerOps(customerID, a.products, a.customers, a.orders, a.points)
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("error closing database", zap.Error(err))
	}
	_ = a.log.Sync()
}

func main() {
	cliApp := &cli.App{
		Name:  "retaild",
		Usage: "retail order and inventory core",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "seed sample data and run a scripted purchase walkthrough",
				Action: func(c *cli.Context) error {
					a, err := bootstrap()
					if err != nil {
						return err
					}
					defer a.close()
					if err := a.seed(c.Context); err != nil {
						return err
					}
					return a.runDemo(c.Context)
				},
			},
			{
				Name:  "shell",
				Usage: "seed sample data and open an interactive menu",
				Action: func(c *cli.Context) error {
					a, err := bootstrap()
					if err != nil {
						return err
					}
					defer a.close()
					if err := a.seed(c.Context); err != nil {
						return err
					}
					return a.runShell(c.Context)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
