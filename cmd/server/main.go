package main

import (
	"strings"

	"secura-backend/internal/admin"
	"secura-backend/internal/audit"
	"secura-backend/internal/auth"
	"secura-backend/internal/config"
	"secura-backend/internal/dashboard"
	"secura-backend/internal/inventory"
	"secura-backend/internal/repository"
	"secura-backend/internal/storage"
	"secura-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	kv, err := storage.Open(cfg.DataPath)
	if err != nil {
		baseLogger.Fatal("failed to open data store", zap.Error(err))
	}
	defer func() { _ = kv.Close() }()

	repo, err := repository.New(kv)
	if err != nil {
		baseLogger.Fatal("failed to init repository", zap.Error(err))
	}
	if err := repo.SeedIfEmpty(); err != nil {
		baseLogger.Fatal("failed to seed default data", zap.Error(err))
	}

	ctl := inventory.NewController(repo, baseLogger.Named("inventory"))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			baseLogger.Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, repo))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler(repo))
	protected.Get("/auth/me", auth.MeHandler(repo))

	// Store & user management
	protected.Get("/stores", admin.ListStoresHandler(repo))
	protected.Post("/stores", auth.Require(auth.ActionManageStores), admin.CreateStoreHandler(repo))
	protected.Get("/users", auth.Require(auth.ActionManageUsers), admin.ListUsersHandler(repo))
	protected.Post("/users", auth.Require(auth.ActionManageUsers), admin.CreateUserHandler(repo))

	// Stock intake & listings
	protected.Get("/products", inventory.ListProductsHandler(repo))
	protected.Get("/stock", inventory.ListStockHandler(repo))
	protected.Post("/stock", auth.Require(auth.ActionAddStock), inventory.CreateStockHandler(ctl))
	protected.Post("/stock/bulk", auth.Require(auth.ActionAddStock), inventory.BulkStockHandler(ctl))
	protected.Post("/stock/import", auth.Require(auth.ActionAddStock), inventory.ImportStockHandler(ctl))

	// Sales
	protected.Get("/sales", inventory.ListSalesHandler(repo))
	protected.Post("/sales", auth.Require(auth.ActionRecordSale), inventory.CreateSaleHandler(ctl))

	// Transfers (admin only)
	protected.Get("/transfers", inventory.ListTransfersHandler(repo))
	protected.Post("/transfers", auth.Require(auth.ActionTransferStock), inventory.CreateTransferHandler(ctl))

	// Activity log
	protected.Get("/activity-logs", auth.Require(auth.ActionViewActivity), audit.ListActivityLogsHandler(repo))

	// Dashboard & reports
	protected.Get("/dashboard/summary", dashboard.SummaryHandler(repo))
	protected.Get("/reports/stock", auth.Require(auth.ActionViewReports), dashboard.StockReportHandler(repo))

	baseLogger.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		baseLogger.Fatal("server stopped", zap.Error(err))
	}
}
