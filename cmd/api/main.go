package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-bizadmin/internal/handler"
	"go-bizadmin/internal/middleware"
	"go-bizadmin/internal/model"
	"go-bizadmin/internal/repository"
	"go-bizadmin/internal/service"
	"go-bizadmin/internal/ws"
	"go-bizadmin/pkg/database"
	"go-bizadmin/pkg/logger"
	"go-bizadmin/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Logger
	if err := logger.Init(logger.Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Environment: os.Getenv("APP_ENV"),
		ServiceName: "go-bizadmin",
	}); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.L().Sync()

	// 3. Setup database
	db := database.ConnectDB()
	// Auto migrate (for production prefer a dedicated migration tool)
	db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.WarehouseLocation{},
		&model.InventoryItem{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.CompanyExpense{},
		&model.CompanyInfo{},
	)

	// 4. Setup websocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	clientRepo := repository.NewClientRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	companyRepo := repository.NewCompanyRepo(db)

	authService := service.NewAuthService(userRepo)
	clientService := service.NewClientService(clientRepo, wsHub)
	inventoryService := service.NewInventoryService(inventoryRepo, warehouseRepo, wsHub)
	invoiceService := service.NewInvoiceService(invoiceRepo, inventoryRepo, wsHub)
	expenseService := service.NewExpenseService(expenseRepo, wsHub)
	companyService := service.NewCompanyService(companyRepo)
	reportService := service.NewReportService(invoiceRepo, expenseRepo, inventoryRepo, clientRepo)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	settingsHandler := handler.NewSettingsHandler(companyService)
	dashboardHandler := handler.NewDashboardHandler(reportService)

	httpMetrics := metrics.NewHTTPMetrics("go-bizadmin")

	// 6. Setup fiber
	app := fiber.New(fiber.Config{
		AppName: "BizAdmin API v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New())        // Request logging
	app.Use(recover.New())            // Panic recovery
	app.Use(cors.New())               // CORS
	app.Use(httpMetrics.Middleware()) // Prometheus request metrics

	// 7. Routes
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard & reports
	protected.Get("/dashboard/stats", dashboardHandler.GetDashboardStats)
	protected.Get("/dashboard/monthly-sales", dashboardHandler.GetMonthlySales)
	protected.Get("/dashboard/monthly-expenses", dashboardHandler.GetMonthlyExpenses)
	protected.Get("/reports/invoices.csv", dashboardHandler.ExportInvoicesCSV)
	protected.Get("/reports/expenses.csv", dashboardHandler.ExportExpensesCSV)

	// Clients
	protected.Get("/clients", clientHandler.GetClients)
	protected.Post("/clients", clientHandler.CreateClient)
	protected.Put("/clients/:id", clientHandler.UpdateClient)
	protected.Delete("/clients/:id", clientHandler.DeleteClient)

	// Invoices
	protected.Get("/invoices", invoiceHandler.GetInvoices)
	protected.Get("/invoices/backdated", invoiceHandler.GetBackdatedInvoices)
	protected.Post("/invoices", invoiceHandler.CreateInvoice)
	protected.Post("/invoices/backdated", invoiceHandler.CreateBackdatedInvoice)
	protected.Get("/invoices/:id", invoiceHandler.GetInvoice)
	protected.Get("/invoices/:id/edit-draft", invoiceHandler.GetEditDraft)
	protected.Put("/invoices/:id", invoiceHandler.UpdateInvoice)
	protected.Delete("/invoices/:id", invoiceHandler.DeleteInvoice)

	// Inventory
	protected.Get("/inventory", inventoryHandler.GetItems)
	protected.Post("/inventory", inventoryHandler.CreateItem)
	protected.Put("/inventory/:id", inventoryHandler.UpdateItem)
	protected.Delete("/inventory/:id", inventoryHandler.DeleteItem)

	// Warehouses
	protected.Get("/warehouses", inventoryHandler.GetLocations)
	protected.Post("/warehouses", inventoryHandler.CreateLocation)
	protected.Put("/warehouses/:id", inventoryHandler.UpdateLocation)
	protected.Delete("/warehouses/:id", inventoryHandler.DeleteLocation)

	// Expenses
	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Put("/expenses/:id", expenseHandler.UpdateExpense)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	// Settings
	protected.Get("/settings/company", settingsHandler.GetCompanyInfo)
	protected.Put("/settings/company", settingsHandler.UpdateCompanyInfo)

	// WebSocket route: clients subscribe for cache-invalidation events
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.L().Info("Server exited")
}
