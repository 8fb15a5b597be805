package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gstbill-backend/internal/auth"
	"gstbill-backend/internal/cache"
	"gstbill-backend/internal/config"
	"gstbill-backend/internal/database"
	"gstbill-backend/internal/db"
	"gstbill-backend/internal/handlers"
	"gstbill-backend/internal/health"
	h "gstbill-backend/internal/http"
	"gstbill-backend/internal/middleware"
	"gstbill-backend/internal/monitoring"
	"gstbill-backend/internal/repositories"
	"gstbill-backend/internal/services"
	"gstbill-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (continuing without cache)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations on startup
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start ops stats server in background
	go monitoring.NewMonitoringServer(pool, 9090).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	numberingRepo := repositories.NewNumberingRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	companyService := services.NewCompanyService(companyRepo)
	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo, companyService, numberingRepo)
	pdfService := services.NewPDFService()
	exportService := services.NewExportService()
	paymentService := services.NewPaymentService(
		cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret, invoiceRepo)

	// PDF archival to R2 (nil when not configured)
	archive := storage.NewR2Archive(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, companyService, pdfService, exportService, archive)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler, userHandler, companyHandler, customerHandler,
		productHandler, invoiceHandler, paymentHandler, healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
