// Package main is the entry point for the WalletWise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/walletwise/backend/config"
	"github.com/walletwise/backend/internal/application/adapter"
	"github.com/walletwise/backend/internal/application/event"
	"github.com/walletwise/backend/internal/application/usecase/analytics"
	"github.com/walletwise/backend/internal/application/usecase/assistant"
	"github.com/walletwise/backend/internal/application/usecase/auth"
	"github.com/walletwise/backend/internal/application/usecase/budget"
	"github.com/walletwise/backend/internal/application/usecase/category"
	"github.com/walletwise/backend/internal/application/usecase/dashboard"
	"github.com/walletwise/backend/internal/application/usecase/emi"
	"github.com/walletwise/backend/internal/application/usecase/transaction"
	"github.com/walletwise/backend/internal/infra/db"
	"github.com/walletwise/backend/internal/infra/server/router"
	"github.com/walletwise/backend/internal/integration/adapters"
	"github.com/walletwise/backend/internal/integration/email"
	"github.com/walletwise/backend/internal/integration/entrypoint/controller"
	"github.com/walletwise/backend/internal/integration/entrypoint/middleware"
	"github.com/walletwise/backend/internal/integration/persistence"
	"github.com/walletwise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting WalletWise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.BudgetModel{},
		&model.BudgetAllocationModel{},
		&model.TransactionModel{},
		&model.EMIModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis for the conversation log and summary cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	emiRepo := persistence.NewEMIRepository(database.DB())
	conversationLog := persistence.NewRedisConversationLog(redisClient)
	summaryCache := persistence.NewRedisSummaryCache(redisClient, cfg.Dashboard.SummaryTTL)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	completionService := adapters.NewGeminiService(cfg.Assistant.GeminiAPIKey, cfg.Assistant.Model)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, password reset emails disabled")
	}

	// Event bus: data changes fan out to the dashboard cache
	bus := event.NewBus()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, bus)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, bus)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, bus)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, bus)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, bus)

	// Create EMI use cases
	createEMIUseCase := emi.NewCreateEMIUseCase(emiRepo, bus)
	listEMIsUseCase := emi.NewListEMIsUseCase(emiRepo)
	recordPaymentUseCase := emi.NewRecordPaymentUseCase(emiRepo, bus)
	deleteEMIUseCase := emi.NewDeleteEMIUseCase(emiRepo, bus)

	// Create dashboard use case and hook it to data-change events
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(budgetRepo, transactionRepo, emiRepo, summaryCache)
	getSummaryUseCase.Subscribe(bus)

	// Create analytics use cases
	spendingReportUseCase := analytics.NewGetSpendingReportUseCase(transactionRepo)

	// Create assistant use cases
	analyzeMessageUseCase := assistant.NewAnalyzeMessageUseCase(completionService, budgetRepo, transactionRepo, conversationLog)
	getConversationUseCase := assistant.NewGetConversationUseCase(conversationLog)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		updateBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)
	emiController := controller.NewEMIController(
		createEMIUseCase,
		listEMIsUseCase,
		recordPaymentUseCase,
		deleteEMIUseCase,
	)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	analyticsController := controller.NewAnalyticsController(spendingReportUseCase)
	assistantController := controller.NewAssistantController(analyzeMessageUseCase, getConversationUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		budgetController,
		categoryController,
		transactionController,
		emiController,
		dashboardController,
		analyticsController,
		assistantController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
