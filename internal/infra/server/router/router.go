// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/walletwise/backend/internal/integration/entrypoint/controller"
	"github.com/walletwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	budgetController      *controller.BudgetController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	emiController         *controller.EMIController
	dashboardController   *controller.DashboardController
	analyticsController   *controller.AnalyticsController
	assistantController   *controller.AssistantController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	budgetController *controller.BudgetController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	emiController *controller.EMIController,
	dashboardController *controller.DashboardController,
	analyticsController *controller.AnalyticsController,
	assistantController *controller.AssistantController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		budgetController:      budgetController,
		categoryController:    categoryController,
		transactionController: transactionController,
		emiController:         emiController,
		dashboardController:   dashboardController,
		analyticsController:   analyticsController,
		assistantController:   assistantController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// EMI routes (require authentication)
		if r.emiController != nil && r.authMiddleware != nil {
			emis := v1.Group("/emis")
			emis.Use(r.authMiddleware.Authenticate())
			{
				emis.GET("", r.emiController.List)
				emis.POST("", r.emiController.Create)
				emis.POST("/:id/payments", r.emiController.RecordPayment)
				emis.DELETE("/:id", r.emiController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/spending", r.analyticsController.GetSpendingReport)
				analytics.GET("/spending/export", r.analyticsController.ExportCSV)
			}
		}

		// Assistant routes (require authentication)
		if r.assistantController != nil && r.authMiddleware != nil {
			assistant := v1.Group("/assistant")
			assistant.Use(r.authMiddleware.Authenticate())
			{
				assistant.POST("/analyze", r.assistantController.Analyze)
				assistant.GET("/conversation", r.assistantController.GetConversation)
			}
		}
	}
}
