// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	goalController     *controller.GoalController
	ruleController     *controller.ExpenseRuleController
	assetController    *controller.AssetController
	reminderController *controller.ReminderController
	insightController  *controller.InsightController
	analysisController *controller.AnalysisController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	goalController *controller.GoalController,
	ruleController *controller.ExpenseRuleController,
	assetController *controller.AssetController,
	reminderController *controller.ReminderController,
	insightController *controller.InsightController,
	analysisController *controller.AnalysisController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		categoryController: categoryController,
		expenseController:  expenseController,
		goalController:     goalController,
		ruleController:     ruleController,
		assetController:    assetController,
		reminderController: reminderController,
		insightController:  insightController,
		analysisController: analysisController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
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
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.GET("/stats", r.expenseController.Stats)
			expenses.PATCH("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		goals := v1.Group("/goals")
		goals.Use(r.authMiddleware.Authenticate())
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		rules := v1.Group("/rules")
		rules.Use(r.authMiddleware.Authenticate())
		{
			rules.GET("", r.ruleController.List)
			rules.POST("", r.ruleController.Create)
			rules.POST("/evaluate", r.ruleController.Evaluate)
			rules.POST("/initialize-defaults", r.ruleController.InitializeDefaults)
			rules.PATCH("/:id", r.ruleController.Update)
			rules.DELETE("/:id", r.ruleController.Delete)
		}

		assets := v1.Group("/assets")
		assets.Use(r.authMiddleware.Authenticate())
		{
			assets.GET("", r.assetController.List)
			assets.POST("", r.assetController.Create)
			assets.GET("/check-replacement", r.assetController.CheckReplacement)
		}

		reminders := v1.Group("/reminders")
		reminders.Use(r.authMiddleware.Authenticate())
		{
			reminders.GET("", r.reminderController.List)
			reminders.POST("", r.reminderController.Create)
			reminders.PATCH("/:id", r.reminderController.Update)
			reminders.DELETE("/:id", r.reminderController.Delete)
		}

		insights := v1.Group("/insights")
		insights.Use(r.authMiddleware.Authenticate())
		{
			insights.GET("", r.insightController.List)
			insights.POST("/generate", r.insightController.Generate)
			insights.POST("/:id/read", r.insightController.MarkRead)
		}

		analysisGroup := v1.Group("/analysis")
		analysisGroup.Use(r.authMiddleware.Authenticate())
		{
			analysisGroup.POST("/expense", r.analysisController.Analyze)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
