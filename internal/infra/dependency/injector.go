// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/usecase/analysis"
	"github.com/spendwise/backend/internal/application/usecase/asset"
	"github.com/spendwise/backend/internal/application/usecase/auth"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/application/usecase/expense"
	"github.com/spendwise/backend/internal/application/usecase/goal"
	"github.com/spendwise/backend/internal/application/usecase/insight"
	"github.com/spendwise/backend/internal/application/usecase/reminder"
	"github.com/spendwise/backend/internal/application/usecase/rule"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/notification"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Worker is nil when reminder notifications are not configured.
	Worker *notification.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	ruleRepo := persistence.NewExpenseRuleRepository(db)
	assetRepo := persistence.NewAssetRepository(db)
	reminderRepo := persistence.NewPaymentReminderRepository(db)
	insightRepo := persistence.NewInsightRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	adviceService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	adviceCache := adapters.NewAdviceCache(redis.NewClient(redisOpts), cfg.Redis.AdviceTTL)

	// Create rule use cases (the register flow seeds default rules)
	listRulesUseCase := rule.NewListRulesUseCase(ruleRepo)
	createRuleUseCase := rule.NewCreateRuleUseCase(ruleRepo)
	updateRuleUseCase := rule.NewUpdateRuleUseCase(ruleRepo)
	deleteRuleUseCase := rule.NewDeleteRuleUseCase(ruleRepo)
	evaluateUseCase := rule.NewEvaluateExpenseUseCase(ruleRepo, expenseRepo, categoryRepo)
	initializeRulesUseCase := rule.NewInitializeDefaultRulesUseCase(ruleRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUseCase(userRepo, passwordService, tokenService, initializeRulesUseCase)
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	statsUseCase := expense.NewGetExpenseStatsUseCase(expenseRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create asset use cases
	listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo)
	createAssetUseCase := asset.NewCreateAssetUseCase(assetRepo)

	// Create reminder use cases
	listRemindersUseCase := reminder.NewListRemindersUseCase(reminderRepo)
	createReminderUseCase := reminder.NewCreateReminderUseCase(reminderRepo)
	updateReminderUseCase := reminder.NewUpdateReminderUseCase(reminderRepo)
	deleteReminderUseCase := reminder.NewDeleteReminderUseCase(reminderRepo)

	// Create insight use cases
	listInsightsUseCase := insight.NewListInsightsUseCase(insightRepo)
	generateInsightUseCase := insight.NewGenerateInsightUseCase(insightRepo, expenseRepo, adviceService, adviceCache)
	markInsightReadUseCase := insight.NewMarkInsightReadUseCase(insightRepo)

	// Create analysis use cases
	analyzeUseCase := analysis.NewAnalyzeExpenseUseCase(goalRepo)
	replacementUseCase := analysis.NewCheckAssetReplacementUseCase(assetRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		statsUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	ruleController := controller.NewExpenseRuleController(
		listRulesUseCase,
		createRuleUseCase,
		updateRuleUseCase,
		deleteRuleUseCase,
		evaluateUseCase,
		initializeRulesUseCase,
	)
	assetController := controller.NewAssetController(
		listAssetsUseCase,
		createAssetUseCase,
		replacementUseCase,
	)
	reminderController := controller.NewReminderController(
		listRemindersUseCase,
		createReminderUseCase,
		updateReminderUseCase,
		deleteReminderUseCase,
	)
	insightController := controller.NewInsightController(
		listInsightsUseCase,
		generateInsightUseCase,
		markInsightReadUseCase,
	)
	analysisController := controller.NewAnalysisController(
		analyzeUseCase,
		evaluateUseCase,
		replacementUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create notification worker when the email provider is configured
	var worker *notification.Worker
	if cfg.Notification.WorkerEnabled && cfg.Notification.ResendAPIKey != "" {
		sender := notification.NewResendClient(
			cfg.Notification.ResendAPIKey,
			cfg.Notification.FromName,
			cfg.Notification.FromEmail,
		)
		worker = notification.NewWorker(reminderRepo, userRepo, sender, notification.WorkerConfig{
			PollInterval: cfg.Notification.PollInterval,
			LeadTime:     cfg.Notification.LeadTime,
			BatchSize:    cfg.Notification.BatchSize,
		})
	}

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		goalController,
		ruleController,
		assetController,
		reminderController,
		insightController,
		analysisController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		Worker: worker,
	}, nil
}
