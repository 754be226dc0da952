//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/infra/dependency"
	"github.com/spendwise/backend/internal/integration/persistence"
	"github.com/spendwise/backend/internal/integration/persistence/model"
	"github.com/spendwise/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	accessToken string

	db *mock.Db
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb(
			&model.UserModel{},
			&model.GoalModel{},
			&model.CategoryModel{},
			&model.ExpenseModel{},
			&model.ExpenseRuleModel{},
			&model.AssetModel{},
			&model.PaymentReminderModel{},
			&model.InsightModel{},
		)
		if err := db.Reset(); err != nil {
			return ctx, err
		}
		mock.ClearRedis()

		if err := persistence.SeedDefaultCategories(ctx, db.Conn); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Redis.URL = "redis://" + mock.RedisAddr()
		cfg.Gemini.APIKey = ""
		cfg.Notification.ResendAPIKey = ""

		injector, err := dependency.NewInjector(cfg, db.Conn)
		if err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			db:             db,
		}
		tc.server = httptest.NewServer(injector.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am registered as "([^"]*)"$`, iAmRegisteredAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}
