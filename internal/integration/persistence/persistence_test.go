package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.GoalModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
		&model.ExpenseRuleModel{},
		&model.AssetModel{},
		&model.PaymentReminderModel{},
		&model.InsightModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestExpenseRuleRepositoryOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRuleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"第一条", "第二条", "第三条"}
	// Insert out of order to prove the query sorts by created_at.
	for _, i := range []int{2, 0, 1} {
		rule := entity.NewExpenseRule(userID, names[i], "餐饮", entity.FrequencyDaily, 5000, "")
		rule.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := repo.Create(ctx, rule); err != nil {
			t.Fatalf("failed to create rule: %v", err)
		}
	}

	rules, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	for i, want := range names {
		if rules[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, rules[i].Name)
		}
	}
}

func TestCategoryRepositoryVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()

	def := entity.NewCategory(nil, "餐饮", "🍜", "", true)
	own := entity.NewCategory(&userID, "宠物", "🐱", "", false)
	foreign := entity.NewCategory(&otherID, "健身", "💪", "", false)

	for _, c := range []*entity.Category{own, def, foreign} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	visible, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(visible) != 2 {
		t.Fatalf("expected 2 visible categories, got %d", len(visible))
	}
	if visible[0].Name != "餐饮" {
		t.Errorf("defaults should sort first, got %s", visible[0].Name)
	}
	for _, c := range visible {
		if c.Name == "健身" {
			t.Error("another user's category must not be visible")
		}
	}
}

func TestExpenseRepositoryStats(t *testing.T) {
	db := newTestDB(t)
	expenseRepo := NewExpenseRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	dining := entity.NewCategory(nil, "餐饮", "🍜", "", true)
	transport := entity.NewCategory(nil, "交通", "🚇", "", true)
	for _, c := range []*entity.Category{dining, transport} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	records := []struct {
		category uuid.UUID
		cents    int64
		date     time.Time
	}{
		{dining.ID, 3000, day},
		{dining.ID, 2500, day.Add(24 * time.Hour)},
		{transport.ID, 500, day},
		{dining.ID, 9999, day.AddDate(0, -2, 0)}, // outside the window
	}
	for _, rec := range records {
		e := entity.NewExpense(userID, rec.category, rec.cents, "", rec.date)
		if err := expenseRepo.Create(ctx, e); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	start := day.AddDate(0, 0, -7)
	end := day.AddDate(0, 0, 7)

	stats, err := expenseRepo.GetStats(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCents != 6000 || stats.Count != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	totals, err := expenseRepo.GetTotalsByCategory(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 category rows, got %d", len(totals))
	}
	if totals[0].CategoryName != "餐饮" || totals[0].TotalCents != 5500 || totals[0].Count != 2 {
		t.Errorf("unexpected first row: %+v", totals[0])
	}
	if totals[1].CategoryName != "交通" || totals[1].TotalCents != 500 {
		t.Errorf("unexpected second row: %+v", totals[1])
	}
}

func TestExpenseRepositoryDateFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := entity.NewExpense(userID, categoryID, 1000, "", day.AddDate(0, 0, i))
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	start := day.AddDate(0, 0, 1)
	end := day.AddDate(0, 0, 3)
	expenses, err := repo.FindByUserID(ctx, userID, adapter.ExpenseFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses in range, got %d", len(expenses))
	}
	if !expenses[0].Date.After(expenses[2].Date) {
		t.Error("expected newest first ordering")
	}
}

func TestPaymentReminderRepositoryDueBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentReminderRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	soon := entity.NewPaymentReminder(userID, "房租", "住房", 300000, now.AddDate(0, 0, 2), nil, entity.RecurrenceMonthly, "")
	later := entity.NewPaymentReminder(userID, "保险", "保险", 50000, now.AddDate(0, 1, 0), nil, entity.RecurrenceYearly, "")
	paid := entity.NewPaymentReminder(userID, "水电", "住房", 20000, now.AddDate(0, 0, 1), nil, entity.RecurrenceMonthly, "")
	paid.IsPaid = true

	for _, r := range []*entity.PaymentReminder{later, soon, paid} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("failed to create reminder: %v", err)
		}
	}

	due, err := repo.FindDueBefore(ctx, now.AddDate(0, 0, 3), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(due) != 1 {
		t.Fatalf("expected 1 due reminder, got %d", len(due))
	}
	if due[0].Name != "房租" {
		t.Errorf("unexpected reminder: %s", due[0].Name)
	}
}

func TestInsightRepositoryMarkAsRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewInsightRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	ins := entity.NewInsight(userID, entity.InsightTypeAdvice, "消费建议", "少点外卖。")
	if err := repo.Create(ctx, ins); err != nil {
		t.Fatalf("failed to create insight: %v", err)
	}

	t.Run("owner can mark read", func(t *testing.T) {
		if err := repo.MarkAsRead(ctx, ins.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		insights, err := repo.FindByUserID(ctx, userID, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(insights) != 1 || !insights[0].IsRead {
			t.Errorf("expected the insight flagged read: %+v", insights)
		}
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		err := repo.MarkAsRead(ctx, ins.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrInsightNotFound) {
			t.Errorf("expected ErrInsightNotFound, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("xiaoming@example.com", "小明", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "xiaoming@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Error("unexpected user")
		}
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "xiaoming@example.com")
		if err != nil || !exists {
			t.Errorf("expected existing email, got exists=%v err=%v", exists, err)
		}
		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil || exists {
			t.Errorf("expected missing email, got exists=%v err=%v", exists, err)
		}
	})

	t.Run("missing user yields domain error", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestSeedDefaultCategories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := SeedDefaultCategories(ctx, db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := db.Model(&model.CategoryModel{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 default categories, got %d", count)
	}

	// Running again must not duplicate.
	if err := SeedDefaultCategories(ctx, db); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	if err := db.Model(&model.CategoryModel{}).Where("user_id IS NULL").Count(&count).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 6 {
		t.Errorf("expected seeding to be idempotent, got %d categories", count)
	}
}

func TestGoalRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := entity.NewGoal(userID, "买相机", "旅行用", decimal.NewFromFloat(4999.50),
		entity.GoalTypeSavings, &deadline, "📷", "#ff6600")

	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}

	found, err := repo.FindByID(ctx, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.TargetAmount.Equal(goal.TargetAmount) {
		t.Errorf("target amount mismatch: %s vs %s", found.TargetAmount, goal.TargetAmount)
	}
	if found.Status != entity.GoalStatusActive {
		t.Errorf("unexpected status: %s", found.Status)
	}
}
