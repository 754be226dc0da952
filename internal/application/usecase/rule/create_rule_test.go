package rule

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestCreateRule(t *testing.T) {
	userID := uuid.New()

	t.Run("creates an active rule", func(t *testing.T) {
		repo := &fakeRuleRepo{}
		uc := NewCreateRuleUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateRuleInput{
			UserID:         userID,
			Name:           "通勤",
			Category:       "交通",
			Frequency:      entity.FrequencyDaily,
			MaxAmountCents: 2000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Rule.ID == uuid.Nil {
			t.Error("expected a generated rule id")
		}
		if !out.Rule.IsActive {
			t.Error("new rules should be active")
		}
		if len(repo.rules) != 1 {
			t.Errorf("expected 1 persisted rule, got %d", len(repo.rules))
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateRuleUseCase(&fakeRuleRepo{})

		_, err := uc.Execute(context.Background(), CreateRuleInput{
			UserID:         userID,
			Name:           "通勤",
			Category:       "交通",
			Frequency:      entity.FrequencyDaily,
			MaxAmountCents: 0,
		})
		if !errors.Is(err, domainerror.ErrInvalidRuleAmount) {
			t.Errorf("expected ErrInvalidRuleAmount, got %v", err)
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		uc := NewCreateRuleUseCase(&fakeRuleRepo{})

		_, err := uc.Execute(context.Background(), CreateRuleInput{
			UserID:         userID,
			Name:           "通勤",
			Category:       "交通",
			Frequency:      entity.RuleFrequency("biweekly"),
			MaxAmountCents: 2000,
		})
		if !errors.Is(err, domainerror.ErrInvalidRuleFrequency) {
			t.Errorf("expected ErrInvalidRuleFrequency, got %v", err)
		}
	})
}

func TestUpdateRule(t *testing.T) {
	userID := uuid.New()

	t.Run("updates provided fields only", func(t *testing.T) {
		existing := entity.NewExpenseRule(userID, "通勤", "交通", entity.FrequencyDaily, 2000, "")
		repo := &fakeRuleRepo{rules: []*entity.ExpenseRule{existing}}
		uc := NewUpdateRuleUseCase(repo)

		newAmount := int64(3000)
		inactive := false
		out, err := uc.Execute(context.Background(), UpdateRuleInput{
			RuleID:         existing.ID,
			UserID:         userID,
			MaxAmountCents: &newAmount,
			IsActive:       &inactive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Rule.MaxAmountCents != 3000 {
			t.Errorf("expected amount 3000, got %d", out.Rule.MaxAmountCents)
		}
		if out.Rule.IsActive {
			t.Error("expected rule deactivated")
		}
		if out.Rule.Name != "通勤" {
			t.Errorf("name should be unchanged, got %s", out.Rule.Name)
		}
	})

	t.Run("rejects another user's rule", func(t *testing.T) {
		existing := entity.NewExpenseRule(userID, "通勤", "交通", entity.FrequencyDaily, 2000, "")
		uc := NewUpdateRuleUseCase(&fakeRuleRepo{rules: []*entity.ExpenseRule{existing}})

		name := "改名"
		_, err := uc.Execute(context.Background(), UpdateRuleInput{
			RuleID: existing.ID,
			UserID: uuid.New(),
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedRuleAccess) {
			t.Errorf("expected ErrUnauthorizedRuleAccess, got %v", err)
		}
	})

	t.Run("unknown rule id", func(t *testing.T) {
		uc := NewUpdateRuleUseCase(&fakeRuleRepo{})

		name := "改名"
		_, err := uc.Execute(context.Background(), UpdateRuleInput{
			RuleID: uuid.New(),
			UserID: userID,
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrRuleNotFound) {
			t.Errorf("expected ErrRuleNotFound, got %v", err)
		}
	})
}

func TestDeleteRule(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects another user's rule", func(t *testing.T) {
		existing := entity.NewExpenseRule(userID, "通勤", "交通", entity.FrequencyDaily, 2000, "")
		uc := NewDeleteRuleUseCase(&fakeRuleRepo{rules: []*entity.ExpenseRule{existing}})

		err := uc.Execute(context.Background(), DeleteRuleInput{
			RuleID: existing.ID,
			UserID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedRuleAccess) {
			t.Errorf("expected ErrUnauthorizedRuleAccess, got %v", err)
		}
	})

	t.Run("deletes own rule", func(t *testing.T) {
		existing := entity.NewExpenseRule(userID, "通勤", "交通", entity.FrequencyDaily, 2000, "")
		uc := NewDeleteRuleUseCase(&fakeRuleRepo{rules: []*entity.ExpenseRule{existing}})

		if err := uc.Execute(context.Background(), DeleteRuleInput{
			RuleID: existing.ID,
			UserID: userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
