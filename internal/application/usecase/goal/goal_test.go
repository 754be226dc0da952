package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals []*entity.Goal
	err   error
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	if f.err != nil {
		return f.err
	}
	f.goals = append(f.goals, goal)
	return nil
}

func (f *fakeGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.goals, nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return f.err }

func (f *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

func TestCreateGoal(t *testing.T) {
	userID := uuid.New()

	t.Run("creates an active goal with zero progress", func(t *testing.T) {
		repo := &fakeGoalRepo{}
		uc := NewCreateGoalUseCase(repo)

		deadline := time.Now().AddDate(0, 6, 0)
		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "买相机",
			TargetAmount: decimal.NewFromInt(5000),
			Type:         entity.GoalTypeSavings,
			Deadline:     &deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected active status, got %s", out.Goal.Status)
		}
		if !out.Goal.CurrentAmount.IsZero() {
			t.Errorf("expected zero progress, got %s", out.Goal.CurrentAmount)
		}
		if len(repo.goals) != 1 {
			t.Errorf("expected 1 persisted goal, got %d", len(repo.goals))
		}
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "买相机",
			TargetAmount: decimal.Zero,
			Type:         entity.GoalTypeSavings,
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected ErrInvalidTargetAmount, got %v", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateGoalUseCase(&fakeGoalRepo{})

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "买相机",
			TargetAmount: decimal.NewFromInt(100),
			Type:         entity.GoalType("investment"),
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalType) {
			t.Errorf("expected ErrInvalidGoalType, got %v", err)
		}
	})
}

func TestUpdateGoal(t *testing.T) {
	userID := uuid.New()

	newGoal := func() *entity.Goal {
		return entity.NewGoal(userID, "买相机", "", decimal.NewFromInt(5000), entity.GoalTypeSavings, nil, "", "")
	}

	t.Run("reaching the target completes a savings goal", func(t *testing.T) {
		g := newGoal()
		uc := NewUpdateGoalUseCase(&fakeGoalRepo{goals: []*entity.Goal{g}})

		current := decimal.NewFromInt(5000)
		out, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:        g.ID,
			UserID:        userID,
			CurrentAmount: &current,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.Status != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", out.Goal.Status)
		}
	})

	t.Run("rejects another user's goal", func(t *testing.T) {
		g := newGoal()
		uc := NewUpdateGoalUseCase(&fakeGoalRepo{goals: []*entity.Goal{g}})

		name := "改名"
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: g.ID,
			UserID: uuid.New(),
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		g := newGoal()
		uc := NewUpdateGoalUseCase(&fakeGoalRepo{goals: []*entity.Goal{g}})

		bad := entity.GoalStatus("paused")
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Status: &bad,
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalStatus) {
			t.Errorf("expected ErrInvalidGoalStatus, got %v", err)
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	userID := uuid.New()
	g := entity.NewGoal(userID, "买相机", "", decimal.NewFromInt(5000), entity.GoalTypeSavings, nil, "", "")

	t.Run("deletes own goal", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(&fakeGoalRepo{goals: []*entity.Goal{g}})

		if err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown goal id", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(&fakeGoalRepo{})

		err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: uuid.New(), UserID: userID})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}
