package service

import (
	"context"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/rules"
)

func (s *Service) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.store.ListGoals(ctx)
}

// GoalProjections projects every goal to its deadline
func (s *Service) GoalProjections(ctx context.Context) ([]models.GoalProjection, error) {
	goals, err := s.store.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	return rules.ProjectGoals(goals, s.now()), nil
}

// CreateGoal validates and stores a savings goal
func (s *Service) CreateGoal(ctx context.Context, in models.GoalInput) (*models.Goal, error) {
	name, err := requireString("name", in.Name)
	if err != nil {
		return nil, err
	}
	target, err := requirePositive("target_amount", in.TargetAmount)
	if err != nil {
		return nil, err
	}
	if in.TargetDate == nil || in.TargetDate.IsZero() {
		return nil, models.NewFieldError("target_date", "is required")
	}

	g := &models.Goal{
		Name:         name,
		TargetAmount: target,
		TargetDate:   in.TargetDate.Time,
	}
	if in.CurrentAmount != nil {
		g.CurrentAmount = *in.CurrentAmount
	}
	if in.MonthlyContribution != nil {
		g.MonthlyContribution = *in.MonthlyContribution
	}
	if err := validateGoalAmounts(g); err != nil {
		return nil, err
	}

	if err := s.store.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	s.log.Infof("Goal %d created: %s, target %.2f by %s", g.ID, g.Name, g.TargetAmount, g.TargetDate.Format("2006-01-02"))
	return g, nil
}

// UpdateGoal applies the supplied fields of in to goal id
func (s *Service) UpdateGoal(ctx context.Context, id int64, in models.GoalInput) (*models.Goal, error) {
	g, err := s.store.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if g.Name, err = requireString("name", in.Name); err != nil {
			return nil, err
		}
	}
	if in.TargetAmount != nil {
		if g.TargetAmount, err = requirePositive("target_amount", in.TargetAmount); err != nil {
			return nil, err
		}
	}
	if in.CurrentAmount != nil {
		g.CurrentAmount = *in.CurrentAmount
	}
	if in.TargetDate != nil {
		if in.TargetDate.IsZero() {
			return nil, models.NewFieldError("target_date", "is required")
		}
		g.TargetDate = in.TargetDate.Time
	}
	if in.MonthlyContribution != nil {
		g.MonthlyContribution = *in.MonthlyContribution
	}
	if err := validateGoalAmounts(g); err != nil {
		return nil, err
	}

	if err := s.store.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	s.log.Infof("Goal %d updated", id)
	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.store.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Goal %d deleted", id)
	return nil
}

func validateGoalAmounts(g *models.Goal) error {
	if err := checkNonNegative("current_amount", g.CurrentAmount); err != nil {
		return err
	}
	return checkNonNegative("monthly_contribution", g.MonthlyContribution)
}
