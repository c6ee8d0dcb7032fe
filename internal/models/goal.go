package models

import "time"

// Goal is a savings target with a deadline
type Goal struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	TargetAmount        float64   `json:"target_amount"`
	CurrentAmount       float64   `json:"current_amount"`
	TargetDate          time.Time `json:"target_date"`
	MonthlyContribution float64   `json:"monthly_contribution"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type GoalInput struct {
	Name                *string  `json:"name"`
	TargetAmount        *float64 `json:"target_amount"`
	CurrentAmount       *float64 `json:"current_amount"`
	TargetDate          *Date    `json:"target_date"`
	MonthlyContribution *float64 `json:"monthly_contribution"`
}

// GoalProjection extends a goal with where it will stand at its deadline
type GoalProjection struct {
	Goal
	MonthsRemaining int     `json:"months_remaining"`
	NeededMonthly   float64 `json:"needed_monthly"`
	ProjectedAmount float64 `json:"projected_amount"`
	OnTrack         bool    `json:"on_track"`
}
