package models

import "time"

// DefaultEmergencyMonths is the coverage target of a freshly created fund
const DefaultEmergencyMonths = 6

// EmergencyFund is a singleton reserve sized as months of expenses
type EmergencyFund struct {
	ID              int64     `json:"id"`
	TargetAmount    float64   `json:"target_amount"`
	CurrentAmount   float64   `json:"current_amount"`
	MonthlyExpenses float64   `json:"monthly_expenses"`
	TargetMonths    int       `json:"target_months"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EmergencyFundInput struct {
	TargetAmount    *float64 `json:"target_amount"`
	CurrentAmount   *float64 `json:"current_amount"`
	MonthlyExpenses *float64 `json:"monthly_expenses"`
	TargetMonths    *int     `json:"target_months"`
}
