package models

import "time"

type DebtStatus string

const (
	DebtActive  DebtStatus = "active"
	DebtPaid    DebtStatus = "paid"
	DebtOverdue DebtStatus = "overdue"
)

func (s DebtStatus) Valid() bool {
	return s == DebtActive || s == DebtPaid || s == DebtOverdue
}

// Debt represents money owed with a due date
type Debt struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	TotalAmount     float64    `json:"total_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
	MonthlyPayment  float64    `json:"monthly_payment"`
	InterestRate    float64    `json:"interest_rate"`
	DueDate         time.Time  `json:"due_date"`
	Status          DebtStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type DebtInput struct {
	Name            *string     `json:"name"`
	TotalAmount     *float64    `json:"total_amount"`
	RemainingAmount *float64    `json:"remaining_amount"`
	MonthlyPayment  *float64    `json:"monthly_payment"`
	InterestRate    *float64    `json:"interest_rate"`
	DueDate         *Date       `json:"due_date"`
	Status          *DebtStatus `json:"status"`
}

// PaymentInput carries a debt payment or a fund contribution
type PaymentInput struct {
	Amount *float64 `json:"amount"`
}
