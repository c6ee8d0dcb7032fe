package models

import (
	"math"
	"time"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// UncategorizedCategory names transactions without a category link
const UncategorizedCategory = "uncategorized"

// Transaction represents a financial transaction.
// Amount is signed: negative for expenses, positive for income.
type Transaction struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Amount       float64         `json:"amount"`
	Type         TransactionType `json:"type"`
	Date         time.Time       `json:"date"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Magnitude returns the unsigned amount
func (t Transaction) Magnitude() float64 {
	return math.Abs(t.Amount)
}

// NormalizeAmount applies the sign convention for typ
func NormalizeAmount(amount float64, typ TransactionType) float64 {
	if typ == TransactionExpense {
		return -math.Abs(amount)
	}
	return math.Abs(amount)
}

// TransactionInput is the create/update payload; nil fields are left untouched on update
type TransactionInput struct {
	Description *string          `json:"description"`
	Amount      *float64         `json:"amount"`
	Type        *TransactionType `json:"type"`
	Date        *Date            `json:"date"`
	CategoryID  *int64           `json:"category_id"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	Month      int
	Year       int
	Search     string
	Type       TransactionType
	CategoryID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *float64
	AmountMax  *float64
}

// TransactionSummary aggregates a filtered set of transactions
type TransactionSummary struct {
	Income           float64            `json:"income"`
	Expenses         float64            `json:"expenses"`
	Balance          float64            `json:"balance"`
	CategoryExpenses map[string]float64 `json:"category_expenses"`
}
