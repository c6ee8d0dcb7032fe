package models

import "time"

// Budget is a monthly spending limit for one category
type Budget struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Amount       float64   `json:"amount"`
	Spent        float64   `json:"spent"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BudgetInput struct {
	CategoryID *int64   `json:"category_id"`
	Amount     *float64 `json:"amount"`
	Month      *int     `json:"month"`
	Year       *int     `json:"year"`
}
