package models

import "time"

type InvestmentType string

const (
	InvestmentStock       InvestmentType = "stock"
	InvestmentFund        InvestmentType = "fund"
	InvestmentFixedIncome InvestmentType = "fixed_income"
	InvestmentCrypto      InvestmentType = "crypto"
	InvestmentOther       InvestmentType = "other"
)

func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentStock, InvestmentFund, InvestmentFixedIncome, InvestmentCrypto, InvestmentOther:
		return true
	}
	return false
}

// Investment tracks money placed in one asset
type Investment struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Type          InvestmentType `json:"type"`
	TotalInvested float64        `json:"total_invested"`
	CurrentValue  float64        `json:"current_value"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type InvestmentInput struct {
	Name          *string         `json:"name"`
	Type          *InvestmentType `json:"type"`
	TotalInvested *float64        `json:"total_invested"`
	CurrentValue  *float64        `json:"current_value"`
}

// Contribution is a deposit into an investment
type Contribution struct {
	ID           int64     `json:"id"`
	InvestmentID int64     `json:"investment_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContributionInput struct {
	InvestmentID *int64   `json:"investment_id"`
	Amount       *float64 `json:"amount"`
	Date         *Date    `json:"date"`
}
