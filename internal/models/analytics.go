package models

// MonthlyData represents one month of income and expense statistics
type MonthlyData struct {
	Month    string  `json:"month"` // Format: "Jan 2006"
	Key      string  `json:"key"`   // Format: YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// CategoryTotal is the summed expense magnitude of one category
type CategoryTotal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Insights represents the trailing-months spending overview
type Insights struct {
	MonthlyData     []MonthlyData  `json:"monthly_data"`
	AverageExpenses float64        `json:"average_expenses"`
	TopCategory     *CategoryTotal `json:"top_category"`
	Insights        []string       `json:"insights"`
}
