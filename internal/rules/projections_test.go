package rules

import (
	"testing"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectGoals(t *testing.T) {
	goals := []models.Goal{
		{ID: 1, Name: "Laptop", TargetAmount: 3000, CurrentAmount: 1000, MonthlyContribution: 500, TargetDate: testNow.AddDate(0, 0, 120)},
		{ID: 2, Name: "Car", TargetAmount: 20000, CurrentAmount: 2000, MonthlyContribution: 100, TargetDate: testNow.AddDate(0, 0, 60)},
		{ID: 3, Name: "Past", TargetAmount: 500, CurrentAmount: 100, TargetDate: testNow.AddDate(0, 0, -10)},
		{ID: 4, Name: "Long past", TargetAmount: 1000, CurrentAmount: 400, MonthlyContribution: 100, TargetDate: testNow.AddDate(0, 0, -75)},
	}

	projections := ProjectGoals(goals, testNow)
	require.Len(t, projections, 4)

	assert.Equal(t, 4, projections[0].MonthsRemaining)
	assert.InDelta(t, 500, projections[0].NeededMonthly, 0.001)
	assert.InDelta(t, 3000, projections[0].ProjectedAmount, 0.001)
	assert.True(t, projections[0].OnTrack)

	assert.Equal(t, 2, projections[1].MonthsRemaining)
	assert.InDelta(t, 9000, projections[1].NeededMonthly, 0.001)
	assert.False(t, projections[1].OnTrack)

	assert.Equal(t, 0, projections[2].MonthsRemaining)
	assert.Equal(t, 0.0, projections[2].NeededMonthly)
	assert.False(t, projections[2].OnTrack)

	assert.Equal(t, 0, projections[3].MonthsRemaining)
	assert.Equal(t, 0.0, projections[3].NeededMonthly)
	assert.InDelta(t, 400, projections[3].ProjectedAmount, 0.001)
	assert.False(t, projections[3].OnTrack)
}

func TestRecalculateFundTarget(t *testing.T) {
	fund := RecalculateFundTarget(models.EmergencyFund{MonthlyExpenses: 2500, TargetMonths: 6})
	assert.Equal(t, 15000.0, fund.TargetAmount)
}
