package rules

import (
	"math"
	"time"

	"github.com/Dan9191/finance-service/internal/models"
)

const projectionMonth = 30 * 24 * time.Hour

// ProjectGoals estimates where each goal lands at its deadline given its monthly contribution
func ProjectGoals(goals []models.Goal, now time.Time) []models.GoalProjection {
	projections := make([]models.GoalProjection, 0, len(goals))
	for _, g := range goals {
		months := int(math.Ceil(float64(g.TargetDate.Sub(now)) / float64(projectionMonth)))
		if months < 0 {
			months = 0
		}

		needed := 0.0
		if months > 0 {
			needed = dec(g.TargetAmount).Sub(dec(g.CurrentAmount)).
				Div(dec(float64(months))).InexactFloat64()
		}
		projected := dec(g.CurrentAmount).Add(dec(g.MonthlyContribution).Mul(dec(float64(months)))).InexactFloat64()

		projections = append(projections, models.GoalProjection{
			Goal:            g,
			MonthsRemaining: months,
			NeededMonthly:   needed,
			ProjectedAmount: projected,
			OnTrack:         projected >= g.TargetAmount,
		})
	}
	return projections
}
