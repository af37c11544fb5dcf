package engine

import (
	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// size derives total labor hours, shipped weight and ballast quantity from
// the product configuration. Assistance jobs get a fixed tools-only weight
// and hours proportional to the requested days.
func (c *calc) size(ballasts []entity.BallastModel) {
	q := &c.quote

	if c.job.Service != entity.ServiceInstallation {
		q.TotalHours = float64(c.job.AssistanceDays) * c.rates.DailyWorkHours
		q.TotalWeightKg = assistanceToolsWeightKg
		return
	}

	hoursPerSpot := c.model.HoursStructure
	if c.job.HasPV {
		hoursPerSpot += c.model.HoursPV
	}
	if c.job.HasLED {
		hoursPerSpot += c.model.HoursLED
	}
	if c.job.HasTarp {
		// Tarp installation time is not tracked per model.
		hoursPerSpot += hoursPerSpotTarp
	}
	q.TotalHours = hoursPerSpot * float64(c.job.Spots)

	if c.job.Spots > bulkDiscountMinSpots {
		q.Details.DiscountAppliedPct = c.rates.BulkDiscountPct
		q.TotalHours *= 1 - c.rates.BulkDiscountPct/100
	}

	structureWeight := c.model.WeightPerSpotKg * float64(c.job.Spots)

	if c.job.HasBallast {
		// 2 units cover the first two spots, +1 per additional 2 spots.
		q.Details.BallastCount = (c.job.Spots-1)/2 + 2
		q.Details.BallastWeightKg = float64(q.Details.BallastCount) * c.resolveBallastWeight(ballasts)
	}
	q.TotalWeightKg = structureWeight + q.Details.BallastWeightKg

	// Base rental charge when the site has no lifting equipment of its own;
	// the extra-day surcharge is folded in once the day count is known.
	if c.model.RequiresLifting && !c.job.ForkliftOnSite {
		q.CostEquipment = c.rates.ForkliftBaseCost
	}
}
