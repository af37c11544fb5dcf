package engine

import (
	"math"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// crewAndDuration determines the effective crew size, the elapsed working
// days and the labor cost line. The day count also drives the forklift
// extra-day surcharge.
func (c *calc) crewAndDuration() {
	q := &c.quote

	if c.job.Service == entity.ServiceInstallation {
		if c.job.UseInternal {
			c.activeInternal = c.job.TechsInternal
		}
		if c.job.UseExternal {
			c.activeExternal = c.job.TechsExternal
		}
	} else {
		c.activeInternal = c.job.AssistanceTechs
	}

	// At least one technician always travels.
	c.effectiveCrew = c.activeInternal + c.activeExternal
	if c.effectiveCrew < 1 {
		c.effectiveCrew = 1
	}

	dailyTeamHours := float64(c.effectiveCrew) * c.rates.DailyWorkHours
	if dailyTeamHours > 0 {
		q.TotalDays = int(math.Ceil(q.TotalHours / dailyTeamHours))
	}

	if c.job.Service == entity.ServiceInstallation {
		hoursPerTech := q.TotalHours / float64(c.effectiveCrew)
		q.CostLabor = hoursPerTech*float64(c.activeInternal)*c.rates.HourlyInternal +
			hoursPerTech*float64(c.activeExternal)*c.rates.HourlyExternal

		if q.CostEquipment > 0 && q.TotalDays > forkliftIncludedDays {
			q.CostEquipment += float64(q.TotalDays-forkliftIncludedDays) * forkliftExtraDayCost
		}
	} else {
		q.CostLabor = q.TotalHours * c.rates.HourlyInternal
	}
}
