package engine

import (
	"strings"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// Documented fallbacks and physical limits of the fleet. Everything tunable
// per customer lives in entity.RateTable instead.
const (
	hoursPerSpotTarp        = 1.0
	bulkDiscountMinSpots    = 50
	defaultBallastWeightKg  = 1600
	assistanceToolsWeightKg = 100

	forkliftIncludedDays = 5
	forkliftExtraDayCost = 120

	defaultHotelPrice    = 90
	defaultTicketPrice   = 150
	localTransportPerDay = 50
	defaultTollPerKm     = 0.07

	vanMaxWeightKg            = 1000
	vanMaxSpots               = 3
	craneCapacityKg           = 16000
	truckCapacityKg           = 24000
	insulatedMaxSpotsPerTruck = 12

	fallbackTruckBase  = 600
	fallbackTruckPerKm = 1.5
	fallbackCraneBase  = 850
	fallbackCranePerKm = 2.0
)

// calc accumulates the quote across the five stages. Data flows strictly
// forward: sizing → crew/duration → travel/stay → transport → aggregation.
type calc struct {
	job    entity.JobConfig
	rates  entity.RateTable
	region *entity.RegionRates
	model  entity.PergolaModel

	activeInternal int
	activeExternal int
	effectiveCrew  int

	quote entity.Quote
	notes []string
}

// Compute derives the full quote breakdown for a job. It is a pure function:
// it performs no I/O, never fails, and given identical inputs returns an
// identical Quote. Unknown model or ballast ids degrade to the first catalog
// entry and the fallback is recorded in the rationale text.
func Compute(
	job entity.JobConfig,
	rates entity.RateTable,
	region *entity.RegionRates,
	models []entity.PergolaModel,
	ballasts []entity.BallastModel,
) entity.Quote {
	c := &calc{job: job, rates: rates, region: region}
	c.model = c.resolveModel(models)

	c.size(ballasts)
	c.crewAndDuration()
	c.travelAndStay()
	c.selectTransport()
	return c.aggregate()
}

// resolveModel finds the referenced pergola model, degrading to the first
// catalog entry (or the built-in catalog) rather than failing.
func (c *calc) resolveModel(models []entity.PergolaModel) entity.PergolaModel {
	if len(models) == 0 {
		models = entity.DefaultModels()
	}
	for _, m := range models {
		if m.ID == c.job.ModelID {
			return m
		}
	}
	if c.job.Service == entity.ServiceInstallation {
		c.notes = append(c.notes, "unknown model '"+c.job.ModelID+"', using '"+models[0].ID+"'")
	}
	return models[0]
}

// resolveBallastWeight returns the unit weight of the selected ballast model,
// falling back to the default unit weight when no model resolves.
func (c *calc) resolveBallastWeight(ballasts []entity.BallastModel) float64 {
	for _, b := range ballasts {
		if b.ID == c.job.BallastModelID {
			return b.WeightKg
		}
	}
	c.notes = append(c.notes, "unknown ballast model, assuming 1600 kg per unit")
	return defaultBallastWeightKg
}

// costPerKm is the company vehicle's operating cost per driven km.
func (c *calc) costPerKm() float64 {
	fuel := 0.0
	if c.rates.KmPerLiter > 0 {
		fuel = c.rates.FuelPerLiter / c.rates.KmPerLiter
	}
	return fuel + c.rates.WearCostPerKm
}

// hotelPrice is the nightly rate in effect: user override or default.
func (c *calc) hotelPrice() float64 {
	if c.job.CustomHotelCost > 0 {
		return c.job.CustomHotelCost
	}
	return defaultHotelPrice
}

// tollCost is the round-trip toll in effect: user override or a
// distance-proportional default.
func (c *calc) tollCost() float64 {
	if c.job.CustomTollCost > 0 {
		return c.job.CustomTollCost
	}
	return c.job.DistanceKm * defaultTollPerKm * 2
}

// reason joins the transport rationale with any fallback notes collected
// along the way.
func (c *calc) reason(main string) string {
	if len(c.notes) == 0 {
		return main
	}
	if main == "" {
		return strings.Join(c.notes, "; ")
	}
	return main + " (" + strings.Join(c.notes, "; ") + ")"
}
