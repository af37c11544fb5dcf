package engine

import (
	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// travelAndStay prices the crew's own trip and the overnight stay. The travel
// line covers the crew only: material freight, when third-party, carries its
// own fuel and tolls inside the per-vehicle price (see selectTransport), so
// the two lines never double-count.
func (c *calc) travelAndStay() {
	q := &c.quote

	q.Details.Overnight = c.job.DistanceKm > c.rates.OvernightThresholdKm
	q.Details.HotelPriceUsed = c.hotelPrice()

	if c.job.Service == entity.ServiceAssistance && c.job.AssistanceTravel == entity.TravelPublicTransport {
		ticket := c.job.CustomTicketCost
		if ticket <= 0 {
			ticket = defaultTicketPrice
		}
		// Round-trip tickets per head plus local movement at destination.
		q.CostTravel = ticket*float64(c.effectiveCrew) + localTransportPerDay*float64(q.TotalDays)
	} else {
		tolls := c.tollCost()
		q.Details.TollsIncluded = tolls
		q.CostTravel = c.job.DistanceKm*2*c.costPerKm() + tolls
	}

	if !q.Details.Overnight {
		// Day trips under the threshold pay no lodging and no per-diem.
		return
	}

	nights := q.TotalDays - 1
	if nights < 0 {
		nights = 0
	}
	q.Details.NightsInHotel = nights

	lodging := float64(nights) * float64(c.effectiveCrew) * q.Details.HotelPriceUsed
	perDiem := float64(q.TotalDays)*float64(c.activeInternal)*c.rates.PerDiemInternal +
		float64(q.TotalDays)*float64(c.activeExternal)*c.rates.PerDiemExternal
	q.CostStay = lodging + perDiem
}
