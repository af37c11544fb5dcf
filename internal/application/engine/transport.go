package engine

import (
	"math"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// selectTransport chooses the delivery vehicle for installation material and
// prices the third-party freight. Assistance jobs carry tools in the company
// van and skip this stage entirely.
func (c *calc) selectTransport() {
	q := &c.quote

	if c.job.Service != entity.ServiceInstallation {
		q.TransportMode = entity.TransportVan
		q.Details.NumberOfVehicles = 1
		q.Details.VehicleReason = c.reason("")
		return
	}

	if q.TotalWeightKg <= vanMaxWeightKg && c.job.Spots <= vanMaxSpots && !c.job.HasBallast {
		// Material rides with the crew; the travel line already prices the trip.
		q.TransportMode = entity.TransportVan
		q.Details.NumberOfVehicles = 1
		q.Details.VehicleReason = c.reason("weight within van limit, no ballast")
		return
	}

	truckPrice := fallbackTruckBase + c.job.DistanceKm*fallbackTruckPerKm
	cranePrice := fallbackCraneBase + c.job.DistanceKm*fallbackCranePerKm
	if c.region != nil {
		truckPrice = c.region.TruckCost
		cranePrice = c.region.CraneCost
	} else {
		c.notes = append(c.notes, "no price list for region '"+c.job.RegionCode+"', using distance estimate")
	}

	preferCrane := !c.job.ForkliftOnSite

	var mode entity.TransportMode
	var capacity, vehiclePrice float64
	var why string
	switch {
	case preferCrane && q.TotalWeightKg <= craneCapacityKg:
		mode = entity.TransportCraneTruck
		capacity = craneCapacityKg
		vehiclePrice = cranePrice
		why = "no forklift on site, crane truck self-unloads"
	case preferCrane:
		mode = entity.TransportTruck
		capacity = truckCapacityKg
		vehiclePrice = truckPrice
		why = "weight above crane capacity, freight truck required; client must provide unloading"
	default:
		mode = entity.TransportTruck
		capacity = truckCapacityKg
		vehiclePrice = truckPrice
		why = "forklift on site, freight truck sufficient"
	}

	vehicles := int(math.Ceil(q.TotalWeightKg / capacity))
	if vehicles < 1 {
		vehicles = 1
	}
	if c.job.HasInsulated && mode == entity.TransportTruck {
		// Insulated panels hit the volume limit long before the weight limit.
		byVolume := int(math.Ceil(float64(c.job.Spots) / insulatedMaxSpotsPerTruck))
		if byVolume > vehicles {
			vehicles = byVolume
			why += "; insulated panels cap each truck at 12 spots"
		}
	}

	q.CostFreight = vehiclePrice * float64(vehicles)

	if mode == entity.TransportCraneTruck {
		// One night of hotel and one day of external per-diem per driver.
		driver := (q.Details.HotelPriceUsed + c.rates.PerDiemExternal) * float64(vehicles)
		q.Details.DriverCostIncluded = driver
		q.CostFreight += driver
	}

	q.TransportMode = mode
	q.Details.NumberOfVehicles = vehicles
	q.Details.VehicleReason = c.reason(why)
}
