package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func installJob() entity.JobConfig {
	return entity.JobConfig{
		Service:       entity.ServiceInstallation,
		RegionCode:    "MI",
		DistanceKm:    160,
		ModelID:       "easy_park",
		Spots:         2,
		UseInternal:   true,
		TechsInternal: 2,
	}
}

func compute(job entity.JobConfig) entity.Quote {
	regions := entity.DefaultRegions()
	var region *entity.RegionRates
	if r, ok := regions[job.RegionCode]; ok {
		region = &r
	}
	return Compute(job, entity.DefaultRateTable(), region, entity.DefaultModels(), entity.DefaultBallasts())
}

func TestBulkDiscountThreshold(t *testing.T) {
	at := installJob()
	at.Spots = 50
	over := installJob()
	over.Spots = 51

	qAt := compute(at)
	qOver := compute(over)

	nearlyEqual(t, "discount at 50 spots", qAt.Details.DiscountAppliedPct, 0)
	nearlyEqual(t, "hours at 50 spots", qAt.TotalHours, 4*50)

	nearlyEqual(t, "discount at 51 spots", qOver.Details.DiscountAppliedPct, 5)
	nearlyEqual(t, "hours at 51 spots", qOver.TotalHours, 4*51*0.95)
}

func TestBallastCountSequence(t *testing.T) {
	want := []int{2, 2, 3, 3, 4, 4, 5, 5, 6, 6}
	for spots := 1; spots <= 10; spots++ {
		job := installJob()
		job.Spots = spots
		job.HasBallast = true
		job.BallastModelID = "cemento_16"

		q := compute(job)
		if q.Details.BallastCount != want[spots-1] {
			t.Fatalf("ballast count for %d spots = %d, want %d", spots, q.Details.BallastCount, want[spots-1])
		}
		nearlyEqual(t, "ballast weight", q.Details.BallastWeightKg, float64(want[spots-1])*1600)
	}
}

func TestElapsedDaysRoundsUp(t *testing.T) {
	// 10 spots x 4 h structure = 40 h; crew of 2 at 8 h/day -> 2.5 raw days.
	job := installJob()
	job.Spots = 10

	q := compute(job)
	nearlyEqual(t, "total hours", q.TotalHours, 40)
	if q.TotalDays != 3 {
		t.Fatalf("total days = %d, want 3", q.TotalDays)
	}
}

func TestOvernightStrictlyAboveThreshold(t *testing.T) {
	at := installJob()
	at.DistanceKm = 150
	above := installJob()
	above.DistanceKm = 150.5

	if compute(at).Details.Overnight {
		t.Fatal("overnight at exactly the threshold, want false")
	}
	if !compute(above).Details.Overnight {
		t.Fatal("no overnight just above the threshold, want true")
	}
}

func TestVanNeverCarriesBallast(t *testing.T) {
	job := installJob() // 2 spots x 180 kg = 360 kg, van territory
	job.HasBallast = true
	job.BallastModelID = "cemento_16"

	q := compute(job)
	if q.TransportMode == entity.TransportVan {
		t.Fatalf("van selected with ballast on board (weight %v kg)", q.TotalWeightKg)
	}
}

func TestFreightTruckVehicleCount(t *testing.T) {
	// 120 spots x 250 kg = 30000 kg with a forklift on site: two freight trucks.
	job := installJob()
	job.ModelID = "solar_carport_pro"
	job.Spots = 120
	job.ForkliftOnSite = true

	q := compute(job)
	if q.TransportMode != entity.TransportTruck {
		t.Fatalf("transport mode = %s, want %s", q.TransportMode, entity.TransportTruck)
	}
	if q.Details.NumberOfVehicles != 2 {
		t.Fatalf("vehicle count = %d, want 2", q.Details.NumberOfVehicles)
	}
}

func TestInsulatedPanelsVolumeLimit(t *testing.T) {
	// 20 spots of easy_park weigh 3600 kg (one truck by weight) but insulated
	// panels cap each truck at 12 spots.
	job := installJob()
	job.Spots = 20
	job.ForkliftOnSite = true
	job.HasInsulated = true

	q := compute(job)
	if q.TransportMode != entity.TransportTruck {
		t.Fatalf("transport mode = %s, want %s", q.TransportMode, entity.TransportTruck)
	}
	if q.Details.NumberOfVehicles != 2 {
		t.Fatalf("vehicle count = %d, want 2", q.Details.NumberOfVehicles)
	}
}

func TestCraneDriverExtrasPerVehicle(t *testing.T) {
	// No forklift on site: crane truck, one hotel night plus one external
	// per-diem per vehicle on top of the base freight price.
	job := installJob()
	job.ModelID = "infinity_park"
	job.Spots = 30 // 6600 kg, one crane truck

	q := compute(job)
	if q.TransportMode != entity.TransportCraneTruck {
		t.Fatalf("transport mode = %s, want %s", q.TransportMode, entity.TransportCraneTruck)
	}

	rates := entity.DefaultRateTable()
	wantDriver := (q.Details.HotelPriceUsed + rates.PerDiemExternal) * float64(q.Details.NumberOfVehicles)
	nearlyEqual(t, "driver extras", q.Details.DriverCostIncluded, wantDriver)

	craneBase := entity.DefaultRegions()["MI"].CraneCost * float64(q.Details.NumberOfVehicles)
	nearlyEqual(t, "freight", q.CostFreight, craneBase+wantDriver)
}

func TestRegionFallbackEstimate(t *testing.T) {
	job := installJob()
	job.RegionCode = "ZZ"
	job.ModelID = "infinity_park"
	job.Spots = 10 // 2200 kg, crane truck

	q := compute(job)
	wantPerVehicle := 850 + job.DistanceKm*2.0
	nearlyEqual(t, "freight base", q.CostFreight-q.Details.DriverCostIncluded,
		wantPerVehicle*float64(q.Details.NumberOfVehicles))
	if !strings.Contains(q.Details.VehicleReason, "distance estimate") {
		t.Fatalf("rationale does not mention the fallback: %q", q.Details.VehicleReason)
	}
}

func TestUnknownModelDegradesToFirst(t *testing.T) {
	job := installJob()
	job.ModelID = "does_not_exist"

	q := compute(job)
	// First catalog entry is easy_park: 4 h and 180 kg per spot.
	nearlyEqual(t, "hours", q.TotalHours, 4*2)
	nearlyEqual(t, "weight", q.TotalWeightKg, 180*2)
	if !strings.Contains(q.Details.VehicleReason, "does_not_exist") {
		t.Fatalf("rationale does not record the model fallback: %q", q.Details.VehicleReason)
	}
}

func TestMarginEqualsPriceMinusCost(t *testing.T) {
	jobs := []entity.JobConfig{installJob()}

	big := installJob()
	big.Spots = 80
	big.HasBallast = true
	big.BallastModelID = "twin_drive_24"
	jobs = append(jobs, big)

	assist := entity.JobConfig{
		Service:          entity.ServiceAssistance,
		RegionCode:       "RM",
		DistanceKm:       520,
		AssistanceDays:   3,
		AssistanceTechs:  2,
		AssistanceTravel: entity.TravelPublicTransport,
	}
	jobs = append(jobs, assist)

	for i, job := range jobs {
		q := compute(job)
		if math.Abs((q.SuggestedPrice-q.TotalCost)-q.MarginAmount) > 1e-9 {
			t.Fatalf("job %d: price-cost = %v, margin = %v", i, q.SuggestedPrice-q.TotalCost, q.MarginAmount)
		}
	}
}

func TestAssistancePublicTransportTravel(t *testing.T) {
	job := entity.JobConfig{
		Service:          entity.ServiceAssistance,
		RegionCode:       "RM",
		DistanceKm:       520,
		AssistanceDays:   3,
		AssistanceTechs:  2,
		AssistanceTravel: entity.TravelPublicTransport,
	}

	q := compute(job)
	rates := entity.DefaultRateTable()
	nearlyEqual(t, "hours", q.TotalHours, 3*rates.DailyWorkHours)
	nearlyEqual(t, "weight", q.TotalWeightKg, 100)
	// Default round-trip ticket per head plus the local allowance per day.
	nearlyEqual(t, "travel", q.CostTravel, 150*2+50*float64(q.TotalDays))
	nearlyEqual(t, "tolls", q.Details.TollsIncluded, 0)
}

func TestAssistanceCompanyVehicleTravel(t *testing.T) {
	job := entity.JobConfig{
		Service:          entity.ServiceAssistance,
		RegionCode:       "MI",
		DistanceKm:       160,
		AssistanceDays:   1,
		AssistanceTechs:  1,
		AssistanceTravel: entity.TravelCompanyVehicle,
	}

	q := compute(job)
	rates := entity.DefaultRateTable()
	perKm := rates.FuelPerLiter/rates.KmPerLiter + rates.WearCostPerKm
	wantTolls := 160 * 0.07 * 2
	nearlyEqual(t, "travel", q.CostTravel, 160*2*perKm+wantTolls)
	nearlyEqual(t, "labor", q.CostLabor, q.TotalHours*rates.HourlyInternal)
	if q.TransportMode != entity.TransportVan {
		t.Fatalf("transport mode = %s, want %s", q.TransportMode, entity.TransportVan)
	}
}

func TestForkliftRentalSurcharge(t *testing.T) {
	// infinity_park requires lifting. 60 spots x 5.5 h with the bulk discount
	// spread over a crew of 2 lands well past the 5 included rental days.
	job := installJob()
	job.ModelID = "infinity_park"
	job.Spots = 60

	q := compute(job)
	rates := entity.DefaultRateTable()
	wantDays := int(math.Ceil(q.TotalHours / (2 * rates.DailyWorkHours)))
	if q.TotalDays != wantDays {
		t.Fatalf("total days = %d, want %d", q.TotalDays, wantDays)
	}
	want := rates.ForkliftBaseCost + float64(wantDays-5)*120
	nearlyEqual(t, "equipment", q.CostEquipment, want)

	onSite := job
	onSite.ForkliftOnSite = true
	nearlyEqual(t, "equipment with forklift on site", compute(onSite).CostEquipment, 0)
}

func TestEndToEndShortOvernight(t *testing.T) {
	// 2 spots, PV and LED enabled, 160 km, 2 internal techs, no ballast:
	// 12 h, 1 day, overnight with zero hotel nights, van transport.
	job := installJob()
	job.HasPV = true
	job.HasLED = true

	q := compute(job)
	rates := entity.DefaultRateTable()

	nearlyEqual(t, "hours", q.TotalHours, (4+1.5+0.5)*2)
	if q.TotalDays != 1 {
		t.Fatalf("total days = %d, want 1", q.TotalDays)
	}
	if !q.Details.Overnight {
		t.Fatal("want overnight above the 150 km threshold")
	}
	if q.Details.NightsInHotel != 0 {
		t.Fatalf("nights = %d, want 0", q.Details.NightsInHotel)
	}
	if q.TransportMode != entity.TransportVan {
		t.Fatalf("transport mode = %s, want %s", q.TransportMode, entity.TransportVan)
	}

	// Stay reduces to per-diem only: 1 day x 2 internal techs.
	nearlyEqual(t, "stay", q.CostStay, 1*2*rates.PerDiemInternal)

	perKm := rates.FuelPerLiter/rates.KmPerLiter + rates.WearCostPerKm
	wantTravel := 160*2*perKm + 160*0.07*2
	nearlyEqual(t, "travel", q.CostTravel, wantTravel)

	wantLabor := (12.0 / 2) * 2 * rates.HourlyInternal
	nearlyEqual(t, "labor", q.CostLabor, wantLabor)

	wantTotal := wantLabor + 1*2*rates.PerDiemInternal + wantTravel
	nearlyEqual(t, "total", q.TotalCost, wantTotal)
	nearlyEqual(t, "price", q.SuggestedPrice, wantTotal*1.25)
}
