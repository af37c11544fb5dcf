package entity

// PergolaModel is a catalog entry for an installable structure.
type PergolaModel struct {
	ID              string  `json:"id" yaml:"id" toml:"id"`
	Name            string  `json:"name" yaml:"name" toml:"name"`
	HoursStructure  float64 `json:"hours_structure_per_spot" yaml:"hours_structure_per_spot" toml:"hours_structure_per_spot"`
	HoursPV         float64 `json:"hours_pv_per_spot" yaml:"hours_pv_per_spot" toml:"hours_pv_per_spot"`
	HoursLED        float64 `json:"hours_led_per_spot" yaml:"hours_led_per_spot" toml:"hours_led_per_spot"`
	WeightPerSpotKg float64 `json:"weight_per_spot_kg" yaml:"weight_per_spot_kg" toml:"weight_per_spot_kg"`
	RequiresLifting bool    `json:"requires_lifting" yaml:"requires_lifting" toml:"requires_lifting"`
}

// BallastModel is a catalog entry for a ballast unit.
type BallastModel struct {
	ID       string  `json:"id" yaml:"id" toml:"id"`
	Name     string  `json:"name" yaml:"name" toml:"name"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg" toml:"weight_kg"`
}

// RegionRates holds the third-party transport base prices for a destination
// region. Regions without an entry fall back to a distance-derived estimate.
type RegionRates struct {
	Code      string  `json:"code" yaml:"code" toml:"code"`
	Region    string  `json:"region" yaml:"region" toml:"region"`
	TruckCost float64 `json:"truck_cost" yaml:"truck_cost" toml:"truck_cost"`
	CraneCost float64 `json:"crane_cost" yaml:"crane_cost" toml:"crane_cost"`
}

// DefaultModels returns the built-in pergola catalog, used when no catalog
// source is supplied or parsing yields nothing.
func DefaultModels() []PergolaModel {
	return []PergolaModel{
		{
			ID:              "easy_park",
			Name:            "Easy Park",
			HoursStructure:  4,
			HoursPV:         1.5,
			HoursLED:        0.5,
			WeightPerSpotKg: 180,
			RequiresLifting: false,
		},
		{
			ID:              "infinity_park",
			Name:            "Infinity Park",
			HoursStructure:  5.5,
			HoursPV:         1.5,
			HoursLED:        0.5,
			WeightPerSpotKg: 220,
			RequiresLifting: true,
		},
		{
			ID:              "solar_carport_pro",
			Name:            "Solar Carport Pro",
			HoursStructure:  6,
			HoursPV:         2,
			HoursLED:        0.8,
			WeightPerSpotKg: 250,
			RequiresLifting: true,
		},
	}
}

// DefaultBallasts returns the built-in ballast catalog.
func DefaultBallasts() []BallastModel {
	return []BallastModel{
		{ID: "cemento_16", Name: "Cemento 16q", WeightKg: 1600},
		{ID: "twin_drive_24", Name: "Twin Drive 24q", WeightKg: 2400},
	}
}

// DefaultRegions returns the built-in region price list.
func DefaultRegions() map[string]RegionRates {
	return map[string]RegionRates{
		"VR": {Code: "VR", Region: "Veneto", TruckCost: 350, CraneCost: 500},
		"MI": {Code: "MI", Region: "Lombardia", TruckCost: 600, CraneCost: 850},
		"RM": {Code: "RM", Region: "Lazio", TruckCost: 1200, CraneCost: 1600},
	}
}
