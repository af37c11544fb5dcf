package entity

// RateTable holds the tunable business constants. It is built once per run by
// the configuration loader and passed read-only into the engine.
type RateTable struct {
	// Trasferta
	OvernightThresholdKm float64 `json:"overnight_threshold_km" yaml:"overnight_threshold_km" toml:"overnight_threshold_km"`
	PerDiemInternal      float64 `json:"per_diem_internal" yaml:"per_diem_internal" toml:"per_diem_internal"`
	PerDiemExternal      float64 `json:"per_diem_external" yaml:"per_diem_external" toml:"per_diem_external"`

	// Capacity
	DailyWorkHours float64 `json:"daily_work_hours" yaml:"daily_work_hours" toml:"daily_work_hours"`

	// Company vehicle
	KmPerLiter    float64 `json:"km_per_liter" yaml:"km_per_liter" toml:"km_per_liter"`
	FuelPerLiter  float64 `json:"fuel_per_liter" yaml:"fuel_per_liter" toml:"fuel_per_liter"`
	WearCostPerKm float64 `json:"wear_cost_per_km" yaml:"wear_cost_per_km" toml:"wear_cost_per_km"`

	// Labor
	HourlyInternal float64 `json:"hourly_internal" yaml:"hourly_internal" toml:"hourly_internal"`
	HourlyExternal float64 `json:"hourly_external" yaml:"hourly_external" toml:"hourly_external"`

	// Rentals
	ForkliftBaseCost float64 `json:"forklift_base_cost" yaml:"forklift_base_cost" toml:"forklift_base_cost"`

	// Optimization and pricing
	BulkDiscountPct float64 `json:"bulk_discount_pct" yaml:"bulk_discount_pct" toml:"bulk_discount_pct"`
	MarginPct       float64 `json:"margin_pct" yaml:"margin_pct" toml:"margin_pct"`
}

// DefaultRateTable returns the company's standard rates, used when no override
// file is supplied.
func DefaultRateTable() RateTable {
	return RateTable{
		OvernightThresholdKm: 150,
		PerDiemInternal:      50,
		PerDiemExternal:      70,
		DailyWorkHours:       8,
		KmPerLiter:           11,
		FuelPerLiter:         1.85,
		WearCostPerKm:        0.037,
		HourlyInternal:       35.0,
		HourlyExternal:       26.5,
		ForkliftBaseCost:     700,
		BulkDiscountPct:      5,
		MarginPct:            25,
	}
}
