package types

import "github.com/pergosolar/opticost-go/internal/domain/entity"

// Config represents the application configuration that can be loaded from a
// file: report defaults, catalog sources and rate-table overrides.
type Config struct {
	ReportName string        `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string      `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string        `json:"dir" yaml:"dir" toml:"dir"`
	Models     string        `json:"models" yaml:"models" toml:"models"`
	Ballasts   string        `json:"ballasts" yaml:"ballasts" toml:"ballasts"`
	Regions    string        `json:"regions" yaml:"regions" toml:"regions"`
	Rates      RateOverrides `json:"rates" yaml:"rates" toml:"rates"`
}

// RateOverrides holds optional overrides for the rate table; only keys
// present in the file replace the defaults.
type RateOverrides struct {
	OvernightThresholdKm *float64 `json:"overnight_threshold_km" yaml:"overnight_threshold_km" toml:"overnight_threshold_km"`
	PerDiemInternal      *float64 `json:"per_diem_internal" yaml:"per_diem_internal" toml:"per_diem_internal"`
	PerDiemExternal      *float64 `json:"per_diem_external" yaml:"per_diem_external" toml:"per_diem_external"`
	DailyWorkHours       *float64 `json:"daily_work_hours" yaml:"daily_work_hours" toml:"daily_work_hours"`
	KmPerLiter           *float64 `json:"km_per_liter" yaml:"km_per_liter" toml:"km_per_liter"`
	FuelPerLiter         *float64 `json:"fuel_per_liter" yaml:"fuel_per_liter" toml:"fuel_per_liter"`
	WearCostPerKm        *float64 `json:"wear_cost_per_km" yaml:"wear_cost_per_km" toml:"wear_cost_per_km"`
	HourlyInternal       *float64 `json:"hourly_internal" yaml:"hourly_internal" toml:"hourly_internal"`
	HourlyExternal       *float64 `json:"hourly_external" yaml:"hourly_external" toml:"hourly_external"`
	ForkliftBaseCost     *float64 `json:"forklift_base_cost" yaml:"forklift_base_cost" toml:"forklift_base_cost"`
	BulkDiscountPct      *float64 `json:"bulk_discount_pct" yaml:"bulk_discount_pct" toml:"bulk_discount_pct"`
	MarginPct            *float64 `json:"margin_pct" yaml:"margin_pct" toml:"margin_pct"`
}

// Apply writes the present overrides onto a rate table.
func (o RateOverrides) Apply(rt *entity.RateTable) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&rt.OvernightThresholdKm, o.OvernightThresholdKm)
	set(&rt.PerDiemInternal, o.PerDiemInternal)
	set(&rt.PerDiemExternal, o.PerDiemExternal)
	set(&rt.DailyWorkHours, o.DailyWorkHours)
	set(&rt.KmPerLiter, o.KmPerLiter)
	set(&rt.FuelPerLiter, o.FuelPerLiter)
	set(&rt.WearCostPerKm, o.WearCostPerKm)
	set(&rt.HourlyInternal, o.HourlyInternal)
	set(&rt.HourlyExternal, o.HourlyExternal)
	set(&rt.ForkliftBaseCost, o.ForkliftBaseCost)
	set(&rt.BulkDiscountPct, o.BulkDiscountPct)
	set(&rt.MarginPct, o.MarginPct)
}
