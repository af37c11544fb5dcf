package entity

// Quote is the full cost breakdown produced by the engine for one job. It is
// a fresh value per computation; presentation and export read it, nothing
// mutates it.
type Quote struct {
	TotalHours    float64       `json:"total_hours"`
	TotalDays     int           `json:"total_days"`
	TotalWeightKg float64       `json:"total_weight_kg"`
	TransportMode TransportMode `json:"transport_mode"`

	CostLabor     float64 `json:"cost_labor"`
	CostStay      float64 `json:"cost_stay"`
	CostTravel    float64 `json:"cost_travel"`
	CostEquipment float64 `json:"cost_equipment"`
	CostFreight   float64 `json:"cost_freight"`

	TotalCost      float64 `json:"total_cost"`
	SuggestedPrice float64 `json:"suggested_price"`
	MarginAmount   float64 `json:"margin_amount"`

	Details QuoteDetails `json:"details"`
}

// QuoteDetails records the intermediate decisions behind the breakdown, for
// display and auditability.
type QuoteDetails struct {
	Overnight          bool    `json:"overnight"`
	NightsInHotel      int     `json:"nights_in_hotel"`
	NumberOfVehicles   int     `json:"number_of_vehicles"`
	DiscountAppliedPct float64 `json:"discount_applied_pct"`
	VehicleReason      string  `json:"vehicle_reason"`
	BallastCount       int     `json:"ballast_count"`
	BallastWeightKg    float64 `json:"ballast_weight_kg"`
	TollsIncluded      float64 `json:"tolls_included"`
	HotelPriceUsed     float64 `json:"hotel_price_used"`
	DriverCostIncluded float64 `json:"driver_cost_included"`
}
