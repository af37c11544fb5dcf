package entity

// QuoteReport bundles a computed quote with the job it prices and the
// display names resolved by the use case, ready for export.
type QuoteReport struct {
	Job        JobConfig `json:"job"`
	Quote      Quote     `json:"quote"`
	ModelName  string    `json:"model_name"`
	RegionName string    `json:"region_name"`
}
