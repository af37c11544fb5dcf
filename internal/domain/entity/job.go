package entity

// ServiceKind identifies the kind of service being quoted.
type ServiceKind string

const (
	// ServiceInstallation is a full turn-key installation of a pergola structure.
	ServiceInstallation ServiceKind = "INSTALLATION"
	// ServiceAssistance is generic on-site technical assistance, billed by day.
	ServiceAssistance ServiceKind = "ASSISTANCE"
)

// TransportMode identifies how material reaches the site.
type TransportMode string

const (
	// TransportVan is the company-owned van: crew and material travel together.
	TransportVan TransportMode = "VAN"
	// TransportTruck is a third-party freight truck (bilico).
	TransportTruck TransportMode = "TRUCK"
	// TransportCraneTruck is a third-party truck with a self-unloading crane.
	TransportCraneTruck TransportMode = "CRANE_TRUCK"
)

// AssistanceTravel identifies how an assistance crew reaches the site.
type AssistanceTravel string

const (
	TravelCompanyVehicle  AssistanceTravel = "COMPANY_VEHICLE"
	TravelPublicTransport AssistanceTravel = "PUBLIC_TRANSPORT"
)

// JobConfig is the fully-resolved request to price. The engine reads it and
// never mutates it; validation and defaulting of raw user input happen in the
// adapters before a JobConfig is built.
type JobConfig struct {
	Service    ServiceKind `json:"service" yaml:"service" toml:"service"`
	RegionCode string      `json:"region" yaml:"region" toml:"region"`
	DistanceKm float64     `json:"distance_km" yaml:"distance_km" toml:"distance_km"`

	// Installation specifics
	ModelID       string `json:"model_id" yaml:"model_id" toml:"model_id"`
	Spots         int    `json:"spots" yaml:"spots" toml:"spots"`
	UseInternal   bool   `json:"use_internal" yaml:"use_internal" toml:"use_internal"`
	TechsInternal int    `json:"techs_internal" yaml:"techs_internal" toml:"techs_internal"`
	UseExternal   bool   `json:"use_external" yaml:"use_external" toml:"use_external"`
	TechsExternal int    `json:"techs_external" yaml:"techs_external" toml:"techs_external"`

	// Accessories
	HasPV        bool `json:"has_pv" yaml:"has_pv" toml:"has_pv"`
	HasLED       bool `json:"has_led" yaml:"has_led" toml:"has_led"`
	HasTarp      bool `json:"has_tarp" yaml:"has_tarp" toml:"has_tarp"`
	HasInsulated bool `json:"has_insulated" yaml:"has_insulated" toml:"has_insulated"`

	// Ballast
	HasBallast     bool   `json:"has_ballast" yaml:"has_ballast" toml:"has_ballast"`
	BallastModelID string `json:"ballast_model_id" yaml:"ballast_model_id" toml:"ballast_model_id"`

	ForkliftOnSite bool `json:"forklift_on_site" yaml:"forklift_on_site" toml:"forklift_on_site"`

	// Assistance specifics
	AssistanceDays   int              `json:"assistance_days" yaml:"assistance_days" toml:"assistance_days"`
	AssistanceTechs  int              `json:"assistance_techs" yaml:"assistance_techs" toml:"assistance_techs"`
	AssistanceTravel AssistanceTravel `json:"assistance_travel" yaml:"assistance_travel" toml:"assistance_travel"`

	// User-supplied overrides; zero means "use the documented default".
	CustomTollCost   float64 `json:"custom_toll_cost" yaml:"custom_toll_cost" toml:"custom_toll_cost"`
	CustomHotelCost  float64 `json:"custom_hotel_cost" yaml:"custom_hotel_cost" toml:"custom_hotel_cost"`
	CustomTicketCost float64 `json:"custom_ticket_cost" yaml:"custom_ticket_cost" toml:"custom_ticket_cost"`
}
