package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	JobFile    string

	Service    string
	Region     string
	DistanceKm float64

	ModelID       string
	Spots         int
	TechsInternal int
	TechsExternal int

	PV        bool
	LED       bool
	Tarp      bool
	Insulated bool

	BallastModelID string
	Forklift       bool

	AssistanceDays  int
	AssistanceTechs int
	PublicTransport bool

	TollCost   float64
	HotelCost  float64
	TicketCost float64

	ModelsSource   string
	BallastsSource string
	RegionsSource  string

	ReportName string
	ReportType []string
	Dir        string
}
