package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pergosolar/opticost-go/internal/application/engine"
	"github.com/pergosolar/opticost-go/internal/domain/entity"
	"github.com/pergosolar/opticost-go/internal/domain/repository"
	"github.com/pergosolar/opticost-go/internal/shared/types"
)

// QuoteUseCase handles the main quoting flow: resolve configuration, load
// the reference catalogs, run the engine and present/export the result.
type QuoteUseCase struct {
	catalogRepo repository.CatalogRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewQuoteUseCase creates a new quote use case.
func NewQuoteUseCase(
	catalogRepo repository.CatalogRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *QuoteUseCase {
	return &QuoteUseCase{
		catalogRepo: catalogRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// InitializeArgs merges the configuration file (when given) into the CLI
// arguments and returns the effective rate table. Explicit CLI values win
// over the file.
func (uc *QuoteUseCase) InitializeArgs(args *types.CLIArgs) (entity.RateTable, error) {
	rates := entity.DefaultRateTable()

	if args.ConfigFile == "" {
		return rates, nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return rates, fmt.Errorf("failed to load config file: %w", err)
	}

	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.ModelsSource == "" {
		args.ModelsSource = cfg.Models
	}
	if args.BallastsSource == "" {
		args.BallastsSource = cfg.Ballasts
	}
	if args.RegionsSource == "" {
		args.RegionsSource = cfg.Regions
	}

	cfg.Rates.Apply(&rates)
	return rates, nil
}

// BuildJob resolves the job to price, either from a job file or from the
// individual CLI flags.
func (uc *QuoteUseCase) BuildJob(args *types.CLIArgs) (entity.JobConfig, error) {
	if args.JobFile != "" {
		job, err := uc.configRepo.LoadJobFile(args.JobFile)
		if err != nil {
			return entity.JobConfig{}, fmt.Errorf("failed to load job file: %w", err)
		}
		return *job, nil
	}

	job := entity.JobConfig{
		RegionCode:       strings.ToUpper(args.Region),
		DistanceKm:       args.DistanceKm,
		ModelID:          args.ModelID,
		Spots:            args.Spots,
		HasPV:            args.PV,
		HasLED:           args.LED,
		HasTarp:          args.Tarp,
		HasInsulated:     args.Insulated,
		ForkliftOnSite:   args.Forklift,
		AssistanceDays:   args.AssistanceDays,
		AssistanceTechs:  args.AssistanceTechs,
		AssistanceTravel: entity.TravelCompanyVehicle,
		CustomTollCost:   args.TollCost,
		CustomHotelCost:  args.HotelCost,
		CustomTicketCost: args.TicketCost,
	}

	switch strings.ToUpper(args.Service) {
	case "INSTALLATION", "":
		job.Service = entity.ServiceInstallation
	case "ASSISTANCE":
		job.Service = entity.ServiceAssistance
	default:
		return entity.JobConfig{}, fmt.Errorf("%w: %s", types.ErrUnknownService, args.Service)
	}

	if args.TechsInternal > 0 {
		job.UseInternal = true
		job.TechsInternal = args.TechsInternal
	}
	if args.TechsExternal > 0 {
		job.UseExternal = true
		job.TechsExternal = args.TechsExternal
	}
	if job.Service == entity.ServiceInstallation && !job.UseInternal && !job.UseExternal {
		job.UseInternal = true
		job.TechsInternal = 2
	}

	if args.BallastModelID != "" {
		job.HasBallast = true
		job.BallastModelID = args.BallastModelID
	}
	if args.PublicTransport {
		job.AssistanceTravel = entity.TravelPublicTransport
	}

	if job.Service == entity.ServiceInstallation && job.Spots < 1 {
		return entity.JobConfig{}, types.ErrNoSpots
	}
	if job.Service == entity.ServiceAssistance && job.AssistanceDays < 1 {
		job.AssistanceDays = 1
	}
	if job.Service == entity.ServiceAssistance && job.AssistanceTechs < 1 {
		job.AssistanceTechs = 1
	}

	return job, nil
}

// LoadCatalogs fetches the three reference catalogs, degrading to the
// built-in defaults when a source fails.
func (uc *QuoteUseCase) LoadCatalogs(
	ctx context.Context,
	args *types.CLIArgs,
) ([]entity.PergolaModel, []entity.BallastModel, map[string]entity.RegionRates) {
	status := uc.console.Status("Loading catalogs...")
	defer status.Stop()

	status.Update("Loading pergola models...")
	models, err := uc.catalogRepo.LoadModels(ctx, args.ModelsSource)
	if err != nil {
		uc.console.LogWarning("Could not load model catalog: %s. Using built-in defaults.", err)
		models = entity.DefaultModels()
	}

	status.Update("Loading ballast catalog...")
	ballasts, err := uc.catalogRepo.LoadBallasts(ctx, args.BallastsSource)
	if err != nil {
		uc.console.LogWarning("Could not load ballast catalog: %s. Using built-in defaults.", err)
		ballasts = entity.DefaultBallasts()
	}

	status.Update("Loading region price list...")
	regions, err := uc.catalogRepo.LoadRegions(ctx, args.RegionsSource)
	if err != nil {
		uc.console.LogWarning("Could not load region price list: %s. Using built-in defaults.", err)
		regions = entity.DefaultRegions()
	}

	return models, ballasts, regions
}

// RunQuote executes the main quoting flow.
func (uc *QuoteUseCase) RunQuote(ctx context.Context, args *types.CLIArgs) error {
	rates, err := uc.InitializeArgs(args)
	if err != nil {
		return err
	}

	job, err := uc.BuildJob(args)
	if err != nil {
		return err
	}

	models, ballasts, regions := uc.LoadCatalogs(ctx, args)

	var region *entity.RegionRates
	regionName := ""
	if r, ok := regions[job.RegionCode]; ok {
		region = &r
		regionName = r.Region
	}

	quote := engine.Compute(job, rates, region, models, ballasts)

	report := entity.QuoteReport{
		Job:        job,
		Quote:      quote,
		ModelName:  resolveModelName(job, models),
		RegionName: regionName,
	}

	uc.displayQuote(report)

	if args.ReportName != "" {
		uc.exportReport(report, args)
	}

	return nil
}

// displayQuote renders the quote summary table and the cost breakdown bars.
func (uc *QuoteUseCase) displayQuote(report entity.QuoteReport) {
	q := report.Quote
	job := report.Job

	table := uc.console.CreateTable()
	table.AddColumn("Field")
	table.AddColumn("Value")

	if job.Service == entity.ServiceInstallation {
		table.AddRow("Service", "Full Installation")
		table.AddRow("Model", report.ModelName)
		table.AddRow("Spots", fmt.Sprintf("%d", job.Spots))
	} else {
		table.AddRow("Service", "Technical Assistance")
		table.AddRow("Days requested", fmt.Sprintf("%d", job.AssistanceDays))
		table.AddRow("Technicians", fmt.Sprintf("%d", job.AssistanceTechs))
	}

	destination := job.RegionCode
	if report.RegionName != "" {
		destination = fmt.Sprintf("%s (%s)", report.RegionName, job.RegionCode)
	}
	table.AddRow("Destination", destination)
	table.AddRow("Distance (round trip)", fmt.Sprintf("%.0f km", job.DistanceKm*2))
	table.AddRow("Total hours", fmt.Sprintf("%.1f h", q.TotalHours))
	table.AddRow("Working days", fmt.Sprintf("%d", q.TotalDays))
	table.AddRow("Total weight", fmt.Sprintf("%.0f kg", q.TotalWeightKg))
	table.AddRow("Transport", fmt.Sprintf("%s (x%d)", q.TransportMode, q.Details.NumberOfVehicles))
	if q.Details.Overnight {
		table.AddRow("Overnight stay", fmt.Sprintf("yes, %d hotel nights", q.Details.NightsInHotel))
	} else {
		table.AddRow("Overnight stay", "no")
	}
	if q.Details.DiscountAppliedPct > 0 {
		table.AddRow("Bulk discount", fmt.Sprintf("%.0f%%", q.Details.DiscountAppliedPct))
	}
	table.AddRow("Total cost", fmt.Sprintf("€ %.2f", q.TotalCost))
	table.AddRow("Suggested price", fmt.Sprintf("€ %.2f", q.SuggestedPrice))

	uc.console.Println()
	uc.console.Println(table.Render())
	uc.console.LogInfo("Vehicle choice: %s", q.Details.VehicleReason)

	uc.console.DisplayCostBars([]types.CostLine{
		{Label: "Labor", Cost: q.CostLabor},
		{Label: "Stay", Cost: q.CostStay},
		{Label: "Travel", Cost: q.CostTravel},
		{Label: "Equipment rental", Cost: q.CostEquipment},
		{Label: "Third-party freight", Cost: q.CostFreight},
	})
}

// exportReport writes the report in every requested format.
func (uc *QuoteUseCase) exportReport(report entity.QuoteReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export quote to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported quote to PDF: %s", path)
			}
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export quote to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported quote to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export quote to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported quote to JSON: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s', skipping", reportType)
		}
	}
}

func resolveModelName(job entity.JobConfig, models []entity.PergolaModel) string {
	if job.Service != entity.ServiceInstallation {
		return ""
	}
	for _, m := range models {
		if m.ID == job.ModelID {
			return m.Name
		}
	}
	if len(models) > 0 {
		return models[0].Name
	}
	return job.ModelID
}
