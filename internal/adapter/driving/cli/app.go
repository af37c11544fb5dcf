package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pergosolar/opticost-go/internal/application/usecase"
	"github.com/pergosolar/opticost-go/internal/shared/types"
	"github.com/pergosolar/opticost-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	quoteUseCase *usecase.QuoteUseCase
	version      string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "opticost",
		Short:   "OptiCost Pergosolar quoting CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "OptiCost Pergosolar version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("job", "j", "", "Path to a TOML, YAML, or JSON job file describing the work to price")

	rootCmd.PersistentFlags().String("service", "installation", "Service to quote: installation or assistance")
	rootCmd.PersistentFlags().String("region", "", "Destination region code, e.g. MI")
	rootCmd.PersistentFlags().Float64P("distance", "k", 0, "One-way distance to the site in km")

	rootCmd.PersistentFlags().StringP("model", "m", "", "Pergola model id, e.g. easy_park")
	rootCmd.PersistentFlags().IntP("spots", "s", 0, "Number of car spots to install")
	rootCmd.PersistentFlags().Int("internal", 0, "Number of internal technicians on the crew")
	rootCmd.PersistentFlags().Int("external", 0, "Number of external technicians on the crew")

	rootCmd.PersistentFlags().Bool("pv", false, "Include photovoltaic panels")
	rootCmd.PersistentFlags().Bool("led", false, "Include LED lighting")
	rootCmd.PersistentFlags().Bool("tarp", false, "Include tarp cover")
	rootCmd.PersistentFlags().Bool("insulated", false, "Include insulated roof panels")

	rootCmd.PersistentFlags().String("ballast", "", "Ballast model id; implies the job uses ballast")
	rootCmd.PersistentFlags().Bool("forklift", false, "A forklift is available on site")

	rootCmd.PersistentFlags().Int("days", 0, "Assistance: days of work requested")
	rootCmd.PersistentFlags().Int("techs", 0, "Assistance: technicians to send")
	rootCmd.PersistentFlags().Bool("public-transport", false, "Assistance: crew travels by public transport")

	rootCmd.PersistentFlags().Float64("toll", 0, "Override the estimated highway toll cost")
	rootCmd.PersistentFlags().Float64("hotel", 0, "Override the hotel price per night per person")
	rootCmd.PersistentFlags().Float64("ticket", 0, "Override the public transport ticket price per person")

	rootCmd.PersistentFlags().String("models", "", "Model catalog source: CSV file path or published-sheet URL")
	rootCmd.PersistentFlags().String("ballasts", "", "Ballast catalog source: CSV file path or published-sheet URL")
	rootCmd.PersistentFlags().String("regions", "", "Region price list source: CSV file path or published-sheet URL")

	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	jobFile, _ := flags.GetString("job")
	service, _ := flags.GetString("service")
	region, _ := flags.GetString("region")
	distance, _ := flags.GetFloat64("distance")
	model, _ := flags.GetString("model")
	spots, _ := flags.GetInt("spots")
	internal, _ := flags.GetInt("internal")
	external, _ := flags.GetInt("external")
	pv, _ := flags.GetBool("pv")
	led, _ := flags.GetBool("led")
	tarp, _ := flags.GetBool("tarp")
	insulated, _ := flags.GetBool("insulated")
	ballast, _ := flags.GetString("ballast")
	forklift, _ := flags.GetBool("forklift")
	days, _ := flags.GetInt("days")
	techs, _ := flags.GetInt("techs")
	publicTransport, _ := flags.GetBool("public-transport")
	toll, _ := flags.GetFloat64("toll")
	hotel, _ := flags.GetFloat64("hotel")
	ticket, _ := flags.GetFloat64("ticket")
	modelsSource, _ := flags.GetString("models")
	ballastsSource, _ := flags.GetString("ballasts")
	regionsSource, _ := flags.GetString("regions")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	// Default directory is the current working directory.
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		JobFile:         jobFile,
		Service:         service,
		Region:          region,
		DistanceKm:      distance,
		ModelID:         model,
		Spots:           spots,
		TechsInternal:   internal,
		TechsExternal:   external,
		PV:              pv,
		LED:             led,
		Tarp:            tarp,
		Insulated:       insulated,
		BallastModelID:  ballast,
		Forklift:        forklift,
		AssistanceDays:  days,
		AssistanceTechs: techs,
		PublicTransport: publicTransport,
		TollCost:        toll,
		HotelCost:       hotel,
		TicketCost:      ticket,
		ModelsSource:    modelsSource,
		BallastsSource:  ballastsSource,
		RegionsSource:   regionsSource,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
	}

	return args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.quoteUseCase.RunQuote(ctx, cliArgs)
}

// SetQuoteUseCase sets the quote use case for the CLI app.
func (app *CLIApp) SetQuoteUseCase(useCase *usecase.QuoteUseCase) {
	app.quoteUseCase = useCase
}
