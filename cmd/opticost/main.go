package main

import (
	"fmt"
	"os"

	"github.com/pergosolar/opticost-go/internal/adapter/driven/catalog"
	"github.com/pergosolar/opticost-go/internal/adapter/driven/config"
	"github.com/pergosolar/opticost-go/internal/adapter/driven/export"
	"github.com/pergosolar/opticost-go/internal/adapter/driving/cli"
	"github.com/pergosolar/opticost-go/internal/application/usecase"
	"github.com/pergosolar/opticost-go/pkg/console"
	"github.com/pergosolar/opticost-go/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	catalogRepo := catalog.NewCatalogRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	quoteUseCase := usecase.NewQuoteUseCase(
		catalogRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetQuoteUseCase(quoteUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
