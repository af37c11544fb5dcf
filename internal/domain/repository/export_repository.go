package repository

import (
	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.QuoteReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.QuoteReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.QuoteReport, filename string, outputDir string) (string, error)
}
