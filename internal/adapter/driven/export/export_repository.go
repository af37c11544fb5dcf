package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pergosolar/opticost-go/internal/domain/entity"
	"github.com/pergosolar/opticost-go/internal/domain/repository"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new implementation of the ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(report entity.QuoteReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Service", "Region", "Model", "Spots", "Distance (km)",
		"Total Hours", "Total Days", "Total Weight (kg)",
		"Transport", "Vehicles",
		"Labor", "Stay", "Travel", "Equipment Rental", "Third-Party Freight",
		"Total Cost", "Margin", "Suggested Price", "Rationale",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	q := report.Quote
	record := []string{
		string(report.Job.Service),
		report.Job.RegionCode,
		report.ModelName,
		fmt.Sprintf("%d", report.Job.Spots),
		fmt.Sprintf("%.0f", report.Job.DistanceKm),
		fmt.Sprintf("%.1f", q.TotalHours),
		fmt.Sprintf("%d", q.TotalDays),
		fmt.Sprintf("%.0f", q.TotalWeightKg),
		transportLabel(q.TransportMode),
		fmt.Sprintf("%d", q.Details.NumberOfVehicles),
		fmt.Sprintf("%.2f", q.CostLabor),
		fmt.Sprintf("%.2f", q.CostStay),
		fmt.Sprintf("%.2f", q.CostTravel),
		fmt.Sprintf("%.2f", q.CostEquipment),
		fmt.Sprintf("%.2f", q.CostFreight),
		fmt.Sprintf("%.2f", q.TotalCost),
		fmt.Sprintf("%.2f", q.MarginAmount),
		fmt.Sprintf("%.2f", q.SuggestedPrice),
		q.Details.VehicleReason,
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.QuoteReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.QuoteReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{37, 99, 235}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	q := report.Quote
	job := report.Job

	pdf.AddPage()

	// Header
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  PERGOSOLAR - Preliminary Quote"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	destination := job.RegionCode
	if report.RegionName != "" {
		destination = fmt.Sprintf("%s (%s)", report.RegionName, job.RegionCode)
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Destination: %s  |  Service: %s", destination, serviceLabel(job.Service))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Configuration
	var cfg strings.Builder
	if job.Service == entity.ServiceInstallation {
		cfg.WriteString(fmt.Sprintf("Model: %s\n", report.ModelName))
		cfg.WriteString(fmt.Sprintf("Spots: %d\n", job.Spots))
		cfg.WriteString(fmt.Sprintf("Accessories: %s\n", accessoriesLabel(job)))
		if job.HasBallast {
			cfg.WriteString(fmt.Sprintf("Ballast: %s (x%d, %.0f kg)\n",
				job.BallastModelID, q.Details.BallastCount, q.Details.BallastWeightKg))
		} else {
			cfg.WriteString("Ballast: none\n")
		}
	} else {
		cfg.WriteString(fmt.Sprintf("Duration: %d days\n", job.AssistanceDays))
		cfg.WriteString(fmt.Sprintf("Technicians: %d\n", job.AssistanceTechs))
	}
	drawSection("Configuration", cfg.String())

	// Logistics
	var lg strings.Builder
	lg.WriteString(fmt.Sprintf("Distance (round trip): %.0f km\n", job.DistanceKm*2))
	lg.WriteString(fmt.Sprintf("Working days: %d\n", q.TotalDays))
	lg.WriteString(fmt.Sprintf("Total weight: %.0f kg\n", q.TotalWeightKg))
	lg.WriteString(fmt.Sprintf("Transport: %s (x%d)\n", transportLabel(q.TransportMode), q.Details.NumberOfVehicles))
	if q.Details.Overnight {
		lg.WriteString(fmt.Sprintf("Overnight stay: yes (%d hotel nights)\n", q.Details.NightsInHotel))
	} else {
		lg.WriteString("Overnight stay: no\n")
	}
	lg.WriteString(fmt.Sprintf("Vehicle choice: %s\n", q.Details.VehicleReason))
	drawSection("Logistics", lg.String())

	// Cost lines
	var costs strings.Builder
	costs.WriteString(fmt.Sprintf("Labor: %s\n", euro(q.CostLabor)))
	costs.WriteString(fmt.Sprintf("Travel & stay: %s\n", euro(q.CostTravel+q.CostStay)))
	costs.WriteString(fmt.Sprintf("Equipment rental: %s\n", euro(q.CostEquipment)))
	costs.WriteString(fmt.Sprintf("Third-party freight: %s\n", euro(q.CostFreight)))
	costs.WriteString(fmt.Sprintf("\nTOTAL COST: %s\n", euro(q.TotalCost)))
	drawSection("Cost Summary (VAT excluded)", costs.String())

	// Suggested price box
	pdf.SetFillColor(239, 246, 255)
	y := pdf.GetY()
	pdf.RoundedRect(10, y, 190, 25, 2, "1234", "F")
	pdf.SetXY(16, y+5)
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 6, tr("SUGGESTED PRICE (RESALE)"), "", 1, "L", false, 0, "")
	pdf.SetX(16)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s   (margin %s)", euro(q.SuggestedPrice), euro(q.MarginAmount))), "", 1, "L", false, 0, "")

	// Footer
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by OptiCost Pergosolar for internal use | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Helpers ---

// generateFilename builds a unique timestamped file name and makes sure the
// output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func euro(n float64) string {
	return fmt.Sprintf("€ %.2f", n)
}

func serviceLabel(s entity.ServiceKind) string {
	if s == entity.ServiceInstallation {
		return "Full Installation"
	}
	return "Technical Assistance"
}

func transportLabel(m entity.TransportMode) string {
	switch m {
	case entity.TransportVan:
		return "Company Van"
	case entity.TransportTruck:
		return "Freight Truck"
	case entity.TransportCraneTruck:
		return "Crane Truck"
	}
	return string(m)
}

func accessoriesLabel(job entity.JobConfig) string {
	var acc []string
	if job.HasPV {
		acc = append(acc, "Photovoltaic")
	}
	if job.HasLED {
		acc = append(acc, "LED")
	}
	if job.HasTarp {
		acc = append(acc, "Tarp")
	}
	if job.HasInsulated {
		acc = append(acc, "Insulated panels")
	}
	if len(acc) == 0 {
		return "-"
	}
	return strings.Join(acc, ", ")
}
