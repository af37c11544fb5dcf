package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/pergosolar/opticost-go/internal/shared/types"
)

// Console is an implementation of the ConsoleInterface.
type Console struct{}

// NewConsole creates a new Console.
func NewConsole() *Console {
	return &Console{}
}

// Print prints to the console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf prints a formatted string to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println prints to the console with a trailing newline.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo logs an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning logs a warning message.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError logs an error message.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess logs a success message.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle is an implementation of the StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status starts a status spinner with the given message.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Predefined colors for consistent use across the CLI.
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update updates the status message.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop stops the status spinner.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table is an implementation of the TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable creates a new table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adds a column to the table.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayCostBars renders a bar chart of the quote cost breakdown.
func (c *Console) DisplayCostBars(lines []types.CostLine) {
	maxCost := 0.0
	total := 0.0
	for _, line := range lines {
		total += line.Cost
		if line.Cost > maxCost {
			maxCost = line.Cost
		}
	}

	if maxCost == 0 {
		pterm.Warning.Println("All cost lines are € 0.00 for this quote")
		return
	}

	tableData := pterm.TableData{
		{"Cost line", "Amount", "", "Share"},
	}

	for _, line := range lines {
		barLength := int((line.Cost / maxCost) * 40)
		bar := strings.Repeat("█", barLength)

		share := (line.Cost / total) * 100.0
		barColor := pterm.FgBlue.Sprint(bar)
		shareText := pterm.FgCyan.Sprintf("%.1f%%", share)
		if line.Cost == 0 {
			shareText = pterm.FgYellow.Sprint("0%")
		}

		tableData = append(tableData, []string{
			line.Label,
			fmt.Sprintf("€ %.2f", line.Cost),
			barColor,
			shareText,
		})
	}

	tableData = append(tableData, []string{
		"Total cost",
		pterm.FgLightWhite.Sprintf("€ %.2f", total),
		"",
		"",
	})

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Cost Breakdown").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
