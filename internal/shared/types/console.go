package types

// ConsoleInterface defines the interface for terminal output.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayCostBars(lines []CostLine)
}

// StatusHandle is an interface for updating a status message.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface defines the interface for building and rendering tables.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// CostLine is one named cost amount, used for the breakdown bar chart.
type CostLine struct {
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}
