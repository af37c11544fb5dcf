package catalog

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
)

var nonKeyChars = regexp.MustCompile(`[^a-z0-9_]`)

// sanitizeKey normalizes a display name into a catalog id.
func sanitizeKey(name string) string {
	return nonKeyChars.ReplaceAllString(strings.ToLower(name), "_")
}

// isSettingKey reports whether a row key belongs to the settings section of a
// mixed variables/models sheet rather than to a model.
func isSettingKey(key string) bool {
	return strings.Contains(key, "costo") ||
		strings.Contains(key, "diaria") ||
		strings.Contains(key, "soglia")
}

// cell returns the trimmed idx-th field, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber parses a plain numeric cell, accepting a comma decimal
// separator and stray unit suffixes.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parsePrice parses a euro amount in Italian formatting, where the dot is a
// thousands separator and the comma the decimal mark ("1.200,50 €").
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "€", ""))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseLiftingFlag interprets the optional requires-lifting column.
func parseLiftingFlag(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || strings.Contains(s, "si") || strings.Contains(s, "yes")
}

// isLetters reports whether s consists of ASCII letters only.
func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// parseCSV splits sheet text into rows, tolerating ragged row lengths and
// loose quoting the way published sheet exports come out.
func parseCSV(text string) [][]string {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		// Fall back to a line-by-line parse so one malformed row does not
		// discard the whole sheet.
		var out [][]string
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			out = append(out, strings.Split(line, ","))
		}
		return out
	}
	return rows
}
