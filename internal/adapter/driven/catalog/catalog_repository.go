package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
	"github.com/pergosolar/opticost-go/internal/domain/repository"
)

// CatalogRepositoryImpl implements the CatalogRepository over CSV sources.
// A source is a local file path or a published-sheet http(s) URL; an empty
// source yields the built-in catalog. Rows that do not survive the layout
// heuristics are dropped, so only validated values reach the engine.
type CatalogRepositoryImpl struct {
	client *http.Client
}

// NewCatalogRepository creates a new implementation of the CatalogRepository.
func NewCatalogRepository() repository.CatalogRepository {
	return &CatalogRepositoryImpl{
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

// LoadModels loads the pergola model catalog from a CSV source.
//
// Published sheets mix setting rows and model rows, so the layout is guessed
// per row: rows whose key looks like a setting are skipped, and the
// hours-vs-weight column order is disambiguated by magnitude (weights run
// into the hundreds of kg, labor hours stay under twenty).
func (r *CatalogRepositoryImpl) LoadModels(ctx context.Context, source string) ([]entity.PergolaModel, error) {
	if source == "" {
		return entity.DefaultModels(), nil
	}

	rows, err := r.readRows(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("error loading model catalog: %w", err)
	}

	var models []entity.PergolaModel
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		name := strings.TrimSpace(row[0])
		key := sanitizeKey(name)
		if name == "" || isSettingKey(key) {
			continue
		}

		v1, ok1 := parseNumber(cell(row, 1))
		v2, ok2 := parseNumber(cell(row, 2))
		v3, _ := parseNumber(cell(row, 3))
		v4, _ := parseNumber(cell(row, 4))
		if !ok1 || !ok2 {
			continue
		}

		var m entity.PergolaModel
		switch {
		case v4 > 50 || v1 < 20:
			// Name, hours structure, hours PV, hours LED, weight, lifting.
			m = entity.PergolaModel{
				HoursStructure:  v1,
				HoursPV:         v2,
				HoursLED:        v3,
				WeightPerSpotKg: v4,
				RequiresLifting: parseLiftingFlag(cell(row, 5)) || v4 > 200,
			}
		case v1 > 50:
			// Name, weight, hours structure, hours PV, hours LED.
			m = entity.PergolaModel{
				HoursStructure:  v2,
				HoursPV:         v3,
				HoursLED:        v4,
				WeightPerSpotKg: v1,
				RequiresLifting: v1 > 200,
			}
		default:
			continue
		}

		if m.HoursStructure <= 0 || m.WeightPerSpotKg <= 0 {
			continue
		}
		m.ID = key
		m.Name = name
		models = append(models, m)
	}

	if len(models) == 0 {
		// Nothing usable in the sheet: degrade to the built-in catalog.
		return entity.DefaultModels(), nil
	}
	return models, nil
}

// LoadBallasts loads the ballast catalog from a CSV source with
// name-and-unit-weight rows.
func (r *CatalogRepositoryImpl) LoadBallasts(ctx context.Context, source string) ([]entity.BallastModel, error) {
	if source == "" {
		return entity.DefaultBallasts(), nil
	}

	rows, err := r.readRows(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("error loading ballast catalog: %w", err)
	}

	var ballasts []entity.BallastModel
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		// Unit weights come formatted like prices ("1.600").
		weight, ok := parsePrice(cell(row, 1))
		if name == "" || !ok || weight <= 0 {
			continue
		}
		ballasts = append(ballasts, entity.BallastModel{
			ID:       sanitizeKey(name),
			Name:     name,
			WeightKg: weight,
		})
	}

	if len(ballasts) == 0 {
		return entity.DefaultBallasts(), nil
	}
	return ballasts, nil
}

// LoadRegions loads the per-region transport price list from a CSV source
// with header row and code, region, truck price, crane price columns. A
// missing crane price is estimated from the truck price.
func (r *CatalogRepositoryImpl) LoadRegions(ctx context.Context, source string) (map[string]entity.RegionRates, error) {
	if source == "" {
		return entity.DefaultRegions(), nil
	}

	rows, err := r.readRows(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("error loading region price list: %w", err)
	}

	regions := make(map[string]entity.RegionRates)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}

		code := strings.ToUpper(strings.TrimSpace(row[0]))
		if len(code) > 2 {
			code = code[:2]
		}
		if len(code) != 2 || !isLetters(code) {
			continue
		}

		truckCost, ok := parsePrice(cell(row, 2))
		if !ok {
			continue
		}
		craneCost, ok := parsePrice(cell(row, 3))
		if !ok {
			craneCost = truckCost * 1.4
		}

		regions[code] = entity.RegionRates{
			Code:      code,
			Region:    strings.TrimSpace(cell(row, 1)),
			TruckCost: truckCost,
			CraneCost: craneCost,
		}
	}

	if len(regions) == 0 {
		return entity.DefaultRegions(), nil
	}
	return regions, nil
}

// readRows fetches the source and parses it as CSV.
func (r *CatalogRepositoryImpl) readRows(ctx context.Context, source string) ([][]string, error) {
	var data []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetched, err := r.fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		data = fetched
	} else {
		read, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading catalog file: %w", err)
		}
		data = read
	}
	return parseCSV(string(data)), nil
}

// fetch downloads a published-sheet export.
func (r *CatalogRepositoryImpl) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building catalog request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog response: %w", err)
	}
	return body, nil
}
