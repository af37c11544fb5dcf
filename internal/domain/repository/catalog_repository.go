package repository

import (
	"context"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

// CatalogRepository defines the interface for loading reference catalogs.
// Sources may be local file paths or published-sheet URLs; implementations
// return validated values only, so the engine can trust what it receives.
type CatalogRepository interface {
	LoadModels(ctx context.Context, source string) ([]entity.PergolaModel, error)
	LoadBallasts(ctx context.Context, source string) ([]entity.BallastModel, error)
	LoadRegions(ctx context.Context, source string) (map[string]entity.RegionRates, error)
}
