package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadModelsGuessesColumnOrder(t *testing.T) {
	// One row per layout: hours-first and weight-first.
	csv := "Easy Park,4,\"1,5\",\"0,5\",180,no\n" +
		"Solar Pro XL,260,6,2,\"0,8\"\n" +
		"costo_orario_tecnico_interno,35\n"
	path := writeTemp(t, "models.csv", csv)

	repo := NewCatalogRepository()
	models, err := repo.LoadModels(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 2 {
		t.Fatalf("parsed %d models, want 2", len(models))
	}

	easy := models[0]
	if easy.ID != "easy_park" || easy.HoursStructure != 4 || easy.HoursPV != 1.5 || easy.WeightPerSpotKg != 180 {
		t.Fatalf("hours-first row parsed as %+v", easy)
	}
	if easy.RequiresLifting {
		t.Fatal("180 kg model without flag should not require lifting")
	}

	pro := models[1]
	if pro.ID != "solar_pro_xl" || pro.WeightPerSpotKg != 260 || pro.HoursStructure != 6 {
		t.Fatalf("weight-first row parsed as %+v", pro)
	}
	if !pro.RequiresLifting {
		t.Fatal("260 kg model should require lifting by weight heuristic")
	}
}

func TestLoadModelsFallsBackToDefaults(t *testing.T) {
	path := writeTemp(t, "empty.csv", "soglia_distanza,150\ndiaria_squadra_interna,50\n")

	repo := NewCatalogRepository()
	models, err := repo.LoadModels(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 3 || models[0].ID != "easy_park" {
		t.Fatalf("want the built-in catalog, got %d models", len(models))
	}
}

func TestLoadBallasts(t *testing.T) {
	path := writeTemp(t, "ballasts.csv", "Cemento 16q,1600\nTwin Drive 24q,\"2.400\"\nnote,\n")

	repo := NewCatalogRepository()
	ballasts, err := repo.LoadBallasts(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ballasts) != 2 {
		t.Fatalf("parsed %d ballasts, want 2", len(ballasts))
	}
	if ballasts[0].ID != "cemento_16q" || ballasts[0].WeightKg != 1600 {
		t.Fatalf("first ballast parsed as %+v", ballasts[0])
	}
	if ballasts[1].WeightKg != 2400 {
		t.Fatalf("thousand separator not handled: %+v", ballasts[1])
	}
}

func TestLoadRegionsParsesPricesAndCraneFallback(t *testing.T) {
	csv := "Provincia,Regione,Costo Bilico,Costo Gru\n" +
		"MI,Lombardia,\"600 €\",\"850 €\"\n" +
		"RM,Lazio,\"1.200,00 €\",\n" +
		"xx1,Invalid,abc,def\n"
	path := writeTemp(t, "regions.csv", csv)

	repo := NewCatalogRepository()
	regions, err := repo.LoadRegions(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 {
		t.Fatalf("parsed %d regions, want 2", len(regions))
	}

	mi := regions["MI"]
	if mi.TruckCost != 600 || mi.CraneCost != 850 {
		t.Fatalf("MI parsed as %+v", mi)
	}

	rm := regions["RM"]
	if rm.TruckCost != 1200 {
		t.Fatalf("RM truck cost = %v, want 1200", rm.TruckCost)
	}
	if rm.CraneCost != 1200*1.4 {
		t.Fatalf("RM crane cost = %v, want truck x 1.4", rm.CraneCost)
	}
}

func TestEmptySourceYieldsDefaults(t *testing.T) {
	repo := NewCatalogRepository()

	models, err := repo.LoadModels(context.Background(), "")
	if err != nil || len(models) == 0 {
		t.Fatalf("models = %v, err = %v", models, err)
	}
	regions, err := repo.LoadRegions(context.Background(), "")
	if err != nil || len(regions) == 0 {
		t.Fatalf("regions = %v, err = %v", regions, err)
	}
}
