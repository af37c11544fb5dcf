package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadJobFileTOML(t *testing.T) {
	path := writeTemp(t, "job.toml", `
service = "INSTALLATION"
region = "MI"
distance_km = 160.0
model_id = "easy_park"
spots = 10
use_internal = true
techs_internal = 2
has_pv = true
has_ballast = true
ballast_model_id = "cemento_16"
`)

	repo := NewConfigRepository()
	job, err := repo.LoadJobFile(path)
	if err != nil {
		t.Fatalf("LoadJobFile: %v", err)
	}

	if job.Service != entity.ServiceInstallation {
		t.Errorf("service = %q, want INSTALLATION", job.Service)
	}
	if job.RegionCode != "MI" || job.DistanceKm != 160 {
		t.Errorf("destination = %q/%v, want MI/160", job.RegionCode, job.DistanceKm)
	}
	if job.Spots != 10 || !job.UseInternal || job.TechsInternal != 2 {
		t.Errorf("crew/spots not parsed: %+v", job)
	}
	if !job.HasPV || !job.HasBallast || job.BallastModelID != "cemento_16" {
		t.Errorf("accessories not parsed: %+v", job)
	}
}

func TestLoadJobFileYAML(t *testing.T) {
	path := writeTemp(t, "job.yaml", `
service: ASSISTANCE
region: VR
distance_km: 80
assistance_days: 3
assistance_techs: 2
assistance_travel: PUBLIC_TRANSPORT
`)

	repo := NewConfigRepository()
	job, err := repo.LoadJobFile(path)
	if err != nil {
		t.Fatalf("LoadJobFile: %v", err)
	}

	if job.Service != entity.ServiceAssistance {
		t.Errorf("service = %q, want ASSISTANCE", job.Service)
	}
	if job.AssistanceDays != 3 || job.AssistanceTechs != 2 {
		t.Errorf("assistance fields not parsed: %+v", job)
	}
	if job.AssistanceTravel != entity.TravelPublicTransport {
		t.Errorf("travel = %q, want PUBLIC_TRANSPORT", job.AssistanceTravel)
	}
}

func TestLoadConfigFileJSONAppliesRateOverrides(t *testing.T) {
	path := writeTemp(t, "config.json", `{
  "report_name": "quote",
  "report_type": ["pdf", "json"],
  "models": "models.csv",
  "rates": {
    "margin_pct": 30,
    "hourly_internal": 40
  }
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if cfg.ReportName != "quote" || len(cfg.ReportType) != 2 {
		t.Errorf("report defaults not parsed: %+v", cfg)
	}
	if cfg.Models != "models.csv" {
		t.Errorf("models source = %q, want models.csv", cfg.Models)
	}

	rates := entity.DefaultRateTable()
	cfg.Rates.Apply(&rates)
	if rates.MarginPct != 30 {
		t.Errorf("MarginPct = %v, want 30", rates.MarginPct)
	}
	if rates.HourlyInternal != 40 {
		t.Errorf("HourlyInternal = %v, want 40", rates.HourlyInternal)
	}
	// Untouched keys keep their defaults.
	if rates.PerDiemInternal != 50 {
		t.Errorf("PerDiemInternal = %v, want default 50", rates.PerDiemInternal)
	}
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "config.ini", "report_name = quote")

	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(path); err == nil {
		t.Fatal("expected an error for unsupported extension")
	}
}

func TestLoadConfigFileRejectsDirectory(t *testing.T) {
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(t.TempDir()); err == nil {
		t.Fatal("expected an error when the path is a directory")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
