package usecase

import (
	"errors"
	"testing"

	"github.com/pergosolar/opticost-go/internal/domain/entity"
	"github.com/pergosolar/opticost-go/internal/shared/types"
)

func TestBuildJobFromFlags(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)

	args := &types.CLIArgs{
		Service:        "installation",
		Region:         "mi",
		DistanceKm:     160,
		ModelID:        "easy_park",
		Spots:          10,
		TechsInternal:  2,
		BallastModelID: "cemento_16",
	}

	job, err := uc.BuildJob(args)
	if err != nil {
		t.Fatalf("BuildJob: %v", err)
	}

	if job.Service != entity.ServiceInstallation {
		t.Errorf("service = %q, want INSTALLATION", job.Service)
	}
	if job.RegionCode != "MI" {
		t.Errorf("region = %q, want uppercased MI", job.RegionCode)
	}
	if !job.UseInternal || job.TechsInternal != 2 || job.UseExternal {
		t.Errorf("crew flags not derived: %+v", job)
	}
	if !job.HasBallast || job.BallastModelID != "cemento_16" {
		t.Errorf("ballast flag not implied by model id: %+v", job)
	}
}

func TestBuildJobDefaultsCrewWhenNoneGiven(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)

	job, err := uc.BuildJob(&types.CLIArgs{Service: "installation", Spots: 4})
	if err != nil {
		t.Fatalf("BuildJob: %v", err)
	}
	if !job.UseInternal || job.TechsInternal != 2 {
		t.Errorf("expected default crew of 2 internal techs, got %+v", job)
	}
}

func TestBuildJobRejectsUnknownService(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)

	_, err := uc.BuildJob(&types.CLIArgs{Service: "maintenance", Spots: 4})
	if !errors.Is(err, types.ErrUnknownService) {
		t.Fatalf("err = %v, want ErrUnknownService", err)
	}
}

func TestBuildJobRejectsInstallationWithoutSpots(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)

	_, err := uc.BuildJob(&types.CLIArgs{Service: "installation"})
	if !errors.Is(err, types.ErrNoSpots) {
		t.Fatalf("err = %v, want ErrNoSpots", err)
	}
}

func TestBuildJobAssistanceMinimums(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)

	job, err := uc.BuildJob(&types.CLIArgs{Service: "assistance", PublicTransport: true})
	if err != nil {
		t.Fatalf("BuildJob: %v", err)
	}
	if job.AssistanceDays != 1 || job.AssistanceTechs != 1 {
		t.Errorf("expected 1 day / 1 tech minimums, got %+v", job)
	}
	if job.AssistanceTravel != entity.TravelPublicTransport {
		t.Errorf("travel = %q, want PUBLIC_TRANSPORT", job.AssistanceTravel)
	}
}
