package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// Locator resolves geographic coordinates to a village's administrative
// tuple. Implementations sit outside the application layer; absence of
// a match is shared.ErrNotFound.
type Locator interface {
	Locate(ctx context.Context, lat, lon float64) (directory.VillageAttrs, error)
}

// VillageService serves village lookup, the hierarchical browse tree
// and the per-village dashboard
type VillageService struct {
	villageRepo   directory.VillageRepository
	residencyRepo residency.Repository
	eventRepo     community.EventRepository
	locator       Locator
}

// NewVillageService creates a new VillageService
func NewVillageService(
	villageRepo directory.VillageRepository,
	residencyRepo residency.Repository,
	eventRepo community.EventRepository,
	locator Locator,
) *VillageService {
	return &VillageService{
		villageRepo:   villageRepo,
		residencyRepo: residencyRepo,
		eventRepo:     eventRepo,
		locator:       locator,
	}
}

// GetByID returns a village
func (s *VillageService) GetByID(ctx context.Context, id uuid.UUID) (*VillageResponse, error) {
	village, err := s.villageRepo.FindByID(ctx, id)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}
	return toVillageResponse(village), nil
}

// Dashboard returns a village with its headline counts
func (s *VillageService) Dashboard(ctx context.Context, id uuid.UUID) (*VillageDashboardResponse, error) {
	village, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	residents, err := s.residencyRepo.CountActiveByVillage(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.CountByVillage(ctx, id)
	if err != nil {
		return nil, err
	}

	return &VillageDashboardResponse{
		VillageResponse:   *village,
		ApprovedResidents: residents,
		Events:            events,
	}, nil
}

// Lookup finds a village by its exact administrative tuple
func (s *VillageService) Lookup(ctx context.Context, attrs directory.VillageAttrs) (*VillageResponse, error) {
	attrs = attrs.Normalize()
	if !attrs.Complete() {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "Province, district, sector, cell and village are all required")
	}

	village, err := s.villageRepo.FindByAttrs(ctx, attrs)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}
	return toVillageResponse(village), nil
}

// Provinces lists the top level of the administrative tree
func (s *VillageService) Provinces(ctx context.Context) ([]string, error) {
	return s.villageRepo.ListProvinces(ctx)
}

// Districts lists the districts of a province
func (s *VillageService) Districts(ctx context.Context, province string) ([]string, error) {
	return s.villageRepo.ListDistricts(ctx, province)
}

// Sectors lists the sectors of a district
func (s *VillageService) Sectors(ctx context.Context, province, district string) ([]string, error) {
	return s.villageRepo.ListSectors(ctx, province, district)
}

// Cells lists the cells of a sector
func (s *VillageService) Cells(ctx context.Context, province, district, sector string) ([]string, error) {
	return s.villageRepo.ListCells(ctx, province, district, sector)
}

// Villages lists the villages of a cell
func (s *VillageService) Villages(ctx context.Context, province, district, sector, cell string) ([]VillageResponse, error) {
	villages, err := s.villageRepo.ListVillages(ctx, province, district, sector, cell)
	if err != nil {
		return nil, err
	}
	out := make([]VillageResponse, len(villages))
	for i := range villages {
		out[i] = *toVillageResponse(&villages[i])
	}
	return out, nil
}

// Locate resolves coordinates to the village covering them
func (s *VillageService) Locate(ctx context.Context, req LocateRequest) (*VillageResponse, error) {
	attrs, err := s.locator.Locate(ctx, req.Latitude, req.Longitude)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}
	return s.Lookup(ctx, attrs)
}
