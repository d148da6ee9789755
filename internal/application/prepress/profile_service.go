package prepress

import (
	"context"
	"fmt"
	"strings"

	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfileReferenceCounter counts the service orders prepared with a profile
type ProfileReferenceCounter interface {
	CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// ProfileService handles printer profiles
type ProfileService struct {
	profileRepo prepress.ProfileRepository
	printerRepo prepress.PrinterRepository
	curveRepo   prepress.CurveRepository
	orders      ProfileReferenceCounter
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo prepress.ProfileRepository,
	printerRepo prepress.PrinterRepository,
	curveRepo prepress.CurveRepository,
	orders ProfileReferenceCounter,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		printerRepo: printerRepo,
		curveRepo:   curveRepo,
		orders:      orders,
	}
}

// Create stores a profile for an existing printer
func (s *ProfileService) Create(ctx context.Context, req ProfileRequest) (*ProfileResponse, error) {
	printer, err := s.printerRepo.FindByID(ctx, req.PrinterID)
	if err != nil {
		return nil, err
	}

	profile, err := prepress.NewProfile(req.PrinterID, req.Name, req.Lineature, prepress.DotType(req.DotType), req.colors())
	if err != nil {
		return nil, err
	}
	profile.Notes = req.Notes
	if err := s.validate(ctx, profile, printer, ""); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		profile.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	response := ToProfileResponse(profile)
	return &response, nil
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProfileResponse(profile)
	return &response, nil
}

// List retrieves profiles, optionally of one printer
func (s *ProfileService) List(ctx context.Context, filter ProfileListFilter) ([]ProfileResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	if filter.PrinterID != "" {
		id, err := uuid.Parse(filter.PrinterID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_FILTER", "printerId must be a UUID")
		}
		domainFilter.Filters["printer_id"] = id
	}

	profiles, err := s.profileRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.profileRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToProfileResponses(profiles), total, nil
}

// Update replaces the profile configuration; the printer does not change
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req ProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	printer, err := s.printerRepo.FindByID(ctx, profile.PrinterID)
	if err != nil {
		return nil, err
	}

	previousName := profile.Name
	if err := profile.Update(req.Name, req.Lineature, prepress.DotType(req.DotType), req.colors(), req.Notes); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, profile, printer, previousName); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	response := ToProfileResponse(profile)
	return &response, nil
}

// Delete removes a profile no service order uses
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.profileRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if s.orders != nil {
		n, err := s.orders.CountByProfile(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return shared.InUse("Profile", "service orders")
		}
	}
	return s.profileRepo.Delete(ctx, id)
}

// validate checks the rules that need other aggregates: the name is unique
// per printer, the press has enough stations and every curve exists.
func (s *ProfileService) validate(ctx context.Context, profile *prepress.Profile, printer *prepress.Printer, previousName string) error {
	if len(profile.Colors) > printer.Colors {
		return shared.NewDomainError("INVALID_COLORS",
			fmt.Sprintf("Printer %s has only %d colors", printer.Name, printer.Colors))
	}

	if !strings.EqualFold(profile.Name, previousName) {
		exists, err := s.profileRepo.ExistsByPrinterAndName(ctx, profile.PrinterID, profile.Name)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "This printer already has a profile with this name")
		}
	}

	ids := profile.CurveIDs()
	if len(ids) == 0 {
		return nil
	}
	curves, err := s.curveRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(curves) != len(ids) {
		return shared.NotFound("Curve")
	}
	return nil
}
