package prepress

import (
	"context"
	"strings"

	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CurveService handles dot-gain compensation curves
type CurveService struct {
	curveRepo prepress.CurveRepository
	profiles  prepress.ProfileRepository
}

// NewCurveService creates a new CurveService
func NewCurveService(curveRepo prepress.CurveRepository, profiles prepress.ProfileRepository) *CurveService {
	return &CurveService{curveRepo: curveRepo, profiles: profiles}
}

// Create stores a curve. Names are unique.
func (s *CurveService) Create(ctx context.Context, req CurveRequest) (*CurveResponse, error) {
	curve, err := prepress.NewCurve(req.Name, req.Description, req.points())
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, curve.Name); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		curve.SetCreatedBy(*req.CreatedBy)
	}
	if err := s.curveRepo.Save(ctx, curve); err != nil {
		return nil, err
	}
	response := ToCurveResponse(curve)
	return &response, nil
}

// GetByID retrieves a curve by ID
func (s *CurveService) GetByID(ctx context.Context, id uuid.UUID) (*CurveResponse, error) {
	curve, err := s.curveRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCurveResponse(curve)
	return &response, nil
}

// List retrieves curves with search and pagination
func (s *CurveService) List(ctx context.Context, filter CurveListFilter) ([]CurveResponse, int64, error) {
	domainFilter := filter.Query.Filter()
	curves, err := s.curveRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.curveRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCurveResponses(curves), total, nil
}

// Update replaces name, description and points
func (s *CurveService) Update(ctx context.Context, id uuid.UUID, req CurveRequest) (*CurveResponse, error) {
	curve, err := s.curveRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(req.Name), curve.Name) {
		if err := s.ensureUniqueName(ctx, req.Name); err != nil {
			return nil, err
		}
	}
	if err := curve.Update(req.Name, req.Description, req.points()); err != nil {
		return nil, err
	}
	if err := s.curveRepo.Save(ctx, curve); err != nil {
		return nil, err
	}
	response := ToCurveResponse(curve)
	return &response, nil
}

// Delete removes a curve that no profile uses
func (s *CurveService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.curveRepo.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.profiles.CountByCurve(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return shared.InUse("Curve", "profiles")
	}
	return s.curveRepo.Delete(ctx, id)
}

func (s *CurveService) ensureUniqueName(ctx context.Context, name string) error {
	exists, err := s.curveRepo.ExistsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A curve with this name already exists")
	}
	return nil
}
