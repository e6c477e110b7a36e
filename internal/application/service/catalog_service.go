// Package service contains the application services: the unit catalog and
// the quantity calculator. Services orchestrate the domain and talk to the
// outside world only through repositories and ports.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/internal/domain/entity"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	"github.com/hapkiduki/dimension-go/internal/domain/si"
	vo "github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// SpaceSpec declares a dimension space at startup.
type SpaceSpec struct {
	Name       string
	Dimensions []string
}

// CatalogService declares dimension spaces and registers named units.
type CatalogService struct {
	spaces  repository.SpaceRepository
	units   repository.UnitRepository
	log     port.Logger
	metrics port.Metrics
}

// NewCatalogService creates a new CatalogService.
//
// Parameters:
//   - spaces: space repository
//   - units: unit repository
//   - log: logger port
//   - metrics: metrics port
//
// Returns:
//   - *CatalogService: the service
func NewCatalogService(
	spaces repository.SpaceRepository,
	units repository.UnitRepository,
	log port.Logger,
	metrics port.Metrics,
) *CatalogService {
	return &CatalogService{
		spaces:  spaces,
		units:   units,
		log:     log.With("component", "catalog"),
		metrics: metrics,
	}
}

// DeclareSpace declares a new dimension space and registers one basic unit
// per base dimension, named after the dimension.
//
// Parameters:
//   - ctx: request context
//   - name: space name, unique in the catalog
//   - dimensions: ordered base dimension names
//
// Returns:
//   - *vo.DimensionSpace: the declared space
//   - error: a valueobject validation error or repository.ErrDuplicateSpace
func (s *CatalogService) DeclareSpace(ctx context.Context, name string, dimensions []string) (*vo.DimensionSpace, error) {
	space, err := vo.NewDimensionSpace(name, dimensions...)
	if err != nil {
		return nil, err
	}

	defs := make([]*entity.UnitDefinition, 0, space.Cardinality())
	for i, dim := range space.Dimensions() {
		def, err := entity.NewUnitDefinition(dim, "", entity.UnitKindBasic, vo.BasicUnit(space, i))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	if err := s.RegisterSpace(ctx, space, defs...); err != nil {
		return nil, err
	}
	return space, nil
}

// RegisterSpace stores an already declared space together with its named units.
//
// Parameters:
//   - ctx: request context
//   - space: the declared space
//   - defs: units of space to register
//
// Returns:
//   - error: repository.ErrDuplicateSpace, repository.ErrDuplicateUnit, or
//     repository.ErrInvalidInput for a unit of another space
func (s *CatalogService) RegisterSpace(ctx context.Context, space *vo.DimensionSpace, defs ...*entity.UnitDefinition) error {
	for _, def := range defs {
		if !def.Unit.Space().Equals(space) {
			return fmt.Errorf("%w: unit %q is not drawn from space %q", repository.ErrInvalidInput, def.Name, space.Name())
		}
	}

	if err := s.spaces.Create(ctx, space); err != nil {
		return err
	}
	for _, def := range defs {
		if err := s.units.Create(ctx, def); err != nil {
			return err
		}
	}

	s.log.WithContext(ctx).Info("Dimension space declared",
		"space", space.Name(),
		"dimensions", space.Dimensions(),
		"units", len(defs),
	)
	s.metrics.Counter("catalog_spaces_declared_total", 1, nil)
	s.metrics.Counter("catalog_units_registered_total", float64(len(defs)), map[string]string{"space": space.Name()})
	return nil
}

// Bootstrap populates the catalog at startup: the SI system when loadSI is
// set, then every configured space.
func (s *CatalogService) Bootstrap(ctx context.Context, loadSI bool, specs []SpaceSpec) error {
	if loadSI {
		named := si.Named()
		defs := make([]*entity.UnitDefinition, 0, len(named))
		for _, n := range named {
			kind := entity.UnitKindProduct
			if len(defs) < si.Space.Cardinality() {
				kind = entity.UnitKindBasic
			}
			def, err := entity.NewUnitDefinition(n.Name, n.Symbol, kind, n.Unit)
			if err != nil {
				return err
			}
			defs = append(defs, def)
		}
		if err := s.RegisterSpace(ctx, si.Space, defs...); err != nil {
			return fmt.Errorf("failed to register SI: %w", err)
		}
	}

	for _, spec := range specs {
		if _, err := s.DeclareSpace(ctx, spec.Name, spec.Dimensions); err != nil {
			return fmt.Errorf("failed to declare space %q: %w", spec.Name, err)
		}
	}
	return nil
}

// GetSpace retrieves a space by name.
func (s *CatalogService) GetSpace(ctx context.Context, name string) (*vo.DimensionSpace, error) {
	return s.spaces.GetByName(ctx, name)
}

// ListSpaces lists all declared spaces.
func (s *CatalogService) ListSpaces(ctx context.Context) ([]*vo.DimensionSpace, error) {
	return s.spaces.List(ctx)
}

// DefineUnit registers a product or quotient of existing units of a space.
//
// Parameters:
//   - ctx: request context
//   - spaceName: the space to register in
//   - req: the validated definition request
//
// Returns:
//   - *entity.UnitDefinition: the registered unit
//   - error: not found, duplicate or unit algebra errors
func (s *CatalogService) DefineUnit(ctx context.Context, spaceName string, req dto.DefineUnitRequest) (*entity.UnitDefinition, error) {
	start := time.Now()

	space, err := s.spaces.GetByName(ctx, spaceName)
	if err != nil {
		return nil, err
	}

	exists, err := s.units.ExistsByName(ctx, space.ID(), req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q in space %q", repository.ErrDuplicateUnit, req.Name, space.Name())
	}

	unit, kind, err := s.deriveUnit(ctx, space, req)
	if err != nil {
		return nil, err
	}

	def, err := entity.NewUnitDefinition(req.Name, req.Symbol, kind, unit)
	if err != nil {
		return nil, err
	}
	def.SetDescription(req.Description)

	if err := s.units.Create(ctx, def); err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("Unit defined",
		"space", space.Name(),
		"unit", def.Name,
		"kind", def.Kind,
		"exponents", unit.Exponents().String(),
	)
	s.metrics.Counter("catalog_units_registered_total", 1, map[string]string{"space": space.Name()})
	s.metrics.Timing("catalog_define_unit_duration", time.Since(start), nil)
	return def, nil
}

// deriveUnit resolves the referenced units and combines them.
func (s *CatalogService) deriveUnit(ctx context.Context, space *vo.DimensionSpace, req dto.DefineUnitRequest) (vo.Unit, entity.UnitKind, error) {
	switch entity.UnitKind(req.Kind) {
	case entity.UnitKindProduct:
		factors := make([]vo.Unit, 0, len(req.Factors))
		for _, name := range req.Factors {
			def, err := s.units.GetByName(ctx, space.ID(), name)
			if err != nil {
				return vo.Unit{}, "", err
			}
			factors = append(factors, def.Unit)
		}
		unit, err := vo.MultiplyUnits(factors...)
		return unit, entity.UnitKindProduct, err

	case entity.UnitKindQuotient:
		dividend, err := s.units.GetByName(ctx, space.ID(), req.Dividend)
		if err != nil {
			return vo.Unit{}, "", err
		}
		divisor, err := s.units.GetByName(ctx, space.ID(), req.Divisor)
		if err != nil {
			return vo.Unit{}, "", err
		}
		unit, err := vo.DivideUnits(dividend.Unit, divisor.Unit)
		return unit, entity.UnitKindQuotient, err

	default:
		return vo.Unit{}, "", fmt.Errorf("%w: unsupported unit kind %q", repository.ErrInvalidInput, req.Kind)
	}
}

// GetUnit retrieves a named unit of a space.
func (s *CatalogService) GetUnit(ctx context.Context, spaceName, unitName string) (*entity.UnitDefinition, error) {
	space, err := s.spaces.GetByName(ctx, spaceName)
	if err != nil {
		return nil, err
	}
	return s.units.GetByName(ctx, space.ID(), unitName)
}

// ListUnits lists the units registered in a space.
func (s *CatalogService) ListUnits(ctx context.Context, spaceName string) ([]*entity.UnitDefinition, error) {
	space, err := s.spaces.GetByName(ctx, spaceName)
	if err != nil {
		return nil, err
	}
	return s.units.ListBySpace(ctx, space.ID())
}

// MatchUnit returns the first registered unit of u's space with u's
// exponents, or nil when there is none.
func (s *CatalogService) MatchUnit(ctx context.Context, u vo.Unit) *entity.UnitDefinition {
	if !u.IsValid() {
		return nil
	}
	def, err := s.units.FindByExponents(ctx, u.Space().ID(), u.Exponents())
	if err != nil {
		return nil
	}
	return def
}

// Compatibility reports whether two catalog units can be combined.
//
// Parameters:
//   - ctx: request context
//   - leftSpace, left: space and name of the first unit
//   - rightSpace, right: space and name of the second unit
//
// Returns:
//   - dto.CompatibilityResponse: both gates of the unit algebra
//   - error: not found errors
func (s *CatalogService) Compatibility(ctx context.Context, leftSpace, left, rightSpace, right string) (dto.CompatibilityResponse, error) {
	l, err := s.GetUnit(ctx, leftSpace, left)
	if err != nil {
		return dto.CompatibilityResponse{}, err
	}
	r, err := s.GetUnit(ctx, rightSpace, right)
	if err != nil {
		return dto.CompatibilityResponse{}, err
	}

	return dto.CompatibilityResponse{
		Left:               l.Unit.String(),
		Right:              r.Unit.String(),
		SameDimensionSpace: vo.SameDimensionSpace(l.Unit, r.Unit),
		DimensionallyEqual: vo.DimensionallyEqual(l.Unit, r.Unit),
	}, nil
}
