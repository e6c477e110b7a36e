// Package repository contains the repository interfaces (ports) for the unit catalog.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/dimension-go/internal/domain/entity"
	"github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// SpaceRepository stores declared dimension spaces.
// Spaces are declared once and never updated or removed.
//
// Example usage:
//
//	repo := memory.NewSpaceRepository()
//	space, err := repo.GetByName(ctx, "si")
type SpaceRepository interface {
	// Create registers a newly declared space.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - space: the declared space
	//
	// Returns:
	//   - error: ErrDuplicateSpace if the name is taken
	Create(ctx context.Context, space *valueobject.DimensionSpace) error

	// GetByName retrieves a space by its name.
	//
	// Returns:
	//   - *valueobject.DimensionSpace: the space
	//   - error: ErrSpaceNotFound if no space has that name
	GetByName(ctx context.Context, name string) (*valueobject.DimensionSpace, error)

	// GetByID retrieves a space by its tag.
	//
	// Returns:
	//   - *valueobject.DimensionSpace: the space
	//   - error: ErrSpaceNotFound if no space has that tag
	GetByID(ctx context.Context, id uuid.UUID) (*valueobject.DimensionSpace, error)

	// List returns all spaces in declaration order.
	List(ctx context.Context) ([]*valueobject.DimensionSpace, error)
}

// UnitRepository stores named units, scoped by dimension space.
type UnitRepository interface {
	// Create registers a unit definition under its space.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - def: the unit definition
	//
	// Returns:
	//   - error: ErrDuplicateUnit if the name is taken in the space
	Create(ctx context.Context, def *entity.UnitDefinition) error

	// GetByName retrieves a unit by space and unit name.
	//
	// Returns:
	//   - *entity.UnitDefinition: the definition
	//   - error: ErrUnitNotFound if the space has no such unit
	GetByName(ctx context.Context, space uuid.UUID, name string) (*entity.UnitDefinition, error)

	// ListBySpace returns the units of a space in registration order.
	ListBySpace(ctx context.Context, space uuid.UUID) ([]*entity.UnitDefinition, error)

	// FindByExponents returns the first registered unit of the space whose
	// exponents equal the given vector.
	//
	// Returns:
	//   - *entity.UnitDefinition: the matching definition
	//   - error: ErrUnitNotFound if no registered unit matches
	FindByExponents(ctx context.Context, space uuid.UUID, exponents valueobject.Exponents) (*entity.UnitDefinition, error)

	// ExistsByName checks if a unit with the given name exists in the space.
	ExistsByName(ctx context.Context, space uuid.UUID, name string) (bool, error)
}
