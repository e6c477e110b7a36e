package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/dimension-go/internal/domain/entity"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	"github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// UnitRepository is an in-memory repository.UnitRepository.
type UnitRepository struct {
	mu     sync.RWMutex
	spaces map[uuid.UUID]*unitTable
}

// unitTable holds the units of one dimension space.
type unitTable struct {
	byName map[string]*entity.UnitDefinition
	order  []*entity.UnitDefinition
}

var _ repository.UnitRepository = (*UnitRepository)(nil)

// NewUnitRepository creates an empty unit repository.
func NewUnitRepository() *UnitRepository {
	return &UnitRepository{spaces: make(map[uuid.UUID]*unitTable)}
}

func (r *UnitRepository) Create(ctx context.Context, def *entity.UnitDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if def == nil || !def.Unit.IsValid() {
		return repository.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := def.Unit.Space().ID()
	table, ok := r.spaces[id]
	if !ok {
		table = &unitTable{byName: make(map[string]*entity.UnitDefinition)}
		r.spaces[id] = table
	}
	if _, exists := table.byName[def.Name]; exists {
		return fmt.Errorf("%w: %q in space %q", repository.ErrDuplicateUnit, def.Name, def.SpaceName())
	}
	table.byName[def.Name] = def
	table.order = append(table.order, def)
	return nil
}

func (r *UnitRepository) GetByName(ctx context.Context, space uuid.UUID, name string) (*entity.UnitDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if table, ok := r.spaces[space]; ok {
		if def, ok := table.byName[name]; ok {
			return def, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", repository.ErrUnitNotFound, name)
}

func (r *UnitRepository) ListBySpace(ctx context.Context, space uuid.UUID) ([]*entity.UnitDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.spaces[space]
	if !ok {
		return []*entity.UnitDefinition{}, nil
	}
	out := make([]*entity.UnitDefinition, len(table.order))
	copy(out, table.order)
	return out, nil
}

func (r *UnitRepository) FindByExponents(ctx context.Context, space uuid.UUID, exponents valueobject.Exponents) (*entity.UnitDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if table, ok := r.spaces[space]; ok {
		for _, def := range table.order {
			if valueobject.Equal(def.Unit.Exponents(), exponents) {
				return def, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: exponents %s", repository.ErrUnitNotFound, exponents)
}

func (r *UnitRepository) ExistsByName(ctx context.Context, space uuid.UUID, name string) (bool, error) {
	_, err := r.GetByName(ctx, space, name)
	if err == nil {
		return true, nil
	}
	if repository.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}
