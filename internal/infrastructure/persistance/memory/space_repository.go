// Package memory provides in-memory implementations of the catalog repositories.
// The catalog is append-only, so readers only ever contend with registration.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/dimension-go/internal/domain/repository"
	"github.com/hapkiduki/dimension-go/internal/domain/valueobject"
)

// SpaceRepository is an in-memory repository.SpaceRepository.
type SpaceRepository struct {
	mu     sync.RWMutex
	byName map[string]*valueobject.DimensionSpace
	byID   map[uuid.UUID]*valueobject.DimensionSpace
	order  []*valueobject.DimensionSpace
}

var _ repository.SpaceRepository = (*SpaceRepository)(nil)

// NewSpaceRepository creates an empty space repository.
func NewSpaceRepository() *SpaceRepository {
	return &SpaceRepository{
		byName: make(map[string]*valueobject.DimensionSpace),
		byID:   make(map[uuid.UUID]*valueobject.DimensionSpace),
	}
}

func (r *SpaceRepository) Create(ctx context.Context, space *valueobject.DimensionSpace) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if space == nil {
		return repository.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[space.Name()]; exists {
		return fmt.Errorf("%w: %q", repository.ErrDuplicateSpace, space.Name())
	}
	r.byName[space.Name()] = space
	r.byID[space.ID()] = space
	r.order = append(r.order, space)
	return nil
}

func (r *SpaceRepository) GetByName(ctx context.Context, name string) (*valueobject.DimensionSpace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	space, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", repository.ErrSpaceNotFound, name)
	}
	return space, nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*valueobject.DimensionSpace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	space, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrSpaceNotFound, id)
	}
	return space, nil
}

func (r *SpaceRepository) List(ctx context.Context) ([]*valueobject.DimensionSpace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*valueobject.DimensionSpace, len(r.order))
	copy(out, r.order)
	return out, nil
}
