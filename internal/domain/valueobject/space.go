package valueobject

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DimensionSpace is a finite, ordered set of named base dimensions.
// Each declaration receives its own tag, so two spaces are the same only if
// they come from the same declaration, regardless of their dimension names.
//
// A DimensionSpace is read-only after construction and safe to share.
type DimensionSpace struct {
	id         uuid.UUID
	name       string
	dimensions []string
	index      map[string]int
}

// NewDimensionSpace declares a new dimension space.
// Base dimensions are indexed 0..n-1 in the order given.
//
// Parameters:
//   - name: human readable name of the space (e.g. "si")
//   - dimensions: ordered, distinct base dimension names
//
// Returns:
//   - *DimensionSpace: the declared space
//   - error: ErrInvalidSpaceName, ErrInvalidDimensionName or ErrDuplicateDimension
func NewDimensionSpace(name string, dimensions ...string) (*DimensionSpace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidSpaceName
	}

	dims := make([]string, len(dimensions))
	index := make(map[string]int, len(dimensions))
	for i, d := range dimensions {
		d = strings.TrimSpace(d)
		if d == "" {
			return nil, fmt.Errorf("%w: position %d", ErrInvalidDimensionName, i)
		}
		if _, exists := index[d]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, d)
		}
		dims[i] = d
		index[d] = i
	}

	return &DimensionSpace{
		id:         uuid.New(),
		name:       name,
		dimensions: dims,
		index:      index,
	}, nil
}

// MustNewDimensionSpace declares a dimension space and panics on error.
// Use it for package-level declarations.
func MustNewDimensionSpace(name string, dimensions ...string) *DimensionSpace {
	space, err := NewDimensionSpace(name, dimensions...)
	if err != nil {
		panic(err)
	}
	return space
}

// ID returns the space tag.
func (s *DimensionSpace) ID() uuid.UUID {
	return s.id
}

// Name returns the space name.
func (s *DimensionSpace) Name() string {
	return s.name
}

// Cardinality returns the number of base dimensions.
func (s *DimensionSpace) Cardinality() int {
	return len(s.dimensions)
}

// Dimensions returns a copy of the base dimension names in index order.
func (s *DimensionSpace) Dimensions() []string {
	out := make([]string, len(s.dimensions))
	copy(out, s.dimensions)
	return out
}

// DimensionAt returns the name of the base dimension at index i.
func (s *DimensionSpace) DimensionAt(i int) (string, error) {
	if i < 0 || i >= len(s.dimensions) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrDimensionIndexOutOfRange, i, len(s.dimensions))
	}
	return s.dimensions[i], nil
}

// IndexOf returns the index of the named base dimension.
func (s *DimensionSpace) IndexOf(dimension string) (int, bool) {
	i, ok := s.index[dimension]
	return i, ok
}

// Equals reports whether s and other carry the same tag.
// A nil space equals nothing, not even another nil space.
func (s *DimensionSpace) Equals(other *DimensionSpace) bool {
	if s == nil || other == nil {
		return false
	}
	return s.id == other.id
}

// String returns the space formatted as "name{d0,d1,...}".
func (s *DimensionSpace) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s{%s}", s.name, strings.Join(s.dimensions, ","))
}
