package catalog

import (
	"sort"

	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/random"
)

var ErrInvalidRange = errs.New("invalid point range")

const (
	DefaultMinPoints = 1
	DefaultMaxPoints = 100
)

// PointRange is inclusive on both ends.
type PointRange struct {
	Min int
	Max int
}

func NewPointRange(minPoints, maxPoints int) (PointRange, error) {
	if minPoints < 1 || maxPoints < minPoints {
		return PointRange{}, ErrInvalidRange
	}
	return PointRange{Min: minPoints, Max: maxPoints}, nil
}

func DefaultPointRange() PointRange {
	return PointRange{Min: DefaultMinPoints, Max: DefaultMaxPoints}
}

func (r PointRange) Draw(src random.Source) int {
	return r.Min + src.IntN(r.Max-r.Min+1)
}

func (r PointRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Catalog maps item ids to point values. A value is assigned once and never
// changed afterwards. Not safe for concurrent use; the state store guards it.
type Catalog struct {
	points map[string]int
}

func New() *Catalog {
	return &Catalog{points: make(map[string]int)}
}

// Reconstruct trusts persisted values as-is so restarts keep assignments stable.
func Reconstruct(points map[string]int) *Catalog {
	c := New()
	for id, v := range points {
		c.points[id] = v
	}
	return c
}

// AssignIfAbsent returns the existing value, or draws one and stores it.
// The bool reports whether a new assignment was made.
func (c *Catalog) AssignIfAbsent(itemID string, draw func() int) (int, bool) {
	if v, ok := c.points[itemID]; ok {
		return v, false
	}
	v := draw()
	c.points[itemID] = v
	return v, true
}

// PointValue returns 0 for unknown items.
func (c *Catalog) PointValue(itemID string) int {
	return c.points[itemID]
}

func (c *Catalog) Has(itemID string) bool {
	_, ok := c.points[itemID]
	return ok
}

func (c *Catalog) Len() int { return len(c.points) }

// Items returns the known ids sorted for stable output.
func (c *Catalog) Items() []string {
	ids := make([]string, 0, len(c.points))
	for id := range c.points {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Catalog) Snapshot() map[string]int {
	out := make(map[string]int, len(c.points))
	for id, v := range c.points {
		out[id] = v
	}
	return out
}
