package pointset

import (
	"strings"

	"github.com/google/uuid"
)

// Point is a 2D coordinate. It is comparable and used directly as a map key,
// so equality is exact: no tolerance is applied.
type Point struct {
	X, Y float64
}

// Origin identifies which input file contributed a point.
type Origin uint8

const (
	// OriginA tags points read from the first file.
	OriginA Origin = 1 << iota
	// OriginB tags points read from the second file.
	OriginB
)

// String returns the origin label, "A" or "B".
func (o Origin) String() string {
	switch o {
	case OriginA:
		return "A"
	case OriginB:
		return "B"
	default:
		return "?"
	}
}

// OriginSet is the set of origins that produced a point.
type OriginSet uint8

// Add returns the set with o included. Adding an origin twice is a no-op.
func (s OriginSet) Add(o Origin) OriginSet {
	return s | OriginSet(o)
}

// Has reports whether o is in the set.
func (s OriginSet) Has(o Origin) bool {
	return s&OriginSet(o) != 0
}

// Contains reports whether the set is a superset of origins.
func (s OriginSet) Contains(origins ...Origin) bool {
	for _, o := range origins {
		if !s.Has(o) {
			return false
		}
	}
	return true
}

// Len returns the number of origins in the set.
func (s OriginSet) Len() int {
	n := 0
	for _, o := range []Origin{OriginA, OriginB} {
		if s.Has(o) {
			n++
		}
	}
	return n
}

// String renders the set as a comma-separated label list, e.g. "A,B".
func (s OriginSet) String() string {
	var labels []string
	for _, o := range []Origin{OriginA, OriginB} {
		if s.Has(o) {
			labels = append(labels, o.String())
		}
	}
	return "{" + strings.Join(labels, ",") + "}"
}

// Index maps every loaded point to the set of origins that produced it.
// An Index is fully built by Load before it is handed out and is read-only
// afterwards. Points are kept in first-seen order so query results, and the
// IDs assigned when writing them, are deterministic.
type Index struct {
	id      uuid.UUID
	origins map[Point]OriginSet
	order   []Point
	stats   LoadStats
}

func newIndex() *Index {
	return &Index{
		id:      uuid.New(),
		origins: make(map[Point]OriginSet),
	}
}

func (idx *Index) add(p Point, o Origin) {
	s, seen := idx.origins[p]
	if !seen {
		idx.order = append(idx.order, p)
	}
	idx.origins[p] = s.Add(o)
}

// ID identifies this load; it is logged with every diagnostic about it.
func (idx *Index) ID() uuid.UUID { return idx.id }

// Stats returns the per-file counters gathered while loading.
func (idx *Index) Stats() LoadStats { return idx.stats }

// Len returns the number of distinct points.
func (idx *Index) Len() int { return len(idx.order) }

// Origins returns the origin set of p and whether p is in the index.
func (idx *Index) Origins(p Point) (OriginSet, bool) {
	s, ok := idx.origins[p]
	return s, ok
}

// Entries returns a copy of the point to origin-set mapping.
func (idx *Index) Entries() map[Point]OriginSet {
	out := make(map[Point]OriginSet, len(idx.origins))
	for p, s := range idx.origins {
		out[p] = s
	}
	return out
}
