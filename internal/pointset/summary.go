package pointset

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a loaded index: how the points split across the two
// files and where they lie.
type Summary struct {
	ID     uuid.UUID
	Stats  LoadStats
	Total  int
	Shared int
	OnlyA  int
	OnlyB  int

	// Bounds and centroid are zero when the index is empty.
	MinX, MinY float64
	MaxX, MaxY float64
	CentroidX  float64
	CentroidY  float64
}

// Summarize computes the Summary of idx.
func Summarize(idx *Index) Summary {
	s := Summary{
		ID:    idx.ID(),
		Stats: idx.Stats(),
		Total: idx.Len(),
	}
	if s.Total == 0 {
		return s
	}

	xs := make([]float64, 0, s.Total)
	ys := make([]float64, 0, s.Total)
	for _, p := range idx.order {
		origins := idx.origins[p]
		switch {
		case origins.Contains(OriginA, OriginB):
			s.Shared++
		case origins.Has(OriginA):
			s.OnlyA++
		default:
			s.OnlyB++
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	s.MinX, s.MaxX = floats.Min(xs), floats.Max(xs)
	s.MinY, s.MaxY = floats.Min(ys), floats.Max(ys)
	s.CentroidX = stat.Mean(xs, nil)
	s.CentroidY = stat.Mean(ys, nil)
	return s
}
