package pointset

// Select returns, in first-seen order, every point whose origin set
// satisfies keep. The index is not modified.
func Select(idx *Index, keep func(OriginSet) bool) []Point {
	out := make([]Point, 0, len(idx.order))
	for _, p := range idx.order {
		if keep(idx.origins[p]) {
			out = append(out, p)
		}
	}
	return out
}

// Union returns every point in the index.
func Union(idx *Index) []Point {
	return Select(idx, func(OriginSet) bool { return true })
}

// Intersection returns the points present in both files.
func Intersection(idx *Index) []Point {
	return Select(idx, func(s OriginSet) bool { return s.Contains(OriginA, OriginB) })
}

// Difference returns the points present in the first file and absent from
// the second. Only A minus B is offered.
func Difference(idx *Index) []Point {
	return Select(idx, func(s OriginSet) bool { return s.Has(OriginA) && !s.Has(OriginB) })
}
