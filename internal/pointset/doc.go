// Package pointset owns the point-collection model behind the interactive
// tool: parsing two `.co` point files, tagging every point with the file it
// came from, answering set queries over the combined index and writing the
// results back out.
//
// Key types: Point, Origin, OriginSet, Index.
//
// File format, read and written:
//
//	v <label> <x> <y>
//
// Lines whose trimmed text does not start with the marker `v` are ignored,
// as are records with fewer than four fields or unparsable coordinates.
package pointset
