package pointset

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/pointset/internal/fsutil"
	"github.com/banshee-data/pointset/internal/monitoring"
)

// FormatCoord renders v in the shortest form that parses back to the same
// float64. Integral values keep a trailing ".0" (1 is written as "1.0");
// very large or very small magnitudes use exponent notation.
func FormatCoord(v float64) string {
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		format = 'g'
	}
	s := strconv.FormatFloat(v, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// FormatRecord renders one output line, without the newline, for the point
// with the given 1-based id.
func FormatRecord(id int, p Point) string {
	return fmt.Sprintf("%s p%d %s %s", Marker, id, FormatCoord(p.X), FormatCoord(p.Y))
}

// Write creates or truncates path and writes one `v p<N> <x> <y>` line per
// point, numbering from 1 in the order given. It returns the number of
// points written.
func Write(fsys fsutil.FileSystem, path string, points []Point) (n int, err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return 0, &FileAccessError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileAccessError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for i, p := range points {
		if _, err := fmt.Fprintln(w, FormatRecord(i+1, p)); err != nil {
			return i, &FileAccessError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return 0, &FileAccessError{Op: "write", Path: path, Err: err}
	}

	monitoring.Logf("wrote %d points to %s", len(points), path)
	return len(points), nil
}
