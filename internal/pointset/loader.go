package pointset

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/pointset/internal/fsutil"
	"github.com/banshee-data/pointset/internal/monitoring"
)

// Marker is the leading token of a point record line.
const Marker = "v"

// FileStats counts what happened to the lines of one input file.
type FileStats struct {
	Path    string
	Bytes   int64
	Lines   int // every line read
	Records int // lines accepted as points
	Skipped int // marker lines rejected for too few fields or bad numbers
}

// LoadStats holds the FileStats of both inputs.
type LoadStats struct {
	A, B FileStats
}

type lineKind int

const (
	lineIgnored lineKind = iota
	lineMalformed
	lineRecord
)

// ParseRecord parses a `v <label> <x> <y>` line. It reports false for lines
// that do not carry the marker, have fewer than four fields, or whose
// coordinates are not finite numbers.
func ParseRecord(line string) (Point, bool) {
	p, kind := parseLine(line)
	return p, kind == lineRecord
}

func parseLine(line string) (Point, lineKind) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, Marker) {
		return Point{}, lineIgnored
	}
	fields := strings.Fields(trimmed)
	if len(fields) < 4 {
		return Point{}, lineMalformed
	}
	x, ok := parseCoord(fields[2])
	if !ok {
		return Point{}, lineMalformed
	}
	y, ok := parseCoord(fields[3])
	if !ok {
		return Point{}, lineMalformed
	}
	return Point{X: x, Y: y}, lineRecord
}

// parseCoord accepts decimal and exponent notation. Go literal underscores
// ("1_0") are rejected, and so are NaN and the infinities, which cannot be
// written back out as coordinates.
func parseCoord(s string) (float64, bool) {
	if strings.Contains(s, "_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	// -0 and 0 are the same map key; store the positive form.
	if v == 0 {
		v = 0
	}
	return v, true
}

// Load reads pathA and pathB and builds an Index tagging points from the
// first file with OriginA and from the second with OriginB. Any file that
// cannot be opened or read aborts the load with a *FileAccessError and no
// Index is returned.
func Load(fsys fsutil.FileSystem, pathA, pathB string) (*Index, error) {
	idx := newIndex()

	a, err := loadFile(fsys, idx, pathA, OriginA)
	if err != nil {
		return nil, err
	}
	b, err := loadFile(fsys, idx, pathB, OriginB)
	if err != nil {
		return nil, err
	}
	idx.stats = LoadStats{A: a, B: b}

	monitoring.Logf("load %s: %d distinct points (%s: %d records, %d skipped; %s: %d records, %d skipped)",
		idx.id, idx.Len(), a.Path, a.Records, a.Skipped, b.Path, b.Records, b.Skipped)
	return idx, nil
}

func loadFile(fsys fsutil.FileSystem, idx *Index, path string, origin Origin) (FileStats, error) {
	stats := FileStats{Path: path}

	f, err := fsys.Open(path)
	if err != nil {
		return stats, &FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		stats.Bytes = info.Size()
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stats.Lines++
		p, kind := parseLine(scanner.Text())
		switch kind {
		case lineRecord:
			stats.Records++
			idx.add(p, origin)
		case lineMalformed:
			stats.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return stats, nil
}
