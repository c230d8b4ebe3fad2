package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/pointset/internal/config"
	"github.com/banshee-data/pointset/internal/fsutil"
	"github.com/banshee-data/pointset/internal/monitoring"
	"github.com/banshee-data/pointset/internal/pointset"
)

// State is the session's position in its lifecycle.
type State int

const (
	StateNoData State = iota
	StateLoaded
	StateExited
)

func (s State) String() string {
	switch s {
	case StateNoData:
		return "no-data"
	case StateLoaded:
		return "loaded"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Session holds the state of one interactive run: at most one loaded index,
// replaced wholesale by each successful load.
type Session struct {
	fs     fsutil.FileSystem
	cfg    *config.SessionConfig
	out    io.Writer
	index  *pointset.Index
	exited bool
}

// NewSession returns a session in StateNoData that reads and writes through
// fsys and prints results to out. A nil cfg uses the defaults.
func NewSession(fsys fsutil.FileSystem, cfg *config.SessionConfig, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.EmptySessionConfig()
	}
	return &Session{fs: fsys, cfg: cfg, out: out}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	switch {
	case s.exited:
		return StateExited
	case s.index != nil:
		return StateLoaded
	default:
		return StateNoData
	}
}

// Index returns the loaded index, or nil before the first successful load.
func (s *Session) Index() *pointset.Index { return s.index }

// Dispatch runs cmd. parseErr is the error Parse returned alongside cmd; it
// is reported only after the loaded-data precondition has been checked.
func (s *Session) Dispatch(cmd Command, parseErr error) error {
	if needsIndex(cmd) && s.index == nil {
		return ErrNoData
	}
	if parseErr != nil {
		return parseErr
	}

	switch c := cmd.(type) {
	case LoadCmd:
		return s.load(c)
	case QueryCmd:
		return s.query(c)
	case InfoCmd:
		s.info()
		return nil
	case PlotCmd:
		return s.plot(c)
	case HelpCmd:
		s.help()
		return nil
	case ExitCmd:
		s.exited = true
		fmt.Fprintln(s.out, "bye")
		return nil
	case EmptyCmd:
		return nil
	case UnknownCmd:
		fmt.Fprintf(s.out, "unknown command %q; commands: load, union, intersection, difference, info, plot, help, exit\n", c.Verb)
		return nil
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

// Execute parses and dispatches a single input line.
func (s *Session) Execute(line string) error {
	cmd, err := Parse(line)
	return s.Dispatch(cmd, err)
}

func (s *Session) load(c LoadCmd) error {
	idx, err := pointset.Load(s.fs, c.PathA, c.PathB)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	s.index = idx

	stats := idx.Stats()
	fmt.Fprintf(s.out, "loaded %s distinct points (%s: %s records, %s; %s: %s records, %s)\n",
		humanize.Comma(int64(idx.Len())),
		stats.A.Path, humanize.Comma(int64(stats.A.Records)), humanize.Bytes(uint64(stats.A.Bytes)),
		stats.B.Path, humanize.Comma(int64(stats.B.Records)), humanize.Bytes(uint64(stats.B.Bytes)))
	return nil
}

func (s *Session) query(c QueryCmd) error {
	points := c.Query.Apply(s.index)
	n, err := pointset.Write(s.fs, c.Out, points)
	if err != nil {
		return fmt.Errorf("%s failed: %w", c.Query, err)
	}
	monitoring.Logf("%s on load %s: %d points -> %s", c.Query, s.index.ID(), n, c.Out)
	fmt.Fprintf(s.out, "%s: wrote %s points to %s\n", c.Query, humanize.Comma(int64(n)), c.Out)
	return nil
}

func (s *Session) info() {
	sum := pointset.Summarize(s.index)
	fmt.Fprintf(s.out, "load %s\n", sum.ID)
	fmt.Fprintf(s.out, "  %s: %s lines, %s records, %s skipped\n", sum.Stats.A.Path,
		humanize.Comma(int64(sum.Stats.A.Lines)), humanize.Comma(int64(sum.Stats.A.Records)), humanize.Comma(int64(sum.Stats.A.Skipped)))
	fmt.Fprintf(s.out, "  %s: %s lines, %s records, %s skipped\n", sum.Stats.B.Path,
		humanize.Comma(int64(sum.Stats.B.Lines)), humanize.Comma(int64(sum.Stats.B.Records)), humanize.Comma(int64(sum.Stats.B.Skipped)))
	fmt.Fprintf(s.out, "  points: %s total, %s in both, %s only in A, %s only in B\n",
		humanize.Comma(int64(sum.Total)), humanize.Comma(int64(sum.Shared)), humanize.Comma(int64(sum.OnlyA)), humanize.Comma(int64(sum.OnlyB)))
	if sum.Total > 0 {
		fmt.Fprintf(s.out, "  bounds: x [%s, %s], y [%s, %s]\n",
			pointset.FormatCoord(sum.MinX), pointset.FormatCoord(sum.MaxX),
			pointset.FormatCoord(sum.MinY), pointset.FormatCoord(sum.MaxY))
		fmt.Fprintf(s.out, "  centroid: (%s, %s)\n", pointset.FormatCoord(sum.CentroidX), pointset.FormatCoord(sum.CentroidY))
	}
}

func (s *Session) plot(c PlotCmd) error {
	opts := pointset.PlotOptions{
		Title:  s.cfg.GetPlotTitle(),
		Width:  vg.Length(s.cfg.GetPlotWidthInches()) * vg.Inch,
		Height: vg.Length(s.cfg.GetPlotHeightInches()) * vg.Inch,
	}
	if err := pointset.Plot(s.fs, c.Out, s.index, opts); err != nil {
		return fmt.Errorf("plot failed: %w", err)
	}
	fmt.Fprintf(s.out, "plot: wrote %s points to %s\n", humanize.Comma(int64(s.index.Len())), c.Out)
	return nil
}

func (s *Session) help() {
	fmt.Fprintln(s.out, "commands:")
	for _, u := range []string{usageLoad, usageUnion, usageIntersection, usageDifference, "info", usagePlot, "help", "exit"} {
		fmt.Fprintf(s.out, "  %s\n", u)
	}
}

// report prints err for the user. Usage errors are shown as-is, everything
// else with an "error:" prefix.
func (s *Session) report(err error) {
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(s.out, usage.Error())
		return
	}
	fmt.Fprintf(s.out, "error: %v\n", err)
}
