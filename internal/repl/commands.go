// Package repl implements the interactive command loop: it parses input lines
// into commands, runs them against an explicit Session and reports results.
package repl

import (
	"strings"

	"github.com/banshee-data/pointset/internal/pointset"
)

// Command is one parsed input line. The set of implementations is closed:
// LoadCmd, QueryCmd, InfoCmd, PlotCmd, HelpCmd, ExitCmd, EmptyCmd and
// UnknownCmd.
type Command interface {
	isCommand()
}

// LoadCmd reads two point files into a fresh index.
type LoadCmd struct {
	PathA, PathB string
}

// QueryCmd runs a set query and writes the result to Out.
type QueryCmd struct {
	Query Query
	Out   string
}

// InfoCmd prints a summary of the loaded index.
type InfoCmd struct{}

// PlotCmd renders the loaded index to an image file.
type PlotCmd struct {
	Out string
}

// HelpCmd prints the command list.
type HelpCmd struct{}

// ExitCmd ends the session.
type ExitCmd struct{}

// EmptyCmd is a blank input line.
type EmptyCmd struct{}

// UnknownCmd is an unrecognised verb.
type UnknownCmd struct {
	Verb string
}

func (LoadCmd) isCommand()    {}
func (QueryCmd) isCommand()   {}
func (InfoCmd) isCommand()    {}
func (PlotCmd) isCommand()    {}
func (HelpCmd) isCommand()    {}
func (ExitCmd) isCommand()    {}
func (EmptyCmd) isCommand()   {}
func (UnknownCmd) isCommand() {}

// Query selects one of the set operations.
type Query int

const (
	QueryUnion Query = iota
	QueryIntersection
	QueryDifference
)

func (q Query) String() string {
	switch q {
	case QueryUnion:
		return "union"
	case QueryIntersection:
		return "intersection"
	case QueryDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// Apply runs the query against idx.
func (q Query) Apply(idx *pointset.Index) []pointset.Point {
	switch q {
	case QueryIntersection:
		return pointset.Intersection(idx)
	case QueryDifference:
		return pointset.Difference(idx)
	default:
		return pointset.Union(idx)
	}
}

const (
	usageLoad         = "load <file1> <file2>"
	usageUnion        = "union <outfile>"
	usageIntersection = "intersection <outfile>"
	usageDifference   = "difference <outfile>"
	usagePlot         = "plot <outfile.png>"
)

var queryUsage = map[Query]string{
	QueryUnion:        usageUnion,
	QueryIntersection: usageIntersection,
	QueryDifference:   usageDifference,
}

// Parse turns an input line into a Command. The verb is case-insensitive and
// surplus arguments are ignored. When arguments are missing Parse still
// returns the verb's command, with empty fields, together with a
// *UsageError, so the caller can check preconditions before reporting usage.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return EmptyCmd{}, nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "load":
		if len(args) < 2 {
			return LoadCmd{}, &UsageError{Verb: verb, Usage: usageLoad}
		}
		return LoadCmd{PathA: args[0], PathB: args[1]}, nil
	case "union", "intersection", "intersect", "difference":
		q := queryFor(verb)
		if len(args) < 1 {
			return QueryCmd{Query: q}, &UsageError{Verb: verb, Usage: queryUsage[q]}
		}
		return QueryCmd{Query: q, Out: args[0]}, nil
	case "info":
		return InfoCmd{}, nil
	case "plot":
		if len(args) < 1 {
			return PlotCmd{}, &UsageError{Verb: verb, Usage: usagePlot}
		}
		return PlotCmd{Out: args[0]}, nil
	case "help", "?":
		return HelpCmd{}, nil
	case "exit", "quit":
		return ExitCmd{}, nil
	default:
		return UnknownCmd{Verb: fields[0]}, nil
	}
}

func queryFor(verb string) Query {
	switch verb {
	case "intersection", "intersect":
		return QueryIntersection
	case "difference":
		return QueryDifference
	default:
		return QueryUnion
	}
}

// needsIndex reports whether cmd can only run once data is loaded.
func needsIndex(cmd Command) bool {
	switch cmd.(type) {
	case QueryCmd, InfoCmd, PlotCmd:
		return true
	default:
		return false
	}
}
