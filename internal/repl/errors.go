package repl

import (
	"errors"
	"fmt"
)

// ErrNoData is returned for queries issued before any successful load.
var ErrNoData = errors.New("no point data loaded; run 'load <file1> <file2>' first")

// UsageError reports a command given too few arguments.
type UsageError struct {
	Verb  string
	Usage string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}
