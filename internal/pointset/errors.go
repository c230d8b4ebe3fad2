package pointset

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileAccessError reports an input file that could not be read or an output
// path that could not be written. The underlying cause is available through
// errors.Unwrap.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	// *fs.PathError already names the op and path
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
