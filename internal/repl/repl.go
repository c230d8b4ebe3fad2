package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/banshee-data/pointset/internal/monitoring"
	"github.com/banshee-data/pointset/internal/version"
)

// Run reads commands from in until an exit command or end of input, running
// each against s. Command failures are reported and the loop continues; only
// a failure reading in is returned.
func Run(in io.Reader, s *Session) error {
	fmt.Fprintf(s.out, "pointset %s\n", version.String())
	s.help()

	scanner := bufio.NewScanner(in)
	for s.State() != StateExited {
		fmt.Fprint(s.out, s.cfg.GetPrompt())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			fmt.Fprintln(s.out)
			return nil
		}
		if err := s.Execute(scanner.Text()); err != nil {
			monitoring.Logf("command %q: %v", scanner.Text(), err)
			s.report(err)
		}
	}
	return nil
}
