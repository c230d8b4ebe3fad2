// Command pointset loads two point files and answers union, intersection
// and difference queries over them interactively.
package main

import (
	"io"
	"log"
	"os"

	"github.com/banshee-data/pointset/internal/config"
	"github.com/banshee-data/pointset/internal/fsutil"
	"github.com/banshee-data/pointset/internal/monitoring"
	"github.com/banshee-data/pointset/internal/repl"
)

func main() {
	if err := run(fsutil.OSFileSystem{}, config.DefaultConfigPath, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("pointset: %v", err)
	}
}

// run loads the session config from configPath, applies it and runs the
// command loop until exit or end of input.
func run(fsys fsutil.FileSystem, configPath string, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadOrDefault(fsys, configPath)
	if err != nil {
		monitoring.Logf("ignoring %s: %v", configPath, err)
	}
	monitoring.Quiet(cfg.GetQuiet())

	session := repl.NewSession(fsys, cfg, out)
	return repl.Run(in, session)
}
