package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yacobolo/cssmixin/internal/sheet"
)

// setupLogger routes library logging to stderr: debug level with --verbose,
// warnings only otherwise, nothing with --quiet.
func setupLogger() {
	if getBool("quiet", false) {
		sheet.SetLogger(nil)
		return
	}

	level := log.WarnLevel
	if getBool("verbose", false) {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "cssmixin",
	})
	sheet.SetLogger(slog.New(logger))
}
