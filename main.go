package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"nube/internal"
)

// Values swapped in by go-releaser at build time
var (
	version = "dev"
)

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to config file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info)")

	flag.Parse()

	// init DebugBuffer
	db := &internal.DebugBuffer{}

	logHandler := log.New(db)

	// Force color output for logger.
	// By default, the charm logger package disables color for non-TTY.
	logHandler.SetColorProfile(termenv.TrueColor)
	logHandler.SetLevel(logLevels[*logLevel])

	logger := slog.New(logHandler)
	logger.Info("Started nube", "Version", version)

	model := internal.NewModel(*configPath, logger, db)
	if err := model.Start(); err != nil {
		logger.Error("Application error", "err", err)
		os.Exit(1)
	}
}

// defaultConfigPath puts the config in the user config dir, falling back to
// the working directory when that is unavailable.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "nube-config.yaml"
	}
	return filepath.Join(dir, "nube", "config.yaml")
}
