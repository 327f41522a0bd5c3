package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"doorview/internal/app"
	"doorview/internal/config"
	"doorview/internal/logger"
	"doorview/internal/ui"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	var chdirErr error
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			chdirErr = os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	flag.Parse()

	if err := run(*configPath, chdirErr); err != nil {
		fmt.Fprintln(os.Stderr, "doorview:", err)
		os.Exit(1)
	}
}

func run(configPath string, chdirErr error) error {
	cfg, cfgErr := config.Load(configPath)
	log := logger.New(cfg.Log.File, cfg.LogLevel())
	defer log.Close()

	logChdir(log, chdirErr)
	if cfgErr != nil {
		log.Warnf("using defaults: %v", cfgErr)
	}
	writeDefaultConfig(configPath, cfg, log)

	if !ui.ConfigureLocale(cfg.Locale.Dir, cfg.Locale.Language) {
		log.Debugf("no translations for %s in %s", cfg.Locale.Language, cfg.Locale.Dir)
	}

	a, err := app.New(cfg, log)
	if err != nil {
		log.Errorf("%v", err)
		return err
	}
	if err := a.Run(); err != nil {
		log.Errorf("%v", err)
		return err
	}
	log.Infof("window closed")
	return nil
}

// logChdir reports a failed switch to the executable's directory; relative
// paths such as config.DefaultPath then resolve against the launch directory.
func logChdir(log *logger.Logger, err error) {
	if err == nil {
		return
	}
	wd, _ := os.Getwd()
	log.Debugf("staying in %s: %v", wd, err)
}

// writeDefaultConfig saves cfg to path when no file exists there yet, so the
// settings can be edited for the next run.
func writeDefaultConfig(path string, cfg config.Config, log *logger.Logger) {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := config.Save(path, cfg); err != nil {
		log.Warnf("write default config: %v", err)
		return
	}
	log.Infof("wrote default config to %s", path)
}
