// Package config handles application configuration and setup
package config

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// PrintBanner prints application version information
func PrintBanner(w io.Writer, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	_, _ = fmt.Fprintln(w, "[--------------------------------------]")
	_, _ = fmt.Fprintln(w, "[ retrochip8 - CHIP-8 interpreter core ]")
	_, _ = fmt.Fprintf(w, "[--------------------------------------]\n\n")
	_, _ = fmt.Fprintf(w, "version: %s\n\n", buildinfo.Version(version, commit, date))
}
