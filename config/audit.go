// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o644

// setupAudit reconfigures the global logger from cfg.Log.
func (cfg *ServerConfig) setupAudit() {
	zerolog.SetGlobalLevel(cfg.logLevel())

	writers := []io.Writer{}

	for _, output := range cfg.Log.Outputs {
		var f *os.File

		switch output {
		case "/dev/stdout":
			f = os.Stdout
		case "/dev/stderr":
			f = os.Stderr
		default:
			file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

				continue
			}

			f = file
		}

		if cfg.Log.Format == "json" {
			writers = append(writers, f)
		} else {
			writers = append(writers, ConsoleWriter(f))
		}
	}

	if len(writers) == 0 {
		writers = append(writers, ConsoleWriter(os.Stderr))
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

// logLevel maps Log.Level to a zerolog level. Development mode always logs debug.
func (cfg *ServerConfig) logLevel() zerolog.Level {
	if cfg.Development.InDevelopment {
		return zerolog.DebugLevel
	}

	switch cfg.Log.Level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a writer for zerolog that has NoColor:isTerminal(f).
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isTerminal(f)

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// pretty print request logs
			if sys, ok := m["sys"]; ok && sys == "http" {
				m["message"] = fmt.Sprintf("[%v] %v %-5v %v", m["locale"], m["status_code"], m["method"], m["url"])
				delete(m, "sys")
				delete(m, "method")
				delete(m, "status_code")
				delete(m, "url")
				delete(m, "destination")
				delete(m, "request_id")
				delete(m, "locale")
			}

			return nil
		}
	}

	return w
}
