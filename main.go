// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Portfolio serves a localized personal portfolio site and its content as JSON.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/core/audit"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/assets"
	"codeberg.org/myosh4423/portfolio/server/middleware/limiter"
	"codeberg.org/myosh4423/portfolio/server/router"
	"codeberg.org/myosh4423/portfolio/server/template"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

var (
	errChmodSocket = errors.New("failed to change unix socket permissions")
	errChownSocket = errors.New("failed to change unix socket ownership")
)

// embeddedContent holds our static web server content and the gettext catalogues.
//
//go:embed assets/css assets/icons assets/img assets/robots.txt
//go:embed po
var embeddedContent embed.FS

//nolint:gochecknoinits // assets.FS must be set before any package reads it
func init() {
	assets.FS = embeddedContent
}

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// setup loads the configuration and everything the handlers read at run time.
func setup() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := i18n.Setup(); err != nil {
		return fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	if err := template.LoadIcons(assets.FS, "assets/icons"); err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}

	// Every icon key used by the content table must have an SVG.
	if err := template.CheckIcons(); err != nil {
		return fmt.Errorf("icon check failed: %w", err)
	}

	return nil
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	if err := setup(); err != nil {
		return err
	}

	router := router.NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware()

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	listener, err := chooseListener()
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		return nil
	})

	err = g.Wait()

	if config.Global.Limiter.Enabled {
		limiter.Fini()
	}

	if err != nil {
		return err
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

func chooseListener() (net.Listener, error) {
	// Check if we should use a Unix domain socket
	if config.Global.Basic.UnixSocket != "" {
		unixAddr := config.Global.Basic.UnixSocket

		unixListener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", unixAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", unixAddr, err)
		}

		if err = setupSocket(); err != nil {
			_ = unixListener.Close()

			return nil, err
		}

		log.Info().
			Str("address", unixAddr).
			Msg("Listening on Unix domain socket")

		return unixListener, nil
	}

	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	log.Info().
		Str("address", addr).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}

func setupSocket() error {
	cfg := config.Global.Basic

	uid, gid := -1, -1

	var err error

	if cfg.UnixSocketUser != "" {
		uid, err = parseUserOrGroupID(cfg.UnixSocketUser, "user")
		if err != nil {
			return err
		}
	}

	if cfg.UnixSocketGroup != "" {
		gid, err = parseUserOrGroupID(cfg.UnixSocketGroup, "group")
		if err != nil {
			return err
		}
	}

	if uid != -1 || gid != -1 {
		if err := os.Chown(cfg.UnixSocket, uid, gid); err != nil {
			return fmt.Errorf("%w: %w", errChownSocket, err)
		}
	}

	if err := os.Chmod(cfg.UnixSocket, cfg.UnixSocketPermissions); err != nil {
		return fmt.Errorf("%w: %w", errChmodSocket, err)
	}

	return nil
}

// parseUserOrGroupID resolves a numeric ID or a user/group name ("user" or "group" kind).
func parseUserOrGroupID(value, kind string) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}

	var idStr string

	if kind == "user" {
		u, err := user.Lookup(value)
		if err != nil {
			return -1, fmt.Errorf("failed to lookup user '%s': %w", value, err)
		}

		idStr = u.Uid
	} else {
		g, err := user.LookupGroup(value)
		if err != nil {
			return -1, fmt.Errorf("failed to lookup group '%s': %w", value, err)
		}

		idStr = g.Gid
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return -1, fmt.Errorf("failed to parse %s ID from looked-up value '%s': %w", kind, value, err)
	}

	return id, nil
}
