// Package main provides the CLI entry point for designlibre.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/designlibre/pkg/adapters/logger"
	"github.com/user/designlibre/pkg/backend"
	"github.com/user/designlibre/pkg/command"
	"github.com/user/designlibre/pkg/config"
	"github.com/user/designlibre/pkg/ports"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Globals

	Read     ReadCmd
	Write    WriteCmd
	Fonts    FontsCmd
	FontInfo FontInfoCmd
	Preview  PreviewCmd
	Serve    ServeCmd
	Stdio    StdioCmd
	Version  VersionCmd
}

// Globals holds the options shared by every subcommand and the streams
// the app was built with.
type Globals struct {
	Config   string
	LogLevel string
	Quiet    bool
	Root     string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

var version = "dev"

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI with explicit streams so tests can drive it.
func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	c := &CLI{Globals: Globals{in: in, out: out, errOut: errOut}}
	g := &c.Globals

	return &cli.App{
		Name:      "designlibre",
		Usage:     l10n.T("Native backend for the designlibre editor"),
		Version:   version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       l10n.T("YAML configuration file"),
				EnvVars:     []string{"DESIGNLIBRE_CONFIG"},
				Destination: &g.Config,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Aliases:     []string{"l"},
				Usage:       l10n.T("Log level (debug, info, warn, error)"),
				Destination: &g.LogLevel,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Aliases:     []string{"q"},
				Usage:       l10n.T("Suppress all log output"),
				Destination: &g.Quiet,
			},
			&cli.StringFlag{
				Name:        "root",
				Usage:       l10n.T("Confine design file paths to this directory"),
				Destination: &g.Root,
			},
		},
		Commands: []*cli.Command{
			c.Read.command(g),
			c.Write.command(g),
			c.Fonts.command(g),
			c.FontInfo.command(g),
			c.Preview.command(g),
			c.Serve.command(g),
			c.Stdio.command(g),
			c.Version.command(g),
		},
	}
}

// session is what every subcommand needs: the merged configuration, a
// logger and the command registry.
type session struct {
	cfg config.Config
	log ports.Logger
	reg *command.Registry
}

// loadConfig reads --config over the defaults and applies flag overrides.
func (g *Globals) loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if g.Config != "" {
		loaded, err := config.LoadFromFile(g.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Quiet {
		cfg.LogLevel = "quiet"
	}
	if g.Root != "" {
		cfg.Root = g.Root
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// newSession builds the services. Logs always go to the error stream
// because stdout carries command results or bridge frames.
func (g *Globals) newSession() (*session, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	var log ports.Logger
	if cfg.LogLevel == "quiet" {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(cfg.Level(), g.errOut, g.errOut)
	}

	services := backend.Build(cfg, log)
	return &session{
		cfg: cfg,
		log: log,
		reg: backend.NewRegistry(services, log),
	}, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
