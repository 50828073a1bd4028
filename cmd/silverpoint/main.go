// FILE: cmd/silverpoint/main.go
// Package main implements the silverpoint Lua interpreter: a Lua 5.2 host
// with the chess engine module preloaded.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"silverpoint/internal/binding"
	"silverpoint/internal/cli"
	"silverpoint/internal/config"
	"silverpoint/internal/host"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "silverpoint: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		code     = flag.String("e", "", "Run a Lua chunk and print its results")
		demo     = flag.Bool("demo", false, "Play the bundled terminal game")
		logLevel = flag.String("log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: silverpoint [-e code] [-demo] [-log-level level] [script.lua]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	binding.SetLogger(logger.Named("binding"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := host.New(host.WithLogger(logger.Named("host")))
	if err != nil {
		return err
	}
	defer h.Close()
	logger.Debug("interpreter ready", zap.String("host", h.ID().String()))

	stdinIsTerminal := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case *demo:
		return runDemo(ctx, h, os.Stdin, os.Stdout, cfg.DemoDepth)

	case *code != "":
		results, err := h.Exec(ctx, "-e", *code)
		if err != nil {
			return err
		}
		if len(results) > 0 {
			fmt.Println(strings.Join(results, "\t"))
		}
		return nil

	case flag.NArg() > 0:
		return h.ExecFile(ctx, flag.Arg(0))

	case stdinIsTerminal:
		return cli.Interactive(ctx, h, cli.Options{
			HistoryFile: cfg.HistoryFile,
			Color:       cfg.Color && stdoutIsTerminal,
		})

	default:
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		_, err = h.Exec(ctx, "stdin", string(source))
		return err
	}
}

// newLogger writes console-encoded logs to stderr at the given level
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.DisableStacktrace = level > zapcore.DebugLevel
	return zcfg.Build()
}
