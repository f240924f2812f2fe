package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitdock/gitdock/internal/config"
	"github.com/gitdock/gitdock/internal/gitcmd"
	"github.com/gitdock/gitdock/internal/ops"
	"github.com/gitdock/gitdock/internal/output"
)

// runtimeEnv ties together everything a command needs to execute an
// operation: the service, the resolved operation context, and a printer for
// the chosen output mode.
type runtimeEnv struct {
	svc     *ops.Service
	oc      ops.Context
	printer *output.Printer
	cfg     config.Config
}

// newRuntimeEnv resolves config, flags, and the target repository for a
// command invocation. Flags override config values; config fills the gaps.
func newRuntimeEnv(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, output.NewSystemError(err.Error())
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.DefaultDir
	}
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return nil, output.NewSystemError(err.Error())
		}
	}

	gitBin, _ := cmd.Flags().GetString("git-bin")
	if gitBin == "" {
		gitBin = cfg.GitBin
	}

	log := newLogger(cmd, cfg)
	runner := gitcmd.NewExecRunner(gitBin, log)

	jsonMode := isJSONMode(cmd)
	colorMode, _ := cmd.Flags().GetString("color")
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).WithStderr(cmd.ErrOrStderr())

	return &runtimeEnv{
		svc:     ops.NewService(runner, log),
		oc:      ops.Context{Dir: dir, Tenant: cfg.Tenant},
		printer: printer,
		cfg:     cfg,
	}, nil
}

// newLogger builds the stderr logger. --verbose forces debug; otherwise the
// configured level applies, defaulting to info.
func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// fail prints the error and returns the coded variant so the process exits
// with the right status.
func (e *runtimeEnv) fail(err error) error {
	exitErr := output.FromGit(err)
	e.printer.Error(exitErr)
	return exitErr
}
