package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alif-lang/als/internal/config"
	"github.com/alif-lang/als/internal/logging"
	"github.com/alif-lang/als/internal/server"
	"github.com/alif-lang/als/internal/transport"
)

// runServe is the root command's action: build the logger and config,
// then serve over stdio or a socket until the client disconnects or the
// process receives an interrupt.
func runServe(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	var logLevel string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ = cmd.Flags().GetString("log-level")
	}
	logFile, _ := cmd.Flags().GetString("log-file")
	cfg.ApplyOverrides(logLevel, logFile, -1, 0, 0)

	logger, err := buildLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer logger.Close()
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		Workers:  cfg.Pool.Workers,
		MaxQueue: cfg.Pool.MaxQueue,
		MaxItems: cfg.Completion.MaxItems,
	}

	socketPort, _ := cmd.Flags().GetInt("socket")

	var runErr error
	if socketPort > 0 {
		logger.Info("starting als over socket", logging.Fields{}.FInt("port", socketPort))
		runErr = server.StartSocket(ctx, socketPort, logger, opts)
	} else {
		logger.Info("starting als over stdio")
		stdin, stdout := transport.PrepareStdio()
		runErr = server.StartStdio(ctx, stdin, stdout, logger, opts)
	}

	if errors.Is(runErr, server.ErrExit) {
		return nil
	}
	if errors.Is(runErr, server.ErrExitWithoutShutdown) {
		return fmt.Errorf("exit received without a prior shutdown request")
	}
	return runErr
}

func buildLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	level := logging.ParseLevel(cfg.Server.LogLevel)
	sinks := []logging.Sink{logging.NewConsoleSink(os.Stderr, level, colorEnabled(cmd, os.Stderr))}

	if cfg.Server.LogFile != "" {
		fileSink, err := logging.NewFileSink(cfg.Server.LogFile, level)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sinks = append(sinks, fileSink)
	}

	return logging.New(sinks...), nil
}
