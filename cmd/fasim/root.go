package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the settings resolved before any subcommand runs.
var app = struct {
	cfg    config.Config
	logger *slog.Logger
}{
	cfg:    config.Default(),
	logger: logging.New(slog.LevelInfo),
}

var rootCmd = &cobra.Command{
	Use:   "fasim",
	Short: "fasim is a deterministic finite automaton simulator",
	Long: `fasim reads a finite automaton described as delimited transition lines,
prints its transition table and replays simulations against it.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		app.logger.Error("fasim failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("delimiter", "", "Field delimiter of description lines")
	rootCmd.PersistentFlags().Bool("trim-space", false, "Trim spaces around every field")
	rootCmd.PersistentFlags().String("color", "", "Colour mode: auto, always or never")
}

func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	required := path != ""
	if !required {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("trim-space") {
		cfg.TrimSpace, _ = flags.GetBool("trim-space")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	app.cfg = cfg
	app.logger = logger
	return nil
}

// addAutomatonFlag registers the -a/--automaton source flag on cmd.
func addAutomatonFlag(cmd *cobra.Command, required bool) {
	cmd.Flags().StringP("automaton", "a", "", "Automaton description source (path, file://, redis:name or redis://host:port/db#name)")
	if required {
		_ = cmd.MarkFlagRequired("automaton")
	}
}
