// Package main provides the CLI entrypoint for the website audit service.
// It wires subcommands (serve, analyze), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"webaudit/internal/config"
	"webaudit/pkg/auditor"
	"webaudit/pkg/auditor/pagespeed"
	"webaudit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getEngine creates the audit engine client from configuration values. The
// HTTP client timeout is the engine's own timeout budget; the analysis
// orchestrator never enforces one on top of it.
func getEngine(cfg *config.Config) auditor.Engine {
	return pagespeed.New(
		&http.Client{Timeout: cfg.Engine.Timeout},
		pagespeed.Options{
			BaseURL:  cfg.Engine.BaseURL,
			APIKey:   cfg.Engine.APIKey,
			Strategy: cfg.Engine.Strategy,
		},
	)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "webaudit",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		analyzeCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
