package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"webaudit/internal/analyzer"
	"webaudit/internal/config"
	"webaudit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Runs one comprehensive analysis and prints the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a := analyzer.New(getEngine(cfg))

			analysis, err := a.Analyze(ctx, args[0])
			if err != nil {
				logger.Error(ctx, "analysis failed", zap.Error(err))

				return fmt.Errorf("could not analyze %s: %w", args[0], err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(analysis); err != nil {
				return fmt.Errorf("could not encode analysis: %w", err)
			}

			return nil
		},
	}

	return cmd
}
