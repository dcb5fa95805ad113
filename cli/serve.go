package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canvasflow/canvasflow/engine/infra/server"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/pkg/config"
	"github.com/canvasflow/canvasflow/pkg/logger"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the canvas editing API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := buildLogger(cmd, cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				seed, err := cmd.Flags().GetString("seed")
				if err != nil {
					return fmt.Errorf("failed to read seed flag: %w", err)
				}
				cfg.Workflow.SeedPath = seed
			}
			graph, err := seedGraph(cfg, log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, log, graph).Run(ctx)
		},
	}
	cmd.Flags().String("seed", "", "workflow definition file to seed the canvas from")
	return cmd
}

func buildLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, error) {
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		flagLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return nil, fmt.Errorf("failed to read log-level flag: %w", err)
		}
		level = logger.LogLevel(flagLevel)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to read log-json flag: %w", err)
	}
	return logger.NewLogger(&logger.Config{
		Level:      level,
		JSON:       logJSON || cfg.Log.JSON,
		TimeFormat: "15:04:05",
	}), nil
}

// seedGraph builds the initial canvas: either the configured definition file
// or a bare graph holding only the start node.
func seedGraph(cfg *config.Config, log logger.Logger) (*workflow.Graph, error) {
	if cfg.Workflow.SeedPath == "" {
		g := workflow.NewGraph()
		if err := g.AddNode(workflow.NewStartNode("start", "Start", workflow.Position{})); err != nil {
			return nil, err
		}
		return g, nil
	}
	def, err := workflow.LoadDefinition(cfg.Workflow.SeedPath)
	if err != nil {
		return nil, err
	}
	g, err := def.Build()
	if err != nil {
		return nil, err
	}
	log.Info("seeded workflow", "name", def.Name, "nodes", g.Len())
	return g, nil
}
