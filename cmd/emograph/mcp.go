package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nvandessel/emograph/internal/mcp"
	"github.com/nvandessel/emograph/internal/telemetry"
)

func newMCPServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Run emograph as an MCP (Model Context Protocol) server",
		Long: `Start an MCP server that exposes emograph over stdio.

Tools:

  • emograph_analyze - Detect emotions in text and suggest verses
  • emograph_rank    - Rank emotions from raw intensity and tone scores
  • emograph_verses  - Recommend verses for an emotion

The server communicates via JSON-RPC 2.0 over stdin/stdout. Logs go to
stderr. With --metrics-addr, Prometheus metrics are served on /metrics.

Example client config:

  {
    "mcpServers": {
      "emograph": {
        "command": "emograph",
        "args": ["mcp-server"]
      }
    }
  }
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if metricsAddr == "" {
				metricsAddr = e.cfg.Metrics.Addr
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:    "emograph",
				Version: version,
				Advisor: e.advisor("mcp"),
				Logger:  e.logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				go func() {
					if err := telemetry.Serve(ctx, metricsAddr, e.registry, e.logger); err != nil {
						e.logger.Error("metrics server stopped", "error", err)
					}
				}()
			}

			// Blocks until the client disconnects or SIGTERM/SIGINT.
			if err := server.Run(ctx); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")

	return cmd
}
