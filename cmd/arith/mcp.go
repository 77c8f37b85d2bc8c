package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arith/internal/config"
	"arith/internal/mcp"
	"arith/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the calculator as MCP tools",
	Long: `Start a Model Context Protocol server exposing add, subtract, multiply,
divide and apply_specialized.

The server speaks over stdio unless a port is configured, in which case it
serves the streamable HTTP transport.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if settings.MetricsPort > 0 {
			addr := fmt.Sprintf(":%d", settings.MetricsPort)
			go func() {
				if err := telemetry.StartMetricsServer(ctx, addr, appMetrics.Handler()); err != nil {
					telemetry.LogError("Metrics server failed", err, "addr", addr)
				}
			}()
		}

		srv := mcp.NewServer(calc, appMetrics, nil, version)
		if settings.MCPPort > 0 {
			return srv.ServeHTTP(ctx, fmt.Sprintf(":%d", settings.MCPPort))
		}
		return srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	mcpCmd.Flags().Int("port", 0, "Serve streamable HTTP on this port instead of stdio")
	viper.BindPFlag(config.KeyMCPPort, mcpCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(mcpCmd)
}

