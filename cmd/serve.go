package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/mobile-cli/internal/server"
	"github.com/mj1618/mobile-cli/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing mobile-cli tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the device
commands as tools. AI agents can call tools directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  mobile-cli serve
  mobile-cli serve --transport streamable-http --port 8080
  mobile-cli serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Element cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		Version:   version.Version,
	}

	return server.New(app.provider, cfg, app.log).Serve(cfg)
}
