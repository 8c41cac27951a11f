// Package main implements the jira-mcp server binary.
//
// jira-mcp exposes a Jira instance over the Model Context Protocol: field
// definition resources per entity type, and tools for issue retrieval,
// JQL search, field path validation, and custom field discovery.
//
// Configuration is loaded from an optional YAML file plus JIRA_MCP_*
// environment variables. See internal/config for details.
//
// Usage:
//
//	# Start on stdio with env configuration
//	JIRA_MCP_JIRA_BASE_URL=https://example.atlassian.net jira-mcp serve
//
//	# Start with a config file
//	jira-mcp serve --config /etc/jira-mcp/config.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/config"
	"github.com/meridian-labs/jira-mcp/internal/jira"
	"github.com/meridian-labs/jira-mcp/internal/logging"
	"github.com/meridian-labs/jira-mcp/internal/mcp"
	"github.com/meridian-labs/jira-mcp/internal/resolver"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// configPath is the optional YAML config file path
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jira-mcp",
	Short: "MCP server exposing Jira issues, search, and field metadata",
	Long: `jira-mcp is a Model Context Protocol server for Jira.

It serves field definition resources for the supported entity types and
tools for issue retrieval, JQL search, field path validation, and dynamic
custom field discovery, all over the stdio transport.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server on the stdio transport.

Examples:
  # Configure via environment
  JIRA_MCP_JIRA_BASE_URL=https://example.atlassian.net jira-mcp serve

  # Configure via file, override via environment
  JIRA_MCP_LOGGING_LEVEL=debug jira-mcp serve --config config.yaml`,
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jira-mcp\n")
		fmt.Printf("Version:    %s\n", version)
		fmt.Printf("Commit:     %s\n", gitCommit)
		fmt.Printf("Build Date: %s\n", buildDate)
	},
}

// runServe starts the MCP server and blocks until the context is cancelled.
//
// Initialization order:
//  1. Load and validate configuration
//  2. Build the logger (stderr; stdout belongs to the transport)
//  3. Create the Jira client
//  4. Create the field resolver (static or hybrid per configuration)
//  5. Wire the MCP server and run it on stdio
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
		cancel()
	}()

	logger.Info("starting jira-mcp",
		zap.String("version", version),
		zap.String("base_url", cfg.Jira.BaseURL),
		zap.Bool("dynamic_fields", cfg.Fields.EnableDynamic))

	client, err := jira.NewClient(jira.Config{
		BaseURL:           cfg.Jira.BaseURL,
		Email:             cfg.Jira.Email,
		APIToken:          cfg.Jira.APIToken.Value(),
		Timeout:           cfg.Jira.Timeout,
		MaxRetries:        cfg.Jira.MaxRetries,
		RequestsPerSecond: cfg.Jira.RequestsPerSecond,
	}, logger)
	if err != nil {
		return fmt.Errorf("create Jira client: %w", err)
	}

	fieldResolver, err := resolver.New(resolver.Config{
		EnableDynamic: cfg.Fields.EnableDynamic,
		CacheTTL:      cfg.Fields.CacheTTL,
		CacheMaxSize:  cfg.Fields.CacheMaxSize,
		Logger:        logger,
	}, client)
	if err != nil {
		return fmt.Errorf("create field resolver: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Config{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
		Logger:  logger,
	}, fieldResolver, client)
	if err != nil {
		return fmt.Errorf("create MCP server: %w", err)
	}

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
