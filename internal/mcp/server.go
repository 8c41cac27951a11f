// Package mcp wires the field resolver and the Jira client into an MCP
// server exposing tools and resources over the stdio transport.
//
// This implementation uses the MCP SDK (github.com/modelcontextprotocol/go-sdk/mcp).
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/jira"
	"github.com/meridian-labs/jira-mcp/internal/resolver"
)

// IssueClient is the subset of the Jira client the tools need.
type IssueClient interface {
	GetIssue(ctx context.Context, key string, fields []string) (map[string]any, error)
	SearchIssues(ctx context.Context, jql string, fields []string, maxResults int) (*jira.SearchResult, error)
}

// Server is the jira-mcp MCP server.
type Server struct {
	mcp      *mcp.Server
	resolver resolver.FieldResolver
	issues   IssueClient
	metrics  *Metrics
	logger   *zap.Logger
}

// Config configures the MCP server.
type Config struct {
	// Name is the server implementation name (default: "jira-mcp").
	Name string

	// Version is the server version (default: "dev").
	Version string

	// Logger for structured logging.
	Logger *zap.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "jira-mcp",
		Version: "dev",
		Logger:  zap.NewNop(),
	}
}

// NewServer creates a new MCP server with the given collaborators.
func NewServer(cfg *Config, fieldResolver resolver.FieldResolver, issues IssueClient) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if fieldResolver == nil {
		return nil, fmt.Errorf("field resolver is required")
	}
	if issues == nil {
		return nil, fmt.Errorf("issue client is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		nil,
	)

	s := &Server{
		mcp:      mcpServer,
		resolver: fieldResolver,
		issues:   issues,
		metrics:  NewMetrics(cfg.Logger),
		logger:   cfg.Logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport")
	transport := &mcp.StdioTransport{}
	if err := s.mcp.Run(ctx, transport); err != nil {
		return fmt.Errorf("server run failed: %w", err)
	}
	return nil
}
