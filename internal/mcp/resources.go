package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// registerResources registers one field-definition resource per entity type.
func (s *Server) registerResources() {
	for _, uri := range s.resolver.URIs() {
		uri := uri
		s.mcp.AddResource(&mcp.Resource{
			URI:         uri,
			Name:        resourceName(uri),
			Description: fmt.Sprintf("Field definitions for %s", resourceName(uri)),
			MIMEType:    "application/json",
		}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return s.readFieldResource(ctx, req.Params.URI)
		})
	}
}

func (s *Server) readFieldResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	def, err := s.resolver.Read(ctx, uri)
	if err != nil {
		s.logger.Warn("resource read failed", zap.String("uri", uri), zap.Error(err))
		return nil, err
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal field definition: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// resourceName derives a human-readable name from a resource URI, e.g.
// "jira://issue/fields" becomes "issue fields".
func resourceName(uri string) string {
	trimmed := strings.TrimPrefix(uri, "jira://")
	return strings.ReplaceAll(trimmed, "/", " ")
}
