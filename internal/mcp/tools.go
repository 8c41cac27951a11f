package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/meridian-labs/jira-mcp/internal/fieldpath"
)

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	s.registerIssueTools()
	s.registerFieldTools()
}

// ===== ISSUE TOOLS =====

type issueGetInput struct {
	IssueKey string   `json:"issue_key" jsonschema:"required,Issue key (e.g. PROJ-123)"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Dot-notation field paths to return (e.g. assignee.displayName); all fields when omitted"`
}

type issueGetOutput struct {
	Key          string              `json:"key" jsonschema:"Issue key"`
	Fields       map[string]any      `json:"fields" jsonschema:"Issue fields, filtered to the requested paths"`
	InvalidPaths []string            `json:"invalid_paths,omitempty" jsonschema:"Requested paths that failed validation and were skipped"`
	Suggestions  map[string][]string `json:"suggestions,omitempty" jsonschema:"Similar known paths for each invalid path"`
}

type issueSearchInput struct {
	JQL        string   `json:"jql" jsonschema:"required,JQL query string"`
	Fields     []string `json:"fields,omitempty" jsonschema:"Dot-notation field paths to return per issue"`
	MaxResults int      `json:"max_results,omitempty" jsonschema:"Maximum issues to return (default: 50)"`
}

type issueSearchOutput struct {
	Total        int                 `json:"total" jsonschema:"Total matching issues"`
	Issues       []map[string]any    `json:"issues" jsonschema:"Matching issues, fields filtered to the requested paths"`
	InvalidPaths []string            `json:"invalid_paths,omitempty" jsonschema:"Requested paths that failed validation and were skipped"`
	Suggestions  map[string][]string `json:"suggestions,omitempty" jsonschema:"Similar known paths for each invalid path"`
}

func (s *Server) registerIssueTools() {
	// issue_get
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "issue_get",
		Description: "Get a Jira issue, optionally shaped to specific field paths",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args issueGetInput) (*mcp.CallToolResult, issueGetOutput, error) {
		start := time.Now()
		s.metrics.IncrementActive(ctx, "issue_get")
		var toolErr error
		defer func() {
			s.metrics.DecrementActive(ctx, "issue_get")
			s.metrics.RecordInvocation(ctx, "issue_get", time.Since(start), toolErr)
		}()

		paths, validation := s.resolveRequestedPaths(ctx, "issue", args.Fields)

		issue, err := s.issues.GetIssue(ctx, args.IssueKey, fieldpath.TopLevelFields(paths))
		if err != nil {
			toolErr = fmt.Errorf("issue get failed: %w", err)
			return nil, issueGetOutput{}, toolErr
		}

		result := issueGetOutput{
			Key:    args.IssueKey,
			Fields: projectIssueFields(issue, paths, len(args.Fields) > 0),
		}
		if validation != nil {
			result.InvalidPaths = validation.InvalidPaths
			result.Suggestions = validation.Suggestions
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Issue %s retrieved", args.IssueKey)},
			},
		}, result, nil
	})

	// issue_search
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "issue_search",
		Description: "Search Jira issues with JQL, optionally shaping each result to specific field paths",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args issueSearchInput) (*mcp.CallToolResult, issueSearchOutput, error) {
		start := time.Now()
		s.metrics.IncrementActive(ctx, "issue_search")
		var toolErr error
		defer func() {
			s.metrics.DecrementActive(ctx, "issue_search")
			s.metrics.RecordInvocation(ctx, "issue_search", time.Since(start), toolErr)
		}()

		paths, validation := s.resolveRequestedPaths(ctx, "issue", args.Fields)

		page, err := s.issues.SearchIssues(ctx, args.JQL, fieldpath.TopLevelFields(paths), args.MaxResults)
		if err != nil {
			toolErr = fmt.Errorf("issue search failed: %w", err)
			return nil, issueSearchOutput{}, toolErr
		}

		shapeRequested := len(args.Fields) > 0
		issues := make([]map[string]any, 0, len(page.Issues))
		for _, issue := range page.Issues {
			if !shapeRequested {
				issues = append(issues, issue)
				continue
			}
			shaped := map[string]any{}
			if key, ok := issue["key"]; ok {
				shaped["key"] = key
			}
			shaped["fields"] = projectIssueFields(issue, paths, true)
			issues = append(issues, shaped)
		}

		result := issueSearchOutput{
			Total:  page.Total,
			Issues: issues,
		}
		if validation != nil {
			result.InvalidPaths = validation.InvalidPaths
			result.Suggestions = validation.Suggestions
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Found %d issues", page.Total)},
			},
		}, result, nil
	})
}

// resolveRequestedPaths validates the requested field paths and returns the
// valid subset to project with. Invalid paths are dropped, never fatal: the
// validation result is surfaced to the caller alongside the data.
func (s *Server) resolveRequestedPaths(ctx context.Context, entityType string, paths []string) ([]string, *fieldpath.Result) {
	if len(paths) == 0 {
		return nil, nil
	}
	validation := s.resolver.ValidatePaths(ctx, entityType, paths)
	return validation.ValidPaths, validation
}

// projectIssueFields projects an issue's "fields" object down to the valid
// paths. The passthrough applies only when the caller requested no shaping at
// all: a request whose every path failed validation gets an empty projection,
// not the full backend response.
func projectIssueFields(issue map[string]any, paths []string, shapeRequested bool) map[string]any {
	fields, _ := issue["fields"].(map[string]any)
	if !shapeRequested {
		return fields
	}
	return fieldpath.Filter(fields, paths)
}

// ===== FIELD TOOLS =====

type fieldPathsValidateInput struct {
	EntityType string   `json:"entity_type" jsonschema:"required,Entity type (issue, project, user, board, sprint)"`
	Paths      []string `json:"paths" jsonschema:"required,Dot-notation field paths to validate"`
}

type fieldsDiscoverInput struct {
	EntityType string `json:"entity_type" jsonschema:"required,Entity type to discover custom fields for"`
	Force      bool   `json:"force,omitempty" jsonschema:"Bypass the discovery cache and fetch fresh metadata"`
}

type fieldsDiscoverOutput struct {
	EntityType string   `json:"entity_type" jsonschema:"Entity type"`
	Count      int      `json:"count" jsonschema:"Number of custom fields discovered"`
	FieldIDs   []string `json:"field_ids" jsonschema:"Discovered custom field IDs"`
}

func (s *Server) registerFieldTools() {
	// field_paths_validate
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "field_paths_validate",
		Description: "Validate dot-notation field paths against an entity type's field catalog",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args fieldPathsValidateInput) (*mcp.CallToolResult, *fieldpath.Result, error) {
		start := time.Now()
		s.metrics.IncrementActive(ctx, "field_paths_validate")
		defer func() {
			s.metrics.DecrementActive(ctx, "field_paths_validate")
			s.metrics.RecordInvocation(ctx, "field_paths_validate", time.Since(start), nil)
		}()

		result := s.resolver.ValidatePaths(ctx, args.EntityType, args.Paths)

		summary := fmt.Sprintf("%d valid, %d invalid", len(result.ValidPaths), len(result.InvalidPaths))
		if result.Error != "" {
			summary = result.Error
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: summary},
			},
		}, result, nil
	})

	// fields_discover
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "fields_discover",
		Description: "Discover custom fields for an entity type from the Jira instance",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args fieldsDiscoverInput) (*mcp.CallToolResult, fieldsDiscoverOutput, error) {
		start := time.Now()
		s.metrics.IncrementActive(ctx, "fields_discover")
		defer func() {
			s.metrics.DecrementActive(ctx, "fields_discover")
			s.metrics.RecordInvocation(ctx, "fields_discover", time.Since(start), nil)
		}()

		fields := s.resolver.Discover(ctx, args.EntityType, args.Force)

		ids := make([]string, 0, len(fields))
		for _, field := range fields {
			ids = append(ids, field.ID)
		}

		result := fieldsDiscoverOutput{
			EntityType: args.EntityType,
			Count:      len(ids),
			FieldIDs:   ids,
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Discovered %d custom fields", result.Count)},
			},
		}, result, nil
	})
}
