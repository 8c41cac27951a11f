// Package fieldpath validates dot-notation field paths against a catalog
// definition and projects nested response data down to requested paths.
package fieldpath

import (
	"fmt"
	"regexp"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

// customFieldPattern matches backend-defined custom field IDs. Custom fields
// are not enumerable at build time, so they pass validation unchecked.
var customFieldPattern = regexp.MustCompile(`^customfield_\d+$`)

// suggestionThreshold is the minimum similarity score for a suggestion.
const suggestionThreshold = 0.6

// maxSuggestions caps the number of suggestions per invalid path.
const maxSuggestions = 3

// PathInfo describes a validated path.
type PathInfo struct {
	// FieldID is the owning field's ID.
	FieldID string `json:"fieldId"`

	// Type is the resolved value type at the path.
	Type string `json:"type"`

	// Description explains what the path resolves to.
	Description string `json:"description"`
}

// Result is the outcome of validating a batch of requested paths.
type Result struct {
	// Valid is true when every requested path validated.
	Valid bool `json:"isValid"`

	// ValidPaths lists the paths that validated, in request order.
	ValidPaths []string `json:"validPaths"`

	// InvalidPaths lists the paths that did not validate, in request order.
	InvalidPaths []string `json:"invalidPaths"`

	// PathInfo holds per-path details for validated paths. Custom fields
	// accepted by pattern have no entry.
	PathInfo map[string]PathInfo `json:"pathInfo,omitempty"`

	// Suggestions maps each invalid path to up to three similar known paths.
	Suggestions map[string][]string `json:"suggestions,omitempty"`

	// Error carries a descriptive message when validation could not run at
	// all (e.g. unknown entity type).
	Error string `json:"error,omitempty"`
}

// Validate checks requested paths against a resource definition's path index.
//
// Each path is resolved in three steps: an exact index hit is valid; a miss
// that matches the custom-field naming pattern is accepted unvalidated; any
// other miss is invalid and gets ranked suggestions from the known paths.
func Validate(def *catalog.ResourceDefinition, paths []string) *Result {
	result := &Result{
		Valid:        true,
		ValidPaths:   make([]string, 0, len(paths)),
		InvalidPaths: make([]string, 0),
	}

	known := make([]string, 0, len(def.PathIndex))
	for path := range def.PathIndex {
		known = append(known, path)
	}

	for _, path := range paths {
		if fieldID, ok := def.PathIndex[path]; ok {
			result.ValidPaths = append(result.ValidPaths, path)
			if info, ok := pathInfoFor(def, fieldID, path); ok {
				if result.PathInfo == nil {
					result.PathInfo = make(map[string]PathInfo)
				}
				result.PathInfo[path] = info
			}
			continue
		}

		if customFieldPattern.MatchString(path) {
			result.ValidPaths = append(result.ValidPaths, path)
			continue
		}

		result.Valid = false
		result.InvalidPaths = append(result.InvalidPaths, path)
		if suggestions := Suggest(path, known); len(suggestions) > 0 {
			if result.Suggestions == nil {
				result.Suggestions = make(map[string][]string)
			}
			result.Suggestions[path] = suggestions
		}
	}

	return result
}

// UnknownEntityResult builds the failure result returned for an entity type
// that has no catalog. Unknown entity types never produce an error value.
func UnknownEntityResult(entityType string, supported []string) *Result {
	return &Result{
		Valid:        false,
		ValidPaths:   []string{},
		InvalidPaths: []string{},
		Error:        fmt.Sprintf("unknown entity type %q: supported entity types are %v", entityType, supported),
	}
}

func pathInfoFor(def *catalog.ResourceDefinition, fieldID, path string) (PathInfo, bool) {
	field, ok := def.Fields[fieldID]
	if !ok {
		return PathInfo{}, false
	}
	for _, ap := range field.AccessPaths {
		if ap.Path == path {
			return PathInfo{FieldID: fieldID, Type: ap.Type, Description: ap.Description}, true
		}
	}
	return PathInfo{}, false
}
