// Package catalog provides the compiled-in field catalogs for Jira entity
// types and the derived path indexes.
//
// A Catalog is built once at startup and never mutated afterwards. Each
// entity type (issue, project, user, board, sprint) has a ResourceDefinition
// enumerating its addressable fields and their dot-notation access paths.
// The path index gives O(1) lookups from an access path to its owning field.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Errors for catalog lookups.
var (
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// catalogVersion identifies the static catalog revision.
const catalogVersion = "2.0.0"

// Catalog holds the immutable per-entity-type resource definitions.
type Catalog struct {
	defs map[string]*ResourceDefinition
	uris []string
}

// New builds the static catalog for all supported entity types.
//
// Construction is pure and deterministic. Path collisions within the static
// catalog are a build-time defect; the later insertion wins, and the round-
// trip test in catalog_test.go guards against one appearing unnoticed.
func New() *Catalog {
	c := &Catalog{defs: make(map[string]*ResourceDefinition)}

	c.add(newDefinition("issue", issueFields()))
	c.add(newDefinition("project", projectFields()))
	c.add(newDefinition("user", userFields()))
	c.add(newDefinition("board", boardFields()))
	c.add(newDefinition("sprint", sprintFields()))

	sort.Strings(c.uris)
	return c
}

func (c *Catalog) add(def *ResourceDefinition) {
	c.defs[def.EntityType] = def
	c.uris = append(c.uris, def.URI)
}

// Get returns the resource definition for an entity type.
func (c *Catalog) Get(entityType string) (*ResourceDefinition, error) {
	def, ok := c.defs[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownEntityType, entityType, c.EntityTypes())
	}
	return def, nil
}

// URIs returns the resource URIs of all entity types, sorted.
func (c *Catalog) URIs() []string {
	out := make([]string, len(c.uris))
	copy(out, c.uris)
	return out
}

// EntityTypes returns the supported entity type names, sorted.
func (c *Catalog) EntityTypes() []string {
	types := make([]string, 0, len(c.defs))
	for name := range c.defs {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// newDefinition assembles a ResourceDefinition and builds its path index.
func newDefinition(entityType string, fields []*FieldDefinition) *ResourceDefinition {
	def := &ResourceDefinition{
		URI:         fmt.Sprintf("jira://%s/fields", entityType),
		EntityType:  entityType,
		Fields:      make(map[string]*FieldDefinition, len(fields)),
		PathIndex:   make(map[string]string),
		Version:     catalogVersion,
		LastUpdated: time.Now().UTC(),
	}

	for _, field := range fields {
		def.Fields[field.ID] = field
		for _, ap := range field.AccessPaths {
			def.PathIndex[ap.Path] = field.ID
		}
	}
	def.TotalFields = len(def.Fields)

	return def
}
