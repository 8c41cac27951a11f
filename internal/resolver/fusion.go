package resolver

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

// merge fuses dynamic fields into a copy of a static definition for one read.
//
// The static catalog is never mutated: the field and path-index maps are
// shallow-copied before any dynamic field is considered. A dynamic field
// whose ID collides with an existing field is rejected outright; the static
// field wins and the conflict is logged. Path collisions where a dynamic
// field's path already maps to a different field are logged but do not fail
// the merge.
func merge(def *catalog.ResourceDefinition, dynamic []*catalog.FieldDefinition, logger *zap.Logger) *catalog.EnhancedResourceDefinition {
	fields := make(map[string]*catalog.FieldDefinition, len(def.Fields)+len(dynamic))
	for id, field := range def.Fields {
		fields[id] = field
	}
	pathIndex := make(map[string]string, len(def.PathIndex)+len(dynamic))
	for path, id := range def.PathIndex {
		pathIndex[path] = id
	}

	accepted := 0
	for _, field := range dynamic {
		if field == nil || strings.TrimSpace(field.ID) == "" || strings.TrimSpace(field.Name) == "" {
			logger.Warn("skipping dynamic field with missing id or name",
				zap.String("entity_type", def.EntityType))
			continue
		}

		if _, exists := fields[field.ID]; exists {
			logger.Warn("dynamic field conflicts with existing field, keeping existing",
				zap.String("entity_type", def.EntityType),
				zap.String("field_id", field.ID))
			continue
		}

		fields[field.ID] = field
		for _, ap := range field.AccessPaths {
			if owner, exists := pathIndex[ap.Path]; exists && owner != field.ID {
				logger.Warn("dynamic field path shadows existing path",
					zap.String("entity_type", def.EntityType),
					zap.String("path", ap.Path),
					zap.String("existing_field", owner),
					zap.String("dynamic_field", field.ID))
				continue
			}
			pathIndex[ap.Path] = field.ID
		}
		accepted++
	}

	enhanced := &catalog.EnhancedResourceDefinition{
		ResourceDefinition: *def,
		DynamicFields:      accepted,
	}
	enhanced.Fields = fields
	enhanced.PathIndex = pathIndex
	enhanced.TotalFields = len(fields)
	if accepted > 0 {
		enhanced.LastDynamicUpdate = time.Now().UTC()
	}
	return enhanced
}
