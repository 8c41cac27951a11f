package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

func dynamicField(id, name string, paths ...string) *catalog.FieldDefinition {
	if len(paths) == 0 {
		paths = []string{id}
	}
	aps := make([]catalog.AccessPath, 0, len(paths))
	for _, p := range paths {
		aps = append(aps, catalog.AccessPath{Path: p, Type: "string", Frequency: catalog.FrequencyLow})
	}
	return &catalog.FieldDefinition{
		ID:          id,
		Name:        name,
		Type:        catalog.TypeString,
		AccessPaths: aps,
		Source:      catalog.SourceDynamic,
		Confidence:  catalog.ConfidenceMedium,
	}
}

func staticIssueDef(t *testing.T) *catalog.ResourceDefinition {
	t.Helper()
	def, err := catalog.New().Get("issue")
	require.NoError(t, err)
	return def
}

func TestMerge(t *testing.T) {
	logger := zap.NewNop()

	t.Run("accepts new dynamic fields", func(t *testing.T) {
		def := staticIssueDef(t)
		enhanced := merge(def, []*catalog.FieldDefinition{
			dynamicField("customfield_10016", "Story Points"),
			dynamicField("customfield_10020", "Sprint"),
		}, logger)

		assert.Equal(t, 2, enhanced.DynamicFields)
		assert.Equal(t, len(enhanced.Fields), enhanced.TotalFields)
		assert.Contains(t, enhanced.Fields, "customfield_10016")
		assert.Equal(t, "customfield_10016", enhanced.PathIndex["customfield_10016"])
		assert.False(t, enhanced.LastDynamicUpdate.IsZero())
	})

	t.Run("static field wins on id conflict", func(t *testing.T) {
		def := staticIssueDef(t)
		original := def.Fields["summary"]

		enhanced := merge(def, []*catalog.FieldDefinition{
			dynamicField("summary", "Impostor Summary"),
		}, logger)

		assert.Equal(t, 0, enhanced.DynamicFields)
		assert.Same(t, original, enhanced.Fields["summary"])
		assert.Equal(t, len(enhanced.Fields), enhanced.TotalFields)
	})

	t.Run("does not mutate the static definition", func(t *testing.T) {
		def := staticIssueDef(t)
		staticFields := len(def.Fields)
		staticPaths := len(def.PathIndex)

		_ = merge(def, []*catalog.FieldDefinition{dynamicField("customfield_1", "One")}, logger)

		assert.Len(t, def.Fields, staticFields)
		assert.Len(t, def.PathIndex, staticPaths)
		assert.NotContains(t, def.Fields, "customfield_1")
	})

	t.Run("skips fields with missing id or name", func(t *testing.T) {
		def := staticIssueDef(t)

		enhanced := merge(def, []*catalog.FieldDefinition{
			nil,
			dynamicField("", "No ID"),
			dynamicField("customfield_2", "  "),
			dynamicField("customfield_3", "Kept"),
		}, logger)

		assert.Equal(t, 1, enhanced.DynamicFields)
		assert.Contains(t, enhanced.Fields, "customfield_3")
	})

	t.Run("path shadowing is logged not indexed", func(t *testing.T) {
		def := staticIssueDef(t)

		// A dynamic field claiming an existing static path must not steal it.
		enhanced := merge(def, []*catalog.FieldDefinition{
			dynamicField("customfield_9", "Shadow", "status.name", "customfield_9"),
		}, logger)

		assert.Equal(t, 1, enhanced.DynamicFields)
		assert.Equal(t, "status", enhanced.PathIndex["status.name"])
		assert.Equal(t, "customfield_9", enhanced.PathIndex["customfield_9"])
	})

	t.Run("empty dynamic set leaves counts static", func(t *testing.T) {
		def := staticIssueDef(t)

		enhanced := merge(def, nil, logger)

		assert.Equal(t, 0, enhanced.DynamicFields)
		assert.Equal(t, def.TotalFields, enhanced.TotalFields)
		assert.True(t, enhanced.LastDynamicUpdate.IsZero())
	})

	t.Run("round trip holds after fusion", func(t *testing.T) {
		def := staticIssueDef(t)
		enhanced := merge(def, []*catalog.FieldDefinition{
			dynamicField("customfield_5", "Five"),
		}, logger)

		for path, fieldID := range enhanced.PathIndex {
			field, ok := enhanced.Fields[fieldID]
			require.True(t, ok, "path %q maps to missing field %q", path, fieldID)
			found := false
			for _, ap := range field.AccessPaths {
				if ap.Path == path {
					found = true
					break
				}
			}
			assert.True(t, found)
		}
	})
}
