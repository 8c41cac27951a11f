package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

func issueDef(t *testing.T) *catalog.ResourceDefinition {
	t.Helper()
	def, err := catalog.New().Get("issue")
	require.NoError(t, err)
	return def
}

func TestValidate(t *testing.T) {
	def := issueDef(t)

	t.Run("mixed valid and invalid paths", func(t *testing.T) {
		result := Validate(def, []string{"status.statusCategory.key", "bogus.path"})

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"status.statusCategory.key"}, result.ValidPaths)
		assert.Equal(t, []string{"bogus.path"}, result.InvalidPaths)

		info, ok := result.PathInfo["status.statusCategory.key"]
		require.True(t, ok)
		assert.Equal(t, "status", info.FieldID)
		assert.Equal(t, "string", info.Type)
	})

	t.Run("all valid", func(t *testing.T) {
		result := Validate(def, []string{"summary", "assignee.displayName"})

		assert.True(t, result.Valid)
		assert.Len(t, result.ValidPaths, 2)
		assert.Empty(t, result.InvalidPaths)
		assert.Empty(t, result.Suggestions)
	})

	t.Run("custom field passes without catalog entry", func(t *testing.T) {
		result := Validate(def, []string{"customfield_10008"})

		assert.True(t, result.Valid)
		assert.Equal(t, []string{"customfield_10008"}, result.ValidPaths)
		// Pattern-accepted paths carry no path info.
		assert.NotContains(t, result.PathInfo, "customfield_10008")
	})

	t.Run("custom field pattern requires digits", func(t *testing.T) {
		result := Validate(def, []string{"customfield_abc"})

		assert.False(t, result.Valid)
		assert.Equal(t, []string{"customfield_abc"}, result.InvalidPaths)
	})

	t.Run("near miss gets suggestions", func(t *testing.T) {
		result := Validate(def, []string{"status.nam"})

		assert.False(t, result.Valid)
		suggestions, ok := result.Suggestions["status.nam"]
		require.True(t, ok)
		assert.Contains(t, suggestions, "status.name")
		assert.LessOrEqual(t, len(suggestions), 3)
	})

	t.Run("empty request", func(t *testing.T) {
		result := Validate(def, nil)

		assert.True(t, result.Valid)
		assert.Empty(t, result.ValidPaths)
		assert.Empty(t, result.InvalidPaths)
	})
}

func TestUnknownEntityResult(t *testing.T) {
	result := UnknownEntityResult("epic", []string{"board", "issue", "project", "sprint", "user"})

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "epic")
	assert.Contains(t, result.Error, "issue")
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "status.name", b: "status.name", want: 1.0},
		{name: "empty left", a: "", b: "status", want: 0.0},
		{name: "empty right", a: "status", b: "", want: 0.0},
		{name: "shared prefix", a: "status.nam", b: "status.name", want: 10.0 / 11.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
			// Symmetric by construction.
			assert.InDelta(t, tt.want, Similarity(tt.b, tt.a), 1e-9)
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"status.name", "status.id", "summary", "assignee.displayName"}

	t.Run("ranked above threshold", func(t *testing.T) {
		got := Suggest("status.nam", candidates)
		require.NotEmpty(t, got)
		assert.Equal(t, "status.name", got[0])
	})

	t.Run("nothing above threshold", func(t *testing.T) {
		assert.Nil(t, Suggest("zzzzzzzzzz", candidates))
	})

	t.Run("capped at three", func(t *testing.T) {
		many := []string{"status.a", "status.b", "status.c", "status.d", "status.e"}
		got := Suggest("status.x", many)
		assert.LessOrEqual(t, len(got), 3)
	})
}
