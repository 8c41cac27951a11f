package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
	"github.com/meridian-labs/jira-mcp/internal/discovery"
)

// stubFieldClient returns a fixed field list.
type stubFieldClient struct {
	fields []discovery.RawField
	err    error
	calls  int
}

func (s *stubFieldClient) ListFields(ctx context.Context) ([]discovery.RawField, error) {
	s.calls++
	return s.fields, s.err
}

func storyPoints() discovery.RawField {
	return discovery.RawField{
		ID:     "customfield_10016",
		Name:   "Story Points",
		Custom: true,
		Schema: &discovery.RawFieldSchema{Type: "number"},
	}
}

func TestNew_ConfigValidation(t *testing.T) {
	client := &stubFieldClient{}

	tests := []struct {
		name    string
		cfg     Config
		client  discovery.FieldClient
		wantErr bool
	}{
		{
			name:   "static mode needs no cache config",
			cfg:    Config{EnableDynamic: false},
			client: nil,
		},
		{
			name:   "valid dynamic config",
			cfg:    Config{EnableDynamic: true, CacheTTL: time.Minute, CacheMaxSize: 10},
			client: client,
		},
		{
			name:    "dynamic mode requires client",
			cfg:     Config{EnableDynamic: true, CacheTTL: time.Minute, CacheMaxSize: 10},
			client:  nil,
			wantErr: true,
		},
		{
			name:    "non-positive ttl",
			cfg:     Config{EnableDynamic: true, CacheTTL: 0, CacheMaxSize: 10},
			client:  client,
			wantErr: true,
		},
		{
			name:    "non-positive cache size",
			cfg:     Config{EnableDynamic: true, CacheTTL: time.Minute, CacheMaxSize: 0},
			client:  client,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.cfg, tt.client)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestStaticResolver(t *testing.T) {
	r, err := New(Config{}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("definition has no dynamic fields", func(t *testing.T) {
		def, err := r.Definition(ctx, "issue")
		require.NoError(t, err)
		assert.Equal(t, 0, def.DynamicFields)
		assert.Equal(t, len(def.Fields), def.TotalFields)
	})

	t.Run("unknown entity type", func(t *testing.T) {
		_, err := r.Definition(ctx, "epic")
		assert.ErrorIs(t, err, catalog.ErrUnknownEntityType)
	})

	t.Run("discover is a no-op", func(t *testing.T) {
		assert.Empty(t, r.Discover(ctx, "issue", true))
	})

	t.Run("validate paths against static index", func(t *testing.T) {
		result := r.ValidatePaths(ctx, "issue", []string{"status.name", "nope"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"status.name"}, result.ValidPaths)
	})

	t.Run("validate paths for unknown entity type", func(t *testing.T) {
		result := r.ValidatePaths(ctx, "epic", []string{"status.name"})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "epic")
		assert.Contains(t, result.Error, "issue")
	})
}

func TestHybridResolver(t *testing.T) {
	ctx := context.Background()

	newHybrid := func(t *testing.T, client discovery.FieldClient) FieldResolver {
		t.Helper()
		r, err := New(Config{EnableDynamic: true, CacheTTL: time.Minute, CacheMaxSize: 10}, client)
		require.NoError(t, err)
		return r
	}

	t.Run("definition fuses discovered fields", func(t *testing.T) {
		r := newHybrid(t, &stubFieldClient{fields: []discovery.RawField{storyPoints()}})

		def, err := r.Definition(ctx, "issue")
		require.NoError(t, err)
		assert.Equal(t, 1, def.DynamicFields)
		assert.Contains(t, def.Fields, "customfield_10016")
		assert.Equal(t, len(def.Fields), def.TotalFields)
	})

	t.Run("backend failure degrades to static definition", func(t *testing.T) {
		r := newHybrid(t, &stubFieldClient{err: errors.New("jira is down")})

		def, err := r.Definition(ctx, "issue")
		require.NoError(t, err)
		assert.Equal(t, 0, def.DynamicFields)
		assert.Contains(t, def.Fields, "summary")
	})

	t.Run("repeat reads hit the cache", func(t *testing.T) {
		client := &stubFieldClient{fields: []discovery.RawField{storyPoints()}}
		r := newHybrid(t, client)

		_, err := r.Definition(ctx, "issue")
		require.NoError(t, err)
		_, err = r.Definition(ctx, "issue")
		require.NoError(t, err)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("forced discover bypasses the cache", func(t *testing.T) {
		client := &stubFieldClient{fields: []discovery.RawField{storyPoints()}}
		r := newHybrid(t, client)

		r.Discover(ctx, "issue", false)
		r.Discover(ctx, "issue", true)
		assert.Equal(t, 2, client.calls)
	})
}

func TestRead(t *testing.T) {
	r, err := New(Config{}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid uri", func(t *testing.T) {
		def, err := r.Read(ctx, "jira://issue/fields")
		require.NoError(t, err)
		assert.Equal(t, "issue", def.EntityType)
	})

	t.Run("malformed uris", func(t *testing.T) {
		for _, uri := range []string{
			"",
			"jira://issue",
			"jira://issue/fields/extra",
			"jira://ISSUE/fields",
			"http://issue/fields",
			"jira://issue fields",
		} {
			_, err := r.Read(ctx, uri)
			assert.ErrorIs(t, err, ErrInvalidResourceURI, "uri %q", uri)
		}
	})

	t.Run("well-formed uri for unknown entity type", func(t *testing.T) {
		_, err := r.Read(ctx, "jira://epic/fields")
		assert.ErrorIs(t, err, catalog.ErrUnknownEntityType)
	})
}
