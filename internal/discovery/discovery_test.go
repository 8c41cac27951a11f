package discovery

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

// fakeFieldClient is a scriptable FieldClient for tests.
type fakeFieldClient struct {
	fields  []RawField
	err     error
	calls   atomic.Int64
	release chan struct{} // when set, ListFields blocks until closed
}

func (f *fakeFieldClient) ListFields(ctx context.Context) ([]RawField, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.fields, nil
}

func customField(id, name, schemaType string) RawField {
	return RawField{ID: id, Name: name, Custom: true, Schema: &RawFieldSchema{Type: schemaType}}
}

func newTestService(t *testing.T, client FieldClient) *Service {
	t.Helper()
	svc, err := NewService(client, Config{TTL: time.Minute, MaxSize: 10, Logger: zap.NewNop()})
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Run("requires client", func(t *testing.T) {
		_, err := NewService(nil, Config{TTL: time.Minute, MaxSize: 10})
		assert.Error(t, err)
	})

	t.Run("rejects invalid cache config", func(t *testing.T) {
		_, err := NewService(&fakeFieldClient{}, Config{TTL: 0, MaxSize: 10})
		assert.Error(t, err)
	})
}

func TestService_Discover(t *testing.T) {
	t.Run("filters to custom fields and converts", func(t *testing.T) {
		client := &fakeFieldClient{fields: []RawField{
			customField("customfield_10001", "Story Points", "number"),
			{ID: "summary", Name: "Summary", Custom: false},
			customField("customfield_10002", "Team", "option"),
		}}
		svc := newTestService(t, client)

		got := svc.Discover(context.Background(), "issue")

		require.Len(t, got, 2)
		assert.Equal(t, "customfield_10001", got[0].ID)
		assert.Equal(t, catalog.SourceDynamic, got[0].Source)
		assert.Equal(t, catalog.TypeObject, got[1].Type)
		require.Len(t, got[0].AccessPaths, 1)
		assert.Equal(t, "customfield_10001", got[0].AccessPaths[0].Path)
	})

	t.Run("second call is a cache hit", func(t *testing.T) {
		client := &fakeFieldClient{fields: []RawField{customField("customfield_1", "One", "string")}}
		svc := newTestService(t, client)

		first := svc.Discover(context.Background(), "issue")
		second := svc.Discover(context.Background(), "issue")

		assert.Equal(t, first, second)
		assert.Equal(t, int64(1), client.calls.Load())
	})

	t.Run("entity type is normalized to one cache key", func(t *testing.T) {
		client := &fakeFieldClient{fields: []RawField{customField("customfield_1", "One", "string")}}
		svc := newTestService(t, client)

		svc.Discover(context.Background(), "Issue")
		svc.Discover(context.Background(), "  issue ")

		assert.Equal(t, int64(1), client.calls.Load())
		assert.Equal(t, 1, svc.CachedCount())
	})

	t.Run("empty entity type returns empty without a fetch", func(t *testing.T) {
		client := &fakeFieldClient{}
		svc := newTestService(t, client)

		got := svc.Discover(context.Background(), "   ")

		assert.Empty(t, got)
		assert.Equal(t, int64(0), client.calls.Load())
	})

	t.Run("backend failure degrades to empty result", func(t *testing.T) {
		client := &fakeFieldClient{err: errors.New("jira is down")}
		svc := newTestService(t, client)

		got := svc.Discover(context.Background(), "issue")

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("failure is not cached", func(t *testing.T) {
		client := &fakeFieldClient{err: errors.New("transient")}
		svc := newTestService(t, client)

		svc.Discover(context.Background(), "issue")
		client.err = nil
		client.fields = []RawField{customField("customfield_1", "One", "string")}

		got := svc.Discover(context.Background(), "issue")

		assert.Len(t, got, 1)
		assert.Equal(t, int64(2), client.calls.Load())
	})

	t.Run("malformed descriptors are dropped not fatal", func(t *testing.T) {
		client := &fakeFieldClient{fields: []RawField{
			{ID: "", Name: "No ID", Custom: true},
			{ID: "customfield_2", Name: "   ", Custom: true},
			customField("customfield_3", "Kept", "string"),
		}}
		svc := newTestService(t, client)

		got := svc.Discover(context.Background(), "issue")

		require.Len(t, got, 1)
		assert.Equal(t, "customfield_3", got[0].ID)
	})
}

// TestService_SingleFlight verifies that concurrent discoveries for the same
// entity type share exactly one backend call and observe identical data.
func TestService_SingleFlight(t *testing.T) {
	client := &fakeFieldClient{
		fields:  []RawField{customField("customfield_1", "One", "string")},
		release: make(chan struct{}),
	}
	svc := newTestService(t, client)

	const callers = 8
	results := make([][]*catalog.FieldDefinition, callers)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			started.Done()
			results[i] = svc.Discover(context.Background(), "issue")
			done.Done()
		}(i)
	}

	started.Wait()
	// Give the callers a moment to reach the in-flight fetch before release.
	time.Sleep(50 * time.Millisecond)
	close(client.release)
	done.Wait()

	assert.Equal(t, int64(1), client.calls.Load(), "concurrent callers must share one fetch")
	for i := 1; i < callers; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

func TestService_Refresh(t *testing.T) {
	client := &fakeFieldClient{fields: []RawField{customField("customfield_1", "One", "string")}}
	svc := newTestService(t, client)

	svc.Discover(context.Background(), "issue")
	require.Equal(t, int64(1), client.calls.Load())

	client.fields = append(client.fields, customField("customfield_2", "Two", "string"))
	got := svc.Refresh(context.Background(), "issue")

	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), client.calls.Load())

	// The refreshed result replaces the cached entry.
	assert.Len(t, svc.Discover(context.Background(), "issue"), 2)
	assert.Equal(t, int64(2), client.calls.Load())
}

func TestSchemaKind(t *testing.T) {
	tests := []struct {
		name   string
		schema *RawFieldSchema
		kind   SchemaKind
		ftype  catalog.FieldType
	}{
		{name: "nil schema", schema: nil, kind: KindUnknown, ftype: catalog.TypeString},
		{name: "string", schema: &RawFieldSchema{Type: "string"}, kind: KindString, ftype: catalog.TypeString},
		{name: "datetime", schema: &RawFieldSchema{Type: "datetime"}, kind: KindString, ftype: catalog.TypeString},
		{name: "number", schema: &RawFieldSchema{Type: "number"}, kind: KindNumber, ftype: catalog.TypeString},
		{name: "boolean", schema: &RawFieldSchema{Type: "boolean"}, kind: KindBoolean, ftype: catalog.TypeString},
		{name: "array", schema: &RawFieldSchema{Type: "array", Items: "string"}, kind: KindArray, ftype: catalog.TypeArray},
		{name: "option", schema: &RawFieldSchema{Type: "option"}, kind: KindObject, ftype: catalog.TypeObject},
		{name: "user", schema: &RawFieldSchema{Type: "user"}, kind: KindObject, ftype: catalog.TypeObject},
		{name: "unrecognized", schema: &RawFieldSchema{Type: "anything-else"}, kind: KindUnknown, ftype: catalog.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := kindOf(tt.schema)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.ftype, kind.FieldType())
		})
	}
}
