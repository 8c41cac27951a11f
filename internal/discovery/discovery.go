package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

// Config configures the discovery service.
type Config struct {
	// TTL is how long a cached discovery result stays valid. Must be positive.
	TTL time.Duration

	// MaxSize bounds the number of cached entity types. Must be positive.
	MaxSize int

	// Logger for structured logging. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Service discovers custom fields from the backend and caches the results.
//
// Discovery never returns an error: validation failures, backend failures,
// and malformed field descriptors all degrade to an empty result so the
// caller can always proceed with static fields only.
type Service struct {
	client FieldClient
	cache  *cache
	group  singleflight.Group
	logger *zap.Logger
}

// NewService creates a discovery service backed by the given field client.
func NewService(client FieldClient, cfg Config) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("field client is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	c, err := newCache(cfg.TTL, cfg.MaxSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		client: client,
		cache:  c,
		logger: cfg.Logger,
	}, nil
}

// Discover returns the custom fields known for an entity type, fetching from
// the backend on a cache miss.
//
// Concurrent calls for the same entity type while a fetch is outstanding
// share a single backend call and observe the same result. The in-flight
// handle is dropped when the fetch completes, success or failure, so the next
// miss starts a fresh fetch.
func (s *Service) Discover(ctx context.Context, entityType string) []*catalog.FieldDefinition {
	key, ok := s.cacheKey(entityType)
	if !ok {
		return []*catalog.FieldDefinition{}
	}

	if data, ok := s.cache.get(key); ok {
		s.logger.Debug("dynamic field cache hit", zap.String("entity_type", key))
		return data
	}

	return s.fetchShared(ctx, key)
}

// Refresh bypasses the TTL cache and fetches fresh field metadata for an
// entity type. Concurrent refreshes still share one backend call.
func (s *Service) Refresh(ctx context.Context, entityType string) []*catalog.FieldDefinition {
	key, ok := s.cacheKey(entityType)
	if !ok {
		return []*catalog.FieldDefinition{}
	}

	s.cache.remove(key)
	return s.fetchShared(ctx, key)
}

// CachedCount reports how many entity types currently have cached results.
func (s *Service) CachedCount() int {
	return s.cache.len()
}

// cacheKey normalizes an entity type to its canonical cache key. An empty
// entity type is logged and rejected; discovery never fails the caller.
func (s *Service) cacheKey(entityType string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(entityType))
	if key == "" {
		s.logger.Warn("dynamic field discovery called with empty entity type")
		return "", false
	}
	return key, true
}

// fetchShared runs the backend fetch through the single-flight group so at
// most one fetch per key is outstanding at any instant.
func (s *Service) fetchShared(ctx context.Context, key string) []*catalog.FieldDefinition {
	result, _, shared := s.group.Do(key, func() (any, error) {
		return s.fetch(ctx, key), nil
	})
	if shared {
		s.logger.Debug("dynamic field fetch shared with concurrent caller",
			zap.String("entity_type", key))
	}
	return result.([]*catalog.FieldDefinition)
}

// fetch enumerates backend fields, converts the custom ones, and populates
// the cache. Failures are logged and degrade to an empty result; the cache
// is only written on success.
func (s *Service) fetch(ctx context.Context, key string) []*catalog.FieldDefinition {
	raw, err := s.client.ListFields(ctx)
	if err != nil {
		s.logger.Error("dynamic field discovery failed",
			zap.String("entity_type", key),
			zap.Error(err))
		return []*catalog.FieldDefinition{}
	}

	fields := make([]*catalog.FieldDefinition, 0)
	for _, rf := range raw {
		if !rf.Custom {
			continue
		}
		field, ok := s.convert(rf)
		if !ok {
			continue
		}
		fields = append(fields, field)
	}

	s.cache.put(key, fields)
	s.logger.Info("dynamic fields discovered",
		zap.String("entity_type", key),
		zap.Int("count", len(fields)))
	return fields
}

// convert maps a raw custom-field descriptor to a catalog definition.
// Descriptors missing an ID or name are dropped with a warning.
func (s *Service) convert(rf RawField) (*catalog.FieldDefinition, bool) {
	if strings.TrimSpace(rf.ID) == "" || strings.TrimSpace(rf.Name) == "" {
		s.logger.Warn("dropping malformed custom field descriptor",
			zap.String("id", rf.ID),
			zap.String("name", rf.Name))
		return nil, false
	}

	kind := kindOf(rf.Schema)
	return &catalog.FieldDefinition{
		ID:          rf.ID,
		Name:        rf.Name,
		Description: fmt.Sprintf("Custom field: %s", rf.Name),
		Type:        kind.FieldType(),
		AccessPaths: []catalog.AccessPath{
			{
				Path:        rf.ID,
				Description: rf.Name,
				Type:        kind.String(),
				Frequency:   catalog.FrequencyLow,
			},
		},
		Examples:   []string{rf.ID},
		Source:     catalog.SourceDynamic,
		Confidence: catalog.ConfidenceMedium,
	}, true
}
