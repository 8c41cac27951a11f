// Package resolver exposes field definitions for Jira entity types, either
// straight from the static catalog or fused with dynamically discovered
// custom fields.
//
// The FieldResolver capability interface has two implementations selected by
// configuration at construction: a static-only resolver, and a hybrid
// resolver that decorates the static one with a discovery cache. There is no
// shared mutable state beyond the resolver instance itself; callers create
// one at startup and pass it where needed.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
	"github.com/meridian-labs/jira-mcp/internal/discovery"
	"github.com/meridian-labs/jira-mcp/internal/fieldpath"
)

// Errors returned at the resolver boundary.
var (
	ErrInvalidConfig = errors.New("invalid resolver configuration")
)

// Config configures a FieldResolver.
type Config struct {
	// EnableDynamic selects the hybrid resolver with runtime field discovery.
	EnableDynamic bool

	// CacheTTL is how long discovered fields stay cached. Required when
	// dynamic mode is enabled; must be positive.
	CacheTTL time.Duration

	// CacheMaxSize bounds the discovery cache. Required when dynamic mode is
	// enabled; must be positive.
	CacheMaxSize int

	// Logger for structured logging. Defaults to a no-op logger.
	Logger *zap.Logger
}

// FieldResolver supplies field definitions and path validation for entity
// types.
type FieldResolver interface {
	// URIs lists the resource URIs of all supported entity types.
	URIs() []string

	// Definition returns the (possibly enhanced) field definition for an
	// entity type. Backend unavailability never fails a read: the static
	// definition is always available.
	Definition(ctx context.Context, entityType string) (*catalog.EnhancedResourceDefinition, error)

	// Read resolves a resource URI to its field definition. Malformed URIs
	// and unknown entity types are returned errors; this is the one boundary
	// allowed to fail.
	Read(ctx context.Context, uri string) (*catalog.EnhancedResourceDefinition, error)

	// ValidatePaths checks requested field paths for an entity type. Unknown
	// entity types yield a failed result with a descriptive message, not an
	// error.
	ValidatePaths(ctx context.Context, entityType string, paths []string) *fieldpath.Result

	// Discover runs dynamic field discovery for an entity type. The force
	// flag bypasses the TTL cache. Static-only resolvers return an empty
	// list.
	Discover(ctx context.Context, entityType string, force bool) []*catalog.FieldDefinition
}

// New creates a FieldResolver per the configuration. Invalid configuration
// fails here, at construction, never at first use.
func New(cfg Config, client discovery.FieldClient) (FieldResolver, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	static := &staticResolver{
		catalog: catalog.New(),
		logger:  cfg.Logger,
	}

	if !cfg.EnableDynamic {
		return static, nil
	}

	if client == nil {
		return nil, fmt.Errorf("%w: dynamic mode requires a field client", ErrInvalidConfig)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("%w: cache ttl must be positive, got %s", ErrInvalidConfig, cfg.CacheTTL)
	}
	if cfg.CacheMaxSize <= 0 {
		return nil, fmt.Errorf("%w: cache max size must be positive, got %d", ErrInvalidConfig, cfg.CacheMaxSize)
	}

	svc, err := discovery.NewService(client, discovery.Config{
		TTL:     cfg.CacheTTL,
		MaxSize: cfg.CacheMaxSize,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	return &hybridResolver{
		staticResolver: static,
		discovery:      svc,
	}, nil
}

// staticResolver serves definitions straight from the compiled-in catalog.
type staticResolver struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func (r *staticResolver) URIs() []string {
	return r.catalog.URIs()
}

func (r *staticResolver) Definition(ctx context.Context, entityType string) (*catalog.EnhancedResourceDefinition, error) {
	def, err := r.catalog.Get(entityType)
	if err != nil {
		return nil, err
	}
	return &catalog.EnhancedResourceDefinition{ResourceDefinition: *def}, nil
}

func (r *staticResolver) Read(ctx context.Context, uri string) (*catalog.EnhancedResourceDefinition, error) {
	entityType, err := parseResourceURI(uri)
	if err != nil {
		return nil, err
	}
	return r.Definition(ctx, entityType)
}

func (r *staticResolver) ValidatePaths(ctx context.Context, entityType string, paths []string) *fieldpath.Result {
	def, err := r.catalog.Get(entityType)
	if err != nil {
		return fieldpath.UnknownEntityResult(entityType, r.catalog.EntityTypes())
	}
	return fieldpath.Validate(def, paths)
}

func (r *staticResolver) Discover(ctx context.Context, entityType string, force bool) []*catalog.FieldDefinition {
	return []*catalog.FieldDefinition{}
}

// hybridResolver decorates the static resolver with a dynamic discovery
// stage: each read fuses freshly discovered custom fields into a copy of the
// static definition.
type hybridResolver struct {
	*staticResolver
	discovery *discovery.Service
}

func (r *hybridResolver) Definition(ctx context.Context, entityType string) (*catalog.EnhancedResourceDefinition, error) {
	def, err := r.catalog.Get(entityType)
	if err != nil {
		return nil, err
	}

	dynamic := r.discovery.Discover(ctx, entityType)
	return merge(def, dynamic, r.logger), nil
}

func (r *hybridResolver) Read(ctx context.Context, uri string) (*catalog.EnhancedResourceDefinition, error) {
	entityType, err := parseResourceURI(uri)
	if err != nil {
		return nil, err
	}
	return r.Definition(ctx, entityType)
}

func (r *hybridResolver) Discover(ctx context.Context, entityType string, force bool) []*catalog.FieldDefinition {
	if force {
		return r.discovery.Refresh(ctx, entityType)
	}
	return r.discovery.Discover(ctx, entityType)
}
