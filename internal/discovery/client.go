// Package discovery fetches custom-field metadata from the backend and
// caches it per entity type with TTL expiry, bounded size (LRU eviction),
// and single-flight deduplication of concurrent fetches.
package discovery

import "context"

// RawField is a field descriptor as returned by the backend's field API.
type RawField struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Custom bool            `json:"custom"`
	Schema *RawFieldSchema `json:"schema,omitempty"`
}

// RawFieldSchema is the type information the backend attaches to a field.
type RawFieldSchema struct {
	// Type is the backend's value type name (string, number, array, ...).
	Type string `json:"type"`

	// Items is the element type for array fields.
	Items string `json:"items,omitempty"`

	// Custom is the backend's custom-field type identifier.
	Custom string `json:"custom,omitempty"`
}

// FieldClient enumerates field metadata from the backend. The discovery
// service performs no network I/O of its own; a client must be supplied by
// the caller.
type FieldClient interface {
	ListFields(ctx context.Context) ([]RawField, error)
}
