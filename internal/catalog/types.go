package catalog

import "time"

// FieldType classifies the shape of a field's value.
type FieldType string

const (
	// TypeObject is a nested structure with addressable sub-paths.
	TypeObject FieldType = "object"
	// TypeString is a scalar string value.
	TypeString FieldType = "string"
	// TypeArray is a list value.
	TypeArray FieldType = "array"
)

// Source records where a field definition came from.
type Source string

const (
	// SourceStatic marks fields compiled into the catalog.
	SourceStatic Source = "static"
	// SourceDynamic marks fields discovered from the backend at runtime.
	SourceDynamic Source = "dynamic"
)

// Confidence grades how reliable a field definition is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Frequency grades how often an access path is used in practice.
type Frequency string

const (
	FrequencyHigh   Frequency = "high"
	FrequencyMedium Frequency = "medium"
	FrequencyLow    Frequency = "low"
)

// AccessPath is one addressable dot-notation location within a field.
type AccessPath struct {
	// Path is the dot-notation string, e.g. "assignee.displayName".
	Path string `json:"path"`

	// Description explains what the path resolves to.
	Description string `json:"description"`

	// Type is the resolved value type at this path.
	Type string `json:"type"`

	// Frequency indicates how commonly this path is requested.
	Frequency Frequency `json:"frequency"`
}

// FieldDefinition describes one addressable field of an entity type.
type FieldDefinition struct {
	// ID is unique within an entity type (e.g. "assignee", "customfield_10016").
	ID string `json:"id"`

	// Name is the human-readable field name.
	Name string `json:"name"`

	// Description explains the field's purpose.
	Description string `json:"description"`

	// Type is the top-level value shape of the field.
	Type FieldType `json:"type"`

	// AccessPaths enumerates the addressable locations within the field.
	AccessPaths []AccessPath `json:"accessPaths"`

	// Examples are valid paths shown to callers in documentation output.
	Examples []string `json:"examples,omitempty"`

	// CommonUsage lists path sets that are frequently requested together.
	CommonUsage [][]string `json:"commonUsage,omitempty"`

	// Source records whether the definition is compiled in or discovered.
	Source Source `json:"source"`

	// Confidence grades the reliability of the definition.
	Confidence Confidence `json:"confidence"`
}

// ResourceDefinition is the complete field catalog for one entity type.
type ResourceDefinition struct {
	// URI is the resource identifier, e.g. "jira://issue/fields".
	URI string `json:"uri"`

	// EntityType names the backend object category (issue, project, ...).
	EntityType string `json:"entityType"`

	// Fields maps field ID to its definition.
	Fields map[string]*FieldDefinition `json:"fields"`

	// PathIndex maps every access path to its owning field ID.
	PathIndex map[string]string `json:"pathIndex"`

	// TotalFields is always len(Fields).
	TotalFields int `json:"totalFields"`

	// Version identifies the catalog revision.
	Version string `json:"version"`

	// LastUpdated is when the definition was built.
	LastUpdated time.Time `json:"lastUpdated"`
}

// EnhancedResourceDefinition is a ResourceDefinition augmented with
// dynamically discovered fields for a single read.
type EnhancedResourceDefinition struct {
	ResourceDefinition

	// DynamicFields counts the dynamic fields accepted by fusion.
	DynamicFields int `json:"dynamicFields"`

	// LastDynamicUpdate is when dynamic fields were last merged in.
	LastDynamicUpdate time.Time `json:"lastDynamicUpdate,omitempty"`
}
