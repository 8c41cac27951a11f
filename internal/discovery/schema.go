package discovery

import "github.com/meridian-labs/jira-mcp/internal/catalog"

// SchemaKind is a closed set of backend schema node kinds. Raw schema type
// names map onto this enum before any catalog conversion happens, so the
// conversion below is total.
type SchemaKind int

const (
	KindUnknown SchemaKind = iota
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
)

// String returns the kind's wire name.
func (k SchemaKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// FieldType maps a schema kind to the catalog's field type vocabulary.
func (k SchemaKind) FieldType() catalog.FieldType {
	switch k {
	case KindArray:
		return catalog.TypeArray
	case KindObject:
		return catalog.TypeObject
	default:
		return catalog.TypeString
	}
}

// kindOf classifies a raw schema. A missing schema is KindUnknown.
func kindOf(schema *RawFieldSchema) SchemaKind {
	if schema == nil {
		return KindUnknown
	}
	switch schema.Type {
	case "string", "date", "datetime":
		return KindString
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "array":
		return KindArray
	case "option", "user", "project", "version", "object", "issuetype", "priority", "status":
		return KindObject
	default:
		return KindUnknown
	}
}
