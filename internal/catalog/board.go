package catalog

// boardFields returns the static field definitions for the board entity type.
func boardFields() []*FieldDefinition {
	return []*FieldDefinition{
		{
			ID:          "id",
			Name:        "ID",
			Description: "Board identifier",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "id", Description: "Board ID", Type: "number", Frequency: FrequencyHigh},
			},
			Examples:   []string{"id"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "name",
			Name:        "Name",
			Description: "Board display name",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "name", Description: "Board name", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "type",
			Name:        "Type",
			Description: "Board type (scrum or kanban)",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "type", Description: "Board type", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"type"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "location",
			Name:        "Location",
			Description: "Project or user the board belongs to",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "location.projectKey", Description: "Owning project key", Type: "string", Frequency: FrequencyMedium},
				{Path: "location.name", Description: "Owning location name", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"location.projectKey"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
	}
}
