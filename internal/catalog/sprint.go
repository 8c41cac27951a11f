package catalog

// sprintFields returns the static field definitions for the sprint entity type.
func sprintFields() []*FieldDefinition {
	return []*FieldDefinition{
		{
			ID:          "id",
			Name:        "ID",
			Description: "Sprint identifier",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "id", Description: "Sprint ID", Type: "number", Frequency: FrequencyHigh},
			},
			Examples:   []string{"id"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "name",
			Name:        "Name",
			Description: "Sprint display name",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "name", Description: "Sprint name", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "state",
			Name:        "State",
			Description: "Sprint state (future, active, closed)",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "state", Description: "Sprint state", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"state"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "startDate",
			Name:        "Start Date",
			Description: "Sprint start timestamp",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "startDate", Description: "Start timestamp (ISO 8601)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"startDate"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "endDate",
			Name:        "End Date",
			Description: "Sprint end timestamp",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "endDate", Description: "End timestamp (ISO 8601)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"endDate"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "goal",
			Name:        "Goal",
			Description: "Sprint goal statement",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "goal", Description: "Sprint goal text", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"goal"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
		{
			ID:          "originBoardId",
			Name:        "Origin Board",
			Description: "Board the sprint was created on",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "originBoardId", Description: "Origin board ID", Type: "number", Frequency: FrequencyLow},
			},
			Examples:   []string{"originBoardId"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
	}
}
