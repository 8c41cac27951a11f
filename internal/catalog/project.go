package catalog

// projectFields returns the static field definitions for the project entity type.
func projectFields() []*FieldDefinition {
	return []*FieldDefinition{
		{
			ID:          "key",
			Name:        "Key",
			Description: "Short project key used in issue keys",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "key", Description: "Project key (e.g. PROJ)", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"key"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "name",
			Name:        "Name",
			Description: "Project display name",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "name", Description: "Project name", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "lead",
			Name:        "Lead",
			Description: "Project lead user",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "lead.displayName", Description: "Project lead display name", Type: "string", Frequency: FrequencyMedium},
				{Path: "lead.accountId", Description: "Project lead account ID", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"lead.displayName"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "projectCategory",
			Name:        "Category",
			Description: "Category the project is grouped under",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "projectCategory.name", Description: "Category name", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"projectCategory.name"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
		{
			ID:          "projectTypeKey",
			Name:        "Project Type",
			Description: "Project type (software, business, service_desk)",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "projectTypeKey", Description: "Project type key", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"projectTypeKey"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "description",
			Name:        "Description",
			Description: "Project description",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "description", Description: "Project description text", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"description"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
	}
}
