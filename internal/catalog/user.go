package catalog

// userFields returns the static field definitions for the user entity type.
func userFields() []*FieldDefinition {
	return []*FieldDefinition{
		{
			ID:          "accountId",
			Name:        "Account ID",
			Description: "Unique account identifier",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "accountId", Description: "Account ID", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"accountId"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "displayName",
			Name:        "Display Name",
			Description: "Name shown in the UI",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "displayName", Description: "User display name", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"displayName"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "emailAddress",
			Name:        "Email Address",
			Description: "User email address (subject to privacy settings)",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "emailAddress", Description: "Email address", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"emailAddress"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
		{
			ID:          "active",
			Name:        "Active",
			Description: "Whether the account is active",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "active", Description: "Active flag", Type: "boolean", Frequency: FrequencyMedium},
			},
			Examples:   []string{"active"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "timeZone",
			Name:        "Time Zone",
			Description: "User's configured time zone",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "timeZone", Description: "IANA time zone name", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"timeZone"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
		{
			ID:          "avatarUrls",
			Name:        "Avatar URLs",
			Description: "Avatar image URLs by size",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "avatarUrls.48x48", Description: "48x48 avatar URL", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"avatarUrls.48x48"},
			Source:     SourceStatic,
			Confidence: ConfidenceLow,
		},
	}
}
