package catalog

// issueFields returns the static field definitions for the issue entity type.
func issueFields() []*FieldDefinition {
	return []*FieldDefinition{
		{
			ID:          "summary",
			Name:        "Summary",
			Description: "One-line summary of the issue",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "summary", Description: "Issue summary text", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"summary"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "description",
			Name:        "Description",
			Description: "Full issue description body",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "description", Description: "Issue description text", Type: "string", Frequency: FrequencyHigh},
			},
			Examples:   []string{"description"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "status",
			Name:        "Status",
			Description: "Current workflow status of the issue",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "status.name", Description: "Status display name", Type: "string", Frequency: FrequencyHigh},
				{Path: "status.id", Description: "Status ID", Type: "string", Frequency: FrequencyLow},
				{Path: "status.statusCategory.key", Description: "Status category key (new, indeterminate, done)", Type: "string", Frequency: FrequencyHigh},
				{Path: "status.statusCategory.name", Description: "Status category display name", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:    []string{"status.name", "status.statusCategory.key"},
			CommonUsage: [][]string{{"status.name"}, {"status.name", "status.statusCategory.key"}},
			Source:      SourceStatic,
			Confidence:  ConfidenceHigh,
		},
		{
			ID:          "assignee",
			Name:        "Assignee",
			Description: "User the issue is assigned to",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "assignee.displayName", Description: "Assignee display name", Type: "string", Frequency: FrequencyHigh},
				{Path: "assignee.emailAddress", Description: "Assignee email address", Type: "string", Frequency: FrequencyMedium},
				{Path: "assignee.accountId", Description: "Assignee account ID", Type: "string", Frequency: FrequencyMedium},
				{Path: "assignee.active", Description: "Whether the assignee account is active", Type: "boolean", Frequency: FrequencyLow},
			},
			Examples:    []string{"assignee.displayName", "assignee.emailAddress"},
			CommonUsage: [][]string{{"assignee.displayName"}, {"assignee.displayName", "assignee.accountId"}},
			Source:      SourceStatic,
			Confidence:  ConfidenceHigh,
		},
		{
			ID:          "reporter",
			Name:        "Reporter",
			Description: "User who reported the issue",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "reporter.displayName", Description: "Reporter display name", Type: "string", Frequency: FrequencyHigh},
				{Path: "reporter.emailAddress", Description: "Reporter email address", Type: "string", Frequency: FrequencyMedium},
				{Path: "reporter.accountId", Description: "Reporter account ID", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"reporter.displayName"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "priority",
			Name:        "Priority",
			Description: "Issue priority level",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "priority.name", Description: "Priority display name", Type: "string", Frequency: FrequencyHigh},
				{Path: "priority.id", Description: "Priority ID", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"priority.name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "issuetype",
			Name:        "Issue Type",
			Description: "Type of the issue (Bug, Story, Task, ...)",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "issuetype.name", Description: "Issue type name", Type: "string", Frequency: FrequencyHigh},
				{Path: "issuetype.id", Description: "Issue type ID", Type: "string", Frequency: FrequencyLow},
				{Path: "issuetype.subtask", Description: "Whether this is a subtask type", Type: "boolean", Frequency: FrequencyLow},
			},
			Examples:   []string{"issuetype.name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "project",
			Name:        "Project",
			Description: "Project the issue belongs to",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "project.key", Description: "Project key", Type: "string", Frequency: FrequencyHigh},
				{Path: "project.name", Description: "Project name", Type: "string", Frequency: FrequencyMedium},
				{Path: "project.id", Description: "Project ID", Type: "string", Frequency: FrequencyLow},
			},
			Examples:    []string{"project.key"},
			CommonUsage: [][]string{{"project.key", "project.name"}},
			Source:      SourceStatic,
			Confidence:  ConfidenceHigh,
		},
		{
			ID:          "created",
			Name:        "Created",
			Description: "Timestamp when the issue was created",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "created", Description: "Creation timestamp (ISO 8601)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"created"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "updated",
			Name:        "Updated",
			Description: "Timestamp of the last issue update",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "updated", Description: "Last update timestamp (ISO 8601)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"updated"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "duedate",
			Name:        "Due Date",
			Description: "Date the issue is due",
			Type:        TypeString,
			AccessPaths: []AccessPath{
				{Path: "duedate", Description: "Due date (YYYY-MM-DD)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"duedate"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "labels",
			Name:        "Labels",
			Description: "Labels attached to the issue",
			Type:        TypeArray,
			AccessPaths: []AccessPath{
				{Path: "labels", Description: "List of label strings", Type: "array", Frequency: FrequencyMedium},
			},
			Examples:   []string{"labels"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "components",
			Name:        "Components",
			Description: "Project components the issue touches",
			Type:        TypeArray,
			AccessPaths: []AccessPath{
				{Path: "components", Description: "List of component objects", Type: "array", Frequency: FrequencyMedium},
			},
			Examples:   []string{"components"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "fixVersions",
			Name:        "Fix Versions",
			Description: "Versions the issue is fixed in",
			Type:        TypeArray,
			AccessPaths: []AccessPath{
				{Path: "fixVersions", Description: "List of version objects", Type: "array", Frequency: FrequencyMedium},
			},
			Examples:   []string{"fixVersions"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "resolution",
			Name:        "Resolution",
			Description: "How the issue was resolved",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "resolution.name", Description: "Resolution name (Fixed, Won't Fix, ...)", Type: "string", Frequency: FrequencyMedium},
			},
			Examples:   []string{"resolution.name"},
			Source:     SourceStatic,
			Confidence: ConfidenceHigh,
		},
		{
			ID:          "parent",
			Name:        "Parent",
			Description: "Parent issue for subtasks and epic children",
			Type:        TypeObject,
			AccessPaths: []AccessPath{
				{Path: "parent.key", Description: "Parent issue key", Type: "string", Frequency: FrequencyMedium},
				{Path: "parent.fields.summary", Description: "Parent issue summary", Type: "string", Frequency: FrequencyLow},
			},
			Examples:   []string{"parent.key"},
			Source:     SourceStatic,
			Confidence: ConfidenceMedium,
		},
	}
}
