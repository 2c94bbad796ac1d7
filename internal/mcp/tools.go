package mcp

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Projects
		{
			Name:        "list_projects",
			Description: "List the projects visible to the current user, newest first",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "get_project",
			Description: "Get a single project by ID. Projects outside the user's grants read as absent",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "create_project",
			Description: "Create a project. The creator is granted access automatically unless they already see all projects",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Unique project identifier (optional, will be generated if not provided)",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "Project display name",
					},
					"code": map[string]any{
						"type":        "string",
						"description": "Short project code, e.g. CCP-2025",
					},
					"description": map[string]any{"type": "string"},
					"location":    map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"Commercial", "Residential", "Infrastructure", "Industrial", "Healthcare"},
					},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"Active", "Planning", "Delayed", "Completed", "On Hold"},
					},
					"health": map[string]any{
						"type": "string",
						"enum": []string{"Good", "At Risk", "Critical"},
					},
					"progress": map[string]any{
						"type":        "integer",
						"description": "Completion percentage, 0-100",
					},
					"budget":    map[string]any{"type": "number"},
					"spent":     map[string]any{"type": "number"},
					"startDate": map[string]any{"type": "string"},
					"endDate":   map[string]any{"type": "string"},
					"manager":   map[string]any{"type": "string"},
					"image":     map[string]any{"type": "string"},
					"teamSize":  map[string]any{"type": "integer"},
				},
				"required": []string{"name", "type", "status", "health"},
			},
		},
		{
			Name:        "update_project",
			Description: "Update fields on a project. Omitted fields are left unchanged",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"name":        map[string]any{"type": "string"},
					"code":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"location":    map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"Commercial", "Residential", "Infrastructure", "Industrial", "Healthcare"},
					},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"Active", "Planning", "Delayed", "Completed", "On Hold"},
					},
					"health": map[string]any{
						"type": "string",
						"enum": []string{"Good", "At Risk", "Critical"},
					},
					"progress":   map[string]any{"type": "integer"},
					"budget":     map[string]any{"type": "number"},
					"spent":      map[string]any{"type": "number"},
					"startDate":  map[string]any{"type": "string"},
					"endDate":    map[string]any{"type": "string"},
					"manager":    map[string]any{"type": "string"},
					"image":      map[string]any{"type": "string"},
					"teamSize":   map[string]any{"type": "integer"},
					"aiAnalysis": map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_project",
			Description: "Delete a project. Tasks and documents that reference it are kept",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "add_zone",
			Description: "Add a labeled zone to a project site plan",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"projectId": map[string]any{
						"type":        "string",
						"description": "Project ID",
					},
					"label": map[string]any{
						"type":        "string",
						"description": "Zone display label",
					},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"danger", "warning", "success", "info"},
					},
					"top":    map[string]any{"type": "number", "description": "Top offset as a percentage of the plan"},
					"left":   map[string]any{"type": "number", "description": "Left offset as a percentage of the plan"},
					"width":  map[string]any{"type": "number"},
					"height": map[string]any{"type": "number"},
					"protocol": map[string]any{
						"type":        "string",
						"description": "Safety protocol in force inside the zone",
					},
					"trigger": map[string]any{
						"type":        "string",
						"description": "Alert trigger condition",
					},
				},
				"required": []string{"projectId", "label", "type"},
			},
		},

		// Tasks
		{
			Name:        "list_tasks",
			Description: "List tasks for visible projects",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "create_task",
			Description: "Create a task against a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"title": map[string]any{"type": "string"},
					"projectId": map[string]any{
						"type":        "string",
						"description": "Owning project ID",
					},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"To Do", "In Progress", "Done", "Blocked"},
					},
					"priority": map[string]any{
						"type": "string",
						"enum": []string{"High", "Medium", "Low"},
					},
					"assigneeId":   map[string]any{"type": "string"},
					"assigneeName": map[string]any{"type": "string"},
					"assigneeType": map[string]any{
						"type":        "string",
						"enum":        []string{"user", "role"},
						"description": "Whether the assignee is a person or a role label",
					},
					"dueDate":     map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []string{"title", "projectId", "status", "priority", "assigneeType"},
			},
		},
		{
			Name:        "update_task",
			Description: "Update fields on a task. Omitted fields are left unchanged",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"title": map[string]any{"type": "string"},
					"projectId": map[string]any{
						"type":        "string",
						"description": "Move the task to another project",
					},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"To Do", "In Progress", "Done", "Blocked"},
					},
					"priority": map[string]any{
						"type": "string",
						"enum": []string{"High", "Medium", "Low"},
					},
					"assigneeId":   map[string]any{"type": "string"},
					"assigneeName": map[string]any{"type": "string"},
					"assigneeType": map[string]any{
						"type": "string",
						"enum": []string{"user", "role"},
					},
					"dueDate":     map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []string{"id"},
			},
		},

		// Team
		{
			Name:        "list_team_members",
			Description: "List the workforce roster filtered by project assignment",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "add_team_member",
			Description: "Add a person to the roster",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"name":     map[string]any{"type": "string"},
					"initials": map[string]any{"type": "string"},
					"role": map[string]any{
						"type":        "string",
						"description": "Job title, e.g. Foreman",
					},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"On Site", "Off Site", "On Break", "Leave"},
					},
					"projectId": map[string]any{
						"type":        "string",
						"description": "Current assignment (optional)",
					},
					"projectName": map[string]any{"type": "string"},
					"phone":       map[string]any{"type": "string"},
					"email":       map[string]any{"type": "string"},
					"location":    map[string]any{"type": "string"},
					"bio":         map[string]any{"type": "string"},
				},
				"required": []string{"name", "status"},
			},
		},

		// Documents
		{
			Name:        "list_documents",
			Description: "List documents for visible projects",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "add_document",
			Description: "Register a document against a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"name": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []string{"PDF", "Spreadsheet", "Document", "Image", "CAD", "Other"},
					},
					"projectId": map[string]any{"type": "string"},
					"size":      map[string]any{"type": "string"},
					"date":      map[string]any{"type": "string"},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"Approved", "Pending", "Draft"},
					},
					"url": map[string]any{"type": "string"},
				},
				"required": []string{"name", "type", "projectId", "status"},
			},
		},

		// Clients
		{
			Name:        "list_clients",
			Description: "List the company-wide client book",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "add_client",
			Description: "Add a client to the book",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":            map[string]any{"type": "string"},
					"name":          map[string]any{"type": "string"},
					"contactPerson": map[string]any{"type": "string"},
					"role": map[string]any{
						"type":        "string",
						"description": "Contact person's role",
					},
					"email": map[string]any{"type": "string"},
					"phone": map[string]any{"type": "string"},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"Active", "Lead", "Inactive"},
					},
					"tier": map[string]any{
						"type": "string",
						"enum": []string{"Platinum", "Gold", "Silver", "Government"},
					},
				},
				"required": []string{"name", "status", "tier"},
			},
		},

		// Inventory
		{
			Name:        "list_inventory",
			Description: "List stock items across all sites",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "add_inventory_item",
			Description: "Add a stock item. Status is derived from stock level and threshold",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "SKU, e.g. INV-001 (optional, generated if omitted)",
					},
					"name":     map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
					"stock":    map[string]any{"type": "integer"},
					"unit":     map[string]any{"type": "string"},
					"threshold": map[string]any{
						"type":        "integer",
						"description": "Reorder threshold",
					},
					"location":      map[string]any{"type": "string"},
					"lastOrderDate": map[string]any{"type": "string"},
					"costPerUnit":   map[string]any{"type": "number"},
				},
				"required": []string{"name", "stock", "threshold"},
			},
		},
		{
			Name:        "update_inventory_item",
			Description: "Update a stock item. Status is re-derived when stock or threshold changes unless set explicitly",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":        map[string]any{"type": "string"},
					"name":      map[string]any{"type": "string"},
					"category":  map[string]any{"type": "string"},
					"stock":     map[string]any{"type": "integer"},
					"unit":      map[string]any{"type": "string"},
					"threshold": map[string]any{"type": "integer"},
					"location":  map[string]any{"type": "string"},
					"status": map[string]any{
						"type": "string",
						"enum": []string{"In Stock", "Low Stock", "Out of Stock"},
					},
					"lastOrderDate": map[string]any{"type": "string"},
					"costPerUnit":   map[string]any{"type": "number"},
				},
				"required": []string{"id"},
			},
		},

		// Status
		{
			Name:        "workspace_status",
			Description: "Report the current user, visible record counts and any collections that failed to persist",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}
