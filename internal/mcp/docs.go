package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `buildpro manages a construction company's working data: projects, tasks, team, documents, clients and inventory.

Core concepts:
- Everything you read comes from an in-memory workspace loaded from storage at startup; writes appear immediately and persist in the background.
- Visibility is role-based. Projects, tasks, team members and documents are filtered to the user's project grants; clients and inventory are company-wide.
- A record the user cannot see reads as absent, not as forbidden.
- Creating a project grants it to the creator automatically.

Workflow:
1) Orient: call workspace_status, then list_projects.
2) Drill in: get_project, list_tasks, list_documents, list_team_members.
3) Write: create/update/delete tools mirror the list tools. Partial updates leave omitted fields unchanged.
4) Watch syncFailures in workspace_status: a listed collection means the last background write did not reach storage.

Docs:
- buildpro://docs/index (what to read when)
- buildpro://docs/visibility (who sees what)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "buildpro://docs/index",
		Name:        "docs_index",
		Title:       "buildpro docs index",
		Description: "Entry point for agent-facing docs.",
		Content: `# buildpro: Agent Docs Index

## Collections

- projects: the portfolio. Each project carries budget, progress, health, a denormalized task counter, optional site zones and a weather stamp.
- tasks: work items with a soft projectId reference.
- team: the workforce roster, including certifications.
- documents: the document register, denormalized with the project name.
- clients: company-wide client book. Never filtered.
- inventory: stock items keyed by SKU. Status derives from stock vs threshold. Never filtered.

## Writing

Create calls return the stored record including any generated id. Update
calls are partial: omitted fields keep their values, and nested values such
as a project's zones are replaced wholesale.

## Consistency

Writes are optimistic. Reads reflect your write immediately; persistence
happens in the background. Check workspace_status.syncFailures if you need
to know the write reached storage.
`,
	},
	{
		URI:         "buildpro://docs/visibility",
		Name:        "docs_visibility",
		Title:       "Visibility rules",
		Description: "How role-based project grants filter each collection.",
		Content: `# Visibility rules

A user has a role and a set of granted project ids. The grant "ALL" or the
super_admin role makes every project visible.

- projects: filtered to granted ids.
- tasks: visible when their project is visible.
- team: visible when the member's current assignment is visible. Members
  without an assignment only appear for users who see all projects.
- documents: visible when their project is visible.
- clients, inventory: always visible.

Grants can widen mid-session (creating a project grants it to you); the next
read reflects the new grant with no reload.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
