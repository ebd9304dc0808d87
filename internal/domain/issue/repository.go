package issue

import "context"

// Repository resolves issues within their workspace/project scope. A lookup
// that escapes its scope (wrong project, wrong workspace slug) behaves like a
// miss.
type Repository interface {
	FindScoped(ctx context.Context, issueSID, projectSID, workspaceSlug string) (*Issue, error)
}
