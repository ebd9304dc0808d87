// Package issue exposes the parent issue entity as seen by the checklist
// module: a scoped read-only directory, not the full issue aggregate.
package issue

import "fmt"

type Issue struct {
	id            uint
	sid           string
	projectID     uint
	projectSID    string
	workspaceID   uint
	workspaceSlug string
	sequenceID    int
	name          string
}

// ReconstructIssue rehydrates an issue from persistence.
func ReconstructIssue(
	issueID uint,
	sid string,
	projectID uint,
	projectSID string,
	workspaceID uint,
	workspaceSlug string,
	sequenceID int,
	name string,
) (*Issue, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("issue SID is required")
	}
	if projectID == 0 || workspaceID == 0 {
		return nil, fmt.Errorf("issue must carry project and workspace references")
	}

	return &Issue{
		id:            issueID,
		sid:           sid,
		projectID:     projectID,
		projectSID:    projectSID,
		workspaceID:   workspaceID,
		workspaceSlug: workspaceSlug,
		sequenceID:    sequenceID,
		name:          name,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) SID() string {
	return i.sid
}

func (i *Issue) ProjectID() uint {
	return i.projectID
}

func (i *Issue) ProjectSID() string {
	return i.projectSID
}

func (i *Issue) WorkspaceID() uint {
	return i.workspaceID
}

func (i *Issue) WorkspaceSlug() string {
	return i.workspaceSlug
}

func (i *Issue) SequenceID() int {
	return i.sequenceID
}

func (i *Issue) Name() string {
	return i.name
}
