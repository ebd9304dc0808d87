package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prio/internal/domain/issue"
	dbutil "prio/internal/shared/db"
)

// GormIssueRepository implements issue.Repository.
type GormIssueRepository struct {
	db *gorm.DB
}

// NewGormIssueRepository creates a GormIssueRepository.
func NewGormIssueRepository(db *gorm.DB) *GormIssueRepository {
	return &GormIssueRepository{db: db}
}

// scopedIssueRow carries the joined lookup result. Column tags are required:
// GORM's naming strategy would otherwise derive s_id/project_s_id and the
// scan would miss the aliased selects.
type scopedIssueRow struct {
	ID            uint   `gorm:"column:id"`
	SID           string `gorm:"column:sid"`
	ProjectID     uint   `gorm:"column:project_id"`
	ProjectSID    string `gorm:"column:project_sid"`
	WorkspaceID   uint   `gorm:"column:workspace_id"`
	WorkspaceSlug string `gorm:"column:workspace_slug"`
	SequenceID    int    `gorm:"column:sequence_id"`
	Name          string `gorm:"column:name"`
}

// FindScoped resolves an issue only when it sits inside the named project and
// workspace. A wrong project or workspace behaves like a missing issue, so
// URLs cannot be used to enumerate other scopes.
func (r *GormIssueRepository) FindScoped(ctx context.Context, issueSID, projectSID, workspaceSlug string) (*issue.Issue, error) {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	var row scopedIssueRow
	err := tx.Table("issues").
		Select("issues.id, issues.sid, issues.project_id, projects.sid AS project_sid, issues.workspace_id, workspaces.slug AS workspace_slug, issues.sequence_id, issues.name").
		Joins("JOIN projects ON projects.id = issues.project_id AND projects.deleted_at IS NULL").
		Joins("JOIN workspaces ON workspaces.id = issues.workspace_id AND workspaces.deleted_at IS NULL").
		Where("issues.sid = ? AND projects.sid = ? AND workspaces.slug = ?", issueSID, projectSID, workspaceSlug).
		Where("issues.deleted_at IS NULL").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}

	return issue.ReconstructIssue(
		row.ID,
		row.SID,
		row.ProjectID,
		row.ProjectSID,
		row.WorkspaceID,
		row.WorkspaceSlug,
		row.SequenceID,
		row.Name,
	)
}
