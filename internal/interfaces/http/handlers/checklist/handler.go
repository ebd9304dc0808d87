// Package checklist exposes the checklist item HTTP endpoints.
package checklist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prio/internal/application/checklist/usecases"
	"prio/internal/interfaces/http/middleware"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/id"
	"prio/internal/shared/logger"
	"prio/internal/shared/utils"
)

// Handler handles checklist item requests.
type Handler struct {
	listItems  usecases.ListItemsExecutor
	createItem usecases.CreateItemExecutor
	getItem    usecases.GetItemExecutor
	updateItem usecases.UpdateItemExecutor
	deleteItem usecases.DeleteItemExecutor
	logger     logger.Interface
}

// NewHandler creates a Handler.
func NewHandler(
	listItems usecases.ListItemsExecutor,
	createItem usecases.CreateItemExecutor,
	getItem usecases.GetItemExecutor,
	updateItem usecases.UpdateItemExecutor,
	deleteItem usecases.DeleteItemExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listItems:  listItems,
		createItem: createItem,
		getItem:    getItem,
		updateItem: updateItem,
		deleteItem: deleteItem,
		logger:     logger,
	}
}

type scopeParams struct {
	workspaceSlug string
	projectSID    string
	issueSID      string
}

func parseScope(c *gin.Context) (scopeParams, error) {
	slug, err := utils.ParseSlugParam(c, "workspace_slug", "workspace")
	if err != nil {
		return scopeParams{}, err
	}
	projectSID, err := utils.ParseSIDParam(c, "project_id", id.PrefixProject, "project")
	if err != nil {
		return scopeParams{}, err
	}
	issueSID, err := utils.ParseSIDParam(c, "issue_id", id.PrefixIssue, "issue")
	if err != nil {
		return scopeParams{}, err
	}
	return scopeParams{workspaceSlug: slug, projectSID: projectSID, issueSID: issueSID}, nil
}

func actor(c *gin.Context) (uint, string, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return 0, "", apperrors.NewUnauthorizedError("authorization required")
	}
	userSID, ok := middleware.CurrentUserSID(c)
	if !ok {
		return 0, "", apperrors.NewUnauthorizedError("authorization required")
	}
	return userID, userSID, nil
}

// List returns an issue's checklist with the progress rollup.
func (h *Handler) List(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listItems.Execute(c.Request.Context(), usecases.ListItemsCommand{
		WorkspaceSlug: scope.workspaceSlug,
		ProjectSID:    scope.projectSID,
		IssueSID:      scope.issueSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result.Checklist)
}

// Create adds a checklist item to an issue.
func (h *Handler) Create(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorSID, err := actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItem.Execute(c.Request.Context(), usecases.CreateItemCommand{
		WorkspaceSlug: scope.workspaceSlug,
		ProjectSID:    scope.projectSID,
		IssueSID:      scope.issueSID,
		Name:          req.Name,
		AssigneeSID:   req.AssigneeID,
		IsCompleted:   req.IsCompleted,
		SortOrder:     req.SortOrder,
		ActorID:       actorID,
		ActorSID:      actorSID,
		Origin:        utils.BaseHost(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Item)
}

// Get returns a single checklist item.
func (h *Handler) Get(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	itemSID, err := utils.ParseSIDParam(c, "checklist_item_id", id.PrefixChecklistItem, "checklist item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getItem.Execute(c.Request.Context(), usecases.GetItemCommand{
		WorkspaceSlug: scope.workspaceSlug,
		ProjectSID:    scope.projectSID,
		IssueSID:      scope.issueSID,
		ItemSID:       itemSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result.Item)
}

// Update applies a partial update to a checklist item.
func (h *Handler) Update(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	itemSID, err := utils.ParseSIDParam(c, "checklist_item_id", id.PrefixChecklistItem, "checklist item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorSID, err := actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateItem.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		WorkspaceSlug:    scope.workspaceSlug,
		ProjectSID:       scope.projectSID,
		IssueSID:         scope.issueSID,
		ItemSID:          itemSID,
		Name:             req.Name,
		IsCompleted:      req.IsCompleted,
		SortOrder:        req.SortOrder,
		AssigneeProvided: req.AssigneeID.Present,
		AssigneeSID:      req.AssigneeID.Value,
		ActorID:          actorID,
		ActorSID:         actorSID,
		Origin:           utils.BaseHost(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result.Item)
}

// Delete soft-deletes a checklist item.
func (h *Handler) Delete(c *gin.Context) {
	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	itemSID, err := utils.ParseSIDParam(c, "checklist_item_id", id.PrefixChecklistItem, "checklist item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorSID, err := actor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteItem.Execute(c.Request.Context(), usecases.DeleteItemCommand{
		WorkspaceSlug: scope.workspaceSlug,
		ProjectSID:    scope.projectSID,
		IssueSID:      scope.issueSID,
		ItemSID:       itemSID,
		ActorID:       actorID,
		ActorSID:      actorSID,
		Origin:        utils.BaseHost(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
