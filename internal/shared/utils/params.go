package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"prio/internal/shared/errors"
	"prio/internal/shared/id"
)

// ParseSIDParam parses and validates a prefixed short ID from a URL path
// parameter. paramName is the Gin route parameter name (e.g. "issue_id"),
// prefix the expected SID prefix (e.g. id.PrefixIssue), entityName is used in
// error messages.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewBadRequestError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewBadRequestError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParseSlugParam reads a non-empty slug path parameter.
func ParseSlugParam(c *gin.Context, paramName, entityName string) (string, error) {
	slug := c.Param(paramName)
	if slug == "" {
		return "", errors.NewBadRequestError(entityName + " slug is required")
	}
	return slug, nil
}
