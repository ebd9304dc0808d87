// Package permission evaluates project-scoped authorization with Casbin.
// Roles are granted per project domain; policies describe what each role may
// do to an entity type within that project.
package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// Entities known to the authorization layer.
const (
	EntityChecklistItem = "checklist_item"
)

// Actions on project entities.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Project roles.
const (
	RoleAdmin  = "role:admin"
	RoleMember = "role:member"
	RoleGuest  = "role:guest"
)

// defaultModel is used when no model file is configured.
const defaultModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && (p.dom == "*" || r.dom == p.dom) && r.obj == p.obj && regexMatch(r.act, p.act)
`

// Service wraps the Casbin enforcer with project-entity helpers.
type Service struct {
	enforcer *casbin.Enforcer
}

// NewService builds the enforcer backed by the database. modelPath may be
// empty, in which case the built-in model is used.
func NewService(db *gorm.DB, modelPath string) (*Service, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("create casbin adapter: %w", err)
	}

	var m casbinmodel.Model
	if modelPath != "" {
		m, err = casbinmodel.NewModelFromFile(modelPath)
	} else {
		m, err = casbinmodel.NewModelFromString(defaultModel)
	}
	if err != nil {
		return nil, fmt.Errorf("load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load casbin policy: %w", err)
	}

	svc := &Service{enforcer: enforcer}
	if err := svc.ensureRolePolicies(); err != nil {
		return nil, err
	}
	return svc, nil
}

// ensureRolePolicies installs the role capability matrix. Policies are keyed
// by role with a wildcard domain; membership grants bind users to roles
// inside a concrete project.
func (s *Service) ensureRolePolicies() error {
	policies := [][]string{
		{RoleAdmin, "*", EntityChecklistItem, ".*"},
		{RoleMember, "*", EntityChecklistItem, "read|create|update|delete"},
		{RoleGuest, "*", EntityChecklistItem, "read"},
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2], p[3]); err != nil {
			return fmt.Errorf("add policy: %w", err)
		}
	}
	return nil
}

// CanAccess reports whether the user may perform the action on the entity
// type within the project.
func (s *Service) CanAccess(userSID, projectSID, entity, action string) (bool, error) {
	ok, err := s.enforcer.Enforce(userSID, projectSID, entity, action)
	if err != nil {
		return false, fmt.Errorf("enforce: %w", err)
	}
	return ok, nil
}

// GrantRole binds a user to a role within a project.
func (s *Service) GrantRole(userSID, projectSID, role string) error {
	if _, err := s.enforcer.AddRoleForUserInDomain(userSID, role, projectSID); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

// RevokeRole removes a user's role within a project.
func (s *Service) RevokeRole(userSID, projectSID, role string) error {
	if _, err := s.enforcer.DeleteRoleForUserInDomain(userSID, role, projectSID); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	return nil
}
