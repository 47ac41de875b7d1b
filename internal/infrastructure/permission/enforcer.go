// Package permission backs the coarse route-level gate with casbin. The
// policy table mirrors the role/action matrix; ownership rules stay in the
// access package and are checked per entity.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/shared/logger"
)

const rbacModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := e.syncPolicies(); err != nil {
		return nil, err
	}
	return e, nil
}

// Enforce reports whether the role may attempt the action at all.
func (e *Enforcer) Enforce(role string, action access.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// syncPolicies rebuilds the stored policy from the in-code matrix so the
// table always matches the compiled rules.
func (e *Enforcer) syncPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.enforcer.ClearPolicy()
	for _, action := range access.Actions() {
		for _, role := range access.RolesAllowed(action) {
			if _, err := e.enforcer.AddPolicy(string(role), string(action)); err != nil {
				return fmt.Errorf("failed to add policy: %w", err)
			}
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}
	return nil
}
