package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

// Role names are spelled out rather than imported from the user package;
// every domain package routes through middleware, which depends on rbac, so
// importing user here would close an import cycle.
const (
	roleAdmin    = "ADMIN"
	roleManager  = "MANAGER"
	roleEmployee = "EMPLOYEE"
)

// The role set is a fixed enum, so the model and policies live in code
// instead of external files or a policy table.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies maps each role to the resource/action pairs it may perform.
var policies = [][]string{
	{roleAdmin, "users", "manage"},
	{roleAdmin, "leave-types", "manage"},
	{roleAdmin, "leave-types", "read"},
	{roleAdmin, "holidays", "manage"},
	{roleAdmin, "holidays", "read"},
	{roleAdmin, "balances", "manage"},
	{roleAdmin, "rbac", "manage"},

	{roleManager, "requests", "decide"},
	{roleManager, "requests", "read-team"},
	{roleManager, "leave-types", "read"},
	{roleManager, "holidays", "read"},

	{roleEmployee, "requests", "submit"},
	{roleEmployee, "requests", "read-own"},
	{roleEmployee, "balances", "read-own"},
	{roleEmployee, "leave-types", "read"},
	{roleEmployee, "holidays", "read"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
