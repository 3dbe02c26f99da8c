package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"leavehub/internal/balance"
	"leavehub/internal/leavetype"
	usererrors "leavehub/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	leaveTypes leavetype.Repository
	balances   balance.Repository
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	leaveTypes leavetype.Repository,
	balances balance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		leaveTypes: leaveTypes,
		balances:   balances,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested",
		zap.String("username", req.Username),
		zap.String("role", req.Role),
	)

	if !ValidRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	var created *User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qusers := s.repo.WithTx(tx)

		var managerID *uuid.UUID
		if req.ManagerUsername != nil && *req.ManagerUsername != "" {
			mgr, err := qusers.FindByUsername(ctx, *req.ManagerUsername)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return usererrors.ErrManagerNotFound
				}
				return err
			}
			managerID = &mgr.ID
		}

		var hashed string
		if req.Password != "" {
			h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			hashed = string(h)
		}

		// Provisioning is upsert-by-username: re-running an admin script
		// updates the account instead of failing on the unique index.
		existing, err := qusers.FindByUsername(ctx, req.Username)
		if err == nil {
			existing.Email = req.Email
			existing.Role = req.Role
			existing.ManagerID = managerID
			if hashed != "" {
				existing.Password = hashed
			}
			if err := qusers.Update(ctx, existing); err != nil {
				return mapRepositoryError(err)
			}
			created = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		u := &User{
			Username:  req.Username,
			Email:     req.Email,
			Role:      req.Role,
			ManagerID: managerID,
			Password:  hashed,
		}
		if err := qusers.Create(ctx, u); err != nil {
			return mapRepositoryError(err)
		}
		created = u

		if req.Role != RoleEmployee {
			return nil
		}
		return s.seedBalances(ctx, tx, u, req.InitialQuotas)
	})
	if err != nil {
		s.logger.Warn("create user failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return UserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", created.ID.String()),
		zap.String("username", created.Username),
		zap.String("role", created.Role),
	)
	return mapToResponse(*created), nil
}

// seedBalances provisions one balance per leave type for a new employee,
// taking the explicit quota when the admin supplied one and the type's
// default otherwise.
func (s *service) seedBalances(ctx context.Context, tx *gorm.DB, u *User, quotas map[string]int) error {
	types, err := s.leaveTypes.WithTx(tx).FindAll(ctx)
	if err != nil {
		return err
	}

	qbalances := s.balances.WithTx(tx)
	for _, lt := range types {
		days := lt.DefaultQuota
		if override, ok := quotas[lt.ID.String()]; ok {
			days = override
		}
		b := &balance.LeaveBalance{
			UserID:        u.ID,
			LeaveTypeID:   lt.ID,
			RemainingDays: days,
		}
		if err := qbalances.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}
