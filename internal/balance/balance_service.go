package balance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	balanceerrors "leavehub/internal/balance/errors"
	"leavehub/internal/leavetype"
	leavetypeerrors "leavehub/internal/leavetype/errors"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	ListForUser(ctx context.Context, userID string) ([]BalanceResponse, error)
	// Set provisions or overrides a balance row. Admin-only; the workflow
	// never calls it.
	Set(ctx context.Context, userID string, req SetBalanceRequest) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	leaveTypes leavetype.Repository
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, leaveTypes leavetype.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{db: db, repo: repo, leaveTypes: leaveTypes, logger: l}
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]BalanceResponse, error) {
	balances, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = BalanceResponse{
			LeaveTypeID:   b.LeaveTypeID.String(),
			RemainingDays: b.RemainingDays,
		}
		if b.LeaveType != nil {
			resp[i].LeaveTypeName = b.LeaveType.Name
		}
	}
	return resp, nil
}

func (s *service) Set(ctx context.Context, userID string, req SetBalanceRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return balanceerrors.ErrUserNotFound
	}
	typeUUID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		b, err := qtx.FindForUpdate(ctx, userID, req.LeaveTypeID)
		if err == nil {
			b.RemainingDays = req.RemainingDays
			return qtx.Update(ctx, b)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// No row yet: verify both sides before creating one.
		exists, err := qtx.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return balanceerrors.ErrUserNotFound
		}
		if _, err := s.leaveTypes.WithTx(tx).FindByID(ctx, req.LeaveTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavetypeerrors.ErrLeaveTypeNotFound
			}
			return err
		}

		return qtx.Create(ctx, &LeaveBalance{
			ID:            uuid.New(),
			UserID:        userUUID,
			LeaveTypeID:   typeUUID,
			RemainingDays: req.RemainingDays,
		})
	})
	if err != nil {
		s.logger.Warn("set balance failed",
			zap.String("user_id", userID),
			zap.String("leave_type_id", req.LeaveTypeID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("balance set",
		zap.String("user_id", userID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("remaining_days", req.RemainingDays),
	)
	return nil
}
