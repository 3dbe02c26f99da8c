package leave

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"leavehub/internal/balance"
	balanceerrors "leavehub/internal/balance/errors"
	"leavehub/internal/holiday"
	leaveerrors "leavehub/internal/leave/errors"
	"leavehub/internal/notification"
	"leavehub/internal/shared/contextutil"
	"leavehub/internal/user"
	usererrors "leavehub/internal/user/errors"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (SubmitLeaveResponse, error)
	Approve(ctx context.Context, managerID, requestID string) (DecisionResponse, error)
	Reject(ctx context.Context, managerID, requestID string) (DecisionResponse, error)
	HistoryForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	PendingForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)
	HistoryForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	users    user.Repository
	balances balance.Repository
	holidays holiday.Repository
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	users user.Repository,
	balances balance.Repository,
	holidays holiday.Repository,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if notifier == nil {
		notifier = notification.NewNoopNotifier()
	}
	return &service{
		db:       db,
		repo:     repo,
		users:    users,
		balances: balances,
		holidays: holidays,
		notifier: notifier,
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (SubmitLeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitLeaveResponse{}, usererrors.ErrInvalidUserID
	}
	leaveTypeUUID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return SubmitLeaveResponse{}, balanceerrors.ErrBalanceNotFound
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return SubmitLeaveResponse{}, err
	}

	var (
		created *LeaveRequest
		days    int
		emp     *user.User
		mgr     *user.User
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qusers := s.users.WithTx(tx)

		emp, err = qusers.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUserNotFound
			}
			return err
		}
		if emp.ManagerID == nil {
			return leaveerrors.ErrNoManagerAssigned
		}

		if startDate.After(endDate) {
			return leaveerrors.ErrInvalidDateRange
		}
		if startDate.Before(today()) {
			return leaveerrors.ErrPastStartDate
		}

		days = BusinessDays(startDate, endDate)
		if days <= 0 {
			return leaveerrors.ErrNoBusinessDays
		}

		overlapping, err := s.holidays.WithTx(tx).FindInRange(ctx, startDate, endDate)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			dates := make([]string, len(overlapping))
			for i, h := range overlapping {
				dates[i] = h.Date.Format(dateLayout)
			}
			return leaveerrors.HolidayOverlap(dates)
		}

		bal, err := s.balances.WithTx(tx).FindByUserAndType(ctx, employeeID, req.LeaveTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return balanceerrors.ErrBalanceNotFound
			}
			return err
		}
		if bal.RemainingDays < days {
			return leaveerrors.InsufficientBalance(bal.RemainingDays, days)
		}

		mgr, err = qusers.FindByID(ctx, emp.ManagerID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = &LeaveRequest{
			ID:          uuid.New(),
			EmployeeID:  employeeUUID,
			ManagerID:   *emp.ManagerID,
			LeaveTypeID: leaveTypeUUID,
			StartDate:   startDate,
			EndDate:     endDate,
			Status:      StatusPending,
			Notes:       req.Notes,
			RequestedAt: time.Now().UTC(),
		}
		return s.repo.WithTx(tx).Create(ctx, created)
	})
	if err != nil {
		s.logger.Warn("submit leave failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SubmitLeaveResponse{}, err
	}

	managerUsername := ""
	if mgr != nil {
		managerUsername = mgr.Username
	}

	// Notification lives outside the transaction: a delivery failure must
	// never undo a committed submission.
	if nerr := s.notifier.RequestSubmitted(ctx, notification.Event{
		RequestID: created.ID.String(),
		Employee:  emp.Username,
		Manager:   managerUsername,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      days,
		Status:    StatusPending,
	}); nerr != nil {
		s.logger.Warn("manager notification failed",
			zap.String("leave_request_id", created.ID.String()),
			zap.Error(nerr),
		)
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_request_id", created.ID.String()),
		zap.String("employee", emp.Username),
		zap.String("manager", managerUsername),
		zap.Int("days_requested", days),
	)

	return SubmitLeaveResponse{
		RequestID:       created.ID.String(),
		Status:          StatusPending,
		DaysRequested:   days,
		ManagerID:       created.ManagerID.String(),
		ManagerUsername: managerUsername,
	}, nil
}

func (s *service) Approve(ctx context.Context, managerID, requestID string) (DecisionResponse, error) {
	return s.decide(ctx, managerID, requestID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, managerID, requestID string) (DecisionResponse, error) {
	return s.decide(ctx, managerID, requestID, StatusRejected)
}

func (s *service) decide(ctx context.Context, managerID, requestID, outcome string) (DecisionResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_request_id", requestID),
		zap.String("manager_id", managerID),
		zap.String("outcome", outcome),
	)

	var (
		request *LeaveRequest
		days    int
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Missing, foreign and already-decided requests all surface as the
		// same not-found, so existence never leaks across managers.
		lr, err := qtx.FindPendingByIDAndManager(ctx, requestID, managerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrRequestNotFound
			}
			return err
		}
		request = lr

		now := time.Now().UTC()

		if outcome == StatusRejected {
			lr.Status = StatusRejected
			lr.DecidedAt = &now
			return qtx.Update(ctx, lr)
		}

		// Recompute rather than trust anything stored with the request; the
		// balance may have moved since submission.
		days = BusinessDays(lr.StartDate, lr.EndDate)

		qbal := s.balances.WithTx(tx)
		bal, err := qbal.FindForUpdate(ctx, lr.EmployeeID.String(), lr.LeaveTypeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrBalanceMissingOnApproval
			}
			return err
		}
		if bal.RemainingDays < days {
			return balanceerrors.ErrInsufficientBalance
		}

		if err := qbal.Debit(ctx, bal.ID.String(), days); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return balanceerrors.ErrInsufficientBalance
			}
			return err
		}

		lr.Status = StatusApproved
		lr.DecidedAt = &now
		return qtx.Update(ctx, lr)
	})
	if err != nil {
		s.logger.Warn("decide leave failed",
			zap.String("leave_request_id", requestID),
			zap.String("manager_id", managerID),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}

	employeeName := ""
	if request.Employee != nil {
		employeeName = request.Employee.Username
	}
	if nerr := s.notifier.RequestDecided(ctx, notification.Event{
		RequestID: requestID,
		Employee:  employeeName,
		StartDate: request.StartDate.Format(dateLayout),
		EndDate:   request.EndDate.Format(dateLayout),
		Days:      days,
		Status:    request.Status,
	}); nerr != nil {
		s.logger.Warn("employee notification failed",
			zap.String("leave_request_id", requestID),
			zap.Error(nerr),
		)
	}

	s.logger.Info("leave request decided",
		zap.String("leave_request_id", requestID),
		zap.String("manager_id", managerID),
		zap.String("status", request.Status),
		zap.Int("days_deducted", days),
	)

	return DecisionResponse{
		RequestID: requestID,
		NewStatus: request.Status,
	}, nil
}

func (s *service) HistoryForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) PendingForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindPendingByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) HistoryForManager(ctx context.Context, managerID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindAllByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            lr.ID.String(),
		EmployeeID:    lr.EmployeeID.String(),
		StartDate:     lr.StartDate.Format(dateLayout),
		EndDate:       lr.EndDate.Format(dateLayout),
		DaysRequested: BusinessDays(lr.StartDate, lr.EndDate),
		Status:        lr.Status,
		Notes:         lr.Notes,
		RequestedAt:   lr.RequestedAt.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		resp.EmployeeName = lr.Employee.Username
		resp.EmployeeEmail = lr.Employee.Email
	}
	if lr.Manager != nil {
		resp.ManagerName = lr.Manager.Username
	}
	if lr.LeaveType != nil {
		resp.LeaveTypeName = lr.LeaveType.Name
	}
	if lr.DecidedAt != nil {
		v := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(requests []LeaveRequest) []LeaveRequestResponse {
	resp := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
