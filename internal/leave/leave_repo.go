package leave

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	// FindPendingByIDAndManager matches id, owning manager and PENDING status
	// in one query; any miss surfaces as gorm.ErrRecordNotFound.
	FindPendingByIDAndManager(ctx context.Context, id, managerID string) (*LeaveRequest, error)
	Update(ctx context.Context, lr *LeaveRequest) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	FindPendingByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
	FindAllByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindPendingByIDAndManager(ctx context.Context, id, managerID string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("manager_id = ?", managerID).
		Where("status = ?", StatusPending).
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) Update(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Manager").
		Where("employee_id = ?", employeeID).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindPendingByManager(ctx context.Context, managerID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Employee").
		Where("manager_id = ? AND status = ?", managerID, StatusPending).
		Order("requested_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindAllByManager(ctx context.Context, managerID string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Employee").
		Where("manager_id = ?", managerID).
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}
