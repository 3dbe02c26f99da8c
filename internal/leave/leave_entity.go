package leave

import (
	"time"

	"github.com/google/uuid"

	"leavehub/internal/leavetype"
	"leavehub/internal/user"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	// StatusCancelled is reserved: no exposed operation produces it yet.
	StatusCancelled = "CANCELLED"
)

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_requests_employee"`
	ManagerID   uuid.UUID `gorm:"column:manager_id;type:uuid;not null;index:idx_leave_requests_manager_status"`
	LeaveTypeID uuid.UUID `gorm:"column:leave_type_id;type:uuid;not null"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`

	Status      string     `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_manager_status"`
	Notes       string     `gorm:"column:notes;type:text"`
	RequestedAt time.Time  `gorm:"column:requested_at;not null"`
	DecidedAt   *time.Time `gorm:"column:decided_at"`

	Employee  *user.User           `gorm:"foreignKey:EmployeeID"`
	Manager   *user.User           `gorm:"foreignKey:ManagerID"`
	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID"`
}
