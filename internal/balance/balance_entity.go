package balance

import (
	"time"

	"github.com/google/uuid"

	"leavehub/internal/leavetype"
)

type LeaveBalance struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_leave_balances_user_type"`
	LeaveTypeID   uuid.UUID `gorm:"column:leave_type_id;type:uuid;not null;uniqueIndex:uq_leave_balances_user_type"`
	RemainingDays int       `gorm:"column:remaining_days;type:int;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	LeaveType *leavetype.LeaveType `gorm:"foreignKey:LeaveTypeID"`
}
