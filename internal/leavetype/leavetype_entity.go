package leavetype

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"column:name;type:varchar(30);not null;uniqueIndex:uq_leave_types_name"`
	DefaultQuota int       `gorm:"column:default_quota;type:int;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
