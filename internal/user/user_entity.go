package user

import (
	"time"

	"github.com/google/uuid"

	"leavehub/internal/balance"
)

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

type User struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_users_username"`
	Email     string     `gorm:"column:email;type:varchar(100);not null"`
	Role      string     `gorm:"column:role;type:varchar(20);not null;index"`
	ManagerID *uuid.UUID `gorm:"column:manager_id;type:uuid;index"`
	Password  string     `gorm:"column:password;type:text"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Self-referential manager relation; employees point to at most one manager.
	Manager *User `gorm:"foreignKey:ManagerID"`

	// Balances are owned by the user and removed with it.
	Balances []balance.LeaveBalance `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}
