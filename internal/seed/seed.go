package seed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"leavehub/internal/balance"
	"leavehub/internal/holiday"
	"leavehub/internal/leavetype"
	"leavehub/internal/user"
)

type demoUser struct {
	username string
	email    string
	role     string
	password string
	manager  string
}

var demoUsers = []demoUser{
	{username: "admin", email: "admin@leavehub.local", role: user.RoleAdmin, password: "admin123!"},
	{username: "bob", email: "bob@leavehub.local", role: user.RoleManager, password: "manager123!"},
	{username: "alice", email: "alice@leavehub.local", role: user.RoleEmployee, password: "employee123!", manager: "bob"},
}

var demoLeaveTypes = []leavetype.LeaveType{
	{Name: "ANNUAL", DefaultQuota: 20},
	{Name: "SICK", DefaultQuota: 10},
	{Name: "PERSONAL", DefaultQuota: 5},
	{Name: "MATERNITY", DefaultQuota: 90},
	{Name: "UNPAID", DefaultQuota: 30},
}

var demoHolidayDates = []string{
	"2026-01-01",
	"2026-04-03",
	"2026-05-01",
	"2026-12-24",
	"2026-12-25",
	"2026-12-31",
}

// Run provisions demo users, leave types, corporate holidays and employee
// balances. It is a no-op when any user already exists, so restarting the
// server never duplicates data.
func Run(ctx context.Context, db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		l.Info("seed skipped, users already present", zap.Int64("users", count))
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		types := make([]leavetype.LeaveType, len(demoLeaveTypes))
		copy(types, demoLeaveTypes)
		if err := tx.Create(&types).Error; err != nil {
			return err
		}

		holidays := make([]holiday.CorporateHoliday, 0, len(demoHolidayDates))
		for _, d := range demoHolidayDates {
			date, err := time.Parse("2006-01-02", d)
			if err != nil {
				return err
			}
			holidays = append(holidays, holiday.CorporateHoliday{Date: date})
		}
		if err := tx.Create(&holidays).Error; err != nil {
			return err
		}

		created := make(map[string]*user.User, len(demoUsers))
		for _, du := range demoUsers {
			hashed, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u := &user.User{
				Username: du.username,
				Email:    du.email,
				Role:     du.role,
				Password: string(hashed),
			}
			if du.manager != "" {
				mgr, ok := created[du.manager]
				if ok {
					u.ManagerID = &mgr.ID
				}
			}
			if err := tx.Create(u).Error; err != nil {
				return err
			}
			created[du.username] = u

			if du.role != user.RoleEmployee {
				continue
			}
			for _, lt := range types {
				b := &balance.LeaveBalance{
					UserID:        u.ID,
					LeaveTypeID:   lt.ID,
					RemainingDays: lt.DefaultQuota,
				}
				if err := tx.Create(b).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("demo data seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("leave_types", len(demoLeaveTypes)),
		zap.Int("holidays", len(demoHolidayDates)),
	)
	return nil
}
