package holiday

import (
	"time"

	"github.com/google/uuid"
)

type CorporateHoliday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_corporate_holidays_date"`
	Description string    `gorm:"column:description;type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
