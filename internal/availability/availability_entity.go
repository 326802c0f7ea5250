package availability

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityPeriod is a declared block of employee unavailability.
// Recurring periods anchor on DayOfWeek, one-shot and monthly periods on
// Date; exactly one of the two is set.
type AvailabilityPeriod struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;index:idx_availability_restaurant_employee"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_availability_restaurant_employee"`

	Type       string     `gorm:"column:type;type:varchar(20);not null"`       // UNAVAILABLE, LIMITED
	Recurrence string     `gorm:"column:recurrence;type:varchar(10);not null"` // ONCE, WEEKLY, MONTHLY
	DayOfWeek  *int       `gorm:"column:day_of_week;type:smallint"`            // 0=Monday .. 6=Sunday
	Date       *time.Time `gorm:"column:date;type:date"`

	StartTime string `gorm:"column:start_time;type:varchar(5);not null"` // "HH:MM", 24h
	EndTime   string `gorm:"column:end_time;type:varchar(5);not null"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (AvailabilityPeriod) TableName() string {
	return "availability_periods"
}
