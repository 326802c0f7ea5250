package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is one raw planning row: either a worked time range or a day
// status, on one employee-day of one week. The schedule core enforces the
// exclusivity between the two shapes; the row just stores what was
// accepted.
type Shift struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;index:idx_shifts_restaurant_week"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_shifts_employee_week"`

	WeekStart time.Time `gorm:"column:week_start;type:date;not null;index:idx_shifts_restaurant_week;index:idx_shifts_employee_week"`
	Day       int       `gorm:"column:day;type:smallint;not null"` // 0=Monday .. 6=Sunday

	StartTime     *string `gorm:"column:start_time;type:varchar(5)"` // "HH:MM", 24h
	EndTime       *string `gorm:"column:end_time;type:varchar(5)"`
	PositionLabel string  `gorm:"column:position_label;type:varchar(100)"`

	Status          *string    `gorm:"column:status;type:varchar(20)"`
	HasCoupure      bool       `gorm:"column:has_coupure;not null;default:false"` // advisory UI flag
	ShiftGroup      *uuid.UUID `gorm:"column:shift_group;type:uuid"`
	IsHolidayWorked bool       `gorm:"column:is_holiday_worked;not null;default:false"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Shift) TableName() string {
	return "shifts"
}

// WeekSchedule carries the version stamp for one employee-week. Every
// accepted mutation bumps it with an optimistic check, which serializes
// concurrent writers on the same employee-week aggregate.
type WeekSchedule struct {
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	WeekStart    time.Time `gorm:"column:week_start;type:date;primaryKey"`
	Version      int64     `gorm:"column:version;not null;default:0"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (WeekSchedule) TableName() string {
	return "week_schedules"
}
