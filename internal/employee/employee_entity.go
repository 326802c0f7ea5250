package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;index"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null"`
	Position     string    `gorm:"column:position;type:varchar(100);not null"`
	Category     string    `gorm:"column:category;type:varchar(50)"`

	// Contractual weekly hour target, e.g. 35.00 or 39.00
	WeeklyHoursTarget float64 `gorm:"column:weekly_hours_target;type:numeric(5,2);not null"`

	ContractStart time.Time  `gorm:"column:contract_start;type:date;not null"`
	ContractEnd   *time.Time `gorm:"column:contract_end;type:date"` // nil means open-ended

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
