package preference

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PreferenceSet holds one employee's soft scheduling wishes. One row per
// employee, upserted whole.
type PreferenceSet struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"column:restaurant_id;type:uuid;not null;uniqueIndex:uq_preferences_employee"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_preferences_employee"`

	PreferredDays      datatypes.JSON `gorm:"column:preferred_days;type:jsonb"`      // [0..6], 0=Monday
	PreferredPositions datatypes.JSON `gorm:"column:preferred_positions;type:jsonb"` // ["Serveur", ...]

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PreferenceSet) TableName() string {
	return "preference_sets"
}
