package settings

import (
	"time"

	"github.com/google/uuid"
)

// PlanningSettings is one row per restaurant. PayBreakTimes decides
// whether coupure breaks count as paid hours in weekly summaries.
type PlanningSettings struct {
	RestaurantID  uuid.UUID `gorm:"column:restaurant_id;type:uuid;primaryKey"`
	PayBreakTimes bool      `gorm:"column:pay_break_times;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (PlanningSettings) TableName() string {
	return "planning_settings"
}

type UpdateSettingsRequest struct {
	PayBreakTimes *bool `json:"pay_break_times" binding:"required"`
}

type SettingsResponse struct {
	RestaurantID  string `json:"restaurant_id"`
	PayBreakTimes bool   `json:"pay_break_times"`
}
