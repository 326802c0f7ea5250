package availability

type CreateAvailabilityRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Type       string  `json:"type" binding:"required,oneof=UNAVAILABLE LIMITED"`
	Recurrence string  `json:"recurrence" binding:"required,oneof=ONCE WEEKLY MONTHLY"`
	DayOfWeek  *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	Date       *string `json:"date"` // YYYY-MM-DD, anchor for ONCE and MONTHLY
	StartTime  string  `json:"start_time" binding:"required"`
	EndTime    string  `json:"end_time" binding:"required"`
}

type AvailabilityResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	EmployeeID   string  `json:"employee_id"`
	Type         string  `json:"type"`
	Recurrence   string  `json:"recurrence"`
	DayOfWeek    *int    `json:"day_of_week,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}
