package shift

type CreateShiftRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	WeekStart     string  `json:"week_start" binding:"required"` // Monday, YYYY-MM-DD
	Day           int     `json:"day" binding:"min=0,max=6"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	PositionLabel string  `json:"position_label"`
	Status        *string `json:"status"`
	HasCoupure    bool    `json:"has_coupure"`
	ShiftGroup    *string `json:"shift_group"`
	HolidayWorked bool    `json:"is_holiday_worked"`
}

type UpdateShiftRequest struct {
	Day           *int    `json:"day"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	PositionLabel *string `json:"position_label"`
	Status        *string `json:"status"` // empty string clears the status
	HasCoupure    *bool   `json:"has_coupure"`
	ShiftGroup    *string `json:"shift_group"`
	HolidayWorked *bool   `json:"is_holiday_worked"`
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	RestaurantID  string  `json:"restaurant_id"`
	EmployeeID    string  `json:"employee_id"`
	WeekStart     string  `json:"week_start"`
	Day           int     `json:"day"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	PositionLabel string  `json:"position_label,omitempty"`
	Status        *string `json:"status,omitempty"`
	HasCoupure    bool    `json:"has_coupure"`
	ShiftGroup    *string `json:"shift_group,omitempty"`
	HolidayWorked bool    `json:"is_holiday_worked"`
}
