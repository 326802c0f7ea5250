package employee

type CreateEmployeeRequest struct {
	FirstName         string  `json:"first_name" binding:"required"`
	LastName          string  `json:"last_name" binding:"required"`
	Position          string  `json:"position" binding:"required"`
	Category          string  `json:"category"`
	WeeklyHoursTarget float64 `json:"weekly_hours_target" binding:"required,gt=0"`
	ContractStart     string  `json:"contract_start" binding:"required"`
	ContractEnd       *string `json:"contract_end"`
}

type UpdateEmployeeRequest struct {
	FirstName         *string  `json:"first_name"`
	LastName          *string  `json:"last_name"`
	Position          *string  `json:"position"`
	Category          *string  `json:"category"`
	WeeklyHoursTarget *float64 `json:"weekly_hours_target"`
	ContractStart     *string  `json:"contract_start"`
	ContractEnd       *string  `json:"contract_end"` // empty string clears the end date
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	RestaurantID      string  `json:"restaurant_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Position          string  `json:"position"`
	Category          string  `json:"category,omitempty"`
	WeeklyHoursTarget float64 `json:"weekly_hours_target"`
	ContractStart     string  `json:"contract_start"`
	ContractEnd       *string `json:"contract_end,omitempty"`
}
