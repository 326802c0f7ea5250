package preference

type UpsertPreferenceRequest struct {
	PreferredDays      []int    `json:"preferred_days" binding:"omitempty,dive,min=0,max=6"`
	PreferredPositions []string `json:"preferred_positions"`
}

type PreferenceResponse struct {
	EmployeeID         string   `json:"employee_id"`
	PreferredDays      []int    `json:"preferred_days"`
	PreferredPositions []string `json:"preferred_positions"`
}
