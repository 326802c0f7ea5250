package summary

type ConflictFlagResponse struct {
	Day       int    `json:"day"`
	SegmentID string `json:"segment_id"`
	Kind      string `json:"kind"`
	Severity  string `json:"severity"`
}

type WeeklySummaryResponse struct {
	EmployeeID              string                 `json:"employee_id"`
	WeekStart               string                 `json:"week_start"`
	TotalWorkedHours        float64                `json:"total_worked_hours"`
	TotalAssimilatedHours   float64                `json:"total_assimilated_hours"`
	TotalPublicHolidayHours float64                `json:"total_public_holiday_hours"`
	ProRatedContractHours   float64                `json:"pro_rated_contract_hours"`
	HoursDiff               float64                `json:"hours_diff"`
	ShiftCount              int                    `json:"shift_count"`
	Conflicts               []ConflictFlagResponse `json:"conflicts"`
}
