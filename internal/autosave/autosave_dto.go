package autosave

import "go-shiftplan/internal/shift"

type BatchMutation struct {
	Op         string                    `json:"op" binding:"required,oneof=create update delete"`
	EmployeeID string                    `json:"employee_id" binding:"required,uuid"`
	Day        int                       `json:"day" binding:"min=0,max=6"`
	ShiftID    string                    `json:"shift_id" binding:"omitempty,uuid"`
	Create     *shift.CreateShiftRequest `json:"create,omitempty"`
	Update     *shift.UpdateShiftRequest `json:"update,omitempty"`
}

type BatchRequest struct {
	Mutations []BatchMutation `json:"mutations" binding:"required,min=1,dive"`
}

type BatchResponse struct {
	Enqueued int      `json:"enqueued"`
	Rejected []string `json:"rejected,omitempty"` // employee_id:day of malformed entries
}
