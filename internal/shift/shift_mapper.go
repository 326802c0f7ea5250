package shift

import (
	"go-shiftplan/internal/schedule"
	shifterrors "go-shiftplan/internal/shift/errors"
)

// toRecord turns a stored shift row into the compute core's tagged union,
// enforcing the shape invariant: a row carries either a status or a time
// range, with the worked public holiday as the only row carrying both.
func toRecord(s Shift) (schedule.Record, error) {
	if s.Status != nil {
		code := schedule.StatusCode(*s.Status)
		if !code.Valid() {
			return nil, shifterrors.ErrInvalidStatusCode
		}

		rec := schedule.Status{ID: s.ID.String(), Code: code}

		if code == schedule.StatusPublicHoliday && s.IsHolidayWorked {
			if s.StartTime == nil || s.EndTime == nil {
				return nil, shifterrors.ErrInvalidShiftShape
			}
			seg, err := toWorked(s)
			if err != nil {
				return nil, err
			}
			rec.HolidayShift = &seg
			return rec, nil
		}

		if s.StartTime != nil || s.EndTime != nil {
			return nil, shifterrors.ErrInvalidShiftShape
		}
		return rec, nil
	}

	if s.StartTime == nil || s.EndTime == nil {
		return nil, shifterrors.ErrInvalidShiftShape
	}
	return toWorked(s)
}

func toWorked(s Shift) (schedule.Worked, error) {
	start, err := schedule.ParseClock(*s.StartTime)
	if err != nil {
		return schedule.Worked{}, shifterrors.ErrInvalidClockFormat
	}
	end, err := schedule.ParseClock(*s.EndTime)
	if err != nil {
		return schedule.Worked{}, shifterrors.ErrInvalidClockFormat
	}

	w := schedule.Worked{
		ID:       s.ID.String(),
		Position: s.PositionLabel,
		Start:    start,
		End:      end,
	}
	if s.ShiftGroup != nil {
		w.GroupID = s.ShiftGroup.String()
	}
	return w, nil
}

func toRecords(rows []Shift) ([]schedule.Record, error) {
	records := make([]schedule.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildDayInputs groups a week's rows into per-day record sets for the
// schedule core. Days without rows are omitted; they contribute nothing to
// a summary.
func BuildDayInputs(rows []Shift) ([]schedule.DayInput, error) {
	byDay := make(map[int][]schedule.Record)
	for _, row := range rows {
		rec, err := toRecord(row)
		if err != nil {
			return nil, err
		}
		byDay[row.Day] = append(byDay[row.Day], rec)
	}

	days := make([]schedule.DayInput, 0, len(byDay))
	for day := 0; day < schedule.DaysPerWeek; day++ {
		if records, ok := byDay[day]; ok {
			days = append(days, schedule.DayInput{Day: day, Records: records})
		}
	}
	return days, nil
}

func mapToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:            s.ID.String(),
		RestaurantID:  s.RestaurantID.String(),
		EmployeeID:    s.EmployeeID.String(),
		WeekStart:     s.WeekStart.Format("2006-01-02"),
		Day:           s.Day,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		PositionLabel: s.PositionLabel,
		Status:        s.Status,
		HasCoupure:    s.HasCoupure,
		HolidayWorked: s.IsHolidayWorked,
	}
	if s.ShiftGroup != nil {
		v := s.ShiftGroup.String()
		resp.ShiftGroup = &v
	}
	return resp
}

func mapToListResponse(rows []Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(rows))
	for i, s := range rows {
		res[i] = mapToResponse(s)
	}
	return res
}
