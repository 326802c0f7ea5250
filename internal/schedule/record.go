package schedule

// Record is one raw entry on an employee's day: either a worked time range
// or a day status. The two cases are distinct types so the mutual exclusion
// between "has a status" and "has start/end" holds by construction; the only
// sanctioned crossover is a worked public holiday, which carries its time
// range inside the Status record.
type Record interface {
	RecordID() string
	isRecord()
}

// Worked is a shift segment with a real time range.
type Worked struct {
	ID       string
	GroupID  string // shared by the segments of one split shift
	Position string
	Start    ClockTime
	End      ClockTime // numerically before Start means the shift runs overnight
}

func (w Worked) RecordID() string { return w.ID }
func (Worked) isRecord()          {}

// DurationMinutes is the worked span, normalized for overnight segments.
func (w Worked) DurationMinutes() int {
	d := w.End.Minutes() - w.Start.Minutes()
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}

// normalizedEnd is the end expressed on the same axis as Start, so an
// overnight segment ends past MinutesPerDay.
func (w Worked) normalizedEnd() int {
	return w.Start.Minutes() + w.DurationMinutes()
}

// Status marks the day with an absence/leave code. HolidayShift is set only
// for PUBLIC_HOLIDAY days the employee actually worked; it then contributes
// worked hours like any segment, plus the premium overlay.
type Status struct {
	ID           string
	Code         StatusCode
	HolidayShift *Worked
}

func (s Status) RecordID() string { return s.ID }
func (Status) isRecord()          {}

// IsWorkedHoliday reports whether the status carries a real worked range.
func (s Status) IsWorkedHoliday() bool {
	return s.Code == StatusPublicHoliday && s.HolidayShift != nil
}
