package schedule

import "sort"

// MaxWorkedSegmentsPerDay is a hard limit: at most one split shift
// (two segments around a coupure) per employee per day.
const MaxWorkedSegmentsPerDay = 2

// Segment is a resolved worked time range on one day.
type Segment struct {
	ID              string
	GroupID         string
	Position        string
	Start           ClockTime
	End             ClockTime
	DurationMinutes int
	HolidayWorked   bool
}

// DayPlan is the resolved view of one employee-day: ordered worked
// segments, the break between them, and any status records.
type DayPlan struct {
	Day          int
	Segments     []Segment
	BreakMinutes int
	HasCoupure   bool
	Statuses     []Status
}

// WorkedMinutes sums the segment durations, break time excluded.
func (p DayPlan) WorkedMinutes() int {
	total := 0
	for _, s := range p.Segments {
		total += s.DurationMinutes
	}
	return total
}

// ResolveDay orders one day's records into a DayPlan. It rejects a third
// worked segment before looking at overlaps, then rejects any two segments
// whose normalized ranges intersect. The coupure flag is derived from the
// segment count; the advisory flag on the raw shift rows is ignored.
func ResolveDay(day int, records []Record) (DayPlan, error) {
	if day < 0 || day >= DaysPerWeek {
		return DayPlan{}, &InvalidDayError{Day: day}
	}

	plan := DayPlan{Day: day}

	var worked []Worked
	holidayWorked := map[string]bool{}
	for _, r := range records {
		switch rec := r.(type) {
		case Worked:
			worked = append(worked, rec)
		case Status:
			plan.Statuses = append(plan.Statuses, rec)
			if rec.IsWorkedHoliday() {
				seg := *rec.HolidayShift
				if seg.ID == "" {
					seg.ID = rec.ID
				}
				worked = append(worked, seg)
				holidayWorked[seg.ID] = true
			}
		}
	}

	if len(worked) > MaxWorkedSegmentsPerDay {
		return DayPlan{}, &MaxShiftsExceededError{Day: day, Count: len(worked)}
	}

	sort.SliceStable(worked, func(i, j int) bool {
		return worked[i].Start < worked[j].Start
	})

	for i := 0; i < len(worked)-1; i++ {
		if worked[i].normalizedEnd() > worked[i+1].Start.Minutes() {
			return DayPlan{}, &OverlapError{
				Day:      day,
				FirstID:  worked[i].ID,
				SecondID: worked[i+1].ID,
			}
		}
		plan.BreakMinutes += worked[i+1].Start.Minutes() - worked[i].normalizedEnd()
	}

	for _, w := range worked {
		plan.Segments = append(plan.Segments, Segment{
			ID:              w.ID,
			GroupID:         w.GroupID,
			Position:        w.Position,
			Start:           w.Start,
			End:             w.End,
			DurationMinutes: w.DurationMinutes(),
			HolidayWorked:   holidayWorked[w.ID],
		})
	}

	plan.HasCoupure = len(plan.Segments) >= MaxWorkedSegmentsPerDay
	return plan, nil
}
