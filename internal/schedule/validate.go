package schedule

import "time"

// MutationOp is the kind of change requested against the shift store.
type MutationOp string

const (
	OpCreate MutationOp = "CREATE"
	OpUpdate MutationOp = "UPDATE"
	OpDelete MutationOp = "DELETE"
)

// Mutation is one requested change to an employee-day. Record is nil for
// deletes.
type Mutation struct {
	Op      MutationOp
	ShiftID string
	Day     int
	Record  Record
}

// EmployeeContract is the slice of employee data the validator needs.
type EmployeeContract struct {
	EmployeeID    string
	ContractStart time.Time
	ContractEnd   *time.Time
}

// Decision is the accepted outcome of a validation. SupersededIDs lists
// records the caller must delete in the same transaction as the applied
// mutation: setting a day status replaces the day's existing records
// all-or-nothing, never leaving a day with both a status and stale worked
// segments.
type Decision struct {
	Accepted      bool
	SupersededIDs []string
}

// ValidateMutation gatekeeps one create/update/delete against an
// employee-day. It either returns an accepted Decision or exactly one of
// the structural errors; it has no side effect either way, so a rejected
// mutation leaves the store untouched and retries are safe.
func ValidateMutation(employee *EmployeeContract, weekStart time.Time, existing []Record, m Mutation) (Decision, error) {
	if employee == nil {
		return Decision{}, &UnknownEmployeeError{}
	}
	if m.Day < 0 || m.Day >= DaysPerWeek {
		return Decision{}, &InvalidDayError{Day: m.Day}
	}

	if m.Op == OpDelete {
		if findRecord(existing, m.ShiftID) == nil {
			return Decision{}, &ShiftNotFoundError{ShiftID: m.ShiftID}
		}
		return Decision{Accepted: true}, nil
	}

	date := dateOnly(weekStart).AddDate(0, 0, m.Day)
	if !ContractCovers(employee.ContractStart, employee.ContractEnd, date) {
		return Decision{}, &OutOfContractPeriodError{
			Date:          date,
			ContractStart: employee.ContractStart,
			ContractEnd:   employee.ContractEnd,
		}
	}

	if m.Op == OpUpdate && findRecord(existing, m.ShiftID) == nil {
		return Decision{}, &ShiftNotFoundError{ShiftID: m.ShiftID}
	}
	if m.Record == nil {
		return Decision{}, &InvalidMutationError{Op: m.Op}
	}

	switch rec := m.Record.(type) {
	case Status:
		// A status supersedes everything already on the day.
		var superseded []string
		for _, r := range existing {
			if r.RecordID() != m.ShiftID {
				superseded = append(superseded, r.RecordID())
			}
		}
		prospective := []Record{rec}
		if _, err := ResolveDay(m.Day, prospective); err != nil {
			return Decision{}, err
		}
		return Decision{Accepted: true, SupersededIDs: superseded}, nil

	case Worked:
		// Re-resolve the prospective day with the new/updated segment
		// substituted in; overlap and max-shift errors reject as-is.
		prospective := make([]Record, 0, len(existing)+1)
		for _, r := range existing {
			if r.RecordID() == m.ShiftID {
				continue
			}
			prospective = append(prospective, r)
		}
		prospective = append(prospective, rec)
		if _, err := ResolveDay(m.Day, prospective); err != nil {
			return Decision{}, err
		}
		return Decision{Accepted: true}, nil
	}

	return Decision{}, &InvalidMutationError{Op: m.Op}
}

func findRecord(records []Record, id string) Record {
	for _, r := range records {
		if r.RecordID() == id {
			return r
		}
	}
	return nil
}
