package schedule_test

import (
	"testing"
	"time"

	"go-shiftplan/internal/schedule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestContractWindow(t *testing.T) {
	// Monday 2026-03-02 .. Sunday 2026-03-08
	weekStart := date(2026, 3, 2)

	tests := []struct {
		name       string
		start      time.Time
		end        *time.Time
		activeDays int
	}{
		{"full week open-ended", date(2025, 1, 1), nil, 7},
		{"starts thursday of week", date(2026, 3, 5), nil, 4},
		{"ends wednesday of week", date(2025, 1, 1), datePtr(2026, 3, 4), 3},
		{"starts on week boundary monday", date(2026, 3, 2), nil, 7},
		{"ends on week boundary sunday", date(2025, 1, 1), datePtr(2026, 3, 8), 7},
		{"fully before contract", date(2026, 4, 1), nil, 0},
		{"fully after contract", date(2025, 1, 1), datePtr(2026, 2, 1), 0},
		{"single day contract inside week", date(2026, 3, 4), datePtr(2026, 3, 4), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := schedule.ContractWindow(tc.start, tc.end, weekStart)
			assert.Equal(t, tc.activeDays, w.ActiveDays)
			assert.Equal(t, tc.activeDays > 0, w.Active())
		})
	}
}

func TestProRatedHours(t *testing.T) {
	weekStart := date(2026, 3, 2)

	t.Run("thursday start pro-rates 35h to 20.0", func(t *testing.T) {
		w := schedule.ContractWindow(date(2026, 3, 5), nil, weekStart)
		got := schedule.ProRatedHours(decimal.NewFromInt(35), w)
		assert.Equal(t, "20.0", got.StringFixed(1))
	})

	t.Run("full week keeps the target", func(t *testing.T) {
		w := schedule.ContractWindow(date(2025, 1, 1), nil, weekStart)
		got := schedule.ProRatedHours(decimal.NewFromInt(35), w)
		assert.Equal(t, "35.0", got.StringFixed(1))
	})

	t.Run("inactive week yields zero", func(t *testing.T) {
		w := schedule.ContractWindow(date(2026, 4, 1), nil, weekStart)
		got := schedule.ProRatedHours(decimal.NewFromInt(35), w)
		assert.True(t, got.IsZero())
	})

	t.Run("rounding to one decimal", func(t *testing.T) {
		// 39 * 5 / 7 = 27.857... -> 27.9
		w := schedule.ContractWindow(date(2026, 3, 4), nil, weekStart)
		assert.Equal(t, 5, w.ActiveDays)
		got := schedule.ProRatedHours(decimal.NewFromInt(39), w)
		assert.Equal(t, "27.9", got.StringFixed(1))
	})
}

func TestContractCovers(t *testing.T) {
	start := date(2026, 3, 5)
	end := datePtr(2026, 6, 30)

	assert.True(t, schedule.ContractCovers(start, end, date(2026, 3, 5)))
	assert.True(t, schedule.ContractCovers(start, end, date(2026, 6, 30)))
	assert.True(t, schedule.ContractCovers(start, nil, date(2030, 1, 1)))
	assert.False(t, schedule.ContractCovers(start, end, date(2026, 3, 4)))
	assert.False(t, schedule.ContractCovers(start, end, date(2026, 7, 1)))
}
