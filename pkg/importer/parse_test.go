package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseExcelWeekday(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want int
		ok   bool
	}{
		{"vietnamese name", Cell{Text: "Thứ 2"}, 2, true},
		{"sunday short", Cell{Text: "CN"}, 1, true},
		{"english name", Cell{Text: "saturday"}, 7, true},
		{"integer text", Cell{Text: "3", Raw: "3"}, 3, true},
		{"raw integer", Cell{Raw: "5"}, 5, true},
		// 2026-01-05 is a Monday
		{"date text", Cell{Text: "2026-01-05"}, 2, true},
		{"date serial", Cell{Text: "01-05-26", Raw: "46027"}, 2, true},
		{"out of range integer", Cell{Text: "9", Raw: "9"}, 9, true},
		{"garbage", Cell{Text: "someday", Raw: "someday"}, 0, false},
		{"blank", Cell{}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseExcelWeekday(tc.cell)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDBWeekdayRoundTrip(t *testing.T) {
	assert.Equal(t, time.Sunday, DBWeekday(1))
	assert.Equal(t, time.Monday, DBWeekday(2))
	assert.Equal(t, time.Saturday, DBWeekday(7))
	for excel := 1; excel <= 7; excel++ {
		assert.Equal(t, excel, ExcelWeekday(DBWeekday(excel)))
	}
}

func TestParseDuration(t *testing.T) {
	d, ok := ParseDuration(Cell{Text: "1,250.5", Raw: ""})
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(d))

	d, ok = ParseDuration(Cell{Text: "0.33", Raw: "0.333333333"})
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.3333").Equal(d), d.String())

	_, ok = ParseDuration(Cell{Text: "n/a", Raw: "n/a"})
	assert.False(t, ok)

	_, ok = ParseDuration(Cell{})
	assert.False(t, ok)
}

func TestParseCutOff(t *testing.T) {
	cases := []struct {
		name   string
		cell   Cell
		want   datatypes.Time
		parsed bool
		blank  bool
	}{
		{"clock text", Cell{Text: "14:30", Raw: "0.6041666666666666"}, datatypes.NewTime(14, 30, 0, 0), true, false},
		{"clock with seconds", Cell{Text: "07:05:09"}, datatypes.NewTime(7, 5, 9, 0), true, false},
		{"twelve hour", Cell{Text: "3:15 PM"}, datatypes.NewTime(15, 15, 0, 0), true, false},
		{"vietnamese meridiem", Cell{Text: "9:00 SA"}, datatypes.NewTime(9, 0, 0, 0), true, false},
		{"day fraction", Cell{Text: "0.5", Raw: "0.5"}, datatypes.NewTime(12, 0, 0, 0), true, false},
		{"serial with time", Cell{Raw: "46027.75"}, datatypes.NewTime(18, 0, 0, 0), true, false},
		{"zero serial is unreadable", Cell{Text: "0", Raw: "0"}, datatypes.NewTime(0, 0, 0, 0), false, false},
		{"blank", Cell{}, datatypes.NewTime(0, 0, 0, 0), true, true},
		{"unreadable", Cell{Text: "late", Raw: "late"}, datatypes.NewTime(0, 0, 0, 0), false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCutOff(tc.cell)
			assert.Equal(t, tc.want, got.Time)
			assert.Equal(t, tc.parsed, got.Parsed)
			assert.Equal(t, tc.blank, got.Blank)
		})
	}
}

func TestIsMidnight(t *testing.T) {
	assert.True(t, IsMidnight(datatypes.NewTime(0, 0, 0, 0)))
	assert.True(t, IsMidnight(datatypes.NewTime(0, 0, 30, 0)))
	assert.False(t, IsMidnight(datatypes.NewTime(0, 1, 0, 0)))
	assert.False(t, IsMidnight(datatypes.NewTime(12, 0, 0, 0)))
}

func TestResultMessage(t *testing.T) {
	r := &Result{CustomersAdded: 1, LeadtimesAdded: 2, SchedulesAdded: 3}
	assert.True(t, r.Success())
	assert.Equal(t, "Import successful! Processed 1 customers, 2 leadtimes, 3 shipping schedules.", r.Message())

	r.errorf("Row %d: broken.", 4)
	r.errorf("Row %d: broken.", 5)
	assert.False(t, r.Success())
	assert.Equal(t, "Row 4: broken.; Row 5: broken.", r.Message())
}
