package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

// DurationScale matches the decimal(12,4) columns so a re-import compares
// equal to what was stored.
const DurationScale = 4

var dayNames = map[string]int{
	"thứ 2": 2, "thu 2": 2, "monday": 2, "mon": 2,
	"thứ 3": 3, "thu 3": 3, "tuesday": 3, "tue": 3,
	"thứ 4": 4, "thu 4": 4, "wednesday": 4, "wed": 4,
	"thứ 5": 5, "thu 5": 5, "thursday": 5, "thu": 5,
	"thứ 6": 6, "thu 6": 6, "friday": 6, "fri": 6,
	"thứ 7": 7, "thu 7": 7, "saturday": 7, "sat": 7,
	"chủ nhật": 1, "cn": 1, "sunday": 1, "sun": 1,
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01-02-06",
	"2 Jan 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
}

var clockLayouts = []string{
	"15:4",
	"15:4:5",
	"3:4 PM",
	"3:4:5 PM",
	"3:4PM",
	"3:4:5PM",
	"3 PM",
	"3PM",
}

// ParseExcelWeekday resolves the weekday column to the sheet's numbering
// (1 = Sunday, 2 = Monday ... 7 = Saturday). Day names win, then integer
// text, then date text, then the stored value. ok is false when nothing
// matched; the result is not range-checked.
func ParseExcelWeekday(c Cell) (int, bool) {
	text := strings.TrimSpace(c.Text)
	if text != "" {
		if n, ok := dayNames[strings.ToLower(text)]; ok {
			return n, true
		}
		if n, err := strconv.Atoi(text); err == nil {
			return n, true
		}
		if t, ok := parseDate(text); ok {
			return int(t.Weekday()) + 1, true
		}
	}
	raw := strings.TrimSpace(c.Raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if v == math.Trunc(v) && v >= 1 && v <= 7 {
			return int(v), true
		}
		if t, err := excelize.ExcelDateToTime(v, false); err == nil {
			return int(t.Weekday()) + 1, true
		}
		return 0, false
	}
	if n, ok := dayNames[strings.ToLower(raw)]; ok {
		return n, true
	}
	return 0, false
}

// DBWeekday converts the sheet numbering to time.Weekday.
func DBWeekday(excel int) time.Weekday {
	if excel == 1 {
		return time.Sunday
	}
	return time.Weekday(excel - 1)
}

// ExcelWeekday is the inverse of DBWeekday.
func ExcelWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 1
	}
	return int(w) + 1
}

// ParseDuration reads a minutes value in invariant culture. Thousands
// separators are dropped; the result is rounded to DurationScale places.
func ParseDuration(c Cell) (decimal.Decimal, bool) {
	for _, s := range []string{c.Raw, c.Text} {
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" {
			continue
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d.Round(DurationScale), true
		}
	}
	return decimal.Zero, false
}

// minCutOffSerial is the smallest serial accepted as a time of day; a
// zero serial is treated as unreadable rather than as midnight.
const minCutOffSerial = 0.000001

// CutOff is the result of reading a cut-off cell.
type CutOff struct {
	Time   datatypes.Time
	Blank  bool
	Parsed bool
}

// ParseCutOff reads a time of day. Display text is tried first against the
// clock layouts; purely numeric text falls through to the stored value,
// read as a day fraction (or a date serial, whose time part is used).
// A blank cell is midnight with Parsed set; an unreadable one is midnight
// with Parsed unset, as is a zero serial.
func ParseCutOff(c Cell) CutOff {
	if c.Blank() {
		return CutOff{Time: midnight(), Blank: true, Parsed: true}
	}
	text := strings.TrimSpace(c.Text)
	if text != "" && !isNumeric(text) {
		if t, ok := parseClock(text); ok {
			return CutOff{Time: t, Parsed: true}
		}
	}
	raw := strings.TrimSpace(c.Raw)
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if v > minCutOffSerial {
			return CutOff{Time: fromDayFraction(v), Parsed: true}
		}
	} else if raw != "" && raw != text {
		if t, ok := parseClock(raw); ok {
			return CutOff{Time: t, Parsed: true}
		}
	}
	if text != "" && isNumeric(text) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > minCutOffSerial {
			return CutOff{Time: fromDayFraction(v), Parsed: true}
		}
	}
	return CutOff{Time: midnight()}
}

// IsMidnight reports whether t is 00:00 (seconds ignored).
func IsMidnight(t datatypes.Time) bool {
	d := time.Duration(t)
	return d < time.Minute || d >= 24*time.Hour
}

func midnight() datatypes.Time { return datatypes.NewTime(0, 0, 0, 0) }

func fromDayFraction(v float64) datatypes.Time {
	frac := v - math.Floor(v)
	secs := int(math.Round(frac * 86400))
	if secs >= 86400 {
		secs = 0
	}
	return datatypes.NewTime(secs/3600, secs%3600/60, secs%60, 0)
}

func parseClock(s string) (datatypes.Time, bool) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(",", ":", ".", ":", "SA", "AM", "CH", "PM").Replace(norm)
	norm = strings.Join(strings.Fields(norm), " ")
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), true
		}
	}
	if t, ok := parseDate(s); ok {
		return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), true
	}
	return 0, false
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
