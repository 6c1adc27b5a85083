package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day is the length of a calendar day as used by dashboard countdowns.
const Day = 24 * time.Hour

// ErrInvalidDurationLabel is returned when a duration label cannot be read.
var ErrInvalidDurationLabel = errors.New("invalid duration label")

// unitAliases maps the unit words used in governance labels to their length.
var unitAliases = map[string]time.Duration{
	"d":       Day,
	"day":     Day,
	"days":    Day,
	"w":       7 * Day,
	"week":    7 * Day,
	"weeks":   7 * Day,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
}

// ParseDurationLabel reads labels such as "24h", "3 days", "1 week" or "2d 4h".
func ParseDurationLabel(label string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDurationLabel)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	var total time.Duration
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		num, unit := splitNumberUnit(fields[i])
		if unit == "" && i+1 < len(fields) {
			i++
			unit = fields[i]
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDurationLabel, label)
		}
		size, ok := unitAliases[unit]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidDurationLabel, unit, label)
		}
		total += time.Duration(n * float64(size))
	}
	return total, nil
}

// splitNumberUnit splits "3days" into "3" and "days".
func splitNumberUnit(field string) (string, string) {
	idx := strings.IndexFunc(field, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if idx < 0 {
		return field, ""
	}
	return field[:idx], field[idx:]
}

// SplitDaysHours returns the whole days in d and the whole hours left after them.
// Negative durations yield zeros.
func SplitDaysHours(d time.Duration) (days, hours int64) {
	if d <= 0 {
		return 0, 0
	}
	days = int64(d / Day)
	hours = int64((d % Day) / time.Hour)
	return days, hours
}

// FormatDays renders a whole number of days as "1 day" or "N days".
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatPeriod renders d the way governance rules label voting windows:
// "24h" below two days, whole days otherwise.
func FormatPeriod(d time.Duration) string {
	if d < 2*Day {
		return fmt.Sprintf("%dh", int64(d/time.Hour))
	}
	return FormatDays(int(d / Day))
}
