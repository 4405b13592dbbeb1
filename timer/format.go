package timer

import (
	"strconv"
	"time"
)

// FormatDuration renders d in the most readable unit for its magnitude:
// usec below one millisecond, msec below one second, sec otherwise. The
// value carries the given number of significant digits.
func FormatDuration(d time.Duration, precision int) string {
	if precision <= 0 {
		precision = defaultPrecision
	}
	usec := float64(d) / float64(time.Microsecond)
	if usec < 1000 {
		return formatTiming(usec, precision) + " usec"
	}
	msec := usec / 1000
	if msec < 1000 {
		return formatTiming(msec, precision) + " msec"
	}
	return formatTiming(d.Seconds(), precision) + " sec"
}

func formatTiming(value float64, precision int) string {
	return strconv.FormatFloat(value, 'g', precision, 64)
}
