package interp

import (
	"strconv"
	"time"
)

// parseFloat reports whether s parses as a decimal literal, mirroring
// string->number's fallback to Python's float() once int() fails.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// currentSeconds mirrors predefined/_numeric.py's CurrentSeconds
// (math.floor(time.time())): whole seconds since the Unix epoch.
func currentSeconds() int64 { return time.Now().Unix() }
