package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	daysRe   = regexp.MustCompile(`^(\d+)\s*days?$`)
	weeksRe  = regexp.MustCompile(`^(\d+)\s*(?:weeks?|wks?)$`)
	monthsRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:months?|mons?)$`)
	intRe    = regexp.MustCompile(`^\d+$`)
)

// NoticePeriod canonicalizes a notice-period string to days.
// "on notice" / "serving notice" style values are deliberately a miss: they
// say the clock is running without saying how much is left.
func NoticePeriod(raw string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, "on notice") || strings.Contains(s, "under notice") ||
		strings.Contains(s, "serving notice") {
		return 0, false
	}
	if strings.HasPrefix(s, "immediate") {
		return 0, true
	}
	if m := daysRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	if m := weeksRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 7, true
	}
	if m := monthsRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return int(n * 30), true
	}
	if intRe.MatchString(s) {
		n, _ := strconv.Atoi(s)
		if n >= 0 && n <= 365 {
			return n, true
		}
	}
	return 0, false
}
