package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsRe      = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*\+?\s*(?:yrs?|years?|y)$`)
	expMonthsRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:months?|mons?)$`)
	zeroMarkerRe = regexp.MustCompile(`^0\s*exp(?:erience)?$`)
)

// Experience canonicalizes a work-experience string to years.
// Fresher-style markers map to zero; numeric values are accepted only in the
// 0-70 year range.
func Experience(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	switch s {
	case "fresher", "entry", "entry level", "student", "graduate":
		return 0, true
	}
	if zeroMarkerRe.MatchString(s) {
		return 0, true
	}
	if m := yearsRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		if n >= 0 && n <= 70 {
			return n, true
		}
		return 0, false
	}
	if m := expMonthsRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		yrs := n / 12
		if yrs >= 0 && yrs <= 70 {
			return round1(yrs), true
		}
		return 0, false
	}
	return 0, false
}
