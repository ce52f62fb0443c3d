package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	lpaRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:lpa|l\.p\.a\.?)$`)
	kRe     = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*k$`)
	lakhRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:l|lac|lacs|lakh|lakhs)$`)
	groupRe = regexp.MustCompile(`^\d{1,3}(?:,\d{2,3})+$`)
	bareRe  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// Salary canonicalizes a salary string to lakhs per annum, rounded to one
// decimal. Accepted shapes: "<n> LPA", "<n>K", Indian comma-grouped annual
// figures, "<n>L"/"<n> lakh(s)", and bare numbers resolved by magnitude
// (1.5-100 read as lakhs already, larger figures up to 10,000,000 read as
// rupees per annum).
func Salary(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "per annum")
	s = strings.TrimSuffix(s, "p.a.")
	s = strings.TrimSuffix(s, "pa")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := lpaRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return round1(n), true
	}
	if m := kRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return round1(n / 100), true
	}
	if m := lakhRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return round1(n), true
	}
	if groupRe.MatchString(s) {
		n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil || n < 100000 || n > 10000000 {
			return 0, false
		}
		return round1(n / 100000), true
	}
	if bareRe.MatchString(s) {
		n, _ := strconv.ParseFloat(s, 64)
		switch {
		case n >= 1.5 && n <= 100:
			return round1(n), true
		case n > 100 && n <= 10000000:
			return round1(n / 100000), true
		}
	}
	return 0, false
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
