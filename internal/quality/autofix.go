// Package quality normalizes resolved records and scores how importable
// they are.
package quality

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
	"talent-import-go/internal/normalize"
)

var titleCaser = cases.Title(language.English)

// Fix applies the deterministic value normalizations and returns a new
// record plus a "field: old → new" changelog of what actually changed.
// Fix is idempotent: applying it to its own output changes nothing.
func Fix(in detect.Record) (detect.Record, []string) {
	rec := in.Clone()
	var changes []string

	apply := func(field string, fix func(string) string) {
		old, ok := rec.Fields[field]
		if !ok || old == "" {
			return
		}
		next := fix(old)
		if next != old {
			rec.Fields[field] = next
			changes = append(changes, fmt.Sprintf("%s: %s → %s", field, old, next))
		}
	}

	apply(constants.FieldName, func(v string) string {
		return titleCaser.String(strings.TrimSpace(v))
	})
	apply(constants.FieldEmail, func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	})
	apply(constants.FieldPhone, fixPhone)
	apply(constants.FieldCTC, fixSalary)
	apply(constants.FieldExpectedSalary, fixSalary)
	apply(constants.FieldExperience, fixExperience)
	apply(constants.FieldNoticePeriod, fixNotice)
	apply(constants.FieldCompany, strings.TrimSpace)
	apply(constants.FieldClient, strings.TrimSpace)
	apply(constants.FieldSPOC, func(v string) string {
		return titleCaser.String(strings.TrimSpace(v))
	})
	apply(constants.FieldStatus, fixLower)
	apply(constants.FieldSourceOfCV, fixLower)

	return rec, changes
}

func fixLower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// fixPhone reduces a phone to digits. The full country-prefix handling lives
// in the normalizer; at most one leading zero is stripped, and only when the
// result is a valid number, so unparseable digits stay stable across passes.
// Whatever remains invalid is kept for the validator to report.
func fixPhone(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if p, ok := normalize.Phone(digits); ok {
		return p
	}
	if trimmed := strings.TrimPrefix(digits, "0"); trimmed != digits {
		if p, ok := normalize.Phone(trimmed); ok {
			return p
		}
	}
	return digits
}

// fixSalary coerces to canonical lakhs-per-annum with one decimal.
func fixSalary(v string) string {
	if f, ok := normalize.Salary(v); ok {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strings.TrimSpace(v)
}

// fixExperience coerces to years; plain numbers are kept numeric.
func fixExperience(v string) string {
	if f, ok := normalize.Experience(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSpace(v)
}

func fixNotice(v string) string {
	if d, ok := normalize.NoticePeriod(v); ok {
		return strconv.Itoa(d)
	}
	return strings.TrimSpace(v)
}
