package detect

import (
	"strings"

	"talent-import-go/internal/constants"
)

// headerSynonyms maps each field to the header labels that hint at it.
// The first entry per field is its preferred synonym, used by the
// preferHeaderHint tie-break.
var headerSynonyms = map[string][]string{
	constants.FieldName:           {"name", "candidate"},
	constants.FieldPhone:          {"phone", "mobile", "contact no", "contact number", "phone number", "mobile number", "contact"},
	constants.FieldEmail:          {"email", "e mail", "mail id", "email id", "mail"},
	constants.FieldLocation:       {"location", "city", "current location", "base location", "place"},
	constants.FieldPosition:       {"position", "designation", "role", "profile", "job title"},
	constants.FieldExperience:     {"experience", "total exp", "exp", "yoe"},
	constants.FieldCTC:            {"ctc", "current ctc", "current salary", "salary", "cctc"},
	constants.FieldExpectedSalary: {"expected ctc", "expected salary", "ectc", "expectation", "expected"},
	constants.FieldNoticePeriod:   {"notice period", "notice", "np"},
	constants.FieldCompany:        {"company", "current company", "organization", "organisation", "employer"},
	constants.FieldClient:         {"client", "client name", "account"},
	constants.FieldSPOC:           {"spoc", "recruiter", "poc", "contact person", "hr name"},
	constants.FieldStatus:         {"status", "stage", "current status", "feedback"},
	constants.FieldSourceOfCV:     {"source", "source of cv", "portal", "channel", "sourced from"},
}

// skipTokens mark headers that denote concepts no field rule wants: a header
// carrying one of these, and hinting no field, excludes its column entirely.
var skipTokens = []string{
	"date", "dob", "id", "sno", "s no", "sr no", "serial",
	"remark", "remarks", "comment", "comments", "created", "updated",
	"address", "age", "gender",
}

// normalizeHeader lowercases a header label and collapses punctuation to
// single spaces so synonym matching sees a uniform shape.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	var b strings.Builder
	for _, r := range h {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// hintedFields returns every field whose synonyms the header matches.
func hintedFields(header string) []string {
	h := normalizeHeader(header)
	if h == "" {
		return nil
	}
	var out []string
	for _, field := range constants.AllFields {
		if headerHints(h, field) {
			out = append(out, field)
		}
	}
	return out
}

// headerHints reports whether a normalized header matches any synonym of the
// field, as a whole header or an embedded token run.
func headerHints(normalized, field string) bool {
	if normalized == strings.ToLower(field) {
		// Canonical field names hint themselves; re-validation feeds
		// them back in as headers.
		return true
	}
	for _, syn := range headerSynonyms[field] {
		if containsRun(normalized, syn) {
			return true
		}
	}
	return false
}

// headerPrefers reports whether the header carries the field's preferred
// (first-listed) synonym.
func headerPrefers(header, field string) bool {
	syns := headerSynonyms[field]
	if len(syns) == 0 {
		return false
	}
	return containsRun(normalizeHeader(header), syns[0])
}

// headerSkipped reports whether the header denotes an unrelated concept.
// Only headers that hint no field at all are skippable, so "email id" is
// never lost to the "id" token.
func headerSkipped(header string) bool {
	h := normalizeHeader(header)
	if h == "" {
		return false
	}
	if len(hintedFields(header)) > 0 {
		return false
	}
	for _, tok := range skipTokens {
		if containsRun(h, tok) {
			return true
		}
	}
	return false
}

// containsRun reports whether needle appears in haystack on word boundaries.
func containsRun(haystack, needle string) bool {
	if haystack == needle {
		return true
	}
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		leftOK := start == 0 || haystack[start-1] == ' '
		rightOK := end == len(haystack) || haystack[end] == ' '
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}
