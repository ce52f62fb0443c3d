package detect

import (
	"strconv"
	"strings"
	"unicode"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/keywords"
	"talent-import-go/internal/normalize"
)

// Scoring weights. Pattern validity gates a candidate entirely (score 0 means
// no candidate); the rest shade ambiguous cells toward the likelier field.
const (
	hintBonus       = 5 // column header matches the field's synonyms
	mismatchPenalty = 2 // header matches some other field instead
)

// cellContext carries one cell through every field rule.
type cellContext struct {
	value  string
	header string
	hints  map[string]bool
	words  int
}

func (c cellContext) hinted(field string) bool { return c.hints[field] }

// hintsOther reports whether the header points at some field other than the
// given one.
func (c cellContext) hintsOther(field string) bool {
	for f := range c.hints {
		if f != field {
			return true
		}
	}
	return false
}

// fieldRule scores one cell for one field class. A zero score means the cell
// is not a candidate for the field.
type fieldRule struct {
	field string
	score func(cellContext) int
}

// scanRules is the full classifier, one rule per field class, evaluated in
// order for every cell. noticePeriod precedes experience and ctc so a numeric
// string it captures is not scored for them as well.
var scanRules = []fieldRule{
	{constants.FieldPhone, scorePhone},
	{constants.FieldEmail, scoreEmail},
	{constants.FieldNoticePeriod, scoreNoticePeriod},
	{constants.FieldExperience, scoreExperience},
	{constants.FieldCTC, scoreCTC},
	{constants.FieldExpectedSalary, scoreExpectedSalary},
	{constants.FieldName, scoreName},
	{constants.FieldLocation, scoreLocation},
	{constants.FieldPosition, scorePosition},
	{constants.FieldCompany, scoreCompany},
	{constants.FieldClient, scoreClient},
	{constants.FieldSPOC, scoreSPOC},
	{constants.FieldStatus, scoreStatus},
	{constants.FieldSourceOfCV, scoreSourceOfCV},
}

// vetoFields have shape tests crisp enough that a strongly-hinted header plus
// a failing cell means the cell is junk for every field, not a candidate
// elsewhere.
var vetoFields = []string{constants.FieldPhone, constants.FieldEmail}

// Scan evaluates every non-empty, non-placeholder cell of the row against
// every field class and returns the unsorted candidate set.
func Scan(row RawRow) CandidateSet {
	set := make(CandidateSet)
	for _, cell := range row {
		value := strings.TrimSpace(cell.Value)
		if value == "" || keywords.IsPlaceholder(value) {
			continue
		}
		if headerSkipped(cell.Header) {
			continue
		}

		hints := make(map[string]bool)
		for _, f := range hintedFields(cell.Header) {
			hints[f] = true
		}
		if vetoed(hints, value) {
			continue
		}

		ctx := cellContext{
			value:  value,
			header: cell.Header,
			hints:  hints,
			words:  len(strings.Fields(value)),
		}

		claimed := make(map[string]bool)
		for _, rule := range scanRules {
			if excluded(rule.field, claimed) {
				continue
			}
			score := rule.score(ctx)
			if score <= 0 {
				continue
			}
			if ctx.hinted(rule.field) {
				score += hintBonus
			} else if ctx.hintsOther(rule.field) {
				score -= mismatchPenalty
			}
			if score <= 0 {
				continue
			}
			claimed[rule.field] = true
			set[rule.field] = append(set[rule.field], Candidate{
				Value:  value,
				Score:  score,
				Header: cell.Header,
			})
		}
	}
	return set
}

// vetoed applies the header-directed veto: a header that strongly implies a
// shape-tested field disqualifies the whole cell when the shape test fails.
func vetoed(hints map[string]bool, value string) bool {
	for _, f := range vetoFields {
		if !hints[f] {
			continue
		}
		switch f {
		case constants.FieldPhone:
			if _, ok := normalize.Phone(value); !ok {
				return true
			}
		case constants.FieldEmail:
			if _, ok := normalize.Email(value); !ok {
				return true
			}
		}
	}
	return false
}

// excluded enforces mutual exclusion between the numeric field classes: a
// cell captured as notice period is not also experience or ctc, and a salary
// cell belongs to exactly one of ctc / expectedSalary.
func excluded(field string, claimed map[string]bool) bool {
	switch field {
	case constants.FieldExperience, constants.FieldCTC:
		return claimed[constants.FieldNoticePeriod]
	case constants.FieldExpectedSalary:
		return claimed[constants.FieldCTC]
	}
	return false
}

func scorePhone(c cellContext) int {
	if _, ok := normalize.Phone(c.value); !ok {
		return 0
	}
	return 10
}

func scoreEmail(c cellContext) int {
	if _, ok := normalize.Email(c.value); !ok {
		return 0
	}
	return 10
}

func scoreNoticePeriod(c cellContext) int {
	if _, ok := normalize.NoticePeriod(c.value); !ok {
		return 0
	}
	// Bare integers are ambiguous (days? years of experience? lakhs?);
	// claim them only on a hinted column.
	if isBareNumber(c.value) && !c.hinted(constants.FieldNoticePeriod) {
		return 0
	}
	return 8
}

func scoreExperience(c cellContext) int {
	if _, ok := normalize.Experience(c.value); ok {
		return 8
	}
	// Bare numbers in a plausible range count only with a hinted header.
	if c.hinted(constants.FieldExperience) && isBareNumber(c.value) {
		return 6
	}
	return 0
}

func scoreCTC(c cellContext) int {
	// Cells on an expected-salary, experience or notice column never fill
	// current ctc.
	if c.hinted(constants.FieldExpectedSalary) ||
		c.hinted(constants.FieldExperience) ||
		c.hinted(constants.FieldNoticePeriod) {
		return 0
	}
	if _, ok := normalize.Salary(c.value); !ok {
		return 0
	}
	// An unlabeled bare number in the lakh range could as easily be days
	// or years; require a hint or an unambiguous rupee magnitude.
	if !c.hinted(constants.FieldCTC) && isBareNumber(c.value) {
		if raw, err := strconv.ParseFloat(strings.TrimSpace(c.value), 64); err != nil || raw <= 100 {
			return 0
		}
	}
	return 6
}

func scoreExpectedSalary(c cellContext) int {
	if _, ok := normalize.Salary(c.value); !ok {
		return 0
	}
	if c.hinted(constants.FieldExpectedSalary) {
		return 8
	}
	// Without a header there is nothing to tell expected from current;
	// current wins by default.
	return 0
}

func scoreName(c cellContext) int {
	if !isPersonNameShaped(c.value) || c.words > 5 {
		return 0
	}
	score := 5
	switch c.words {
	case 2, 3:
		score += 3
	case 1, 4:
		score++
	}
	if keywords.HasJobTitle(c.value) {
		score -= 3
	}
	if keywords.HasOrgSuffix(c.value) {
		score -= 3
	}
	if keywords.IsCity(c.value) {
		score -= 4
	}
	if keywords.IsStatusWord(c.value) || keywords.IsSourceWord(c.value) {
		score -= 4
	}
	return score
}

func scoreLocation(c cellContext) int {
	if keywords.IsCity(c.value) {
		return 8
	}
	if c.hinted(constants.FieldLocation) && c.words <= 3 && isAlphaSpace(c.value) {
		return 5
	}
	return 0
}

func scorePosition(c cellContext) int {
	if c.words > 6 {
		return 0
	}
	score := 0
	if keywords.HasJobTitle(c.value) {
		score = 7
	} else if c.hinted(constants.FieldPosition) && isAlphaSpace(c.value) {
		score = 4
	}
	if score > 0 && keywords.HasOrgSuffix(c.value) {
		score -= 2
	}
	return score
}

func scoreCompany(c cellContext) int {
	if c.words > 6 || hasDigits(c.value) {
		return 0
	}
	score := 0
	if keywords.HasOrgSuffix(c.value) {
		score = 8
	} else if c.hinted(constants.FieldCompany) && c.words <= 4 {
		score = 5
	}
	if score > 0 && keywords.IsCity(c.value) {
		score -= 3
	}
	return score
}

func scoreClient(c cellContext) int {
	if c.words > 6 || hasDigits(c.value) {
		return 0
	}
	if c.hinted(constants.FieldClient) {
		return 6
	}
	if keywords.HasFinanceWord(c.value) {
		return 4
	}
	return 0
}

func scoreSPOC(c cellContext) int {
	if !isPersonNameShaped(c.value) || c.words > 4 {
		return 0
	}
	if c.hinted(constants.FieldSPOC) {
		return 8
	}
	return 2
}

func scoreStatus(c cellContext) int {
	if keywords.IsStatusWord(c.value) {
		return 9
	}
	return 0
}

func scoreSourceOfCV(c cellContext) int {
	if keywords.IsSourceWord(c.value) {
		return 9
	}
	return 0
}

// isPersonNameShaped allows letters, spaces, hyphens, apostrophes and
// periods, with at least one letter.
func isPersonNameShaped(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ' || r == '-' || r == '\'' || r == '.':
		default:
			return false
		}
	}
	return hasLetter
}

func isAlphaSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '.' && r != ',' && r != '(' && r != ')' {
			return false
		}
	}
	return s != ""
}

func hasDigits(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func isBareNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
