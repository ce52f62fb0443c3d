package quality

import (
	"fmt"
	"strconv"
	"unicode"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
	"talent-import-go/internal/keywords"
	"talent-import-go/internal/normalize"
)

// Issue is one validation finding on a record.
type Issue struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ValidationResult carries the findings, the 0-100 confidence score and the
// category the record lands in.
type ValidationResult struct {
	Errors     []Issue `json:"errors"`
	Warnings   []Issue `json:"warnings"`
	Confidence int     `json:"confidence"`
	Category   string  `json:"category"`
}

// Thresholds gate the confidence score into categories. Records at or above
// Ready import directly, those at or above Review queue for a human, and the
// rest are blocked.
type Thresholds struct {
	Ready  int
	Review int
}

// DefaultThresholds matches the shipped engine configuration.
var DefaultThresholds = Thresholds{Ready: 80, Review: 50}

const (
	majorPenalty = 10
	minorPenalty = 5
)

// Validate scores a fixed record. Any hard error forces the blocked category
// regardless of confidence; otherwise each missing or malformed soft field
// subtracts its penalty from 100, floored at zero.
func Validate(rec detect.Record, th Thresholds) ValidationResult {
	res := ValidationResult{Confidence: 100}

	res.checkName(rec)
	res.checkPhone(rec)
	res.checkEmail(rec)

	res.warnMissing(rec, constants.FieldLocation, majorPenalty)
	res.warnMissing(rec, constants.FieldPosition, majorPenalty)
	res.warnNumeric(rec, constants.FieldExperience, majorPenalty)
	res.warnNumeric(rec, constants.FieldCTC, majorPenalty)
	res.warnNumeric(rec, constants.FieldNoticePeriod, majorPenalty)
	res.warnMissing(rec, constants.FieldStatus, majorPenalty)
	res.warnMissing(rec, constants.FieldCompany, minorPenalty)
	res.warnMissing(rec, constants.FieldSourceOfCV, minorPenalty)

	if res.Confidence < 0 {
		res.Confidence = 0
	}

	switch {
	case len(res.Errors) > 0:
		res.Category = constants.CategoryBlocked
	case res.Confidence >= th.Ready:
		res.Category = constants.CategoryReady
	case res.Confidence >= th.Review:
		res.Category = constants.CategoryReview
	default:
		res.Category = constants.CategoryBlocked
	}
	return res
}

func (r *ValidationResult) addError(field, msg string) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: msg, Severity: constants.SeverityError})
}

func (r *ValidationResult) addWarning(field, msg string, penalty int) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: msg, Severity: constants.SeverityWarning})
	r.Confidence -= penalty
}

func (r *ValidationResult) checkName(rec detect.Record) {
	name := rec.Value(constants.FieldName)
	switch {
	case name == "":
		r.addError(constants.FieldName, "name is missing")
	case keywords.IsPlaceholder(name):
		r.addError(constants.FieldName, "name is a placeholder value")
	case !isNameShaped(name):
		r.addError(constants.FieldName, fmt.Sprintf("name %q contains invalid characters", name))
	}
}

func (r *ValidationResult) checkPhone(rec detect.Record) {
	phone := rec.Value(constants.FieldPhone)
	if phone == "" {
		r.addError(constants.FieldPhone, "phone is missing")
		return
	}
	if _, ok := normalize.Phone(phone); !ok {
		r.addError(constants.FieldPhone, fmt.Sprintf("phone %q is not a valid 10-digit mobile number", phone))
	}
}

// checkEmail treats a missing email as a warning but a present malformed one
// as a hard error: a bad address poisons downstream outreach silently.
func (r *ValidationResult) checkEmail(rec detect.Record) {
	email := rec.Value(constants.FieldEmail)
	if email == "" {
		r.addWarning(constants.FieldEmail, "email is missing", majorPenalty)
		return
	}
	if _, ok := normalize.Email(email); !ok {
		r.addError(constants.FieldEmail, fmt.Sprintf("email %q is malformed", email))
	}
}

func (r *ValidationResult) warnMissing(rec detect.Record, field string, penalty int) {
	if !rec.Has(field) {
		r.addWarning(field, field+" is missing", penalty)
	}
}

func (r *ValidationResult) warnNumeric(rec detect.Record, field string, penalty int) {
	v := rec.Value(field)
	if v == "" {
		r.addWarning(field, field+" is missing", penalty)
		return
	}
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		r.addWarning(field, fmt.Sprintf("%s %q is not numeric", field, v), penalty)
	}
}

// isNameShaped allows letters plus the separators that occur in real names.
func isNameShaped(name string) bool {
	for _, r := range name {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' || r == '.' {
			continue
		}
		return false
	}
	return true
}
