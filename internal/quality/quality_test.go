package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
)

func fullRecord() detect.Record {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "Ravi Kumar"
	rec.Fields[constants.FieldPhone] = "9876543210"
	rec.Fields[constants.FieldEmail] = "ravi@example.com"
	rec.Fields[constants.FieldLocation] = "Bangalore"
	rec.Fields[constants.FieldPosition] = "Software Engineer"
	rec.Fields[constants.FieldExperience] = "5"
	rec.Fields[constants.FieldCTC] = "12.0"
	rec.Fields[constants.FieldExpectedSalary] = "15.0"
	rec.Fields[constants.FieldNoticePeriod] = "30"
	rec.Fields[constants.FieldCompany] = "Acme Technologies Ltd"
	rec.Fields[constants.FieldStatus] = "shortlisted"
	rec.Fields[constants.FieldSourceOfCV] = "naukri"
	return rec
}

func TestValidateCompleteRecordIsReady(t *testing.T) {
	res := Validate(fullRecord(), DefaultThresholds)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 100, res.Confidence)
	assert.Equal(t, constants.CategoryReady, res.Category)
}

func TestValidateHardErrorForcesBlocked(t *testing.T) {
	rec := fullRecord()
	rec.Fields[constants.FieldName] = "abc123"
	res := Validate(rec, DefaultThresholds)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, constants.FieldName, res.Errors[0].Field)
	// Everything else is pristine, yet the category is still blocked.
	assert.Equal(t, 100, res.Confidence)
	assert.Equal(t, constants.CategoryBlocked, res.Category)
}

func TestValidateMissingIdentityFields(t *testing.T) {
	rec := detect.NewRecord()
	res := Validate(rec, DefaultThresholds)

	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{constants.FieldName, constants.FieldPhone}, fields)
	assert.Equal(t, constants.CategoryBlocked, res.Category)
}

func TestValidatePlaceholderName(t *testing.T) {
	rec := fullRecord()
	rec.Fields[constants.FieldName] = "N/A"
	res := Validate(rec, DefaultThresholds)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, constants.CategoryBlocked, res.Category)
}

func TestValidateMalformedEmailIsError(t *testing.T) {
	rec := fullRecord()
	rec.Fields[constants.FieldEmail] = "not-an-email"
	res := Validate(rec, DefaultThresholds)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, constants.FieldEmail, res.Errors[0].Field)
}

func TestValidateMissingEmailIsOnlyWarning(t *testing.T) {
	rec := fullRecord()
	delete(rec.Fields, constants.FieldEmail)
	res := Validate(rec, DefaultThresholds)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 90, res.Confidence)
	assert.Equal(t, constants.CategoryReady, res.Category)
}

func TestValidateWarningPenalties(t *testing.T) {
	// Three major soft fields and both minor ones missing: 100-3*10-2*5=60.
	rec := fullRecord()
	delete(rec.Fields, constants.FieldExperience)
	delete(rec.Fields, constants.FieldCTC)
	delete(rec.Fields, constants.FieldNoticePeriod)
	delete(rec.Fields, constants.FieldCompany)
	delete(rec.Fields, constants.FieldSourceOfCV)

	res := Validate(rec, DefaultThresholds)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 60, res.Confidence)
	assert.Equal(t, constants.CategoryReview, res.Category)
}

func TestValidateLowConfidenceBlocksWithoutErrors(t *testing.T) {
	// Identity fields alone: every soft field missing drains 70 points.
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "Ravi Kumar"
	rec.Fields[constants.FieldPhone] = "9876543210"
	rec.Fields[constants.FieldEmail] = "ravi@example.com"

	res := Validate(rec, DefaultThresholds)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 30, res.Confidence)
	assert.Equal(t, constants.CategoryBlocked, res.Category)
}

func TestValidateNonNumericSoftFieldWarns(t *testing.T) {
	rec := fullRecord()
	rec.Fields[constants.FieldExperience] = "five years"
	res := Validate(rec, DefaultThresholds)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 90, res.Confidence)
}

func TestValidateCustomThresholds(t *testing.T) {
	rec := fullRecord()
	delete(rec.Fields, constants.FieldLocation)
	res := Validate(rec, Thresholds{Ready: 95, Review: 85})
	assert.Equal(t, 90, res.Confidence)
	assert.Equal(t, constants.CategoryReview, res.Category)
}

func TestFixNormalizesValues(t *testing.T) {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "ravi kumar"
	rec.Fields[constants.FieldEmail] = " Ravi.K@Example.COM "
	rec.Fields[constants.FieldPhone] = "+91 98765 43210"
	rec.Fields[constants.FieldCTC] = "3,00,000"
	rec.Fields[constants.FieldExpectedSalary] = "9 LPA"
	rec.Fields[constants.FieldExperience] = "5 years"
	rec.Fields[constants.FieldNoticePeriod] = "2 months"
	rec.Fields[constants.FieldStatus] = "Shortlisted"
	rec.Fields[constants.FieldSPOC] = "anita d"

	out, changes := Fix(rec)
	assert.Equal(t, "Ravi Kumar", out.Value(constants.FieldName))
	assert.Equal(t, "ravi.k@example.com", out.Value(constants.FieldEmail))
	assert.Equal(t, "9876543210", out.Value(constants.FieldPhone))
	assert.Equal(t, "3.0", out.Value(constants.FieldCTC))
	assert.Equal(t, "9.0", out.Value(constants.FieldExpectedSalary))
	assert.Equal(t, "5", out.Value(constants.FieldExperience))
	assert.Equal(t, "60", out.Value(constants.FieldNoticePeriod))
	assert.Equal(t, "shortlisted", out.Value(constants.FieldStatus))
	assert.Equal(t, "Anita D", out.Value(constants.FieldSPOC))
	assert.Len(t, changes, 9)
	assert.Contains(t, changes, "email:  Ravi.K@Example.COM  → ravi.k@example.com")
}

func TestFixIsIdempotent(t *testing.T) {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "ravi kumar"
	rec.Fields[constants.FieldPhone] = "091-9876543210"
	rec.Fields[constants.FieldCTC] = "6 LPA"
	rec.Fields[constants.FieldExperience] = "3.5"
	rec.Fields[constants.FieldNoticePeriod] = "immediate"

	once, changes := Fix(rec)
	assert.NotEmpty(t, changes)

	twice, again := Fix(once)
	assert.Empty(t, again, "second pass must be a no-op")
	assert.Equal(t, once.Fields, twice.Fields)
}

func TestFixDoesNotMutateInput(t *testing.T) {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "ravi kumar"
	Fix(rec)
	assert.Equal(t, "ravi kumar", rec.Value(constants.FieldName))
}

func TestFixStripsSingleLeadingZeroFromPhone(t *testing.T) {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldPhone] = "098765 43210"
	out, _ := Fix(rec)
	assert.Equal(t, "9876543210", out.Value(constants.FieldPhone))
}

func TestFixLeavesMultiZeroPhoneJunkStable(t *testing.T) {
	// Only one leading zero is ever stripped, and only when that yields a
	// valid number; junk digits pass through untouched on every pass.
	rec := detect.NewRecord()
	rec.Fields[constants.FieldPhone] = "00098 76543 210"

	once, _ := Fix(rec)
	assert.Equal(t, "0009876543210", once.Value(constants.FieldPhone))

	twice, changes := Fix(once)
	assert.Empty(t, changes)
	assert.Equal(t, once.Fields, twice.Fields)
}
