package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-import-go/internal/constants"
)

func row(cells ...Cell) RawRow { return RawRow(cells) }

func TestScanHeaderlessRow(t *testing.T) {
	// No headers at all: content alone must carry the classification.
	set := Scan(row(
		Cell{Value: "Ravi Kumar"},
		Cell{Value: "9876543210"},
		Cell{Value: "ravi.kumar@example.com"},
		Cell{Value: "Bangalore"},
		Cell{Value: "Senior Software Engineer"},
		Cell{Value: "Infotech Solutions Pvt Ltd"},
		Cell{Value: "shortlisted"},
	))

	rec := Resolve(set)
	assert.Equal(t, "Ravi Kumar", rec.Value(constants.FieldName))
	assert.Equal(t, "9876543210", rec.Value(constants.FieldPhone))
	assert.Equal(t, "ravi.kumar@example.com", rec.Value(constants.FieldEmail))
	assert.Equal(t, "Bangalore", rec.Value(constants.FieldLocation))
	assert.Equal(t, "Senior Software Engineer", rec.Value(constants.FieldPosition))
	assert.Equal(t, "Infotech Solutions Pvt Ltd", rec.Value(constants.FieldCompany))
	assert.Equal(t, "shortlisted", rec.Value(constants.FieldStatus))
}

func TestScanSkipsPlaceholdersAndSkipHeaders(t *testing.T) {
	set := Scan(row(
		Cell{Header: "Name", Value: "N/A"},
		Cell{Header: "Created Date", Value: "Anita Desai"},
		Cell{Header: "Remarks", Value: "good candidate"},
	))
	assert.Empty(t, set, "placeholders and skip-listed columns produce no candidates")
}

func TestScanHeaderVeto(t *testing.T) {
	// A phone-labeled column holding junk is dropped for every class, not
	// reinterpreted as something else.
	set := Scan(row(Cell{Header: "Phone", Value: "will share later"}))
	assert.Empty(t, set)

	// The same text without the phone header can still score elsewhere.
	set = Scan(row(Cell{Header: "", Value: "will share later"}))
	_, hasPhone := set[constants.FieldPhone]
	assert.False(t, hasPhone)
}

func TestScanNoticeExperienceMutualExclusion(t *testing.T) {
	set := Scan(row(Cell{Header: "Notice Period", Value: "30"}))
	require.NotEmpty(t, set[constants.FieldNoticePeriod])
	assert.Empty(t, set[constants.FieldExperience], "a captured notice period is not also experience")
	assert.Empty(t, set[constants.FieldCTC], "a captured notice period is not also ctc")
}

func TestScanExpectedVsCurrentSalary(t *testing.T) {
	set := Scan(row(
		Cell{Header: "Current CTC", Value: "6 LPA"},
		Cell{Header: "Expected CTC", Value: "9 LPA"},
	))
	rec := Resolve(set)
	assert.Equal(t, "6 LPA", rec.Value(constants.FieldCTC))
	assert.Equal(t, "9 LPA", rec.Value(constants.FieldExpectedSalary))
}

func TestResolveTieBreakPolicies(t *testing.T) {
	tests := []struct {
		field string
		want  TiebreakPolicy
	}{
		{constants.FieldName, PreferShortest},
		{constants.FieldPosition, PreferShortest},
		{constants.FieldSPOC, PreferShortest},
		{constants.FieldCompany, PreferLongest},
		{constants.FieldClient, PreferLongest},
		{constants.FieldPhone, PreferHeaderHint},
		{constants.FieldStatus, PreferHeaderHint},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PolicyFor(tt.field), "field %s", tt.field)
	}
}

func TestResolvePreferShortestKeepsLoserAsDuplicate(t *testing.T) {
	set := CandidateSet{
		constants.FieldName: {
			{Value: "Ravi Kumar Srinivasan Iyer", Score: 8, Header: "Name"},
			{Value: "Ravi Kumar", Score: 8, Header: "Candidate"},
		},
	}
	rec := Resolve(set)
	assert.Equal(t, "Ravi Kumar", rec.Value(constants.FieldName))
	assert.Equal(t, []string{"Ravi Kumar Srinivasan Iyer"}, rec.Duplicates[constants.FieldName])
}

func TestResolvePreferLongestForCompany(t *testing.T) {
	set := CandidateSet{
		constants.FieldCompany: {
			{Value: "Acme Ltd", Score: 8},
			{Value: "Acme Technologies Ltd", Score: 8},
		},
	}
	rec := Resolve(set)
	assert.Equal(t, "Acme Technologies Ltd", rec.Value(constants.FieldCompany))
}

func TestResolvePreferHeaderHint(t *testing.T) {
	set := CandidateSet{
		constants.FieldPhone: {
			{Value: "9876543210", Score: 10, Header: "Alt Contact"},
			{Value: "9123456780", Score: 10, Header: "Phone"},
		},
	}
	rec := Resolve(set)
	assert.Equal(t, "9123456780", rec.Value(constants.FieldPhone))
}

func TestResolveFirstSeenFallback(t *testing.T) {
	set := CandidateSet{
		constants.FieldStatus: {
			{Value: "shortlisted", Score: 9, Header: ""},
			{Value: "selected", Score: 9, Header: ""},
		},
	}
	rec := Resolve(set)
	assert.Equal(t, "shortlisted", rec.Value(constants.FieldStatus))
}

func TestResolveCrossFieldUniqueness(t *testing.T) {
	// The same string claimed by name first is nulled on the later spoc.
	set := CandidateSet{
		constants.FieldName: {{Value: "Ravi Kumar", Score: 9}},
		constants.FieldSPOC: {{Value: "ravi kumar", Score: 9}},
	}
	rec := Resolve(set)
	assert.Equal(t, "Ravi Kumar", rec.Value(constants.FieldName))
	assert.False(t, rec.Has(constants.FieldSPOC))
}

func TestCorrectorSequence(t *testing.T) {
	t.Run("job title in name moves to position", func(t *testing.T) {
		rec := NewRecord()
		rec.Fields[constants.FieldName] = "Software Engineer"
		out := Correct(rec)
		assert.False(t, out.Has(constants.FieldName))
		assert.Equal(t, "Software Engineer", out.Value(constants.FieldPosition))
	})

	t.Run("org suffix in position moves to company", func(t *testing.T) {
		rec := NewRecord()
		rec.Fields[constants.FieldPosition] = "Acme Solutions Pvt Ltd"
		out := Correct(rec)
		assert.False(t, out.Has(constants.FieldPosition))
		assert.Equal(t, "Acme Solutions Pvt Ltd", out.Value(constants.FieldCompany))
	})

	t.Run("short company moves to spoc", func(t *testing.T) {
		rec := NewRecord()
		rec.Fields[constants.FieldCompany] = "Raj"
		out := Correct(rec)
		assert.False(t, out.Has(constants.FieldCompany))
		assert.Equal(t, "Raj", out.Value(constants.FieldSPOC))
	})

	t.Run("finance client swaps with company", func(t *testing.T) {
		rec := NewRecord()
		rec.Fields[constants.FieldClient] = "HDFC Bank"
		rec.Fields[constants.FieldCompany] = "Acme Technologies Ltd"
		out := Correct(rec)
		assert.Equal(t, "HDFC Bank", out.Value(constants.FieldCompany))
		assert.Equal(t, "Acme Technologies Ltd", out.Value(constants.FieldClient))
	})

	t.Run("rules chain within one pass", func(t *testing.T) {
		// Name is a title, and the freed position slot is what rule 1
		// fills; rule 2 then sees rule 1's output.
		rec := NewRecord()
		rec.Fields[constants.FieldName] = "Lead Edge Solutions Ltd"
		out := Correct(rec)
		assert.False(t, out.Has(constants.FieldName))
		assert.False(t, out.Has(constants.FieldPosition))
		assert.Equal(t, "Lead Edge Solutions Ltd", out.Value(constants.FieldCompany))
	})

	t.Run("input record is not mutated", func(t *testing.T) {
		rec := NewRecord()
		rec.Fields[constants.FieldName] = "Software Engineer"
		Correct(rec)
		assert.Equal(t, "Software Engineer", rec.Value(constants.FieldName))
	})
}

func TestSemanticPrune(t *testing.T) {
	rec := NewRecord()
	rec.Fields[constants.FieldName] = "rejected"
	rec.Fields[constants.FieldCompany] = "Current Company"
	rec.Fields[constants.FieldStatus] = "Mumbai"
	rec.Fields[constants.FieldPosition] = "on hold"
	rec.Fields[constants.FieldEmail] = "x@y.com"

	out := Prune(rec)
	assert.False(t, out.Has(constants.FieldName))
	assert.False(t, out.Has(constants.FieldCompany))
	assert.False(t, out.Has(constants.FieldStatus))
	assert.False(t, out.Has(constants.FieldPosition))
	assert.Equal(t, "x@y.com", out.Value(constants.FieldEmail), "untargeted fields pass through")
}

func TestSemanticPruneKeepsValidValues(t *testing.T) {
	rec := NewRecord()
	rec.Fields[constants.FieldName] = "Anita Desai"
	rec.Fields[constants.FieldCompany] = "Acme Technologies Ltd"
	rec.Fields[constants.FieldStatus] = "shortlisted"
	rec.Fields[constants.FieldPosition] = "Data Analyst"

	out := Prune(rec)
	assert.Equal(t, rec.Fields, out.Fields)
}

func TestSemanticPruneKeepsShortCompanyNames(t *testing.T) {
	// A proper name without organization vocabulary is still a company;
	// only pure filler phrases get nulled.
	for _, co := range []string{"Infosys", "Wipro", "Tata Steel", "Google"} {
		rec := NewRecord()
		rec.Fields[constants.FieldCompany] = co
		out := Prune(rec)
		assert.Equal(t, co, out.Value(constants.FieldCompany))
	}

	for _, co := range []string{"not working", "current company", "Self Employed", "na"} {
		rec := NewRecord()
		rec.Fields[constants.FieldCompany] = co
		out := Prune(rec)
		assert.False(t, out.Has(constants.FieldCompany), co)
	}
}
