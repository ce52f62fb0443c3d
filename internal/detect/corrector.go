package detect

import (
	"talent-import-go/internal/constants"
	"talent-import-go/internal/keywords"
)

// Correct applies the fixed misclassification rules, in order, each seeing
// the previous rule's output. The sequence runs exactly once; it is not
// iterated to a fixpoint.
func Correct(in Record) Record {
	rec := in.Clone()

	// 1. A job title resolved as the candidate's name.
	if name := rec.Value(constants.FieldName); name != "" &&
		keywords.HasJobTitle(name) && !rec.Has(constants.FieldPosition) {
		rec.Fields[constants.FieldPosition] = name
		delete(rec.Fields, constants.FieldName)
	}

	// 2. An organization resolved as the position.
	if pos := rec.Value(constants.FieldPosition); pos != "" &&
		keywords.HasOrgSuffix(pos) && !rec.Has(constants.FieldCompany) {
		rec.Fields[constants.FieldCompany] = pos
		delete(rec.Fields, constants.FieldPosition)
	}

	// 3. A short non-organization string resolved as the company is more
	// likely a recruiter's initials or short name.
	if co := rec.Value(constants.FieldCompany); co != "" && len(co) < 4 &&
		!keywords.HasOrgSuffix(co) && !rec.Has(constants.FieldSPOC) {
		rec.Fields[constants.FieldSPOC] = co
		delete(rec.Fields, constants.FieldCompany)
	}

	// 4. Client/company swap: when only the client side carries finance
	// vocabulary the two columns were filled in reverse. Heuristic tuned
	// to recruitment sheets from one regional market; isolated here so it
	// can be retired independently.
	client, company := rec.Value(constants.FieldClient), rec.Value(constants.FieldCompany)
	if client != "" && company != "" &&
		keywords.HasFinanceWord(client) && !keywords.HasFinanceWord(company) {
		rec.Fields[constants.FieldClient] = company
		rec.Fields[constants.FieldCompany] = client
	}

	return rec
}
