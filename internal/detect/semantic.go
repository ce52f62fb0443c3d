package detect

import (
	"strings"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/keywords"
)

// Prune is the last-resort semantic gate: any field whose resolved value
// still fails its own shape rules after correction is nulled outright. A
// missing field is preferred over a confidently wrong one.
func Prune(in Record) Record {
	rec := in.Clone()

	if name := rec.Value(constants.FieldName); name != "" {
		if keywords.HasJobTitle(name) || keywords.IsStatusWord(name) {
			delete(rec.Fields, constants.FieldName)
		}
	}

	// Short company values are nulled only when every word is known filler
	// vocabulary; a suffix-less proper name ("Infosys", "Tata Steel") is a
	// legitimate company.
	if co := rec.Value(constants.FieldCompany); co != "" {
		if len(strings.Fields(co)) <= 2 && !keywords.HasOrgSuffix(co) && keywords.IsGenericPhrase(co) {
			delete(rec.Fields, constants.FieldCompany)
		}
	}

	if st := rec.Value(constants.FieldStatus); st != "" {
		if keywords.IsCity(st) {
			delete(rec.Fields, constants.FieldStatus)
		}
	}

	if pos := rec.Value(constants.FieldPosition); pos != "" {
		if keywords.IsStatusWord(pos) {
			delete(rec.Fields, constants.FieldPosition)
		}
	}

	return rec
}
