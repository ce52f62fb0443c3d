package detect

import (
	"sort"
	"strings"

	"talent-import-go/internal/constants"
)

// TiebreakPolicy names how a field breaks ties between equally scored
// candidates. Every policy falls back to first-seen when it cannot decide.
type TiebreakPolicy string

const (
	PreferHeaderHint TiebreakPolicy = "preferHeaderHint"
	PreferShortest   TiebreakPolicy = "preferShortest"
	PreferLongest    TiebreakPolicy = "preferLongest"
	FirstSeen        TiebreakPolicy = "firstSeen"
)

// tiebreakPolicies is the per-field policy table. Fields not listed use
// preferHeaderHint.
var tiebreakPolicies = map[string]TiebreakPolicy{
	constants.FieldName:     PreferShortest,
	constants.FieldPosition: PreferShortest,
	constants.FieldSPOC:     PreferShortest,
	constants.FieldCompany:  PreferLongest,
	constants.FieldClient:   PreferLongest,
}

// PolicyFor returns the tie-break policy in force for a field.
func PolicyFor(field string) TiebreakPolicy {
	if p, ok := tiebreakPolicies[field]; ok {
		return p
	}
	return PreferHeaderHint
}

// crossFieldPriority orders the uniqueness pass: when two fields resolve to
// the same value, the earlier field keeps it.
var crossFieldPriority = []string{
	constants.FieldName,
	constants.FieldEmail,
	constants.FieldPhone,
	constants.FieldPosition,
	constants.FieldSPOC,
	constants.FieldCompany,
	constants.FieldStatus,
	constants.FieldSourceOfCV,
}

// Resolve picks one winning value per field from its candidates, retains the
// losers as alternates, and enforces cross-field uniqueness.
func Resolve(set CandidateSet) Record {
	rec := NewRecord()

	for _, field := range constants.AllFields {
		cands := set[field]
		if len(cands) == 0 {
			continue
		}
		winner := pickWinner(field, cands)
		rec.Fields[field] = winner.Value
		for _, c := range cands {
			if c.Value == winner.Value {
				continue
			}
			if !containsValue(rec.Duplicates[field], c.Value) {
				rec.Duplicates[field] = append(rec.Duplicates[field], c.Value)
			}
		}
	}

	dedupeAcrossFields(rec)
	return rec
}

// pickWinner sorts by score descending (stable, preserving scan order) and
// applies the field's tie-break policy to the leading score group.
func pickWinner(field string, cands []Candidate) Candidate {
	sorted := append([]Candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	top := sorted[0].Score
	tied := sorted[:1]
	for _, c := range sorted[1:] {
		if c.Score != top {
			break
		}
		tied = append(tied, c)
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return applyPolicy(PolicyFor(field), field, tied)
}

func applyPolicy(policy TiebreakPolicy, field string, tied []Candidate) Candidate {
	switch policy {
	case PreferHeaderHint:
		for _, c := range tied {
			if headerPrefers(c.Header, field) {
				return c
			}
		}
	case PreferShortest:
		best := tied[0]
		for _, c := range tied[1:] {
			if len(c.Value) < len(best.Value) {
				best = c
			}
		}
		return best
	case PreferLongest:
		best := tied[0]
		for _, c := range tied[1:] {
			if len(c.Value) > len(best.Value) {
				best = c
			}
		}
		return best
	}
	// firstSeen, and the fallback for an undecided header-hint policy.
	return tied[0]
}

// dedupeAcrossFields nulls a later field whose winning value already belongs
// to an earlier field in the priority order, case-insensitively.
func dedupeAcrossFields(rec Record) {
	claimed := make(map[string]string)
	for _, field := range crossFieldPriority {
		v := rec.Fields[field]
		if v == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(v))
		if _, taken := claimed[key]; taken {
			delete(rec.Fields, field)
			continue
		}
		claimed[key] = field
	}
}

func containsValue(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
