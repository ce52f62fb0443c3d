// Package detect infers the semantic field behind each spreadsheet cell.
// Headers are treated as hints, never as truth: every non-empty cell is
// scored against every field class, and the resolver picks one winner per
// field from the scored candidates.
package detect

// Cell is one column of a raw row: the header label (possibly empty or
// wrong) and the cell text.
type Cell struct {
	Header string `json:"header"`
	Value  string `json:"value"`
}

// RawRow is an ordered list of cells as they appeared in the sheet.
type RawRow []Cell

// Candidate is one scored match of a cell value for a field class.
type Candidate struct {
	Value  string
	Score  int
	Header string
}

// CandidateSet maps field name to the candidates scanned for it in one row.
type CandidateSet map[string][]Candidate

// Record is a detected candidate record: at most one value per canonical
// field, plus the non-winning alternates per field.
type Record struct {
	Fields     map[string]string   `json:"fields"`
	Duplicates map[string][]string `json:"duplicates,omitempty"`
}

// NewRecord returns an empty record with allocated maps.
func NewRecord() Record {
	return Record{
		Fields:     make(map[string]string),
		Duplicates: make(map[string][]string),
	}
}

// Clone returns a deep copy. Pipeline stages never mutate their input.
func (r Record) Clone() Record {
	out := NewRecord()
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	for k, v := range r.Duplicates {
		out.Duplicates[k] = append([]string(nil), v...)
	}
	return out
}

// Value returns the resolved value for a field, empty when null.
func (r Record) Value(field string) string {
	return r.Fields[field]
}

// Has reports whether a field resolved to a non-null value.
func (r Record) Has(field string) bool {
	v, ok := r.Fields[field]
	return ok && v != ""
}
