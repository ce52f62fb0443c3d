package importer

import (
	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
)

// Snapshot holds the normalized identifiers already persisted for the
// current owner. It is loaded once per batch and never written to.
type Snapshot struct {
	Emails map[string]struct{}
	Phones map[string]struct{}
}

// NewSnapshot builds a snapshot from identifier lists as the storage layer
// returns them. Values are assumed already normalized on write.
func NewSnapshot(emails, phones []string) *Snapshot {
	s := &Snapshot{
		Emails: make(map[string]struct{}, len(emails)),
		Phones: make(map[string]struct{}, len(phones)),
	}
	for _, e := range emails {
		if e != "" {
			s.Emails[e] = struct{}{}
		}
	}
	for _, p := range phones {
		if p != "" {
			s.Phones[p] = struct{}{}
		}
	}
	return s
}

func (s *Snapshot) hasEmail(v string) bool {
	if s == nil || v == "" {
		return false
	}
	_, ok := s.Emails[v]
	return ok
}

func (s *Snapshot) hasPhone(v string) bool {
	if s == nil || v == "" {
		return false
	}
	_, ok := s.Phones[v]
	return ok
}

// seenSet tracks identifiers observed earlier in the same batch. First
// occurrence wins, so rows must arrive in original file order.
type seenSet struct {
	emails map[string]struct{}
	phones map[string]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		emails: make(map[string]struct{}),
		phones: make(map[string]struct{}),
	}
}

// observe reports whether the record's email or phone already appeared in
// this batch, and registers both identifiers either way.
func (s *seenSet) observe(rec detect.Record) bool {
	email := rec.Value(constants.FieldEmail)
	phone := rec.Value(constants.FieldPhone)

	dup := false
	if email != "" {
		if _, ok := s.emails[email]; ok {
			dup = true
		}
		s.emails[email] = struct{}{}
	}
	if phone != "" {
		if _, ok := s.phones[phone]; ok {
			dup = true
		}
		s.phones[phone] = struct{}{}
	}
	return dup
}
