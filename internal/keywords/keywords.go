// Package keywords holds the read-only vocabulary tables the detection rules
// match against. Everything here is initialized once at package load and is
// never mutated afterwards, so lookups are safe from any goroutine.
package keywords

import "strings"

// Cities are known candidate locations, lowercased.
var Cities = map[string]bool{
	"bangalore":   true,
	"bengaluru":   true,
	"mumbai":      true,
	"delhi":       true,
	"new delhi":   true,
	"gurgaon":     true,
	"gurugram":    true,
	"noida":       true,
	"hyderabad":   true,
	"chennai":     true,
	"pune":        true,
	"kolkata":     true,
	"ahmedabad":   true,
	"jaipur":      true,
	"lucknow":     true,
	"indore":      true,
	"chandigarh":  true,
	"kochi":       true,
	"cochin":      true,
	"coimbatore":  true,
	"nagpur":      true,
	"surat":       true,
	"vadodara":    true,
	"bhopal":      true,
	"patna":       true,
	"visakhapatnam": true,
	"vizag":       true,
	"thane":       true,
	"navi mumbai": true,
	"mysore":      true,
	"mangalore":   true,
	"trivandrum":  true,
	"bhubaneswar": true,
	"guwahati":    true,
	"dehradun":    true,
	"faridabad":   true,
	"ghaziabad":   true,
	"remote":      true,
}

// OrgSuffixes are tokens that mark a value as an organization name.
var OrgSuffixes = []string{
	"pvt", "ltd", "limited", "private", "llp", "inc", "incorporated",
	"corp", "corporation", "technologies", "technology", "tech",
	"solutions", "solution", "systems", "services", "consultancy",
	"consulting", "consultants", "infotech", "software", "softwares",
	"labs", "enterprises", "industries", "group", "ventures", "global",
	"digital", "infosystems", "innovations",
}

// JobTitles are tokens that mark a value as a job title.
var JobTitles = []string{
	"engineer", "developer", "manager", "analyst", "consultant",
	"architect", "designer", "lead", "executive", "officer",
	"administrator", "admin", "specialist", "associate", "intern",
	"trainee", "head", "director", "president", "vp", "cto", "ceo",
	"cfo", "scientist", "tester", "qa", "sde", "programmer",
	"recruiter", "accountant", "auditor", "supervisor", "coordinator",
	"technician", "fresher",
}

// StatusWords is the recruitment status vocabulary, lowercased.
var StatusWords = map[string]bool{
	"active":         true,
	"inactive":       true,
	"shortlisted":    true,
	"selected":       true,
	"rejected":       true,
	"on hold":       true,
	"hold":           true,
	"offered":        true,
	"offer released": true,
	"joined":         true,
	"interviewed":    true,
	"interview scheduled": true,
	"scheduled":      true,
	"screened":       true,
	"screening":      true,
	"submitted":      true,
	"pipeline":       true,
	"in process":     true,
	"in progress":    true,
	"feedback pending": true,
	"no show":        true,
	"dropped":        true,
	"backed out":     true,
	"not interested": true,
	"duplicate":      true,
	"open":           true,
	"closed":         true,
}

// SourceWords are recognized CV source channels, lowercased.
var SourceWords = map[string]bool{
	"naukri":      true,
	"linkedin":    true,
	"indeed":      true,
	"monster":     true,
	"shine":       true,
	"referral":    true,
	"reference":   true,
	"walk-in":     true,
	"walkin":      true,
	"portal":      true,
	"website":     true,
	"campus":      true,
	"vendor":      true,
	"internal":    true,
	"database":    true,
	"social media": true,
	"instahyre":   true,
	"cutshort":    true,
	"hirect":      true,
}

// FinanceWords mark client names from the finance/banking domain. Used only
// by the client/company swap correction.
var FinanceWords = []string{
	"bank", "banking", "finance", "financial", "capital", "securities",
	"insurance", "mutual", "wealth", "credit", "nbfc", "fintech",
	"payments", "lending", "broking",
}

// GenericWords are filler tokens that carry no identity on their own. A
// company cell made only of these ("current company", "not working") is
// vocabulary, not a name.
var GenericWords = map[string]bool{
	"company":      true,
	"organization": true,
	"organisation": true,
	"employer":     true,
	"current":      true,
	"previous":     true,
	"present":      true,
	"past":         true,
	"last":         true,
	"self":         true,
	"own":          true,
	"employed":     true,
	"unemployed":   true,
	"freelance":    true,
	"freelancer":   true,
	"working":      true,
	"not":          true,
	"no":           true,
	"yes":          true,
	"any":          true,
	"same":         true,
	"other":        true,
	"others":       true,
	"new":          true,
	"startup":      true,
	"mnc":          true,
	"firm":         true,
}

// Placeholders are strings that mean "no data" rather than real content.
var Placeholders = map[string]bool{
	"n/a":           true,
	"na":            true,
	"n.a":           true,
	"n.a.":          true,
	"nil":           true,
	"none":          true,
	"null":          true,
	"-":             true,
	"--":            true,
	"tbd":           true,
	"tba":           true,
	"pending":       true,
	"not available": true,
	"not applicable": true,
	"not mentioned": true,
	"not updated":   true,
	"unknown":       true,
	"yet to update": true,
	"xxx":           true,
	"?":             true,
	"awaited":       true,
}

// IsPlaceholder reports whether a raw cell value means "no data".
func IsPlaceholder(s string) bool {
	return Placeholders[strings.ToLower(strings.TrimSpace(s))]
}

// IsCity reports whether the value is a known location.
func IsCity(s string) bool {
	return Cities[strings.ToLower(strings.TrimSpace(s))]
}

// IsStatusWord reports whether the whole value is status vocabulary.
func IsStatusWord(s string) bool {
	return StatusWords[strings.ToLower(strings.TrimSpace(s))]
}

// IsSourceWord reports whether the whole value is a known CV source.
func IsSourceWord(s string) bool {
	return SourceWords[strings.ToLower(strings.TrimSpace(s))]
}

// ContainsAny reports whether any of the vocabulary tokens appears as a whole
// word inside the value.
func ContainsAny(s string, vocab []string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,()&")
		for _, v := range vocab {
			if w == v {
				return true
			}
		}
	}
	return false
}

// IsGenericPhrase reports whether every word of the value is known filler
// (generic, status or placeholder vocabulary). A single unrecognized word
// makes the phrase a potential proper name.
func IsGenericPhrase(s string) bool {
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		w = strings.Trim(w, ".,()&")
		if !GenericWords[w] && !StatusWords[w] && !Placeholders[w] {
			return false
		}
	}
	return true
}

// HasOrgSuffix reports whether the value carries organization vocabulary.
func HasOrgSuffix(s string) bool {
	return ContainsAny(s, OrgSuffixes)
}

// HasJobTitle reports whether the value carries job-title vocabulary.
func HasJobTitle(s string) bool {
	return ContainsAny(s, JobTitles)
}

// HasFinanceWord reports whether the value carries finance/banking vocabulary.
func HasFinanceWord(s string) bool {
	return ContainsAny(s, FinanceWords)
}
