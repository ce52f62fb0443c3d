package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneRoundTrip(t *testing.T) {
	// All common renderings of the same number collapse to ten digits.
	for _, raw := range []string{"+91 98765 43210", "9876543210", "91-9876543210", "(91) 98765-43210"} {
		got, ok := Phone(raw)
		require.True(t, ok, "expected %q to normalize", raw)
		assert.Equal(t, "9876543210", got, "input %q", raw)
	}
}

func TestPhoneRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no 6-9 prefix", "5551234567"},
		{"too short", "12345"},
		{"too long without country code", "123456789012"},
		{"empty", ""},
		{"letters only", "call me"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Phone(tt.raw)
			assert.False(t, ok)
		})
	}
}

func TestSalaryEquivalence(t *testing.T) {
	// "3 LPA", "300000", "3,00,000" and "3L" are the same salary.
	for _, raw := range []string{"3 LPA", "300000", "3,00,000", "3L"} {
		got, ok := Salary(raw)
		require.True(t, ok, "expected %q to normalize", raw)
		assert.Equal(t, 3.0, got, "input %q", raw)
	}
}

func TestSalaryForms(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"4.5 LPA", 4.5, true},
		{"650K", 6.5, true},
		{"12 lakhs", 12.0, true},
		{"2 lacs", 2.0, true},
		{"8,50,000", 8.5, true},
		{"1.5", 1.5, true},    // bare, lakh range
		{"250000", 2.5, true}, // bare, rupee magnitude
		{"1.2", 0, false},     // below the bare-number floor
		{"99,000", 0, false},  // grouped but under one lakh
		{"20000000", 0, false},
		{"negotiable", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Salary(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNoticePeriod(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"immediate", 0, true},
		{"Immediately available", 0, true},
		{"0 days", 0, true},
		{"15 days", 15, true},
		{"2 weeks", 14, true},
		{"3 months", 90, true},
		{"30", 30, true},
		{"400", 0, false},          // beyond a year
		{"on notice", 0, false},    // ambiguous, never guessed
		{"serving notice", 0, false},
		{"asap", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NoticePeriod(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"fresher", 0, true},
		{"0 exp", 0, true},
		{"graduate", 0, true},
		{"5 yrs", 5, true},
		{"3.5 years", 3.5, true},
		{"7+ yrs", 7, true},
		{"10y", 10, true},
		{"18 months", 1.5, true},
		{"75 years", 0, false}, // out of range
		{"5", 0, false},        // bare numbers are not experience
		{"lots", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Experience(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	got, ok := Email("  Ravi.Kumar@Example.COM ")
	require.True(t, ok)
	assert.Equal(t, "ravi.kumar@example.com", got)

	for _, raw := range []string{"not-an-email", "a@b", "@x.com", ""} {
		_, ok := Email(raw)
		assert.False(t, ok, "input %q", raw)
	}
}
