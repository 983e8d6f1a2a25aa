package refdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/shipquote/pkg/refdata"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"upper code", "US", "US"},
		{"lower code", "us", "US"},
		{"padded code", "  ca ", "CA"},
		{"full name", "United States", "US"},
		{"full name lower", "united kingdom", "GB"},
		{"full name mixed", "GeRmAnY", "DE"},
		{"unknown code", "XX", ""},
		{"unknown name", "Atlantis", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refdata.NormalizeCountry(tt.input))
		})
	}
}

func TestNormalizeCountry_Idempotent(t *testing.T) {
	inputs := []string{"US", "ca", "United States", "france", "Japan", "gb"}
	for _, in := range inputs {
		once := refdata.NormalizeCountry(in)
		assert.Equal(t, once, refdata.NormalizeCountry(once), "input %q", in)
	}
}

func TestIsValidCountry(t *testing.T) {
	assert.True(t, refdata.IsValidCountry("US"))
	assert.True(t, refdata.IsValidCountry("india"))
	assert.True(t, refdata.IsValidCountry("Côte d’Ivoire"))
	assert.False(t, refdata.IsValidCountry("ZZ"))
	assert.False(t, refdata.IsValidCountry(""))
	assert.False(t, refdata.IsValidCountry("Mars"))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, refdata.IsValidCurrency("USD"))
	assert.True(t, refdata.IsValidCurrency("eur"))
	assert.True(t, refdata.IsValidCurrency(" jpy "))
	assert.False(t, refdata.IsValidCurrency("US"))
	assert.False(t, refdata.IsValidCurrency("DOLLARS"))
	assert.False(t, refdata.IsValidCurrency(""))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "USD", refdata.NormalizeCurrency("USD"))
	assert.Equal(t, "EUR", refdata.NormalizeCurrency("eur"))
	assert.Equal(t, "JPY", refdata.NormalizeCurrency(" jpy "))
	assert.Equal(t, "", refdata.NormalizeCurrency("DOLLARS"))
	assert.Equal(t, "", refdata.NormalizeCurrency(""))
}

func TestExpectedCurrencyFor(t *testing.T) {
	assert.Equal(t, "USD", refdata.ExpectedCurrencyFor("US"))
	assert.Equal(t, "CAD", refdata.ExpectedCurrencyFor("CA"))
	assert.Equal(t, "GBP", refdata.ExpectedCurrencyFor("GB"))
	assert.Equal(t, "EUR", refdata.ExpectedCurrencyFor("DE"))
	// Unmapped countries fall back to USD.
	assert.Equal(t, "USD", refdata.ExpectedCurrencyFor("ZW"))
	assert.Equal(t, "USD", refdata.ExpectedCurrencyFor(""))
}

func TestDefaultPostalCodeFor(t *testing.T) {
	assert.Equal(t, "10001", refdata.DefaultPostalCodeFor("US"))
	assert.Equal(t, "M5V 3L9", refdata.DefaultPostalCodeFor("ca"))
	assert.Equal(t, "SW1A 1AA", refdata.DefaultPostalCodeFor("GB"))
	// No default configured is a valid empty result.
	assert.Equal(t, "", refdata.DefaultPostalCodeFor("XX"))
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Canada", refdata.CountryName("CA"))
	assert.Equal(t, "", refdata.CountryName("XX"))
}

func TestCountryCodes(t *testing.T) {
	codes := refdata.CountryCodes()
	assert.NotEmpty(t, codes)
	assert.Contains(t, codes, "US")
	assert.Contains(t, codes, "JP")
}
