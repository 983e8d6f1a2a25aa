// Package refdata provides static reference lookups for countries,
// currencies, and per-country defaults. All functions are pure and total:
// malformed input yields false or an empty result, never a panic.
package refdata

import "strings"

// IsValidCountry reports whether input is a known 2-letter country code or a
// full country name, case-insensitively.
func IsValidCountry(input string) bool {
	return NormalizeCountry(input) != ""
}

// NormalizeCountry returns the canonical upper-case 2-letter code for a
// country code or name, or "" when the input is unrecognized.
func NormalizeCountry(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	code := strings.ToUpper(trimmed)
	if _, ok := countryNames[code]; ok {
		return code
	}
	if code, ok := countryCodesByName[strings.ToLower(trimmed)]; ok {
		return code
	}
	return ""
}

// CountryName returns the English name for a country code, or "" if unknown.
func CountryName(code string) string {
	return countryNames[strings.ToUpper(strings.TrimSpace(code))]
}

// CountryCodes returns all known country codes. The slice is a copy.
func CountryCodes() []string {
	codes := make([]string, 0, len(countryNames))
	for code := range countryNames {
		codes = append(codes, code)
	}
	return codes
}

// Countries returns the code-to-name map of all known countries. The map is
// a copy.
func Countries() map[string]string {
	countries := make(map[string]string, len(countryNames))
	for code, name := range countryNames {
		countries[code] = name
	}
	return countries
}

// IsValidCurrency reports whether input is a recognized 3-letter ISO 4217
// currency code, case-insensitively.
func IsValidCurrency(input string) bool {
	return NormalizeCurrency(input) != ""
}

// NormalizeCurrency returns the canonical upper-case code for a recognized
// currency, or "" when the input is unrecognized.
func NormalizeCurrency(input string) string {
	code := strings.ToUpper(strings.TrimSpace(input))
	if _, ok := currencyCodes[code]; ok {
		return code
	}
	return ""
}

// ExpectedCurrencyFor returns the currency a buyer in the given country
// normally transacts in, defaulting to USD when no mapping exists.
func ExpectedCurrencyFor(countryCode string) string {
	if c, ok := countryCurrencies[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return c
	}
	return "USD"
}

// DefaultPostalCodeFor returns a representative postal code for the given
// country, or "" when none is configured. An empty result is not an error:
// some countries have no postal system.
func DefaultPostalCodeFor(countryCode string) string {
	return defaultPostalCodes[strings.ToUpper(strings.TrimSpace(countryCode))]
}
