package rates

import "github.com/shopspring/decimal"

// fallbackRates is the bundled USD-based rate table served when the provider
// has never answered successfully. Multipliers are a point-in-time snapshot.
var fallbackRates = func() map[string]decimal.Decimal {
	raw := map[string]string{
		"USD": "1",
		"AED": "3.6725", "ARS": "1189.83", "AUD": "1.5306", "BDT": "122.2756",
		"BGN": "1.6705", "BRL": "5.4812", "CAD": "1.3675", "CHF": "0.7997",
		"CLP": "933.0793", "CNY": "7.1694", "COP": "4073.4915", "CZK": "21.1252",
		"DKK": "6.3701", "EGP": "49.8952", "EUR": "0.8541", "GBP": "0.7295",
		"HKD": "7.8501", "HUF": "340.6258", "IDR": "16239.2188", "ILS": "3.388",
		"INR": "85.5582", "ISK": "121.2267", "JPY": "144.6523", "KRW": "1358.9055",
		"KZT": "519.8525", "MAD": "9.0314", "MXN": "18.8457", "MYR": "4.2287",
		"NGN": "1540.3785", "NOK": "10.0803", "NZD": "1.6513", "PEN": "3.5607",
		"PHP": "56.581", "PKR": "283.9276", "PLN": "3.6192", "QAR": "3.64",
		"RON": "4.3366", "RSD": "100.0416", "RUB": "78.5468", "SAR": "3.75",
		"SEK": "9.4871", "SGD": "1.276", "THB": "32.5945", "TRY": "39.8892",
		"TWD": "28.9352", "UAH": "41.6642", "UYU": "40.3528", "VND": "26095.3148",
		"XCD": "2.7", "ZAR": "17.8207",
	}
	m := make(map[string]decimal.Decimal, len(raw))
	for code, v := range raw {
		m[code] = decimal.RequireFromString(v)
	}
	return m
}()

// fallbackTable builds the bundled table re-based to the given currency so
// that rates[base] == 1 holds. An unknown base is pinned at USD parity.
func fallbackTable(base string) map[string]decimal.Decimal {
	baseRate, ok := fallbackRates[base]
	if !ok || baseRate.IsZero() {
		baseRate = decimal.NewFromInt(1)
	}

	rebased := make(map[string]decimal.Decimal, len(fallbackRates)+1)
	for code, r := range fallbackRates {
		rebased[code] = r.Div(baseRate)
	}
	rebased[base] = decimal.NewFromInt(1)
	return rebased
}
