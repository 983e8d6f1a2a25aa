package refdata

// currencyCodes is the set of recognized ISO 4217 currency codes.
var currencyCodes = map[string]struct{}{}

func init() {
	codes := []string{
		"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
		"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BRL",
		"BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF", "CHF", "CLP", "CNY",
		"COP", "CRC", "CUC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD",
		"EGP", "ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GGP", "GHS",
		"GIP", "GMD", "GNF", "GTQ", "GYD", "HKD", "HNL", "HRK", "HTG", "HUF",
		"IDR", "ILS", "IMP", "INR", "IQD", "IRR", "ISK", "JEP", "JMD", "JOD",
		"JPY", "KES", "KGS", "KHR", "KMF", "KPW", "KRW", "KWD", "KYD", "KZT",
		"LAK", "LBP", "LKR", "LRD", "LSL", "LYD", "MAD", "MDL", "MGA", "MKD",
		"MMK", "MNT", "MOP", "MRU", "MUR", "MVR", "MWK", "MXN", "MYR", "MZN",
		"NAD", "NGN", "NIO", "NOK", "NPR", "NZD", "OMR", "PAB", "PEN", "PGK",
		"PHP", "PKR", "PLN", "PYG", "QAR", "RON", "RSD", "RUB", "RWF", "SAR",
		"SBD", "SCR", "SDG", "SEK", "SGD", "SHP", "SLL", "SOS", "SPL", "SRD",
		"STN", "SVC", "SYP", "SZL", "THB", "TJS", "TMT", "TND", "TOP", "TRY",
		"TTD", "TVD", "TWD", "TZS", "UAH", "UGX", "USD", "UYU", "UZS", "VEF",
		"VND", "VUV", "WST", "XAF", "XCD", "XDR", "XOF", "XPF", "YER", "ZAR",
		"ZMW", "ZWD",
	}
	for _, c := range codes {
		currencyCodes[c] = struct{}{}
	}
}

// countryCurrencies maps country codes to the currency a buyer in that
// country normally transacts in. Countries without an entry fall back to USD.
var countryCurrencies = map[string]string{
	"AF": "AFN", "AX": "EUR", "AL": "ALL", "DZ": "DZD", "AD": "EUR",
	"AI": "XCD", "AG": "XCD", "AR": "EUR", "AM": "AMD", "AW": "AWG",
	"AU": "AUD", "AT": "EUR", "AZ": "AZN", "BS": "BSD", "BH": "EUR",
	"BD": "BDT", "BB": "BBD", "BY": "EUR", "BE": "EUR", "BZ": "BZD",
	"BM": "USD", "BT": "EUR", "BO": "BOB", "BA": "BAM", "BR": "EUR",
	"VG": "USD", "BN": "BND", "BG": "BGN", "KH": "KHR", "CA": "CAD",
	"BQ": "USD", "KY": "KYD", "CL": "EUR", "CN": "CNY", "CX": "AUD",
	"CC": "AUD", "CO": "EUR", "CK": "NZD", "CR": "CRC", "HR": "EUR",
	"CW": "ANG", "CY": "EUR", "CZ": "CZK", "DK": "DKK", "DM": "XCD",
	"DO": "DOP", "EC": "USD", "EG": "EGP", "SV": "USD", "EE": "EUR",
	"FK": "FKP", "FO": "DKK", "FJ": "FJD", "FI": "EUR", "FR": "EUR",
	"GF": "EUR", "PF": "XPF", "GE": "EUR", "DE": "EUR", "GI": "GBP",
	"GR": "EUR", "GL": "DKK", "GD": "XCD", "GP": "EUR", "GT": "GTQ",
	"GG": "GBP", "GY": "GYD", "HT": "EUR", "HN": "HNL", "HK": "HKD",
	"HU": "HUF", "IS": "ISK", "IN": "INR", "ID": "IDR", "IQ": "EUR",
	"IE": "EUR", "IM": "GBP", "IL": "ILS", "IT": "EUR", "JM": "JMD",
	"JP": "JPY", "JE": "EUR", "JO": "EUR", "KZ": "KZT", "KI": "EUR",
	"XK": "EUR", "KW": "EUR", "KG": "KGS", "LA": "LAK", "LV": "EUR",
	"LB": "LBP", "LI": "CHF", "LT": "EUR", "LU": "EUR", "MO": "MOP",
	"MY": "MYR", "MV": "MVR", "MT": "EUR", "MQ": "EUR", "MX": "EUR",
	"MD": "MDL", "MC": "EUR", "MN": "MNT", "ME": "EUR", "MS": "XCD",
	"MA": "MAD", "MM": "MMK", "NR": "AUD", "NP": "NPR", "NL": "EUR",
	"NC": "XPF", "NZ": "NZD", "NI": "NIO", "NU": "NZD", "NF": "AUD",
	"MK": "MKD", "NO": "EUR", "OM": "EUR", "PK": "PKR", "PS": "ILS",
	"PA": "USD", "PG": "PGK", "PY": "PYG", "PE": "PEN", "PH": "PHP",
	"PN": "NZD", "PL": "PLN", "PT": "EUR", "QA": "QAR", "RO": "RON",
	"WS": "WST", "SM": "EUR", "SA": "SAR", "RS": "RSD", "SG": "SGD",
	"SX": "ANG", "SK": "EUR", "SI": "EUR", "SB": "SBD", "GS": "GBP",
	"KR": "KRW", "ES": "EUR", "LK": "LKR", "BL": "EUR", "KN": "XCD",
	"LC": "XCD", "MF": "EUR", "PM": "EUR", "VC": "XCD", "SR": "EUR",
	"SJ": "EUR", "SE": "SEK", "CH": "CHF", "TW": "TWD", "TJ": "TJS",
	"TH": "THB", "TL": "USD", "TK": "NZD", "TO": "TOP", "TT": "TTD",
	"TN": "EUR", "TR": "EUR", "TM": "EUR", "TC": "USD", "TV": "AUD",
	"UM": "USD", "UA": "UAH", "AE": "AED", "GB": "GBP", "US": "USD",
	"UY": "UYU", "UZ": "UZS", "VU": "VUV", "VA": "EUR", "VE": "USD",
	"VN": "VND", "WF": "XPF", "YE": "YER",
}
