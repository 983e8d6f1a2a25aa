package refdata

// defaultPostalCodes maps country codes to a capital-city postal code used
// when the caller supplies none and the upstream estimate would otherwise be
// imprecise. Countries without a formal postal system carry a placeholder.
var defaultPostalCodes = map[string]string{
	"AF": "1001", "AL": "1001", "DZ": "16000", "AS": "96799", "AD": "AD500",
	"AO": "1000", "AI": "AI-2640", "AQ": "0001", "AG": "00000", "AR": "C1000",
	"AM": "0010", "AW": "00000", "AU": "2000", "AT": "1010", "AZ": "1000",
	"BS": "N-14162", "BH": "199", "BD": "1000", "BB": "BB11000", "BY": "220030",
	"BE": "1000", "BZ": "00000", "BJ": "229", "BM": "HM 12", "BT": "11001",
	"BO": "0101", "BA": "71000", "BW": "00000", "BR": "01000-000", "IO": "BBND 1ZZ",
	"BN": "BS8710", "BG": "1000", "BF": "00000", "BI": "0000", "CV": "7600",
	"KH": "12200", "CM": "237", "CA": "M5V 3L9", "KY": "KY1-1001", "CF": "00000",
	"TD": "235", "CL": "8320000", "CN": "100000", "CO": "110111", "KM": "00000",
	"CD": "243", "CG": "00000", "CR": "10101", "CI": "225", "HR": "10000",
	"CU": "10100", "CY": "1010", "CZ": "11000", "DK": "1000", "DJ": "99999",
	"DM": "00152", "DO": "10101", "EC": "170150", "EG": "11511", "SV": "01101",
	"GQ": "00000", "ER": "00000", "EE": "10111", "SZ": "H100", "ET": "1000",
	"FJ": "00000", "FI": "00100", "FR": "75001", "GA": "00000", "GM": "00000",
	"GE": "0105", "DE": "10115", "GH": "GA100", "GR": "10557", "GL": "3900",
	"GD": "00000", "GU": "96910", "GT": "01001", "GN": "0000", "GW": "1000",
	"GY": "592", "HT": "HT6110", "HN": "11101", "HU": "1051", "IS": "101",
	"IN": "110001", "ID": "10110", "IR": "11369", "IQ": "10001", "IE": "D01",
	"IL": "91999", "IT": "00100", "JM": "JMACE13", "JP": "100-0001", "JO": "11118",
	"KZ": "010000", "KE": "00100", "KI": "00000", "KP": "999999", "KR": "04524",
	"KW": "13001", "KG": "720001", "LA": "01000", "LV": "LV-1050", "LB": "1107",
	"LS": "100", "LR": "1000", "LY": "218", "LI": "9490", "LT": "01100",
	"LU": "1111", "MG": "101", "MW": "1000", "MY": "50000", "MV": "20026",
	"ML": "1000", "MT": "VLT 1111", "MH": "96960", "MR": "00000", "MU": "742CU001",
	"MX": "01000", "FM": "96941", "MD": "2012", "MC": "98000", "MN": "15160",
	"ME": "81000", "MA": "10000", "MZ": "1100", "MM": "11181", "NA": "10001",
	"NR": "00000", "NP": "44600", "NL": "1011", "NZ": "6011", "NI": "11001",
	"NE": "8000", "NG": "100001", "MK": "1000", "NO": "0010", "OM": "100",
	"PK": "44000", "PW": "96940", "PA": "0801", "PG": "121", "PY": "1209",
	"PE": "15001", "PH": "1000", "PL": "00-001", "PT": "1100-000", "QA": "00000",
	"RO": "010011", "RU": "101000", "RW": "00000", "KN": "00000", "LC": "00000",
	"VC": "VC0100", "WS": "00000", "SM": "47890", "ST": "1000", "SA": "11564",
	"SN": "10000", "RS": "11000", "SC": "00000", "SL": "00000", "SG": "018989",
	"SK": "811 01", "SI": "1000", "SB": "00000", "SO": "252", "ZA": "0001",
	"SS": "21100", "ES": "28001", "LK": "00100", "SD": "11111", "SR": "00000",
	"SE": "111 20", "CH": "3000", "SY": "1000", "TW": "100", "TJ": "734000",
	"TZ": "11101", "TH": "10330", "TL": "1000", "TG": "00000", "TO": "0000",
	"TT": "00000", "TN": "1000", "TR": "06000", "TM": "744000", "TV": "00000",
	"UG": "256", "UA": "01001", "AE": "00000", "GB": "SW1A 1AA", "US": "10001",
	"UY": "11000", "UZ": "100000", "VU": "00000", "VE": "1010", "VN": "100000",
	"YE": "10001", "ZM": "10101", "ZW": "00000",
}
