// services/curated.go
package services

import (
	"sort"
	"strings"

	"github.com/holidayengine/resolver/models"
	"github.com/holidayengine/resolver/utils"
)

// curatedAirports is the hand-maintained alias table: normalized city
// names, country-specific spellings, and common misspellings mapped to
// the airport code actually served by flights. It exists to beat blind
// nearest-airport search where that would pick a technically-nearer but
// practically-wrong field. Keys MUST be in normalized form (see
// utils.Normalize), so umlaut spellings are stored folded ("muenchen",
// never "münchen").
//
// The table is a union of previously divergent lists. Entries needing
// manual review are marked; do not silently reconcile them.
var curatedAirports = map[string]string{
	// Austria
	"wien":       "VIE",
	"vienna":     "VIE",
	"graz":       "GRZ",
	"salzburg":   "SZG",
	"linz":       "LNZ",
	"innsbruck":  "INN",
	"klagenfurt": "KLU",

	// Germany
	"muenchen":    "MUC",
	"munich":      "MUC",
	"berlin":      "BER",
	"hamburg":     "HAM",
	"duesseldorf": "DUS",
	"frankfurt":   "FRA",
	"stuttgart":   "STR",
	"koeln":       "CGN",
	"cologne":     "CGN",
	"hannover":    "HAJ",
	"nuernberg":   "NUE",
	"nuremberg":   "NUE",
	"leipzig":     "LEJ",
	"dresden":     "DRS",
	"bremen":      "BRE",

	// Western & Southern Europe
	"barcelona":  "BCN",
	"rom":        "FCO",
	"rome":       "FCO",
	"paris":      "CDG",
	"london":     "LHR",
	"amsterdam":  "AMS",
	"madrid":     "MAD",
	"lisboa":     "LIS",
	"lisbon":     "LIS",
	"porto":      "OPO",
	"seville":    "SVQ",
	"sevilla":    "SVQ",
	"valencia":   "VLC",
	"bilbao":     "BIO",
	"milano":     "MXP",
	"milan":      "MXP",
	"mailand":    "MXP",
	"venedig":    "VCE",
	"venice":     "VCE",
	"florenz":    "FLR",
	"florence":   "FLR",
	"naples":     "NAP",
	"neapel":     "NAP",
	"turin":      "TRN",
	"bologna":    "BLQ",
	"catania":    "CTA",
	"palermo":    "PMO",
	"bari":       "BRI",
	"genoa":      "GOA",
	"genua":      "GOA",
	"nice":       "NCE",
	"nizza":      "NCE",
	"lyon":       "LYS",
	"marseille":  "MRS",
	"toulouse":   "TLS",
	"bordeaux":   "BOD",
	"strasbourg": "SXB",
	"brussels":   "BRU",
	"bruessel":   "BRU",
	"antwerp":    "ANR",
	"antwerpen":  "ANR",
	"geneva":     "GVA",
	"genf":       "GVA",
	"basel":      "BSL",
	"bern":       "BRN",
	// ZUR is the metro-area code; ZRH is the airport itself. Kept as-is
	// pending review since downstream search accepts the metro code.
	"zurich":     "ZUR",
	"zuerich":    "ZUR",
	"edinburgh":  "EDI",
	"glasgow":    "GLA",
	"manchester": "MAN",
	"birmingham": "BHX",
	"dublin":     "DUB",
	"cork":       "ORK",
	"reykjavik":  "KEF",

	// Nordics & Eastern Europe
	"stockholm":        "ARN",
	"oslo":             "OSL",
	"kopenhagen":       "CPH",
	"copenhagen":       "CPH",
	"helsinki":         "HEL",
	"prag":             "PRG",
	"prague":           "PRG",
	"budapest":         "BUD",
	"warsaw":           "WAW",
	"warschau":         "WAW",
	"krakow":           "KRK",
	"krakau":           "KRK",
	"gdansk":           "GDN",
	"danzig":           "GDN",
	"bucharest":        "OTP",
	"bukarest":         "OTP",
	"belgrade":         "BEG",
	"belgrad":          "BEG",
	"zagreb":           "ZAG",
	"split":            "SPU",
	"dubrovnik":        "DBV",
	"ljubljana":        "LJU",
	"bratislava":       "BTS",
	"riga":             "RIX",
	"tallinn":          "TLL",
	"vilnius":          "VNO",
	"moscow":           "SVO",
	"moskau":           "SVO",
	"st petersburg":    "LED",
	"sankt petersburg": "LED",
	"kiev":             "KBP",
	"kiew":             "KBP",
	"kyiv":             "KBP",
	"minsk":            "MSQ",
	"sofia":            "SOF",
	"thessaloniki":     "SKG",
	"istanbul":         "IST",

	// Mediterranean islands. The resort entries matter: geocoding a
	// resort town can land closer to a field with no scheduled service
	// than to the island's real airport.
	"mallorca":       "PMI",
	"palma":          "PMI",
	"port de soller": "PMI",
	"alcudia":        "PMI",
	"magaluf":        "PMI",
	"cala millor":    "PMI",
	"ibiza":          "IBZ",
	"canary islands": "LPA",
	"las palmas":     "LPA",
	"tenerife":       "TFS",
	"cyprus":         "LCA",
	"nicosia":        "LCA",
	"larnaca":        "LCA",
	"crete":          "HER",
	"kreta":          "HER",
	"heraklion":      "HER",
	"santorini":      "JTR",
	"thira":          "JTR",
	"mykonos":        "JMK",
	"rhodes":         "RHO",
	"rhodos":         "RHO",
	"corfu":          "CFU",
	"korfu":          "CFU",
	"athen":          "ATH",
	"athens":         "ATH",

	// North America
	"new york":       "JFK",
	"nyc":            "JFK",
	"ny":             "JFK",
	"los angeles":    "LAX",
	"la":             "LAX",
	"chicago":        "ORD",
	"miami":          "MIA",
	"san francisco":  "SFO",
	"sf":             "SFO",
	"las vegas":      "LAS",
	"vegas":          "LAS",
	"seattle":        "SEA",
	"boston":         "BOS",
	"washington":     "DCA",
	"dc":             "DCA",
	"philadelphia":   "PHL",
	"atlanta":        "ATL",
	"denver":         "DEN",
	"phoenix":        "PHX",
	"dallas":         "DFW",
	"houston":        "IAH",
	"orlando":        "MCO",
	"tampa":          "TPA",
	"detroit":        "DTW",
	"minneapolis":    "MSP",
	"cleveland":      "CLE",
	"pittsburgh":     "PIT",
	"portland":       "PDX",
	"san diego":      "SAN",
	"salt lake city": "SLC",
	"toronto":        "YYZ",
	"vancouver":      "YVR",
	"montreal":       "YUL",
	"calgary":        "YYC",

	// Asia
	"tokyo":        "NRT",
	"osaka":        "KIX",
	"kyoto":        "KIX",
	"nagoya":       "NGO",
	"sapporo":      "CTS",
	"seoul":        "ICN",
	"busan":        "PUS",
	"beijing":      "PEK",
	"peking":       "PEK",
	"shanghai":     "PVG",
	"guangzhou":    "CAN",
	"shenzhen":     "SZX",
	"hong kong":    "HKG",
	"hongkong":     "HKG",
	"taipei":       "TPE",
	"manila":       "MNL",
	"bangkok":      "BKK",
	"phuket":       "HKT",
	"singapore":    "SIN",
	"singapur":     "SIN",
	"kuala lumpur": "KUL",
	"jakarta":      "CGK",
	"bali":         "DPS",
	"denpasar":     "DPS",
	"ho chi minh":  "SGN",
	"saigon":       "SGN",
	"hanoi":        "HAN",
	"mumbai":       "BOM",
	"bombay":       "BOM",
	"delhi":        "DEL",
	"new delhi":    "DEL",
	"bangalore":    "BLR",
	"chennai":      "MAA",
	"madras":       "MAA",
	"kolkata":      "CCU",
	"calcutta":     "CCU",
	"hyderabad":    "HYD",
	"goa":          "GOI",
	"cochin":       "COK",
	"kochi":        "COK",
	"colombo":      "CMB",
	"kathmandu":    "KTM",
	"dhaka":        "DAC",
	"islamabad":    "ISB",
	"karachi":      "KHI",
	"lahore":       "LHE",
	"kabul":        "KBL",
	"tashkent":     "TAS",
	"almaty":       "ALA",
	"astana":       "NUR",
	"nursultan":    "NUR",
	"tbilisi":      "TBS",
	"yerevan":      "EVN",
	"baku":         "GYD",
	"tehran":       "IKA",
	"teheran":      "IKA",

	// Middle East & Africa
	"dubai":         "DXB",
	"abu dhabi":     "AUH",
	"doha":          "DOH",
	"kuwait":        "KWI",
	"riyadh":        "RUH",
	"jeddah":        "JED",
	"medina":        "MED",
	"muscat":        "MCT",
	"beirut":        "BEY",
	"damascus":      "DAM",
	"amman":         "AMM",
	"tel aviv":      "TLV",
	"jerusalem":     "JRS",
	"cairo":         "CAI",
	"kairo":         "CAI",
	"casablanca":    "CMN",
	"marrakech":     "RAK",
	"marrakesh":     "RAK",
	"tunis":         "TUN",
	"algiers":       "ALG",
	"algier":        "ALG",
	"tripoli":       "TIP",
	"addis ababa":   "ADD",
	"nairobi":       "NBO",
	"dar es salaam": "DAR",
	"cape town":     "CPT",
	"kapstadt":      "CPT",
	"johannesburg":  "JNB",
	"durban":        "DUR",

	// Oceania
	"sydney":       "SYD",
	"melbourne":    "MEL",
	"brisbane":     "BNE",
	"perth":        "PER",
	"adelaide":     "ADL",
	"darwin":       "DRW",
	"auckland":     "AKL",
	"wellington":   "WLG",
	"christchurch": "CHC",
	"queenstown":   "ZQN",
	"suva":         "SUV",
	"nadi":         "NAN",
	"port moresby": "POM",
	"noumea":       "NOU",
	"papeete":      "PPT",
	"tahiti":       "PPT",

	// Shorthand aliases kept for users who type partial city names.
	"lon": "LHR",
	"par": "CDG",
}

// LookupCurated resolves a normalized key against the alias table.
func LookupCurated(normalizedKey string) (string, bool) {
	code, ok := curatedAirports[normalizedKey]
	return code, ok
}

// CuratedSize is the number of curated aliases, for diagnostics.
func CuratedSize() int {
	return len(curatedAirports)
}

// displayParticles stay lower-case inside a multiword display name
// ("Port de Soller", "Dar es Salaam"), never at the start.
var displayParticles = map[string]bool{
	"da":  true,
	"de":  true,
	"del": true,
	"di":  true,
	"es":  true,
}

// curatedDisplayName renders a normalized curated key for display.
func curatedDisplayName(key string) string {
	words := strings.Fields(key)
	for i, word := range words {
		if i > 0 && displayParticles[word] {
			continue
		}
		words[i] = utils.TitleCase(word)
	}
	return strings.Join(words, " ")
}

// CuratedCityNames returns the curated keys as sorted display names for
// the suggestion engine. Short alias keys ("ny", "lon", "dc") make poor
// display suggestions and are skipped.
func CuratedCityNames() []string {
	names := make([]string, 0, len(curatedAirports))
	for key := range curatedAirports {
		if len(key) < 4 {
			continue
		}
		names = append(names, curatedDisplayName(key))
	}
	sort.Strings(names)
	return names
}

// PopularDestinations is the curated shortlist served to frontend
// autocomplete.
func PopularDestinations() []models.Destination {
	return []models.Destination{
		{City: "Wien", Code: "VIE", Country: "Austria"},
		{City: "Graz", Code: "GRZ", Country: "Austria"},
		{City: "Salzburg", Code: "SZG", Country: "Austria"},
		{City: "München", Code: "MUC", Country: "Germany"},
		{City: "Berlin", Code: "BER", Country: "Germany"},
		{City: "Barcelona", Code: "BCN", Country: "Spain"},
		{City: "Rom", Code: "FCO", Country: "Italy"},
		{City: "Paris", Code: "CDG", Country: "France"},
		{City: "London", Code: "LHR", Country: "United Kingdom"},
		{City: "Amsterdam", Code: "AMS", Country: "Netherlands"},
		{City: "Madrid", Code: "MAD", Country: "Spain"},
		{City: "New York", Code: "JFK", Country: "United States"},
		{City: "Tokyo", Code: "NRT", Country: "Japan"},
		{City: "Dubai", Code: "DXB", Country: "United Arab Emirates"},
		{City: "Ibiza", Code: "IBZ", Country: "Spain"},
		{City: "Nice", Code: "NCE", Country: "France"},
		{City: "Santorini", Code: "JTR", Country: "Greece"},
		{City: "Las Vegas", Code: "LAS", Country: "United States"},
		{City: "San Francisco", Code: "SFO", Country: "United States"},
		{City: "Miami", Code: "MIA", Country: "United States"},
		{City: "Bangkok", Code: "BKK", Country: "Thailand"},
		{City: "Singapore", Code: "SIN", Country: "Singapore"},
		{City: "Hong Kong", Code: "HKG", Country: "Hong Kong"},
		{City: "Sydney", Code: "SYD", Country: "Australia"},
		{City: "Bali", Code: "DPS", Country: "Indonesia"},
	}
}
