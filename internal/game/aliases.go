package game

// aliases maps common nicknames, abbreviations, and short forms to the
// canonical dataset spelling (lowercased). Keys are compared against input
// that has already been lowercased and stripped of punctuation, so keys must
// not contain punctuation. Values may contain punctuation (e.g. "st. louis");
// Normalize re-strips after expansion. Alias expansion runs before the
// standalone word "city" is removed, so values are written in full
// dataset form ("new york city", not "new york").
var aliases = map[string]string{
	// New York
	"nyc":      "new york city",
	"new york": "new york city",

	// Los Angeles
	"la":  "los angeles",
	"lax": "los angeles",

	// Chicago
	"chi": "chicago",

	// Houston
	"hou": "houston",
	"htx": "houston",

	// Phoenix
	"phx": "phoenix",

	// Philadelphia
	"philly": "philadelphia",

	// San Diego
	"sd":       "san diego",
	"sandiego": "san diego",

	// Dallas
	"dal": "dallas",

	// San Jose
	"sj": "san jose",

	// Austin
	"atx": "austin",

	// Jacksonville
	"jax": "jacksonville",

	// Fort Worth
	"ft worth": "fort worth",

	// Indianapolis
	"indy": "indianapolis",

	// Charlotte
	"clt": "charlotte",

	// San Francisco
	"sf":       "san francisco",
	"san fran": "san francisco",

	// Seattle
	"sea": "seattle",

	// Denver
	"den": "denver",

	// Washington DC
	"dc":            "washington",
	"washington dc": "washington",

	// Nashville
	"nash": "nashville",

	// Oklahoma City
	"okc": "oklahoma city",

	// Boston
	"bos": "boston",

	// Portland
	"pdx": "portland",

	// Las Vegas
	"vegas": "las vegas",

	// Detroit
	"det": "detroit",

	// Louisville
	"lou": "louisville",

	// Baltimore
	"bmore": "baltimore",

	// Milwaukee
	"mke": "milwaukee",

	// Albuquerque
	"abq": "albuquerque",

	// Sacramento
	"sac": "sacramento",

	// Kansas City
	"kc": "kansas city",

	// Atlanta
	"atl": "atlanta",

	// Omaha
	"oma": "omaha",

	// Colorado Springs
	"cos": "colorado springs",

	// Virginia Beach
	"va beach": "virginia beach",

	// Miami
	"mia": "miami",

	// Oakland
	"oak": "oakland",

	// Minneapolis / Saint Paul
	"mpls":    "minneapolis",
	"st paul": "saint paul",

	// New Orleans
	"nola": "new orleans",

	// St. Louis / Saint Louis
	"st louis":    "st. louis",
	"saint louis": "st. louis",

	// St. Petersburg
	"st petersburg": "st. petersburg",
}

// Aliases returns a copy of the nickname table, alias to canonical spelling.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
