// Package game implements the Citidle core: name normalization, indexed
// city lookup, deterministic daily target selection, distance scoring, and
// session orchestration.
//
// # Normalized keys
//
// Every lookup goes through [Normalize], which lowercases, strips
// punctuation, expands a fixed alias table (nicknames like "nyc", "philly",
// "okc"), and drops the standalone word "city". Two spellings of the same
// city produce the same key:
//
//	Normalize("St. Louis") == Normalize("Saint Louis") == "st louis"
//	Normalize("Oklahoma City") == Normalize("Oklahoma") == "oklahoma"
//
// The index also registers "<name>, <state>" and "<name> <state>" keys so
// state-qualified guesses ("portland, or") resolve unambiguously between
// same-named cities.
//
// # Daily selection
//
// The target city for a date is SHA-256(ISO date) interpreted as a big
// unsigned integer, modulo the pool size, indexing a sorted deduplicated
// pool. Dates are taken in a fixed UTC-6 zone year-round (no daylight
// saving), so the daily reset boundary is identical everywhere and the
// selection for a date never changes across runs of the same dataset.
//
// # Scoring
//
// Guesses are scored by haversine great-circle distance in miles and
// bucketed into proximity tiers (correct, very_hot, hot, warm, cool, cold,
// very_cold) with inclusive upper bounds at 0, 50, 150, 300, 600, and 1000
// miles.
//
// Fuzzy or edit-distance matching of misspelled guesses is deliberately not
// supported; only exact normalized matches and the alias table resolve.
package game
