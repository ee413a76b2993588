// Package vehicle holds the string heuristics used to read vehicle facts
// out of marketplace listing titles and free-text search queries. The
// heuristics are intentionally simple substring and token checks; ambiguous
// titles can and do misclassify, and callers treat that as acceptable
// marketplace noise rather than something to correct here.
package vehicle

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible model-year window for title extraction.
const (
	MinYear = 1900
	MaxYear = 2030
)

// KnownMakes is the recognition list for make tokens in queries and titles,
// checked in order with first match winning.
var KnownMakes = []string{
	"MERCEDES", "BENZ", "MERCEDES-BENZ", "HONDA", "TOYOTA", "FORD",
	"BMW", "AUDI", "LEXUS", "ACURA", "INFINITI", "NISSAN", "CHEVROLET",
	"CHEVY", "DODGE", "JEEP", "CHRYSLER", "GMC", "CADILLAC", "LINCOLN",
}

// partsKeywords flag accessory and parts listings. Matched as substrings of
// the uppercased title, so "PART" also catches "PARTS".
var partsKeywords = []string{
	"PART", "SHELL", "PANEL", "DOOR", "BUMPER", "FENDER", "HOOD", "TRUNK",
	"SEAT", "WHEEL", "RIM", "HEADLIGHT", "TAILLIGHT", "OEM", "DRIVER REAR",
}

var (
	tokenPattern = regexp.MustCompile(`[A-Z0-9]+`)
	yearPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	milesPattern = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|\d+)\s*(k)?\s*(?:miles|mile|mi)\b`)
)

// ExtractKeywords pulls a candidate make and model out of a search query.
// The make is the first KnownMakes entry appearing in the uppercased query.
// The model is the longest remaining A-Z0-9 token that is not a four-digit
// number (those read as years). Either result may be empty.
func ExtractKeywords(query string) (makeName, model string) {
	queryUpper := strings.ToUpper(query)

	for _, m := range KnownMakes {
		if strings.Contains(queryUpper, m) {
			makeName = m
			break
		}
	}

	remainder := queryUpper
	if makeName != "" {
		remainder = strings.ReplaceAll(remainder, makeName, "")
		remainder = strings.TrimSpace(strings.ReplaceAll(remainder, "-", ""))
	}

	for _, tok := range tokenPattern.FindAllString(remainder, -1) {
		if isFourDigitNumber(tok) {
			continue
		}
		if len(tok) > len(model) {
			model = tok
		}
	}
	return makeName, model
}

// MakeVariants returns the uppercased title tokens that count as a match for
// a make. The Mercedes family is the one aliased brand: any of its spellings
// matches either MERCEDES or BENZ.
func MakeVariants(makeName string) []string {
	u := strings.ToUpper(makeName)
	switch u {
	case "MERCEDES", "MERCEDES-BENZ", "BENZ":
		return []string{"MERCEDES", "BENZ"}
	}
	return []string{u}
}

// ModelVariants returns the uppercased spellings that count as a match for a
// model, covering space and dash permutations (CLS63, CLS 63, CLS-63).
func ModelVariants(model string) []string {
	u := strings.ToUpper(model)
	return []string{
		u,
		strings.ReplaceAll(u, " ", ""),
		strings.ReplaceAll(u, "-", ""),
		strings.ReplaceAll(u, " ", "-"),
		strings.ReplaceAll(u, "-", " "),
	}
}

// IsPartsListing reports whether a title looks like a parts or accessory
// listing rather than a whole vehicle.
func IsPartsListing(title string) bool {
	titleUpper := strings.ToUpper(title)
	for _, kw := range partsKeywords {
		if strings.Contains(titleUpper, kw) {
			return true
		}
	}
	return false
}

// YearFromTitle extracts the first four-digit token in the plausible
// model-year window from a listing title.
func YearFromTitle(title string) (int, bool) {
	for _, tok := range yearPattern.FindAllString(title, -1) {
		year, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if year >= MinYear && year <= MaxYear {
			return year, true
		}
	}
	return 0, false
}

// MilesFromTitle extracts a mileage figure from a listing title, accepting
// forms like "89k miles", "120,345 miles", and "89K mi".
func MilesFromTitle(title string) (int, bool) {
	m := milesPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	miles, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		miles *= 1000
	}
	return miles, true
}

func isFourDigitNumber(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
