package lexicon

import (
	"regexp"
	"strings"
)

// PatternGroup selects one of the compiled pattern tables.
type PatternGroup int

const (
	// PatternMeasurement matches a quantity + unit expression anywhere.
	PatternMeasurement PatternGroup = iota
	// PatternLeadingMeasurement matches text that opens with a quantity.
	PatternLeadingMeasurement
	// PatternStepNumber matches a numbered-step prefix ("3. ...").
	PatternStepNumber
	// PatternOrphanStepNumber matches a step number stranded on its own.
	PatternOrphanStepNumber
	// PatternBullet matches a bullet/dash list marker prefix.
	PatternBullet
	// PatternArtifact matches known garbled-extraction phrasings.
	PatternArtifact
	// PatternPageReference matches page/chapter/section references.
	PatternPageReference
	// PatternRecipeMetadata matches servings/yield/time/difficulty/dietary lines.
	PatternRecipeMetadata
	// PatternBareMetadata matches text that is exactly a metadata phrase.
	PatternBareMetadata
)

// unitAlternatives is the unit vocabulary shared by the measurement patterns.
const unitAlternatives = `cups?|c\.|tablespoons?|tbsps?\.?|tbs\.?|teaspoons?|tsps?\.?|` +
	`pounds?|lbs?\.?|ounces?|oz\.?|grams?|kilograms?|kg|milliliters?|ml|liters?|` +
	`quarts?|qts?\.?|pints?|gallons?|cloves?|slices?|pinch(?:es)?|dash(?:es)?|` +
	`sticks?|cans?|packages?|pkgs?\.?|bunch(?:es)?|sprigs?|stalks?|heads?|inch(?:es)?`

// unicodeFractions covers the fraction glyphs PDF extraction emits.
const unicodeFractions = `¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞`

var measurementPatterns = []*regexp.Regexp{
	// "2 cups", "1.5 lbs", "2 1/2 tablespoons"
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?(?:\s+\d+/\d+)?\s*(?:` + unitAlternatives + `)\b`),
	// "1/2 cup"
	regexp.MustCompile(`(?i)\b\d+/\d+\s*(?:` + unitAlternatives + `)\b`),
	// "½ cup", "2½ cups"
	regexp.MustCompile(`(?i)(?:\d+\s*)?[` + unicodeFractions + `]\s*(?:` + unitAlternatives + `)\b`),
}

var leadingMeasurementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+(?:[\s./\d]*)[` + unicodeFractions + `]?\s*(?i:` + unitAlternatives + `)\b`),
	regexp.MustCompile(`^\s*[` + unicodeFractions + `]`),
	regexp.MustCompile(`^\s*\d+(?:\.\d+)?\s*[` + unicodeFractions + `]?\s+\S`),
}

var stepNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+[.)]\s+`),
}

var orphanStepNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+[.)]?\s*$`),
	regexp.MustCompile(`^\s*step\s+\d+\s*$`),
	regexp.MustCompile(`(?i)^\s*\d+[.)]\s*[[:alpha:]]{0,3}\s*$`),
}

var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[-•*–—·▪◦]\s*`),
}

var artifactTextPatterns = []*regexp.Regexp{
	// explicit page references that leak into harvested spans
	regexp.MustCompile(`(?i)\brecipe\s+from\s+page\s+\d+`),
	regexp.MustCompile(`(?i)^\s*(?:atk|america's test kitchen)\b.*\bpage\s+\d+`),
	regexp.MustCompile(`(?i)^\s*page\s+\d+\s*$`),
	// runs of stranded single letters ("a b c d") from exploded glyphs
	regexp.MustCompile(`(?:\b[[:alpha:]]\s+){3,}`),
	// repeated punctuation noise
	regexp.MustCompile(`[.]{4,}|[-_]{4,}|[|]{2,}`),
}

var pageReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:page|pg\.?)\s+\d+\b`),
	regexp.MustCompile(`(?i)^\s*(?:chapter|section|part)\s+\d+`),
	regexp.MustCompile(`(?i)\bcontinued\s+(?:from|on)\b`),
	regexp.MustCompile(`(?i)\bsee\s+(?:page|recipe)\b`),
	regexp.MustCompile(`^\s*\d{1,3}\s*$`),
}

var recipeMetadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:serves?|servings?|yields?|makes)\s*:?\s*\d+`),
	regexp.MustCompile(`(?i)\b\d+\s*(?:minutes?|mins?|hours?|hrs?)\b`),
	regexp.MustCompile(`(?i)\b(?:prep|cook|total|baking|resting)\s+time\b`),
	regexp.MustCompile(`(?i)\b(?:beginner|intermediate|advanced)\b`),
	regexp.MustCompile(`(?i)\bdifficulty\s*:`),
	regexp.MustCompile(`(?i)\b(?:vegetarian|vegan|gluten[- ]free|dairy[- ]free|nut[- ]free)\b`),
}

var bareMetadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:serves?|makes)\s+\d+\+?\s*$`),
	regexp.MustCompile(`(?i)^\s*\d+\s*(?:minutes?|mins?|hours?|hrs?)\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:beginner|intermediate|advanced)\s*!?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:prep|cook|total)\s+time\b.*$`),
	regexp.MustCompile(`(?i)^\s*(?:vegetarian|vegan|gluten[- ]free)\s*$`),
}

var patternGroups = map[PatternGroup][]*regexp.Regexp{
	PatternMeasurement:        measurementPatterns,
	PatternLeadingMeasurement: leadingMeasurementPatterns,
	PatternStepNumber:         stepNumberPatterns,
	PatternOrphanStepNumber:   orphanStepNumberPatterns,
	PatternBullet:             bulletPatterns,
	PatternArtifact:           artifactTextPatterns,
	PatternPageReference:      pageReferencePatterns,
	PatternRecipeMetadata:     recipeMetadataPatterns,
	PatternBareMetadata:       bareMetadataPatterns,
}

// MatchesAny reports whether text matches any pattern in the group.
// Unknown groups never match; absence is a normal outcome, not an error.
func (l *Lexicon) MatchesAny(text string, group PatternGroup) bool {
	for _, re := range patternGroups[group] {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// MeasurementMatches returns the distinct measurement expressions found in
// text, normalized for comparison. The ingredient predicate needs distinct
// matches, not raw hit counts, so "2 cups ... 2 cups" counts once.
func (l *Lexicon) MeasurementMatches(text string) []string {
	seen := make(map[string]struct{})
	var matches []string
	for _, re := range measurementPatterns {
		for _, m := range re.FindAllString(text, -1) {
			norm := strings.Join(strings.Fields(strings.ToLower(m)), " ")
			if _, ok := seen[norm]; ok {
				continue
			}
			seen[norm] = struct{}{}
			matches = append(matches, norm)
		}
	}
	return matches
}
