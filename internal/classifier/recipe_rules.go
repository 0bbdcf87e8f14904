package classifier

import (
	"github.com/cookscan/cookscan/internal/lexicon"
)

const (
	// minDistinctMeasurements is the measurement-expression floor for an
	// ingredient list; one quantity shows up in plenty of prose.
	minDistinctMeasurements = 2
	// minListLines is the minimum number of list-structured lines an
	// ingredient block must exhibit.
	minListLines = 2
)

// isInstructionSteps requires a numbered step line, at least one cooking
// verb, and enough total length to rule out stranded fragments.
func (c *ContentClassifier) isInstructionSteps(text string, lines []string) bool {
	hasStep := false
	for _, line := range lines {
		if c.lex.MatchesAny(line, lexicon.PatternStepNumber) {
			hasStep = true
			break
		}
	}
	if !hasStep {
		return false
	}
	if len(text) < minInstructionLength {
		return false
	}
	return c.lex.ContainsCookingWord(text)
}

// isIngredientList requires two distinct measurement expressions, food
// vocabulary, and list-like line structure (bullets, leading quantities,
// or unit expressions on multiple lines).
func (c *ContentClassifier) isIngredientList(text string, lines []string) bool {
	if len(c.lex.MeasurementMatches(text)) < minDistinctMeasurements {
		return false
	}
	if !c.lex.ContainsFoodWord(text) {
		return false
	}

	listLines := 0
	for _, line := range lines {
		if c.lex.MatchesAny(line, lexicon.PatternBullet) ||
			c.lex.MatchesAny(line, lexicon.PatternLeadingMeasurement) ||
			c.lex.MatchesAny(line, lexicon.PatternMeasurement) {
			listLines++
		}
	}
	return listLines >= minListLines
}

// isRecipeMetadata matches servings, yield, time, difficulty and dietary
// tag lines.
func (c *ContentClassifier) isRecipeMetadata(text string, _ []string) bool {
	return c.lex.MatchesAny(text, lexicon.PatternRecipeMetadata)
}

// isEducationalContent matches the narrative asides test-kitchen cookbooks
// print around recipes ("Why this recipe works").
func (c *ContentClassifier) isEducationalContent(text string, _ []string) bool {
	return c.lex.ContainsEducationalPhrase(text)
}
