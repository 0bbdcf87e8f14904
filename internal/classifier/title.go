package classifier

import (
	"strings"
	"unicode"

	"github.com/cookscan/cookscan/internal/lexicon"
)

// Title length bounds. Dish names shorter than three characters are noise;
// anything past a hundred is a sentence that wrapped.
const (
	minTitleLength = 3
	maxTitleLength = 100
)

// isRecipeTitle is the most elaborate predicate in the cascade: titles are
// short and structurally ambiguous with both ingredient lines and
// instruction fragments, so the check runs a reject battery first and then
// demands the text read like a complete dish, not merely mention food.
func (c *ContentClassifier) isRecipeTitle(text string, lines []string) bool {
	if len(lines) != 1 {
		return false
	}

	runes := []rune(text)
	if len(runes) < minTitleLength || len(runes) > maxTitleLength {
		return false
	}

	// immediate rejects: list markers, quantities, step numbers, bare
	// metadata phrases
	if c.lex.MatchesAny(text, lexicon.PatternBullet) {
		return false
	}
	if c.lex.MatchesAny(text, lexicon.PatternLeadingMeasurement) {
		return false
	}
	if c.lex.MatchesAny(text, lexicon.PatternStepNumber) {
		return false
	}
	if c.lex.MatchesAny(text, lexicon.PatternBareMetadata) {
		return false
	}

	// titles do not embed quantities anywhere
	if c.lex.MatchesAny(text, lexicon.PatternMeasurement) {
		return false
	}

	// single words are titles only for iconic dishes ("chili", "risotto")
	fields := strings.Fields(text)
	if len(fields) == 1 {
		return c.lex.IsIconicDish(fields[0])
	}

	// sentence-fragment shapes
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	if hasFragmentSuffix(text) {
		return false
	}
	if strings.ContainsAny(text, "[](){}<>") {
		return false
	}

	hits := c.lex.Scan(text)
	if hits.HasFragmentIndicator() {
		return false
	}

	// OCR mid-word splits masquerading as two tokens
	if c.lex.ContainsBrokenWord(text) {
		return false
	}

	// vocabulary gate: a dish name mentions food or a cooking method
	if !hits.HasFood() && !hits.HasCooking() && !hits.HasPreparation() {
		return false
	}

	// structural gate: the text must sound like a complete dish
	return soundsLikeCompleteDish(hits, fields)
}

// soundsLikeCompleteDish checks the dish-completion shapes. Vocabulary
// presence alone over-accepts fragments that mention a food word in
// passing ("add the chicken now"), so acceptance additionally requires one
// of these structures.
func soundsLikeCompleteDish(hits lexicon.Hits, fields []string) bool {
	// cooking method + protein ("Grilled Chicken", "Refried Beans")
	if (hits.HasCooking() || hits.HasPreparation()) && hits.HasProtein() {
		return true
	}
	// protein + preposition ("Shrimp over Grits")
	if hits.HasProtein() && hits.HasPreposition() {
		return true
	}
	// descriptor + food noun ("Creamy Tomato Soup")
	if hits.HasDescriptor() && hits.HasFood() {
		return true
	}
	// food word + dish-type noun ("Chocolate Chip Cookies")
	if hits.HasFood() && hits.HasDishType() {
		return true
	}
	// regional/style adjective + food noun ("Tuscan White Beans")
	if hits.HasRegionalStyle() && hits.HasFood() {
		return true
	}
	// two distinct structural categories
	if hits.StructuralCategoryCount() >= 2 {
		return true
	}
	// multi-word phrase built from food vocabulary ("Chicken Broth")
	if len(fields) >= 2 && hits.FoodWordCount() >= 2 {
		return true
	}
	// dish-component noun + food word ("Cranberry Sauce")
	return hits.HasDishComponent() && hits.HasFood()
}

// hasFragmentSuffix reports trailing punctuation that marks a truncated
// sentence rather than a dish name.
func hasFragmentSuffix(text string) bool {
	for _, suffix := range []string{",", ";", ".", "...", "…"} {
		if strings.HasSuffix(text, suffix) {
			return true
		}
	}
	return false
}
