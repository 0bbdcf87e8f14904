package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanWordBoundaries(t *testing.T) {
	lex := New()

	// "rice" must not match inside "price"
	assert.False(t, lex.ContainsFoodWord("the price of admission"))
	assert.True(t, lex.ContainsFoodWord("a cup of rice"))

	// "ham" must not match inside "hamper"
	assert.False(t, lex.ContainsFoodWord("put it in the hamper"))
	assert.True(t, lex.ContainsFoodWord("a slice of ham"))
}

func TestScanIsCaseAndPunctuationInsensitive(t *testing.T) {
	lex := New()

	assert.True(t, lex.ContainsFoodWord("CHICKEN, lightly pounded"))
	assert.True(t, lex.ContainsCookingWord("Simmer!"))
}

func TestScanMultiWordKeywords(t *testing.T) {
	lex := New()

	hits := lex.Scan("drizzle with olive oil")
	assert.True(t, hits.HasFood())
}

func TestHitsCategories(t *testing.T) {
	lex := New()

	hits := lex.Scan("grilled chicken salad")
	assert.True(t, hits.HasPreparation())
	assert.True(t, hits.HasProtein())
	assert.True(t, hits.HasDishType())
	assert.False(t, hits.HasFragmentIndicator())
	assert.GreaterOrEqual(t, hits.StructuralCategoryCount(), 2)

	hits = lex.Scan("transfer to a serving bowl")
	assert.True(t, hits.HasFragmentIndicator())
}

func TestFoodWordCountIsDistinct(t *testing.T) {
	lex := New()

	hits := lex.Scan("rice rice rice")
	assert.Equal(t, 1, hits.FoodWordCount())

	hits = lex.Scan("chicken and rice")
	assert.Equal(t, 2, hits.FoodWordCount())
}

func TestIconicDishes(t *testing.T) {
	lex := New()

	assert.True(t, lex.IsIconicDish("Chili"))
	assert.True(t, lex.IsIconicDish("risotto"))
	assert.False(t, lex.IsIconicDish("soup"))
	assert.False(t, lex.IsIconicDish("salad"))
}

func TestSectionLabels(t *testing.T) {
	lex := New()

	assert.True(t, lex.IsSectionLabel("Start Cooking!"))
	assert.True(t, lex.IsSectionLabel("BEFORE YOU BEGIN"))
	assert.False(t, lex.IsSectionLabel("Start cooking the rice now"))
}

func TestFrontMatterMatching(t *testing.T) {
	lex := New()

	// multi-word phrases match inside a span
	assert.True(t, lex.ContainsFrontMatterPhrase("Table of Contents — Spring"))
	// single words only match the whole span
	assert.True(t, lex.ContainsFrontMatterPhrase("Index"))
	assert.False(t, lex.ContainsFrontMatterPhrase("pour the contents of the can"))
}

func TestContainsBrokenWord(t *testing.T) {
	lex := New()

	assert.True(t, lex.ContainsBrokenWord("br ead and butter"))
	assert.True(t, lex.ContainsBrokenWord("the chick en was done"))

	// allowlisted short words are not OCR splits
	assert.False(t, lex.ContainsBrokenWord("a cup of flour"))
	assert.False(t, lex.ContainsBrokenWord("cook in the oven"))
	assert.False(t, lex.ContainsBrokenWord("2 oz butter"))
}

func TestMeasurementMatches(t *testing.T) {
	lex := New()

	got := lex.MeasurementMatches("2 cups flour, 3 tablespoons sugar, ½ tsp salt")
	assert.Len(t, got, 3)

	// duplicates collapse
	got = lex.MeasurementMatches("2 cups water and 2 cups milk")
	assert.Len(t, got, 1)

	assert.Empty(t, lex.MeasurementMatches("no quantities here"))
}

func TestPatternGroups(t *testing.T) {
	lex := New()

	tests := []struct {
		group PatternGroup
		text  string
		want  bool
	}{
		{PatternStepNumber, "3. Stir the sauce", true},
		{PatternStepNumber, "Stir the sauce", false},
		{PatternOrphanStepNumber, "12)", true},
		{PatternOrphanStepNumber, "12) Stir the sauce well", false},
		{PatternBullet, "• 2 cups flour", true},
		{PatternLeadingMeasurement, "2½ cups chicken broth", true},
		{PatternLeadingMeasurement, "broth, 2 cups", false},
		{PatternPageReference, "continued on the next page", true},
		{PatternPageReference, "see page 42", true},
		{PatternRecipeMetadata, "Prep time: 20 minutes", true},
		{PatternBareMetadata, "Serves 6", true},
		{PatternBareMetadata, "Serves 6 with rice on the side", false},
		{PatternArtifact, "Recipe from Page 14", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lex.MatchesAny(tt.text, tt.group),
			"group %v text %q", tt.group, tt.text)
	}
}

func TestNewFromTablesFixture(t *testing.T) {
	lex := NewFromTables(Tables{
		Words: map[string][]string{
			"proteins":      {"chicken"},
			"preparations":  {"grilled"},
			"cooking_basic": {"bake"},
		},
		IconicDishes: []string{"chili"},
	})

	assert.True(t, lex.ContainsFoodWord("grilled chicken"))
	assert.False(t, lex.ContainsFoodWord("grilled tofu"))
	assert.True(t, lex.IsIconicDish("chili"))
	assert.False(t, lex.IsSectionLabel("start cooking"))
}
