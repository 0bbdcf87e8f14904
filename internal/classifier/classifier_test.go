package classifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
)

func newClassifier(t *testing.T) *classifier.ContentClassifier {
	t.Helper()
	return classifier.New(lexicon.New(), logging.NewNop(), nil)
}

func TestClassifyKinds(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name string
		text string
		kind domain.ContentKind
		conf float64
	}{
		{
			name: "orphan step number",
			text: "3.",
			kind: domain.KindExtractionArtifact,
			conf: 0.95,
		},
		{
			name: "stranded short token",
			text: "ed",
			kind: domain.KindExtractionArtifact,
			conf: 0.95,
		},
		{
			name: "page back reference with recipe prefix",
			text: "ATK Recipe from Page 14",
			kind: domain.KindExtractionArtifact,
			conf: 0.95,
		},
		{
			name: "section label",
			text: "Start Cooking!",
			kind: domain.KindInstructionHeader,
			conf: 0.90,
		},
		{
			name: "before you begin header",
			text: "Before You Begin",
			kind: domain.KindInstructionHeader,
			conf: 0.90,
		},
		{
			name: "page reference",
			text: "see page 42",
			kind: domain.KindPageMetadata,
			conf: 0.90,
		},
		{
			name: "front matter",
			text: "Table of Contents",
			kind: domain.KindNonRecipeContent,
			conf: 0.85,
		},
		{
			name: "two word title",
			text: "Grilled Chicken Salad",
			kind: domain.KindRecipeTitle,
			conf: 0.85,
		},
		{
			name: "dessert title",
			text: "Chocolate Chip Cookies",
			kind: domain.KindRecipeTitle,
			conf: 0.85,
		},
		{
			name: "preparation title",
			text: "Refried Beans",
			kind: domain.KindRecipeTitle,
			conf: 0.85,
		},
		{
			name: "numbered instructions",
			text: "1. Preheat the oven to 375 degrees.\n2. Whisk the eggs and milk together.",
			kind: domain.KindInstructionSteps,
			conf: 0.85,
		},
		{
			name: "bulleted ingredients",
			text: "- 2 cups chicken broth\n- 1 tablespoon olive oil\n- 1 cup rice",
			kind: domain.KindIngredientList,
			conf: 0.80,
		},
		{
			name: "servings line",
			text: "Serves 4",
			kind: domain.KindRecipeMetadata,
			conf: 0.75,
		},
		{
			name: "educational aside",
			text: "Why This Recipe Works: browning the butter deepens the flavor of the cookies.",
			kind: domain.KindEducationalContent,
			conf: 0.70,
		},
		{
			name: "plain prose fallback",
			text: "The summer my grandmother visited, we spent every afternoon in her garden.",
			kind: domain.KindNonRecipeContent,
			conf: 0.30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text, nil)
			assert.Equal(t, tt.kind, result.Kind, "text: %q", tt.text)
			assert.InDelta(t, tt.conf, result.Confidence, 0.0001)
		})
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newClassifier(t)

	for _, text := range []string{"", "   ", "\n\t\n"} {
		result := c.Classify(text, nil)
		assert.Equal(t, domain.KindNonRecipeContent, result.Kind)
		assert.InDelta(t, 0.30, result.Confidence, 0.0001)
		assert.Equal(t, "empty_input", result.Rule)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newClassifier(t)

	inputs := []string{
		"Grilled Chicken Salad",
		"- 2 cups flour\n- 1 cup sugar",
		"random text about nothing in particular",
		"3.",
	}
	for _, text := range inputs {
		first := c.Classify(text, nil)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, c.Classify(text, nil))
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	c := newClassifier(t)

	// pathological inputs must still produce a labeled result
	inputs := []string{
		strings.Repeat("a", 10000),
		strings.Repeat(" ", 50),
		"���\x00\x01",
		"!@#$%^&*()",
		strings.Repeat("1. step\n", 500),
	}
	for _, text := range inputs {
		result := c.Classify(text, nil)
		require.NotEmpty(t, result.Kind.String())
		assert.GreaterOrEqual(t, result.Confidence, 0.30)
		assert.LessOrEqual(t, result.Confidence, 0.95)
	}
}

func TestCascadePrecedence(t *testing.T) {
	c := newClassifier(t)

	// a span that reads as both an artifact and a title stays an artifact
	result := c.Classify("Recipe", nil)
	assert.Equal(t, domain.KindExtractionArtifact, result.Kind)

	// a section label that mentions cooking is structure, not a title
	result = c.Classify("Prepare Ingredients", nil)
	assert.Equal(t, domain.KindInstructionHeader, result.Kind)

	// instruction steps that mention food words are steps, not ingredients
	result = c.Classify("1. Simmer 2 cups broth with 1 cup rice until tender.", nil)
	assert.Equal(t, domain.KindInstructionSteps, result.Kind)
}

func TestIngredientListRequiresStructure(t *testing.T) {
	c := newClassifier(t)

	// measurements stripped out: no longer an ingredient list
	result := c.Classify("chicken broth\nolive oil\nrice", nil)
	assert.Equal(t, domain.KindNonRecipeContent, result.Kind)

	// single measurement in prose is not a list
	result = c.Classify("add 2 cups of chicken broth to the pot", nil)
	assert.NotEqual(t, domain.KindIngredientList, result.Kind)
}

func TestInstructionStepsRequireCookingVerb(t *testing.T) {
	c := newClassifier(t)

	result := c.Classify("1. The meeting convened at noon as scheduled beforehand.", nil)
	assert.NotEqual(t, domain.KindInstructionSteps, result.Kind)
}

func TestConfidenceNeverDropsAsEvidenceGrows(t *testing.T) {
	c := newClassifier(t)

	// growing a borderline ingredient block line by line must never make
	// the classifier less confident about what it is looking at
	lines := []string{
		"• 2 cups flour",
		"• 1 tablespoon butter",
		"• 3 teaspoons sugar",
		"• 1 cup milk",
		"• 2 oz dark chocolate",
	}

	prev := 0.0
	var last domain.ClassificationResult
	for i := range lines {
		text := strings.Join(lines[:i+1], "\n")
		last = c.Classify(text, nil)
		assert.GreaterOrEqualf(t, last.Confidence, prev,
			"confidence dropped after adding line %d: %q", i+1, lines[i])
		prev = last.Confidence
	}

	assert.Equal(t, domain.KindIngredientList, last.Kind)
	assert.InDelta(t, 0.80, last.Confidence, 1e-9)
}
