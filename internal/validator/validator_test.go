package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/validator"
)

func newValidator(t *testing.T) *validator.RecipeValidator {
	t.Helper()
	logger := logging.NewNop()
	return validator.New(classifier.New(lexicon.New(), logger, nil), logger)
}

func completeCandidate() domain.RecipeCandidate {
	return domain.RecipeCandidate{
		Title:       "Grilled Chicken Salad",
		Ingredients: "- 2 cups chicken broth\n- 1 tablespoon olive oil\n- 1 head lettuce",
		Instructions: "1. Simmer the broth and let it cool completely.\n" +
			"2. Toss the lettuce with the oil and sliced chicken.",
		PageNumber: 14,
	}
}

func TestValidateAcceptsCompleteRecipe(t *testing.T) {
	v := newValidator(t)

	verdict := v.Validate(completeCandidate())

	assert.True(t, verdict.IsValid)
	assert.Empty(t, verdict.Errors)
	require.Len(t, verdict.Components, 3)

	// title 0.85, ingredients 0.80, instructions 0.85
	assert.InDelta(t, 0.8333, verdict.OverallConfidence, 0.001)
	assert.InDelta(t, 1.0, verdict.QualityMetrics["has_all_core_components"], 0.0001)
	assert.InDelta(t, 3.0, verdict.QualityMetrics["component_count"], 0.0001)
}

func TestValidateMissingFields(t *testing.T) {
	v := newValidator(t)

	candidate := completeCandidate()
	candidate.Instructions = ""

	verdict := v.Validate(candidate)

	assert.False(t, verdict.IsValid)
	assert.Contains(t, verdict.Errors, "missing instructions")
	assert.Len(t, verdict.Components, 2)
	assert.InDelta(t, 0.0, verdict.QualityMetrics["has_all_core_components"], 0.0001)
}

func TestValidateMisclassifiedField(t *testing.T) {
	v := newValidator(t)

	candidate := completeCandidate()
	candidate.Title = "Transfer to serving bowl"

	verdict := v.Validate(candidate)

	assert.False(t, verdict.IsValid)
	require.NotEmpty(t, verdict.Errors)
	assert.Contains(t, verdict.Errors[0], "invalid title")
	// other fields are still evaluated
	assert.Len(t, verdict.Components, 2)
}

func TestValidateIngredientsWithoutMeasurements(t *testing.T) {
	v := newValidator(t)

	candidate := completeCandidate()
	candidate.Ingredients = "chicken broth\nolive oil\nlettuce"

	verdict := v.Validate(candidate)

	assert.False(t, verdict.IsValid)
	require.NotEmpty(t, verdict.Errors)
	assert.Contains(t, verdict.Errors[0], "invalid ingredients section")
}

func TestValidateEmptyCandidate(t *testing.T) {
	v := newValidator(t)

	verdict := v.Validate(domain.RecipeCandidate{})

	assert.False(t, verdict.IsValid)
	assert.ElementsMatch(t, verdict.Errors,
		[]string{"missing title", "missing ingredients", "missing instructions"})
	assert.Empty(t, verdict.Components)
	assert.InDelta(t, 0.0, verdict.OverallConfidence, 0.0001)
}

func TestValidateIsTotalAndDeterministic(t *testing.T) {
	v := newValidator(t)

	candidates := []domain.RecipeCandidate{
		{},
		{Title: "3."},
		{Title: "Grilled Chicken", Ingredients: "???", Instructions: "!!!"},
		completeCandidate(),
	}
	for _, candidate := range candidates {
		first := v.Validate(candidate)
		assert.Equal(t, first, v.Validate(candidate))
	}
}

func TestConfidenceTiers(t *testing.T) {
	assert.Equal(t, "high", domain.ConfidenceTier(0.85))
	assert.Equal(t, "high", domain.ConfidenceTier(0.8))
	assert.Equal(t, "medium", domain.ConfidenceTier(0.7))
	assert.Equal(t, "medium", domain.ConfidenceTier(0.6))
	assert.Equal(t, "low", domain.ConfidenceTier(0.59))
	assert.Equal(t, "low", domain.ConfidenceTier(0.0))
}
