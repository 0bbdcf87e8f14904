package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscan/cookscan/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndGetRecipe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recipe := &domain.RecipeRecord{
		Title:        "Grilled Chicken Salad",
		Ingredients:  "2 cups chicken\n1 head lettuce",
		Instructions: "1. Grill the chicken.\n2. Toss with lettuce.",
		Source:       "test-cookbook.pdf",
		PageNumber:   14,
		Confidence:   0.83,
	}

	require.NoError(t, store.SaveRecipe(ctx, recipe))
	assert.NotEmpty(t, recipe.ID)
	assert.False(t, recipe.CreatedAt.IsZero())

	got, err := store.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, recipe.Title, got.Title)
	assert.Equal(t, recipe.PageNumber, got.PageNumber)
	assert.InDelta(t, recipe.Confidence, got.Confidence, 0.0001)
}

func TestGetRecipeNotFound(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetRecipe(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAndCountRecipes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, title := range []string{"Beef Stew", "Apple Pie", "Roast Chicken"} {
		require.NoError(t, store.SaveRecipe(ctx, &domain.RecipeRecord{
			Title:        title,
			Ingredients:  "1 lb something",
			Instructions: "1. Cook it.",
			Source:       "book.pdf",
			PageNumber:   i + 1,
		}))
	}

	count, err := store.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	recipes, err := store.ListRecipes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Beef Stew", recipes[0].Title)
}

func TestRejectionTally(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rejections := []domain.Rejection{
		{Title: "Notes", Reason: "missing_instructions", PageNumber: 3},
		{Title: "Tips", Reason: "missing_instructions", PageNumber: 7},
		{Title: "Intro", Reason: "missing_ingredients", PageNumber: 1},
	}
	for i := range rejections {
		require.NoError(t, store.SaveRejection(ctx, &rejections[i]))
	}

	tally, err := store.RejectionTally(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"missing_instructions": 2,
		"missing_ingredients":  1,
	}, tally)
}
