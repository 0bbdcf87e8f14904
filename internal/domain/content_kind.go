// Package domain defines the core types shared across the cookscan pipeline.
package domain

// ContentKind labels a span of extracted page text.
// The set is closed: every classified span carries exactly one kind.
type ContentKind string

const (
	// KindRecipeTitle is a dish name heading a recipe.
	KindRecipeTitle ContentKind = "recipe_title"
	// KindIngredientList is a block of measured ingredient lines.
	KindIngredientList ContentKind = "ingredient_list"
	// KindInstructionSteps is a numbered sequence of cooking steps.
	KindInstructionSteps ContentKind = "instruction_steps"
	// KindInstructionHeader is a bare section label ("Start Cooking!"),
	// not instruction content itself.
	KindInstructionHeader ContentKind = "instruction_header"
	// KindRecipeMetadata covers servings, yield, time and difficulty lines.
	KindRecipeMetadata ContentKind = "recipe_metadata"
	// KindPageMetadata covers page numbers and page/chapter references.
	KindPageMetadata ContentKind = "page_metadata"
	// KindEducationalContent is a narrative aside ("Why this recipe works").
	KindEducationalContent ContentKind = "educational_content"
	// KindTableOfContents is front-matter listing recipes by page.
	KindTableOfContents ContentKind = "table_of_contents"
	// KindNonRecipeContent is anything readable but not recipe material.
	KindNonRecipeContent ContentKind = "non_recipe_content"
	// KindExtractionArtifact is garbled or orphaned text produced by
	// imperfect PDF extraction.
	KindExtractionArtifact ContentKind = "extraction_artifact"
)

// String returns the kind's wire label.
func (k ContentKind) String() string {
	return string(k)
}

// IsRecipeContent reports whether the kind is a field of an actual recipe
// (title, ingredients, instructions or recipe-level metadata).
func (k ContentKind) IsRecipeContent() bool {
	switch k {
	case KindRecipeTitle, KindIngredientList, KindInstructionSteps, KindRecipeMetadata:
		return true
	default:
		return false
	}
}
