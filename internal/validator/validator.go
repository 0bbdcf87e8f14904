// Package validator aggregates per-field classifications into an
// accept/reject verdict for an assembled recipe candidate.
package validator

import (
	"fmt"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/logging"
)

// validConfidenceThreshold is the average component confidence a candidate
// needs to be accepted. Tuned, not derived.
const validConfidenceThreshold = 0.70

// coreComponentCount is title + ingredients + instructions.
const coreComponentCount = 3

// RecipeValidator judges candidate recipes. It is stateless apart from the
// injected classifier and safe for concurrent use.
type RecipeValidator struct {
	classifier *classifier.ContentClassifier
	logger     logging.Logger
}

// New creates a validator over the given classifier.
func New(c *classifier.ContentClassifier, logger logging.Logger) *RecipeValidator {
	return &RecipeValidator{classifier: c, logger: logger}
}

// fieldCheck describes one core field and the kind it must classify as.
type fieldCheck struct {
	name       string
	content    string
	want       domain.ContentKind
	invalidMsg string
}

// Validate decides whether the candidate is an acceptable recipe. It is
// total and pure: any combination of present, absent or malformed fields
// yields a verdict, never an error. Error strings are kept specific so
// operators can tune the lexicon from rejection tallies.
func (v *RecipeValidator) Validate(candidate domain.RecipeCandidate) domain.ValidationVerdict {
	verdict := domain.ValidationVerdict{
		Components:     []domain.RecipeComponent{},
		Errors:         []string{},
		Warnings:       []string{},
		QualityMetrics: map[string]float64{},
	}

	checks := []fieldCheck{
		{"title", candidate.Title, domain.KindRecipeTitle, "invalid title"},
		{"ingredients", candidate.Ingredients, domain.KindIngredientList, "invalid ingredients section"},
		{"instructions", candidate.Instructions, domain.KindInstructionSteps, "invalid instructions section"},
	}

	passed := 0
	for _, check := range checks {
		if check.content == "" {
			verdict.Errors = append(verdict.Errors, "missing "+check.name)
			continue
		}

		result := v.classifier.Classify(check.content, nil)
		if result.Kind != check.want {
			verdict.Errors = append(verdict.Errors,
				fmt.Sprintf("%s (classified as %s)", check.invalidMsg, result.Kind))
			continue
		}

		passed++
		component := domain.RecipeComponent{
			Content:    check.content,
			Kind:       result.Kind,
			Confidence: result.Confidence,
		}
		if result.Confidence < domain.MediumConfidenceThreshold {
			verdict.Warnings = append(verdict.Warnings,
				"low confidence "+check.name)
			component.Notes = append(component.Notes, "low confidence")
		}
		verdict.Components = append(verdict.Components, component)
	}

	avg := 0.0
	for _, comp := range verdict.Components {
		avg += comp.Confidence
	}
	if len(verdict.Components) > 0 {
		avg /= float64(len(verdict.Components))
	}

	hasAllCore := passed == coreComponentCount
	verdict.QualityMetrics["average_confidence"] = avg
	verdict.QualityMetrics["component_count"] = float64(len(verdict.Components))
	verdict.QualityMetrics["has_all_core_components"] = boolMetric(hasAllCore)

	verdict.OverallConfidence = avg
	verdict.IsValid = len(verdict.Errors) == 0 &&
		hasAllCore &&
		avg >= validConfidenceThreshold

	if v.logger != nil {
		v.logger.Debug("candidate validated",
			logging.String("title", candidate.Title),
			logging.Int("page", candidate.PageNumber),
			logging.Bool("is_valid", verdict.IsValid),
			logging.Float64("confidence", verdict.OverallConfidence),
			logging.Strings("errors", verdict.Errors))
	}

	return verdict
}

func boolMetric(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
