// Package classifier decides what kind of recipe content a span of
// extracted page text is. Classification is a priority-ordered cascade of
// predicates: the first rule that fires wins and its fixed confidence is
// returned. Order encodes human-authored precedence, not a learned
// weighting, and must not be rearranged: later rules assume earlier ones
// already filtered the cheap, unambiguous cases.
package classifier

import (
	"strings"
	"time"

	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/telemetry"
)

// Per-kind confidence constants. Tuned by hand against scanned cookbook
// output; changing them changes observable accept/reject behavior.
const (
	artifactConfidence       = 0.95
	headerConfidence         = 0.90
	pageMetadataConfidence   = 0.90
	frontMatterConfidence    = 0.85
	titleConfidence          = 0.85
	instructionConfidence    = 0.85
	ingredientConfidence     = 0.80
	recipeMetadataConfidence = 0.75
	educationalConfidence    = 0.70
	fallbackConfidence       = 0.30
)

// minInstructionLength filters orphaned single numbered fragments.
const minInstructionLength = 20

// Context carries optional surroundings for a classified span. The current
// rules ignore it, but the interface accepts it so per-cookbook extensions
// can use page position without changing callers.
type Context struct {
	PageNumber  int
	Surrounding []string
}

// cascadeRule binds one predicate to its kind and confidence.
type cascadeRule struct {
	name       string
	kind       domain.ContentKind
	confidence float64
	match      func(c *ContentClassifier, text string, lines []string) bool
}

// ContentClassifier maps text spans to ContentKinds using an injected
// lexicon. Safe for concurrent use; it holds no mutable state.
type ContentClassifier struct {
	lex       *lexicon.Lexicon
	logger    logging.Logger
	telemetry *telemetry.Provider
	rules     []cascadeRule
}

// New creates a classifier over the given lexicon. The telemetry provider
// may be nil (tests pass nil to keep classification pure).
func New(lex *lexicon.Lexicon, logger logging.Logger, tp *telemetry.Provider) *ContentClassifier {
	c := &ContentClassifier{
		lex:       lex,
		logger:    logger,
		telemetry: tp,
	}
	c.rules = []cascadeRule{
		{"extraction_artifact", domain.KindExtractionArtifact, artifactConfidence, (*ContentClassifier).isExtractionArtifact},
		{"instruction_header", domain.KindInstructionHeader, headerConfidence, (*ContentClassifier).isInstructionHeader},
		{"page_metadata", domain.KindPageMetadata, pageMetadataConfidence, (*ContentClassifier).isPageMetadata},
		{"front_matter", domain.KindNonRecipeContent, frontMatterConfidence, (*ContentClassifier).isFrontMatter},
		{"recipe_title", domain.KindRecipeTitle, titleConfidence, (*ContentClassifier).isRecipeTitle},
		{"instruction_steps", domain.KindInstructionSteps, instructionConfidence, (*ContentClassifier).isInstructionSteps},
		{"ingredient_list", domain.KindIngredientList, ingredientConfidence, (*ContentClassifier).isIngredientList},
		{"recipe_metadata", domain.KindRecipeMetadata, recipeMetadataConfidence, (*ContentClassifier).isRecipeMetadata},
		{"educational_content", domain.KindEducationalContent, educationalConfidence, (*ContentClassifier).isEducationalContent},
	}
	return c
}

// Classify assigns a ContentKind to one text span. It is total: every
// string gets a label, empty or unparseable input falls back to
// NonRecipeContent at minimum confidence, and it never panics.
func (c *ContentClassifier) Classify(text string, _ *Context) domain.ClassificationResult {
	start := time.Now()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return c.finish(domain.ClassificationResult{
			Kind:       domain.KindNonRecipeContent,
			Confidence: fallbackConfidence,
			Rule:       "empty_input",
		}, start)
	}

	lines := splitLines(trimmed)
	for _, rule := range c.rules {
		if rule.match(c, trimmed, lines) {
			return c.finish(domain.ClassificationResult{
				Kind:       rule.kind,
				Confidence: rule.confidence,
				Rule:       rule.name,
			}, start)
		}
	}

	return c.finish(domain.ClassificationResult{
		Kind:       domain.KindNonRecipeContent,
		Confidence: fallbackConfidence,
		Rule:       "default",
	}, start)
}

func (c *ContentClassifier) finish(result domain.ClassificationResult, start time.Time) domain.ClassificationResult {
	if c.telemetry != nil {
		c.telemetry.RecordClassification(result.Kind.String(), time.Since(start))
	}
	if c.logger != nil {
		c.logger.Debug("span classified",
			logging.String("kind", result.Kind.String()),
			logging.String("rule", result.Rule),
			logging.Float64("confidence", result.Confidence))
	}
	return result
}

// splitLines splits a block into trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
