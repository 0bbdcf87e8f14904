// Package segmenter groups page-level text lines into recipe candidates.
// It runs a single left-to-right pass: a confidently classified title
// opens a segment, the segment runs until the next title (or end of
// input), and lines inside a segment are bucketed by shape. Boundaries
// are never revised once placed, so processing order is a correctness
// requirement, not a performance choice.
package segmenter

import (
	"strings"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
)

// titleBoundaryThreshold is the minimum title confidence that opens a new
// recipe segment.
const titleBoundaryThreshold = 0.7

// Segmenter assembles RecipeCandidates from ordered page text.
type Segmenter struct {
	classifier *classifier.ContentClassifier
	lex        *lexicon.Lexicon
	logger     logging.Logger
}

// New creates a segmenter. The lexicon is consulted for line-shape checks
// that the block-level classifier cannot answer for single lines.
func New(c *classifier.ContentClassifier, lex *lexicon.Lexicon, logger logging.Logger) *Segmenter {
	return &Segmenter{classifier: c, lex: lex, logger: logger}
}

// pageLine is one line of input with its source page.
type pageLine struct {
	text string
	page int
}

// Segment scans the pages in order and returns assembled candidates.
// Segments that fail to yield both ingredients and instructions are
// dropped silently (logged, never raised). Multi-page recipes stitch
// together naturally because the line stream crosses page boundaries.
func (s *Segmenter) Segment(pages []domain.PageText) []domain.RecipeCandidate {
	lines := flatten(pages)

	// first pass: locate title boundaries
	var boundaries []int
	results := make([]domain.ClassificationResult, len(lines))
	for i, line := range lines {
		results[i] = s.classifier.Classify(line.text, &classifier.Context{PageNumber: line.page})
		if results[i].Kind == domain.KindRecipeTitle && results[i].Confidence >= titleBoundaryThreshold {
			boundaries = append(boundaries, i)
		}
	}

	var candidates []domain.RecipeCandidate
	for b, start := range boundaries {
		end := len(lines)
		if b+1 < len(boundaries) {
			end = boundaries[b+1]
		}

		candidate, ok := s.assemble(lines, results, start, end)
		if !ok {
			if s.logger != nil {
				s.logger.Debug("segment dropped: incomplete recipe",
					logging.String("title", lines[start].text),
					logging.Int("page", lines[start].page))
			}
			continue
		}
		candidates = append(candidates, candidate)
	}

	if s.logger != nil {
		s.logger.Info("segmentation complete",
			logging.Int("pages", len(pages)),
			logging.Int("lines", len(lines)),
			logging.Int("boundaries", len(boundaries)),
			logging.Int("candidates", len(candidates)))
	}
	return candidates
}

// assemble buckets the lines of one segment into a candidate. Returns
// false when either the ingredients or instructions bucket stays empty.
func (s *Segmenter) assemble(lines []pageLine, results []domain.ClassificationResult, start, end int) (domain.RecipeCandidate, bool) {
	candidate := domain.RecipeCandidate{
		Title:       lines[start].text,
		PageNumber:  lines[start].page,
		ExtraFields: make(map[string]string),
	}

	var ingredients, instructions []string
	for i := start + 1; i < end; i++ {
		line := lines[i].text
		switch results[i].Kind {
		case domain.KindRecipeMetadata:
			s.recordMetadata(&candidate, line)
			continue
		case domain.KindExtractionArtifact, domain.KindPageMetadata,
			domain.KindInstructionHeader, domain.KindEducationalContent,
			domain.KindTableOfContents:
			// contextual noise, not recipe content
			continue
		}

		switch {
		case s.isInstructionLine(line):
			instructions = append(instructions, line)
		case s.isIngredientLine(line):
			ingredients = append(ingredients, line)
		}
		// everything else is narrative filler and is discarded
	}

	if len(ingredients) == 0 || len(instructions) == 0 {
		return domain.RecipeCandidate{}, false
	}

	candidate.Ingredients = strings.Join(ingredients, "\n")
	candidate.Instructions = strings.Join(instructions, "\n")
	return candidate, true
}

// isInstructionLine reports a numbered-step shape.
func (s *Segmenter) isInstructionLine(line string) bool {
	return s.lex.MatchesAny(line, lexicon.PatternStepNumber)
}

// isIngredientLine reports an ingredient shape: a bullet or leading
// quantity, or a unit expression next to food vocabulary.
func (s *Segmenter) isIngredientLine(line string) bool {
	if s.lex.MatchesAny(line, lexicon.PatternBullet) {
		return true
	}
	if s.lex.MatchesAny(line, lexicon.PatternLeadingMeasurement) {
		return true
	}
	return len(s.lex.MeasurementMatches(line)) > 0 && s.lex.ContainsFoodWord(line)
}

// recordMetadata files a metadata line under the candidate's extra fields.
func (s *Segmenter) recordMetadata(candidate *domain.RecipeCandidate, line string) {
	key := "metadata"
	switch {
	case containsServingWord(line):
		key = "servings"
	case containsTimeWord(line):
		key = "total_time"
	}
	if existing, ok := candidate.ExtraFields[key]; ok {
		candidate.ExtraFields[key] = existing + "; " + line
		return
	}
	candidate.ExtraFields[key] = line
}

func containsServingWord(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range []string{"serves", "serving", "yield", "makes"} {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func containsTimeWord(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range []string{"minute", "min", "hour", "hr", "time"} {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// flatten expands page blocks into an ordered line stream.
func flatten(pages []domain.PageText) []pageLine {
	var lines []pageLine
	for _, page := range pages {
		for _, raw := range strings.Split(page.Text, "\n") {
			if t := strings.TrimSpace(raw); t != "" {
				lines = append(lines, pageLine{text: t, page: page.Number})
			}
		}
	}
	return lines
}
