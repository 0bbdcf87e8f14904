package classifier

import (
	"strings"
	"unicode"

	"github.com/cookscan/cookscan/internal/lexicon"
)

const (
	// maxShortTokenLength bounds a standalone token treated as extraction noise.
	maxShortTokenLength = 3
	// maxBrokenWordSpanLength bounds the spans checked for mid-word OCR splits;
	// long prose legitimately contains short lowercase tokens.
	maxBrokenWordSpanLength = 40
	// maxPageMetadataLength bounds spans checked for page references so a
	// cross-reference buried in a long instruction block does not eat it.
	maxPageMetadataLength = 120
	// minReadableRatio is the minimum share of alphanumeric runes a span
	// needs to count as readable text rather than extraction garbage.
	minReadableRatio = 0.5
)

// isExtractionArtifact catches the debris imperfect PDF extraction leaves
// behind: orphaned tokens, stranded step numbers, bare header words,
// exploded glyph runs and page back-references.
func (c *ContentClassifier) isExtractionArtifact(text string, _ []string) bool {
	fields := strings.Fields(text)

	// single short alphabetic token ("ed", "the", stray syllables)
	if len(fields) == 1 && len([]rune(fields[0])) <= maxShortTokenLength {
		return true
	}

	// orphaned step number ("3.", "12)", "step 4")
	if c.lex.MatchesAny(text, lexicon.PatternOrphanStepNumber) {
		return true
	}

	// bare section-header word flattened out of a visual layout
	if c.lex.IsArtifactPhrase(text) {
		return true
	}

	// known garbled phrasings and explicit page references
	if c.lex.MatchesAny(text, lexicon.PatternArtifact) {
		return true
	}

	// mid-word OCR splits ("br ead") in short spans
	if len(text) <= maxBrokenWordSpanLength && c.lex.ContainsBrokenWord(text) {
		return true
	}

	// mostly non-alphanumeric content is not readable text
	return readableRatio(text) < minReadableRatio
}

// isInstructionHeader matches exact-ish known section labels ("Start
// Cooking!", "Before You Begin"). These are structure, not content.
func (c *ContentClassifier) isInstructionHeader(text string, lines []string) bool {
	return len(lines) == 1 && c.lex.IsSectionLabel(text)
}

// isPageMetadata matches page/chapter/section reference spans.
func (c *ContentClassifier) isPageMetadata(text string, _ []string) bool {
	if len(text) > maxPageMetadataLength {
		return false
	}
	return c.lex.MatchesAny(text, lexicon.PatternPageReference)
}

// isFrontMatter matches book apparatus: contents, index, acknowledgments.
func (c *ContentClassifier) isFrontMatter(text string, _ []string) bool {
	return c.lex.ContainsFrontMatterPhrase(text)
}

// readableRatio returns the share of non-space runes that are letters or
// digits.
func readableRatio(text string) float64 {
	total, alnum := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}
