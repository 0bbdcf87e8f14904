// Package pipeline orchestrates the full extraction flow: PDF text out,
// segments assembled, candidates validated, accepted recipes persisted.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/segmenter"
	"github.com/cookscan/cookscan/internal/storage"
	"github.com/cookscan/cookscan/internal/telemetry"
)

// Options configures a pipeline run.
type Options struct {
	// Source labels stored records, usually the cookbook name.
	Source string
	// Category is applied to every accepted recipe, may be empty.
	Category string
	// Concurrency sizes the validation worker pool.
	Concurrency int
}

// Extractor produces per-page text from a PDF on disk.
type Extractor interface {
	PageCount(path string) (int, error)
	ExtractPages(path string) ([]domain.PageText, error)
}

// Report summarizes one extraction run.
type Report struct {
	Source           string         `json:"source"`
	PagesTotal       int            `json:"pages_total"`
	Pages            int            `json:"pages"`
	Candidates       int            `json:"candidates"`
	Accepted         int            `json:"accepted"`
	Rejected         int            `json:"rejected"`
	RejectionReasons map[string]int `json:"rejection_reasons"`
	ConfidenceTiers  map[string]int `json:"confidence_tiers"`
	DurationMs       int64          `json:"duration_ms"`
}

// Pipeline runs cookbook PDFs through extraction, segmentation,
// validation and storage.
type Pipeline struct {
	extractor Extractor
	segmenter *segmenter.Segmenter
	batch     *BatchValidator
	store     *storage.Store
	telemetry *telemetry.Provider
	logger    logging.Logger
	opts      Options
}

// New assembles a pipeline from its stages.
func New(
	extractor Extractor,
	seg *segmenter.Segmenter,
	batch *BatchValidator,
	store *storage.Store,
	tp *telemetry.Provider,
	logger logging.Logger,
	opts Options,
) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		segmenter: seg,
		batch:     batch,
		store:     store,
		telemetry: tp,
		logger:    logger,
		opts:      opts,
	}
}

// Run extracts recipes from the PDF at path. Only candidates with a valid
// verdict are persisted; every rejection is recorded with its reason so
// operators can tune the lexicon from the tally.
func (p *Pipeline) Run(ctx context.Context, path string) (*Report, error) {
	ctx, span := p.telemetry.Tracer.Start(ctx, "pipeline.run")
	defer span.End()
	span.SetAttributes(attribute.String("pdf.path", path))

	startTime := time.Now()
	report := &Report{
		Source:           p.opts.Source,
		RejectionReasons: make(map[string]int),
		ConfidenceTiers:  make(map[string]int),
	}

	total, err := p.extractor.PageCount(path)
	if err != nil {
		return nil, fmt.Errorf("page count %s: %w", path, err)
	}
	report.PagesTotal = total

	pages, err := p.extractor.ExtractPages(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	report.Pages = len(pages)
	for range pages {
		p.telemetry.RecordPage(true)
	}
	for i := len(pages); i < total; i++ {
		p.telemetry.RecordPage(false)
	}

	candidates := p.segmenter.Segment(pages)
	report.Candidates = len(candidates)
	for range candidates {
		p.telemetry.RecordCandidate()
	}

	for _, result := range p.batch.Validate(ctx, candidates) {
		if err := p.record(ctx, result, report); err != nil {
			return nil, err
		}
	}

	report.DurationMs = time.Since(startTime).Milliseconds()
	p.logger.Info("extraction run complete",
		logging.String("source", report.Source),
		logging.String("path", path),
		logging.Int("pages_total", report.PagesTotal),
		logging.Int("pages", report.Pages),
		logging.Any("rejection_reasons", report.RejectionReasons),
		logging.Int("candidates", report.Candidates),
		logging.Int("accepted", report.Accepted),
		logging.Int("rejected", report.Rejected),
		logging.Int64("duration_ms", report.DurationMs))
	return report, nil
}

// record persists one validated candidate and updates the report.
func (p *Pipeline) record(ctx context.Context, result CandidateResult, report *Report) error {
	verdict := result.Verdict
	report.ConfidenceTiers[domain.ConfidenceTier(verdict.OverallConfidence)]++

	if verdict.IsValid {
		recipe := p.buildRecord(result.Candidate, verdict)
		if err := p.store.SaveRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("save recipe %q: %w", recipe.Title, err)
		}
		report.Accepted++
		p.telemetry.RecordVerdict(true, verdict.OverallConfidence, "")
		return nil
	}

	reason := rejectionReason(verdict)
	rejection := &domain.Rejection{
		Source:     p.opts.Source,
		PageNumber: result.Candidate.PageNumber,
		Title:      result.Candidate.Title,
		Reason:     reason,
		Confidence: verdict.OverallConfidence,
	}
	if err := p.store.SaveRejection(ctx, rejection); err != nil {
		return fmt.Errorf("save rejection %q: %w", rejection.Title, err)
	}
	report.Rejected++
	report.RejectionReasons[reason]++
	p.telemetry.RecordVerdict(false, verdict.OverallConfidence, reason)
	return nil
}

// buildRecord converts an accepted candidate into a storable recipe.
func (p *Pipeline) buildRecord(candidate domain.RecipeCandidate, verdict domain.ValidationVerdict) *domain.RecipeRecord {
	return &domain.RecipeRecord{
		Title:        candidate.Title,
		Category:     p.opts.Category,
		Ingredients:  candidate.Ingredients,
		Instructions: candidate.Instructions,
		Servings:     candidate.ExtraFields["servings"],
		TotalTime:    candidate.ExtraFields["total_time"],
		Description:  candidate.ExtraFields["metadata"],
		Source:       p.opts.Source,
		PageNumber:   candidate.PageNumber,
		Confidence:   verdict.OverallConfidence,
	}
}

// rejectionReason reduces a failed verdict to a stable tally key.
func rejectionReason(verdict domain.ValidationVerdict) string {
	if len(verdict.Errors) == 0 {
		// all components recognized but average confidence under threshold
		return "semantic_rejection"
	}
	reason := verdict.Errors[0]
	if idx := strings.Index(reason, " ("); idx > 0 {
		reason = reason[:idx]
	}
	return strings.ReplaceAll(reason, " ", "_")
}
