package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/validator"
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 4

// CandidateResult pairs a candidate with its verdict.
type CandidateResult struct {
	Candidate domain.RecipeCandidate
	Verdict   domain.ValidationVerdict
}

// BatchValidator validates candidates in parallel using a worker pool.
// The validator itself is pure, so candidates can be judged in any order;
// results come back in input order.
type BatchValidator struct {
	validator   *validator.RecipeValidator
	concurrency int
	logger      logging.Logger
}

// NewBatchValidator creates a batch validator with the given pool size.
func NewBatchValidator(v *validator.RecipeValidator, concurrency int, logger logging.Logger) *BatchValidator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &BatchValidator{validator: v, concurrency: concurrency, logger: logger}
}

// Validate judges every candidate and returns verdicts in input order.
func (b *BatchValidator) Validate(ctx context.Context, candidates []domain.RecipeCandidate) []CandidateResult {
	if len(candidates) == 0 {
		return []CandidateResult{}
	}

	startTime := time.Now()
	results := make([]CandidateResult, len(candidates))
	jobs := make(chan int, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go b.worker(ctx, jobs, candidates, results, &wg)
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	valid := 0
	for i := range results {
		if results[i].Verdict.IsValid {
			valid++
		}
	}
	b.logger.Debug("batch validation complete",
		logging.Int("candidates", len(candidates)),
		logging.Int("valid", valid),
		logging.Int("concurrency", b.concurrency),
		logging.Duration("duration", time.Since(startTime)))

	return results
}

func (b *BatchValidator) worker(
	ctx context.Context,
	jobs <-chan int,
	candidates []domain.RecipeCandidate,
	results []CandidateResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for i := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results[i] = CandidateResult{
			Candidate: candidates[i],
			Verdict:   b.validator.Validate(candidates[i]),
		}
	}
}
