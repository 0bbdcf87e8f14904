package domain

import "time"

// ClassificationResult is the outcome of classifying one text span.
// Confidence is a heuristic score used for ranking and threshold gating;
// it is not a calibrated probability.
type ClassificationResult struct {
	Kind       ContentKind `json:"kind"`
	Confidence float64     `json:"confidence"` // 0.0-1.0
	Rule       string      `json:"rule"`       // name of the cascade rule that fired
}

// RecipeComponent is one validated piece of a recipe.
// Immutable once created.
type RecipeComponent struct {
	Content    string      `json:"content"`
	Kind       ContentKind `json:"kind"`
	Confidence float64     `json:"confidence"`
	Notes      []string    `json:"notes,omitempty"`
}

// RecipeCandidate is an in-progress recipe record assembled from one or
// more source pages. It is a mutable accumulator while scanning and
// becomes read-only input to the validator.
type RecipeCandidate struct {
	Title        string            `json:"title"`
	Ingredients  string            `json:"ingredients"`
	Instructions string            `json:"instructions"`
	PageNumber   int               `json:"page_number"`
	ExtraFields  map[string]string `json:"extra_fields,omitempty"`
}

// ValidationVerdict is the terminal accept/reject judgment for a candidate.
// Never mutated after creation.
type ValidationVerdict struct {
	IsValid           bool               `json:"is_valid"`
	OverallConfidence float64            `json:"overall_confidence"`
	Components        []RecipeComponent  `json:"components"`
	Errors            []string           `json:"errors"`
	Warnings          []string           `json:"warnings"`
	QualityMetrics    map[string]float64 `json:"quality_metrics"`
}

// PageText is one page of raw extracted PDF text.
type PageText struct {
	Number int    `json:"number"` // 1-indexed page number
	Text   string `json:"text"`
}

// RecipeRecord is the flat shape persisted for an accepted recipe.
type RecipeRecord struct {
	ID           string    `db:"id"            json:"id"`
	Title        string    `db:"title"         json:"title"`
	Category     string    `db:"category"      json:"category,omitempty"`
	Ingredients  string    `db:"ingredients"   json:"ingredients"`
	Instructions string    `db:"instructions"  json:"instructions"`
	Servings     string    `db:"servings"      json:"servings,omitempty"`
	TotalTime    string    `db:"total_time"    json:"total_time,omitempty"`
	Description  string    `db:"description"   json:"description,omitempty"`
	Source       string    `db:"source"        json:"source"`
	PageNumber   int       `db:"page_number"   json:"page_number"`
	Confidence   float64   `db:"confidence"    json:"confidence"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

// Rejection records why a candidate was turned away, backing the
// operator tuning report.
type Rejection struct {
	ID         string    `db:"id"          json:"id"`
	Source     string    `db:"source"      json:"source"`
	PageNumber int       `db:"page_number" json:"page_number"`
	Title      string    `db:"title"       json:"title"`
	Reason     string    `db:"reason"      json:"reason"`
	Confidence float64   `db:"confidence"  json:"confidence"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// Confidence tier bounds used by callers to route verdicts.
// The validator itself only exposes the raw score.
const (
	// HighConfidenceThreshold marks verdicts safe to auto-accept.
	HighConfidenceThreshold = 0.8
	// MediumConfidenceThreshold marks verdicts worth manual review.
	MediumConfidenceThreshold = 0.6
)

// ConfidenceTier buckets a score into "high", "medium" or "low".
func ConfidenceTier(score float64) string {
	switch {
	case score >= HighConfidenceThreshold:
		return "high"
	case score >= MediumConfidenceThreshold:
		return "medium"
	default:
		return "low"
	}
}
