// Package api exposes the classifier and validator over HTTP for
// debugging, lexicon tuning and integration with review tooling.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/storage"
	"github.com/cookscan/cookscan/internal/telemetry"
	"github.com/cookscan/cookscan/internal/validator"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Handler handles HTTP requests for the extraction API
type Handler struct {
	classifier *classifier.ContentClassifier
	validator  *validator.RecipeValidator
	store      *storage.Store
	telemetry  *telemetry.Provider
	logger     logging.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	c *classifier.ContentClassifier,
	v *validator.RecipeValidator,
	store *storage.Store,
	tp *telemetry.Provider,
	logger logging.Logger,
) *Handler {
	return &Handler{
		classifier: c,
		validator:  v,
		store:      store,
		telemetry:  tp,
		logger:     logger,
	}
}

// ClassifyRequest represents a single classification request
type ClassifyRequest struct {
	Text       string `json:"text" binding:"required"`
	PageNumber int    `json:"page_number"`
}

// ClassifyResponse represents a classification response
type ClassifyResponse struct {
	Result domain.ClassificationResult `json:"result"`
}

// BatchClassifyRequest represents a batch classification request
type BatchClassifyRequest struct {
	Texts []string `json:"texts" binding:"required,min=1,max=100"`
}

// BatchClassifyResponse represents a batch classification response
type BatchClassifyResponse struct {
	Results []domain.ClassificationResult `json:"results"`
	Total   int                           `json:"total"`
}

// ValidateRequest represents a candidate validation request
type ValidateRequest struct {
	Candidate domain.RecipeCandidate `json:"candidate" binding:"required"`
}

// ValidateResponse represents a candidate validation response
type ValidateResponse struct {
	Verdict domain.ValidationVerdict `json:"verdict"`
	Tier    string                   `json:"tier"`
}

// StatsResponse represents aggregate extraction statistics
type StatsResponse struct {
	Recipes          int            `json:"recipes"`
	RejectionReasons map[string]int `json:"rejection_reasons"`
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.classifier.Classify(req.Text, &classifier.Context{PageNumber: req.PageNumber})
	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ClassifyBatch handles POST /api/v1/classify/batch
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch classification request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := make([]domain.ClassificationResult, len(req.Texts))
	for i, text := range req.Texts {
		results[i] = h.classifier.Classify(text, nil)
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{
		Results: results,
		Total:   len(results),
	})
}

// Validate handles POST /api/v1/validate
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid validation request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict := h.validator.Validate(req.Candidate)
	c.JSON(http.StatusOK, ValidateResponse{
		Verdict: verdict,
		Tier:    domain.ConfidenceTier(verdict.OverallConfidence),
	})
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.store.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to load recipe", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListRecipes handles GET /api/v1/recipes
func (h *Handler) ListRecipes(c *gin.Context) {
	limit := defaultListLimit
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	recipes, err := h.store.ListRecipes(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list recipes", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "total": len(recipes)})
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.store.CountRecipes(ctx)
	if err != nil {
		h.logger.Error("failed to count recipes", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tally, err := h.store.RejectionTally(ctx)
	if err != nil {
		h.logger.Error("failed to tally rejections", logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Recipes:          count,
		RejectionReasons: tally,
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	if _, err := h.store.CountRecipes(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
