package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscan/cookscan/internal/classifier"
	"github.com/cookscan/cookscan/internal/domain"
	"github.com/cookscan/cookscan/internal/lexicon"
	"github.com/cookscan/cookscan/internal/logging"
	"github.com/cookscan/cookscan/internal/storage"
	"github.com/cookscan/cookscan/internal/telemetry"
	"github.com/cookscan/cookscan/internal/validator"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewNop()
	tp := telemetry.NewProvider()
	c := classifier.New(lexicon.New(), logger, tp)
	v := validator.New(c, logger)

	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler := NewHandler(c, v, store, tp, logger)
	router := gin.New()
	SetupRoutes(router, handler, RouteConfig{RateLimitRPS: 1000, RateLimitBurst: 1000})
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/classify",
		ClassifyRequest{Text: "Grilled Chicken Salad", PageNumber: 12})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindRecipeTitle, resp.Result.Kind)
	assert.InDelta(t, 0.85, resp.Result.Confidence, 0.0001)
}

func TestClassifyRejectsEmptyBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/classify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyBatchEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/classify/batch",
		BatchClassifyRequest{Texts: []string{"Start Cooking!", "Serves 4"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BatchClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, domain.KindInstructionHeader, resp.Results[0].Kind)
	assert.Equal(t, domain.KindRecipeMetadata, resp.Results[1].Kind)
}

func TestValidateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	candidate := domain.RecipeCandidate{
		Title:       "Roasted Chicken Thighs",
		Ingredients: "- 2 pounds chicken thighs\n- 1 tablespoon olive oil\n- 2 cups rice",
		Instructions: "1. Season the chicken and roast for 40 minutes.\n" +
			"2. Simmer the rice until tender and serve.",
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/validate", ValidateRequest{Candidate: candidate})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Verdict.IsValid)
	assert.Equal(t, "high", resp.Tier)
}

func TestGetRecipeEndpoints(t *testing.T) {
	router, store := newTestRouter(t)

	recipe := &domain.RecipeRecord{
		Title:        "Beef Chili",
		Ingredients:  "1 lb ground beef",
		Instructions: "1. Brown the beef.",
		Source:       "book.pdf",
	}
	require.NoError(t, store.SaveRecipe(context.Background(), recipe))

	w := doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+recipe.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.RecipeRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Beef Chili", got.Title)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	router, store := newTestRouter(t)

	require.NoError(t, store.SaveRejection(context.Background(), &domain.Rejection{
		Title:  "Notes",
		Reason: "missing_ingredients",
	}))

	w := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Recipes)
	assert.Equal(t, 1, resp.RejectionReasons["missing_ingredients"])
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limited := gin.New()
	limited.Use(RateLimit(1, 1, logging.NewNop()))
	limited.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	limited.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	limited.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
