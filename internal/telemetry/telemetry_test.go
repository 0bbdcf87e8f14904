package telemetry_test

import (
	"testing"
	"time"

	"github.com/cookscan/cookscan/internal/telemetry"
)

func TestNewProvider(t *testing.T) {
	provider := telemetry.NewProvider()
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestProvidersUseIsolatedRegistries(t *testing.T) {
	// Creating two providers must not panic on duplicate registration.
	a := telemetry.NewProvider()
	b := telemetry.NewProvider()
	a.RecordPage(true)
	b.RecordPage(true)
}

func TestRecordClassification(t *testing.T) {
	provider := telemetry.NewProvider()

	// Should not panic
	provider.RecordClassification("recipe_title", 100*time.Microsecond)
	provider.RecordClassification("non_recipe_content", 50*time.Microsecond)
}

func TestRecordVerdict(t *testing.T) {
	provider := telemetry.NewProvider()

	provider.RecordVerdict(true, 0.83, "")
	provider.RecordVerdict(false, 0.41, "missing_instructions")
}

func TestHandler(t *testing.T) {
	provider := telemetry.NewProvider()
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}
