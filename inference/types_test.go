package inference

import (
	"encoding/json"
	"testing"
)

func TestModelTypeString(t *testing.T) {
	tests := []struct {
		modelType ModelType
		want      string
	}{
		{ModelTypeGeneral, "general"},
		{ModelTypeCoding, "coding"},
		{ModelTypeReasoning, "reasoning"},
		{ModelTypeFast, "fast"},
		{ModelTypeCreative, "creative"},
		{ModelType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.modelType.String(); got != tt.want {
			t.Errorf("ModelType(%d).String() = %q, want %q", tt.modelType, got, tt.want)
		}
	}
}

func TestParseModelType(t *testing.T) {
	for _, mt := range []ModelType{ModelTypeGeneral, ModelTypeCoding, ModelTypeReasoning, ModelTypeFast, ModelTypeCreative} {
		parsed, err := ParseModelType(mt.String())
		if err != nil {
			t.Fatalf("ParseModelType(%q) error: %v", mt.String(), err)
		}
		if parsed != mt {
			t.Errorf("ParseModelType(%q) = %v, want %v", mt.String(), parsed, mt)
		}
	}

	if _, err := ParseModelType("bogus"); err == nil {
		t.Error("ParseModelType(bogus) expected error, got nil")
	}
}

func TestModelTypeJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ModelTypeCoding)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"coding"` {
		t.Errorf("Marshal = %s, want %q", data, `"coding"`)
	}

	var mt ModelType
	if err := json.Unmarshal([]byte(`"reasoning"`), &mt); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if mt != ModelTypeReasoning {
		t.Errorf("Unmarshal = %v, want %v", mt, ModelTypeReasoning)
	}
}

func TestModelTypePreferences(t *testing.T) {
	tests := []struct {
		modelType     ModelType
		wantOpenAI    string
		wantAnthropic string
		wantMaxTokens int
	}{
		{ModelTypeCoding, "gpt-4o", "claude-3-5-sonnet-20241022", 4096},
		{ModelTypeReasoning, "gpt-4o", "claude-3-5-sonnet-20241022", 8192},
		{ModelTypeCreative, "gpt-4o", "claude-3-5-sonnet-20241022", 4096},
		{ModelTypeFast, "gpt-3.5-turbo", "claude-3-5-haiku-20241022", 1024},
		{ModelTypeGeneral, "gpt-4o-mini", "claude-3-5-haiku-20241022", 2048},
	}
	for _, tt := range tests {
		if got := tt.modelType.PreferredOpenAIModel(); got != tt.wantOpenAI {
			t.Errorf("%v.PreferredOpenAIModel() = %q, want %q", tt.modelType, got, tt.wantOpenAI)
		}
		if got := tt.modelType.PreferredAnthropicModel(); got != tt.wantAnthropic {
			t.Errorf("%v.PreferredAnthropicModel() = %q, want %q", tt.modelType, got, tt.wantAnthropic)
		}
		if got := tt.modelType.TypicalMaxTokens(); got != tt.wantMaxTokens {
			t.Errorf("%v.TypicalMaxTokens() = %d, want %d", tt.modelType, got, tt.wantMaxTokens)
		}
	}
}

func TestNewTokenUsage(t *testing.T) {
	usage := NewTokenUsage(10, 25)
	if usage.TotalTokens != 35 {
		t.Errorf("TotalTokens = %d, want 35", usage.TotalTokens)
	}
	if usage.PromptTokens != 10 || usage.CompletionTokens != 25 {
		t.Errorf("usage = %+v, want prompt 10 completion 25", usage)
	}
}

func TestHealthStatus(t *testing.T) {
	if !HealthStatusHealthy.IsHealthy() {
		t.Error("HealthStatusHealthy.IsHealthy() = false, want true")
	}
	if HealthStatusDegraded.IsHealthy() {
		t.Error("HealthStatusDegraded.IsHealthy() = true, want false")
	}
	if HealthStatusUnhealthy.IsHealthy() {
		t.Error("HealthStatusUnhealthy.IsHealthy() = true, want false")
	}
	if got := HealthStatusDegraded.String(); got != "degraded" {
		t.Errorf("String() = %q, want %q", got, "degraded")
	}
}

func TestHealthCheckResultDetails(t *testing.T) {
	result := NewHealthCheckResult(HealthStatusHealthy).
		WithDetail("service", "test").
		WithDetail("region", "local")

	if result.Details["service"] != "test" || result.Details["region"] != "local" {
		t.Errorf("Details = %v, want service/region entries", result.Details)
	}
	if result.CheckedAt.IsZero() {
		t.Error("CheckedAt is zero, want current time")
	}
}
