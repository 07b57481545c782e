package services_test

import (
	"testing"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
	"github.com/renjie/prism-units/pkg/core/services"
)

// Define a test-specific rule
type upperBoundTestRule struct{}

func (r *upperBoundTestRule) Name() string { return "upper-bound" }

func (r *upperBoundTestRule) Check(_ ports.RecordContext, rec domain.UnitDescriptor) ports.CheckResult {
	if rec.Multiplier > 1e6 {
		return ports.CheckResult{Record: rec, Reason: "too large", Cause: domain.ErrInvalidRecord}
	}
	return ports.CheckResult{Record: rec, Passed: true}
}

// suffixTestRule 修正记录: 给符号追加后缀
type suffixTestRule struct{}

func (r *suffixTestRule) Name() string { return "suffix" }

func (r *suffixTestRule) Check(_ ports.RecordContext, rec domain.UnitDescriptor) ports.CheckResult {
	rec.Symbol += "!"
	return ports.CheckResult{Record: rec, Passed: true, Corrected: true}
}

func TestChainSanitizer(t *testing.T) {
	sanitizer := services.NewSanitizer(&suffixTestRule{}, &upperBoundTestRule{})

	raw := []domain.UnitDescriptor{
		domain.LinearUnit(domain.Length, "m", "m", 1),
		// duplicate id
		domain.LinearUnit(domain.Length, "m", "m", 1),
		// rule failure
		domain.LinearUnit(domain.Length, "ly", "ly", 9.46e15),
		// same id, other dimension
		domain.LinearUnit(domain.Time, "m", "min", 60),
		// bad dimension
		domain.LinearUnit(domain.Dimension(-3), "x", "x", 1),
	}

	valid, rejected := sanitizer.Clean(raw)

	if len(valid) != 2 {
		t.Fatalf("Expected 2 valid records, got %d", len(valid))
	}
	if valid[0].Symbol != "m!" || valid[1].Symbol != "min!" {
		t.Errorf("corrections not applied: %q %q", valid[0].Symbol, valid[1].Symbol)
	}

	if len(rejected) != 3 {
		t.Fatalf("Expected 3 rejected records, got %d", len(rejected))
	}
	wantRules := []string{"duplicate", "upper-bound", "dimension"}
	for i, rule := range wantRules {
		if rejected[i].Rule != rule {
			t.Errorf("rejected[%d]: expected rule %s, got %s", i, rule, rejected[i].Rule)
		}
		if rejected[i].Cause == nil {
			t.Errorf("rejected[%d]: missing cause", i)
		}
	}
	// 被拒记录保留原始值 (未经修正)
	if rejected[1].Record.Symbol != "ly" {
		t.Errorf("rejected record should be the original, got %q", rejected[1].Record.Symbol)
	}
}

func TestChainSanitizerEmpty(t *testing.T) {
	valid, rejected := services.NewSanitizer().Clean(nil)
	if valid != nil || rejected != nil {
		t.Errorf("expected nil results for empty input")
	}
}
