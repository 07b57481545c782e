package factory

import (
	"fmt"
	"sync"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
	"github.com/renjie/prism-units/pkg/core/services/rules"
)

// 内置规则名称
const (
	RuleMultiplier = "multiplier"
	RuleAffine     = "affine"
	RuleSymbol     = "symbol"
)

// RuleBuilder defines the contract for creating a specific rule logic
type RuleBuilder func(params map[string]interface{}, action domain.RuleAction) (ports.RecordRule, error)

// RuleFactory is the registry for all available catalog rule types
type RuleFactory struct {
	builders map[string]RuleBuilder
	mu       sync.RWMutex
}

var (
	ruleInstance *RuleFactory
	ruleOnce     sync.Once
)

// GetRuleFactory returns the singleton instance
func GetRuleFactory() *RuleFactory {
	ruleOnce.Do(func() {
		ruleInstance = NewRuleFactory()
	})
	return ruleInstance
}

// NewRuleFactory creates a new RuleFactory instance with built-in rules registered
// This constructor is useful for testing where you need isolated factory instances
func NewRuleFactory() *RuleFactory {
	f := &RuleFactory{
		builders: make(map[string]RuleBuilder),
	}
	f.Register(RuleMultiplier, buildMultiplierRule)
	f.Register(RuleAffine, buildAffineRule)
	f.Register(RuleSymbol, buildSymbolRule)
	return f
}

// Register adds or overrides a rule builder
func (f *RuleFactory) Register(name string, builder RuleBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[name] = builder
}

// CreateRule instantiates a rule strategy based on configuration
func (f *RuleFactory) CreateRule(cfg domain.RuleConfig) (ports.RecordRule, error) {
	f.mu.RLock()
	builder, ok := f.builders[cfg.Name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no builder registered for rule: %s", cfg.Name)
	}
	return builder(cfg.Parameters, cfg.Action)
}

// CreateRules instantiates rules in order, stopping at the first failure.
func (f *RuleFactory) CreateRules(cfgs ...domain.RuleConfig) ([]ports.RecordRule, error) {
	out := make([]ports.RecordRule, 0, len(cfgs))
	for _, cfg := range cfgs {
		r, err := f.CreateRule(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// optionalFloat 读取可选的数值参数
func optionalFloat(params map[string]interface{}, key string) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("invalid parameter %s: need float, got %T", key, raw)
}

func buildMultiplierRule(params map[string]interface{}, _ domain.RuleAction) (ports.RecordRule, error) {
	min, err := optionalFloat(params, "min")
	if err != nil {
		return nil, fmt.Errorf("multiplier rule: %w", err)
	}
	max, err := optionalFloat(params, "max")
	if err != nil {
		return nil, fmt.Errorf("multiplier rule: %w", err)
	}
	if max > 0 && min > max {
		return nil, fmt.Errorf("multiplier rule: min %g greater than max %g", min, max)
	}
	return &rules.MultiplierRule{Min: min, Max: max}, nil
}

func buildAffineRule(params map[string]interface{}, _ domain.RuleAction) (ports.RecordRule, error) {
	tol, err := optionalFloat(params, "tolerance")
	if err != nil {
		return nil, fmt.Errorf("affine rule: %w", err)
	}
	return &rules.AffineRule{Tolerance: tol}, nil
}

func buildSymbolRule(_ map[string]interface{}, action domain.RuleAction) (ports.RecordRule, error) {
	switch action {
	case "":
		action = domain.ActionCorrect
	case domain.ActionCorrect, domain.ActionReject:
	default:
		return nil, fmt.Errorf("symbol rule: unsupported action %q", action)
	}
	return &rules.SymbolRule{Action: action}, nil
}
