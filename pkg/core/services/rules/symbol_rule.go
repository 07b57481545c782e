package rules

import (
	"fmt"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// lookalikes 目录中常见的兼容字符 -> 规范字符
// NFC 已处理 K (开尔文符号) 与 Ω (欧姆符号)，但不处理兼容映射 µ
var lookalikes = map[rune]rune{
	'µ': 'μ', // MICRO SIGN -> GREEK SMALL LETTER MU
}

// NormalizeSymbol 将符号规范化为 NFC 并折叠兼容字符
func NormalizeSymbol(s string) (string, error) {
	t := transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
		if m, ok := lookalikes[r]; ok {
			return m
		}
		return r
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return out, nil
}

// SymbolRule 规范化单位符号，并拒绝同一量纲内的重复符号
// Action 为 ActionCorrect 时修正非规范符号；ActionReject 时直接拒绝
type SymbolRule struct {
	Action domain.RuleAction
}

func (r *SymbolRule) Name() string { return "symbol" }

func (r *SymbolRule) Check(ctx ports.RecordContext, rec domain.UnitDescriptor) ports.CheckResult {
	normalized, err := NormalizeSymbol(rec.Symbol)
	if err != nil {
		return ports.CheckResult{
			Record: rec,
			Reason: fmt.Sprintf("symbol %q of %q: %v", rec.Symbol, rec.ID, err),
			Cause:  domain.ErrInvalidRecord,
		}
	}

	for _, other := range ctx.Registered {
		// 空符号 (纯计数单位) 允许多个
		if normalized != "" && other.Symbol == normalized {
			return ports.CheckResult{
				Record: rec,
				Reason: fmt.Sprintf("symbol %q of %q already used by %q", normalized, rec.ID, other.ID),
				Cause:  domain.ErrDuplicateUnit,
			}
		}
	}

	if normalized == rec.Symbol {
		return ports.CheckResult{Record: rec, Passed: true}
	}

	switch r.Action {
	case domain.ActionCorrect:
		corrected := rec
		corrected.Symbol = normalized
		return ports.CheckResult{
			Record:    corrected,
			Passed:    true,
			Corrected: true,
			Reason:    fmt.Sprintf("symbol %q normalized to %q", rec.Symbol, normalized),
		}

	case domain.ActionReject:
		fallthrough
	default:
		return ports.CheckResult{
			Record: rec,
			Reason: fmt.Sprintf("symbol %q of %q is not normalized (want %q)", rec.Symbol, rec.ID, normalized),
			Cause:  domain.ErrInvalidRecord,
		}
	}
}
