package services

import (
	"fmt"
	"strings"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

var superscripts = map[domain.Exponent]string{
	2: "²",
	3: "³",
	4: "⁴",
	5: "⁵",
}

// CompositeSymbol 由向量中的具体单位拼出复合符号
// 例如 km², km/s, m/s², kg·m²/s²；纯数返回空串
func CompositeSymbol(registry ports.UnitRegistry, v domain.Vector) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("symbol %s: %w", v, domain.ErrExponentOverflow)
	}

	var num, den []string
	for _, d := range domain.Dimensions() {
		slot := v[d]
		if slot.Exp == 0 {
			continue
		}
		sym, err := registry.Symbol(d, slot.Unit)
		if err != nil {
			return "", fmt.Errorf("symbol %s: %w", v, err)
		}
		// 无符号单位 (如 single) 不占位
		if sym == "" {
			continue
		}
		if slot.Exp > 0 {
			num = append(num, sym+superscripts[slot.Exp])
		} else {
			den = append(den, sym+superscripts[slot.Exp.Neg()])
		}
	}

	var b strings.Builder
	switch {
	case len(num) > 0:
		b.WriteString(strings.Join(num, "·"))
	case len(den) > 0:
		b.WriteString("1")
	}
	switch len(den) {
	case 0:
	case 1:
		b.WriteString("/" + den[0])
	default:
		b.WriteString("/(" + strings.Join(den, "·") + ")")
	}
	return b.String(), nil
}
