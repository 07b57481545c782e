package rules

import (
	"fmt"
	"math"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// MultiplierRule 检查倍率是否为有限正数，并可选地限制在 [Min, Max] 范围内
// Max <= 0 表示不设上限
type MultiplierRule struct {
	Min float64
	Max float64
}

func (r *MultiplierRule) Name() string { return "multiplier" }

// Check 检查单位倍率
func (r *MultiplierRule) Check(_ ports.RecordContext, rec domain.UnitDescriptor) ports.CheckResult {
	m := rec.Multiplier
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return ports.CheckResult{
			Record: rec,
			Reason: fmt.Sprintf("multiplier %v of %q must be finite and positive", m, rec.ID),
			Cause:  domain.ErrInvalidRecord,
		}
	}
	if m < r.Min || (r.Max > 0 && m > r.Max) {
		return ports.CheckResult{
			Record: rec,
			Reason: fmt.Sprintf("multiplier %g of %q out of range [%g, %g]", m, rec.ID, r.Min, r.Max),
			Cause:  domain.ErrInvalidRecord,
		}
	}
	return ports.CheckResult{Record: rec, Passed: true}
}
