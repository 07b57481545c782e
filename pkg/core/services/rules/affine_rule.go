package rules

import (
	"fmt"
	"math"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// affineSamples 用于验证 FromBase(ToBase(v)) ≈ v 的采样值
var affineSamples = []float64{-40, 0, 1, 100}

// AffineRule 仿射单位的换算函数必须成对出现，且互为逆运算
type AffineRule struct {
	Tolerance float64
}

func (r *AffineRule) Name() string { return "affine" }

func (r *AffineRule) Check(_ ports.RecordContext, rec domain.UnitDescriptor) ports.CheckResult {
	if !rec.IsAffine() {
		return ports.CheckResult{Record: rec, Passed: true}
	}
	if rec.ToBase == nil || rec.FromBase == nil {
		return ports.CheckResult{
			Record: rec,
			Reason: fmt.Sprintf("affine unit %q needs both to-base and from-base functions", rec.ID),
			Cause:  domain.ErrInvalidRecord,
		}
	}

	tol := r.Tolerance
	if tol <= 0 {
		tol = 1e-9
	}
	for _, v := range affineSamples {
		back := rec.FromBase(rec.ToBase(v))
		if math.Abs(back-v) > tol*math.Max(1, math.Abs(v)) {
			return ports.CheckResult{
				Record: rec,
				Reason: fmt.Sprintf("affine unit %q does not round-trip %v (got %v)", rec.ID, v, back),
				Cause:  domain.ErrInvalidRecord,
			}
		}
	}
	return ports.CheckResult{Record: rec, Passed: true}
}
