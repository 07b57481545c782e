package domain

// Op 量纲合成的运算类型
type Op int

const (
	OpMultiply Op = iota
	OpDivide
)

func (o Op) String() string {
	if o == OpDivide {
		return "divide"
	}
	return "multiply"
}

// Combine 按维度逐一合成两个量纲向量
//
// 指数: 乘法 ea + eb，除法 ea + (-eb)；溢出结果为 InvalidExponent 并向后传递，由解析阶段拒绝。
// 单位:
//   - ea == 0: 采用 b 的单位 (零次幂不施加单位约束)
//   - eb == 0: 采用 a 的单位
//   - ua == ub: 保留该单位
//   - 否则返回 *UnitConflictError，不做隐式换算
//
// 结果指数为 0 的维度单位恢复为 Unconstrained。
func Combine(a, b Vector, op Op) (Vector, error) {
	var out Vector
	for i := range out {
		sa, sb := a[i], b[i]

		eb := sb.Exp
		if op == OpDivide {
			eb = eb.Neg()
		}
		exp := sa.Exp.Add(eb)

		var unit UnitID
		switch {
		case sa.Exp == 0:
			unit = sb.Unit
		case sb.Exp == 0:
			unit = sa.Unit
		case sa.Unit == sb.Unit:
			unit = sa.Unit
		default:
			return Vector{}, &UnitConflictError{Dimension: Dimension(i), Left: sa.Unit, Right: sb.Unit}
		}

		if exp == 0 {
			unit = Unconstrained
		}
		out[i] = Slot{Exp: exp, Unit: unit}
	}
	return out, nil
}
