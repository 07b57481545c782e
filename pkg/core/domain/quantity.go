package domain

import "fmt"

// Quantity 带量纲标签的物理量 (值对象，不可变)
//
// magnitude 严格按 vector 中记录的单位解释；所有运算返回新的 Quantity。
// 基本量的 vector 只有一个量纲指数为 1，其单位即该量的单位。
type Quantity struct {
	magnitude float64
	kind      Kind
	vector    Vector
}

// Compose 由种类、量纲向量和数值组装一个量
// 仅供解析器与引擎使用，kind 须已由 KindResolver 判定；业务代码应通过
// Calculator.MakeQuantity 构造基本量。指数为 0 的槽位一律清空单位。
func Compose(kind Kind, vector Vector, magnitude float64) Quantity {
	for d := range vector {
		if vector[d].Exp == 0 {
			vector[d].Unit = Unconstrained
		}
	}
	return Quantity{magnitude: magnitude, kind: kind, vector: vector}
}

// Dimensionless returns a pure number carrying no unit in any dimension.
func Dimensionless(magnitude float64) Quantity {
	return Quantity{magnitude: magnitude, kind: KindDimensionless}
}

func (q Quantity) Magnitude() float64 { return q.magnitude }
func (q Quantity) Kind() Kind { return q.kind }
func (q Quantity) Vector() Vector { return q.vector }

// Dimension 基本量所在的量纲；导出量返回 false
func (q Quantity) Dimension() (Dimension, bool) {
	return q.vector.Dimension()
}

// Unit 基本量的单位；导出量返回 Unconstrained
func (q Quantity) Unit() UnitID {
	if d, ok := q.vector.Dimension(); ok {
		return q.vector[d].Unit
	}
	return Unconstrained
}

// IsDerived reports whether the quantity fell back to the generic Derived kind.
func (q Quantity) IsDerived() bool {
	return q.kind == KindDerived
}

// Scale 乘以无量纲标量，单位与量纲不变
func (q Quantity) Scale(k float64) Quantity {
	q.magnitude *= k
	return q
}

// Add 同量纲、同单位相加；不做隐式换算
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if err := q.sameUnits(o); err != nil {
		return Quantity{}, fmt.Errorf("add: %w", err)
	}
	q.magnitude += o.magnitude
	return q, nil
}

// Sub 同量纲、同单位相减
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if err := q.sameUnits(o); err != nil {
		return Quantity{}, fmt.Errorf("subtract: %w", err)
	}
	q.magnitude -= o.magnitude
	return q, nil
}

// Ratio 同种同单位量之比，结果为纯数
func (q Quantity) Ratio(o Quantity) (float64, error) {
	if err := q.sameUnits(o); err != nil {
		return 0, fmt.Errorf("ratio: %w", err)
	}
	return q.magnitude / o.magnitude, nil
}

func (q Quantity) sameUnits(o Quantity) error {
	if q.kind != o.kind || q.vector != o.vector {
		return fmt.Errorf("%w: %s(%s) vs %s(%s)", ErrDimensionMismatch, q.kind, q.vector, o.kind, o.vector)
	}
	return nil
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s(%v %s)", q.kind, q.magnitude, q.vector)
}
