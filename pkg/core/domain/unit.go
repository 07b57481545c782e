package domain

// UnitID 单位标识，在同一量纲内唯一
type UnitID string

// Unconstrained 占位单位: 指数为 0 的量纲上不施加任何单位约束
const Unconstrained UnitID = ""

// UnitDescriptor 目录中的一条单位记录
//
// 线性单位: value_base = value * Multiplier
// 仿射单位 (温度): 由 ToBase / FromBase 成对给出，Multiplier 仅作说明用途
type UnitDescriptor struct {
	Dimension  Dimension
	ID         UnitID
	Symbol     string
	Multiplier float64

	ToBase   func(float64) float64
	FromBase func(float64) float64
}

// LinearUnit builds a descriptor converted to base by a single multiplier.
func LinearUnit(dim Dimension, id UnitID, symbol string, multiplier float64) UnitDescriptor {
	return UnitDescriptor{Dimension: dim, ID: id, Symbol: symbol, Multiplier: multiplier}
}

// AffineUnit builds a descriptor with value_base = value*scale + offset.
func AffineUnit(dim Dimension, id UnitID, symbol string, scale, offset float64) UnitDescriptor {
	return UnitDescriptor{
		Dimension:  dim,
		ID:         id,
		Symbol:     symbol,
		Multiplier: scale,
		ToBase:     func(v float64) float64 { return v*scale + offset },
		FromBase:   func(v float64) float64 { return (v - offset) / scale },
	}
}

// IsAffine reports whether the unit carries its own conversion functions.
func (u UnitDescriptor) IsAffine() bool {
	return u.ToBase != nil || u.FromBase != nil
}

// IsBase 基准单位: 线性且倍率为 1
func (u UnitDescriptor) IsBase() bool {
	return !u.IsAffine() && u.Multiplier == 1
}

// ConvertToBase 按本单位解释 v，换算为基准单位下的值
func (u UnitDescriptor) ConvertToBase(v float64) float64 {
	if u.ToBase != nil {
		return u.ToBase(v)
	}
	return v * u.Multiplier
}

// ConvertFromBase 将基准单位下的值换算为本单位
func (u UnitDescriptor) ConvertFromBase(v float64) float64 {
	if u.FromBase != nil {
		return u.FromBase(v)
	}
	return v / u.Multiplier
}
