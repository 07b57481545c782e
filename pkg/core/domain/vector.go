package domain

import (
	"fmt"
	"strings"
)

// Slot 单个量纲上的 (指数, 单位) 对
// 不变式: Exp == 0 当且仅当 Unit == Unconstrained
type Slot struct {
	Exp  Exponent
	Unit UnitID
}

// Vector 量纲向量: 十个基本量纲各占一个 Slot，顺序与 Dimension 常量一致
type Vector [NumDimensions]Slot

// Pattern 只含指数的量纲模式，用于命名量匹配
type Pattern [NumDimensions]Exponent

// BaseVector returns the canonical vector of a base quantity: exponent 1 in
// dim expressed in unit, zero elsewhere.
func BaseVector(dim Dimension, unit UnitID) Vector {
	var v Vector
	v[dim] = Slot{Exp: 1, Unit: unit}
	return v
}

// Pattern 提取指数模式 (丢弃单位)
func (v Vector) Pattern() Pattern {
	var p Pattern
	for i, s := range v {
		p[i] = s.Exp
	}
	return p
}

// Exp returns the exponent of dimension d.
func (v Vector) Exp(d Dimension) Exponent {
	return v[d].Exp
}

// Unit returns the unit occupying dimension d (Unconstrained when the exponent is zero).
func (v Vector) Unit(d Dimension) UnitID {
	return v[d].Unit
}

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool {
	for _, s := range v {
		if s.Exp != 0 {
			return false
		}
	}
	return true
}

// Valid 所有指数均未溢出
func (v Vector) Valid() bool {
	for _, s := range v {
		if !s.Exp.Valid() {
			return false
		}
	}
	return true
}

// Dimension 若向量恰好是某个基本量纲的一次幂，返回该量纲
func (v Vector) Dimension() (Dimension, bool) {
	found := -1
	for i, s := range v {
		switch {
		case s.Exp == 0:
		case s.Exp == 1 && found < 0:
			found = i
		default:
			return 0, false
		}
	}
	if found < 0 {
		return 0, false
	}
	return Dimension(found), true
}

func (v Vector) String() string {
	var parts []string
	for i, s := range v {
		if s.Exp == 0 {
			continue
		}
		if s.Unit == Unconstrained {
			parts = append(parts, fmt.Sprintf("%s^%s", Dimension(i), s.Exp))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s[%s]^%s", Dimension(i), s.Unit, s.Exp))
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// NewPattern builds a pattern from dimension/exponent pairs; unset dimensions are zero.
func NewPattern(exps map[Dimension]int) Pattern {
	var p Pattern
	for d, e := range exps {
		p[d] = NewExponent(e)
	}
	return p
}

// Valid reports whether all exponents of the pattern are concrete.
func (p Pattern) Valid() bool {
	for _, e := range p {
		if !e.Valid() {
			return false
		}
	}
	return true
}
