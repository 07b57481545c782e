package domain

import "strconv"

// Exponent 量纲指数
// 取值范围 [-5, 5]，超出范围的运算结果统一塌缩为 InvalidExponent (吸收态)
type Exponent int8

const (
	MinExponent Exponent = -5
	MaxExponent Exponent = 5

	// InvalidExponent 溢出哨兵: 与任何指数运算结果仍为 InvalidExponent
	InvalidExponent Exponent = -128
)

// NewExponent 将整数映射为指数，超出 [-5, 5] 时返回 InvalidExponent
func NewExponent(n int) Exponent {
	if n < int(MinExponent) || n > int(MaxExponent) {
		return InvalidExponent
	}
	return Exponent(n)
}

// Valid reports whether e is a concrete exponent in [-5, 5].
func (e Exponent) Valid() bool {
	return e >= MinExponent && e <= MaxExponent
}

// Add 指数加法 (乘法合成时使用)
func (e Exponent) Add(o Exponent) Exponent {
	if !e.Valid() || !o.Valid() {
		return InvalidExponent
	}
	return NewExponent(int(e) + int(o))
}

// Neg 指数取反 (除法合成时使用)
func (e Exponent) Neg() Exponent {
	if !e.Valid() {
		return InvalidExponent
	}
	return -e
}

func (e Exponent) String() string {
	if !e.Valid() {
		return "Invalid"
	}
	return strconv.Itoa(int(e))
}
