package domain

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "units: " so failures are easy to grep.
// Callers match with errors.Is; context is added with fmt.Errorf("...: %w").
var (
	// ErrUnregisteredUnit 引用了目录中不存在的单位，或把 Unconstrained 占位符当作真实单位使用
	ErrUnregisteredUnit = errors.New("units: unregistered unit")

	// ErrDimensionMismatch 跨量纲/跨单位的加减，或跨量纲换算
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrUnitConflict 乘除时同一量纲两侧指数均非零但单位不同
	ErrUnitConflict = errors.New("units: unit conflict")

	// ErrExponentOverflow 结果指数超出 [-5, 5]，不可解析为任何量
	ErrExponentOverflow = errors.New("units: exponent overflow")

	// ErrUnknownDimension is returned when a catalog names a dimension that does not exist.
	ErrUnknownDimension = errors.New("units: unknown dimension")

	// ErrDuplicateUnit 同一量纲下重复注册相同单位 ID
	ErrDuplicateUnit = errors.New("units: duplicate unit")

	// ErrBaseUnit 量纲没有或有多个 multiplier == 1 的基准单位
	ErrBaseUnit = errors.New("units: base unit")

	// ErrInvalidRecord 目录记录字段非法 (倍率非有限正数、仿射函数不成对等)
	ErrInvalidRecord = errors.New("units: invalid catalog record")

	// ErrAmbiguousKind 两个命名量拥有相同的指数模式
	ErrAmbiguousKind = errors.New("units: ambiguous kind")
)

// UnitConflictError describes the dimension where two operands disagree on the unit.
type UnitConflictError struct {
	Dimension   Dimension
	Left, Right UnitID
}

func (e *UnitConflictError) Error() string {
	return fmt.Sprintf("%v: %s expressed in both %q and %q", ErrUnitConflict, e.Dimension, e.Left, e.Right)
}

func (e *UnitConflictError) Unwrap() error {
	return ErrUnitConflict
}
