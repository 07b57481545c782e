package ports

import "github.com/renjie/prism-units/pkg/core/domain"

// UnitRegistry 单位注册表 (只读)
// 构建完成后不可变，可被任意数量的调用方并发读取
type UnitRegistry interface {
	// Descriptor 查找单位记录；未注册或 Unconstrained 返回 ErrUnregisteredUnit
	Descriptor(dim domain.Dimension, unit domain.UnitID) (domain.UnitDescriptor, error)

	// ToBase value_base = value * multiplier(unit) (仿射单位使用自身的换算函数)
	ToBase(dim domain.Dimension, unit domain.UnitID, value float64) (float64, error)

	// FromBase value = value_base / multiplier(unit)
	FromBase(dim domain.Dimension, unit domain.UnitID, value float64) (float64, error)

	// Symbol 单位的展示符号
	Symbol(dim domain.Dimension, unit domain.UnitID) (string, error)

	// BaseUnit 量纲的基准单位 (multiplier == 1)
	BaseUnit(dim domain.Dimension) (domain.UnitID, error)

	// Units 量纲下的全部单位，按目录顺序
	Units(dim domain.Dimension) []domain.UnitDescriptor
}

// KindResolver 将量纲向量解析为命名量或通用 Derived 量
type KindResolver interface {
	Resolve(v domain.Vector, magnitude float64) (domain.Quantity, error)
}
