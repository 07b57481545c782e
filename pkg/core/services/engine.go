package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// Engine 量纲运算引擎
// 实现了 ports.Calculator 接口；自身无可变状态，可并发使用
type Engine struct {
	registry ports.UnitRegistry
	kinds    ports.KindResolver
	logger   *slog.Logger
}

// EngineOption 定义配置选项函数 (Functional Option Pattern)
type EngineOption func(*Engine)

// WithRegistry 设置单位注册表
func WithRegistry(registry ports.UnitRegistry) EngineOption {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithKinds 设置命名量解析器
func WithKinds(kinds ports.KindResolver) EngineOption {
	return func(e *Engine) {
		e.kinds = kinds
	}
}

// WithLogger 设置日志 (默认 slog.Default())
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine 初始化运算引擎
// 注册表与命名量解析器为必需依赖
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		return nil, errors.New("unit registry not configured")
	}
	if e.kinds == nil {
		return nil, errors.New("kind resolver not configured")
	}
	return e, nil
}

// Registry exposes the registry the engine was built with.
func (e *Engine) Registry() ports.UnitRegistry {
	return e.registry
}

// MakeQuantity 实现 ports.Calculator.MakeQuantity
func (e *Engine) MakeQuantity(dim domain.Dimension, unit domain.UnitID, magnitude float64) (domain.Quantity, error) {
	if _, err := e.registry.Descriptor(dim, unit); err != nil {
		return domain.Quantity{}, fmt.Errorf("make quantity: %w", err)
	}
	return domain.Compose(domain.BaseKind(dim), domain.BaseVector(dim, unit), magnitude), nil
}

// Dimensionless 构造纯数
func (e *Engine) Dimensionless(magnitude float64) domain.Quantity {
	return domain.Dimensionless(magnitude)
}

// Convert 实现 ports.Calculator.Convert
// 仅适用于单一量纲的一次幂 (基本量)；目标单位必须属于同一量纲
func (e *Engine) Convert(q domain.Quantity, target domain.UnitID) (domain.Quantity, error) {
	dim, ok := q.Dimension()
	if !ok {
		return domain.Quantity{}, fmt.Errorf("convert %s: %w: not a single-dimension quantity", q.Kind(), domain.ErrDimensionMismatch)
	}

	if _, err := e.registry.Descriptor(dim, target); err != nil {
		if other, found := e.foreignDimension(dim, target); found {
			return domain.Quantity{}, fmt.Errorf("convert %s to %q: %w: unit belongs to %s", dim, target, domain.ErrDimensionMismatch, other)
		}
		return domain.Quantity{}, fmt.Errorf("convert %s: %w", dim, err)
	}

	base, err := e.registry.ToBase(dim, q.Unit(), q.Magnitude())
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("convert %s: %w", dim, err)
	}
	value, err := e.registry.FromBase(dim, target, base)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("convert %s: %w", dim, err)
	}
	return domain.Compose(q.Kind(), domain.BaseVector(dim, target), value), nil
}

// ToBase 换算为所在量纲的基准单位
func (e *Engine) ToBase(q domain.Quantity) (domain.Quantity, error) {
	dim, ok := q.Dimension()
	if !ok {
		return domain.Quantity{}, fmt.Errorf("to base %s: %w: not a single-dimension quantity", q.Kind(), domain.ErrDimensionMismatch)
	}
	base, err := e.registry.BaseUnit(dim)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("to base: %w", err)
	}
	return e.Convert(q, base)
}

// foreignDimension 查找注册了该单位 ID 的其他量纲
func (e *Engine) foreignDimension(self domain.Dimension, unit domain.UnitID) (domain.Dimension, bool) {
	if unit == domain.Unconstrained {
		return 0, false
	}
	for _, d := range domain.Dimensions() {
		if d == self {
			continue
		}
		if _, err := e.registry.Descriptor(d, unit); err == nil {
			return d, true
		}
	}
	return 0, false
}

// Add 实现 ports.Calculator.Add
func (e *Engine) Add(a, b domain.Quantity) (domain.Quantity, error) {
	return a.Add(b)
}

// Subtract 实现 ports.Calculator.Subtract
func (e *Engine) Subtract(a, b domain.Quantity) (domain.Quantity, error) {
	return a.Sub(b)
}

// Scale 实现 ports.Calculator.Scale
func (e *Engine) Scale(q domain.Quantity, k float64) domain.Quantity {
	return q.Scale(k)
}

// Multiply 实现 ports.Calculator.Multiply
func (e *Engine) Multiply(a, b domain.Quantity) (domain.Quantity, error) {
	return e.combine(a, b, domain.OpMultiply)
}

// Divide 实现 ports.Calculator.Divide
func (e *Engine) Divide(a, b domain.Quantity) (domain.Quantity, error) {
	return e.combine(a, b, domain.OpDivide)
}

// combine 合成量纲向量，数值按各自当前单位直接相乘/相除 (不做隐式换算)，再交给解析器
func (e *Engine) combine(a, b domain.Quantity, op domain.Op) (domain.Quantity, error) {
	vec, err := domain.Combine(a.Vector(), b.Vector(), op)
	if err != nil {
		e.logger.Debug("quantity combination rejected",
			"op", op,
			"left", a.Kind(),
			"right", b.Kind(),
			"error", err)
		return domain.Quantity{}, fmt.Errorf("%s: %w", op, err)
	}

	magnitude := a.Magnitude() * b.Magnitude()
	if op == domain.OpDivide {
		magnitude = a.Magnitude() / b.Magnitude()
	}

	q, err := e.kinds.Resolve(vec, magnitude)
	if err != nil {
		e.logger.Debug("quantity resolution failed", "op", op, "vector", vec.String(), "error", err)
		return domain.Quantity{}, fmt.Errorf("%s: %w", op, err)
	}
	return q, nil
}

// Symbol 实现 ports.Calculator.Symbol
func (e *Engine) Symbol(q domain.Quantity) (string, error) {
	if dim, ok := q.Dimension(); ok {
		return e.registry.Symbol(dim, q.Unit())
	}
	return CompositeSymbol(e.registry, q.Vector())
}
