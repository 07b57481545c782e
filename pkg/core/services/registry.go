package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
	"github.com/renjie/prism-units/pkg/core/services/rules"
)

// UnitRegistry 单位注册表
// 实现了 ports.UnitRegistry 接口；构建后只读，并发读取无需加锁
type UnitRegistry struct {
	units     [domain.NumDimensions]map[domain.UnitID]domain.UnitDescriptor
	ordered   [domain.NumDimensions][]domain.UnitDescriptor
	base      [domain.NumDimensions]domain.UnitID
	sanitizer ports.CatalogSanitizer
	logger    *slog.Logger
}

// RegistryOption 定义注册表配置选项函数 (Functional Option Pattern)
type RegistryOption func(*UnitRegistry)

// WithRecordRules 替换默认的目录校验规则
func WithRecordRules(recordRules ...ports.RecordRule) RegistryOption {
	return func(r *UnitRegistry) {
		r.sanitizer = NewSanitizer(recordRules...)
	}
}

// WithRegistryLogger 设置日志
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *UnitRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// DefaultRecordRules 默认校验规则: 倍率为有限正数、仿射函数成对可逆、符号规范化
func DefaultRecordRules() []ports.RecordRule {
	return []ports.RecordRule{
		&rules.MultiplierRule{},
		&rules.AffineRule{},
		&rules.SymbolRule{Action: domain.ActionCorrect},
	}
}

// NewUnitRegistry 由目录记录构建注册表
//
// 构建分两步:
//  1. 规则链清洗: 非法量纲、重复 ID、非法倍率等记录被拒绝
//  2. 结构校验: 每个出现的量纲必须恰好有一个 multiplier == 1 的线性基准单位
//
// 任何一条记录被拒或结构校验失败都会使构建失败，所有原因通过 errors.Join 一并返回。
func NewUnitRegistry(records []domain.UnitDescriptor, opts ...RegistryOption) (*UnitRegistry, error) {
	r := &UnitRegistry{
		sanitizer: NewSanitizer(DefaultRecordRules()...),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	valid, rejected := r.sanitizer.Clean(records)

	var errs []error
	for _, rej := range rejected {
		cause := rej.Cause
		if cause == nil {
			cause = domain.ErrInvalidRecord
		}
		r.logger.Warn("catalog record rejected",
			"dimension", rej.Record.Dimension,
			"unit", rej.Record.ID,
			"rule", rej.Rule,
			"reason", rej.Reason)
		errs = append(errs, fmt.Errorf("unit %s/%q (%s rule): %w: %s", rej.Record.Dimension, rej.Record.ID, rej.Rule, cause, rej.Reason))
	}

	for _, u := range valid {
		d := u.Dimension
		if r.units[d] == nil {
			r.units[d] = make(map[domain.UnitID]domain.UnitDescriptor)
		}
		r.units[d][u.ID] = u
		r.ordered[d] = append(r.ordered[d], u)
	}

	for _, d := range domain.Dimensions() {
		if len(r.ordered[d]) == 0 {
			continue
		}
		var bases []domain.UnitID
		for _, u := range r.ordered[d] {
			if u.IsBase() {
				bases = append(bases, u.ID)
			}
		}
		if len(bases) != 1 {
			errs = append(errs, fmt.Errorf("%w: %s has %d units with multiplier 1 %q, want exactly one", domain.ErrBaseUnit, d, len(bases), bases))
			continue
		}
		r.base[d] = bases[0]
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("build unit registry: %w", errors.Join(errs...))
	}

	r.logger.Info("unit registry loaded", "units", len(valid), "dimensions", r.dimensionCount())
	return r, nil
}

func (r *UnitRegistry) dimensionCount() int {
	n := 0
	for _, units := range r.ordered {
		if len(units) > 0 {
			n++
		}
	}
	return n
}

// Descriptor 实现 ports.UnitRegistry.Descriptor
func (r *UnitRegistry) Descriptor(dim domain.Dimension, unit domain.UnitID) (domain.UnitDescriptor, error) {
	if !dim.Valid() {
		return domain.UnitDescriptor{}, fmt.Errorf("%w: %s", domain.ErrUnknownDimension, dim)
	}
	if unit == domain.Unconstrained {
		return domain.UnitDescriptor{}, fmt.Errorf("%w: unconstrained placeholder is not a unit of %s", domain.ErrUnregisteredUnit, dim)
	}
	u, ok := r.units[dim][unit]
	if !ok {
		return domain.UnitDescriptor{}, fmt.Errorf("%w: %q in %s", domain.ErrUnregisteredUnit, unit, dim)
	}
	return u, nil
}

// ToBase 实现 ports.UnitRegistry.ToBase
func (r *UnitRegistry) ToBase(dim domain.Dimension, unit domain.UnitID, value float64) (float64, error) {
	u, err := r.Descriptor(dim, unit)
	if err != nil {
		return 0, err
	}
	return u.ConvertToBase(value), nil
}

// FromBase 实现 ports.UnitRegistry.FromBase
func (r *UnitRegistry) FromBase(dim domain.Dimension, unit domain.UnitID, value float64) (float64, error) {
	u, err := r.Descriptor(dim, unit)
	if err != nil {
		return 0, err
	}
	return u.ConvertFromBase(value), nil
}

// Symbol 实现 ports.UnitRegistry.Symbol
func (r *UnitRegistry) Symbol(dim domain.Dimension, unit domain.UnitID) (string, error) {
	u, err := r.Descriptor(dim, unit)
	if err != nil {
		return "", err
	}
	return u.Symbol, nil
}

// MustSymbol is like Symbol but panics on an unregistered unit.
// Use only where the unit is known to come from this registry.
func (r *UnitRegistry) MustSymbol(dim domain.Dimension, unit domain.UnitID) string {
	s, err := r.Symbol(dim, unit)
	if err != nil {
		panic(err)
	}
	return s
}

// BaseUnit 实现 ports.UnitRegistry.BaseUnit
func (r *UnitRegistry) BaseUnit(dim domain.Dimension) (domain.UnitID, error) {
	if !dim.Valid() {
		return domain.Unconstrained, fmt.Errorf("%w: %s", domain.ErrUnknownDimension, dim)
	}
	if r.base[dim] == domain.Unconstrained {
		return domain.Unconstrained, fmt.Errorf("%w: no units registered for %s", domain.ErrUnregisteredUnit, dim)
	}
	return r.base[dim], nil
}

// Units 实现 ports.UnitRegistry.Units
func (r *UnitRegistry) Units(dim domain.Dimension) []domain.UnitDescriptor {
	if !dim.Valid() {
		return nil
	}
	out := make([]domain.UnitDescriptor, len(r.ordered[dim]))
	copy(out, r.ordered[dim])
	return out
}
