package services

import (
	"errors"
	"fmt"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// KindTable 命名量注册表
// 实现了 ports.KindResolver 接口；按注册顺序保存，构建后只读
type KindTable struct {
	defs      []domain.KindDefinition
	byPattern map[domain.Pattern]domain.Kind
}

// NewKindTable 构建命名量表
// 指数模式必须唯一且不含溢出指数；种类名称必须唯一且不能占用通用回退 KindDerived
func NewKindTable(defs ...domain.KindDefinition) (*KindTable, error) {
	t := &KindTable{byPattern: make(map[domain.Pattern]domain.Kind, len(defs))}
	kinds := make(map[domain.Kind]bool, len(defs))

	var errs []error
	for _, def := range defs {
		switch {
		case def.Kind == "" || def.Kind == domain.KindDerived:
			errs = append(errs, fmt.Errorf("%w: reserved or empty kind name %q", domain.ErrAmbiguousKind, def.Kind))
			continue
		case !def.Pattern.Valid():
			errs = append(errs, fmt.Errorf("%w: kind %s has an invalid exponent", domain.ErrExponentOverflow, def.Kind))
			continue
		case kinds[def.Kind]:
			errs = append(errs, fmt.Errorf("%w: kind %s registered twice", domain.ErrAmbiguousKind, def.Kind))
			continue
		}
		if other, ok := t.byPattern[def.Pattern]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s share the same exponent pattern", domain.ErrAmbiguousKind, other, def.Kind))
			continue
		}
		kinds[def.Kind] = true
		t.byPattern[def.Pattern] = def.Kind
		t.defs = append(t.defs, def)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("build kind table: %w", errors.Join(errs...))
	}
	return t, nil
}

// Resolve 实现 ports.KindResolver.Resolve
//
//   - 含溢出指数: 返回 ErrExponentOverflow
//   - 精确匹配某个命名量: 返回该种类，数值与向量 (含具体单位) 原样保留
//   - 无匹配: 返回通用 Derived 量，仍可继续参与乘除
func (t *KindTable) Resolve(v domain.Vector, magnitude float64) (domain.Quantity, error) {
	if !v.Valid() {
		return domain.Quantity{}, fmt.Errorf("resolve %s: %w", v, domain.ErrExponentOverflow)
	}
	if kind, ok := t.byPattern[v.Pattern()]; ok {
		return domain.Compose(kind, v, magnitude), nil
	}
	return domain.Compose(domain.KindDerived, v, magnitude), nil
}

// Lookup returns the kind registered for an exponent pattern.
func (t *KindTable) Lookup(p domain.Pattern) (domain.Kind, bool) {
	kind, ok := t.byPattern[p]
	return kind, ok
}

// Definitions 按注册顺序返回全部命名量
func (t *KindTable) Definitions() []domain.KindDefinition {
	out := make([]domain.KindDefinition, len(t.defs))
	copy(out, t.defs)
	return out
}
