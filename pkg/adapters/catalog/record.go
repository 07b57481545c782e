// Package catalog 单位目录文件导入 (CSV / JSON / YAML)
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// rawRecord 定义目录文件中的扁平记录结构
// offset 非空时按仿射单位处理: value_base = value*multiplier + offset
type rawRecord struct {
	Dimension  string
	ID         string
	Symbol     string
	Multiplier string
	Offset     string
}

var requiredColumns = []string{"dimension", "id", "multiplier"}

// toDescriptor 将扁平记录转换为领域对象
// 只做语法层面的解析; 倍率取值、符号冲突等语义校验由注册表的规则链负责
func toDescriptor(r rawRecord) (domain.UnitDescriptor, error) {
	dim, err := domain.ParseDimension(strings.TrimSpace(r.Dimension))
	if err != nil {
		return domain.UnitDescriptor{}, err
	}

	id := strings.TrimSpace(r.ID)
	if id == "" {
		return domain.UnitDescriptor{}, fmt.Errorf("%w: id is empty", domain.ErrInvalidRecord)
	}

	mult, err := parseNumber("multiplier", r.Multiplier)
	if err != nil {
		return domain.UnitDescriptor{}, err
	}

	if strings.TrimSpace(r.Offset) == "" {
		return domain.LinearUnit(dim, domain.UnitID(id), r.Symbol, mult), nil
	}
	offset, err := parseNumber("offset", r.Offset)
	if err != nil {
		return domain.UnitDescriptor{}, err
	}
	if mult == 0 {
		return domain.UnitDescriptor{}, fmt.Errorf("%w: affine unit %q needs a non-zero multiplier", domain.ErrInvalidRecord, id)
	}
	return domain.AffineUnit(dim, domain.UnitID(id), r.Symbol, mult, offset), nil
}

func parseNumber(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is empty", domain.ErrInvalidRecord, field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidRecord, field, s)
	}
	return v, nil
}

// collect 统一的逐条转换与计数逻辑，单条失败不影响其他记录
func collect(raws []rawRecord, result *domain.LoadResult) []domain.UnitDescriptor {
	var out []domain.UnitDescriptor
	for i, r := range raws {
		result.Total++
		u, err := toDescriptor(r)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("item %d skipped: %v", i+1, err))
			continue
		}
		out = append(out, u)
		result.Loaded++
	}
	return out
}
