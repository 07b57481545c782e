package services

import (
	"fmt"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// ChainSanitizer 基于责任链模式的目录清洗器实现
type ChainSanitizer struct {
	rules []ports.RecordRule
}

// NewSanitizer 创建基于规则链的目录清洗器
func NewSanitizer(rules ...ports.RecordRule) ports.CatalogSanitizer {
	return &ChainSanitizer{rules: rules}
}

// Clean 实现 ports.CatalogSanitizer 接口
// 返回的 valid 记录保持目录原顺序
func (s *ChainSanitizer) Clean(records []domain.UnitDescriptor) ([]domain.UnitDescriptor, []domain.RejectedRecord) {
	if len(records) == 0 {
		return nil, nil
	}

	var valid []domain.UnitDescriptor
	var rejected []domain.RejectedRecord
	registered := make(map[domain.Dimension][]domain.UnitDescriptor)
	seen := make(map[domain.Dimension]map[domain.UnitID]bool)

	for _, curr := range records {
		// 0. 内置规则: 量纲合法，ID 非空且同量纲内不重复
		if !curr.Dimension.Valid() {
			rejected = append(rejected, domain.RejectedRecord{
				Record: curr,
				Reason: curr.Dimension.String(),
				Cause:  domain.ErrUnknownDimension,
				Rule:   "dimension",
			})
			continue
		}
		if curr.ID == domain.Unconstrained {
			rejected = append(rejected, domain.RejectedRecord{
				Record: curr,
				Reason: fmt.Sprintf("empty unit id in %s", curr.Dimension),
				Cause:  domain.ErrInvalidRecord,
				Rule:   "id",
			})
			continue
		}
		if seen[curr.Dimension][curr.ID] {
			rejected = append(rejected, domain.RejectedRecord{
				Record: curr,
				Reason: fmt.Sprintf("%q in %s", curr.ID, curr.Dimension),
				Cause:  domain.ErrDuplicateUnit,
				Rule:   "duplicate",
			})
			continue
		}

		// 执行规则链，每条规则接收上一条规则可能修正过的记录
		passed := true
		var failReason, failRule string
		var failCause error
		recCtx := ports.RecordContext{Registered: registered[curr.Dimension]}
		temp := curr

		for _, rule := range s.rules {
			result := rule.Check(recCtx, temp)
			if !result.Passed {
				passed = false
				failReason = result.Reason
				failRule = rule.Name()
				failCause = result.Cause
				break
			}
			temp = result.Record
		}

		if !passed {
			rejected = append(rejected, domain.RejectedRecord{
				Record: curr,
				Reason: failReason,
				Cause:  failCause,
				Rule:   failRule,
			})
			continue
		}

		if seen[curr.Dimension] == nil {
			seen[curr.Dimension] = make(map[domain.UnitID]bool)
		}
		seen[curr.Dimension][curr.ID] = true
		registered[curr.Dimension] = append(registered[curr.Dimension], temp)
		valid = append(valid, temp)
	}
	return valid, rejected
}
