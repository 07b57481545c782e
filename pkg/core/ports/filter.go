package ports

import "github.com/renjie/prism-units/pkg/core/domain"

// RecordContext 校验规则执行时的上下文信息
type RecordContext struct {
	// Registered 同一量纲下已通过校验的记录 (按目录顺序)
	Registered []domain.UnitDescriptor
}

// CheckResult 校验规则的检查结果
type CheckResult struct {
	Record    domain.UnitDescriptor // 结果记录 (可能是原记录或修正后的记录)
	Passed    bool                  // 是否通过检查
	Corrected bool                  // 是否进行了修正
	Reason    string                // 失败或修正的原因描述
	Cause     error                 // 失败时的哨兵错误 (domain.ErrXxx)
}

// RecordRule 目录记录校验规则
// 这是一个策略接口，具体规则 (倍率、符号、仿射函数) 由外部注入
type RecordRule interface {
	Name() string
	Check(ctx RecordContext, rec domain.UnitDescriptor) CheckResult
}

// CatalogSanitizer 目录清洗器接口
// 负责协调多个校验规则的执行
type CatalogSanitizer interface {
	// Clean 返回:
	// 1. valid: 通过规则的记录 (可能经过修正)，保持目录顺序
	// 2. rejected: 违反规则被拒绝的记录 (包含拒绝原因)
	Clean(records []domain.UnitDescriptor) (valid []domain.UnitDescriptor, rejected []domain.RejectedRecord)
}
