package domain

// LoadResult 目录导入结果统计
type LoadResult struct {
	Total  int      `json:"total"`
	Loaded int      `json:"loaded"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"` // 具体的错误信息
}

// RejectedRecord 未通过校验规则的目录记录
// 注册表构建时所有被拒记录会汇总为一个错误返回
type RejectedRecord struct {
	Record UnitDescriptor
	Reason string
	Rule   string // 触发的规则名
	Cause  error  // 哨兵错误，供 errors.Is 匹配
}

// RuleAction 定义规则触发后的处理策略
type RuleAction string

const (
	ActionReject  RuleAction = "REJECT"  // 默认：拒绝记录
	ActionCorrect RuleAction = "CORRECT" // 修正：修改字段后放行
)

// RuleConfig 校验规则配置 (按名称由工厂实例化)
type RuleConfig struct {
	Name       string                 `json:"name" yaml:"name"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Action     RuleAction             `json:"action,omitempty" yaml:"action,omitempty"`
}
