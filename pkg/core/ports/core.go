package ports

import (
	"context"
	"io"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// Calculator 量纲运算服务 (Core Capability)
// 职责:
// A. 按已注册单位构造基本量
// B. 同量纲内的单位换算
// C. 乘除时自动推导结果量的种类
type Calculator interface {
	// MakeQuantity 构造基本量，单位必须已在该量纲下注册
	MakeQuantity(dim domain.Dimension, unit domain.UnitID, magnitude float64) (domain.Quantity, error)

	// Convert 同量纲单位换算 (先换算到基准单位再换算到目标单位)
	Convert(q domain.Quantity, target domain.UnitID) (domain.Quantity, error)

	// Add / Subtract 要求量纲与单位完全一致，不做隐式换算
	Add(a, b domain.Quantity) (domain.Quantity, error)
	Subtract(a, b domain.Quantity) (domain.Quantity, error)

	// Scale 乘以无量纲标量
	Scale(q domain.Quantity, k float64) domain.Quantity

	// Multiply / Divide 合成量纲向量并解析为命名量或通用 Derived 量
	Multiply(a, b domain.Quantity) (domain.Quantity, error)
	Divide(a, b domain.Quantity) (domain.Quantity, error)

	// Symbol 返回用于展示的单位符号 (基本量为单位符号，导出量为复合符号)
	Symbol(q domain.Quantity) (string, error)
}

// CatalogLoader 单位目录导入器
// 职责: 从外部目录文件读取单位记录，交给 UnitRegistry 构建
type CatalogLoader interface {
	// Load 读取完整目录；单条记录解析失败记入 LoadResult，不中断导入
	Load(ctx context.Context, r io.Reader) ([]domain.UnitDescriptor, *domain.LoadResult, error)
}
