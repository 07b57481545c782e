package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// BatchConverter 批量单位换算服务
// 将混合单位的同量纲数据统一到目标单位，按分片并发执行
type BatchConverter struct {
	calc             ports.Calculator
	concurrencyLimit int // 并发限制
	chunkSize        int // 每个 goroutine 处理的条数
	logger           *slog.Logger
}

// BatchOption 定义配置选项函数 (Functional Option Pattern)
type BatchOption func(*BatchConverter)

// WithConcurrencyLimit 设置最大并发数 (默认 8)
func WithConcurrencyLimit(limit int) BatchOption {
	return func(b *BatchConverter) {
		if limit > 0 {
			b.concurrencyLimit = limit
		}
	}
}

// WithChunkSize 设置分片大小 (默认 256)
func WithChunkSize(size int) BatchOption {
	return func(b *BatchConverter) {
		if size > 0 {
			b.chunkSize = size
		}
	}
}

// WithBatchLogger 设置日志
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchConverter) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchConverter 初始化批量换算服务
func NewBatchConverter(calc ports.Calculator, opts ...BatchOption) *BatchConverter {
	b := &BatchConverter{
		calc:             calc,
		concurrencyLimit: 8,
		chunkSize:        256,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ConvertAll 将每个量换算到 target，结果与输入顺序一致
// 任一条失败则返回全部失败原因 (errors.Join)，不返回部分结果
func (b *BatchConverter) ConvertAll(ctx context.Context, qs []domain.Quantity, target domain.UnitID) ([]domain.Quantity, error) {
	out := make([]domain.Quantity, len(qs))
	if len(qs) == 0 {
		return out, nil
	}

	var mu sync.Mutex
	var errs []error
	var wg sync.WaitGroup

	// Semaphore for bounded concurrency
	sem := make(chan struct{}, b.concurrencyLimit)

	for start := 0; start < len(qs); start += b.chunkSize {
		end := min(start+b.chunkSize, len(qs))

		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}: // Acquire token
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			defer func() { <-sem }() // Release token

			for i := lo; i < hi; i++ {
				// Context cancellation check (Fast fail)
				if err := ctx.Err(); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					return
				}

				q, err := b.calc.Convert(qs[i], target)
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("item %d: %w", i, err))
					mu.Unlock()
					continue
				}
				out[i] = q
			}
		}(start, end)
	}

	wg.Wait()

	if len(errs) > 0 {
		b.logger.Error("batch conversion failed",
			"target", target,
			"items", len(qs),
			"failed", len(errs))
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Sum 换算到 target 后逐项相加
func (b *BatchConverter) Sum(ctx context.Context, qs []domain.Quantity, target domain.UnitID) (domain.Quantity, error) {
	if len(qs) == 0 {
		return domain.Quantity{}, errors.New("sum: no quantities")
	}
	converted, err := b.ConvertAll(ctx, qs, target)
	if err != nil {
		return domain.Quantity{}, fmt.Errorf("sum: %w", err)
	}
	total := converted[0]
	for _, q := range converted[1:] {
		if total, err = b.calc.Add(total, q); err != nil {
			return domain.Quantity{}, fmt.Errorf("sum: %w", err)
		}
	}
	return total, nil
}
