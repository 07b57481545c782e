package catalog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// JsonLoader 实现 ports.CatalogLoader 接口
// 支持 JSON 数组 [...] 或单个对象 {...}
type JsonLoader struct{}

// NewJsonLoader 创建 JSON 目录导入器
func NewJsonLoader() *JsonLoader {
	return &JsonLoader{}
}

// jsonRecord 使用 json.Number 避免精度丢失
type jsonRecord struct {
	Dimension  string      `json:"dimension"`
	ID         string      `json:"id"`
	Symbol     string      `json:"symbol"`
	Multiplier json.Number `json:"multiplier"`
	Offset     json.Number `json:"offset,omitempty"`
}

func (j jsonRecord) raw() rawRecord {
	return rawRecord{
		Dimension:  j.Dimension,
		ID:         j.ID,
		Symbol:     j.Symbol,
		Multiplier: j.Multiplier.String(),
		Offset:     j.Offset.String(),
	}
}

// Load 实现 ports.CatalogLoader.Load
func (j *JsonLoader) Load(ctx context.Context, r io.Reader) ([]domain.UnitDescriptor, *domain.LoadResult, error) {
	// 使用 bufio.Reader 预读首个非空白字节，避免消耗 Token
	bufStream := bufio.NewReader(r)
	head, err := peekNonSpace(bufStream)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.LoadResult{}, nil
		}
		return nil, nil, fmt.Errorf("failed to peek start token: %w", err)
	}

	decoder := json.NewDecoder(bufStream)
	decoder.UseNumber()

	var raws []rawRecord
	switch head {
	case '[':
		// Consume '['
		if _, err := decoder.Token(); err != nil {
			return nil, nil, err
		}
		for decoder.More() {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			var rec jsonRecord
			if err := decoder.Decode(&rec); err != nil {
				return nil, nil, fmt.Errorf("decode error inside array: %w", err)
			}
			raws = append(raws, rec.raw())
		}
		// Consume closing ']'
		if _, err := decoder.Token(); err != nil {
			return nil, nil, err
		}
	case '{':
		var rec jsonRecord
		if err := decoder.Decode(&rec); err != nil {
			return nil, nil, fmt.Errorf("failed to decode single object: %w", err)
		}
		raws = append(raws, rec.raw())
	default:
		return nil, nil, fmt.Errorf("unexpected JSON format (expected '[' or '{', got '%c')", head)
	}

	result := &domain.LoadResult{}
	return collect(raws, result), result, nil
}

func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, r.UnreadByte()
	}
}
