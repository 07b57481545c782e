package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// CsvLoader 实现 ports.CatalogLoader 接口
// 表头必须包含 dimension,id,multiplier; symbol 与 offset 可选
type CsvLoader struct{}

// NewCsvLoader 创建 CSV 目录导入器
func NewCsvLoader() *CsvLoader {
	return &CsvLoader{}
}

// Load 实现 ports.CatalogLoader.Load
// 逐行读取 CSV 流
func (c *CsvLoader) Load(ctx context.Context, r io.Reader) ([]domain.UnitDescriptor, *domain.LoadResult, error) {
	reader := csv.NewReader(r)
	// 允许变长字段，offset 列常常留空
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	result := &domain.LoadResult{}

	// 1. Read Header
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, result, nil
		}
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, h := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range requiredColumns {
		if _, ok := headerMap[req]; !ok {
			return nil, nil, fmt.Errorf("missing required csv header: %s", req)
		}
	}

	// 2. Read Records
	var units []domain.UnitDescriptor
	for {
		if err := ctx.Err(); err != nil {
			return units, result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// 仅格式错误可跳过; 底层读取错误会反复出现，直接返回
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return units, result, fmt.Errorf("read csv: %w", err)
			}
			result.Total++
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("csv read error at line %d: %v", perr.StartLine, perr.Err))
			continue
		}
		result.Total++

		u, err := toDescriptor(parseRow(record, headerMap))
		if err != nil {
			line, _ := reader.FieldPos(0)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		units = append(units, u)
		result.Loaded++
	}

	return units, result, nil
}

func parseRow(record []string, headerMap map[string]int) rawRecord {
	get := func(col string) string {
		if idx, ok := headerMap[col]; ok && idx < len(record) {
			return record[idx]
		}
		return ""
	}
	return rawRecord{
		Dimension:  get("dimension"),
		ID:         get("id"),
		Symbol:     strings.TrimSpace(get("symbol")),
		Multiplier: get("multiplier"),
		Offset:     get("offset"),
	}
}
