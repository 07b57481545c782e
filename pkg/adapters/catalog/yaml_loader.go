package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/renjie/prism-units/pkg/core/domain"
)

// YamlLoader 实现 ports.CatalogLoader 接口
//
// 文档格式:
//
//	units:
//	  - dimension: length
//	    id: meter
//	    symbol: m
//	    multiplier: 1
type YamlLoader struct{}

// NewYamlLoader 创建 YAML 目录导入器
func NewYamlLoader() *YamlLoader {
	return &YamlLoader{}
}

type yamlDocument struct {
	Units []yamlRecord `yaml:"units"`
}

type yamlRecord struct {
	Dimension  string   `yaml:"dimension"`
	ID         string   `yaml:"id"`
	Symbol     string   `yaml:"symbol"`
	Multiplier *float64 `yaml:"multiplier"`
	Offset     *float64 `yaml:"offset,omitempty"`
}

func (y yamlRecord) raw() rawRecord {
	return rawRecord{
		Dimension:  y.Dimension,
		ID:         y.ID,
		Symbol:     y.Symbol,
		Multiplier: formatOptional(y.Multiplier),
		Offset:     formatOptional(y.Offset),
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// Load 实现 ports.CatalogLoader.Load
func (y *YamlLoader) Load(ctx context.Context, r io.Reader) ([]domain.UnitDescriptor, *domain.LoadResult, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.LoadResult{}, nil
		}
		return nil, nil, fmt.Errorf("failed to decode yaml catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	raws := make([]rawRecord, 0, len(doc.Units))
	for _, u := range doc.Units {
		raws = append(raws, u.raw())
	}
	result := &domain.LoadResult{}
	return collect(raws, result), result, nil
}
