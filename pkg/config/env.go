// Package config 环境变量配置
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// 目录文件格式
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config 单位引擎配置
// CatalogPath 为空时使用内置目录
type Config struct {
	CatalogPath   string `env:"PRISM_UNITS_CATALOG_PATH"`
	CatalogFormat string `env:"PRISM_UNITS_CATALOG_FORMAT"`
	LogLevel      string `env:"PRISM_UNITS_LOG_LEVEL" envDefault:"info"`
	StrictSymbols bool   `env:"PRISM_UNITS_STRICT_SYMBOLS" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load 读取环境变量并补全默认值
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize 规范化目录格式并校验格式与日志级别
// 手工构造的 Config 在使用前也应调用
func (c *Config) Normalize() error {
	c.CatalogFormat = strings.ToLower(strings.TrimSpace(c.CatalogFormat))
	if c.CatalogFormat == "" && c.CatalogPath != "" {
		c.CatalogFormat = FormatFromPath(c.CatalogPath)
	}
	switch c.CatalogFormat {
	case "", FormatCSV, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported catalog format %q", c.CatalogFormat)
	}
	if c.CatalogPath != "" && c.CatalogFormat == "" {
		return fmt.Errorf("cannot infer catalog format from %q", c.CatalogPath)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FormatFromPath 根据扩展名推断目录格式，无法识别时返回空串
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

// Level 解析日志级别 (debug, info, warn, error)
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
