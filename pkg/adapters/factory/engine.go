package factory

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/renjie/prism-units/pkg/catalog"
	"github.com/renjie/prism-units/pkg/config"
	"github.com/renjie/prism-units/pkg/core/domain"
	"github.com/renjie/prism-units/pkg/core/services"
)

var (
	defaultEngine *services.Engine
	engineOnce    sync.Once
)

// DefaultEngine returns the process-wide engine over the built-in catalog.
// The built-in catalog is static data; a failure to build it is a programming error.
func DefaultEngine() *services.Engine {
	engineOnce.Do(func() {
		e, err := NewDefaultEngine()
		if err != nil {
			panic(fmt.Sprintf("built-in unit catalog is invalid: %v", err))
		}
		defaultEngine = e
	})
	return defaultEngine
}

// NewDefaultEngine builds an isolated engine over the built-in catalog and kinds
func NewDefaultEngine(opts ...services.RegistryOption) (*services.Engine, error) {
	return newEngine(catalog.Builtin(), slog.Default(), opts...)
}

// DefaultRuleConfigs 默认规则配置; strict 为 true 时非规范符号直接拒绝
func DefaultRuleConfigs(strict bool) []domain.RuleConfig {
	action := domain.ActionCorrect
	if strict {
		action = domain.ActionReject
	}
	return []domain.RuleConfig{
		{Name: RuleMultiplier},
		{Name: RuleAffine},
		{Name: RuleSymbol, Action: action},
	}
}

// NewEngineFromConfig wires config -> loader -> registry -> engine.
// Without a catalog path the built-in catalog is used.
func NewEngineFromConfig(ctx context.Context, cfg config.Config) (*services.Engine, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	recordRules, err := GetRuleFactory().CreateRules(DefaultRuleConfigs(cfg.StrictSymbols)...)
	if err != nil {
		return nil, err
	}

	records := catalog.Builtin()
	if cfg.CatalogPath != "" {
		records, err = loadCatalog(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	return newEngine(records, logger, services.WithRecordRules(recordRules...))
}

func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) ([]domain.UnitDescriptor, error) {
	format := cfg.CatalogFormat
	if format == "" {
		format = config.FormatFromPath(cfg.CatalogPath)
	}
	loader, err := GetLoaderFactory().CreateLoader(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	records, result, err := loader.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	if result.Failed > 0 {
		logger.Error("catalog records skipped",
			"path", cfg.CatalogPath,
			"failed", result.Failed,
			"errors", result.Errors)
		return nil, fmt.Errorf("load catalog %s: %w: %d of %d records unreadable", cfg.CatalogPath, domain.ErrInvalidRecord, result.Failed, result.Total)
	}
	logger.Info("catalog file loaded", "path", cfg.CatalogPath, "format", format, "records", result.Loaded)
	return records, nil
}

func newEngine(records []domain.UnitDescriptor, logger *slog.Logger, opts ...services.RegistryOption) (*services.Engine, error) {
	opts = append([]services.RegistryOption{services.WithRegistryLogger(logger)}, opts...)
	registry, err := services.NewUnitRegistry(records, opts...)
	if err != nil {
		return nil, err
	}
	kinds, err := services.NewKindTable(catalog.Kinds()...)
	if err != nil {
		return nil, err
	}
	return services.NewEngine(
		services.WithRegistry(registry),
		services.WithKinds(kinds),
		services.WithLogger(logger),
	)
}
