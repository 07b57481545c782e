package factory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/renjie/prism-units/pkg/adapters/catalog"
	"github.com/renjie/prism-units/pkg/config"
	"github.com/renjie/prism-units/pkg/core/ports"
)

// LoaderBuilder creates a catalog loader for one file format
type LoaderBuilder func() ports.CatalogLoader

// LoaderFactory is the registry of catalog loaders keyed by format
type LoaderFactory struct {
	builders map[string]LoaderBuilder
	mu       sync.RWMutex
}

var (
	loaderInstance *LoaderFactory
	loaderOnce     sync.Once
)

// GetLoaderFactory returns the singleton instance
func GetLoaderFactory() *LoaderFactory {
	loaderOnce.Do(func() {
		loaderInstance = NewLoaderFactory()
	})
	return loaderInstance
}

// NewLoaderFactory creates a factory with the csv, json and yaml loaders registered
func NewLoaderFactory() *LoaderFactory {
	f := &LoaderFactory{
		builders: make(map[string]LoaderBuilder),
	}
	f.Register(config.FormatCSV, func() ports.CatalogLoader { return catalog.NewCsvLoader() })
	f.Register(config.FormatJSON, func() ports.CatalogLoader { return catalog.NewJsonLoader() })
	f.Register(config.FormatYAML, func() ports.CatalogLoader { return catalog.NewYamlLoader() })
	return f
}

// Register adds or overrides a loader builder
func (f *LoaderFactory) Register(format string, builder LoaderBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[strings.ToLower(format)] = builder
}

// CreateLoader returns the loader registered for format
func (f *LoaderFactory) CreateLoader(format string) (ports.CatalogLoader, error) {
	f.mu.RLock()
	builder, ok := f.builders[strings.ToLower(format)]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no loader registered for format: %s", format)
	}
	return builder(), nil
}
