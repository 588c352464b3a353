package datasource

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/paylens/fee-insights/pkg/models/domain"
)

// Provider returns the invoice records a dashboard run should analyze.
type Provider interface {
	ListInvoices(ctx context.Context) ([]domain.InvoiceRecord, error)
}

// ProviderFactory is a function type that creates a Provider from a config path
type ProviderFactory func(configPath string) (Provider, error)

// Registry manages invoice data source factories
type Registry interface {
	// Register adds a new data source factory
	Register(source string, factory ProviderFactory) error
	// Create instantiates a provider for the specified source using the provided config
	Create(source, configPath string) (Provider, error)
	// ListSources returns a list of registered sources
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry creates a new provider registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]ProviderFactory),
	}
}

func (r *registry) Register(source string, factory ProviderFactory) error {
	if source == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[source]; exists {
		return fmt.Errorf("source %q is already registered", source)
	}

	r.factories[source] = factory
	return nil
}

func (r *registry) Create(source, configPath string) (Provider, error) {
	r.mu.RLock()
	factory, exists := r.factories[source]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", source)
	}

	return factory(configPath)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]string, 0, len(r.factories))
	for source := range r.factories {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}
