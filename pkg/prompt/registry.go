package prompt

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/killallgit/beekit/pkg/logger"
)

// Default is the process-wide registry, populated with the built-in
// templates when the package loads.
var Default = NewDefaultRegistry()

// Registry maps model names to chat templates.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Template),
	}
}

// NewDefaultRegistry creates a registry holding the built-in templates.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.registerBuiltins()
	return r
}

func (r *Registry) registerBuiltins() {
	for model, template := range builtinTemplates() {
		r.templates[string(model)] = template
	}
}

// Has reports whether a template is registered for model.
func (r *Registry) Has(model string) bool {
	if model == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.templates[model]
	return exists
}

// Get retrieves the template registered for model.
func (r *Registry) Get(model string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, exists := r.templates[model]
	if !exists {
		return nil, &NotFoundError{Model: model, ValidModels: r.namesLocked()}
	}

	return template, nil
}

// GetModel retrieves a template by typed model name.
func (r *Registry) GetModel(model Model) (*Template, error) {
	return r.Get(string(model))
}

// Register stores template under model. An existing entry is replaced only
// when override is true.
func (r *Registry) Register(model string, template *Template, override bool) error {
	if model == "" {
		return ErrEmptyModel
	}
	if template == nil {
		return fmt.Errorf("template for model %q is nil", model)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[model]; exists {
		if !override {
			return &ConflictError{Model: model}
		}
		logger.Debug("Overriding chat template for model %s", model)
	} else {
		logger.Debug("Registering chat template for model %s", model)
	}

	r.templates[model] = template
	return nil
}

// List returns the registered model names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

// Clear removes all registered templates, built-ins included.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*Template)
}

// Reset restores the registry to the built-in templates only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*Template)
	r.registerBuiltins()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the default registry has a template for model.
func Has(model string) bool {
	return Default.Has(model)
}

// Get retrieves a template from the default registry.
func Get(model string) (*Template, error) {
	return Default.Get(model)
}

// Register adds a template to the default registry.
func Register(model string, template *Template, override bool) error {
	return Default.Register(model, template, override)
}

// Reset restores the default registry to its built-in templates.
func Reset() {
	Default.Reset()
}

// MustGet retrieves a template and panics if not found
func MustGet(model string) *Template {
	template, err := Default.Get(model)
	if err != nil {
		panic(err)
	}
	return template
}

// IsNotFound reports whether err came from a lookup of an unknown model.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}

// IsConflict reports whether err came from registering an existing model
// without override.
func IsConflict(err error) bool {
	return errors.Is(err, ErrTemplateExists)
}
