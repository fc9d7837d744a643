package prompt

import (
	"fmt"
	"strings"

	"github.com/killallgit/beekit/pkg/chat"
	"github.com/killallgit/beekit/pkg/logger"
	"github.com/spf13/viper"
)

// TemplatesKey is the settings key holding user-defined chat templates.
const TemplatesKey = "templates"

// TemplateSpec describes a chat template in the settings file.
type TemplateSpec struct {
	Model        string            `mapstructure:"model" yaml:"model"`
	Template     string            `mapstructure:"template" yaml:"template"`
	Roles        map[string]string `mapstructure:"roles" yaml:"roles,omitempty"`
	StopSequence []string          `mapstructure:"stop_sequence" yaml:"stop_sequence"`
	Override     bool              `mapstructure:"override" yaml:"override,omitempty"`
}

// Build compiles the spec into a Template.
func (s TemplateSpec) Build() (*Template, error) {
	if strings.TrimSpace(s.Model) == "" {
		return nil, ErrEmptyModel
	}

	var overrides RoleMap
	if len(s.Roles) > 0 {
		overrides = make(RoleMap, len(s.Roles))
		for key, role := range s.Roles {
			overrides[key] = chat.Role(role)
		}
	}

	return NewChatTemplate(s.Template, overrides, s.StopSequence...)
}

// LoadSpecs reads template specs from the templates key of v.
func LoadSpecs(v *viper.Viper) ([]TemplateSpec, error) {
	if v == nil || !v.IsSet(TemplatesKey) {
		return nil, nil
	}

	var specs []TemplateSpec
	if err := v.UnmarshalKey(TemplatesKey, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", TemplatesKey, err)
	}

	return specs, nil
}

// RegisterSpecs builds every spec and registers it in r. It stops at the
// first failure.
func RegisterSpecs(r *Registry, specs []TemplateSpec) error {
	for _, spec := range specs {
		template, err := spec.Build()
		if err != nil {
			return fmt.Errorf("template for model %q: %w", spec.Model, err)
		}
		if err := r.Register(spec.Model, template, spec.Override); err != nil {
			return err
		}
	}

	if len(specs) > 0 {
		logger.Info("Loaded %d chat templates from settings", len(specs))
	}
	return nil
}

// LoadIntoRegistry reads specs from v and registers them in r.
func LoadIntoRegistry(v *viper.Viper, r *Registry) error {
	specs, err := LoadSpecs(v)
	if err != nil {
		return err
	}
	return RegisterSpecs(r, specs)
}
