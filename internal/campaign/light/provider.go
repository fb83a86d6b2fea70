package light

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
)

// Provider supplies the default light source specs, grouped by category and
// in significant order.
type Provider interface {
	DefaultLightSources(ctx context.Context) (map[string][]Spec, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (map[string][]Spec, error)

// DefaultLightSources calls f.
func (f ProviderFunc) DefaultLightSources(ctx context.Context) (map[string][]Spec, error) {
	return f(ctx)
}

//go:embed defaults.yaml
var defaultsYAML []byte

// EmbeddedProvider serves the light sources compiled into the binary.
type EmbeddedProvider struct{}

// DefaultLightSources parses the embedded defaults.
func (EmbeddedProvider) DefaultLightSources(context.Context) (map[string][]Spec, error) {
	specs, err := Parse(defaultsYAML)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeLightSourcesInvalid, "parse embedded light sources",
			map[string]string{"path": "defaults.yaml"}, err)
	}
	return specs, nil
}

// FileProvider reads light sources from a YAML file on disk.
type FileProvider struct {
	Path string
}

// DefaultLightSources reads and parses the file.
func (p FileProvider) DefaultLightSources(ctx context.Context) (map[string][]Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeLightSourcesUnavailable, "read light sources",
			map[string]string{"path": p.Path}, err)
	}
	specs, err := Parse(data)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeLightSourcesInvalid, "parse light sources",
			map[string]string{"path": p.Path}, err)
	}
	return specs, nil
}

type document struct {
	Categories []struct {
		Name    string `yaml:"name"`
		Sources []Spec `yaml:"sources"`
	} `yaml:"categories"`
}

// Parse decodes a light source document.
func Parse(data []byte) (map[string][]Spec, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	out := make(map[string][]Spec, len(doc.Categories))
	for i, category := range doc.Categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return nil, fmt.Errorf("category %d: name is required", i)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("category %q: defined twice", name)
		}
		for j, spec := range category.Sources {
			if err := validateSpec(spec); err != nil {
				return nil, fmt.Errorf("category %q source %d: %w", name, j, err)
			}
		}
		out[name] = append([]Spec(nil), category.Sources...)
	}
	return out, nil
}

func validateSpec(spec Spec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(spec.Ranges) == 0 {
		return fmt.Errorf("%s: at least one range is required", spec.Name)
	}
	for _, r := range spec.Ranges {
		if r.Distance <= 0 {
			return fmt.Errorf("%s: range distance must be > 0", spec.Name)
		}
	}
	if spec.Arc < 0 || spec.Arc > 360 {
		return fmt.Errorf("%s: arc must be within [0,360]", spec.Name)
	}
	return nil
}
