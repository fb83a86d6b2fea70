package campaignprops

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/lookup"
	"github.com/louisbranch/tabletop/internal/campaign/overlay"
	"github.com/louisbranch/tabletop/internal/campaign/props"
	"github.com/louisbranch/tabletop/internal/campaign/sight"
	"github.com/louisbranch/tabletop/internal/campaign/tokenprop"
)

// Summary is a printable view of a registry.
type Summary struct {
	TokenTypes         map[string][]string `yaml:"token_types"`
	SightTypes         []SightSummary      `yaml:"sight_types"`
	DefaultSight       string              `yaml:"default_sight"`
	LightSources       map[string][]string `yaml:"light_sources"`
	LookupTables       []string            `yaml:"lookup_tables"`
	TokenStates        []string            `yaml:"token_states"`
	TokenBars          []string            `yaml:"token_bars"`
	CharacterSheets    map[string]string   `yaml:"character_sheets"`
	RemoteRepositories []string            `yaml:"remote_repositories"`
	ImageAssets        []string            `yaml:"image_assets"`
	Initiative         InitiativeSummary   `yaml:"initiative"`
}

// SightSummary describes one sight type.
type SightSummary struct {
	Name          string  `yaml:"name"`
	Shape         string  `yaml:"shape"`
	Distance      float64 `yaml:"distance"`
	Multiplier    float64 `yaml:"multiplier"`
	Arc           int     `yaml:"arc,omitempty"`
	PersonalLight string  `yaml:"personal_light,omitempty"`
}

// InitiativeSummary mirrors props.Initiative.
type InitiativeSummary struct {
	OwnerPermissions bool `yaml:"owner_permissions"`
	MovementLock     bool `yaml:"movement_lock"`
}

// Summarize reads every collection of r.
func Summarize(r *props.Registry) Summary {
	s := Summary{
		TokenTypes:      map[string][]string{},
		LightSources:    map[string][]string{},
		CharacterSheets: r.CharacterSheets().Snapshot(),
		DefaultSight:    r.DefaultSightType(),
	}
	r.TokenTypes().Range(func(name string, schema tokenprop.Schema) bool {
		labels := make([]string, 0, schema.Len())
		for _, def := range schema.Properties() {
			labels = append(labels, def.Label())
		}
		s.TokenTypes[name] = labels
		return true
	})
	r.SightTypes().Range(func(_ string, def sight.Definition) bool {
		row := SightSummary{
			Name:       def.Name(),
			Shape:      def.Shape().String(),
			Distance:   def.Distance(),
			Multiplier: def.Multiplier(),
			Arc:        def.Arc(),
		}
		if def.HasPersonalLight() {
			row.PersonalLight = def.PersonalLight().String()
		}
		s.SightTypes = append(s.SightTypes, row)
		return true
	})
	r.LightSources().Range(func(category string, g *light.Group) bool {
		names := make([]string, 0, g.Len())
		for _, src := range g.Sources() {
			names = append(names, src.Name())
		}
		s.LightSources[category] = names
		return true
	})
	r.LookupTables().Range(func(name string, t *lookup.Table) bool {
		s.LookupTables = append(s.LookupTables, fmt.Sprintf("%s (%s, %d entries)", name, t.Roll(), t.Len()))
		return true
	})
	r.TokenStates().Range(func(name string, o *overlay.Boolean) bool {
		if o == nil {
			return true
		}
		s.TokenStates = append(s.TokenStates, fmt.Sprintf("%s (%s %s)", name, o.Kind(), overlay.Hex(o.Color)))
		return true
	})
	r.TokenBars().Range(func(name string, o *overlay.Bar) bool {
		if o == nil {
			return true
		}
		s.TokenBars = append(s.TokenBars, fmt.Sprintf("%s (%s)", name, o.Kind()))
		return true
	})
	s.RemoteRepositories = r.RemoteRepositories().Values()
	for _, id := range r.AllImageAssets().Sorted() {
		s.ImageAssets = append(s.ImageAssets, string(id))
	}
	in := r.Initiative()
	s.Initiative = InitiativeSummary{OwnerPermissions: in.OwnerPermissions, MovementLock: in.MovementLock}
	return s
}

// Write renders s in format.
func (s Summary) Write(out io.Writer, format string) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		return enc.Close()
	}
	return s.writeText(out)
}

func (s Summary) writeText(out io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Token types:\n")
	for _, name := range sortedKeys(s.TokenTypes) {
		fmt.Fprintf(&b, "  %s: %s\n", name, strings.Join(s.TokenTypes[name], ", "))
	}
	fmt.Fprintf(&b, "Sight types (default %s):\n", s.DefaultSight)
	for _, row := range s.SightTypes {
		fmt.Fprintf(&b, "  %s: %s %.1f x%.1f", row.Name, row.Shape, row.Distance, row.Multiplier)
		if row.Arc != 0 {
			fmt.Fprintf(&b, " arc %d", row.Arc)
		}
		if row.PersonalLight != "" {
			fmt.Fprintf(&b, " light %s", row.PersonalLight)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Light sources:\n")
	for _, category := range sortedKeys(s.LightSources) {
		fmt.Fprintf(&b, "  %s: %s\n", category, strings.Join(s.LightSources[category], ", "))
	}
	writeList(&b, "Lookup tables", s.LookupTables)
	writeList(&b, "Token states", s.TokenStates)
	writeList(&b, "Token bars", s.TokenBars)
	fmt.Fprintf(&b, "Character sheets:\n")
	for _, name := range sortedKeys(s.CharacterSheets) {
		fmt.Fprintf(&b, "  %s: %s\n", name, s.CharacterSheets[name])
	}
	writeList(&b, "Remote repositories", s.RemoteRepositories)
	writeList(&b, "Image assets", s.ImageAssets)
	fmt.Fprintf(&b, "Initiative: owner permissions=%t movement lock=%t\n",
		s.Initiative.OwnerPermissions, s.Initiative.MovementLock)
	_, err := io.WriteString(out, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s: none\n", title)
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  %s\n", item)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
