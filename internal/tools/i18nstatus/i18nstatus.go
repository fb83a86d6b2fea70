// Package i18nstatus reports how completely each locale translates the
// operator alert catalog.
package i18nstatus

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
	"github.com/louisbranch/tabletop/internal/platform/i18n/catalog"
)

// Config holds the tool flags.
type Config struct {
	BaseLocale string
	JSON       bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{BaseLocale: catalog.BaseLocale}
	fs.StringVar(&cfg.BaseLocale, "base-locale", cfg.BaseLocale, "locale used as translation source of truth")
	fs.BoolVar(&cfg.JSON, "json", false, "write JSON instead of markdown")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Report is the translation status of every locale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
	// UncoveredCodes are error codes with no base locale message.
	UncoveredCodes []string `json:"uncovered_codes"`
}

// LocaleStatus compares one locale with the base locale.
type LocaleStatus struct {
	Locale      string   `json:"locale"`
	BaseKeys    int      `json:"base_keys"`
	Translated  int      `json:"translated"`
	Completion  float64  `json:"completion"`
	MissingKeys []string `json:"missing_keys"`
	ExtraKeys   []string `json:"extra_keys"`
}

// BuildReport compares each locale in bundle with base and checks that every
// code in required has a base message.
func BuildReport(bundle *catalog.Bundle, base string, required []apperrors.Code) Report {
	baseMessages := bundle.LocaleMessages(base)
	rep := Report{BaseLocale: base}
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, messages)
		translated := len(baseMessages) - len(missing)
		rep.Locales = append(rep.Locales, LocaleStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Completion:  percent(translated, len(baseMessages)),
			MissingKeys: missing,
			ExtraKeys:   diffKeys(messages, baseMessages),
		})
	}
	sort.Slice(rep.Locales, func(i, j int) bool { return rep.Locales[i].Locale < rep.Locales[j].Locale })
	for _, code := range required {
		if _, ok := baseMessages[string(code)]; !ok {
			rep.UncoveredCodes = append(rep.UncoveredCodes, string(code))
		}
	}
	return rep
}

// Run builds the report for the embedded catalog and writes it to out. It
// fails when an error code has no base locale message.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	if !bundle.HasLocale(cfg.BaseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", cfg.BaseLocale)
	}
	rep := BuildReport(bundle, cfg.BaseLocale, apperrors.Codes())
	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(rep)
	} else {
		_, err = io.WriteString(out, rep.Markdown())
	}
	if err != nil {
		return err
	}
	if len(rep.UncoveredCodes) > 0 {
		return fmt.Errorf("codes without %s messages: %s", cfg.BaseLocale, strings.Join(rep.UncoveredCodes, ", "))
	}
	return nil
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Alert translations\n\nBase locale: `%s`.\n\n", r.BaseLocale)
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, l := range r.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n",
			l.Locale, l.BaseKeys, l.Translated, len(l.MissingKeys), len(l.ExtraKeys), l.Completion)
	}
	for _, l := range r.Locales {
		writeKeys(&b, "Missing in "+l.Locale, l.MissingKeys)
		writeKeys(&b, "Extra in "+l.Locale, l.ExtraKeys)
	}
	writeKeys(&b, "Codes without messages", r.UncoveredCodes)
	return b.String()
}

func writeKeys(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

// diffKeys returns the keys of a that b lacks, sorted.
func diffKeys(a, b map[string]string) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
