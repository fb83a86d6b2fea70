// Package catalog loads localized message catalogs embedded in the binary.
package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	msgcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// localeCatalog stores all messages for one locale. Keys are unique across
// the locale's namespaces.
type localeCatalog struct {
	namespaces map[string]struct{}
	messages   map[string]string
}

// Bundle contains all locale catalogs loaded from disk.
type Bundle struct {
	locales  map[string]*localeCatalog
	matcher  language.Matcher
	tags     []language.Tag
	printers *msgcatalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*localeCatalog{}}

	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var parsed catalogFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := bundle.addFile(path, parsed); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.buildMatcher(); err != nil {
		return nil, err
	}
	if err := bundle.buildPrinters(); err != nil {
		return nil, err
	}

	return bundle, nil
}

func (b *Bundle) addFile(path string, file catalogFile) error {
	localeFromPath := filepath.Base(filepath.Dir(path))
	namespaceFromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", path, locale, localeFromPath)
	}

	namespace := strings.TrimSpace(file.Namespace)
	if namespace == "" {
		return fmt.Errorf("catalog %s: namespace is required", path)
	}
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", path, namespace, namespaceFromPath)
	}

	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}

	catalog, ok := b.locales[locale]
	if !ok {
		catalog = &localeCatalog{
			namespaces: map[string]struct{}{},
			messages:   map[string]string{},
		}
		b.locales[locale] = catalog
	}
	if _, exists := catalog.namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", path, namespace, locale)
	}

	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if _, exists := catalog.messages[trimmedKey]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", path, trimmedKey, locale)
		}
		catalog.messages[trimmedKey] = value
	}

	catalog.namespaces[namespace] = struct{}{}
	return nil
}

// buildMatcher orders the base locale first so unmatched requests fall back to it.
func (b *Bundle) buildMatcher() error {
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for _, locale := range b.Locales() {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	b.tags = tags
	b.matcher = language.NewMatcher(tags)
	return nil
}

// buildPrinters publishes every message into a bundle-local x/text catalog.
// Messages are plain text, so a literal percent sign is escaped for the
// printer's format parsing.
func (b *Bundle) buildPrinters() error {
	builder := msgcatalog.NewBuilder(msgcatalog.Fallback(language.MustParse(BaseLocale)))
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := b.locales[locale].messages
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			text := strings.ReplaceAll(messages[key], "%", "%%")
			if err := builder.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	b.printers = builder
	return nil
}

// Printer returns an x/text printer for the best supported match of locale,
// backed by this bundle's messages.
func (b *Bundle) Printer(locale string) *message.Printer {
	tag := language.MustParse(BaseLocale)
	if b == nil || b.printers == nil {
		return message.NewPrinter(tag)
	}
	if parsed, err := language.Parse(b.Resolve(locale)); err == nil {
		tag = parsed
	}
	return message.NewPrinter(tag, message.Catalog(b.printers))
}

// Resolve returns the supported locale that best matches the requested one.
// Unknown or malformed requests resolve to BaseLocale.
func (b *Bundle) Resolve(requested string) string {
	if b == nil || b.matcher == nil {
		return BaseLocale
	}
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return BaseLocale
	}
	if b.HasLocale(requested) {
		return requested
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.tags[index].String()
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// LocaleMessages returns an exact locale message map copy.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok || catalog == nil {
		return map[string]string{}
	}
	return copyMap(catalog.messages)
}

// Message returns one message value with base-locale fallback. The text is
// rendered by the locale's x/text printer.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false
	}
	resolved := b.Resolve(locale)
	if b.defines(resolved, trimmedKey) {
		return b.Printer(resolved).Sprintf(trimmedKey), true
	}
	if resolved != BaseLocale && b.defines(BaseLocale, trimmedKey) {
		return b.Printer(BaseLocale).Sprintf(trimmedKey), true
	}
	return "", false
}

func (b *Bundle) defines(locale string, key string) bool {
	catalog, ok := b.locales[locale]
	if !ok || catalog == nil {
		return false
	}
	_, exists := catalog.messages[key]
	return exists
}

// Format renders the message template for key with the given metadata.
// Falls back to the key itself if no message is found; a template that
// fails to parse or execute is returned raw.
func (b *Bundle) Format(locale string, key string, metadata map[string]string) string {
	tmpl, ok := b.Message(locale, key)
	if !ok {
		return key
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
