package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US alert messages")
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle := Default()
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s is missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/alerts.yaml"), `locale: "en-US"
namespace: "alerts"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/cli.yaml"), `locale: "en-US"
namespace: "cli"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/alerts.yaml"), `locale: "pt-BR"
namespace: "alerts"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "must match path locale") {
		t.Fatalf("expected locale mismatch error, got %v", err)
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/alerts.yaml"), `locale: "pt-BR"
namespace: "alerts"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/alerts.yaml"), "locale: [unterminated\n")

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil || !strings.Contains(err.Error(), "parse catalog") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestResolveFallsBackToBaseLocale(t *testing.T) {
	bundle := Default()
	cases := map[string]string{
		"":       BaseLocale,
		"pt-BR":  "pt-BR",
		"fr-FR":  BaseLocale,
		"%%bad%": BaseLocale,
	}
	for requested, want := range cases {
		if got := bundle.Resolve(requested); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", requested, got, want)
		}
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	got := Default().Format("en-US", "GENERIC_LIGHT_MISSING", map[string]string{"count": "3", "required": "6"})
	if !strings.Contains(got, "has 3 entries") || !strings.Contains(got, "at least 6") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFormatFallsBackToKey(t *testing.T) {
	if got := Default().Format("en-US", "NOT_A_KEY", nil); got != "NOT_A_KEY" {
		t.Fatalf("Format = %q, want key fallback", got)
	}
}

func TestFormatUsesBaseLocaleForUnknownLocale(t *testing.T) {
	got := Default().Format("fr-FR", "LIGHT_SOURCES_UNAVAILABLE", nil)
	want, _ := Default().Message(BaseLocale, "LIGHT_SOURCES_UNAVAILABLE")
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestPrinterRendersBundleMessages(t *testing.T) {
	bundle := Default()
	want := bundle.LocaleMessages("pt-BR")["UNKNOWN"]
	if want == "" {
		t.Fatal("expected pt-BR UNKNOWN message")
	}
	if got := bundle.Printer("pt-BR").Sprintf("UNKNOWN"); got != want {
		t.Fatalf("printer message = %q, want %q", got, want)
	}
	if got, _ := bundle.Message("pt-BR", "UNKNOWN"); got != want {
		t.Fatalf("Message = %q, want %q", got, want)
	}
}

func TestPrinterDoesNotLeakIntoDefaultCatalog(t *testing.T) {
	p := message.NewPrinter(language.MustParse("pt-BR"))
	if got := p.Sprintf("UNKNOWN"); got != "UNKNOWN" {
		t.Fatalf("default printer = %q, want key passthrough", got)
	}
}

func TestMessageKeepsLiteralPercentSigns(t *testing.T) {
	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/alerts.yaml": {Data: []byte(`locale: "en-US"
namespace: "alerts"
messages:
  "LOAD": "loaded 100% of {{.path}}"
`)},
		"locales/pt-BR/alerts.yaml": {Data: []byte(`locale: "pt-BR"
namespace: "alerts"
messages:
  "OTHER": "outro"
`)},
	})
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	if got, _ := bundle.Message("en-US", "LOAD"); got != "loaded 100% of {{.path}}" {
		t.Fatalf("Message = %q", got)
	}
	if got := bundle.Format("pt-BR", "LOAD", map[string]string{"path": "a.yaml"}); got != "loaded 100% of a.yaml" {
		t.Fatalf("Format fallback = %q", got)
	}
}

func mustWriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
