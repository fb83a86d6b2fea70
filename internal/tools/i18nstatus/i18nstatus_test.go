package i18nstatus

import (
	"bytes"
	"encoding/json"
	"flag"
	"strings"
	"testing"
	"testing/fstest"

	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
	"github.com/louisbranch/tabletop/internal/platform/i18n/catalog"
)

func TestEmbeddedCatalogCoversEveryCode(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Run(Config{BaseLocale: catalog.BaseLocale, JSON: true}, buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	var rep Report
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rep.UncoveredCodes) != 0 {
		t.Fatalf("uncovered codes = %v", rep.UncoveredCodes)
	}
	for _, l := range rep.Locales {
		if l.Completion != 100 {
			t.Fatalf("%s completion = %.1f, missing %v", l.Locale, l.Completion, l.MissingKeys)
		}
	}
}

func TestBuildReportFindsGaps(t *testing.T) {
	bundle, err := catalog.LoadFromFS(fstest.MapFS{
		"locales/en-US/alerts.yaml": {Data: []byte("locale: en-US\nnamespace: alerts\nmessages:\n  A: a\n  B: b\n")},
		"locales/pt-BR/alerts.yaml": {Data: []byte("locale: pt-BR\nnamespace: alerts\nmessages:\n  A: a\n  C: c\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rep := BuildReport(bundle, "en-US", []apperrors.Code{"A", "Z"})

	if len(rep.Locales) != 2 {
		t.Fatalf("locales = %d, want 2", len(rep.Locales))
	}
	pt := rep.Locales[1]
	if pt.Locale != "pt-BR" || pt.Translated != 1 || pt.Completion != 50 {
		t.Fatalf("pt-BR = %+v", pt)
	}
	if len(pt.MissingKeys) != 1 || pt.MissingKeys[0] != "B" || len(pt.ExtraKeys) != 1 || pt.ExtraKeys[0] != "C" {
		t.Fatalf("pt-BR keys = missing %v extra %v", pt.MissingKeys, pt.ExtraKeys)
	}
	if len(rep.UncoveredCodes) != 1 || rep.UncoveredCodes[0] != "Z" {
		t.Fatalf("uncovered = %v, want [Z]", rep.UncoveredCodes)
	}
	md := rep.Markdown()
	for _, want := range []string{"| `pt-BR` | 2 | 1 | 1 | 1 | 50.0% |", "## Missing in pt-BR", "- `Z`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRunRejectsUnknownBaseLocale(t *testing.T) {
	if err := Run(Config{BaseLocale: "xx-XX"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown base locale")
	}
}

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.JSON || cfg.BaseLocale != catalog.BaseLocale {
		t.Fatalf("cfg = %+v", cfg)
	}
}
