package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Wrap(CodeLightSourcesUnavailable, "load light sources", fs.ErrNotExist)

	if !stderrors.Is(err, New(CodeLightSourcesUnavailable, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeLightSourcesInvalid, "")) {
		t.Fatal("expected errors.Is to reject a different code")
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeLightSourcesInvalid, "parse light sources", stderrors.New("bad yaml"))
	if got, want := err.Error(), "parse light sources: bad yaml"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got, want := New(CodeUnknown, "plain").Error(), "plain"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCodeOfFindsWrappedError(t *testing.T) {
	inner := WithMetadata(CodeGenericLightMissing, "generic light missing", map[string]string{"count": "3"})
	outer := fmt.Errorf("seed sights: %w", inner)

	if got := CodeOf(outer); got != CodeGenericLightMissing {
		t.Fatalf("CodeOf = %q, want %q", got, CodeGenericLightMissing)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUnknown)
	}
	coded, ok := As(outer)
	if !ok || coded.Metadata["count"] != "3" {
		t.Fatalf("As = %+v, %v; want metadata count=3", coded, ok)
	}
}

func TestCodeSeverity(t *testing.T) {
	cases := map[Code]Severity{
		CodeLightSourcesUnavailable: SeverityError,
		CodeLightSourcesInvalid:     SeverityError,
		CodeGenericLightMissing:     SeverityWarning,
		CodeLightSourceNotFound:     SeverityWarning,
		CodeUnknown:                 SeverityError,
	}
	for code, want := range cases {
		if got := code.Severity(); got != want {
			t.Fatalf("%s.Severity() = %v, want %v", code, got, want)
		}
	}
}
