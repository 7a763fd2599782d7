package preview

import (
	"strings"
	"testing"
)

func TestNormalizeDiffMaxLines_DefaultAndPositive(t *testing.T) {
	if got := NormalizeDiffMaxLines(0); got != DefaultDiffMaxLines {
		t.Fatalf("NormalizeDiffMaxLines(0) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := NormalizeDiffMaxLines(-1); got != DefaultDiffMaxLines {
		t.Fatalf("NormalizeDiffMaxLines(-1) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := NormalizeDiffMaxLines(7); got != 7 {
		t.Fatalf("NormalizeDiffMaxLines(7) = %d, want 7", got)
	}
}

func TestUnifiedTruncates(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\ny\nz\n"
	diff, truncated := Unified("site.py (current)", "site.py (new)", from, to, 2)
	if !truncated {
		t.Fatal("expected truncated diff")
	}
	if !strings.Contains(diff, "truncated to 2 lines") {
		t.Fatalf("expected truncation note in diff:\n%s", diff)
	}
	if !strings.Contains(diff, DiffLineCapFlagName) {
		t.Fatalf("expected diff to mention %s:\n%s", DiffLineCapFlagName, diff)
	}
}

func TestUnifiedFull(t *testing.T) {
	diff, truncated := Unified("a", "b", "one\n", "two\n", 0)
	if truncated {
		t.Fatal("did not expect truncation")
	}
	if !strings.Contains(diff, "-one") || !strings.Contains(diff, "+two") {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
	if !strings.HasSuffix(diff, "\n") {
		t.Fatalf("expected trailing newline:\n%q", diff)
	}
}

func TestUnifiedIdentical(t *testing.T) {
	diff, truncated := Unified("a", "b", "same\n", "same\n", 10)
	if diff != "" || truncated {
		t.Fatalf("expected empty diff, got %q (truncated=%v)", diff, truncated)
	}
}
