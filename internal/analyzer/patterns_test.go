package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindPatterns_Case(t *testing.T) {
	p := findPatterns([]string{"HELLO", "world", "MixedCase", "ALSO-UPPER", "x"})

	if p.Uppercase != 2 {
		t.Errorf("Uppercase = %d, want 2", p.Uppercase)
	}
	if p.Lowercase != 2 {
		t.Errorf("Lowercase = %d, want 2", p.Lowercase)
	}
	if p.MixedCase != 1 {
		t.Errorf("MixedCase = %d, want 1", p.MixedCase)
	}
}

func TestFindPatterns_NoLettersSkipped(t *testing.T) {
	// Tokens without ASCII letters fall into no case bucket at all.
	p := findPatterns([]string{"123", "3.14", "---", "_", ""})

	if p.Uppercase != 0 || p.Lowercase != 0 || p.MixedCase != 0 {
		t.Errorf("case counts = %d/%d/%d, want 0/0/0 for letterless tokens",
			p.Uppercase, p.Lowercase, p.MixedCase)
	}
}

func TestFindPatterns_DigitsWithLetters(t *testing.T) {
	// Digits are case-neutral, so "ABC123" still counts as uppercase.
	p := findPatterns([]string{"ABC123", "abc123"})

	if p.Uppercase != 1 {
		t.Errorf("Uppercase = %d, want 1", p.Uppercase)
	}
	if p.Lowercase != 1 {
		t.Errorf("Lowercase = %d, want 1", p.Lowercase)
	}
}

func TestFindPatterns_Extensions(t *testing.T) {
	p := findPatterns([]string{"document.pdf", "data.csv", "backup.csv", "archive.tar.gz", "README"})

	want := map[string]int{".pdf": 1, ".csv": 2, ".gz": 1}
	if diff := cmp.Diff(want, p.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPatterns_ExtensionsSkipFlagLike(t *testing.T) {
	// "--output=file.txt" starts with "-" and is no file name.
	p := findPatterns([]string{"--output=file.txt", "-x.y", "real.txt"})

	want := map[string]int{".txt": 1}
	if diff := cmp.Diff(want, p.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPatterns_ExtensionsOnNonFileTokens(t *testing.T) {
	// The tally is purely lexical: URLs and decimal literals contribute
	// their last-dot suffix like any file name would.
	p := findPatterns([]string{"user@example.com", "https://github.com", "3.14159"})

	want := map[string]int{".com": 2, ".14159": 1}
	if diff := cmp.Diff(want, p.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPatterns_TrailingDot(t *testing.T) {
	// A trailing dot yields the bare "." key, counted like any other suffix.
	p := findPatterns([]string{"name."})

	want := map[string]int{".": 1}
	if diff := cmp.Diff(want, p.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPatterns_Empty(t *testing.T) {
	p := findPatterns(nil)

	if p.Uppercase != 0 || p.Lowercase != 0 || p.MixedCase != 0 {
		t.Errorf("case counts = %d/%d/%d, want all zero", p.Uppercase, p.Lowercase, p.MixedCase)
	}
	if len(p.Extensions) != 0 {
		t.Errorf("Extensions = %v, want empty", p.Extensions)
	}
}
