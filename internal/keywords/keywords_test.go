package keywords

import (
	"strings"
	"testing"
)

func TestTopOrdersByFrequency(t *testing.T) {
	text := strings.Join([]string{
		strings.Repeat("test ", 5),
		strings.Repeat("data ", 3),
		strings.Repeat("code ", 3),
	}, " ")

	got := Top(text, 2)
	if got != "test; data" {
		t.Fatalf("expected %q, got %q", "test; data", got)
	}
}

func TestTopTieBreaksOnFirstSeen(t *testing.T) {
	got := Top("zebra apple zebra apple", 2)
	if got != "zebra; apple" {
		t.Fatalf("expected first-encountered order on tie, got %q", got)
	}
}

func TestTopLowercasesAndFilters(t *testing.T) {
	// "cat" and "is" are shorter than four characters and must be dropped.
	got := Top("Gopher cat is GOPHER", 5)
	if got != "gopher" {
		t.Fatalf("expected %q, got %q", "gopher", got)
	}
}

func TestTopNonASCIIWords(t *testing.T) {
	text := "Köln Köln Köln москва москва 北京 café"
	got := Top(text, 3)
	if got != "köln; москва; café" {
		t.Fatalf("expected accented and non-Latin tokens to count, got %q", got)
	}
}

func TestTopEmptyText(t *testing.T) {
	if got := Top("", 5); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestTopDefaultCount(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta2"
	got := Top(text, 0)
	if n := len(strings.Split(got, "; ")); n != DefaultCount {
		t.Fatalf("expected %d keywords with default count, got %d (%q)", DefaultCount, n, got)
	}
}
