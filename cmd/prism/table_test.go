package main

import (
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCasing(t *testing.T) {
	out := renderTable(
		[]string{"Pack", "Spectra"},
		[][]string{{"infraredFilms", "2"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if strings.Contains(out, "PACK") {
		t.Fatalf("expected header casing preserved, got:\n%s", out)
	}
	requireContains(t, out, "Pack")
	requireContains(t, out, "infraredFilms")
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
		nil,
	)
	requireContains(t, out, "only")
	if lines := strings.Split(out, "\n"); len(lines) < 4 {
		t.Fatalf("expected bordered table, got:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}
