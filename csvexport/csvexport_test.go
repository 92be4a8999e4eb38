// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvexport

import (
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-nps/models"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "simple", "simple"},
		{"comma", "a,b", `"a,b"`},
		{"double quote", `a"b`, `"a""b"`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"semicolon is not quoted", "a;b", "a;b"},
		{"carriage return alone is not quoted", "a\rb", "a\rb"},
		{"only quotes", `""`, `""""""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.input); got != tt.expected {
				t.Errorf("Quote(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToCSV_HeaderOnly(t *testing.T) {
	got := ToCSV(nil, LocaleEN)
	expected := "Date;Role;Score;Likes;DailyHelp;ProblemsSolved;ImprovementSuggestions"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestToCSV_Rows(t *testing.T) {
	responses := []models.Response{
		{Score: 9, Like: "a,b", Help: "helps", Role: "dev", TS: "10/18/2026, 2:03:12 PM"},
		{Score: 3, Like: `a"b`, Improve: "x\ny", TS: "10/18/2026, 2:04:00 PM"},
		{Score: 0},
	}

	got := ToCSV(responses, LocaleEN)
	lines := strings.Split(got, LineSeparator)

	// the embedded newline in the second record splits it over two lines
	if len(lines) != 5 {
		t.Fatalf("Expected 5 physical lines, got %d: %q", len(lines), got)
	}

	expectedFirst := `10/18/2026, 2:03:12 PM;dev;9;"a,b";helps;;`
	if lines[1] != expectedFirst {
		t.Errorf("Expected first row %q, got %q", expectedFirst, lines[1])
	}

	expectedSecond := "10/18/2026, 2:04:00 PM;;3;\"a\"\"b\";;;\"x\ny\""
	if lines[2]+"\n"+lines[3] != expectedSecond {
		t.Errorf("Expected second row %q, got %q", expectedSecond, lines[2]+"\n"+lines[3])
	}

	if lines[4] != ";;0;;;;" {
		t.Errorf("Expected empty fields to serialize as empty strings, got %q", lines[4])
	}

	if strings.HasSuffix(got, "\n") {
		t.Error("Expected no trailing newline")
	}
	if strings.Contains(got, "null") || strings.Contains(got, "undefined") {
		t.Errorf("Unexpected literal null in output: %q", got)
	}
}

func TestToCSV_DateNotQuoted(t *testing.T) {
	// the date column is written verbatim even though it contains a comma
	got := ToCSV([]models.Response{{Score: 10, TS: "18/10/2026, 14:03:12"}}, LocalePTBR)
	lines := strings.Split(got, LineSeparator)

	if lines[0] != "Data;Papel;Nota;O que gosta;Ajuda no dia a dia;Problemas resolvidos;Melhorar" {
		t.Errorf("Unexpected pt-BR header: %q", lines[0])
	}
	if lines[1] != "18/10/2026, 14:03:12;;10;;;;" {
		t.Errorf("Unexpected row: %q", lines[1])
	}
}

func TestHeader(t *testing.T) {
	if !SupportedLocale(LocaleEN) || !SupportedLocale(LocalePTBR) {
		t.Error("Expected en and pt-BR to be supported")
	}
	if SupportedLocale("fr") {
		t.Error("Expected fr to be unsupported")
	}

	h := Header("fr")
	if h[0] != "Date" {
		t.Errorf("Expected English fallback, got %v", h)
	}

	// callers must not be able to mutate the shared header table
	h[0] = "changed"
	if Header(LocaleEN)[0] != "Date" {
		t.Error("Header returned a shared slice")
	}
}

func TestNewSerializer_Override(t *testing.T) {
	override := []string{"When", "Who", "NPS", "Good", "Daily", "Solved", "Better"}
	s := NewSerializer(LocaleEN, override)

	got := s.Serialize(nil)
	if got != "When;Who;NPS;Good;Daily;Solved;Better" {
		t.Errorf("Expected override header, got %q", got)
	}

	// wrong column count is ignored
	s = NewSerializer(LocaleEN, []string{"only", "two"})
	if !strings.HasPrefix(s.Serialize(nil), "Date;") {
		t.Error("Expected locale header when override has wrong length")
	}
}
