// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvexport

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-nps/models"
)

// Locale constants
const (
	LocaleEN   = "en"
	LocalePTBR = "pt-BR"
)

const (
	// Delimiter separates fields within a row
	Delimiter = ";"
	// LineSeparator separates rows; there is no trailing separator
	LineSeparator = "\n"
	// DefaultFilename is the download name of an export
	DefaultFilename = "ksa_nps_respostas.csv"
	// ContentType of an export
	ContentType = "text/csv; charset=utf-8"
)

// Header labels in column order: date, role, score, like, help, problems, improve
var headers = map[string][]string{
	LocaleEN:   {"Date", "Role", "Score", "Likes", "DailyHelp", "ProblemsSolved", "ImprovementSuggestions"},
	LocalePTBR: {"Data", "Papel", "Nota", "O que gosta", "Ajuda no dia a dia", "Problemas resolvidos", "Melhorar"},
}

// ColumnCount is the number of fields in every row
const ColumnCount = 7

// SupportedLocale reports whether a header set exists for locale
func SupportedLocale(locale string) bool {
	_, ok := headers[locale]
	return ok
}

// Header returns the header labels for locale, falling back to English
func Header(locale string) []string {
	h, ok := headers[locale]
	if !ok {
		h = headers[LocaleEN]
	}
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// Serializer turns responses into CSV text with a fixed header
type Serializer struct {
	header []string
}

// NewSerializer creates a serializer for locale. A non-nil override with
// ColumnCount labels replaces the locale header.
func NewSerializer(locale string, override []string) *Serializer {
	header := Header(locale)
	if len(override) == ColumnCount {
		header = override
	}
	return &Serializer{header: header}
}

// Serialize converts responses to CSV text
func (s *Serializer) Serialize(responses []models.Response) string {
	lines := make([]string, 0, len(responses)+1)
	lines = append(lines, strings.Join(s.header, Delimiter))

	for _, r := range responses {
		// date and score are written as-is, without quoting
		row := []string{
			r.TS,
			Quote(r.Role),
			strconv.Itoa(r.Score),
			Quote(r.Like),
			Quote(r.Help),
			Quote(r.Problems),
			Quote(r.Improve),
		}
		lines = append(lines, strings.Join(row, Delimiter))
	}

	return strings.Join(lines, LineSeparator)
}

// ToCSV serializes responses with the header for locale
func ToCSV(responses []models.Response, locale string) string {
	return NewSerializer(locale, nil).Serialize(responses)
}

// Quote escapes a free-text field. Embedded double quotes are doubled,
// and the field is wrapped in double quotes when it contains a comma, a
// double quote, or a newline. Semicolons do not trigger quoting.
func Quote(value string) string {
	if value == "" {
		return ""
	}
	s := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(s, "\",\n") {
		s = `"` + s + `"`
	}
	return s
}
