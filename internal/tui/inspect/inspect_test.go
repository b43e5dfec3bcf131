package inspect

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/textkit/foundation/text/str"
)

func TestAnalyze(t *testing.T) {
	rows := Analyze(str.ViewString("aé\xff日😀"))
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	tests := []struct {
		index     int
		offset    int
		codePoint string
		bytes     string
		units     string
		width     int
		malformed bool
	}{
		{0, 0, "U+0061", "61", "0061", 1, false},
		{1, 1, "U+00E9", "C3 A9", "00E9", 1, false},
		{2, 3, "U+FFFD", "FF", "", 0, true},
		{3, 4, "U+65E5", "E6 97 A5", "65E5", 2, false},
		{4, 7, "U+1F600", "F0 9F 98 80", "D83D DE00", 2, false},
	}

	for _, tt := range tests {
		r := rows[tt.index]
		if r.Index != tt.index || r.Offset != tt.offset {
			t.Errorf("row %d: index/offset = %d/%d", tt.index, r.Index, r.Offset)
		}
		if r.CodePoint() != tt.codePoint || r.HexBytes() != tt.bytes || r.HexUnits() != tt.units {
			t.Errorf("row %d: %s %q %q", tt.index, r.CodePoint(), r.HexBytes(), r.HexUnits())
		}
		if r.Width != tt.width || r.Malformed() != tt.malformed {
			t.Errorf("row %d: width=%d malformed=%v", tt.index, r.Width, r.Malformed())
		}
	}

	if rows[0].Name != "LATIN SMALL LETTER A" || rows[0].Category != "letter" {
		t.Errorf("row 0: %q %q", rows[0].Name, rows[0].Category)
	}
	if !strings.HasPrefix(rows[2].Description(), "malformed: ") {
		t.Errorf("row 2 description = %q", rows[2].Description())
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if rows := Analyze(str.Empty); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(Analyze(str.ViewString("ab\xe6\x97 日")))
	want := Summary{Bytes: 8, Runes: 5, Width: 5, NonASCII: 1, Malformed: 1}
	if sum != want {
		t.Errorf("Summarize = %+v, want %+v", sum, want)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		r    Row
		want string
	}{
		{Row{Rune: 'x'}, "x"},
		{Row{Rune: '\n'}, "␊"},
		{Row{Rune: 0x7F}, "␡"},
		{Row{Rune: 0x200B}, "·"},
		{Row{Rune: 0xFFFD, Reason: "truncated sequence"}, "�"},
	}
	for _, tt := range tests {
		if got := tt.r.Glyph(); got != tt.want {
			t.Errorf("Glyph(%U) = %q, want %q", tt.r.Rune, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Analyze(str.ViewString("A\xff")))
	for _, want := range []string{"CODE POINT", "U+0041", "LATIN CAPITAL LETTER A", "malformed: invalid lead byte"} {
		if !strings.Contains(out, want) {
			t.Errorf("table misses %q:\n%s", want, out)
		}
	}
}

func loaded(t *testing.T, input string) Model {
	t.Helper()
	m := New(Config{Title: "test", Load: func() (str.String, error) {
		return str.ViewString(input), nil
	}})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(m.loadRows())
	return next.(Model)
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestModelFilters(t *testing.T) {
	m := loaded(t, "ab日\xff")
	if m.loading || len(m.filtered) != 4 {
		t.Fatalf("loading=%v filtered=%d", m.loading, len(m.filtered))
	}

	m = press(t, m, "1")
	if len(m.filtered) != 2 {
		t.Errorf("without ASCII: %d rows", len(m.filtered))
	}
	m = press(t, m, "3")
	if len(m.filtered) != 1 || m.filtered[0].Rune != '日' {
		t.Errorf("only non-ASCII: %+v", m.filtered)
	}
	m = press(t, m, "0")
	if len(m.filtered) != 4 {
		t.Errorf("after reset: %d rows", len(m.filtered))
	}

	view := m.View()
	if !strings.Contains(view, "[4/4 code points]") || !strings.Contains(view, "1 malformed") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestModelLoadError(t *testing.T) {
	m := New(Config{Load: func() (str.String, error) { return str.Empty, errors.New("no input") }})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	next, _ = next.Update(m.loadRows())
	if got := next.(Model).View(); !strings.Contains(got, "no input") {
		t.Errorf("error not shown:\n%s", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := loaded(t, "x")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewBeforeResize(t *testing.T) {
	if got := New(Config{}).View(); got != "Loading inspector..." {
		t.Errorf("View = %q", got)
	}
}
