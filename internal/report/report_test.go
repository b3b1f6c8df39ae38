package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/passtui/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Timestamp", "Password", "Strength"}
	rows := [][]string{
		{"2025-01-02 03:04:05", "Ab3!defghijk", "Strong"},
		{"2025-01-02 03:05:06", "abcdefgh", "Weak"},
	}

	lines := formatTable(headers, rows, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Timestamp           Password     Strength" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "2025-01-02 03:04:05 Ab3!defghijk Strong  " {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2025-01-02 03:05:06 abcdefgh     Weak    " {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "No history found.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	entries := []model.Entry{
		{Password: "abcdefgh", Timestamp: "2025-01-02 03:04:05", Strength: model.Weak},
		{Password: "Ab3!defghijk", Timestamp: "2025-01-02 03:05:06", Strength: model.Strong},
		{Password: "Ab3!efghijkl", Timestamp: "2025-01-02 03:06:07", Strength: model.Strong},
		{Password: "ABCDEF123456", Timestamp: "2025-01-02 03:07:08", Strength: model.Medium},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, entries); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Passwords: 4",
		"Avg length: 11.0",
		"Weak",
		"Medium",
		"Strong",
		"50.0%",
		"25.0%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
