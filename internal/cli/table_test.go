package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("ROLE", "HEX")
	table.AddRow("dominant", "#3B82F6")
	table.AddRow("accent-1", "#60A5FA")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want header + underline + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ROLE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "--------") {
		t.Errorf("underline should span the widest cell, got %q", lines[1])
	}

	// Columns align: HEX values start at the same offset in every row.
	idx := strings.Index(lines[2], "#3B82F6")
	if idx < 0 || strings.Index(lines[3], "#60A5FA") != idx {
		t.Errorf("hex column misaligned:\n%s", out)
	}
}

func TestTableShortRowIsPadded(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.AddRow("only")

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("short row dropped: %q", out)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("headerless table rendered %q, want empty", out)
	}
}
