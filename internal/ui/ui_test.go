package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 4, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d,%d,%d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestFpanelAlignsColoredLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var b bytes.Buffer
	Fpanel(&b, []string{"\033[32mab\033[0m", "abcd"})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), b.String())
	}
	if lines[0] != "+------+" {
		t.Errorf("top = %q", lines[0])
	}
	if got := stripANSI(lines[1]); got != "| ab   |" {
		t.Errorf("row = %q", got)
	}
}

func TestCNoColorWhenNotTTY(t *testing.T) {
	old := Stdout
	Stdout = &bytes.Buffer{}
	defer func() { Stdout = old }()
	if got := C(fgRed, "x"); got != "x" {
		t.Errorf("C = %q, want plain", got)
	}
}
