package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseColonPairs(t *testing.T) {
	lines := []string{
		"model name\t: Intel(R) Core(TM) i7-7500U CPU @ 2.70GHz",
		"vendor_id\t: GenuineIntel",
		"MemTotal:       16308816 kB",
		"",
		"no colon here",
		": empty key",
		"flags\t\t: fpu vme de pse",
	}
	m := ParseColonPairs(lines)

	want := map[string]string{
		"model name": "Intel(R) Core(TM) i7-7500U CPU @ 2.70GHz",
		"vendor_id":  "GenuineIntel",
		"MemTotal":   "16308816 kB",
		"flags":      "fpu vme de pse",
	}
	if len(m) != len(want) {
		t.Errorf("ParseColonPairs() returned %d entries, want %d: %v", len(m), len(want), m)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("ParseColonPairs()[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestFirstBlock(t *testing.T) {
	lines := []string{"a: 1", "b: 2", "", "a: 3"}
	got := FirstBlock(lines)
	if len(got) != 2 || got[1] != "b: 2" {
		t.Errorf("FirstBlock() = %v, want first two lines", got)
	}

	noBlank := []string{"a: 1", "b: 2"}
	if got := FirstBlock(noBlank); len(got) != 2 {
		t.Errorf("FirstBlock() without blank line = %v, want all lines", got)
	}
}

func TestCountPrefix(t *testing.T) {
	lines := []string{"processor\t: 0", "model name: x", "processor\t: 1"}
	if n := CountPrefix(lines, "processor"); n != 2 {
		t.Errorf("CountPrefix() = %d, want 2", n)
	}
}

func TestParseUint64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"16308816 kB", 16308816},
		{"  42  ", 42},
		{"nope", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseUint64(tt.in); got != tt.want {
			t.Errorf("ParseUint64(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUnitFormatting(t *testing.T) {
	if got := KBToGB(16308816); got != "15 GB" {
		t.Errorf("KBToGB() = %q, want %q", got, "15 GB")
	}
	if got := KBToMB(524288); got != "512 MB" {
		t.Errorf("KBToMB() = %q, want %q", got, "512 MB")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q, want unchanged", got)
	}
	if got := Truncate("abcdefghij", 8); got != "abcde..." {
		t.Errorf("Truncate() = %q, want %q", got, "abcde...")
	}
}

func TestReadStringTrims(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "value")
	if err := os.WriteFile(path, []byte("  hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadString() = %q, want %q", got, "hello")
	}

	if _, err := ReadString(filepath.Join(dir, "missing")); err == nil {
		t.Error("ReadString() on missing file: want error")
	}
}
