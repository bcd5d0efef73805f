package util

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadString reads a file and returns its contents with surrounding
// whitespace trimmed.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadLines reads a file and returns its lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ParseColonPairs parses "key: value" lines into a map. Lines without a
// colon are skipped rather than treated as errors; later duplicates win.
func ParseColonPairs(lines []string) map[string]string {
	m := make(map[string]string)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		m[key] = strings.TrimSpace(line[idx+1:])
	}
	return m
}

// FirstBlock returns the lines up to the first blank line. Record files
// like /proc/cpuinfo repeat one block per processor; the first block is
// enough for per-package values.
func FirstBlock(lines []string) []string {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return lines[:i]
		}
	}
	return lines
}

// CountPrefix counts lines starting with the given prefix.
func CountPrefix(lines []string, prefix string) int {
	n := 0
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

// ParseUint64 parses a decimal string, tolerating a trailing "kB" unit
// and surrounding whitespace. Returns 0 on any parse error.
func ParseUint64(s string) uint64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "kB")
	s = strings.TrimSpace(s)
	v, _ := strconv.ParseUint(s, 10, 64)
	return v
}

// KBToGB formats a kilobyte count as whole gigabytes, e.g. "15 GB".
func KBToGB(kb uint64) string {
	return fmt.Sprintf("%d GB", kb/(1024*1024))
}

// KBToMB formats a kilobyte count as whole megabytes, e.g. "512 MB".
func KBToMB(kb uint64) string {
	return fmt.Sprintf("%d MB", kb/1024)
}

// Truncate shortens a string to max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
