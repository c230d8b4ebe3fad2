// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers for writing point-cloud
// fixture files and reading results back.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// WriteFixture writes lines, newline terminated, to dir/name and returns the
// full path.
func WriteFixture(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// SampleA and SampleB are the two point files used by the end-to-end
// scenarios: they share only (3,3).
var (
	SampleA = []string{"v A 1.0 1.0", "v B 2.0 2.0", "v C 3.0 3.0"}
	SampleB = []string{"v C 3.0 3.0", "v D 4.0 4.0", "v E 5.0 5.0"}
)
