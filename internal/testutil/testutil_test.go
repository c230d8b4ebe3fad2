package testutil

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()
	AssertError(t, errors.New("boom"))
}

func TestWriteFixtureAndReadLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := WriteFixture(t, dir, "a.co", SampleA...)
	if path != filepath.Join(dir, "a.co") {
		t.Errorf("unexpected path %s", path)
	}

	lines := ReadLines(t, path)
	if len(lines) != len(SampleA) {
		t.Fatalf("got %d lines, want %d", len(lines), len(SampleA))
	}
	for i := range lines {
		if lines[i] != SampleA[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], SampleA[i])
		}
	}
}

func TestWriteFixtureEmpty(t *testing.T) {
	t.Parallel()

	path := WriteFixture(t, t.TempDir(), "empty.co")
	if lines := ReadLines(t, path); len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}
