// ABOUTME: Tests for the file persister: missing-file semantics, atomic save,
// ABOUTME: and round-trip through a real directory.
package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFilePersisterLoadMissing(t *testing.T) {
	p, err := NewFilePersister(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilePersister() error = %v", err)
	}

	_, ok, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("ok = true for missing file, want false")
	}
}

func TestFilePersisterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir)
	if err != nil {
		t.Fatalf("NewFilePersister() error = %v", err)
	}

	want := []byte(`{"hello":"world"}`)
	if err := p.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false after save, want true")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load() = %q, want %q", got, want)
	}

	if p.Path() != filepath.Join(dir, DocumentFileName) {
		t.Errorf("Path() = %q, want %q", p.Path(), filepath.Join(dir, DocumentFileName))
	}
}

func TestFilePersisterSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFilePersister(dir)
	if err != nil {
		t.Fatalf("NewFilePersister() error = %v", err)
	}
	if err := p.Save([]byte("{}")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != DocumentFileName {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents = %v, want only %s", names, DocumentFileName)
	}
}

func TestFilePersisterCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	p, err := NewFilePersister(dir)
	if err != nil {
		t.Fatalf("NewFilePersister() error = %v", err)
	}
	if err := p.Save([]byte("{}")); err != nil {
		t.Fatalf("Save() into created dir error = %v", err)
	}
}
