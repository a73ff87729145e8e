// ABOUTME: Tests for the SQLite persister: empty-row semantics, upsert round-trip,
// ABOUTME: and persistence across reopen.
package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestSqlite(t *testing.T, path string) *SqlitePersister {
	t.Helper()
	p, err := OpenSqlite(path)
	if err != nil {
		t.Fatalf("OpenSqlite() error = %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestSqlitePersisterLoadMissing(t *testing.T) {
	p := openTestSqlite(t, filepath.Join(t.TempDir(), "test.db"))

	_, ok, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("ok = true for empty database, want false")
	}
}

func TestSqlitePersisterUpsertRoundTrip(t *testing.T) {
	p := openTestSqlite(t, filepath.Join(t.TempDir(), "test.db"))

	if err := p.Save([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := p.Save([]byte(`{"v":2}`)); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, ok, err := p.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false after save, want true")
	}
	if want := []byte(`{"v":2}`); !bytes.Equal(got, want) {
		t.Errorf("Load() = %q, want %q", got, want)
	}
}

func TestSqlitePersisterSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	p, err := OpenSqlite(path)
	if err != nil {
		t.Fatalf("OpenSqlite() error = %v", err)
	}
	want := []byte(`{"kept":true}`)
	if err := p.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	p2 := openTestSqlite(t, path)
	got, ok, err := p2.Load()
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false after reopen, want true")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load() = %q, want %q", got, want)
	}
}
