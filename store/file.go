// ABOUTME: File-backed persister storing the document blob at a single well-known path.
// ABOUTME: Writes atomically: temp file in the same directory, fsync, then rename.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentFileName is the well-known blob name inside the data directory.
const DocumentFileName = "website.json"

// FilePersister stores the serialized document at dir/website.json.
type FilePersister struct {
	path string
}

// NewFilePersister creates the data directory if needed and returns a
// persister rooted there.
func NewFilePersister(dir string) (*FilePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FilePersister{path: filepath.Join(dir, DocumentFileName)}, nil
}

// Path returns the blob's filesystem path.
func (p *FilePersister) Path() string {
	return p.path
}

// Load reads the blob. ok=false when the file does not exist.
func (p *FilePersister) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read document blob: %w", err)
	}
	return data, true, nil
}

// Save writes the blob atomically: write to .tmp, fsync, rename.
func (p *FilePersister) Save(data []byte) error {
	tmpPath := p.path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write blob: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsync blob: %w", err)
	}
	_ = f.Close()

	if err := os.Rename(tmpPath, p.path); err != nil {
		return fmt.Errorf("rename blob: %w", err)
	}
	return nil
}

// Close is a no-op for the file persister.
func (p *FilePersister) Close() error {
	return nil
}
