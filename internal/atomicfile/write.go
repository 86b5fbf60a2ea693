// Package atomicfile replaces files in full through a temporary sibling and a
// rename, so readers never observe a half-written Contents.json or cache file.

package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempPattern names the sibling temp file. The leading dot keeps it out of
// asset catalog listings if a run is interrupted before cleanup.
const tempPattern = ".%s.tmp-*"

// Write replaces the file at path with data. The parent directory must exist.
// Any previous content is discarded; on failure the previous file, if any, is
// left untouched and the temp file is removed.
func Write(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(filepath.Dir(path), filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("write %s: chmod temp file: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write %s: rename temp file: %w", path, err)
	}
	committed = true
	return nil
}

// writeTemp creates a temp file in dir, writes and syncs data, and returns
// its name. The file is removed again if any step fails.
func writeTemp(dir, base string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, fmt.Sprintf(tempPattern, base))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("fill temp file: %w", err)
	}
	return name, nil
}
