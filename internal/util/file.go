package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteHTML writes rewritten markup atomically: temp file in the target
// directory, then rename, so a killed watch session never leaves a
// half-written snapshot behind.
func WriteHTML(path, markup string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tpsify-*")
	if err != nil {
		return err
	}

	if _, err := tmp.WriteString(markup); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// SnapshotPath names the output file for one watch pass.
func SnapshotPath(dir string, pass int) string {
	return filepath.Join(dir, fmt.Sprintf("pass_%04d.html", pass))
}
