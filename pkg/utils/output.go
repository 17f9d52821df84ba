package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputPaths derives the artifact paths for one execution. The execution id
// scopes the file names: reruns with the same id overwrite, distinct ids
// never collide.
func OutputPaths(dir, executionID string) (csvPath, jsonPath string) {
	csvPath = filepath.Join(dir, fmt.Sprintf("processed_data_%s.csv", executionID))
	jsonPath = filepath.Join(dir, fmt.Sprintf("analysis_%s.json", executionID))
	return csvPath, jsonPath
}

// EnsureDir creates dir if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// WriteFileAtomic writes data to a sibling temp file and renames it into
// place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}

// FileSize returns the size of a file in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
