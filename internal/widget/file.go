package widget

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads a file from disk as a widget File named after its base name.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Data: data}, nil
}

// ReadFiles loads the first path, the only one the widget sends. The rest are
// kept as name-only Files so they can be counted and ignored without being
// opened, which means a missing or unreadable extra never blocks the upload.
func ReadFiles(paths []string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	first, err := ReadFile(paths[0])
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(paths))
	files = append(files, first)
	for _, p := range paths[1:] {
		files = append(files, File{Name: filepath.Base(p)})
	}
	return files, nil
}
