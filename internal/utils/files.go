package utils

import (
	"io/fs"
	"path/filepath"
)

// FindSourceFiles recursively finds all .sc files in the specified directory
func FindSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories
		if d.IsDir() {
			return nil
		}

		// Check if file has .sc extension
		if filepath.Ext(path) == ".sc" {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
