package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandInputPaths accepts a mix of file paths and directory paths and
// returns the candidate files to parse: file entries first in input order,
// then the entries of each directory (non-recursively, sorted by name).
// Hidden entries (name starting with ".") are skipped. An input path that
// cannot be used (missing, unreadable) is returned in unusable so callers
// can surface it instead of it vanishing silently.
func ExpandInputPaths(inputs []string) (files []string, unusable []string, err error) {
	var dirs []string
	for _, entry := range inputs {
		info, statErr := os.Stat(entry)
		if statErr != nil {
			unusable = append(unusable, entry)
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	for _, dir := range dirs {
		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			return nil, unusable, fmt.Errorf("listing directory %s: %w", dir, readErr)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") || e.IsDir() {
				continue
			}
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, unusable, nil
}
