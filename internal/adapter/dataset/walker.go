package dataset

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker discovers dataset files under a data directory using
// include/exclude glob patterns.
type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*.csv"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the relative paths of matching files under root, sorted for
// deterministic listings. A missing root yields an empty list.
func (w *Walker) Walk(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if w.matches(relPath) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (w *Walker) matches(relPath string) bool {
	for _, pattern := range w.excludes {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return false
		}
	}
	for _, pattern := range w.includes {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
