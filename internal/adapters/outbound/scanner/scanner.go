package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// FileFinder implements domain.FileFinder by listing the filesystem.
type FileFinder struct{}

func New() *FileFinder {
	return &FileFinder{}
}

// FindDocuments enumerates files with one of the given extensions directly
// under dir, or under dir and all subdirectories when recursive is set.
// Order is the underlying filesystem listing order.
func (f *FileFinder) FindDocuments(dir string, recursive bool, extensions, excludeDirs []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	skip := make(map[string]bool, len(skipDirs)+len(excludeDirs))
	for name := range skipDirs {
		skip[name] = true
	}
	for _, name := range excludeDirs {
		skip[strings.TrimSuffix(name, "/")] = true
	}

	if !recursive {
		return listFlat(dir, extensions)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

func listFlat(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExtension(entry.Name(), extensions) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
