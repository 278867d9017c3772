// Package assets bundles the .claude workspace template shipped with the
// binary. The tree under claude/ is embedded as-is and copied byte-for-byte
// at install time; nothing in it is templated or rewritten by this tool.
package assets

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed all:claude
var claudeFS embed.FS

// FS returns the template tree rooted at the workspace root, so that path
// "README.md" is the file installed at .claude/README.md.
func FS() (fs.FS, error) {
	return fs.Sub(claudeFS, "claude")
}

// Files returns the sorted relative paths of every regular file in the
// template tree.
func Files() ([]string, error) {
	root, err := FS()
	if err != nil {
		return nil, err
	}
	var files []string
	err = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile reads one file from the template tree by its relative path.
func ReadFile(path string) ([]byte, error) {
	root, err := FS()
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(root, path)
}
