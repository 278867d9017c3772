// Package doctor compares an installed .claude workspace against the
// bundled template. init never updates an existing install, so doctor is
// how drift between the two becomes visible.
package doctor

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nqcccccc/GQLify/internal/assets"
	"github.com/nqcccccc/GQLify/internal/installer"
)

// Result lists the differences between the installed tree and the template.
type Result struct {
	Dest     string
	Missing  []string // in template, not on disk
	Modified []string // content differs from template
	Extra    []string // on disk, not in template (user additions)
}

// Clean reports whether the install matches the template exactly, ignoring
// extra files. User additions are expected and never flagged as a problem.
func (r *Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Modified) == 0
}

// Check verifies destDir/.claude against the embedded template.
func Check(destDir string) (*Result, error) {
	dest := filepath.Join(destDir, installer.DirName)
	if _, err := os.Stat(dest); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s directory here — run `gqlify init` first", installer.DirName)
		}
		return nil, fmt.Errorf("stat %s: %w", dest, err)
	}

	root, err := assets.FS()
	if err != nil {
		return nil, fmt.Errorf("resolve template: %w", err)
	}

	result := &Result{Dest: dest}
	templateFiles := make(map[string]bool)

	err = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		templateFiles[path] = true

		installed, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(path)))
		if err != nil {
			if os.IsNotExist(err) {
				result.Missing = append(result.Missing, path)
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		want, err := fs.ReadFile(root, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}
		if !sumEqual(installed, want) {
			result.Modified = append(result.Modified, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(dest, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dest, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !templateFiles[rel] && !strings.HasPrefix(filepath.Base(rel), ".") {
			result.Extra = append(result.Extra, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Modified)
	sort.Strings(result.Extra)
	return result, nil
}

func sumEqual(a, b []byte) bool {
	sa := sha256.Sum256(a)
	sb := sha256.Sum256(b)
	return bytes.Equal(sa[:], sb[:])
}
