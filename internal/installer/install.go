// Package installer materializes the bundled .claude template tree into a
// project directory.
package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nqcccccc/GQLify/internal/assets"
)

// DirName is the directory created inside the target project.
const DirName = ".claude"

// ErrAlreadyInitialized is returned when the target project already has a
// .claude directory. Callers treat it as a warning: the existing install is
// never touched, even by a newer template.
var ErrAlreadyInitialized = errors.New("workspace already initialized")

// Report summarizes a completed install.
type Report struct {
	Dest   string
	Docs   int
	Skills int
	Other  int
}

// Total returns the number of files written.
func (r *Report) Total() int {
	return r.Docs + r.Skills + r.Other
}

// ProgressFunc receives (relativePath, status) per file. Status is
// "installed" for every file written.
type ProgressFunc func(path, status string)

// Install copies the embedded template tree into destDir/.claude.
// It refuses to write anything when the directory already exists and
// returns ErrAlreadyInitialized. A failure mid-copy returns the wrapped
// error and may leave a partial tree behind; the caller must not report
// success in that case.
func Install(destDir string, progress ProgressFunc) (*Report, error) {
	dest := filepath.Join(destDir, DirName)
	if _, err := os.Stat(dest); err == nil {
		return nil, ErrAlreadyInitialized
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", dest, err)
	}

	root, err := assets.FS()
	if err != nil {
		return nil, fmt.Errorf("resolve template: %w", err)
	}

	report := &Report{Dest: dest}
	err = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			return nil
		}
		data, err := fs.ReadFile(root, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		report.count(path)
		if progress != nil {
			progress(path, "installed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Report) count(path string) {
	switch {
	case strings.HasPrefix(path, "skills/"):
		r.Skills++
	case strings.HasPrefix(path, "docs/"):
		r.Docs++
	default:
		r.Other++
	}
}
