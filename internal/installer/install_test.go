package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nqcccccc/GQLify/internal/assets"
)

func TestInstallFreshDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	report, err := Install(tmpDir, nil)
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}

	files, err := assets.Files()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("template tree is empty")
	}
	if report.Total() != len(files) {
		t.Errorf("report.Total() = %d, template has %d files", report.Total(), len(files))
	}

	// Round-trip: every template file exists at the destination with
	// identical bytes.
	for _, rel := range files {
		want, err := assets.ReadFile(rel)
		if err != nil {
			t.Fatalf("read template %s: %v", rel, err)
		}
		got, err := os.ReadFile(filepath.Join(tmpDir, DirName, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("installed file missing: %s: %v", rel, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("content mismatch for %s", rel)
		}
	}

	// And nothing invented: destination file count matches the template.
	var installed int
	err = filepath.WalkDir(filepath.Join(tmpDir, DirName), func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			installed++
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if installed != len(files) {
		t.Errorf("destination has %d files, template has %d", installed, len(files))
	}
}

func TestInstallSecondRunSkips(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Install(tmpDir, nil); err != nil {
		t.Fatalf("first install failed: %v", err)
	}

	// Customize a file, then re-run. The second run must not touch it.
	readme := filepath.Join(tmpDir, DirName, "README.md")
	custom := []byte("# my customized workspace\n")
	if err := os.WriteFile(readme, custom, 0644); err != nil {
		t.Fatal(err)
	}

	report, err := Install(tmpDir, nil)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	if report != nil {
		t.Errorf("expected nil report on skip, got %+v", report)
	}

	got, err := os.ReadFile(readme)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, custom) {
		t.Error("second run overwrote a customized file")
	}
}

func TestInstallProgressCallback(t *testing.T) {
	tmpDir := t.TempDir()

	seen := make(map[string]string)
	_, err := Install(tmpDir, func(path, status string) {
		seen[path] = status
	})
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}

	files, _ := assets.Files()
	if len(seen) != len(files) {
		t.Errorf("progress reported %d files, expected %d", len(seen), len(files))
	}
	for path, status := range seen {
		if status != "installed" {
			t.Errorf("file %s has status %q", path, status)
		}
	}
}

func TestInstallReportCategories(t *testing.T) {
	tmpDir := t.TempDir()

	report, err := Install(tmpDir, nil)
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if report.Skills == 0 {
		t.Error("expected at least one skill file")
	}
	if report.Docs == 0 {
		t.Error("expected at least one docs file")
	}
	if report.Skills+report.Docs+report.Other != report.Total() {
		t.Errorf("category counts %d+%d+%d don't sum to total %d",
			report.Skills, report.Docs, report.Other, report.Total())
	}
	if report.Dest != filepath.Join(tmpDir, DirName) {
		t.Errorf("report.Dest = %s", report.Dest)
	}
}

func TestInstallReadOnlyTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks don't apply")
	}
	tmpDir := t.TempDir()
	if err := os.Chmod(tmpDir, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(tmpDir, 0755)

	report, err := Install(tmpDir, nil)
	if err == nil {
		t.Fatal("expected error installing into read-only directory")
	}
	if report != nil {
		t.Error("must not report success on failure")
	}
}
