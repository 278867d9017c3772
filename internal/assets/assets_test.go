package assets

import (
	"sort"
	"strings"
	"testing"
)

func TestFiles(t *testing.T) {
	files, err := Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("template tree is empty")
	}
	if !sort.StringsAreSorted(files) {
		t.Error("Files not sorted")
	}

	var hasReadme, hasSkill bool
	for _, f := range files {
		if strings.Contains(f, "\\") {
			t.Errorf("path %s is not slash-separated", f)
		}
		if f == "README.md" {
			hasReadme = true
		}
		if strings.HasPrefix(f, "skills/") && strings.HasSuffix(f, "SKILL.md") {
			hasSkill = true
		}
	}
	if !hasReadme {
		t.Error("template missing README.md")
	}
	if !hasSkill {
		t.Error("template missing skill files")
	}
}

func TestReadFile(t *testing.T) {
	data, err := ReadFile("README.md")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("README.md is empty")
	}

	if _, err := ReadFile("does-not-exist.md"); err == nil {
		t.Error("expected error for missing file")
	}
}
