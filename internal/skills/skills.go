// Package skills parses the skill files bundled in the template tree.
//
// A skill is a skills/<name>/SKILL.md file with optional YAML frontmatter:
//
//	---
//	name: generate-module
//	description: Scaffold a complete NestJS module
//	---
//	instructions...
//
// The tool only reads name and description for listings; the body stays
// opaque and is consumed by the AI assistant, not by gqlify.
package skills

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/nqcccccc/GQLify/internal/assets"
)

const skillFileName = "SKILL.md"

// Skill is one bundled skill definition.
type Skill struct {
	Name        string
	Description string
	Path        string // relative path inside the template tree
	Content     string // markdown body without frontmatter
}

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadEmbedded returns every skill bundled in the template tree, sorted by
// name.
func LoadEmbedded() ([]Skill, error) {
	root, err := assets.FS()
	if err != nil {
		return nil, err
	}

	var skills []Skill
	err = fs.WalkDir(root, "skills", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != skillFileName {
			return nil
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		s := parse(string(data), p)
		if s.Name == "" {
			// Directory name is the fallback identifier.
			s.Name = path.Base(path.Dir(p))
		}
		skills = append(skills, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Find returns the skill with the given name.
func Find(skills []Skill, name string) (Skill, bool) {
	for _, s := range skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// Match filters skills whose relative path matches the doublestar pattern.
// A pattern without a slash matches against the skill name instead.
func Match(skills []Skill, pattern string) ([]Skill, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %s", pattern)
	}
	var out []Skill
	for _, s := range skills {
		subject := s.Path
		if !strings.Contains(pattern, "/") {
			subject = s.Name
		}
		ok, err := doublestar.Match(pattern, subject)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// parse splits optional YAML frontmatter from the markdown body. Malformed
// frontmatter is not an error: the whole file becomes the body and the
// caller falls back to the directory name.
func parse(content, filePath string) Skill {
	s := Skill{Path: filePath}

	if !strings.HasPrefix(content, "---") {
		s.Content = strings.TrimSpace(content)
		return s
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		s.Content = strings.TrimSpace(content)
		return s
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		s.Content = strings.TrimSpace(content)
		return s
	}
	s.Name = fm.Name
	s.Description = fm.Description
	s.Content = strings.TrimSpace(parts[2])
	return s
}
