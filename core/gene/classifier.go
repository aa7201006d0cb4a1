package gene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed labels.yaml
var defaultLabels []byte

// Classifier maps raw decoder labels to roles. Matching is case-insensitive.
// Exact names win over glob patterns; globs are tried in the order they were
// declared. Labels matching nothing classify as Other.
type Classifier struct {
	exact map[string]Role
	globs []globRule
}

type globRule struct {
	pattern string
	role    Role
}

// NewClassifier returns an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{exact: map[string]Role{}}
}

// Add registers a label name or glob pattern (path.Match syntax) for role.
func (c *Classifier) Add(pattern string, role Role) error {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" {
		return errors.New("empty label pattern")
	}
	if !strings.ContainsAny(p, "*?[") {
		if prev, ok := c.exact[p]; ok && prev != role {
			return fmt.Errorf("label %q mapped to both %s and %s", pattern, prev, role)
		}
		c.exact[p] = role
		return nil
	}
	if _, err := path.Match(p, ""); err != nil {
		return fmt.Errorf("label pattern %q: %w", pattern, err)
	}
	c.globs = append(c.globs, globRule{pattern: p, role: role})
	return nil
}

// Classify returns the role of label.
func (c *Classifier) Classify(label string) Role {
	l := strings.ToLower(label)
	if r, ok := c.exact[l]; ok {
		return r
	}
	for _, g := range c.globs {
		if ok, _ := path.Match(g.pattern, l); ok {
			return g.role
		}
	}
	return Other
}

// ParseClassifier reads a YAML label table:
//
//	roles:
//	  intergenic: ["inter*"]
//	  start: ["start"]
//	  coding: ["cds*"]
func ParseClassifier(data []byte) (*Classifier, error) {
	var doc struct {
		Roles yaml.Node `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("label table: %w", err)
	}
	if doc.Roles.Kind != yaml.MappingNode {
		return nil, errors.New("label table: missing 'roles' mapping")
	}
	c := NewClassifier()
	// Walk the node directly to keep declaration order for glob priority.
	for i := 0; i+1 < len(doc.Roles.Content); i += 2 {
		key := doc.Roles.Content[i].Value
		role, ok := ParseRole(key)
		if !ok {
			return nil, fmt.Errorf("label table line %d: unknown role %q", doc.Roles.Content[i].Line, key)
		}
		var patterns []string
		if err := doc.Roles.Content[i+1].Decode(&patterns); err != nil {
			return nil, fmt.Errorf("label table role %s: %w", key, err)
		}
		for _, p := range patterns {
			if err := c.Add(p, role); err != nil {
				return nil, fmt.Errorf("label table role %s: %w", key, err)
			}
		}
	}
	return c, nil
}

// LoadClassifier reads a YAML label table from path.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseClassifier(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultClassifier returns the label table for the bundled gene models.
func DefaultClassifier() *Classifier {
	c, err := ParseClassifier(defaultLabels)
	if err != nil {
		panic("gene: bad embedded label table: " + err.Error())
	}
	return c
}
