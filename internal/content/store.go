package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

// Load reads the portfolio from a YAML file. An empty path selects the
// content compiled into the binary.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Parse(defaultPortfolio)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Default returns the embedded portfolio. It panics if the embedded file is
// invalid, which is caught by the package tests.
func Default() *Portfolio {
	p, err := Parse(defaultPortfolio)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	p.normalize()

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return &p, nil
}

// Validate checks that the portfolio is well-formed.
func (p *Portfolio) Validate() error {
	if p.Personal.Name == "" {
		return fmt.Errorf("personal name is required")
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			return fmt.Errorf("project at index %d missing id", i)
		}
		if seen[proj.ID] {
			return fmt.Errorf("duplicate project id %q", proj.ID)
		}
		seen[proj.ID] = true

		if proj.Title == "" {
			return fmt.Errorf("project %s missing title", proj.ID)
		}
		for j, img := range proj.Images {
			if img == "" {
				return fmt.Errorf("project %s image %d is empty", proj.ID, j)
			}
		}
	}

	for i, cert := range p.Certifications {
		if cert.Name == "" {
			return fmt.Errorf("certification at index %d missing name", i)
		}
	}

	return nil
}

func (p *Portfolio) normalize() {
	p.Personal.Description = collapseSpace(p.Personal.Description)
	for i := range p.Projects {
		if live := p.Projects[i].Links.Live; live != nil && strings.TrimSpace(*live) == "" {
			p.Projects[i].Links.Live = nil
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
