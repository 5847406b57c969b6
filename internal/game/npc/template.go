package npc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
)

// Template is a reusable generation preset loaded from YAML, for example
// "harbor crowd of Venice". Fields left empty are drawn per character.
type Template struct {
	ID            string         `yaml:"id"`
	Description   string         `yaml:"description"`
	Zone          culture.Zone   `yaml:"zone"`
	Era           culture.Era    `yaml:"era"`
	Gender        culture.Gender `yaml:"gender"`
	Wealth        culture.Wealth `yaml:"wealth"`
	Region        string         `yaml:"region"`
	Occasion      string         `yaml:"occasion"`
	PreferredRole string         `yaml:"preferred_role"`
	// Count is how many characters one run of the template produces.
	Count int `yaml:"count"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID is non-empty, Zone and Era are valid,
// Count >= 0 and every other non-empty coordinate field is valid.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if !t.Zone.Valid() {
		return fmt.Errorf("npc template %q: unknown zone %q", t.ID, t.Zone)
	}
	if !t.Era.Valid() {
		return fmt.Errorf("npc template %q: unknown era %q", t.ID, t.Era)
	}
	if t.Count < 0 {
		return fmt.Errorf("npc template %q: count must be >= 0", t.ID)
	}
	if err := t.Request(0).Validate(); err != nil {
		return fmt.Errorf("npc template %q: %w", t.ID, err)
	}
	return nil
}

// Request builds the generation request for one character of the template.
func (t *Template) Request(seed int64) Request {
	return Request{
		Seed:          seed,
		Zone:          t.Zone,
		Era:           t.Era,
		Gender:        t.Gender,
		Wealth:        t.Wealth,
		Region:        t.Region,
		Occasion:      t.Occasion,
		PreferredRole: t.PreferredRole,
	}
}

// Size returns Count, treating zero as one.
func (t *Template) Size() int {
	return max(t.Count, 1)
}

// LoadTemplateFromBytes parses a single template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
