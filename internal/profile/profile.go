package profile

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/profile.yaml
var profileYAML []byte

// CategoryName is one of the fixed skill category labels.
type CategoryName string

const (
	CategoryProgrammingLanguages CategoryName = "Programming Languages"
	CategoryFrontend             CategoryName = "Frontend"
	CategoryBackend              CategoryName = "Backend"
	CategoryAIRobotics           CategoryName = "AI & Robotics"
	CategoryDatabases            CategoryName = "Databases"
	CategoryToolsDevOps          CategoryName = "Tools & DevOps"
	CategorySimulation           CategoryName = "Simulation"
	CategoryCAD                  CategoryName = "CAD"
)

var knownCategories = map[CategoryName]bool{
	CategoryProgrammingLanguages: true,
	CategoryFrontend:             true,
	CategoryBackend:              true,
	CategoryAIRobotics:           true,
	CategoryDatabases:            true,
	CategoryToolsDevOps:          true,
	CategorySimulation:           true,
	CategoryCAD:                  true,
}

// Skill is a single named skill.
type Skill struct {
	Name string `json:"name" yaml:"name"`
}

// SkillCategory groups skills under one of the fixed labels.
type SkillCategory struct {
	Category CategoryName `json:"category" yaml:"category"`
	Skills   []Skill      `json:"skills" yaml:"skills"`
}

// ItemKind tells education and work entries apart.
type ItemKind string

const (
	KindEducation  ItemKind = "education"
	KindExperience ItemKind = "experience"
)

// TimelineItem is one education or experience entry.
type TimelineItem struct {
	Type         ItemKind `json:"type" yaml:"type"`
	Title        string   `json:"title" yaml:"title"`
	Organization string   `json:"organization" yaml:"organization"`
	// OrganizationLink is optional.
	OrganizationLink string   `json:"organizationLink,omitempty" yaml:"organization_link"`
	Period           string   `json:"period" yaml:"period"`
	Description      string   `json:"description" yaml:"description"`
	Achievements     []string `json:"achievements,omitempty" yaml:"achievements"`
}

// Profile is the owner's reference data: who they are, what they know, where they have been.
// It is loaded once at start and never mutated.
type Profile struct {
	Owner    string          `json:"owner" yaml:"owner"`
	Skills   []SkillCategory `json:"skills" yaml:"skills"`
	Timeline []TimelineItem  `json:"timeline" yaml:"timeline"`
}

// Load parses the profile compiled into the binary.
func Load() (*Profile, error) {
	return Parse(profileYAML)
}

// Parse decodes and validates profile YAML.
// Entries keep the order they were authored in.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not parse profile data: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile data: %w", err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	if p.Owner == "" {
		return fmt.Errorf("owner is empty")
	}

	seen := make(map[CategoryName]bool, len(p.Skills))
	for _, c := range p.Skills {
		if !knownCategories[c.Category] {
			return fmt.Errorf("unknown skill category %q", c.Category)
		}
		if seen[c.Category] {
			return fmt.Errorf("skill category %q listed twice", c.Category)
		}
		seen[c.Category] = true
		for _, s := range c.Skills {
			if s.Name == "" {
				return fmt.Errorf("skill without a name in category %q", c.Category)
			}
		}
	}

	for i, item := range p.Timeline {
		if item.Type != KindEducation && item.Type != KindExperience {
			return fmt.Errorf("timeline entry %d has unknown type %q", i, item.Type)
		}
		if item.Title == "" {
			return fmt.Errorf("timeline entry %d has no title", i)
		}
	}
	return nil
}
