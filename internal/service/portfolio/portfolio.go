// Package portfolio serves the static profile catalogue.
//
// The catalogue ships embedded in the binary; content.path in the config
// points at a YAML file of the same shape to replace it without a rebuild.
package portfolio

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embeddedContent []byte

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Portfolio() Profile
	Skills() Skills
	Experience() Experience
	Certifications() []Certification
	Resume() Resume
	Contact() ContactCopy
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type portfolioService struct {
	content *Content
}

// New loads the catalogue from path, or the embedded copy when path is empty.
func New(path string) (Service, error) {
	data := embeddedContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentRead, err)
		}
		data = b
	}

	content, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &portfolioService{content: content}, nil
}

// Parse decodes and checks a catalogue document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentInvalid, err)
	}
	if c.Portfolio.Personal.Name == "" {
		return nil, fmt.Errorf("%w: portfolio.personal.name is required", ErrContentInvalid)
	}
	for _, cat := range c.Skills.Categories {
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return nil, fmt.Errorf("%w: skill %q level %d out of range", ErrContentInvalid, s.Name, s.Level)
			}
		}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	return &c, nil
}

func (s *portfolioService) Portfolio() Profile {
	return s.content.Portfolio
}

func (s *portfolioService) Skills() Skills {
	return s.content.Skills
}

func (s *portfolioService) Experience() Experience {
	return s.content.Experience
}

func (s *portfolioService) Certifications() []Certification {
	return s.content.Certifications
}

func (s *portfolioService) Resume() Resume {
	return s.content.Resume
}

func (s *portfolioService) Contact() ContactCopy {
	return s.content.Contact
}
