package course

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/baselearn/internal/exercise"
	"github.com/abhisek/baselearn/internal/matching"
	"github.com/abhisek/baselearn/internal/tutorial"
)

// SupportedMajor is the course format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedFormat is returned for a course whose format version is
// missing, malformed or of a different major version.
var ErrUnsupportedFormat = errors.New("unsupported course format")

//go:embed default.yaml
var defaultCourse []byte

// document mirrors the YAML layout.
type document struct {
	Format  string           `yaml:"format"`
	Title   string           `yaml:"title"`
	Modules []moduleDocument `yaml:"modules"`
}

type moduleDocument struct {
	Title    string            `yaml:"title"`
	Heading  string            `yaml:"heading"`
	Sections []Section         `yaml:"sections"`
	Diagram  *Diagram          `yaml:"diagram"`
	Game     *gameDocument     `yaml:"game"`
	Tutorial *tutorialDocument `yaml:"tutorial"`
}

type gameDocument struct {
	Title        string          `yaml:"title"`
	Instructions string          `yaml:"instructions"`
	Terms        []matching.Term `yaml:"terms"`
}

type tutorialDocument struct {
	Steps    []tutorial.Step    `yaml:"steps"`
	Exercise *exercise.Exercise `yaml:"exercise"`
}

// Default returns the built-in course.
func Default() (Course, error) {
	c, err := Parse(defaultCourse)
	if err != nil {
		return Course{}, fmt.Errorf("built-in course: %w", err)
	}
	return c, nil
}

// Load reads the course at path, or the built-in course when path is empty.
func Load(path string) (Course, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, fmt.Errorf("read course: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Course{}, fmt.Errorf("course %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes, schema-validates and builds a course from YAML.
func Parse(data []byte) (Course, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Course{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return Course{}, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Course{}, fmt.Errorf("decode course: %w", err)
	}

	if !semver.IsValid(doc.Format) || semver.Major(doc.Format) != SupportedMajor {
		return Course{}, fmt.Errorf("%w: %q (want %s.x.y)", ErrUnsupportedFormat, doc.Format, SupportedMajor)
	}

	return build(doc)
}

// build turns a decoded document into a Course, collecting every problem
// rather than stopping at the first.
func build(doc document) (Course, error) {
	c := Course{
		Format:  doc.Format,
		Title:   doc.Title,
		Modules: make([]Module, 0, len(doc.Modules)),
	}

	var errs []error
	for i, md := range doc.Modules {
		m := Module{
			Title:    md.Title,
			Heading:  md.Heading,
			Sections: md.Sections,
			Diagram:  md.Diagram,
		}

		if md.Game != nil {
			key, err := matching.NewAnswerKey(md.Game.Terms)
			if err != nil {
				errs = append(errs, fmt.Errorf("module %d (%s): %w", i, md.Title, err))
			}
			m.Game = &Game{
				Title:        md.Game.Title,
				Instructions: md.Game.Instructions,
				Key:          key,
			}
		}

		if md.Tutorial != nil {
			if _, err := tutorial.New(md.Tutorial.Steps); err != nil {
				errs = append(errs, fmt.Errorf("module %d (%s): %w", i, md.Title, err))
			}
			m.Tutorial = &Tutorial{
				Steps:    md.Tutorial.Steps,
				Exercise: md.Tutorial.Exercise,
			}
		}

		c.Modules = append(c.Modules, m)
	}

	if len(errs) > 0 {
		return Course{}, errors.Join(errs...)
	}
	return c, nil
}
