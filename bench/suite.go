package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Suite describes a benchmark run loaded from YAML:
//
//	texts:
//	  - name: public1
//	    path: public1.txt
//	    patterns: [алгоритм, шинапотплгп]
//	repeat: 3
//	algorithms: [rabin-karp, boyer-moore, kmp]
type Suite struct {
	Texts      []TextSpec `yaml:"texts" json:"texts"`
	Repeat     int        `yaml:"repeat" json:"repeat"`
	Algorithms []string   `yaml:"algorithms" json:"algorithms"`

	// dir resolves relative text paths; it is the suite file's directory.
	dir string
}

// TextSpec names one text file and the patterns to search in it.
type TextSpec struct {
	Name     string   `yaml:"name" json:"name"`
	Path     string   `yaml:"path" json:"path"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	return ParseSuite(data, filepath.Dir(path))
}

// ParseSuite decodes a suite; relative text paths resolve against dir.
func ParseSuite(data []byte, dir string) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	s.dir = dir
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the suite and fills default text names.
func (s *Suite) Validate() error {
	if len(s.Texts) == 0 {
		return fmt.Errorf("%w: no texts", ErrInvalidSuite)
	}
	if s.Repeat < 0 {
		return fmt.Errorf("%w: repeat must not be negative (got %d)", ErrInvalidSuite, s.Repeat)
	}
	for i := range s.Texts {
		t := &s.Texts[i]
		if t.Path == "" {
			return fmt.Errorf("%w: texts[%d] has no path", ErrInvalidSuite, i)
		}
		if len(t.Patterns) == 0 {
			return fmt.Errorf("%w: texts[%d] (%s) has no patterns", ErrInvalidSuite, i, t.Path)
		}
		if t.Name == "" {
			base := filepath.Base(t.Path)
			t.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	for _, name := range s.Algorithms {
		if _, err := Lookup[rune](name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSuite, err)
		}
	}

	return nil
}

// Cases reads every text file and expands one Case per pattern.
func (s *Suite) Cases() ([]Case, error) {
	var cases []Case
	for _, t := range s.Texts {
		path := t.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		text, err := ReadText(path)
		if err != nil {
			return nil, err
		}
		for _, p := range t.Patterns {
			cases = append(cases, Case{
				Name:    t.Name + "/" + p,
				Text:    text,
				Pattern: []rune(p),
			})
		}
	}

	return cases, nil
}

// Options converts the suite's run settings into Runner options.
func (s *Suite) Options() []Option {
	var opts []Option
	if s.Repeat > 0 {
		opts = append(opts, WithRepeat(s.Repeat))
	}
	if len(s.Algorithms) > 0 {
		opts = append(opts, WithAlgorithms(s.Algorithms...))
	}

	return opts
}

// ReadText loads a UTF-8 file as code points.
func ReadText(path string) ([]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	return []rune(string(data)), nil
}
