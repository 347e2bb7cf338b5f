package levelpack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type packFile struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Levels [][]string `yaml:"levels"`
}

// LoadFile reads a level pack from a YAML file and validates it. The file
// carries an id, a title, and a list of levels, each a list of rows:
//
//	id: mypack
//	title: My Pack
//	levels:
//	  - - "@@@@"
//	    - "@##@"
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("levelpack: cannot read pack file %s: %w", path, err)
	}

	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Pack{}, fmt.Errorf("levelpack: cannot parse pack file %s: %w", path, err)
	}

	p := Pack{ID: pf.ID, Title: pf.Title, Levels: pf.Levels}
	if p.Title == "" {
		p.Title = p.ID
	}
	if err := Validate(p); err != nil {
		return Pack{}, err
	}

	return p, nil
}
