package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

type yamlFile struct {
	Checks []yaml.Node `yaml:"checks"`
}

// decodeYAML keeps each entry as a node so errors can point at its line.
func decodeYAML(r io.Reader) ([]positioned, error) {
	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", sharedErrors.ErrInvalidDefinition, err)
	}

	defs := make([]positioned, 0, len(file.Checks))
	for i := range file.Checks {
		node := &file.Checks[i]
		p := positioned{line: node.Line}
		if node.Kind != yaml.MappingNode {
			p.err = fmt.Errorf("%w: entry %d is not a mapping", sharedErrors.ErrInvalidDefinition, i+1)
		} else if err := node.Decode(&p.def); err != nil {
			p.err = fmt.Errorf("%w: %v", sharedErrors.ErrInvalidDefinition, err)
		}
		defs = append(defs, p)
	}
	return defs, nil
}
