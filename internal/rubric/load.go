package rubric

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile reads a rubric from a YAML file and validates it. Any parse or
// validation failure is fatal for startup, so errors carry ErrMisconfigured
// where the content (not the file access) is at fault.
func LoadFile(path string) (*Rubric, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load rubric file %s: %w", path, err)
	}

	var r Rubric
	if err := k.UnmarshalWithConf("", &r, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: parse rubric file %s: %v", ErrMisconfigured, path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
