package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lithoprof/lithosphere"
	"gopkg.in/yaml.v3"
)

// Load reads and maps the run file at path.
//
// Errors: the os error when the file cannot be read;
// lithosphere.ErrInvalidConfiguration for YAML that does not parse, unknown
// keys, or invalid values.
func Load(path string) (Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config.Load %s: %w", path, err)
	}

	run, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Run{}, fmt.Errorf("config.Load %s: %w", path, err)
	}

	return run, nil
}

// Decode parses a run document from r. An empty document yields Default().
func Decode(r io.Reader) (Run, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var dto YAMLRun
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("config.Decode: %v: %w", err, lithosphere.ErrInvalidConfiguration)
	}

	run, err := MapRun(dto)
	if err != nil {
		return Run{}, fmt.Errorf("config.Decode: %w", err)
	}

	return run, nil
}
