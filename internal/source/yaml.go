package source

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/schedview/internal/model"
)

// LoadYAML parses a schedule from YAML (or JSON) bytes.
// Unknown fields are rejected so typos like "slot:" vs "slots:" surface.
func LoadYAML(data []byte) (model.Schedule, error) {
	var s model.Schedule
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "empty schedule document"}
		}
		return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to parse YAML", Err: err}
	}
	return s, nil
}

func loadYAMLFile(path string) (model.Schedule, error) {
	data, err := readFile(path)
	if err != nil {
		return model.Schedule{}, err
	}
	s, err := LoadYAML(data)
	return s, withPath(err, path)
}

// withPath fills in the file path on a LoadError produced from bytes.
func withPath(err error, path string) error {
	var le *LoadError
	if errors.As(err, &le) && le.Path == "" {
		le.Path = path
	}
	return err
}
