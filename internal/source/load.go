package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/schedview/internal/model"
)

// Format identifies a configuration file format.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatCUE    Format = "cue"
	FormatSQLite Format = "sqlite"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, true
	case ".cue":
		return FormatCUE, true
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, true
	default:
		return "", false
	}
}

// LoadFile loads a schedule from path, picking the loader by extension.
func LoadFile(ctx context.Context, path string) (model.Schedule, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return model.Schedule{}, &LoadError{Code: ErrCodeNotFound, Message: "schedule file not found", Path: path}
	}
	if err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeNotFound, Message: "error accessing schedule file", Path: path, Err: err}
	}
	if info.IsDir() {
		return model.Schedule{}, &LoadError{Code: ErrCodeNotFound, Message: "not a file", Path: path}
	}

	format, ok := DetectFormat(path)
	if !ok {
		return model.Schedule{}, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported extension %q: use .yaml, .yml, .json, .cue, .db or .sqlite", filepath.Ext(path)),
			Path:    path,
		}
	}

	switch format {
	case FormatCUE:
		return loadCUEFile(path)
	case FormatSQLite:
		return LoadSQLite(ctx, path)
	default:
		return loadYAMLFile(path)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to read schedule file", Path: path, Err: err}
	}
	return data, nil
}
