// Package config loads check definitions from YAML or CSV files.
//
// Every definition is validated when it is loaded: the address and port are
// checked by checker.New and the positional arguments by Check.Args, so a
// malformed file is rejected before any probe runs. Problems are reported
// with their position in the source and all of them are returned together.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khanhnv2901/scorecheck/internal/checker"
	sharedErrors "github.com/khanhnv2901/scorecheck/internal/shared/errors"
)

// Format identifies a check definition file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Definition is one check as written in a definitions file.
type Definition struct {
	Name    string   `yaml:"name"`
	Address string   `yaml:"address"`
	Port    int      `yaml:"port"`
	Type    string   `yaml:"type"`
	Args    []string `yaml:"args"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q (want .yaml, .yml or .csv)", sharedErrors.ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadFile reads and validates the definitions in path. Valid checks are
// returned even when the error is non-nil so callers may choose to run them.
func LoadFile(path string) ([]*checker.Check, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) // #nosec G304 -- operator supplied definitions file
	if err != nil {
		return nil, fmt.Errorf("open checks file: %w", err)
	}
	defer f.Close()

	checks, err := load(f, format, filepath.Base(path))
	return checks, err
}

// Load reads definitions in the given format from r.
func Load(r io.Reader, format Format) ([]*checker.Check, error) {
	return load(r, format, "")
}

func load(r io.Reader, format Format, source string) ([]*checker.Check, error) {
	var (
		defs []positioned
		err  error
	)
	switch format {
	case FormatYAML:
		defs, err = decodeYAML(r)
	case FormatCSV:
		defs, err = decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", sharedErrors.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, prefix(source, err)
	}

	checks := make([]*checker.Check, 0, len(defs))
	var errs []error
	for _, d := range defs {
		if d.err != nil {
			errs = append(errs, at(source, d.line, d.err))
			continue
		}
		c, err := Build(d.def)
		if err != nil {
			errs = append(errs, at(source, d.line, err))
			continue
		}
		checks = append(checks, c)
	}
	return checks, errors.Join(errs...)
}

// Build turns a definition into a validated check.
func Build(d Definition) (*checker.Check, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", sharedErrors.ErrInvalidDefinition)
	}
	if strings.TrimSpace(d.Type) == "" {
		return nil, fmt.Errorf("%w: check %q has no type", sharedErrors.ErrInvalidDefinition, d.Name)
	}
	c, err := checker.New(d.Name, d.Address, d.Port, d.Type, d.Args...)
	if err != nil {
		return nil, err
	}
	if _, err := c.Args(); err != nil {
		return nil, err
	}
	return c, nil
}

// positioned is a decoded definition tagged with its source line. err is set
// when the entry could not be decoded at all.
type positioned struct {
	line int
	def  Definition
	err  error
}

func at(source string, line int, err error) error {
	if source == "" {
		return fmt.Errorf("line %d: %w", line, err)
	}
	return fmt.Errorf("%s:%d: %w", source, line, err)
}

func prefix(source string, err error) error {
	if source == "" {
		return err
	}
	return fmt.Errorf("%s: %w", source, err)
}
