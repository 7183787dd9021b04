package log

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/pflag"
)

// ErrReadConfig indicates a config file that could not be decoded.
var ErrReadConfig = errors.New("read config")

// File is the on-disk form of a [Config].
type File struct {
	Level      string `json:"level,omitempty"      yaml:"level,omitempty"      jsonschema:"minimum severity written"`
	Format     string `json:"format,omitempty"     yaml:"format,omitempty"     jsonschema:"output format"`
	Color      string `json:"color,omitempty"      yaml:"color,omitempty"      jsonschema:"when to color output"`
	Header     string `json:"header,omitempty"     yaml:"header,omitempty"     jsonschema:"header written with every log line"`
	TimeFormat string `json:"timeFormat,omitempty" yaml:"timeFormat,omitempty" jsonschema:"permutation of %H and %M and %S joined by colons"`
}

// File returns the current values of c as a [File].
func (c *Config) File() File {
	return File{
		Level:      c.Level,
		Format:     c.Format,
		Color:      c.Color,
		Header:     c.Header,
		TimeFormat: c.TimeFormat,
	}
}

// ApplyFile decodes a YAML config file into c. Unknown keys are rejected.
//
// A value from the file is applied only when the corresponding flag in flags
// was not set on the command line, so flags take precedence. A nil flags
// applies every value present in the file.
func (c *Config) ApplyFile(data []byte, flags *pflag.FlagSet) error {
	var f File

	err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	fields := []struct {
		dst  *string
		flag string
		val  string
	}{
		{&c.Level, c.Flags.Level, f.Level},
		{&c.Format, c.Flags.Format, f.Format},
		{&c.Color, c.Flags.Color, f.Color},
		{&c.Header, c.Flags.Header, f.Header},
		{&c.TimeFormat, c.Flags.TimeFormat, f.TimeFormat},
	}

	for _, field := range fields {
		if field.val == "" {
			continue
		}

		if flags != nil && flags.Changed(field.flag) {
			continue
		}

		*field.dst = field.val
	}

	return nil
}

// YAML encodes f as a YAML document.
func (f File) YAML() ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return out, nil
}

// Schema returns the JSON Schema describing [File].
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("generating config schema: %w", err)
	}

	enums := map[string][]string{
		"level":  GetAllLevelStrings(),
		"format": GetAllFormatStrings(),
		"color":  GetAllColorModeStrings(),
	}

	for name, values := range enums {
		prop, ok := schema.Properties[name]
		if !ok {
			continue
		}

		for _, v := range values {
			prop.Enum = append(prop.Enum, v)
		}
	}

	return schema, nil
}
