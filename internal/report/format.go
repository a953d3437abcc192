package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/pointproc/internal/events"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q: %w", name, events.ErrInvalidArgument)
	}
}

// Marshal encodes v in format f.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := sonic.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("JSON encoding error: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("YAML encoding error: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("TOML encoding error: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q: %w", f, events.ErrInvalidArgument)
	}
}

// Write encodes v to w.
func Write(w io.Writer, v any, f Format) error {
	data, err := Marshal(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Unmarshal decodes data in format f into v.
func Unmarshal(data []byte, v any, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		err = sonic.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unknown format %q: %w", f, events.ErrInvalidArgument)
	}
	if err != nil {
		return fmt.Errorf("%s decoding error: %w", strings.ToUpper(string(f)), err)
	}
	return nil
}
