// Package config provides serializers and deserializers (serdes) that
// convert between configuration strings and richer values.
//
// A SerDe is a small stateless strategy: implementations describe how a
// value is encoded so that generated documentation can show callers what to
// type, and perform the conversion in both directions. Built-in serdes are
// registered under well-known names; applications may register their own.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Metadata carries optional hints to a serde, such as the list separator.
type Metadata map[string]any

// MetadataSeparator is the metadata key holding a list separator override.
const MetadataSeparator = "separator"

// SerDe converts a configuration value to and from its string form.
type SerDe interface {
	// Description says what the encoded string contains. It is used in
	// generated documentation.
	Description() string

	// Example is a sample encoded string for documentation.
	Example() string

	// Serialize encodes a value into its string form.
	Serialize(value any, md Metadata) (string, error)

	// Deserialize restores a value from its string form.
	Deserialize(raw string, md Metadata) (any, error)
}

// separator returns the configured separator or the given default.
func (md Metadata) separator(def string) string {
	if md == nil {
		return def
	}
	if sep, ok := md[MetadataSeparator].(string); ok && sep != "" {
		return sep
	}
	return def
}

// StringSerDe encodes strings as themselves.
type StringSerDe struct{}

// Description implements SerDe.
func (StringSerDe) Description() string { return "Plain string value" }

// Example implements SerDe.
func (StringSerDe) Example() string { return "abcdefgh" }

// Serialize implements SerDe.
func (StringSerDe) Serialize(value any, _ Metadata) (string, error) {
	return cast.ToStringE(value)
}

// Deserialize implements SerDe.
func (StringSerDe) Deserialize(raw string, _ Metadata) (any, error) {
	return raw, nil
}

// IntegerListSerDe encodes a list of integers as a separated string.
// The separator defaults to ", " when serializing and "," when
// deserializing, and can be overridden via MetadataSeparator.
type IntegerListSerDe struct{}

// Description implements SerDe.
func (IntegerListSerDe) Description() string { return "Comma-separated list of integers" }

// Example implements SerDe.
func (IntegerListSerDe) Example() string { return "0, 1, 2" }

// Serialize implements SerDe.
func (IntegerListSerDe) Serialize(value any, md Metadata) (string, error) {
	ints, err := cast.ToIntSliceE(value)
	if err != nil {
		return "", fmt.Errorf("serialize integer list: %w", err)
	}
	parts := make([]string, len(ints))
	for i, v := range ints {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, md.separator(", ")), nil
}

// Deserialize implements SerDe.
func (IntegerListSerDe) Deserialize(raw string, md Metadata) (any, error) {
	parts := strings.Split(raw, md.separator(","))
	ints := make([]int, len(parts))
	for i, p := range parts {
		v, err := cast.ToIntE(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("deserialize integer list element %q: %w", p, err)
		}
		ints[i] = v
	}
	return ints, nil
}

// FloatListSerDe encodes a list of floats as a separated string.
type FloatListSerDe struct{}

// Description implements SerDe.
func (FloatListSerDe) Description() string { return "Comma-separated list of floating point numbers" }

// Example implements SerDe.
func (FloatListSerDe) Example() string { return "0.2, 0.4, 0.6" }

// Serialize implements SerDe.
func (FloatListSerDe) Serialize(value any, md Metadata) (string, error) {
	floats, err := toFloatSlice(value)
	if err != nil {
		return "", fmt.Errorf("serialize float list: %w", err)
	}
	parts := make([]string, len(floats))
	for i, v := range floats {
		parts[i] = cast.ToString(v)
	}
	return strings.Join(parts, md.separator(", ")), nil
}

// Deserialize implements SerDe.
func (FloatListSerDe) Deserialize(raw string, md Metadata) (any, error) {
	parts := strings.Split(raw, md.separator(","))
	floats := make([]float64, len(parts))
	for i, p := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("deserialize float list element %q: %w", p, err)
		}
		floats[i] = v
	}
	return floats, nil
}

// toFloatSlice coerces common slice shapes into []float64.
func toFloatSlice(value any) ([]float64, error) {
	switch vs := value.(type) {
	case []float64:
		return vs, nil
	case []float32:
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = float64(v)
		}
		return out, nil
	case []int:
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = float64(v)
		}
		return out, nil
	case []any:
		out := make([]float64, len(vs))
		for i, v := range vs {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported float list type %T", value)
	}
}

// BoolSerDe encodes booleans with the usual relaxed spellings on input.
type BoolSerDe struct{}

// Description implements SerDe.
func (BoolSerDe) Description() string { return "Boolean value (true/false, yes/no, 1/0)" }

// Example implements SerDe.
func (BoolSerDe) Example() string { return "true" }

// Serialize implements SerDe.
func (BoolSerDe) Serialize(value any, _ Metadata) (string, error) {
	b, err := cast.ToBoolE(value)
	if err != nil {
		return "", fmt.Errorf("serialize bool: %w", err)
	}
	if b {
		return "true", nil
	}
	return "false", nil
}

// Deserialize implements SerDe.
func (BoolSerDe) Deserialize(raw string, _ Metadata) (any, error) {
	b, err := cast.ToBoolE(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("deserialize bool %q: %w", raw, err)
	}
	return b, nil
}

// DurationSerDe encodes time.Duration values in Go duration syntax.
type DurationSerDe struct{}

// Description implements SerDe.
func (DurationSerDe) Description() string { return "Duration in Go syntax" }

// Example implements SerDe.
func (DurationSerDe) Example() string { return "1m30s" }

// Serialize implements SerDe.
func (DurationSerDe) Serialize(value any, _ Metadata) (string, error) {
	d, err := cast.ToDurationE(value)
	if err != nil {
		return "", fmt.Errorf("serialize duration: %w", err)
	}
	return d.String(), nil
}

// Deserialize implements SerDe.
func (DurationSerDe) Deserialize(raw string, _ Metadata) (any, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("deserialize duration %q: %w", raw, err)
	}
	return d, nil
}

// YAMLSerDe encodes arbitrary structured values as YAML documents, for
// configuration entries too rich for the scalar serdes.
type YAMLSerDe struct{}

// Description implements SerDe.
func (YAMLSerDe) Description() string { return "YAML document" }

// Example implements SerDe.
func (YAMLSerDe) Example() string { return "{name: camera-1, fps: 30}" }

// Serialize implements SerDe.
func (YAMLSerDe) Serialize(value any, _ Metadata) (string, error) {
	out, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("serialize yaml: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// Deserialize implements SerDe.
func (YAMLSerDe) Deserialize(raw string, _ Metadata) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("deserialize yaml: %w", err)
	}
	return value, nil
}
