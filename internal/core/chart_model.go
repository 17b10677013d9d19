package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// ChartKind describes how a data series is visualized.
type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Valid reports whether k is one of the known chart kinds.
func (k ChartKind) Valid() bool {
	switch k {
	case ChartPie, ChartBar, ChartLine:
		return true
	}
	return false
}

// JSONSchema restricts the kind to its enumeration.
func (ChartKind) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(ChartPie), string(ChartBar), string(ChartLine)},
		Description: "How the series is drawn",
	}
}

// ChartConfig is one chart definition. Every entry of DataKeys names a numeric
// field present on every point of Data.
type ChartConfig struct {
	Type     ChartKind   `json:"type" yaml:"type"`
	DataKeys []string    `json:"dataKeys" yaml:"dataKeys"`
	Colors   []string    `json:"colors" yaml:"colors"`
	Data     []DataPoint `json:"data" yaml:"data"`
}

// Clone returns a deep copy of c, including every point's values.
func (c ChartConfig) Clone() ChartConfig {
	out := c
	out.DataKeys = slices.Clone(c.DataKeys)
	out.Colors = slices.Clone(c.Colors)
	if c.Data != nil {
		out.Data = make([]DataPoint, len(c.Data))
		for i, p := range c.Data {
			out.Data[i] = p.Clone()
		}
	}
	return out
}

// DataPoint is one category of a chart series: a label stored under LabelKey
// (for example "name" or "month") and one or more named numeric values.
//
// Its wire form is flat: {"name": "Vacant", "value": 30}.
type DataPoint struct {
	LabelKey string
	Label    string
	Values   map[string]float64
}

// NewDataPoint builds a point with a single numeric field. It panics if
// valueKey equals labelKey, since the flat form could not hold both.
func NewDataPoint(labelKey, label, valueKey string, value float64) DataPoint {
	if labelKey == valueKey {
		panic(fmt.Sprintf("core: data point field %q used as both label and value", labelKey))
	}
	return DataPoint{
		LabelKey: labelKey,
		Label:    label,
		Values:   map[string]float64{valueKey: value},
	}
}

// Value returns the numeric field named key.
func (p DataPoint) Value(key string) (float64, bool) {
	v, ok := p.Values[key]
	return v, ok
}

// ValueKeys returns the numeric field names in sorted order.
func (p DataPoint) ValueKeys() []string {
	keys := make([]string, 0, len(p.Values))
	for k := range p.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of p with its own Values map.
func (p DataPoint) Clone() DataPoint {
	p.Values = maps.Clone(p.Values)
	return p
}

func (p DataPoint) flatten() (map[string]any, error) {
	if _, clash := p.Values[p.LabelKey]; clash {
		return nil, fmt.Errorf("data point: field %q used as both label and value", p.LabelKey)
	}
	m := make(map[string]any, len(p.Values)+1)
	for k, v := range p.Values {
		m[k] = v
	}
	m[p.LabelKey] = p.Label
	return m, nil
}

// fromFlat reads a flat mapping: exactly one string field (the label) and any
// number of numeric fields.
func fromFlat(raw map[string]any) (DataPoint, error) {
	out := DataPoint{Values: make(map[string]float64, len(raw))}
	for k, v := range raw {
		switch tv := v.(type) {
		case string:
			if out.LabelKey != "" {
				return DataPoint{}, fmt.Errorf("data point: more than one label field (%q, %q)", out.LabelKey, k)
			}
			out.LabelKey = k
			out.Label = tv
		case float64:
			out.Values[k] = tv
		case int:
			out.Values[k] = float64(tv)
		case int64:
			out.Values[k] = float64(tv)
		case uint64:
			out.Values[k] = float64(tv)
		default:
			return DataPoint{}, fmt.Errorf("data point: field %q must be a string or a number", k)
		}
	}
	if out.LabelKey == "" {
		return DataPoint{}, fmt.Errorf("data point: missing label field")
	}
	return out, nil
}

// MarshalJSON writes the point as a flat object.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	m, err := p.flatten()
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads a flat object. A JSON null leaves p unchanged.
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("data point: %w", err)
	}
	if raw == nil {
		return nil
	}
	out, err := fromFlat(raw)
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalYAML writes the point as a flat mapping.
func (p DataPoint) MarshalYAML() (any, error) {
	return p.flatten()
}

// UnmarshalYAML reads a flat mapping. A YAML null leaves p unchanged.
func (p *DataPoint) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return nil
	}
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("data point: %w", err)
	}
	out, err := fromFlat(raw)
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// JSONSchema describes the flat wire form.
func (DataPoint) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "One label field (string) plus one or more numeric fields named by the chart's dataKeys",
		AdditionalProperties: &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "number"},
			},
		},
	}
}
