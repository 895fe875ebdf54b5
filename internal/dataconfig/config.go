// Package dataconfig models the descriptor a loader consumes to import a
// package of CSV files: one Input per file, each with the Binds that turn
// textual cells back into references.
package dataconfig

import (
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of the descriptor file.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Config is shared by every exporter contributing to the same package.
type Config struct {
	XMLName xml.Name `xml:"csv-inputs" yaml:"-"`
	Inputs  []Input  `xml:"input" yaml:"inputs"`
}

// Input locates the rows of one file on re-import.
type Input struct {
	File     string `xml:"file,attr" yaml:"file"`
	Type     string `xml:"type,attr" yaml:"type"`
	Callable string `xml:"call,attr,omitempty" yaml:"call,omitempty"`
	Search   string `xml:"search,attr" yaml:"search"`
	Binds    []Bind `xml:"bind" yaml:"binds,omitempty"`
}

// Bind resolves the cell in Column into the relation To using the Search
// query, where :name placeholders are bound to the row's columns.
type Bind struct {
	Column    string `xml:"column,attr" yaml:"column"`
	To        string `xml:"to,attr" yaml:"to"`
	Search    string `xml:"search,attr" yaml:"search"`
	Expr      string `xml:"eval,attr,omitempty" yaml:"eval,omitempty"`
	Condition string `xml:"if,attr,omitempty" yaml:"if,omitempty"`
	Update    bool   `xml:"update,attr" yaml:"update"`
	Required  bool   `xml:"required,attr,omitempty" yaml:"required,omitempty"`
}

// Add appends inputs in order.
func (c *Config) Add(inputs ...Input) {
	c.Inputs = append(c.Inputs, inputs...)
}

// Empty reports whether no input was added.
func (c *Config) Empty() bool {
	return len(c.Inputs) == 0
}

// Encode renders the config in the given format.
func Encode(c *Config, format Format) ([]byte, error) {
	switch format {
	case FormatXML, "":
		out, err := xml.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal xml: %w", err)
		}
		return append([]byte(xml.Header), append(out, '\n')...), nil
	case FormatYAML:
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown descriptor format %q", format)
	}
}

// Decode parses a config previously produced by Encode.
func Decode(data []byte, format Format) (*Config, error) {
	var c Config
	switch format {
	case FormatXML, "":
		if err := xml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshal xml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown descriptor format %q", format)
	}
	return &c, nil
}

// FileName is the name of the descriptor inside a package.
func FileName(prefix string, format Format) string {
	if format == "" {
		format = FormatXML
	}
	return prefix + "input-config." + string(format)
}
