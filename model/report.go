package model

import (
	"bytes"
	"encoding/json"
)

// NotAvailable is the sentinel value for fields that could not be resolved.
const NotAvailable = "N/A"

// Verbosity controls how deep the collectors probe.
type Verbosity int

const (
	VerbosityBasic    Verbosity = 1 // --v
	VerbosityExtended Verbosity = 2 // --vv
	VerbosityDeep     Verbosity = 3 // --vvv
)

// Category names as they appear in terminal output and exports.
const (
	CategoryCPU         = "CPU Components"
	CategoryRAM         = "RAM Components"
	CategoryMotherboard = "Motherboard Components"
	CategoryStorage     = "Storage Components"
	CategoryGPU         = "GPU Components"
	CategoryPCI         = "PCI Devices"
)

// Field is a single name/value pair. Values are always strings, with
// NotAvailable standing in for anything that could not be read.
type Field struct {
	Name  string
	Value string
}

// Category is an ordered set of fields for one hardware category.
// Order is preserved through display and every export format.
type Category struct {
	Name   string
	Fields []Field
}

// Add appends a field, keeping insertion order.
func (c *Category) Add(name, value string) {
	if value == "" {
		value = NotAvailable
	}
	c.Fields = append(c.Fields, Field{Name: name, Value: value})
}

// Get returns the value for a field name.
func (c *Category) Get(name string) (string, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// FieldNames returns the field names in insertion order.
func (c *Category) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

// MarshalJSON emits the category as a JSON object with keys in
// insertion order.
func (c *Category) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range c.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the full hardware inventory for one run. It is assembled once
// by the collector registry and read-only afterwards.
type Report struct {
	Meta       Meta
	Categories []*Category
}

// Category returns the named category, creating it at the end of the
// report when it does not exist yet.
func (r *Report) Category(name string) *Category {
	for _, c := range r.Categories {
		if c.Name == name {
			return c
		}
	}
	c := &Category{Name: name}
	r.Categories = append(r.Categories, c)
	return c
}

// Lookup returns the named category without creating it.
func (r *Report) Lookup(name string) (*Category, bool) {
	for _, c := range r.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
