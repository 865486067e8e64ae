// Package argtypes declares the editable arguments of a story group and
// validates argument values against them.
package argtypes

import (
	"encoding/json"
	"fmt"
	"strings"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// ControlKind is the editing widget attached to an argument.
type ControlKind string

const (
	ControlText    ControlKind = "text"
	ControlSelect  ControlKind = "select"
	ControlColor   ControlKind = "color"
	ControlDate    ControlKind = "date"
	ControlBoolean ControlKind = "boolean"
)

// Valid reports whether k is a known control kind.
func (k ControlKind) Valid() bool {
	switch k {
	case ControlText, ControlSelect, ControlColor, ControlDate, ControlBoolean:
		return true
	}
	return false
}

// Descriptor describes one argument. Options is only set for select controls.
type Descriptor struct {
	Control     ControlKind `json:"control"`
	Options     []string    `json:"options,omitempty"`
	Description string      `json:"description,omitempty"`
}

// Allows reports whether value is one of the select options.
func (d Descriptor) Allows(value string) bool {
	for _, opt := range d.Options {
		if opt == value {
			return true
		}
	}
	return false
}

func Text(description string) Descriptor {
	return Descriptor{Control: ControlText, Description: description}
}

func Select(description string, options ...string) Descriptor {
	return Descriptor{Control: ControlSelect, Options: options, Description: description}
}

func Color(description string) Descriptor {
	return Descriptor{Control: ControlColor, Description: description}
}

func Date(description string) Descriptor {
	return Descriptor{Control: ControlDate, Description: description}
}

func Boolean(description string) Descriptor {
	return Descriptor{Control: ControlBoolean, Description: description}
}

// Field pairs an argument name with its descriptor.
type Field struct {
	Name string `json:"name"`
	Descriptor
}

// Arg is shorthand for building a Field.
func Arg(name string, d Descriptor) Field {
	return Field{Name: name, Descriptor: d}
}

// Schema is an ordered set of argument descriptors. The zero value is not
// usable; build one with NewSchema.
type Schema struct {
	order  []string
	fields map[string]Descriptor
}

// NewSchema builds a schema in declaration order.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]Descriptor, len(fields)),
	}

	for i, f := range fields {
		path := fmt.Sprintf("argTypes[%d]", i)
		if strings.TrimSpace(f.Name) == "" {
			return nil, storyerrors.NewValidationError(path, "argument name is empty", nil)
		}
		if _, dup := s.fields[f.Name]; dup {
			return nil, storyerrors.NewValidationError(path, fmt.Sprintf("argument %q declared twice", f.Name), nil)
		}
		if !f.Control.Valid() {
			return nil, storyerrors.NewValidationError(path, fmt.Sprintf("argument %q has unknown control %q", f.Name, f.Control), nil)
		}
		if f.Control == ControlSelect && len(f.Options) == 0 {
			return nil, storyerrors.NewValidationError(path, fmt.Sprintf("select argument %q needs options", f.Name), nil)
		}
		if f.Control != ControlSelect && len(f.Options) > 0 {
			return nil, storyerrors.NewValidationError(path, fmt.Sprintf("argument %q declares options but is a %s control", f.Name, f.Control), nil)
		}

		d := f.Descriptor
		d.Options = append([]string(nil), f.Options...)
		s.order = append(s.order, f.Name)
		s.fields[f.Name] = d
	}

	return s, nil
}

// MustSchema is NewSchema for declarations known to be valid.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns argument names in declaration order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Lookup returns the descriptor for name.
func (s *Schema) Lookup(name string) (Descriptor, bool) {
	if s == nil {
		return Descriptor{}, false
	}
	d, ok := s.fields[name]
	return d, ok
}

// Len returns the number of declared arguments.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	out := make([]Field, 0, len(s.order))
	for _, name := range s.order {
		d := s.fields[name]
		d.Options = append([]string(nil), d.Options...)
		out = append(out, Field{Name: name, Descriptor: d})
	}
	return out
}

// MarshalJSON encodes the schema as an ordered array of fields.
func (s *Schema) MarshalJSON() ([]byte, error) {
	fields := s.Fields()
	if fields == nil {
		fields = []Field{}
	}
	return json.Marshal(fields)
}
