package argtypes

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/storyshelf/internal/config"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// Validate checks args against schema and returns a normalised copy: date
// strings become time.Time values. Absent arguments are not an error; the
// binder supplies defaults for them. A nil schema accepts any argument set.
func Validate(schema *Schema, args Args) (Args, error) {
	out := make(Args, len(args))
	if schema == nil {
		for k, v := range args {
			out[k] = v
		}
		return out, nil
	}

	for _, name := range args.Keys() {
		value := args[name]
		d, ok := schema.Lookup(name)
		if !ok {
			return nil, storyerrors.NewWithDomain(storyerrors.CodeUnknownArgument, name, "argument is not declared in the schema", schema.Names())
		}
		normalised, err := checkValue(name, d, value)
		if err != nil {
			return nil, err
		}
		out[name] = normalised
	}

	return out, nil
}

func checkValue(name string, d Descriptor, value any) (any, error) {
	switch d.Control {
	case ControlText:
		s, ok := value.(string)
		if !ok {
			return nil, invalidValue(name, d, value)
		}
		return s, nil

	case ControlSelect:
		s, ok := value.(string)
		if !ok || !d.Allows(s) {
			return nil, storyerrors.NewWithDomain(storyerrors.CodeInvalidOption, name, fmt.Sprintf("value %q is not an allowed option", fmt.Sprint(value)), d.Options)
		}
		return s, nil

	case ControlColor:
		s, ok := value.(string)
		if !ok || !config.IsCSSColor(s) {
			return nil, invalidValue(name, d, value)
		}
		return s, nil

	case ControlDate:
		switch v := value.(type) {
		case time.Time:
			return v, nil
		case string:
			t, err := time.Parse(DateLayout, v)
			if err != nil {
				return nil, invalidValue(name, d, value)
			}
			return t, nil
		}
		return nil, invalidValue(name, d, value)

	case ControlBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, invalidValue(name, d, value)
		}
		return b, nil
	}

	return nil, invalidValue(name, d, value)
}

func invalidValue(name string, d Descriptor, value any) error {
	return storyerrors.New(storyerrors.CodeInvalidValue, name, fmt.Sprintf("%v (%T) is not a valid %s value; expected %s", value, value, d.Control, expectation(d.Control)))
}

func expectation(kind ControlKind) string {
	switch kind {
	case ControlText:
		return "a string"
	case ControlColor:
		return "a hex colour or var(--token)"
	case ControlDate:
		return "a time.Time or " + DateLayout + " string"
	case ControlBoolean:
		return "a bool"
	}
	return "a declared control kind"
}
