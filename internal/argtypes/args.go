package argtypes

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// DateLayout is the accepted string form of date arguments.
const DateLayout = "2006-01-02"

// Args maps argument names to values.
type Args map[string]any

// Clone returns a shallow copy of a. A nil receiver yields an empty map.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Keys returns the argument names sorted.
func (a Args) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the value of key formatted as text. Missing keys give "".
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the boolean value of key, false when unset.
func (a Args) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Time returns the date value of key, the zero time when unset.
func (a Args) Time(key string) time.Time {
	switch v := a[key].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(DateLayout, v)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

// Merge returns base overlaid with overrides. Neither input is modified.
func Merge(base, overrides Args) Args {
	out := base.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Parse converts textual overrides, as typed on a command line or a query
// string, into Args. Boolean controls are parsed; every other value stays a
// string for Validate to check.
func Parse(schema *Schema, raw map[string]string) (Args, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	args := make(Args, len(raw))
	for name, value := range raw {
		if schema != nil {
			if d, ok := schema.Lookup(name); ok && d.Control == ControlBoolean {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return nil, storyerrors.NewWithDomain(storyerrors.CodeInvalidValue, name, "expected a boolean", []string{"true", "false"})
				}
				args[name] = b
				continue
			}
		}
		args[name] = value
	}
	return args, nil
}
