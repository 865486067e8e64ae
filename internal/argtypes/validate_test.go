package argtypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

func buttonSchema() *Schema {
	return MustSchema(
		Arg("variant", Select("Button style variant", "primary", "secondary", "success", "danger")),
		Arg("label", Text("Button text")),
		Arg("type", Select("Button type attribute", "button", "submit", "reset")),
	)
}

func TestValidateAcceptsSubsetOfSchema(t *testing.T) {
	got, err := Validate(buttonSchema(), Args{"variant": "primary", "label": "Primary Button"})
	require.NoError(t, err)
	assert.Equal(t, Args{"variant": "primary", "label": "Primary Button"}, got)
}

func TestValidateRejectsUnknownArgument(t *testing.T) {
	_, err := Validate(buttonSchema(), Args{"size": "lg"})
	require.ErrorIs(t, err, storyerrors.ErrUnknownArgument)
	assert.Equal(t, "size", storyerrors.KeyOf(err))
	assert.Contains(t, err.Error(), "variant, label, type")
}

func TestValidateRejectsValueOutsideSelectDomain(t *testing.T) {
	_, err := Validate(buttonSchema(), Args{"variant": "huge"})
	require.ErrorIs(t, err, storyerrors.ErrInvalidOption)

	var catalogErr *storyerrors.CatalogError
	require.ErrorAs(t, err, &catalogErr)
	assert.Equal(t, "variant", catalogErr.Key)
	assert.Equal(t, []string{"primary", "secondary", "success", "danger"}, catalogErr.Domain)
}

func TestValidateRejectsEmptySelectValue(t *testing.T) {
	_, err := Validate(buttonSchema(), Args{"type": ""})
	require.ErrorIs(t, err, storyerrors.ErrInvalidOption)
}

func TestValidateChecksControlShapes(t *testing.T) {
	schema := MustSchema(
		Arg("title", Text("")),
		Arg("accent", Color("")),
		Arg("joined", Date("")),
		Arg("disabled", Boolean("")),
	)

	cases := []struct {
		name    string
		args    Args
		wantErr bool
	}{
		{name: "text", args: Args{"title": "Hello"}},
		{name: "text wrong type", args: Args{"title": 3}, wantErr: true},
		{name: "hex colour", args: Args{"accent": "#5E81AC"}},
		{name: "token colour", args: Args{"accent": "var(--primary)"}},
		{name: "named colour rejected", args: Args{"accent": "teal"}, wantErr: true},
		{name: "date string", args: Args{"joined": "2025-11-24"}},
		{name: "date value", args: Args{"joined": time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC)}},
		{name: "bad date", args: Args{"joined": "24/11/2025"}, wantErr: true},
		{name: "boolean", args: Args{"disabled": true}},
		{name: "boolean as string", args: Args{"disabled": "true"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(schema, tc.args)
			if tc.wantErr {
				require.ErrorIs(t, err, storyerrors.ErrInvalidValue)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateNormalisesDates(t *testing.T) {
	schema := MustSchema(Arg("joined", Date("")))

	got, err := Validate(schema, Args{"joined": "2025-11-24"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC), got["joined"])
	assert.Equal(t, "2025-11-24", got.String("joined"))
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	in := Args{"joined": "2025-11-24"}
	_, err := Validate(MustSchema(Arg("joined", Date(""))), in)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-24", in["joined"])
}

func TestValidateWithoutSchemaCopiesArgs(t *testing.T) {
	got, err := Validate(nil, Args{"anything": 1})
	require.NoError(t, err)
	assert.Equal(t, Args{"anything": 1}, got)
}

func TestNewSchemaRejectsMalformedDeclarations(t *testing.T) {
	cases := map[string][]Field{
		"select without options": {Arg("variant", Select(""))},
		"options on text":        {Arg("label", Descriptor{Control: ControlText, Options: []string{"a"}})},
		"unknown control":        {Arg("x", Descriptor{Control: "slider"})},
		"duplicate name":         {Arg("label", Text("")), Arg("label", Text(""))},
		"empty name":             {Arg(" ", Text(""))},
	}

	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSchema(fields...)
			var validationErr *storyerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestSchemaPreservesDeclarationOrder(t *testing.T) {
	schema := buttonSchema()
	assert.Equal(t, []string{"variant", "label", "type"}, schema.Names())

	encoded, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"variant","control":"select","options":["primary","secondary","success","danger"],"description":"Button style variant"},
		{"name":"label","control":"text","description":"Button text"},
		{"name":"type","control":"select","options":["button","submit","reset"],"description":"Button type attribute"}
	]`, string(encoded))
}

func TestMergePrefersOverrides(t *testing.T) {
	base := Args{"variant": "primary", "type": "button"}
	merged := Merge(base, Args{"variant": "danger"})

	assert.Equal(t, Args{"variant": "danger", "type": "button"}, merged)
	assert.Equal(t, "primary", base["variant"])
}

func TestParseConvertsBooleanControls(t *testing.T) {
	schema := MustSchema(
		Arg("label", Text("Field label")),
		Arg("disabled", Boolean("Disable the input")),
	)

	args, err := Parse(schema, map[string]string{"label": "Email", "disabled": "true"})
	require.NoError(t, err)
	assert.Equal(t, Args{"label": "Email", "disabled": true}, args)

	_, err = Parse(schema, map[string]string{"disabled": "maybe"})
	require.ErrorIs(t, err, storyerrors.ErrInvalidValue)
	assert.Equal(t, "disabled", storyerrors.KeyOf(err))

	args, err = Parse(schema, nil)
	require.NoError(t, err)
	assert.Nil(t, args)
}
