package assemble

import (
	"errors"
	"testing"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatName(t *testing.T) {
	out, err := Format("# {name}\n", &core.Character{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "# Bob\n", out)
}

func TestFormatUnknownPlaceholder(t *testing.T) {
	_, err := Format("{name} {unknown}", &core.Character{Name: "Bob"})
	require.Error(t, err)

	var fe *core.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "unknown", fe.Field)
	assert.True(t, errors.Is(err, core.ErrFormat))
}

func TestFormatAllFields(t *testing.T) {
	c := &core.Character{
		Name:     "Bob",
		Image:    "https://img.example/bob.png",
		Aliases:  []string{"The Kind", "B"},
		Sections: map[string]string{core.SectionPersonality: "Kind."},
		WikiName: "Example",
		InfoDump: "# Content\n\nBody\n",
	}
	tmpl := "---\nname: {name}\nseries: {series}\naliases:\n{nickname}\n---\n" +
		"![]({image})\n{Personality}|{Appearance}|{Background}\n{wiki_name}\n{info_dump}"

	out, err := Format(tmpl, c)
	require.NoError(t, err)
	assert.Equal(t, "---\nname: Bob\nseries: Example\naliases:\n  - _The Kind_\n  - _B_\n---\n"+
		"![](https://img.example/bob.png)\nKind.||\nExample\n# Content\n\nBody\n", out)
}

func TestAliasList(t *testing.T) {
	assert.Equal(t, "  - ", AliasList(nil))
	assert.Equal(t, "  - _A_", AliasList([]string{"A"}))
	assert.Equal(t, "  - _A_\n  - _A_", AliasList([]string{"A", "A"}))
}

func TestSubstitute(t *testing.T) {
	fields := map[string]string{"a": "1", "b": "{x}"}
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "no placeholders", in: "plain text", want: "plain text"},
		{name: "escaped braces", in: "{{a}} {a} }}", want: "{a} 1 }"},
		{name: "values are not re-expanded", in: "{b}", want: "{x}"},
		{name: "unicode passthrough", in: "héllo {a} ✓", want: "héllo 1 ✓"},
		{name: "empty placeholder", in: "{}", wantErr: true},
		{name: "unclosed brace", in: "{a", wantErr: true},
		{name: "stray closing brace", in: "a}", wantErr: true},
		{name: "nested open brace", in: "{a{b}", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substitute(tt.in, fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
