package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want Header
	}{
		{
			name: "child theme",
			css: `/*
 Theme Name:   Starter Child
 Template:     starter
 Version:      1.0.0
*/
body { margin: 0; }
`,
			want: Header{Name: "Starter Child", Template: "starter"},
		},
		{
			name: "case insensitive, trailing whitespace",
			css:  "/*\ntheme name: Root Theme   \r\n*/\n",
			want: Header{Name: "Root Theme"},
		},
		{
			name: "single line comment",
			css:  "/* Theme Name: Tiny Template: base */",
			want: Header{Name: "Tiny Template: base"},
		},
		{
			name: "only first comment counts",
			css:  "/* build banner */\n/* Theme Name: Late */\n",
			want: Header{},
		},
		{
			name: "no comment",
			css:  "body { color: red; }",
			want: Header{},
		},
		{
			name: "empty",
			css:  "",
			want: Header{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHeader([]byte(tt.css)))
		})
	}
}
