package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Designing Steel Connections: A Primer!", "designing-steel-connections-a-primer"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-slugged-title", "already-slugged-title"},
		{"Multiple   spaces -- and dashes", "multiple-spaces-and-dashes"},
		{"BIM & Beyond (2025)", "bim-beyond-2025"},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title: %q", tc.title)
	}
}
