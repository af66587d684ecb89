package docblock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Line(t *testing.T) {
	t.Parallel()

	src := NewSource("ab\ncd\n\nef")

	tests := []struct {
		desc string
		give int
		want int
	}{
		{desc: "start", give: 0, want: 1},
		{desc: "negative", give: -3, want: 1},
		{desc: "first line", give: 1, want: 1},
		{desc: "on newline", give: 2, want: 1},
		{desc: "after newline", give: 3, want: 2},
		{desc: "empty line", give: 6, want: 3},
		{desc: "last line", give: 7, want: 4},
		{desc: "end", give: 9, want: 4},
		{desc: "past end", give: 100, want: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, src.Line(tt.give))
		})
	}
}

func TestSource_LineTrailingNewline(t *testing.T) {
	t.Parallel()

	src := NewSource("foo\n")
	assert.Equal(t, 1, src.Line(3))
	assert.Equal(t, 2, src.Line(4), "offset at end of document")
}

func TestSource_LineEmpty(t *testing.T) {
	t.Parallel()

	src := NewSource("")
	assert.Equal(t, 1, src.Line(0))
	assert.Equal(t, 1, src.Line(10))
	assert.Zero(t, src.Len())
}

func TestSource_LineFixture(t *testing.T) {
	t.Parallel()

	text, err := os.ReadFile(filepath.Join("testdata", "banana.js"))
	require.NoError(t, err)

	src := NewSource(string(text))
	assert.Equal(t, 11, src.Line(161))
	assert.Equal(t, string(text), src.Text())
}
