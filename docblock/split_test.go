package docblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want []Entry
	}{
		{
			desc: "title description and tags",
			give: []string{
				" * Test block",
				" * ",
				" * With description",
				" * as second block",
				" * @module testmodule",
				" * @param {object} foo Foo is footastic",
				" * ",
				" * @public",
				" * @preview {html}",
				" * <div>Preview</div>",
				" * <span>Subline</span>",
				" *",
			},
			want: []Entry{
				{Tag: "title", Value: "Test block"},
				{Tag: "description", Value: "With description\nas second block"},
				{Tag: "module", Value: "testmodule"},
				{Tag: "param", Value: "{object} foo Foo is footastic"},
				{Tag: "public", Value: ""},
				{Tag: "preview", Value: "{html}\n<div>Preview</div>\n<span>Subline</span>"},
			},
		},
		{
			desc: "no trailing spaces",
			give: []string{
				" * Test block",
				" *",
				" * With description",
				" * as second block",
				" * @module testmodule",
				" * @param {object} foo Foo is footastic",
				" *",
				" * @public",
				" * @preview {html}",
				" * <div>Preview</div>",
				" * <span>Subline</span>",
				" *",
			},
			want: []Entry{
				{Tag: "title", Value: "Test block"},
				{Tag: "description", Value: "With description\nas second block"},
				{Tag: "module", Value: "testmodule"},
				{Tag: "param", Value: "{object} foo Foo is footastic"},
				{Tag: "public", Value: ""},
				{Tag: "preview", Value: "{html}\n<div>Preview</div>\n<span>Subline</span>"},
			},
		},
		{
			desc: "with delimiters",
			give: []string{
				"/**",
				" * Banana test module",
				" *",
				" * Very awesome banana module.",
				" * ",
				" * @module  banana",
				" * @example",
				" *     var banana = require('banana');",
				" *     banana.peelIt();",
				" */",
			},
			want: []Entry{
				{Tag: "title", Value: "Banana test module"},
				{Tag: "description", Value: "Very awesome banana module."},
				{Tag: "module", Value: " banana"},
				{Tag: "example", Value: "    var banana = require('banana');\n    banana.peelIt();"},
			},
		},
		{
			desc: "description without separator",
			give: []string{
				"/**",
				" * Title",
				" * More text.",
				" */",
			},
			want: []Entry{
				{Tag: "title", Value: "Title"},
				{Tag: "description", Value: "More text."},
			},
		},
		{
			desc: "interior blank lines kept",
			give: []string{
				"/**",
				" * Title",
				" *",
				" * First paragraph.",
				" *",
				" *",
				" * Second paragraph.",
				" */",
			},
			want: []Entry{
				{Tag: "title", Value: "Title"},
				{Tag: "description", Value: "First paragraph.\n\n\nSecond paragraph."},
			},
		},
		{
			desc: "only tags",
			give: []string{
				"/**",
				" * @private",
				" * @param {number} a",
				" * @param {number} b",
				" */",
			},
			want: []Entry{
				{Tag: "private", Value: ""},
				{Tag: "param", Value: "{number} a"},
				{Tag: "param", Value: "{number} b"},
			},
		},
		{
			desc: "at sign inside text",
			give: []string{
				"/**",
				" * Mail bananas@example.com",
				" * @author Jane <jane@example.com>",
				" */",
			},
			want: []Entry{
				{Tag: "title", Value: "Mail bananas@example.com"},
				{Tag: "author", Value: "Jane <jane@example.com>"},
			},
		},
		{
			desc: "tag value with blank line",
			give: []string{
				"/**",
				" * @example",
				" * one()",
				" *",
				" * two()",
				" */",
			},
			want: []Entry{
				{Tag: "example", Value: "one()\n\ntwo()"},
			},
		},
		{
			desc: "bare tag name",
			give: []string{"/** @foo */"},
			want: []Entry{{Tag: "foo", Value: ""}},
		},
		{
			desc: "empty block",
			give: []string{"/** */"},
			want: []Entry{},
		},
		{
			desc: "empty string",
			give: []string{""},
			want: []Entry{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := ParseTags(strings.Join(tt.give, "\n"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCutTagLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give     string
		wantName string
		wantRest string
		wantOK   bool
	}{
		{give: "@public", wantName: "public", wantOK: true},
		{give: "  @param {a} b", wantName: "param", wantRest: "{a} b", wantOK: true},
		{give: "@module  banana", wantName: "module", wantRest: " banana", wantOK: true},
		{give: "@event\tclick", wantName: "event", wantRest: "\tclick", wantOK: true},
		{give: "@"},
		{give: "@ foo"},
		{give: "@1st"},
		{give: "a @b"},
		{give: "@foo@example.com"},
		{give: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			name, rest, ok := cutTagLine(tt.give)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
