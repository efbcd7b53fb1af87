package source_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapstyle/pkg/source"
)

func TestNewFileLineSplitting(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines []string
	}{
		{
			name:      "empty content has zero lines",
			content:   "",
			wantLines: nil,
		},
		{
			name:      "single line without terminator",
			content:   "let a = 1",
			wantLines: []string{"let a = 1"},
		},
		{
			name:      "trailing newline does not add a line",
			content:   "let a = 1\n",
			wantLines: []string{"let a = 1"},
		},
		{
			name:      "two lines",
			content:   "let a = 1\nlet b = 2",
			wantLines: []string{"let a = 1", "let b = 2"},
		},
		{
			name:      "blank lines are counted",
			content:   "\n\n",
			wantLines: []string{"", ""},
		},
		{
			name:      "crlf terminators are stripped",
			content:   "let a = 1\r\nlet b = 2\r\n",
			wantLines: []string{"let a = 1", "let b = 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := source.NewFile("test.swift", tt.content)
			require.NoError(t, err)
			require.Equal(t, len(tt.wantLines), f.LineCount())
			for i, want := range tt.wantLines {
				assert.Equal(t, want, f.Lines[i].Text)
				assert.Equal(t, i+1, f.Lines[i].Num, "line numbers are 1-based")
			}
		})
	}
}

func TestNewFileInvalidEncoding(t *testing.T) {
	f, err := source.NewFile("bad.swift", "let a = 1\n\xff\xfe\n")
	require.Error(t, err)
	assert.Nil(t, f, "no partial file on encoding failure")

	var encErr *source.InvalidEncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "bad.swift", encErr.Path)
	assert.Equal(t, 10, encErr.Offset)
	assert.Contains(t, encErr.Error(), "invalid UTF-8")
}

func TestNewFileValidMultibyte(t *testing.T) {
	f, err := source.NewFile("ok.swift", "let π = 3.14159\n// 日本語コメント\n")
	require.NoError(t, err)
	assert.Equal(t, 2, f.LineCount())
}

func TestLineIsBlank(t *testing.T) {
	f, err := source.NewFile("t.swift", "let a = 1\n\n   \t\nlet b = 2")
	require.NoError(t, err)

	assert.False(t, f.Lines[0].IsBlank())
	assert.True(t, f.Lines[1].IsBlank())
	assert.True(t, f.Lines[2].IsBlank(), "whitespace-only line is blank")
	assert.False(t, f.Lines[3].IsBlank())
}

func TestLineIndent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no indent", "let a = 1", ""},
		{"tab indent", "\tlet a = 1", "\t"},
		{"space indent", "    let a = 1", "    "},
		{"mixed indent", " \tlet a = 1", " \t"},
		{"whitespace only line", "  \t ", "  \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := source.NewFile("t.swift", tt.text)
			require.NoError(t, err)
			require.Equal(t, 1, f.LineCount())
			assert.Equal(t, tt.want, f.Lines[0].Indent())
		})
	}
}
