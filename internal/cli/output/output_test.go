package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		input string
		want  OutputMode
	}{
		{"text", ModeText},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"bogus", ModeAuto},
		{"  json  ", ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	for _, s := range []string{"", "auto", "text", "markdown", "md", "json", "JSON"} {
		assert.True(t, Valid(s), "mode %q should be valid", s)
	}
	assert.False(t, Valid("yaml"))
	assert.False(t, Valid("xml"))
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit json on tty", ModeJSON, true, ModeJSON},
		{"explicit markdown on tty", ModeMarkdown, true, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestPlainModesCarryNoANSI(t *testing.T) {
	for _, mode := range []OutputMode{ModeMarkdown, ModeJSON} {
		t.Run(string(mode), func(t *testing.T) {
			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}
			r := NewRendererWithTTY(out, errOut, false, mode)

			r.Println(r.Styles().Header1.Render("heading"))
			r.Println(r.Styles().Error.Render("bad"))
			r.Success("done")
			r.Warning("careful")

			combined := out.String() + errOut.String()
			assert.NotContains(t, combined, "\x1b[", "plain modes must not emit ANSI codes")
		})
	}
}

func TestJSONOutput(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	payload := CheckOutput{
		Files: []FileReport{{
			Path: "main.swift",
			Violations: []ViolationEntry{{
				RuleID:   "no-semicolons",
				Severity: "error",
				Message:  "Semicolons should be omitted",
				Line:     3,
				Column:   10,
			}},
		}},
		Summary: CheckSummary{FilesScanned: 1, LinesScanned: 12, Total: 1, Errors: 1},
	}
	require.NoError(t, r.JSON(payload))

	var decoded CheckOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestHeaderMarkdown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Header(1, "Report")
	r.Header(2, "Details")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "# Report", lines[0])
	assert.Equal(t, "## Details", lines[1])
}

func TestStatusLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)

	r.StatusLine("leapstyle.yaml", "success", "")
	r.StatusLine("rules.star", "failed", "parse error")
	r.StatusLine("baseline.db", "skipped", "")

	got := out.String()
	assert.Contains(t, got, "leapstyle.yaml")
	assert.Contains(t, got, "rules.star")
	assert.Contains(t, got, "parse error")
	assert.Contains(t, got, "baseline.db")
}

func TestSuccessAndWarningRouting(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Success("all clean")
	r.Warning("watch out")
	r.Error("broken")

	assert.Contains(t, out.String(), "all clean")
	assert.NotContains(t, out.String(), "watch out", "warnings go to the error writer")
	assert.Contains(t, errOut.String(), "watch out")
	assert.Contains(t, errOut.String(), "broken")
}
