// Package source decodes raw text into lines the linter can check.
//
// Decoding validates UTF-8, splits on line terminators, classifies every
// byte as code, string, or comment via a small state machine, and resolves
// inline leapstyle directives. All of it happens once in NewFile so that
// scanning stays pure: a File never changes after construction.
package source

import (
	"strings"
	"unicode/utf8"
)

// Line is one line of a decoded source file.
type Line struct {
	Num  int    // 1-based line number
	Text string // content without the line terminator
	mask []Kind // one entry per byte of Text
}

// KindAt returns the classification of the byte at index i.
// Out-of-range indexes report KindCode.
func (l Line) KindAt(i int) Kind {
	if i < 0 || i >= len(l.mask) {
		return KindCode
	}
	return l.mask[i]
}

// Code returns the line text with string and comment bytes replaced by
// spaces. Byte indexes and columns are preserved, so matchers can search
// the result and report positions against the original text.
func (l Line) Code() string {
	return l.only(KindCode)
}

// Comment returns the line text with everything except comment bytes
// replaced by spaces.
func (l Line) Comment() string {
	return l.only(KindComment)
}

func (l Line) only(keep Kind) string {
	var b strings.Builder
	b.Grow(len(l.Text))
	for i := 0; i < len(l.Text); i++ {
		if l.mask[i] == keep {
			b.WriteByte(l.Text[i])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// IsBlank returns true if the line contains only whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Indent returns the line's leading whitespace.
func (l Line) Indent() string {
	for i := 0; i < len(l.Text); i++ {
		if l.Text[i] != ' ' && l.Text[i] != '\t' {
			return l.Text[:i]
		}
	}
	return l.Text
}

// File is a decoded source file.
type File struct {
	Path  string
	Lines []Line

	suppressed map[int]*ruleSet
}

// NewFile decodes content into a File. It fails with *InvalidEncodingError
// if content is not valid UTF-8. Empty content yields a File with zero
// lines.
func NewFile(path, content string) (*File, error) {
	if !utf8.ValidString(content) {
		return nil, &InvalidEncodingError{Path: path, Offset: firstInvalidOffset(content)}
	}

	raw := splitLines(content)
	lines := make([]Line, len(raw))
	state := &maskState{}
	for i, text := range raw {
		lines[i] = Line{
			Num:  i + 1,
			Text: text,
			mask: maskLine(text, state),
		}
	}

	return &File{
		Path:       path,
		Lines:      lines,
		suppressed: buildSuppressions(lines),
	}, nil
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// Suppressed reports whether an inline directive suppresses the given rule
// on the given 1-based line.
func (f *File) Suppressed(lineNum int, ruleID string) bool {
	return f.suppressed[lineNum].covers(ruleID)
}

// splitLines splits on \n terminators. A trailing terminator does not open
// a final empty line, so "a\n" is one line and "" is zero lines. A trailing
// \r is stripped from each line (CRLF input).
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// firstInvalidOffset returns the byte offset of the first invalid UTF-8
// sequence, or -1 if the string is valid.
func firstInvalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
