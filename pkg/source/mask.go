package source

// Kind classifies a byte of source text by its lexical context.
type Kind uint8

// Byte classifications.
const (
	// KindCode marks bytes outside any literal or comment.
	KindCode Kind = iota
	// KindString marks bytes inside a string literal, including its quotes.
	KindString
	// KindComment marks bytes inside a line or block comment, including
	// the comment markers.
	KindComment
)

// maskState carries lexical context between lines of one file.
// Line comments die at end of line; block comments and multiline strings
// carry over.
type maskState struct {
	inBlockComment bool
	commentDepth   int // block comments nest
	inMultiString  bool
}

// maskScanner walks the bytes of a single line and classifies each one.
type maskScanner struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current byte)
	ch      byte // current byte under examination
	mask    []Kind
	state   *maskState
}

func newMaskScanner(line string, state *maskState) *maskScanner {
	s := &maskScanner{
		input: line,
		mask:  make([]Kind, len(line)),
		state: state,
	}
	s.readChar()
	return s
}

// readChar advances to the next byte.
func (s *maskScanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0 // ASCII NUL = EOF
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
}

// peekChar returns the next byte without advancing.
func (s *maskScanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

// peekChar2 returns the byte after next without advancing.
func (s *maskScanner) peekChar2() byte {
	if s.readPos+1 >= len(s.input) {
		return 0
	}
	return s.input[s.readPos+1]
}

// mark classifies the current byte and advances.
func (s *maskScanner) mark(k Kind) {
	if s.pos < len(s.mask) {
		s.mask[s.pos] = k
	}
	s.readChar()
}

// maskLine classifies every byte of one line, updating the carry-over state.
func maskLine(line string, state *maskState) []Kind {
	s := newMaskScanner(line, state)
	s.run()
	return s.mask
}

func (s *maskScanner) run() {
	for s.ch != 0 {
		switch {
		case s.state.inBlockComment:
			s.scanBlockComment()
		case s.state.inMultiString:
			s.scanMultiString()
		default:
			s.scanCode()
		}
	}
}

// scanCode classifies bytes until a literal or comment opens.
func (s *maskScanner) scanCode() {
	for s.ch != 0 {
		switch {
		case s.ch == '/' && s.peekChar() == '/':
			// Line comment runs to end of line.
			for s.ch != 0 {
				s.mark(KindComment)
			}
			return
		case s.ch == '/' && s.peekChar() == '*':
			s.state.inBlockComment = true
			s.state.commentDepth = 1
			s.mark(KindComment)
			s.mark(KindComment)
			return
		case s.ch == '"' && s.peekChar() == '"' && s.peekChar2() == '"':
			s.state.inMultiString = true
			s.mark(KindString)
			s.mark(KindString)
			s.mark(KindString)
			return
		case s.ch == '"':
			s.mark(KindString)
			s.scanString()
			return
		default:
			s.mark(KindCode)
		}
	}
}

// scanString classifies a single-line string literal body. An unterminated
// literal ends at the line break; the next line starts back in code.
func (s *maskScanner) scanString() {
	for s.ch != 0 {
		switch s.ch {
		case '\\':
			// Escape consumes the next byte too.
			s.mark(KindString)
			if s.ch != 0 {
				s.mark(KindString)
			}
		case '"':
			s.mark(KindString)
			return
		default:
			s.mark(KindString)
		}
	}
}

// scanMultiString classifies bytes inside a """ ... """ literal.
func (s *maskScanner) scanMultiString() {
	for s.ch != 0 {
		switch {
		case s.ch == '\\':
			s.mark(KindString)
			if s.ch != 0 {
				s.mark(KindString)
			}
		case s.ch == '"' && s.peekChar() == '"' && s.peekChar2() == '"':
			s.mark(KindString)
			s.mark(KindString)
			s.mark(KindString)
			s.state.inMultiString = false
			return
		default:
			s.mark(KindString)
		}
	}
}

// scanBlockComment classifies bytes inside a /* ... */ comment, tracking
// nesting depth.
func (s *maskScanner) scanBlockComment() {
	for s.ch != 0 {
		switch {
		case s.ch == '/' && s.peekChar() == '*':
			s.state.commentDepth++
			s.mark(KindComment)
			s.mark(KindComment)
		case s.ch == '*' && s.peekChar() == '/':
			s.state.commentDepth--
			s.mark(KindComment)
			s.mark(KindComment)
			if s.state.commentDepth == 0 {
				s.state.inBlockComment = false
				return
			}
		default:
			s.mark(KindComment)
		}
	}
}
