package lexer

import "unicode"

// Lexer represents the lexer state
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently emitted spans to the given filename.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next character.
// Line/column always reflect the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1

	onNewLine := prevPos >= 0 && prevPos < len(l.input) && l.input[prevPos] == '\n'
	switch {
	case onNewLine:
		l.line++
		l.column = 1
	case prevPos < 0:
		l.column = 1
	default:
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0 // EOF
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.read()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
		default:
			return
		}
	}
}

type spanStart struct {
	line, column, pos int
}

func (l *Lexer) here() spanStart {
	return spanStart{line: l.line, column: l.column, pos: l.pos}
}

// makeToken creates a token spanning from start to the current position.
func (l *Lexer) makeToken(tokType TokenType, start spanStart) Token {
	end := l.pos
	if end > len(l.input) {
		end = len(l.input)
	}
	raw := ""
	if start.pos >= 0 && start.pos <= end {
		raw = string(l.input[start.pos:end])
	}
	return Token{
		Type: tokType,
		Raw:  raw,
		Span: Span{
			Filename:  l.filename,
			Line:      start.line,
			Column:    start.column,
			EndLine:   l.line,
			EndColumn: l.column,
			Start:     start.pos,
			End:       end,
		},
	}
}

// single emits a token for the current rune and advances past it.
func (l *Lexer) single(tokType TokenType) Token {
	start := l.here()
	l.read()
	return l.makeToken(tokType, start)
}

// double emits a token for the current rune and the next and advances past both.
func (l *Lexer) double(tokType TokenType) Token {
	start := l.here()
	l.read()
	l.read()
	return l.makeToken(tokType, start)
}

// NextToken scans and returns the next token in the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	switch l.ch {
	case 0:
		start := l.here()
		return l.makeToken(EOF, start)
	case '=':
		if l.peek() == '=' {
			return l.double(EQ)
		}
		return l.single(ASSIGN)
	case '+':
		return l.single(PLUS)
	case '-':
		if l.peek() == '>' {
			return l.double(ARROW)
		}
		return l.single(MINUS)
	case '*':
		if l.peek() == '*' {
			return l.double(POWER)
		}
		return l.single(ASTERISK)
	case '/':
		return l.single(SLASH)
	case '%':
		return l.single(PERCENT)
	case '<':
		switch l.peek() {
		case '=':
			return l.double(LE)
		case '<':
			return l.double(SHL)
		}
		return l.single(LT)
	case '>':
		switch l.peek() {
		case '=':
			return l.double(GE)
		case '>':
			return l.double(SHR)
		}
		return l.single(GT)
	case '!':
		if l.peek() == '=' {
			return l.double(NOT_EQ)
		}
		return l.single(BANG)
	case '~':
		return l.single(TILDE)
	case '&':
		if l.peek() == '&' {
			return l.double(AND)
		}
		return l.single(AMP)
	case '|':
		if l.peek() == '|' {
			return l.double(OR)
		}
		return l.single(PIPE)
	case '^':
		return l.single(CARET)
	case '?':
		return l.single(QUESTION)
	case ',':
		return l.single(COMMA)
	case ';':
		return l.single(SEMICOLON)
	case ':':
		return l.single(COLON)
	case '(':
		return l.single(LPAREN)
	case ')':
		return l.single(RPAREN)
	case '{':
		return l.single(LBRACE)
	case '}':
		return l.single(RBRACE)
	case '[':
		return l.single(LBRACKET)
	case ']':
		return l.single(RBRACKET)
	case '.':
		if isDigit(l.peek()) {
			return l.scanNumber()
		}
		return l.single(DOT)
	}

	if isDigit(l.ch) {
		return l.scanNumber()
	}

	if isIdentStart(l.ch) {
		start := l.here()
		for isIdentPart(l.ch) {
			l.read()
		}
		tok := l.makeToken(IDENT, start)
		tok.Type = LookupIdent(tok.Raw)
		return tok
	}

	return l.single(ILLEGAL)
}

// scanNumber scans an integer, float, or complex literal. The token carries
// the raw spelling; decoding happens later so that malformed digits surface
// as literal errors with the full span.
func (l *Lexer) scanNumber() Token {
	start := l.here()
	isFloat := false

	if l.ch == '0' && (l.peek() == 'b' || l.peek() == 'B' || l.peek() == 'o' || l.peek() == 'O' || l.peek() == 'x' || l.peek() == 'X') {
		l.read() // '0'
		l.read() // base marker
		for isHexDigit(l.ch) {
			l.read()
		}
		if l.ch == 'j' || l.ch == 'J' {
			l.read()
			return l.makeToken(COMPLEX, start)
		}
		return l.makeToken(INT, start)
	}

	for isDigit(l.ch) {
		l.read()
	}
	if l.ch == '.' {
		isFloat = true
		l.read()
		for isDigit(l.ch) {
			l.read()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peek()
		if isDigit(next) || ((next == '+' || next == '-') && l.pos+2 < len(l.input) && isDigit(l.input[l.pos+2])) {
			isFloat = true
			l.read() // 'e'
			if l.ch == '+' || l.ch == '-' {
				l.read()
			}
			for isDigit(l.ch) {
				l.read()
			}
		}
	}
	if l.ch == 'j' || l.ch == 'J' {
		l.read()
		return l.makeToken(COMPLEX, start)
	}
	if isFloat {
		return l.makeToken(FLOAT, start)
	}
	return l.makeToken(INT, start)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit accepts any digit valid in some base; out-of-base digits are
// rejected during decoding, not here, so "0b2" fails as a literal error
// rather than lexing as two tokens.
func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
