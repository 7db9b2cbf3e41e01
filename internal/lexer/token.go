package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the half-open source range of a token or node
type Span struct {
	Filename  string // optional source filename for diagnostics
	Line      int    // 1-based start line
	Column    int    // 1-based start column
	EndLine   int    // 1-based line of the last rune
	EndColumn int    // 1-based column one past the last rune
	Start     int    // rune index in the source
	End       int    // exclusive end rune index
}

// Token represents a lexical token
type Token struct {
	Type TokenType
	Raw  string // exact runes from source
	Span Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT   TokenType = "IDENT"   // foo, bar_1, module
	INT     TokenType = "INT"     // 42, 0b0101, 0o7, 0xFF
	FLOAT   TokenType = "FLOAT"   // 1.0, .2, 1., 1e2, 1.2e3
	COMPLEX TokenType = "COMPLEX" // 1j, 1.0j, .2j, 1e10j

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	POWER    TokenType = "**"
	SHL      TokenType = "<<"
	SHR      TokenType = ">>"
	AMP      TokenType = "&"
	CARET    TokenType = "^"
	PIPE     TokenType = "|"
	AND      TokenType = "&&"
	OR       TokenType = "||"
	BANG     TokenType = "!"
	TILDE    TokenType = "~"
	QUESTION TokenType = "?"

	LT     TokenType = "<"
	GT     TokenType = ">"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	DOT       TokenType = "."

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	ARROW TokenType = "->"

	// Keywords
	IMPORT TokenType = "IMPORT"
	PROC   TokenType = "PROC"
	OP     TokenType = "OP"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	FORALL TokenType = "FORALL"
	RETURN TokenType = "RETURN"
	INPUT  TokenType = "INPUT"
	OUTPUT TokenType = "OUTPUT"
	STATE  TokenType = "STATE"
	PARAM  TokenType = "PARAM"
	TEMP   TokenType = "TEMP"
	INDEX  TokenType = "INDEX"
	TUPLE  TokenType = "TUPLE"
)

var keywords = map[string]TokenType{
	"import": IMPORT,
	"proc":   PROC,
	"op":     OP,
	"if":     IF,
	"else":   ELSE,
	"forall": FORALL,
	"return": RETURN,
	"input":  INPUT,
	"output": OUTPUT,
	"state":  STATE,
	"param":  PARAM,
	"temp":   TEMP,
	"index":  INDEX,
	"tuple":  TUPLE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsQualifier reports whether the token type is a type qualifier keyword.
func IsQualifier(tt TokenType) bool {
	switch tt {
	case INPUT, OUTPUT, STATE, PARAM, TEMP:
		return true
	default:
		return false
	}
}
