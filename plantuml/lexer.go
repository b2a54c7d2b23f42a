package plantuml

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes PlantUML source text into a stream of tokens.
type Lexer struct {
	src    string
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column in runes (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// peekAt returns the rune n runes ahead of the current one.
func (l *Lexer) peekAt(n int) rune {
	off := l.pos
	for i := 0; i < n; i++ {
		if off >= len(l.src) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.src[off:])
		off += size
	}
	if off >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[off:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '/' && l.peekAt(1) == '\'':
			// Block comment: skip to '/
			startPos := l.currentPos()
			l.advance() // consume /
			l.advance() // consume '
			for {
				if l.atEnd() {
					return &LexError{ParseError{
						Message: "unterminated block comment",
						Pos:     startPos,
					}}
				}
				if l.peek() == '\'' && l.peekAt(1) == '/' {
					l.advance() // consume '
					l.advance() // consume /
					break
				}
				l.advance()
			}
		case ch == '\'' && l.atLineStart():
			// Line comment: skip to end of line
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

// atLineStart reports whether only blanks precede the current position on
// its line. A ' starts a comment only there.
func (l *Lexer) atLineStart() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch l.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

func (l *Lexer) scan() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	switch {
	case ch == '@':
		return l.scanDirective()
	case ch == '"':
		return l.scanDelimited('"', "string")
	case ch == '[':
		return l.scanDelimited(']', "bracketed name")
	case isIdentPart(ch):
		return l.scanIdentifier()
	case ch == '\'':
		l.advance()
		return Token{}, &LexError{ParseError{
			Message: "unexpected ': a comment must start its own line",
			Pos:     pos,
		}}
	}

	l.advance()
	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unexpected character %q", ch),
		Pos:     pos,
	}}
}

func (l *Lexer) scanDirective() (Token, error) {
	pos := l.currentPos()
	start := l.pos
	l.advance() // consume @

	for !l.atEnd() && isDirectivePart(l.peek()) {
		l.advance()
	}

	literal := l.src[start:l.pos]
	if literal == "@" {
		return Token{}, &LexError{ParseError{
			Message: "expected directive name after '@'",
			Pos:     pos,
		}}
	}

	if kind, ok := keywords[strings.ToLower(literal)]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}, nil
	}
	return Token{Kind: TokenDirective, Literal: literal, Pos: pos}, nil
}

// scanDelimited reads a single-line "..." or [...] name. The returned literal
// excludes the delimiters.
func (l *Lexer) scanDelimited(closing rune, what string) (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening delimiter

	var sb strings.Builder
	for {
		if l.atEnd() || l.peek() == '\n' {
			return Token{}, &LexError{ParseError{
				Message: "unterminated " + what,
				Pos:     pos,
			}}
		}
		ch := l.advance()
		if ch == closing {
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		}
		sb.WriteRune(ch)
	}
}

func (l *Lexer) scanIdentifier() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peek()) {
		if l.peek() == '-' && l.peekAt(1) == '>' {
			break
		}
		l.advance()
	}

	literal := l.src[start:l.pos]
	if literal == "" {
		l.advance()
		return Token{}, &LexError{ParseError{
			Message: "unexpected '->': connections are not supported",
			Pos:     pos,
		}}
	}

	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}, nil
	}

	return Token{Kind: TokenIdentifier, Literal: literal, Pos: pos}, nil
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.' || ch == '-'
}

func isDirectivePart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

// IsIdentifier reports whether s would be read back as a single identifier
// token, so it can be written without quotes.
func IsIdentifier(s string) bool {
	if s == "" || strings.Contains(s, "->") {
		return false
	}
	if _, ok := keywords[s]; ok {
		return false
	}
	for _, ch := range s {
		if !isIdentPart(ch) {
			return false
		}
	}
	return true
}
