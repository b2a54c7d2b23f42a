package plantuml

import "fmt"

// ParseError is the base error type for all plantuml errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	if e.Message != "" {
		msg = e.Message + ": " + msg
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

// As lets errors.As match *ParseError for both concrete error types.
func (e *LexError) As(target any) bool {
	if pe, ok := target.(**ParseError); ok {
		*pe = &e.ParseError
		return true
	}
	return false
}

// As lets errors.As match *ParseError for both concrete error types.
func (e *SyntaxError) As(target any) bool {
	if pe, ok := target.(**ParseError); ok {
		*pe = &e.ParseError
		return true
	}
	return false
}
