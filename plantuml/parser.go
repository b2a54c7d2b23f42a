package plantuml

import (
	"fmt"
	"strings"
)

// Parse parses PlantUML source text and returns its declarations in source order.
// Returns a *SyntaxError or *LexError on failure; no partial diagram is returned.
func Parse(src string) (*Diagram, error) {
	p := &parser{lex: NewLexer(src)}
	return p.parseDiagram()
}

// Parser is the interface the importer depends on, so a different grammar
// implementation (or a test double) can stand in for the default one.
type Parser interface {
	Parse(src string) (*Diagram, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc func(src string) (*Diagram, error)

// Parse calls f(src).
func (f ParserFunc) Parse(src string) (*Diagram, error) { return f(src) }

// DefaultParser is the recursive-descent parser implemented by Parse.
var DefaultParser Parser = ParserFunc(Parse)

type parser struct {
	lex      *Lexer
	elements []Element
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, unexpected(tok, kind.String(), "")
	}
	return tok, nil
}

func (p *parser) parseDiagram() (*Diagram, error) {
	if _, err := p.expect(TokenStartUML); err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEndUML || tok.Kind == TokenEOF {
			break
		}
		if err := p.parseDeclaration(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenEndUML); err != nil {
		return nil, err
	}

	// Reject trailing content (one diagram per source)
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, unexpected(tok, "EOF", "only one diagram per source is allowed")
	}

	elements := p.elements
	if elements == nil {
		elements = []Element{}
	}
	return &Diagram{Elements: elements}, nil
}

func (p *parser) parseDeclaration() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case TokenComponent:
		return p.parseComponent()
	default:
		return unexpected(tok, "declaration", "")
	}
}

// parseComponent handles: 'component' name ['as' alias]
func (p *parser) parseComponent() error {
	kw, err := p.next() // consume 'component'
	if err != nil {
		return err
	}

	name, err := p.parseName(kw)
	if err != nil {
		return err
	}

	elem := Element{Kind: ElementComponent, Name: name, Pos: kw.Pos}

	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Kind == TokenAs {
		if tok.Pos.Line != kw.Pos.Line {
			return unexpected(tok, "declaration", "'as' must be on the same line as 'component'")
		}
		_, _ = p.next() // consume 'as'
		alias, err := p.parseAlias(tok)
		if err != nil {
			return err
		}
		elem.Alias = alias
	}

	p.elements = append(p.elements, elem)
	return nil
}

// parseName reads a component name. A quoted or bracketed name is taken as is;
// bare words that follow on the same line as the first are joined with single
// spaces, so "component Some Component" names "Some Component".
func (p *parser) parseName(kw Token) (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}

	if tok.Kind != TokenString && tok.Kind != TokenIdentifier {
		return "", unexpected(tok, "component name", "")
	}
	if tok.Pos.Line != kw.Pos.Line {
		return "", unexpected(tok, "component name", "name must be on the same line as 'component'")
	}
	if tok.Kind == TokenString {
		if tok.Literal == "" {
			return "", emptyLiteral(tok, "component name")
		}
		return tok.Literal, nil
	}

	words := []string{tok.Literal}
	for {
		next, err := p.peek()
		if err != nil {
			return "", err
		}
		if next.Kind != TokenIdentifier || next.Pos.Line != tok.Pos.Line {
			break
		}
		_, _ = p.next()
		words = append(words, next.Literal)
	}
	return strings.Join(words, " "), nil
}

func (p *parser) parseAlias(as Token) (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Kind != TokenIdentifier && tok.Kind != TokenString {
		return "", unexpected(tok, "alias", "")
	}
	if tok.Pos.Line != as.Pos.Line {
		return "", unexpected(tok, "alias", "alias must be on the same line as 'as'")
	}
	if tok.Literal == "" {
		return "", emptyLiteral(tok, "alias")
	}
	return tok.Literal, nil
}

func emptyLiteral(tok Token, what string) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Message: what + " must not be empty", Pos: tok.Pos},
		Expected:   what,
		Got:        `""`,
	}
}

func unexpected(tok Token, expected, message string) *SyntaxError {
	got := tok.Kind.String()
	if tok.Kind != TokenEOF {
		got = fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
	}
	return &SyntaxError{
		ParseError: ParseError{Message: message, Pos: tok.Pos},
		Expected:   expected,
		Got:        got,
	}
}
