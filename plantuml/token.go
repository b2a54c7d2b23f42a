package plantuml

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // word of letters, digits, '_', '.', '-'
	TokenString               // "..." or [...], literal holds the inner text
	TokenDirective            // @word other than the ones below

	// Keywords and directives (text checked against the keyword map)
	TokenStartUML  // @startuml
	TokenEndUML    // @enduml
	TokenComponent // component
	TokenAs        // as
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenDirective:  "directive",
	TokenStartUML:   "'@startuml'",
	TokenEndUML:     "'@enduml'",
	TokenComponent:  "'component'",
	TokenAs:         "'as'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (unquoted for strings, raw for others)
	Pos     Position
}

// keywords maps keyword and directive text to their token kinds.
var keywords = map[string]TokenKind{
	"@startuml": TokenStartUML,
	"@enduml":   TokenEndUML,
	"component": TokenComponent,
	"as":        TokenAs,
}
