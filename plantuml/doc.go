// Package plantuml implements a parser for the PlantUML component subset understood
// by umlbox.
//
// A diagram is wrapped in @startuml / @enduml and contains zero or more
// component declarations:
//
//	@startuml
//	component Frontend
//	component "Payment Service" as payments
//	component [Audit Log] as audit
//	@enduml
//
// Whitespace and blank lines between declarations are insignificant. Comments
// are stripped before parsing: a ' starts a line comment, /' ... '/ is a block
// comment.
//
// The parser is a hand-rolled recursive-descent parser in two layers:
//
//   - Lexer: converts source text into a token stream, stripping comments and
//     whitespace.
//   - Parser: consumes tokens according to the grammar and returns a Diagram
//     holding the declarations in source order.
//
// Parsing is all-or-nothing: any input that does not match the grammar,
// including empty input, returns a *SyntaxError or *LexError, both of which
// embed *ParseError.
package plantuml
