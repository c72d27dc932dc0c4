package syntax

import (
	"errors"
	"fmt"
)

// TokenType defines the kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenIdent   TokenType = iota // predicate, function, variable or constant name
	TokenTrue                     // ⊤ or true
	TokenFalse                    // ⊥ or false
	TokenNot                      // ¬ or ~
	TokenAnd                      // ∧ or &
	TokenOr                       // ∨ or |
	TokenImplies                  // → or ->
	TokenIff                      // ↔ or <->
	TokenForAll                   // ∀ or forall
	TokenExists                   // ∃ or exists
	TokenDot                      // '.'
	TokenComma                    // ','
	TokenLParen                   // '('
	TokenRParen                   // ')'
	TokenEOF                      // end of input
)

// Token is a single lexical token.
type Token struct {
	Type     TokenType // type of this token
	Value    string    // the literal text of the token
	Position int       // byte offset in the input
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Value)
}

// ErrSyntax is wrapped by every *Error.
var ErrSyntax = errors.New("syntax error")

// Error reports malformed input at a byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

func (e *Error) Unwrap() error { return ErrSyntax }

func errorf(offset int, format string, args ...any) *Error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
