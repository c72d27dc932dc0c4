package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// symbols maps operator spellings to token types. Longer spellings come
// first so that "<->" wins over "<" and "->".
var symbols = []struct {
	text string
	typ  TokenType
}{
	{"<->", TokenIff},
	{"->", TokenImplies},
	{"⊤", TokenTrue},
	{"⊥", TokenFalse},
	{"¬", TokenNot},
	{"~", TokenNot},
	{"∧", TokenAnd},
	{"&", TokenAnd},
	{"∨", TokenOr},
	{"|", TokenOr},
	{"→", TokenImplies},
	{"↔", TokenIff},
	{"∀", TokenForAll},
	{"∃", TokenExists},
	{".", TokenDot},
	{",", TokenComma},
	{"(", TokenLParen},
	{")", TokenRParen},
}

var keywords = map[string]TokenType{
	"true":   TokenTrue,
	"false":  TokenFalse,
	"forall": TokenForAll,
	"exists": TokenExists,
}

// Lexer scans formula text into tokens.
type Lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input. The last token is always TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		switch {
		case r == utf8.RuneError && size == 1:
			return nil, errorf(l.position, "invalid UTF-8 encoding")
		case unicode.IsSpace(r):
			l.position += size
		case isIdentStart(r):
			l.lexIdent()
		default:
			if !l.matchSymbol() {
				return nil, errorf(l.position, "unexpected character %q", r)
			}
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

func (l *Lexer) matchSymbol() bool {
	rest := l.input[l.position:]
	for _, s := range symbols {
		if strings.HasPrefix(rest, s.text) {
			l.addToken(s.typ, s.text, l.position)
			l.position += len(s.text)
			return true
		}
	}
	return false
}

// lexIdent scans an identifier and turns keywords into their tokens.
func (l *Lexer) lexIdent() {
	start := l.position
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !isIdentPart(r) {
			break
		}
		l.position += size
	}

	word := l.input[start:l.position]
	if typ, ok := keywords[word]; ok {
		l.addToken(typ, word, start)
		return
	}
	l.addToken(TokenIdent, word, start)
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\''
}
