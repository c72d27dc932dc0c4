package syntax

import (
	"github.com/RobertDoza/fol-prover/internal/logic"
)

// Parser builds formulas and terms from the lexer's tokens.
type Parser struct {
	tokens  []Token
	current int
	// vars are identifiers the caller declares as variables.
	vars logic.NameSet
	// bound holds the variables of the enclosing quantifiers, innermost last.
	bound []string
}

// NewParser creates a parser over tokens. Names in vars are read as
// variables wherever they occur in term position; vars may be nil.
func NewParser(tokens []Token, vars logic.NameSet) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		vars:    vars,
	}
}

// ParseFormula reads a complete formula from input.
func ParseFormula(input string) (logic.Formula, error) {
	return ParseFormulaWith(input, nil)
}

// ParseFormulaWith reads a complete formula, treating the names in vars as
// variables.
func ParseFormulaWith(input string, vars logic.NameSet) (logic.Formula, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens, vars)
	f, err := p.Formula()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseTerm reads a complete term from input, treating the names in vars
// as variables.
func ParseTerm(input string, vars logic.NameSet) (logic.Term, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens, vars)
	t, err := p.Term()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return t, nil
}

// Formula parses a formula starting at the current token.
func (p *Parser) Formula() (logic.Formula, error) {
	return p.parseIff()
}

// parseIff and parseImplies are right associative.
func (p *Parser) parseIff() (logic.Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenIff) {
		return left, nil
	}
	right, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return logic.Iff(left, right), nil
}

func (p *Parser) parseImplies() (logic.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenImplies) {
		return left, nil
	}
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return logic.Implies(left, right), nil
}

func (p *Parser) parseOr() (logic.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = logic.Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (logic.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenAnd) {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = logic.And(left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (logic.Formula, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenNot:
		p.current++
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return logic.Not(sub), nil
	case TokenForAll, TokenExists:
		return p.parseQuantifier()
	case TokenTrue:
		p.current++
		return logic.True{}, nil
	case TokenFalse:
		p.current++
		return logic.False{}, nil
	case TokenLParen:
		p.current++
		f, err := p.Formula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return f, nil
	case TokenIdent:
		return p.parseAtom()
	default:
		return nil, errorf(tok.Position, "expected formula, found %s", tok)
	}
}

// parseQuantifier reads ∀x. body; the body extends as far right as
// possible.
func (p *Parser) parseQuantifier() (logic.Formula, error) {
	kind := p.next()
	v, err := p.expect(TokenIdent, "bound variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot, "'.'"); err != nil {
		return nil, err
	}

	p.bound = append(p.bound, v.Value)
	body, err := p.Formula()
	p.bound = p.bound[:len(p.bound)-1]
	if err != nil {
		return nil, err
	}

	if kind.Type == TokenForAll {
		return logic.All(v.Value, body), nil
	}
	return logic.Some(v.Value, body), nil
}

func (p *Parser) parseAtom() (logic.Formula, error) {
	name := p.next()
	if p.peek().Type != TokenLParen {
		return logic.Atom(name.Value), nil
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return logic.Atom(name.Value, args...), nil
}

// Term parses a term starting at the current token.
func (p *Parser) Term() (logic.Term, error) {
	tok := p.peek()
	if tok.Type != TokenIdent {
		return nil, errorf(tok.Position, "expected term, found %s", tok)
	}
	p.current++

	if p.peek().Type == TokenLParen {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return logic.Func(tok.Value, args...), nil
	}
	if p.isVariable(tok.Value) {
		return logic.Var(tok.Value), nil
	}
	return logic.Const(tok.Value), nil
}

// parseArgs reads a non-empty parenthesized term list.
func (p *Parser) parseArgs() ([]logic.Term, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	var args []logic.Term
	for {
		t, err := p.Term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if !p.accept(TokenComma) {
			break
		}
	}
	if _, err := p.expect(TokenRParen, "',' or ')'"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) isVariable(name string) bool {
	for _, b := range p.bound {
		if b == name {
			return true
		}
	}
	if p.vars.Has(name) {
		return true
	}
	return name[0] >= 'u' && name[0] <= 'z'
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) accept(typ TokenType) bool {
	if p.peek().Type != typ {
		return false
	}
	p.current++
	return true
}

func (p *Parser) expect(typ TokenType, what string) (Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return Token{}, errorf(tok.Position, "expected %s, found %s", what, tok)
	}
	p.current++
	return tok, nil
}

func (p *Parser) expectEOF() error {
	if tok := p.peek(); tok.Type != TokenEOF {
		return errorf(tok.Position, "unexpected %s", tok)
	}
	return nil
}
