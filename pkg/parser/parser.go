// Package parser implements a hand-written recursive-descent parser for
// CDL (spec.md §4.2): a one-token-lookahead cursor over a pre-lexed token
// sequence, a Header/Body/Field grammar, and a three-level Expr/Term/Factor
// recursive-descent expression grammar (see expressions.go). Grounded on
// vclparser/pkg/parser's currentToken/peekToken cursor, narrowed from
// VCL's error-recovering, multi-declaration grammar down to CDL's single
// Entity/Field/Expr grammar with no error recovery (spec.md §1 Non-goals).
package parser

import (
	"fmt"

	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/diag"
	"github.com/nordsoyv/cdl/pkg/lexer"
	"github.com/nordsoyv/cdl/pkg/options"
)

// Parser is the index-and-slice cursor spec.md §9's design notes recommend
// over a shared-mutable-state cursor: tokens is produced once by the
// lexer and never touched again, idx is the only mutable state, and
// cur/peek/advance/expect are all O(1).
type Parser struct {
	tokens []lexer.Token
	idx    int
	source string
	opts   options.Options

	exprDepth int
}

// newParser builds a cursor over an already-lexed token slice, which must
// end with an EOF token.
func newParser(tokens []lexer.Token, source string, opts options.Options) *Parser {
	return &Parser{tokens: tokens, source: source, opts: opts}
}

// Parse tokenizes and parses source into a Root, applying opts to govern
// the edge cases spec.md §9 leaves open to the implementer.
func Parse(source string, opts options.Options) (*ast.Root, error) {
	tokens, err := lexAll(source, opts)
	if err != nil {
		return nil, err
	}

	p := newParser(tokens, source, opts)
	return p.parseRoot()
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.idx]
}

// peek returns the next token without advancing. Running off the end of
// the stream during required lookahead is a hard error (spec.md §4.2); the
// trailing EOF token makes that impossible to observe as an out-of-range
// access, since peek always has an EOF to return once idx reaches it.
func (p *Parser) peek() lexer.Token {
	if p.idx+1 < len(p.tokens) {
		return p.tokens[p.idx+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
}

func (p *Parser) currentIs(tt lexer.TokenType) bool { return p.cur().Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool     { return p.peek().Type == tt }

// expect verifies the current token's type, consumes it, and returns it;
// otherwise it reports a SyntaxError naming what was expected.
func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, error) {
	if p.cur().Type != tt {
		return lexer.Token{}, p.errorf(fmt.Sprintf("expected %s, got %s", what, p.cur().Type))
	}
	tok := p.cur()
	p.advance()
	return tok, nil
}

func (p *Parser) errorf(message string) error {
	return &diag.SyntaxError{
		Message:  message,
		Token:    p.cur(),
		Position: p.cur().Start,
		Source:   p.source,
	}
}

// lexAll tokenizes source and applies opts.StrictLexing: a single
// ILLEGAL token is a hard LexError under strict lexing (the default),
// or is logged and dropped under lenient lexing (spec.md §4.1/§9).
func lexAll(source string, opts options.Options) ([]lexer.Token, error) {
	raw := lexer.New(source).TokenizeAll()

	tokens := make([]lexer.Token, 0, len(raw))
	for _, tok := range raw {
		if tok.Type != lexer.ILLEGAL {
			tokens = append(tokens, tok)
			continue
		}
		if opts.StrictLexing {
			return nil, &diag.LexError{
				Message:  fmt.Sprintf("unrecognized character %q", tok.Value),
				Position: tok.Start,
				Source:   source,
			}
		}
		logSkippedChar(tok)
	}
	return tokens, nil
}
