package selector

import (
	"fmt"

	"github.com/nordsoyv/cdl/pkg/diag"
	"github.com/nordsoyv/cdl/pkg/lexer"
	selexer "github.com/nordsoyv/cdl/pkg/selector/lexer"
)

// parser is an index-and-slice cursor over the selector token stream, the
// same design as pkg/parser.Parser, narrowed to the selector grammar
// (spec.md §4.4):
//
//	Selector := Step ( '>' Step )*
//	Step     := [Identifier] ('[' Identifier ']')? ('.' Identifier)?
type parser struct {
	tokens []selexer.Token
	idx    int
	source string
}

// Parse compiles a selector string into a Selector. Malformed input is
// reported via *diag.SelectorError (spec.md §4.5 allows either returning
// an error or panicking; this module returns).
func Parse(source string) (*Selector, error) {
	tokens := selexer.New(source).TokenizeAll()
	p := &parser{tokens: tokens, source: source}

	head, err := p.parseStep()
	if err != nil {
		return nil, err
	}

	cur := head
	for p.currentIs(selexer.Arrow) {
		p.advance()
		next, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		cur.Next = next
		cur = next
	}

	if !p.currentIs(selexer.EOF) {
		return nil, p.errorf(fmt.Sprintf("unexpected %s after selector", p.cur().Type))
	}

	return &Selector{Head: head}, nil
}

func (p *parser) cur() selexer.Token { return p.tokens[p.idx] }

func (p *parser) advance() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
}

func (p *parser) currentIs(tt selexer.TokenType) bool { return p.cur().Type == tt }

func (p *parser) errorf(message string) error {
	tok := p.cur()
	return &diag.SelectorError{
		Message:  message,
		Position: lexer.Position{Line: 1, Column: tok.Offset + 1, Offset: tok.Offset},
		Source:   p.source,
	}
}

// parseStep parses `[Identifier] ('[' Identifier ']')? ('.' Identifier)?`.
// Every component is independently optional (spec.md §4.4: "Absent
// components are wildcards"); a Step with none of them is accepted — it
// matches everything (spec.md §9 open question, resolved in SPEC_FULL.md
// §4.5 as vacuous truth) — it is simply useless on its own as the spec
// notes ("has no practical use").
func (p *parser) parseStep() (*Step, error) {
	step := &Step{}

	if p.currentIs(selexer.Identifier) {
		v := p.cur().Value
		step.MainType = &v
		p.advance()
	}

	if p.currentIs(selexer.OpenSquare) {
		p.advance()
		idTok, err := p.expect(selexer.Identifier, "identifier inside '[...]'")
		if err != nil {
			return nil, err
		}
		v := idTok.Value
		step.SubType = &v
		if _, err := p.expect(selexer.CloseSquare, "']'"); err != nil {
			return nil, err
		}
	}

	if p.currentIs(selexer.Dot) {
		p.advance()
		idTok, err := p.expect(selexer.Identifier, "identifier after '.'")
		if err != nil {
			return nil, err
		}
		v := idTok.Value
		step.Identifier = &v
	}

	return step, nil
}

func (p *parser) expect(tt selexer.TokenType, what string) (selexer.Token, error) {
	if p.cur().Type != tt {
		return selexer.Token{}, p.errorf(fmt.Sprintf("expected %s, got %s", what, p.cur().Type))
	}
	tok := p.cur()
	p.advance()
	return tok, nil
}
