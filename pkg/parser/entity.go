package parser

import (
	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/lexer"
)

// parseRoot parses `Root := (EOL | Entity)*` (spec.md §4.2).
func (p *Parser) parseRoot() (*ast.Root, error) {
	root := &ast.Root{BaseNode: ast.BaseNode{StartPos: p.cur().Start}}

	for !p.currentIs(lexer.EOF) {
		if p.currentIs(lexer.EOL) {
			p.advance()
			continue
		}
		entity, err := p.parseEntity()
		if err != nil {
			return nil, err
		}
		root.Entities = append(root.Entities, entity)
	}

	root.EndPos = p.cur().End
	return root, nil
}

// parseEntity parses `Entity := Header Body`.
func (p *Parser) parseEntity() (*ast.Entity, error) {
	start := p.cur().Start

	header, err := p.parseHeader()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &ast.Entity{
		BaseNode: ast.BaseNode{StartPos: start, EndPos: p.tokens[max(p.idx-1, 0)].End},
		Header:   header,
		Body:     body,
	}, nil
}

// parseHeader parses
// `Header := main:Identifier [sub:Identifier] [Hash Identifier] [Reference]`
// (spec.md §4.2). The optional tail elements are fixed in order: sub_type,
// then #id, then @ref.
func (p *Parser) parseHeader() (ast.Header, error) {
	mainTok, err := p.expect(lexer.Identifier, "entity main type")
	if err != nil {
		return ast.Header{}, err
	}

	header := ast.Header{MainType: mainTok.Value}

	if p.currentIs(lexer.Identifier) {
		sub := p.cur().Value
		header.SubType = &sub
		p.advance()
	}

	if p.currentIs(lexer.Hash) {
		p.advance()
		idTok, err := p.expect(lexer.Identifier, "identifier after '#'")
		if err != nil {
			return ast.Header{}, err
		}
		header.Identifier = &idTok.Value
	}

	if p.currentIs(lexer.Reference) {
		ref := p.cur().Value
		header.Reference = &ref
		p.advance()
	}

	return header, nil
}

// parseBody parses
// `Body := '{' EOL (EOL | Field | Entity)* '}' EOL` (spec.md §4.2).
// Disambiguation between Field and nested Entity uses two-token lookahead:
// `Identifier Colon` is a Field, `Identifier <anything else>` is an Entity.
func (p *Parser) parseBody() (ast.Body, error) {
	if _, err := p.expect(lexer.OpenBrace, "'{'"); err != nil {
		return ast.Body{}, err
	}
	if p.currentIs(lexer.EOL) {
		p.advance()
	}

	var body ast.Body

	for !p.currentIs(lexer.CloseBrace) && !p.currentIs(lexer.EOF) {
		switch {
		case p.currentIs(lexer.EOL):
			p.advance()
		case p.currentIs(lexer.Identifier) && p.peekIs(lexer.Colon):
			field, err := p.parseField()
			if err != nil {
				return ast.Body{}, err
			}
			body.Fields = append(body.Fields, field)
		default:
			child, err := p.parseEntity()
			if err != nil {
				return ast.Body{}, err
			}
			body.Children = append(body.Children, child)
		}
	}

	if _, err := p.expect(lexer.CloseBrace, "'}'"); err != nil {
		return ast.Body{}, err
	}
	// The trailing EOL after '}' is optional here: the outermost entity
	// in a document may end at EOF with no final newline (spec.md §8
	// scenario 1's example text does exactly that).
	if p.currentIs(lexer.EOL) {
		p.advance()
	}

	return body, nil
}

// parseField parses `Field := Identifier ':' Expr EOL`.
func (p *Parser) parseField() (*ast.Field, error) {
	nameTok, err := p.expect(lexer.Identifier, "field name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Colon, "':'"); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.EOL, "end of line after field value"); err != nil {
		return nil, err
	}

	return &ast.Field{
		BaseNode:   ast.BaseNode{StartPos: nameTok.Start, EndPos: value.End()},
		Identifier: nameTok.Value,
		Value:      value,
	}, nil
}
