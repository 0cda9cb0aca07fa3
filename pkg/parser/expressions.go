package parser

import (
	"strconv"

	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/lexer"
)

// Expression grammar (spec.md §4.2):
//
//	Expr   := Term   (('+' | '-') Term)*      -- left associative
//	Term   := Factor (('*' | '/') Factor)*    -- left associative
//	Factor := Number
//	        | String
//	        | '(' Expr ')'
//	        | '-' Term                        -- unary minus
//	        | Identifier                      -- VPath | Function | Identifier
//	ArgList := (Expr (',' Expr)*)?
//
// This is written directly from the grammar ("classic RD" per spec.md
// §4.2), not as a Pratt/precedence-climbing table: the three levels
// (Expr/Term/Factor) already encode the two precedence bands, and unary
// minus's odd "binds tighter than +/- but looser than */" rule falls out
// naturally because Factor's '-' case recurses into parseTerm, not
// parseFactor.

func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.currentIs(lexer.Plus) || p.currentIs(lexer.Minus) {
		opTok := p.cur()
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{
			BaseNode: ast.BaseNode{StartPos: left.Start(), EndPos: right.End()},
			Operator: opTok.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.currentIs(lexer.Mul) || p.currentIs(lexer.Div) {
		opTok := p.cur()
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOpExpr{
			BaseNode: ast.BaseNode{StartPos: left.Start(), EndPos: right.End()},
			Operator: opTok.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.cur().Type {
	case lexer.Number:
		return p.parseNumber()
	case lexer.String:
		tok := p.cur()
		p.advance()
		return &ast.StringExpr{BaseNode: ast.BaseNode{StartPos: tok.Start, EndPos: tok.End}, Value: tok.Value}, nil
	case lexer.OpenParen:
		return p.parseParenExpr()
	case lexer.Minus:
		return p.parseUnaryMinus()
	case lexer.Identifier:
		return p.parseIdentifierLikeExpr()
	default:
		return nil, p.errorf("expected an expression")
	}
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.cur()
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, p.errorf("invalid numeric literal " + strconv.Quote(tok.Value))
	}
	p.advance()
	return &ast.NumberExpr{
		BaseNode:    ast.BaseNode{StartPos: tok.Start, EndPos: tok.End},
		Value:       value,
		LiteralText: tok.Value,
	}, nil
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if err := p.enterExpr(); err != nil {
		return nil, err
	}
	defer p.leaveExpr()

	start := p.cur().Start
	p.advance() // consume '('

	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	closeTok, err := p.expect(lexer.CloseParen, "')'")
	if err != nil {
		return nil, err
	}

	// Parentheses are not part of the AST (spec.md §3: Expr has no
	// grouping variant) — the printer's own canonicalization (spec.md
	// §4.3) drops redundant parens because the tree has already
	// committed to an associativity. The returned expression keeps its own
	// span; the parentheses are not included in it.
	_ = start
	_ = closeTok
	return inner, nil
}

func (p *Parser) parseUnaryMinus() (ast.Expr, error) {
	if err := p.enterExpr(); err != nil {
		return nil, err
	}
	defer p.leaveExpr()

	opTok := p.cur()
	p.advance() // consume '-'

	operand, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryOpExpr{
		BaseNode: ast.BaseNode{StartPos: opTok.Start, EndPos: operand.End()},
		Operator: opTok.Value,
		Operand:  operand,
	}, nil
}

// parseIdentifierLikeExpr disambiguates the three Identifier-headed
// Factor productions with one token of lookahead past the identifier:
// `Identifier ':' Identifier` -> VPath, `Identifier '('` -> Function,
// anything else -> IdentifierExpr (spec.md §4.2).
func (p *Parser) parseIdentifierLikeExpr() (ast.Expr, error) {
	nameTok := p.cur()
	p.advance()

	switch {
	case p.currentIs(lexer.Colon):
		p.advance()
		fieldTok, err := p.expect(lexer.Identifier, "vpath field")
		if err != nil {
			return nil, err
		}
		table, field := nameTok.Value, fieldTok.Value
		return &ast.VPathExpr{
			BaseNode: ast.BaseNode{StartPos: nameTok.Start, EndPos: fieldTok.End},
			Table:    &table,
			Field:    &field,
		}, nil

	case p.currentIs(lexer.OpenParen):
		return p.parseFunctionCall(nameTok)

	default:
		return &ast.IdentifierExpr{
			BaseNode: ast.BaseNode{StartPos: nameTok.Start, EndPos: nameTok.End},
			Value:    nameTok.Value,
		}, nil
	}
}

func (p *Parser) parseFunctionCall(nameTok lexer.Token) (ast.Expr, error) {
	if err := p.enterExpr(); err != nil {
		return nil, err
	}
	defer p.leaveExpr()

	p.advance() // consume '('

	var args []ast.Expr
	if !p.currentIs(lexer.CloseParen) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		for p.currentIs(lexer.Comma) {
			p.advance()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	closeTok, err := p.expect(lexer.CloseParen, "')'")
	if err != nil {
		return nil, err
	}

	return &ast.FunctionExpr{
		BaseNode: ast.BaseNode{StartPos: nameTok.Start, EndPos: closeTok.End},
		Name:     nameTok.Value,
		Args:     args,
	}, nil
}

// enterExpr/leaveExpr enforce options.MaxExpressionDepth around every
// Factor production that recurses back into the expression grammar
// (parens, unary minus, function calls) — the three places stack depth
// can actually grow, since Expr/Term's own +/-/*// chains are already
// iterative for-loops.
func (p *Parser) enterExpr() error {
	p.exprDepth++
	if p.exprDepth > p.opts.MaxExpressionDepth {
		return p.errorf("expression nested too deeply")
	}
	return nil
}

func (p *Parser) leaveExpr() {
	p.exprDepth--
}
