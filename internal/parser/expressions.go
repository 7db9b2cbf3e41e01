package parser

import (
	"strings"

	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

const (
	precedenceLowest = iota
	precedenceTernary
	precedenceOr
	precedenceAnd
	precedenceBitOr
	precedenceBitXor
	precedenceBitAnd
	precedenceEquality
	precedenceComparison
	precedenceShift
	precedenceSum
	precedenceProduct
	precedencePower
	precedencePrefix
)

var precedences = map[lexer.TokenType]int{
	lexer.QUESTION: precedenceTernary,
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.PIPE:     precedenceBitOr,
	lexer.CARET:    precedenceBitXor,
	lexer.AMP:      precedenceBitAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.SHL:      precedenceShift,
	lexer.SHR:      precedenceShift,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.PERCENT:  precedenceProduct,
	lexer.POWER:    precedencePower,
}

// parseExpression is the Pratt loop: a prefix form followed by infix
// operators of higher precedence than the caller's context.
func (p *Parser) parseExpression(prec int) (*cst.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		opPrec, ok := precedences[p.curTok().Type]
		if !ok || opPrec <= prec {
			return left, nil
		}

		if p.curTok().Type == lexer.QUESTION {
			left, err = p.parseTernary(left)
		} else {
			left, err = p.parseBinary(left, opPrec)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseBinary(left *cst.Node, opPrec int) (*cst.Node, error) {
	op := p.curTok()
	p.nextToken()

	// Exponentiation is right-associative.
	rightPrec := opPrec
	if op.Type == lexer.POWER {
		rightPrec = opPrec - 1
	}

	right, err := p.parseExpression(rightPrec)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindBinaryExpr, left.Span())
	node.Append(left, cst.NewLeaf(cst.KindToken, op), right)
	return node, nil
}

// parseTernary parses "cond ? true : false" with curTok on '?'.
func (p *Parser) parseTernary(cond *cst.Node) (*cst.Node, error) {
	p.nextToken() // '?'

	trueExpr, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}

	falseExpr, err := p.parseExpression(precedenceTernary - 1)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindTernaryExpr, cond.Span())
	node.Append(cond, trueExpr, falseExpr)
	return node, nil
}

func (p *Parser) parsePrefix() (*cst.Node, error) {
	switch p.curTok().Type {
	case lexer.INT:
		tok := p.curTok()
		p.nextToken()
		return p.parsePostfix(cst.NewLeaf(cst.KindIntLiteral, tok))
	case lexer.FLOAT:
		tok := p.curTok()
		p.nextToken()
		return p.parsePostfix(cst.NewLeaf(cst.KindFloatLiteral, tok))
	case lexer.COMPLEX:
		tok := p.curTok()
		p.nextToken()
		return p.parsePostfix(cst.NewLeaf(cst.KindComplexLiteral, tok))
	case lexer.MINUS, lexer.TILDE, lexer.BANG:
		return p.parseUnary()
	case lexer.LPAREN:
		return p.parseGroupedOrTuple()
	case lexer.IDENT:
		primary, err := p.parseIdentifierPrimary()
		if err != nil {
			return nil, err
		}
		return p.parsePostfix(primary)
	default:
		return nil, p.syntaxError("expected expression, found '"+describeToken(p.curTok())+"'", p.curTok().Span)
	}
}

func (p *Parser) parseUnary() (*cst.Node, error) {
	op := p.curTok()
	p.nextToken()

	operand, err := p.parseExpression(precedencePrefix)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindUnaryExpr, op.Span)
	node.Append(cst.NewLeaf(cst.KindToken, op), operand)
	return node, nil
}

// parseGroupedOrTuple parses "( expr )" or "( expr (, expr)* ,? )". A
// trailing comma distinguishes a one-element tuple from a grouping.
func (p *Parser) parseGroupedOrTuple() (*cst.Node, error) {
	open, err := p.expect(lexer.LPAREN)
	if err != nil {
		return nil, err
	}

	first, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	if p.curTok().Type == lexer.RPAREN {
		closing := p.curTok()
		p.nextToken()
		node := cst.NewNode(cst.KindGroupedExpr, open.Span)
		node.Append(first)
		node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))
		return p.parsePostfix(node)
	}

	node := cst.NewNode(cst.KindTupleExpr, open.Span)
	node.Append(first)

	for p.curTok().Type == lexer.COMMA {
		p.nextToken()
		if p.curTok().Type == lexer.RPAREN {
			break
		}
		elem, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		node.Append(elem)
	}

	closing, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))

	return p.parsePostfix(node)
}

// parseIdentifierPrimary parses an identifier or dotted path, then commits
// to a function call when the following tokens form template arguments,
// index arguments, or a plain argument list.
func (p *Parser) parseIdentifierPrimary() (*cst.Node, error) {
	name, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}

	ident := cst.NewNode(cst.KindIdentifierExpr, name.Span())
	ident.Append(name)

	var templateArgs, indexArgs *cst.Node

	switch {
	case p.curTok().Type == lexer.LT && p.templateArgsAhead():
		templateArgs, err = p.parseTemplateArgs()
		if err != nil {
			return nil, err
		}
		if p.curTok().Type == lexer.LBRACKET {
			indexArgs, err = p.parseIndexArgs()
			if err != nil {
				return nil, err
			}
		}
	case p.curTok().Type == lexer.LBRACKET && p.indexArgsAhead():
		indexArgs, err = p.parseIndexArgs()
		if err != nil {
			return nil, err
		}
	case p.curTok().Type == lexer.LPAREN:
		// plain call, handled below
	default:
		return ident, nil
	}

	call := cst.NewNode(cst.KindFunctionCall, ident.Span())
	call.Append(ident)
	if templateArgs != nil {
		call.Append(templateArgs)
	}
	if indexArgs != nil {
		call.Append(indexArgs)
	}

	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	call.Append(args)

	return call, nil
}

// parseTemplateArgs parses "< type (, type)* >", possibly empty.
func (p *Parser) parseTemplateArgs() (*cst.Node, error) {
	open, err := p.expect(lexer.LT)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindTemplateArgs, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.GT, AllowEmpty: true}, p.parseType)
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseIndexArgs parses "[ expr (, expr)* ]", possibly empty.
func (p *Parser) parseIndexArgs() (*cst.Node, error) {
	open, err := p.expect(lexer.LBRACKET)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindIndexArgs, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.RBRACKET, AllowEmpty: true}, func() (*cst.Node, error) {
		return p.parseExpression(precedenceLowest)
	})
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseCallArgs parses "( expr (, expr)* )", possibly empty.
func (p *Parser) parseCallArgs() (*cst.Node, error) {
	open, err := p.expect(lexer.LPAREN)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindCallArgs, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.RPAREN, AllowEmpty: true}, func() (*cst.Node, error) {
		return p.parseExpression(precedenceLowest)
	})
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parsePostfix applies tuple and array accesses to a primary expression.
// Chained accesses nest left to right.
func (p *Parser) parsePostfix(primary *cst.Node) (*cst.Node, error) {
	for {
		switch {
		case p.curTok().Type == lexer.DOT && p.peekTok().Type == lexer.INT:
			p.nextToken() // '.'
			idx := p.curTok()
			p.nextToken()
			node := cst.NewNode(cst.KindTupleAccess, primary.Span())
			node.Append(primary, cst.NewLeaf(cst.KindIntLiteral, idx))
			primary = node

		case p.curTok().Type == lexer.FLOAT && isTupleIndexFloat(p.curTok().Raw):
			// The lexer munches ".1" after an expression as a float
			// token; a dot followed by bare digits in postfix position
			// is a tuple access, so the token is split back apart here.
			tok := p.curTok()
			p.nextToken()
			idxTok := tok
			idxTok.Raw = strings.TrimPrefix(tok.Raw, ".")
			node := cst.NewNode(cst.KindTupleAccess, primary.Span())
			node.Append(primary, cst.NewLeaf(cst.KindIntLiteral, idxTok))
			primary = node

		case p.curTok().Type == lexer.LBRACKET:
			open := p.curTok()
			p.nextToken()
			node := cst.NewNode(cst.KindArrayAccess, primary.Span())
			node.Append(primary)
			items, err := p.parseList(listConfig{Closing: lexer.RBRACKET}, func() (*cst.Node, error) {
				return p.parseExpression(precedenceLowest)
			})
			if err != nil {
				return nil, err
			}
			list := cst.NewNode(cst.KindExpressionList, open.Span)
			list.Append(items...)
			list.SetSpan(cst.MergeSpan(list.Span(), p.peekTokenAt(-1).Span))
			node.Append(list)
			primary = node

		default:
			return primary, nil
		}
	}
}

// isTupleIndexFloat reports whether a float token spells ".N" with bare
// digits, the shape produced when the lexer munches a tuple access index.
func isTupleIndexFloat(raw string) bool {
	if len(raw) < 2 || raw[0] != '.' {
		return false
	}
	for _, ch := range raw[1:] {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// templateArgsAhead reports whether the '<' at curTok opens a template
// argument list: a type-shaped token run closed by '>' and followed by a
// call's '(' (directly or after an index argument list). Anything else is
// a comparison.
func (p *Parser) templateArgsAhead() bool {
	i := 1
	for {
		switch p.peekTokenAt(i).Type {
		case lexer.GT:
			return p.callOpenerAt(i + 1)
		case lexer.IDENT, lexer.COMMA, lexer.INT, lexer.COLON,
			lexer.TUPLE, lexer.INDEX, lexer.LBRACKET, lexer.RBRACKET:
			i++
		default:
			return false
		}
	}
}

// callOpenerAt reports whether the token at offset i begins "(...)" or
// "[...](" — the mandatory call suffix after template arguments.
func (p *Parser) callOpenerAt(i int) bool {
	switch p.peekTokenAt(i).Type {
	case lexer.LPAREN:
		return true
	case lexer.LBRACKET:
		depth := 1
		for j := i + 1; ; j++ {
			switch p.peekTokenAt(j).Type {
			case lexer.LBRACKET:
				depth++
			case lexer.RBRACKET:
				depth--
				if depth == 0 {
					return p.peekTokenAt(j+1).Type == lexer.LPAREN
				}
			case lexer.EOF, lexer.SEMICOLON, lexer.LBRACE:
				return false
			}
		}
	default:
		return false
	}
}

// indexArgsAhead reports whether the '[' at curTok belongs to a call's
// index argument list rather than an array access.
func (p *Parser) indexArgsAhead() bool {
	return p.callOpenerAt(0)
}
