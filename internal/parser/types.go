package parser

import (
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

// parseQualifiedType parses "qualifier base_type".
func (p *Parser) parseQualifiedType() (*cst.Node, error) {
	qualifier := p.curTok()
	if !lexer.IsQualifier(qualifier.Type) {
		return nil, p.syntaxError("expected type qualifier", qualifier.Span)
	}
	p.nextToken()

	node := cst.NewNode(cst.KindQualifiedType, qualifier.Span)
	node.Append(cst.NewLeaf(cst.KindToken, qualifier))

	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node.Append(base)

	return node, nil
}

// parseType parses a base type: a tuple type, an index type, or a
// (possibly shaped) numerical type. The bracket contents commit the
// production: a colon-separated range is an index type, a comma-separated
// expression list is a shape.
func (p *Parser) parseType() (*cst.Node, error) {
	switch p.curTok().Type {
	case lexer.TUPLE:
		return p.parseTupleType()
	case lexer.INDEX:
		return p.parseIndexType()
	case lexer.IDENT:
		return p.parseNumericalType()
	default:
		return nil, p.syntaxError("expected type", p.curTok().Span)
	}
}

// parseTupleType parses "tuple [ type (, type)* ,? ]".
func (p *Parser) parseTupleType() (*cst.Node, error) {
	tupleTok, err := p.expect(lexer.TUPLE)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindTupleType, tupleTok.Span)

	if _, err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	items, err := p.parseList(listConfig{Closing: lexer.RBRACKET, AllowTrailing: true}, p.parseType)
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseIndexType parses "index [ expr : expr (: expr)? ]".
func (p *Parser) parseIndexType() (*cst.Node, error) {
	indexTok, err := p.expect(lexer.INDEX)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindIndexType, indexTok.Span)

	if _, err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}

	if err := p.parseRangeInto(node); err != nil {
		return nil, err
	}

	closing, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))

	return node, nil
}

// parseRangeInto parses "expr : expr (: expr)?" appending the bounds (and
// optional stride) to node.
func (p *Parser) parseRangeInto(node *cst.Node) error {
	lower, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return err
	}
	node.Append(lower)

	if _, err := p.expect(lexer.COLON); err != nil {
		return err
	}

	upper, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return err
	}
	node.Append(upper)

	if p.curTok().Type == lexer.COLON {
		p.nextToken()
		stride, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return err
		}
		node.Append(stride)
	}

	return nil
}

// parseNumericalType parses "name ([ shape-or-range ])?". A range in the
// brackets turns the production into an index type.
func (p *Parser) parseNumericalType() (*cst.Node, error) {
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindNumericalType, name.Span)
	node.Append(cst.NewLeaf(cst.KindToken, name))

	if p.curTok().Type != lexer.LBRACKET {
		return node, nil
	}
	p.nextToken()

	if p.curTok().Type == lexer.RBRACKET {
		closing := p.curTok()
		p.nextToken()
		shape := cst.NewNode(cst.KindShape, closing.Span)
		node.Append(shape)
		node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))
		return node, nil
	}

	first, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	if p.curTok().Type == lexer.COLON {
		// name[low:high(:stride)?] commits to an index type.
		indexNode := cst.NewNode(cst.KindIndexType, node.Span())
		indexNode.Append(first)

		p.nextToken()
		upper, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		indexNode.Append(upper)

		if p.curTok().Type == lexer.COLON {
			p.nextToken()
			stride, err := p.parseExpression(precedenceLowest)
			if err != nil {
				return nil, err
			}
			indexNode.Append(stride)
		}

		closing, err := p.expect(lexer.RBRACKET)
		if err != nil {
			return nil, err
		}
		indexNode.SetSpan(cst.MergeSpan(indexNode.Span(), closing.Span))
		return indexNode, nil
	}

	shape := cst.NewNode(cst.KindShape, first.Span())
	shape.Append(first)

	for p.curTok().Type == lexer.COMMA {
		p.nextToken()
		dim, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		shape.Append(dim)
	}

	closing, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	node.Append(shape)
	node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))

	return node, nil
}
