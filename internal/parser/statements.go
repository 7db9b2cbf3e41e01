package parser

import (
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

func (p *Parser) parseStatement() (*cst.Node, error) {
	switch p.curTok().Type {
	case lexer.IMPORT:
		return p.parseImport()
	case lexer.PROC, lexer.OP:
		return p.parseFunctionDeclaration()
	case lexer.IF:
		return p.parseSelection()
	case lexer.FORALL:
		return p.parseForAll()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IDENT:
		// A bare identifier followed by another identifier and a
		// signature opener is a function declaration with a bad leading
		// keyword; it parses so the converter can reject the keyword.
		if p.peekTok().Type == lexer.IDENT && isSignatureStart(p.peekTokenAt(2).Type) {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionStatement()
	default:
		if lexer.IsQualifier(p.curTok().Type) {
			return p.parseDeclaration()
		}
		return p.parseExpressionStatement()
	}
}

func isSignatureStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.LPAREN, lexer.LT, lexer.LBRACKET:
		return true
	default:
		return false
	}
}

// parseImport parses "import dotted.name ;".
func (p *Parser) parseImport() (*cst.Node, error) {
	importTok, err := p.expect(lexer.IMPORT)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindImport, importTok.Span)

	name, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}
	node.Append(name)

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), semi.Span))

	return node, nil
}

// parseDottedName parses "ident (. ident)*".
func (p *Parser) parseDottedName() (*cst.Node, error) {
	first, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}

	name := cst.NewNode(cst.KindDottedName, first.Span)
	name.Append(cst.NewLeaf(cst.KindToken, first))

	for p.curTok().Type == lexer.DOT && p.peekTok().Type == lexer.IDENT {
		p.nextToken() // '.'
		part, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		name.Append(cst.NewLeaf(cst.KindToken, part))
	}

	return name, nil
}

// parseFunctionDeclaration parses procedure and operation declarations:
//
//	keyword name <templates>? [indices]? (args) (-> qualified_type)? block
//
// The leading keyword and the return type are recorded as-is; validating
// them is the converter's job.
func (p *Parser) parseFunctionDeclaration() (*cst.Node, error) {
	keyword := p.curTok()
	p.nextToken()

	node := cst.NewNode(cst.KindFunction, keyword.Span)
	node.Append(cst.NewLeaf(cst.KindToken, keyword))

	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	node.Append(cst.NewLeaf(cst.KindToken, name))

	if p.curTok().Type == lexer.LT {
		templates, err := p.parseTemplateList()
		if err != nil {
			return nil, err
		}
		node.Append(templates)
	}

	if p.curTok().Type == lexer.LBRACKET {
		indices, err := p.parseIndexParamList()
		if err != nil {
			return nil, err
		}
		node.Append(indices)
	}

	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	node.Append(args)

	if p.curTok().Type == lexer.ARROW {
		p.nextToken()
		ret, err := p.parseQualifiedType()
		if err != nil {
			return nil, err
		}
		node.Append(ret)
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Append(body)

	return node, nil
}

// parseTemplateList parses "< ident (, ident)* >", possibly empty.
func (p *Parser) parseTemplateList() (*cst.Node, error) {
	open, err := p.expect(lexer.LT)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindTemplateList, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.GT, AllowEmpty: true}, func() (*cst.Node, error) {
		tok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return cst.NewLeaf(cst.KindToken, tok), nil
	})
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseIndexParamList parses "[ ident (, ident)* ]", possibly empty.
func (p *Parser) parseIndexParamList() (*cst.Node, error) {
	open, err := p.expect(lexer.LBRACKET)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindIndexParamList, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.RBRACKET, AllowEmpty: true}, func() (*cst.Node, error) {
		tok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		return cst.NewLeaf(cst.KindToken, tok), nil
	})
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseArgumentList parses "( argument (, argument)* )", possibly empty.
func (p *Parser) parseArgumentList() (*cst.Node, error) {
	open, err := p.expect(lexer.LPAREN)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindArgumentList, open.Span)
	items, err := p.parseList(listConfig{Closing: lexer.RPAREN, AllowEmpty: true}, p.parseArgument)
	if err != nil {
		return nil, err
	}
	node.Append(items...)
	node.SetSpan(cst.MergeSpan(node.Span(), p.peekTokenAt(-1).Span))

	return node, nil
}

// parseArgument parses "qualified_type ident?". The name stays optional
// here; the converter rejects unnamed arguments.
func (p *Parser) parseArgument() (*cst.Node, error) {
	qt, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindArgument, qt.Span())
	node.Append(qt)

	if p.curTok().Type == lexer.IDENT {
		name := p.curTok()
		p.nextToken()
		node.Append(cst.NewLeaf(cst.KindToken, name))
	}

	return node, nil
}

// parseDeclaration parses "qualified_type ident (= expression)? ;".
func (p *Parser) parseDeclaration() (*cst.Node, error) {
	qt, err := p.parseQualifiedType()
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindDeclaration, qt.Span())
	node.Append(qt)

	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	node.Append(cst.NewLeaf(cst.KindToken, name))

	if p.curTok().Type == lexer.ASSIGN {
		p.nextToken()
		value, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		node.Append(value)
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), semi.Span))

	return node, nil
}

// parseSelection parses "if ( expression ) block (else block)?".
func (p *Parser) parseSelection() (*cst.Node, error) {
	ifTok, err := p.expect(lexer.IF)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindSelection, ifTok.Span)

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	node.Append(cond)
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	trueBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Append(trueBody)

	if p.curTok().Type == lexer.ELSE {
		p.nextToken()
		falseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Append(falseBody)
	}

	return node, nil
}

// parseForAll parses "forall ( expression ) block".
func (p *Parser) parseForAll() (*cst.Node, error) {
	forTok, err := p.expect(lexer.FORALL)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindForAll, forTok.Span)

	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	index, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	node.Append(index)
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Append(body)

	return node, nil
}

// parseReturn parses "return expression ;".
func (p *Parser) parseReturn() (*cst.Node, error) {
	retTok, err := p.expect(lexer.RETURN)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindReturn, retTok.Span)

	value, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}
	node.Append(value)

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), semi.Span))

	return node, nil
}

// parseExpressionStatement parses "expression (= expression)? ;". With an
// assignment the node has two expression children, otherwise one.
func (p *Parser) parseExpressionStatement() (*cst.Node, error) {
	first, err := p.parseExpression(precedenceLowest)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindExpressionStmt, first.Span())
	node.Append(first)

	if p.curTok().Type == lexer.ASSIGN {
		p.nextToken()
		right, err := p.parseExpression(precedenceLowest)
		if err != nil {
			return nil, err
		}
		node.Append(right)
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	node.SetSpan(cst.MergeSpan(node.Span(), semi.Span))

	return node, nil
}

// parseBlock parses "{ statement* }".
func (p *Parser) parseBlock() (*cst.Node, error) {
	open, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}

	node := cst.NewNode(cst.KindBlock, open.Span)

	for p.curTok().Type != lexer.RBRACE {
		if p.curTok().Type == lexer.EOF {
			return nil, p.syntaxError("expected '}' to close block", p.curTok().Span)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.Append(stmt)
	}

	closing := p.curTok()
	p.nextToken()
	node.SetSpan(cst.MergeSpan(node.Span(), closing.Span))

	return node, nil
}
