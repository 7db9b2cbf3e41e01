// Package parser turns Tensile source text into a concrete syntax tree.
// It performs no semantic validation: constructs that are only
// semantically mandatory (argument names, operation return types, the
// declaration keyword) stay optional in the grammar and are checked by
// the astbuild converter.
package parser

import (
	"fmt"

	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/diag"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements a recursive descent parser for Tensile. The whole
// token stream is lexed up front; curTok/peekTokenAt form the lookahead
// window. The parser halts at the first error: conversion is all or
// nothing, so there is no recovery or multi-error collection.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	filename string
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lx := lexer.New(input)
	if cfg.filename != "" {
		lx.SetFilename(cfg.filename)
	}

	var tokens []lexer.Token
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	return &Parser{
		tokens:   tokens,
		filename: cfg.filename,
	}
}

// Parse parses source text in one call.
func Parse(input string, opts ...Option) (*cst.Node, error) {
	return New(input, opts...).ParseModule()
}

func (p *Parser) curTok() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekTok() lexer.Token {
	return p.peekTokenAt(1)
}

// peekTokenAt returns the token n positions ahead of curTok without
// advancing; past the end it keeps returning EOF.
func (p *Parser) peekTokenAt(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	if i < 0 {
		return p.tokens[0]
	}
	return p.tokens[i]
}

// nextToken advances the parser's token window.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// expect asserts that the current token matches the provided type and
// advances past it.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	tok := p.curTok()
	if tok.Type != tt {
		return tok, p.syntaxError(fmt.Sprintf("expected '%s', found '%s'", tt, describeToken(tok)), tok.Span)
	}
	p.nextToken()
	return tok, nil
}

// syntaxError builds the grammar-level syntax error for the given span.
func (p *Parser) syntaxError(msg string, span lexer.Span) error {
	return diag.NewSyntaxError(diag.StageParser, diag.CodeSyntaxUnexpectedToken, msg, toDiagSpan(span))
}

func toDiagSpan(span lexer.Span) diag.Span {
	return diag.Span{
		Filename:  span.Filename,
		Line:      span.Line,
		Column:    span.Column,
		EndLine:   span.EndLine,
		EndColumn: span.EndColumn,
		Start:     span.Start,
		End:       span.End,
	}
}

func describeToken(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of input"
	}
	if tok.Raw != "" {
		return tok.Raw
	}
	return string(tok.Type)
}

// ParseModule parses a full compilation unit.
func (p *Parser) ParseModule() (*cst.Node, error) {
	module := cst.NewNode(cst.KindModule, p.curTok().Span)

	for p.curTok().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		module.Append(stmt)
	}

	module.SetSpan(cst.MergeSpan(module.Span(), p.curTok().Span))

	return module, nil
}

// listConfig drives parseList, the shared delimited-list loop.
type listConfig struct {
	Closing       lexer.TokenType
	Separator     lexer.TokenType
	AllowEmpty    bool
	AllowTrailing bool
}

// parseList parses "item (sep item)* sep? closing", starting with curTok
// on the first item (or the closing token when the list is empty), and
// leaves curTok past the closing token.
func (p *Parser) parseList(cfg listConfig, parseItem func() (*cst.Node, error)) ([]*cst.Node, error) {
	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	var items []*cst.Node

	if p.curTok().Type == cfg.Closing {
		if !cfg.AllowEmpty {
			return nil, p.syntaxError("expected list element", p.curTok().Span)
		}
		p.nextToken()
		return items, nil
	}

	for {
		item, err := parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		switch p.curTok().Type {
		case cfg.Separator:
			p.nextToken()
			if p.curTok().Type == cfg.Closing {
				if !cfg.AllowTrailing {
					return nil, p.syntaxError("expected list element", p.curTok().Span)
				}
				p.nextToken()
				return items, nil
			}
		case cfg.Closing:
			p.nextToken()
			return items, nil
		default:
			return nil, p.syntaxError(
				fmt.Sprintf("expected '%s' or '%s', found '%s'", cfg.Separator, cfg.Closing, describeToken(p.curTok())),
				p.curTok().Span)
		}
	}
}
