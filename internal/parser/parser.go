// Package parser implements the SimpleLang parser.
//
// The grammar is tiny:
//
//	expr     := const | name | list | eval
//	eval     := '$' expr
//	list     := '(' ')' | '(' listbody ')'
//	listbody := expr | listbody expr
//
// Parse wraps the source expressions S… as $(main (S…)), so evaluating the
// returned root enters the main built-in with one list argument holding the
// top-level expressions.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-simplelang/internal/ast"
	"github.com/cwbudde/go-simplelang/internal/lexer"
)

// Parser builds a code tree from the token stream of a Lexer.
// Errors are accumulated as strings and reported through Errors().
type Parser struct {
	l         *lexer.Lexer
	errors    []string
	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all parse error messages accumulated so far.
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken advances the token window by one token.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// addError records a parse error.
func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// Parse consumes the whole input and returns the wrapped root node
// $(main (expr…)). It returns nil when a syntax error was found.
func (p *Parser) Parse() *ast.Node {
	var exprs []*ast.Node

	for p.curToken.Type != lexer.EOF {
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)
		p.nextToken()
	}

	return &ast.Node{
		Op: ast.OpEval,
		Target: &ast.Node{
			Op: ast.OpList,
			Children: []*ast.Node{
				{Op: ast.OpName, StrVal: "main"},
				{Op: ast.OpList, Children: exprs},
			},
		},
	}
}

// parseExpr parses a single expression starting at curToken and leaves
// curToken on the last token of the expression. Returns nil on error.
func (p *Parser) parseExpr() *ast.Node {
	switch p.curToken.Type {
	case lexer.INT:
		v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			p.addError("Invalid integer literal '%s'", p.curToken.Literal)
			return nil
		}
		return &ast.Node{Op: ast.OpInt, IntVal: v}

	case lexer.FLOAT:
		v, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			p.addError("Invalid float literal '%s'", p.curToken.Literal)
			return nil
		}
		return &ast.Node{Op: ast.OpFloat, FloatVal: v}

	case lexer.STRING:
		return &ast.Node{Op: ast.OpStr, StrVal: p.curToken.Literal}

	case lexer.NAME:
		return &ast.Node{Op: ast.OpName, StrVal: p.curToken.Literal}

	case lexer.DOLLAR:
		p.nextToken()
		target := p.parseExpr()
		if target == nil {
			return nil
		}
		return &ast.Node{Op: ast.OpEval, Target: target}

	case lexer.LPAREN:
		return p.parseList()

	case lexer.ILLEGAL:
		p.addError("%s", p.lexerMessage())
		return nil

	default:
		p.addError("Wrong syntax.")
		return nil
	}
}

// parseList parses a possibly empty parenthesized list. curToken is '('
// on entry and ')' on successful exit.
func (p *Parser) parseList() *ast.Node {
	children := []*ast.Node{}

	p.nextToken() // consume '('
	for p.curToken.Type != lexer.RPAREN {
		if p.curToken.Type == lexer.EOF {
			p.addError("Wrong syntax.")
			return nil
		}
		child := p.parseExpr()
		if child == nil {
			return nil
		}
		children = append(children, child)
		p.nextToken()
	}

	return &ast.Node{Op: ast.OpList, Children: children}
}

// lexerMessage returns the message of the most recent lexer error, falling
// back to a generic one when the lexer recorded nothing.
func (p *Parser) lexerMessage() string {
	errs := p.l.Errors()
	if len(errs) == 0 {
		return "Wrong syntax."
	}
	return errs[len(errs)-1].Message
}
