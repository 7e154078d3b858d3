package sexp

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	lex, err := Lexer.Lex("", r)
	if err != nil {
		return nil, err
	}

	p := &parser{lex: lex}

	var nodes []Node
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return nodes, nil
		}

		node, err := p.parseNode(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// ParseString parses all S-expressions from a string.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	lex lexer.Lexer
}

// next returns the next significant token, skipping whitespace and comments.
func (p *parser) next() (lexer.Token, error) {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return tok, err
		}
		if tok.Type == tokWhitespace || tok.Type == tokComment {
			continue
		}
		return tok, nil
	}
}

func (p *parser) parseNode(tok lexer.Token) (Node, error) {
	switch tok.Type {
	case tokLParen:
		return p.parseList()

	case tokString:
		return Atom{Value: unquote(tok.Value), Quoted: true}, nil

	case tokSymbol:
		return Atom{Value: tok.Value}, nil

	case tokRParen:
		return nil, fmt.Errorf("unexpected ')' at %s", tok.Pos)

	default:
		return nil, fmt.Errorf("unexpected token %q at %s", tok.Value, tok.Pos)
	}
}

func (p *parser) parseList() (*List, error) {
	list := &List{}

	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return nil, fmt.Errorf("unexpected EOF in list")
		}
		if tok.Type == tokRParen {
			return list, nil
		}

		node, err := p.parseNode(tok)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, node)
	}
}
