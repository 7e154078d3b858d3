package sexp

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of KiCad S-expression files.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},

	// Quoted strings with backslash escapes
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Anything else up to a delimiter: identifiers, numbers, layer names
	{Name: "Symbol", Pattern: `[^\s()"]+`},
})

var (
	symbols       = Lexer.Symbols()
	tokComment    = symbols["Comment"]
	tokWhitespace = symbols["Whitespace"]
	tokString     = symbols["String"]
	tokLParen     = symbols["LParen"]
	tokRParen     = symbols["RParen"]
	tokSymbol     = symbols["Symbol"]
)

// unquote strips the surrounding quotes from a String token and resolves
// backslash escapes.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)

	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}

		escaped = false
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
