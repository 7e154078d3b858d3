// Package sexp provides a small S-expression reader for KiCad files.
// It lexes with participle rules and parses into a minimal node tree that the
// footprint package navigates with the helpers in this package.
package sexp

import (
	"strings"
)

// Node is a parsed S-expression: either an Atom or a *List.
type Node interface {
	// IsList reports whether the node is a list rather than an atom.
	IsList() bool

	// String renders the node back in S-expression syntax.
	String() string
}

// Atom is an atomic value. Quoted records whether it appeared as a quoted
// string in the source; the Value itself is always unquoted.
type Atom struct {
	Value  string
	Quoted bool
}

func (a Atom) IsList() bool { return false }

func (a Atom) String() string {
	if !a.Quoted {
		return a.Value
	}
	return quote(a.Value)
}

// List is a parenthesized sequence of nodes.
type List struct {
	Items []Node
}

func (l *List) IsList() bool { return true }

// Key returns the leading symbol of the list, or "" if the list is empty or
// starts with a sublist.
func (l *List) Key() string {
	if len(l.Items) == 0 {
		return ""
	}
	if atom, ok := l.Items[0].(Atom); ok {
		return atom.Value
	}
	return ""
}

// Len returns the number of elements, including the key.
func (l *List) Len() int { return len(l.Items) }

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// quote renders a string as a KiCad quoted atom.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
