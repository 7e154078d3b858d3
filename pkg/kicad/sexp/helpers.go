package sexp

import (
	"fmt"
	"strconv"
)

// FindNode searches the immediate children of n for a sublist whose key
// matches. Example: FindNode(pad, "at") finds (at 1.2 3.4).
func FindNode(n Node, key string) (*List, bool) {
	list, ok := n.(*List)
	if !ok {
		return nil, false
	}

	for _, item := range list.Items {
		if sub, ok := item.(*List); ok && sub.Key() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAllNodes returns every immediate child sublist with the given key.
func FindAllNodes(n Node, key string) []*List {
	list, ok := n.(*List)
	if !ok {
		return nil
	}

	var results []*List
	for _, item := range list.Items {
		if sub, ok := item.(*List); ok && sub.Key() == key {
			results = append(results, sub)
		}
	}
	return results
}

// GetString extracts the atom value at the given index in a list. Index 0 is
// the key, 1 the first value, and so on.
func GetString(l *List, index int) (string, error) {
	if index < 0 || index >= l.Len() {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, l.Len())
	}

	atom, ok := l.Items[index].(Atom)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
	return atom.Value, nil
}

// GetFloat extracts a float value at the given index.
func GetFloat(l *List, index int) (float64, error) {
	str, err := GetString(l, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

// GetInt extracts an int value at the given index.
func GetInt(l *List, index int) (int, error) {
	str, err := GetString(l, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}
