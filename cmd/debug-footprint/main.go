// Command debug-footprint dumps the raw s-expression structure of a KiCad
// footprint file using the chewxy/sexp parser, as a cross-check against the
// in-tree reader.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-footprint <file.kicad_mod>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File size: %d bytes\n", info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d top-level s-expressions\n", len(sexps))
	for i, s := range sexps {
		if s == nil {
			continue
		}
		fmt.Printf("  #%d: leaf=%v", i, s.IsLeaf())
		if !s.IsLeaf() {
			fmt.Printf(" children=%d head=%s", s.LeafCount(), s.Head())
		}
		fmt.Println()
	}
}
