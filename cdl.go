// Package cdl is the public entry point to the Configuration Description
// Language compiler: compile, print, and query a CDL document
// (SPEC_FULL.md §6). This is a pure, synchronous, single-threaded library
// with no file, socket, or environment access of its own (spec.md §5/§6).
package cdl

import (
	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/options"
	"github.com/nordsoyv/cdl/pkg/parser"
	"github.com/nordsoyv/cdl/pkg/printer"
	"github.com/nordsoyv/cdl/pkg/selector"
)

// Compile lexes and parses source into an AST root. opts defaults to
// options.Default() when omitted; passing more than one Options value
// uses only the first.
func Compile(source string, opts ...options.Options) (*ast.Root, error) {
	o := options.Default()
	if len(opts) > 0 {
		o = opts[0]
	}
	return parser.Parse(source, o)
}

// Print renders root to canonical CDL text (spec.md §4.3).
func Print(root *ast.Root) string {
	return printer.Print(root)
}

// SelectEntity compiles selectorText and returns every matching Entity in
// pre-order DFS order (spec.md §4.5).
func SelectEntity(root *ast.Root, selectorText string) ([]*ast.Entity, error) {
	return selector.SelectEntity(root, selectorText)
}

// SelectField compiles selectorText and returns every matching Field in
// pre-order DFS order (spec.md §4.5).
func SelectField(root *ast.Root, selectorText string) ([]*ast.Field, error) {
	return selector.SelectField(root, selectorText)
}
