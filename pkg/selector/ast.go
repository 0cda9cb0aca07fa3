// Package selector implements the CDL selector mini-language (spec.md
// §4.4/§4.5): a lexer and parser compiling a selector string into a
// linked chain of Steps, and an engine walking a compiled *ast.Root
// guided by that chain.
package selector

// Step is one link in a compiled selector chain (spec.md §3: "a linked
// chain of step selectors"). Each field is a wildcard when nil.
type Step struct {
	MainType   *string
	SubType    *string
	Identifier *string
	Next       *Step
}

// Selector is the head of a compiled Step chain.
type Selector struct {
	Head *Step
}
