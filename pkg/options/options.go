// Package options defines compiler configuration: how strictly the lexer
// and parser enforce the edge cases spec.md §9 leaves open to the
// implementer. This is ambient configuration, not a CDL language feature —
// the surface grammar (spec.md §6) is unaffected by these settings.
package options

import (
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Options governs lexer/parser strictness and resource-model guards.
type Options struct {
	// StrictLexing, when true, makes an unrecognized character a hard
	// LexError. When false, the lexer logs the character via slog and
	// skips it instead — the "source tolerates it" behavior spec.md
	// §4.1/§9 mention as an acceptable alternative.
	StrictLexing bool `yaml:"strict_lexing" json:"strict_lexing" jsonschema:"description=Treat unknown lexer characters as a hard error instead of logging and skipping,default=true"`

	// MaxExpressionDepth bounds how deeply the recursive-descent
	// expression parser (spec.md §4.2) will recurse through nested
	// Factor productions (parenthesized expressions, unary minus) before
	// failing closed with a SyntaxError. spec.md does not bound
	// expression nesting; this is a resource-model safeguard (spec.md
	// §5), not a grammar change.
	MaxExpressionDepth int `yaml:"max_expression_depth" json:"max_expression_depth" jsonschema:"description=Maximum nested Factor depth the expression parser will descend before failing,default=64,minimum=1"`
}

// Default returns the options CDL uses when none are supplied: strict
// lexing, a 64-level expression nesting guard.
func Default() Options {
	return Options{
		StrictLexing:       true,
		MaxExpressionDepth: 64,
	}
}

// LoadFile reads an Options value from a YAML file, grounded on
// perbu-vcltest/pkg/config.Load's pattern of reading a single YAML
// document and defaulting unset fields. This is the one place this module
// touches the filesystem, and it is an ambient configuration convenience
// for an embedding host, not part of the compile/print/select core which
// spec.md §1 keeps free of file I/O.
func LoadFile(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options file %s: %w", path, err)
	}

	return opts, nil
}

// Schema returns the JSON Schema for Options, generated via reflection
// over the jsonschema struct tags above, grounded on
// perbu-vcltest/pkg/testspec's jsonschema-tagged YAML structs. Useful for
// a host embedding this module to validate or document its own CDL
// compiler configuration file.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Options{})
}
