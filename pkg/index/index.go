// Package index builds a read-side lookup structure over a compiled
// *ast.Root, accelerating the selector engine's first step when it is
// fully concrete (SPEC_FULL.md §4.6). It never changes selector
// semantics or result ordering — it is pure caching over an already
// immutable AST, not incremental recompilation.
package index

import (
	"strings"

	"github.com/dghubble/trie"

	"github.com/nordsoyv/cdl/pkg/ast"
)

// wildcard fills an absent header segment in an index key, so that e.g.
// an entity with no sub_type indexes under "widget.*.myid" rather than
// colliding with "widget..myid".
const wildcard = "*"

// Index maps a dotted "main_type.sub_type.identifier" path to the
// ordered set of entities whose header matches that exact path.
type Index struct {
	trie *trie.RuneTrie
}

// Build walks every entity in root once (depth-first, pre-order) and
// inserts it under its header's dotted path key.
func Build(root *ast.Root) *Index {
	idx := &Index{trie: trie.NewRuneTrie()}
	for _, e := range root.Entities {
		idx.insertTree(e)
	}
	return idx
}

func (idx *Index) insertTree(e *ast.Entity) {
	key := keyFor(e.Header.MainType, strOr(e.Header.SubType), strOr(e.Header.Identifier))
	idx.append(key, e)
	for _, child := range e.Body.Children {
		idx.insertTree(child)
	}
}

func (idx *Index) append(key string, e *ast.Entity) {
	existing, _ := idx.trie.Get(key).([]*ast.Entity)
	idx.trie.Put(key, append(existing, e))
}

func strOr(s *string) string {
	if s == nil {
		return wildcard
	}
	return *s
}

func keyFor(mainType, subType, identifier string) string {
	return strings.Join([]string{mainType, subType, identifier}, ".")
}

// Lookup returns every entity indexed under the exact (mainType, subType,
// identifier) triple, in document pre-order. Only exact triples are
// indexed — a selector step with any wildcard component must fall back
// to the plain tree walk (SPEC_FULL.md §4.6).
func (idx *Index) Lookup(mainType, subType, identifier string) []*ast.Entity {
	v, _ := idx.trie.Get(keyFor(mainType, subType, identifier)).([]*ast.Entity)
	return v
}
