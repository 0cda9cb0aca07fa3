package selector

import (
	list "github.com/bahlo/generic-list-go"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/index"
)

// SelectEntity compiles selectorText and returns every matching Entity in
// pre-order DFS order (spec.md §4.5).
func SelectEntity(root *ast.Root, selectorText string) ([]*ast.Entity, error) {
	sel, err := Parse(selectorText)
	if err != nil {
		return nil, err
	}
	return run(root, sel.Head), nil
}

// SelectField compiles selectorText and returns every Field named by the
// final Step's Identifier component, inside every entity matched by the
// preceding steps (spec.md §4.5: "the final Step's identifier component
// names the field; other components of the final step are ignored for
// field matching"). When the selector has only one step, every entity in
// the document, at any depth, is the scope the field name is applied
// within.
func SelectField(root *ast.Root, selectorText string) ([]*ast.Field, error) {
	sel, err := Parse(selectorText)
	if err != nil {
		return nil, err
	}

	head, last := sel.Head, sel.Head
	for last.Next != nil {
		last = last.Next
	}

	var entities []*ast.Entity
	if head == last {
		entities = matchFirstStep(root, &Step{})
	} else {
		entities = run(root, truncate(head))
	}

	return fieldsNamed(entities, last.Identifier), nil
}

func fieldsNamed(entities []*ast.Entity, name *string) []*ast.Field {
	var out []*ast.Field
	for _, e := range entities {
		for _, f := range e.Body.Fields {
			if name == nil || f.Identifier == *name {
				out = append(out, f)
			}
		}
	}
	return out
}

// truncate copies every step up to, but not including, the last one,
// so the caller can apply the last step's Identifier as a field name
// instead of an entity-header match.
func truncate(head *Step) *Step {
	copyHead := &Step{MainType: head.MainType, SubType: head.SubType, Identifier: head.Identifier}
	cur := copyHead
	for step := head.Next; step.Next != nil; step = step.Next {
		cur.Next = &Step{MainType: step.MainType, SubType: step.SubType, Identifier: step.Identifier}
		cur = cur.Next
	}
	return copyHead
}

// run walks the chain starting at head, narrowing the match set one step
// at a time (spec.md §4.5).
func run(root *ast.Root, head *Step) []*ast.Entity {
	matches := matchFirstStep(root, head)
	for step := head.Next; step != nil; step = step.Next {
		matches = narrow(matches, step)
	}
	return matches
}

// matchFirstStep handles the first Step specially: it is matched against
// every entity in the tree (spec.md §4.5), which is also the one place a
// fully-concrete step can be served directly from the header index
// instead of a full pre-order scan (SPEC_FULL.md §4.6).
func matchFirstStep(root *ast.Root, step *Step) []*ast.Entity {
	if step.MainType != nil && step.SubType != nil && step.Identifier != nil {
		idx := index.Build(root)
		return idx.Lookup(*step.MainType, *step.SubType, *step.Identifier)
	}

	var out []*ast.Entity
	walkPreOrder(root, func(e *ast.Entity) {
		if headerMatches(e.Header, step) {
			out = append(out, e)
		}
	})
	return out
}

// narrow replaces the current match set with the ordered union of
// pre-order descendants of every current match whose header satisfies
// step (spec.md §4.5). A frontier keeps first-seen order because a
// descendant can be reachable through more than one current match
// (SPEC_FULL.md §4.7).
func narrow(matches []*ast.Entity, step *Step) []*ast.Entity {
	frontier := orderedmap.New[*ast.Entity, struct{}]()

	for _, m := range matches {
		walkDescendants(m, func(e *ast.Entity) {
			if headerMatches(e.Header, step) {
				if _, exists := frontier.Get(e); !exists {
					frontier.Set(e, struct{}{})
				}
			}
		})
	}

	out := make([]*ast.Entity, 0, frontier.Len())
	for pair := frontier.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func headerMatches(h ast.Header, step *Step) bool {
	if step.MainType != nil && h.MainType != *step.MainType {
		return false
	}
	if step.SubType != nil && (h.SubType == nil || *h.SubType != *step.SubType) {
		return false
	}
	if step.Identifier != nil && (h.Identifier == nil || *h.Identifier != *step.Identifier) {
		return false
	}
	return true
}

// walkPreOrder visits every entity in root in pre-order DFS, using an
// explicit stack (github.com/bahlo/generic-list-go) rather than recursion
// (SPEC_FULL.md §4.5), so a deeply nested document cannot exhaust the Go
// call stack.
func walkPreOrder(root *ast.Root, visit func(*ast.Entity)) {
	stack := list.New[*ast.Entity]()
	for i := len(root.Entities) - 1; i >= 0; i-- {
		stack.PushBack(root.Entities[i])
	}
	drainStack(stack, visit)
}

// walkDescendants visits e's children in pre-order DFS (not e itself —
// callers walk "descendants of the current matches", spec.md §4.5).
func walkDescendants(e *ast.Entity, visit func(*ast.Entity)) {
	stack := list.New[*ast.Entity]()
	for i := len(e.Body.Children) - 1; i >= 0; i-- {
		stack.PushBack(e.Body.Children[i])
	}
	drainStack(stack, visit)
}

func drainStack(stack *list.List[*ast.Entity], visit func(*ast.Entity)) {
	for stack.Len() > 0 {
		back := stack.Back()
		e := back.Value
		stack.Remove(back)

		visit(e)

		for i := len(e.Body.Children) - 1; i >= 0; i-- {
			stack.PushBack(e.Body.Children[i])
		}
	}
}
