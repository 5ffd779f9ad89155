// ABOUTME: Actions a user can apply to a visualizer
// ABOUTME: Verbs are structure-neutral; per-structure wording lives in the controllers

package viz

import "github.com/mauromedda/dsviz/pkg/ds/tree"

// Verb names an operation.
type Verb string

const (
	VerbAdd      Verb = "add"
	VerbRemove   Verb = "remove"
	VerbClear    Verb = "clear"
	VerbSearch   Verb = "search"
	VerbTraverse Verb = "traverse"
)

// Action is a verb with its optional operand.
type Action struct {
	Verb     Verb
	Value    int
	HasValue bool
	Order    tree.Order
}

// Add returns an add action for v.
func Add(v int) Action { return Action{Verb: VerbAdd, Value: v, HasValue: true} }

// Remove returns a remove action without an operand (sequences).
func Remove() Action { return Action{Verb: VerbRemove} }

// RemoveValue returns a remove action for v (search trees).
func RemoveValue(v int) Action { return Action{Verb: VerbRemove, Value: v, HasValue: true} }

// Clear returns a clear action.
func Clear() Action { return Action{Verb: VerbClear} }

// Search returns a search action for v.
func Search(v int) Action { return Action{Verb: VerbSearch, Value: v, HasValue: true} }

// Traverse returns a traversal action.
func Traverse(o tree.Order) Action { return Action{Verb: VerbTraverse, Order: o} }
