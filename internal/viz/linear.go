// ABOUTME: Controller for the sequence-shaped structures: array, linked list, stack, queue
// ABOUTME: Validate-then-apply; each kind words its notices the way its view labels things

package viz

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/ds/seq"
)

// wording holds the per-kind notice texts.
type wording struct {
	title      string
	verbs      []Verb
	added      func(v int) string
	full       func(limit int) string
	removed    func(v int) string
	empty      string
	cleared    string
	alreadyNil string
	found      func(v, i int) string
	notFound   func(v int) string
	probe      func(i int) string
}

var wordings = map[Kind]wording{
	KindArray: {
		title:    "Array",
		verbs:    []Verb{VerbAdd, VerbRemove, VerbClear, VerbSearch},
		added:    func(v int) string { return fmt.Sprintf("Added %d to the array", v) },
		full:     func(n int) string { return fmt.Sprintf("Maximum array size reached (%d elements)", n) },
		removed:  func(int) string { return "Removed last element from the array" },
		empty:    "Array is empty",
		cleared:  "Array cleared",
		found:    func(v, i int) string { return fmt.Sprintf("Found %d at index %d", v, i) },
		notFound: func(v int) string { return fmt.Sprintf("Value %d not found in array", v) },
		probe:    func(i int) string { return fmt.Sprintf("Searching at index: %d", i) },
	},
	KindLinkedList: {
		title:    "Linked List",
		verbs:    []Verb{VerbAdd, VerbRemove, VerbClear, VerbSearch},
		added:    func(v int) string { return fmt.Sprintf("Added node with value %d", v) },
		full:     func(n int) string { return fmt.Sprintf("Maximum list size reached (%d nodes)", n) },
		removed:  func(int) string { return "Removed last node" },
		empty:    "List is empty",
		cleared:  "List cleared",
		found:    func(v, i int) string { return fmt.Sprintf("Found value %d at position %d", v, i) },
		notFound: func(v int) string { return fmt.Sprintf("Value %d not found in list", v) },
		probe:    func(i int) string { return fmt.Sprintf("Visiting node at position %d", i) },
	},
	KindStack: {
		title:      "Stack",
		verbs:      []Verb{VerbAdd, VerbRemove, VerbClear},
		added:      func(v int) string { return fmt.Sprintf("Pushed %d onto the stack", v) },
		full:       func(int) string { return "Stack overflow! Cannot push more items." },
		removed:    func(v int) string { return fmt.Sprintf("Popped %d from the stack", v) },
		empty:      "Stack underflow! Cannot pop from an empty stack.",
		cleared:    "Stack cleared!",
		alreadyNil: "Stack is already empty!",
	},
	KindQueue: {
		title:   "Queue",
		verbs:   []Verb{VerbAdd, VerbRemove, VerbClear},
		added:   func(v int) string { return fmt.Sprintf("Item enqueued: %d has been added to the queue", v) },
		full:    func(int) string { return "Queue is full: Cannot enqueue more items" },
		removed: func(v int) string { return fmt.Sprintf("Item dequeued: %d has been removed from the queue", v) },
		empty:   "Queue is empty: Cannot dequeue from an empty queue",
		cleared: "Queue cleared: All items have been removed",
	},
}

type linear struct {
	machine[seq.Seq]
	words  wording
	delays Delays
}

func newLinear(kind Kind, opts Options) *linear {
	var limit int
	var seed []int
	switch kind {
	case KindArray:
		limit, seed = opts.Limits.Array, opts.Seeds.Array
	case KindLinkedList:
		limit, seed = opts.Limits.List, opts.Seeds.List
	case KindStack:
		limit, seed = opts.Limits.Stack, opts.Seeds.Stack
	default:
		limit, seed = opts.Limits.Queue, opts.Seeds.Queue
	}
	return &linear{
		machine: newMachine(kind, seq.New(limit, seed...), seq.Seq.Clone, formatSeq, opts),
		words:   wordings[kind],
		delays:  opts.Delays,
	}
}

func formatSeq(s seq.Seq) string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (c *linear) Title() string { return c.words.title }
func (c *linear) Verbs() []Verb { return c.words.verbs }

func (c *linear) Do(a Action) Result {
	switch a.Verb {
	case VerbAdd:
		return c.add(a)
	case VerbRemove:
		return c.remove()
	case VerbClear:
		return c.clear()
	case VerbSearch:
		if c.words.found == nil {
			return c.invalid(fmt.Sprintf("%s does not support search", c.words.title))
		}
		return c.find(a)
	}
	return c.invalid(fmt.Sprintf("%s does not support %s", c.words.title, a.Verb))
}

func (c *linear) add(a Action) Result {
	if !a.HasValue {
		return c.invalid("Please enter a value")
	}
	cur := c.current()
	next, err := seq.Append(cur, a.Value)
	if err != nil {
		return c.fail(err, c.words.full(cur.Max))
	}
	text := c.words.added(a.Value)
	c.record(next, text)
	return c.ok(text)
}

func (c *linear) remove() Result {
	cur := c.current()
	var (
		next    seq.Seq
		removed int
		err     error
	)
	if c.kind == KindQueue {
		next, removed, err = seq.Dequeue(cur)
	} else {
		next, removed, err = seq.RemoveLast(cur)
	}
	if err != nil {
		return c.fail(err, c.words.empty)
	}
	text := c.words.removed(removed)
	c.record(next, text)
	if c.kind == KindStack {
		return c.info(text)
	}
	return c.ok(text)
}

func (c *linear) clear() Result {
	cur := c.current()
	if cur.Empty() && c.words.alreadyNil != "" {
		return c.info(c.words.alreadyNil)
	}
	c.record(seq.Clear(cur), c.words.cleared)
	return c.ok(c.words.cleared)
}

func (c *linear) find(a Action) Result {
	if !a.HasValue {
		return c.invalid("Please enter a value to search")
	}
	cur := c.current()
	idx, probes, err := seq.Find(cur, a.Value)
	if errors.Is(err, ds.ErrEmpty) {
		return c.fail(err, c.words.empty)
	}

	frames := make([]Frame, 0, len(probes)+1)
	for _, p := range probes {
		frames = append(frames, Frame{Mark: p.Index, Lit: true, Caption: c.words.probe(p.Index)})
	}
	final := Notice{Kind: c.kind, Level: LevelSuccess, Text: c.words.found(a.Value, idx)}
	if err != nil {
		final = Notice{Kind: c.kind, Level: LevelError, Text: c.words.notFound(a.Value), Code: ds.Code(err)}
	}
	frames = append(frames, Frame{Notice: &final})

	res := c.animate(Notice{Level: LevelInfo, Text: fmt.Sprintf("Searching for %d", a.Value)}, frames, c.delays.Search)
	res.Err = err
	return res
}

func (c *linear) Snapshot() Snapshot {
	cur := c.current()
	hl := -1
	if i, ok := c.lit(); ok {
		hl = i
	}
	return Snapshot{
		Kind:      c.kind,
		Values:    cur.Values,
		Max:       cur.Max,
		Highlight: hl,
		Caption:   c.frameCaption(),
		Animating: c.Animating(),
	}
}
