// ABOUTME: Visualizer controllers: structure state, history, playback and highlight animations
// ABOUTME: One isolated controller per structure kind; user errors surface as notices

package viz

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/eventbus"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/ds/seq"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
	"github.com/mauromedda/dsviz/pkg/history"
)

// Kind identifies a visualizer.
type Kind string

const (
	KindArray      Kind = "array"
	KindLinkedList Kind = "linked-list"
	KindStack      Kind = "stack"
	KindQueue      Kind = "queue"
	KindBinaryTree Kind = "binary-tree"
	KindBST        Kind = "bst"
)

// Kinds lists every implemented visualizer in menu order.
var Kinds = []Kind{KindArray, KindLinkedList, KindStack, KindQueue, KindBinaryTree, KindBST}

// ParseKind resolves a kind from its identifier or a common alias.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "array", "arr":
		return KindArray, nil
	case "linked-list", "list", "linkedlist", "ll":
		return KindLinkedList, nil
	case "stack":
		return KindStack, nil
	case "queue":
		return KindQueue, nil
	case "binary-tree", "tree", "binarytree", "bt":
		return KindBinaryTree, nil
	case "bst", "binary-search-tree":
		return KindBST, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ds.ErrInvalidInput, "unknown structure %q", s),
		"valid structures: array, linked-list, stack, queue, binary-tree, bst",
	)
}

// Level classifies a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient, human-readable outcome of a user action.
type Notice struct {
	Kind  Kind
	Level Level
	Text  string
	// Code is the error taxonomy identifier for error notices.
	Code string
}

// Frame is one step of a highlight animation. For sequences Mark is an
// index; for trees it is a node slot (see tree.Visit).
type Frame struct {
	Mark    int
	Lit     bool
	Caption string
	// Notice, when set, is published as the frame is shown.
	Notice *Notice
}

// Result describes what an action did.
type Result struct {
	Notice Notice
	// Err is the underlying taxonomy error for failed actions.
	Err error
	// Animation is the token for frames started by the action, if any.
	Animation history.Token
	Animated  bool
	Delay     time.Duration
}

// Position describes the history cursor for the presentation layer.
type Position struct {
	Cursor      int
	Len         int
	CanForward  bool
	CanBackward bool
}

// Snapshot is everything a renderer needs to draw the current state.
type Snapshot struct {
	Kind      Kind
	Values    []int
	Max       int
	Root      *tree.Node
	Highlight int // sequence index, -1 when nothing is lit
	Caption   string
	Order     tree.Order
	Traversal []int
	Animating bool
}

// Step is one history entry rendered for listings.
type Step struct {
	Index   int
	Caption string
	State   string
}

// Controller is the interface the presentation layer drives.
type Controller interface {
	Kind() Kind
	Title() string
	Verbs() []Verb

	Do(a Action) Result

	StepForward() bool
	StepBackward() bool
	CanStepForward() bool
	CanStepBackward() bool
	Position() Position
	Timeline() []Step
	Snapshot() Snapshot

	Play() (history.Token, bool)
	Pause()
	Tick(t history.Token) bool
	Playing() bool
	Interval() time.Duration

	NextFrame(t history.Token) (Frame, bool)
	Animating() bool
	FrameDelay() time.Duration
}

// Limits are per-structure capacities.
type Limits struct {
	Array int
	List  int
	Stack int
	Queue int
	Tree  int
}

// Delays are the animation timings.
type Delays struct {
	Playback   time.Duration
	Search     time.Duration
	TreeSearch time.Duration
	Traversal  time.Duration
}

// Seeds are the initial contents of each structure.
type Seeds struct {
	Array []int
	List  []int
	Stack []int
	Queue []int
	Tree  []int
}

// Options configures controllers.
type Options struct {
	Limits       Limits
	Delays       Delays
	Seeds        Seeds
	HistoryLimit int
	// Bus receives every notice. A private bus is created when nil.
	Bus *eventbus.Bus[Notice]
}

// DefaultOptions returns the stock capacities, delays and seeds.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{
			Array: seq.ArrayMax,
			List:  seq.ListMax,
			Stack: seq.StackMax,
			Queue: seq.QueueMax,
			Tree:  tree.MaxNodes,
		},
		Delays: Delays{
			Playback:   history.DefaultInterval,
			Search:     800 * time.Millisecond,
			TreeSearch: time.Second,
			Traversal:  time.Second,
		},
		Seeds: Seeds{
			Array: []int{5, 10, 15, 20, 25},
			List:  []int{10, 20, 30},
			Tree:  tree.DefaultSeed,
		},
	}
}

// New creates the controller for kind.
func New(kind Kind, opts Options) (Controller, error) {
	if opts.Bus == nil {
		opts.Bus = eventbus.New[Notice](32)
	}
	switch kind {
	case KindArray, KindLinkedList, KindStack, KindQueue:
		return newLinear(kind, opts), nil
	case KindBinaryTree, KindBST:
		return newTree(kind, opts), nil
	}
	return nil, errors.Wrapf(ds.ErrInvalidInput, "unknown structure %q", kind)
}
