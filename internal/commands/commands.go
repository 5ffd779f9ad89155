// ABOUTME: Command registry and line parser shared by the TUI input line and script runs
// ABOUTME: Resolves verbs and per-structure aliases (push, pop, enqueue, insert...) into actions

package commands

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
)

// Arg describes what a command expects after its name.
type Arg int

const (
	ArgNone Arg = iota
	ArgValue
	// ArgOptionalValue is for remove: sequences take none, search trees take one.
	ArgOptionalValue
	ArgOrder
)

// Control is a timeline command that does not change the structure.
type Control int

const (
	ControlNone Control = iota
	ControlBack
	ControlForward
	ControlPlay
	ControlPause
	ControlHelp
)

// Command is one entry of the registry.
type Command struct {
	Name        string
	Description string
	Usage       string
	Verb        viz.Verb
	Control     Control
	Arg         Arg
	// Kinds restricts an alias to the structures it reads naturally for.
	// Nil means every structure.
	Kinds []viz.Kind
}

// Available reports whether c can be used with a controller of kind
// offering verbs.
func (c *Command) Available(kind viz.Kind, verbs []viz.Verb) bool {
	if c.Kinds != nil && !slices.Contains(c.Kinds, kind) {
		return false
	}
	return c.Control != ControlNone || slices.Contains(verbs, c.Verb)
}

// Parsed is the outcome of parsing one input line.
type Parsed struct {
	Command *Command
	Action  viz.Action
}

// Registry holds all commands by name.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with every built-in command.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands()
	return r
}

// Get returns a command by name.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// For returns the commands usable with a controller, sorted by name.
func (r *Registry) For(kind viz.Kind, verbs []viz.Verb) []*Command {
	var out []*Command
	for _, cmd := range r.List() {
		if cmd.Available(kind, verbs) {
			out = append(out, cmd)
		}
	}
	return out
}

// Help formats the command list for a controller.
func (r *Registry) Help(kind viz.Kind, verbs []viz.Verb) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range r.For(kind, verbs) {
		fmt.Fprintf(&b, "  %-18s %s\n", cmd.Usage, cmd.Description)
	}
	b.WriteString("  <number>           shorthand for add\n")
	return b.String()
}

// Parse turns an input line into a command and action for kind. A bare
// number means add; a leading '/' is tolerated.
func (r *Registry) Parse(kind viz.Kind, verbs []viz.Verb, input string) (Parsed, error) {
	input = strings.TrimPrefix(strings.TrimSpace(input), "/")
	if input == "" {
		return Parsed{}, errors.WithHint(
			errors.Wrap(ds.ErrInvalidInput, "empty command"),
			"type help for the command list",
		)
	}

	name, rest, _ := strings.Cut(input, " ")
	name = strings.ToLower(name)
	rest = strings.TrimSpace(rest)

	if _, err := ds.ParseValue(name); err == nil && rest == "" {
		rest, name = name, string(viz.VerbAdd)
	}

	cmd, ok := r.commands[name]
	if !ok || !cmd.Available(kind, verbs) {
		return Parsed{}, errors.WithHint(
			errors.Wrapf(ds.ErrInvalidInput, "unknown command %q", name),
			"type help for the command list",
		)
	}

	p := Parsed{Command: cmd, Action: viz.Action{Verb: cmd.Verb}}
	switch cmd.Arg {
	case ArgNone:
		if rest != "" {
			return Parsed{}, errors.Wrapf(ds.ErrInvalidInput, "%s takes no argument", cmd.Name)
		}
	case ArgValue, ArgOptionalValue:
		if rest == "" {
			if cmd.Arg == ArgValue {
				return Parsed{}, errors.WithHint(
					errors.Wrapf(ds.ErrInvalidInput, "%s: missing value", cmd.Name),
					"usage: "+cmd.Usage,
				)
			}
			break
		}
		v, err := ds.ParseValue(rest)
		if err != nil {
			return Parsed{}, errors.Wrapf(err, "%s", cmd.Name)
		}
		p.Action.Value, p.Action.HasValue = v, true
	case ArgOrder:
		if rest == "" {
			p.Action.Order = tree.Inorder
			break
		}
		o, err := tree.ParseOrder(rest)
		if err != nil {
			return Parsed{}, errors.Wrapf(err, "%s", cmd.Name)
		}
		p.Action.Order = o
	}
	return p, nil
}

// ReadScript splits a script into command lines. Statements are separated
// by newlines or ';'; '#' starts a comment.
func ReadScript(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		for stmt := range strings.SplitSeq(line, ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				lines = append(lines, stmt)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

var (
	sequences = []viz.Kind{viz.KindArray, viz.KindLinkedList, viz.KindStack, viz.KindQueue}
	trees     = []viz.Kind{viz.KindBinaryTree, viz.KindBST}
)

// registerCoreCommands adds the built-in verbs, aliases and controls.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{Name: "add", Verb: viz.VerbAdd, Arg: ArgValue, Usage: "add <n>", Description: "Add a value"},
		{Name: "remove", Verb: viz.VerbRemove, Arg: ArgOptionalValue, Usage: "remove [n]", Description: "Remove an element (trees: the given value)"},
		{Name: "clear", Verb: viz.VerbClear, Arg: ArgNone, Usage: "clear", Description: "Remove every element"},
		{Name: "search", Verb: viz.VerbSearch, Arg: ArgValue, Usage: "search <n>", Description: "Animate a search for a value"},
		{Name: "find", Verb: viz.VerbSearch, Arg: ArgValue, Usage: "find <n>", Description: "Alias for search"},
		{Name: "traverse", Verb: viz.VerbTraverse, Arg: ArgOrder, Usage: "traverse [order]", Description: "Animate an inorder, preorder, postorder or level-order walk"},

		{Name: "push", Verb: viz.VerbAdd, Arg: ArgValue, Usage: "push <n>", Description: "Push onto the stack", Kinds: []viz.Kind{viz.KindStack}},
		{Name: "pop", Verb: viz.VerbRemove, Arg: ArgNone, Usage: "pop", Description: "Pop the top of the stack", Kinds: []viz.Kind{viz.KindStack}},
		{Name: "enqueue", Verb: viz.VerbAdd, Arg: ArgValue, Usage: "enqueue <n>", Description: "Enqueue at the rear", Kinds: []viz.Kind{viz.KindQueue}},
		{Name: "dequeue", Verb: viz.VerbRemove, Arg: ArgNone, Usage: "dequeue", Description: "Dequeue from the front", Kinds: []viz.Kind{viz.KindQueue}},
		{Name: "append", Verb: viz.VerbAdd, Arg: ArgValue, Usage: "append <n>", Description: "Append at the end", Kinds: sequences},
		{Name: "insert", Verb: viz.VerbAdd, Arg: ArgValue, Usage: "insert <n>", Description: "Insert a node", Kinds: trees},
		{Name: "delete", Verb: viz.VerbRemove, Arg: ArgValue, Usage: "delete <n>", Description: "Delete a node", Kinds: []viz.Kind{viz.KindBST}},

		{Name: "back", Control: ControlBack, Usage: "back", Description: "Step back in history"},
		{Name: "undo", Control: ControlBack, Usage: "undo", Description: "Alias for back"},
		{Name: "forward", Control: ControlForward, Usage: "forward", Description: "Step forward in history"},
		{Name: "redo", Control: ControlForward, Usage: "redo", Description: "Alias for forward"},
		{Name: "play", Control: ControlPlay, Usage: "play", Description: "Replay history from the cursor"},
		{Name: "pause", Control: ControlPause, Usage: "pause", Description: "Stop replay"},
		{Name: "help", Control: ControlHelp, Usage: "help", Description: "Show available commands"},
	}
	for _, cmd := range core {
		r.commands[cmd.Name] = cmd
	}
}
