package tree

import (
	"fmt"
	"io"
)

const (
	branch   = "├───"
	terminal = "└───"
	descend  = "┬"
	closed   = "─"
	pipe     = "│   "
	blank    = "    "
)

type Options struct {
	// MaxDepth omits nodes deeper than this, counting roots as depth 1.
	// Zero means no limit.
	MaxDepth int
	// Label returns the text printed for a node. Nil prints the name.
	Label func(*Node) string
}

func (o Options) label(n *Node) string {
	if o.Label == nil {
		return n.Name
	}
	return o.Label(n)
}

// descends reports whether nodes at depth get children printed below them.
func (o Options) descends(depth int) bool {
	return o.MaxDepth <= 0 || depth < o.MaxDepth
}

// Line is one rendered node.
type Line struct {
	Node  *Node
	Depth int
	Last  bool
	Text  string
}

// Walk renders the forest depth first, parents before their children, and
// calls fn once per line. It stops early when fn returns false.
func Walk(f *Forest, opts Options, fn func(Line) bool) {
	if f == nil {
		return
	}
	walk(f, f.nodes[RootID], 1, "", opts, fn)
}

func walk(f *Forest, parent *Node, depth int, indent string, opts Options, fn func(Line) bool) bool {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return true
	}

	for i, id := range parent.Children {
		node := f.nodes[id]
		last := i == len(parent.Children)-1

		line := Line{Node: node, Depth: depth, Last: last}
		if depth == 1 {
			line.Text = opts.label(node)
		} else {
			connector := branch
			if last {
				connector = terminal
			}
			junction := closed
			if opts.descends(depth) {
				junction = descend
			}
			line.Text = indent + connector + junction + " " + opts.label(node)
		}

		if !fn(line) {
			return false
		}

		next := indent
		if depth > 1 {
			if last {
				next += blank
			} else {
				next += pipe
			}
		}
		if !walk(f, node, depth+1, next, opts, fn) {
			return false
		}
	}

	return true
}

// Lines collects the rendered text of every line.
func Lines(f *Forest, opts Options) []string {
	var out []string
	Walk(f, opts, func(l Line) bool {
		out = append(out, l.Text)
		return true
	})
	return out
}

// Render writes one line per node to w.
func Render(w io.Writer, f *Forest, opts Options) error {
	var err error
	Walk(f, opts, func(l Line) bool {
		_, err = fmt.Fprintln(w, l.Text)
		return err == nil
	})
	return err
}

// CountLabel returns a Label that appends " (n)" using counts keyed by node
// id. Ids missing from counts show zero.
func CountLabel(counts map[string]int) func(*Node) string {
	return func(n *Node) string {
		return fmt.Sprintf("%s (%d)", n.Name, counts[n.ID])
	}
}
