// Package tree rebuilds parent-pointer records into a forest and renders it
// as tree art.
package tree

import (
	"sort"
	"strings"
)

// RootID is the sentinel parent of every root in a Forest.
const RootID = ""

// Record is one flat input row. An empty ParentID marks a root.
type Record struct {
	ID       string
	Name     string
	ParentID string
}

type Node struct {
	ID       string
	Name     string
	Parent   string
	Children []string

	// placeholder is true until the node's own record has been seen.
	placeholder bool
}

// Placeholder reports whether the node was only ever referenced as a parent.
func (n *Node) Placeholder() bool {
	return n.placeholder
}

// Forest maps ids to nodes. The sentinel RootID node lists the roots.
type Forest struct {
	nodes map[string]*Node
}

// Build makes a single pass over records. Children keep the order of their
// records. A parent that has not been seen yet, or never is, gets an unnamed
// placeholder hanging off the sentinel until its own record arrives.
//
// Records with an empty ID are skipped. Parent chains that loop are kept but
// cannot be reached from the sentinel; see Detached.
func Build(records []Record) *Forest {
	f := &Forest{nodes: make(map[string]*Node, len(records)+1)}
	f.nodes[RootID] = &Node{ID: RootID}

	for _, r := range records {
		if r.ID == "" {
			continue
		}

		node, seen := f.nodes[r.ID]
		if !seen {
			node = &Node{ID: r.ID}
			f.nodes[r.ID] = node
		} else {
			f.detach(node)
		}
		node.Name = r.Name
		node.Parent = r.ParentID
		node.placeholder = false

		parent := f.ensure(r.ParentID)
		parent.Children = append(parent.Children, node.ID)
	}

	return f
}

// ensure returns the node for id, creating a placeholder root for it if
// needed.
func (f *Forest) ensure(id string) *Node {
	if n, ok := f.nodes[id]; ok {
		return n
	}

	n := &Node{ID: id, Parent: RootID, placeholder: true}
	f.nodes[id] = n

	root := f.nodes[RootID]
	root.Children = append(root.Children, id)

	return n
}

func (f *Forest) detach(n *Node) {
	parent, ok := f.nodes[n.Parent]
	if !ok {
		return
	}
	for i, id := range parent.Children {
		if id == n.ID {
			parent.Children = append(parent.Children[:i:i], parent.Children[i+1:]...)
			return
		}
	}
}

func (f *Forest) Node(id string) (*Node, bool) {
	n, ok := f.nodes[id]
	return n, ok
}

// Roots returns the children of the sentinel in order.
func (f *Forest) Roots() []*Node {
	root := f.nodes[RootID]
	out := make([]*Node, 0, len(root.Children))
	for _, id := range root.Children {
		out = append(out, f.nodes[id])
	}
	return out
}

// Len counts nodes, placeholders included, without the sentinel.
func (f *Forest) Len() int {
	return len(f.nodes) - 1
}

// Detached returns the sorted ids of nodes the sentinel cannot reach. Only
// parent cycles produce them.
func (f *Forest) Detached() []string {
	reached := make(map[string]bool, len(f.nodes))
	stack := []string{RootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[id] {
			continue
		}
		reached[id] = true
		stack = append(stack, f.nodes[id].Children...)
	}

	var out []string
	for id := range f.nodes {
		if !reached[id] {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// SortRecords orders records by name, ignoring case, so siblings come out
// alphabetical. Ties keep their input order.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
	})
}
