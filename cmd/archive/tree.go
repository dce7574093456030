package main

import (
	"fmt"
	"strconv"

	"github.com/wippyai/archive/container"
	"github.com/wippyai/archive/shape"
)

// node is one line of the value browser.
type node struct {
	err      error
	label    string
	summary  string
	children []*node
	expanded bool
}

// buildTree turns a dynamic value into browser nodes. Containers get one
// child per element; scalars are leaves.
func buildTree(s *shape.Shape, v any, label string) *node {
	n := &node{label: label}

	switch s.Kind {
	case shape.List:
		items, _ := v.([]any)
		n.summary = fmt.Sprintf("%s (%d)", s, len(items))
		for i, item := range items {
			n.children = append(n.children, buildTree(s.Elem, item, "["+strconv.Itoa(i)+"]"))
		}
	case shape.Linked:
		if l, ok := v.(*container.List[any]); ok && l != nil {
			n.summary = fmt.Sprintf("%s (%d)", s, l.Len())
			i := 0
			for item := range l.All() {
				n.children = append(n.children, buildTree(s.Elem, item, "#"+strconv.Itoa(i)))
				i++
			}
		}
	case shape.Set:
		if set, ok := v.(*container.Set[any]); ok && set != nil {
			n.summary = fmt.Sprintf("%s (%d)", s, set.Len())
			for item := range set.All() {
				n.children = append(n.children, buildTree(s.Elem, item, "-"))
			}
		}
	case shape.Map:
		if m, ok := v.(*container.Map[any, any]); ok && m != nil {
			n.summary = fmt.Sprintf("%s (%d)", s, m.Len())
			for k, val := range m.All() {
				n.children = append(n.children, buildTree(s.Value, val, shape.Format(s.Elem, k)))
			}
		}
	case shape.Tuple:
		if p, ok := v.(container.Pair[any, any]); ok {
			n.summary = s.String()
			n.children = []*node{
				buildTree(s.Elem, p.First, "first"),
				buildTree(s.Value, p.Second, "second"),
			}
		}
	}

	if n.summary == "" {
		n.summary = shape.Format(s, v)
	}
	return n
}

type row struct {
	node  *node
	depth int
}

// visible flattens the expanded part of the trees.
func visible(roots []*node) []row {
	var rows []row
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		rows = append(rows, row{node: n, depth: depth})
		if !n.expanded {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return rows
}
