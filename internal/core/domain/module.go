package domain

import "strings"

// ModuleNameSeparator joins category path segments into a module name.
const ModuleNameSeparator = "__"

// ModuleNode is a node of the module tree: either a Category or a Generator.
// The interface is sealed; no other types implement it.
type ModuleNode interface {
	moduleNode()
}

// Category groups named child nodes.
type Category map[string]ModuleNode

// Generator produces one Problem per call. It is opaque to the core
// and may fail; a failure is counted as a drop.
type Generator func() (Problem, error)

func (Category) moduleNode()  {}
func (Generator) moduleNode() {}

// ModuleTree is the root category supplied by a module library.
type ModuleTree = Category

// LeafCount returns the number of non-nil generators below c.
func (c Category) LeafCount() int {
	n := 0
	for _, child := range c {
		switch node := child.(type) {
		case Generator:
			if node != nil {
				n++
			}
		case Category:
			n += node.LeafCount()
		}
	}
	return n
}

// ModuleEntry is a generator with its fully-qualified name,
// e.g. "algebra__linear_1d".
type ModuleEntry struct {
	Name     string
	Generate Generator
}

// ModuleCategory returns the first path segment of a module name.
func ModuleCategory(name string) string {
	category, _, _ := strings.Cut(name, ModuleNameSeparator)
	return category
}
