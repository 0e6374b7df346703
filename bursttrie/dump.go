package bursttrie

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders the structure of the map for debugging purposes.
//
//	<root>
//	└── 'a' "b"
//	    └── [branch]
//	        ├── 'c' "" = 1
//	        └── 'd' "" = 2
func (m *Map[V]) Tree() string {
	label := "<root>"
	if m.root.hasVal {
		label += fmt.Sprintf(" = %v", m.root.val)
	}

	tree := treeprint.NewWithRoot(label)
	dumpBranch(tree, &m.root)

	return tree.String()
}

func dumpBranch[V any](tree treeprint.Tree, b *branch[V]) {
	b.children.each(func(c byte, child node[V]) bool {
		dumpNode(tree, fmt.Sprintf("%q ", c), child)
		return true
	})
}

func dumpNode[V any](tree treeprint.Tree, edge string, n node[V]) {
	switch n := n.(type) {
	case *branch[V]:
		label := edge + "[branch]"
		if n.hasVal {
			label += fmt.Sprintf(" = %v", n.val)
		}
		dumpBranch(tree.AddBranch(label), n)

	case *chain[V]:
		label := edge + fmt.Sprintf("%q", n.key)
		if n.hasVal {
			label += fmt.Sprintf(" = %v", n.val)
		}

		if n.child == nil {
			tree.AddNode(label)
			return
		}

		dumpNode(tree.AddBranch(label), "", n.child)
	}
}
