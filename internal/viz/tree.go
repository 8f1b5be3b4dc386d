package viz

import (
	"fmt"

	"github.com/san-kum/dynarray/internal/script"
	asciitree "github.com/thediveo/go-asciitree"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// Tree renders the layout of a snapshot: occupied slots with their
// elements, then the spare tail.
func Tree(snap script.Snapshot, element string) string {
	root := treeNode{
		Label: fmt.Sprintf("list[%s]", element),
		Props: []string{
			fmt.Sprintf("count: %d", snap.Count),
			fmt.Sprintf("cap: %d", snap.Cap),
		},
	}

	occupied := treeNode{Label: "occupied"}
	for i, item := range snap.Items {
		occupied.Children = append(occupied.Children, treeNode{Label: fmt.Sprintf("%d: %s", i, item)})
	}
	if len(occupied.Children) == 0 {
		occupied.Props = []string{"empty"}
	}
	root.Children = append(root.Children, occupied)

	if spare := snap.Cap - snap.Count; spare > 0 {
		root.Children = append(root.Children, treeNode{
			Label: "spare",
			Props: []string{fmt.Sprintf("slots: %d..%d", snap.Count, snap.Cap-1)},
		})
	}

	return asciitree.RenderFancy(root)
}
