package studipsync

// DownloadNode places a DownloadEntry in the folder hierarchy implied by the
// entries' levels.
type DownloadNode struct {
	Entry    DownloadEntry
	Parent   *DownloadNode
	Children []*DownloadNode
}

// Path joins the file names from the root down to n with "/".
func (n *DownloadNode) Path() string {
	if n.Parent == nil {
		return n.Entry.FileName()
	}
	return n.Parent.Path() + "/" + n.Entry.FileName()
}

// BuildDownloadTree links entries to their parents and returns one node per
// entry in the original order. An entry at level L > 0 becomes a child of
// the closest preceding entry at level L-1. Entries at level 0 or below, and
// entries with no such predecessor, are roots.
func BuildDownloadTree(entries []DownloadEntry) []*DownloadNode {
	nodes := make([]*DownloadNode, 0, len(entries))

	// open[l] is the most recent node at level l still accepting children.
	var open []*DownloadNode

	for _, e := range entries {
		n := &DownloadNode{Entry: e}
		nodes = append(nodes, n)

		if e.Level < 0 {
			open = open[:0]
			continue
		}

		if e.Level > 0 && e.Level-1 < len(open) && open[e.Level-1] != nil {
			n.Parent = open[e.Level-1]
			n.Parent.Children = append(n.Parent.Children, n)
		}

		// Deeper levels belong to the previous sibling subtree.
		if e.Level < len(open) {
			open = open[:e.Level]
		}
		for len(open) < e.Level {
			open = append(open, nil)
		}
		open = append(open, n)
	}

	return nodes
}
