package ranking

// noParent marks a seed step.
const noParent = -1

// step is one arena entry: a node and the step it was reached from.
// Paths are parent chains through the arena instead of copied slices.
type step struct {
	node   string
	parent int
}

type pathArena struct {
	steps []step
}

func (a *pathArena) add(node string, parent int) int {
	a.steps = append(a.steps, step{node: node, parent: parent})
	return len(a.steps) - 1
}

func (a *pathArena) node(i int) string {
	return a.steps[i].node
}

// inSuffix reports whether node is among the last window nodes of the path
// ending at step i (the step's own node included).
func (a *pathArena) inSuffix(i int, node string, window int) bool {
	for n := 0; n < window && i != noParent; n++ {
		if a.steps[i].node == node {
			return true
		}
		i = a.steps[i].parent
	}
	return false
}

// path reconstructs the full path ending at step i, source first.
func (a *pathArena) path(i int) []string {
	var rev []string
	for ; i != noParent; i = a.steps[i].parent {
		rev = append(rev, a.steps[i].node)
	}
	out := make([]string, len(rev))
	for j, node := range rev {
		out[len(rev)-1-j] = node
	}
	return out
}
