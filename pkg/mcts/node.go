package mcts

// NoParent marks a node without a parent, only the root has it.
const NoParent = -1

// Node is a single position in the explored game tree, plus the statistics
// accumulated for the sub-tree rooted at it.
//
// All node relations are plain indices into the owning tree's arena, there
// are no pointers between nodes. A node's parent index is assigned once, at
// the node's creation, and always refers to an already existing node, so the
// link structure cannot form cycles.
type Node[T ActionLike, S any] struct {
	// Game state associated with this node, owned exclusively by it.
	State S

	// Arena index of the parent node, NoParent for the root. Non-owning,
	// used purely for upward traversal.
	Parent int

	// Arena indices of children that have been materialized as nodes,
	// in expansion order.
	Expanded []int

	// Legal actions from this position that have not produced a child node
	// yet. Filled with the full legal-action list at node creation; an
	// action leaves this list exactly once, when expansion picks it.
	Unexpanded []T

	// Rollout counters for the sub-tree rooted at this node. Sims is the
	// number of rollouts whose backpropagation path passed through the
	// node; Wins+Draws <= Sims, the remainder are implicit losses.
	Wins  uint32
	Draws uint32
	Sims  uint32
}

// Terminal reports whether the node has neither expanded children nor
// unexpanded actions left, meaning the position itself is terminal.
func (node *Node[T, S]) Terminal() bool {
	return len(node.Expanded) == 0 && len(node.Unexpanded) == 0
}

// Root reports whether this node is the root of its tree.
func (node *Node[T, S]) Root() bool {
	return node.Parent == NoParent
}
