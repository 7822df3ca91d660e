package mcts

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"golang.org/x/exp/rand"
)

// Tree holds the node memory arena for the search tree and the associated
// search state. The arena is append-only: node identity is its index in the
// arena, and once assigned an index is never reused or invalidated for the
// life of the tree.
//
// A Tree is single-threaded. Callers must serialize the
// select -> expand -> simulate -> backpropagate cycle per tree; only the
// Stop flag may be touched from another goroutine.
type Tree[T ActionLike, S GameState[T, S]] struct {
	// Memory arena for the nodes, index 0 is always the root.
	Arena []Node[T, S]

	// Number of children expected for nodes in the tree. Used to size child
	// slices up front and avoid re-allocation, at the expense of some extra
	// memory. Does not affect correctness.
	averageChildCount int

	// Random generator state, local to this tree. Every call that consumes
	// randomness (expansion, rollout) advances it.
	rng *rand.Rand

	listener StatsListener
	stop     atomic.Bool
}

type config struct {
	arenaCapacity     int
	averageChildCount int
	seed              uint64
}

// Option configures tree construction.
type Option func(*config)

// WithArenaCapacity reserves space for the given number of nodes up front.
// Larger values trade memory for fewer re-allocations during the search.
func WithArenaCapacity(capacity int) Option {
	return func(cfg *config) {
		cfg.arenaCapacity = max(1, capacity)
	}
}

// WithSeed sets the starting state of the tree's random generator.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithAverageChildCount sets the pre-allocation hint for child lists.
func WithAverageChildCount(count int) Option {
	return func(cfg *config) {
		cfg.averageChildCount = max(1, count)
	}
}

// NewTree parses 'startingPos' into a root game state and builds a tree
// around it. The root is pushed as index 0 with zero statistics, no parent
// and the full legal-action list as its unexpanded actions.
//
// Without WithSeed the random generator starts from DefaultSeed, which makes
// searches reproducible run to run.
func NewTree[T ActionLike, S GameState[T, S]](startingPos string, options ...Option) (*Tree[T, S], error) {
	var zero S
	root, err := zero.Parse(startingPos)
	if err != nil {
		return nil, fmt.Errorf("mcts: parse starting position: %w", err)
	}
	return NewTreeFromState[T](root, options...), nil
}

// NewTreeFromState builds a tree around an already constructed game state.
func NewTreeFromState[T ActionLike, S GameState[T, S]](root S, options ...Option) *Tree[T, S] {
	cfg := config{
		arenaCapacity:     DefaultArenaCapacity,
		averageChildCount: DefaultAverageChildCount,
		seed:              DefaultSeed,
	}
	for _, option := range options {
		option(&cfg)
	}

	tree := &Tree[T, S]{
		Arena:             make([]Node[T, S], 0, cfg.arenaCapacity),
		averageChildCount: cfg.averageChildCount,
		rng:               rand.New(rand.NewSource(cfg.seed)),
		listener:          NewStatsListener(),
	}

	tree.Arena = append(tree.Arena, Node[T, S]{
		State:      root,
		Parent:     NoParent,
		Expanded:   make([]int, 0, cfg.averageChildCount),
		Unexpanded: root.GenerateLegalActions(),
	})

	return tree
}

// Root returns the root node of the tree.
func (tree *Tree[T, S]) Root() *Node[T, S] {
	return &tree.Arena[0]
}

// Size returns the number of nodes in the arena.
func (tree *Tree[T, S]) Size() int {
	return len(tree.Arena)
}

// UCT computes the upper confidence bound for a non-root node:
//
//	UCT = wins/sims + c*sqrt(ln(parent_sims)/sims)
//
// 'c' is the exploration factor, see ExplorationParam for the default.
// Panics if 'child' has no parent; the exploration term is meaningless for
// the root, so calling this on it is programmer misuse.
func (tree *Tree[T, S]) UCT(child int, c float64) float64 {
	childNode := &tree.Arena[child]
	if childNode.Parent == NoParent {
		panic("mcts: UCT called on a node with no parent")
	}

	wins := float64(childNode.Wins)
	sims := float64(childNode.Sims)
	parentSims := float64(tree.Arena[childNode.Parent].Sims)

	return wins/sims + c*math.Sqrt(math.Log(parentSims)/sims)
}

// MaxUCTChild returns the expanded child of 'parent' with the maximum UCT
// value. Children are scanned in stored order and only a strictly greater
// value replaces the running maximum, so ties keep the earlier child. The
// tie-break is deterministic and order dependent.
func (tree *Tree[T, S]) MaxUCTChild(parent int, c float64) int {
	bestValue := -math.MaxFloat64
	bestChild := 0
	for _, child := range tree.Arena[parent].Expanded {
		childUCT := tree.UCT(child, c)
		if childUCT > bestValue {
			bestValue = childUCT
			bestChild = child
		}
	}
	return bestChild
}

// Select walks down from 'node' along max-UCT children until it finds a
// node with at least one unexpanded action, or a terminal node. This is the
// standard tree policy descent of MCTS.
func (tree *Tree[T, S]) Select(node int, c float64) int {
	// A leaf is found where unexpanded actions exist.
	for len(tree.Arena[node].Unexpanded) == 0 {
		// No unexpanded actions and no expanded children: terminal.
		if len(tree.Arena[node].Expanded) == 0 {
			return node
		}
		node = tree.MaxUCTChild(node, c)
	}
	return node
}

// Expand materializes one uniformly random unexpanded action of 'leaf' as a
// new node and returns its arena index. If the leaf is terminal (no
// unexpanded actions), no node is created and the leaf index is returned
// unchanged.
func (tree *Tree[T, S]) Expand(leaf int) int {
	if len(tree.Arena[leaf].Unexpanded) == 0 {
		return leaf
	}

	// Pick a random action out of the remaining legal ones.
	picked := tree.rng.Intn(len(tree.Arena[leaf].Unexpanded))
	action := tree.Arena[leaf].Unexpanded[picked]

	// Resulting game state, and the legal actions from there.
	state := tree.Arena[leaf].State.ApplyAction(action)
	unexpanded := state.GenerateLegalActions()

	tree.Arena = append(tree.Arena, Node[T, S]{
		State:      state,
		Parent:     leaf,
		Expanded:   make([]int, 0, tree.averageChildCount),
		Unexpanded: unexpanded,
	})
	expanded := len(tree.Arena) - 1

	// Move the action out of the unexpanded list, preserving order, and
	// record the new child.
	tree.Arena[leaf].Unexpanded = slices.Delete(tree.Arena[leaf].Unexpanded, picked, picked+1)
	tree.Arena[leaf].Expanded = append(tree.Arena[leaf].Expanded, expanded)

	return expanded
}

// Simulate plays uniformly random actions from the state of 'node' until a
// terminal position is reached, and returns its result. The node's own state
// is never mutated; the rollout works on successive copies and only consumes
// the tree's random generator.
//
// Rollouts are capped at RolloutMoveLimit action applications, hitting the
// cap reports a forced Draw.
func (tree *Tree[T, S]) Simulate(node int) GameResult {
	count := 0
	state := tree.Arena[node].State
	actions := state.GenerateLegalActions()
	for len(actions) > 0 && state.StatusWithMovesLeft() {
		if count >= RolloutMoveLimit {
			return Draw
		}

		state = state.ApplyAction(actions[tree.rng.Intn(len(actions))])
		actions = state.GenerateLegalActions()
		count++
	}
	return state.Result()
}

// Backpropagate feeds a rollout result to every node on the path from
// 'node' up to the root, inclusive.
//
// A Draw increments the draw counter. Otherwise the win counter is
// incremented on the nodes owned by the winning side: each node is credited
// from the perspective of the player who moved into its position, which is
// the opposite of the node's side to move. Every visited node's simulation
// counter is incremented regardless of outcome.
func (tree *Tree[T, S]) Backpropagate(node int, result GameResult) {
	for {
		current := &tree.Arena[node]

		if result == Draw {
			current.Draws++
		} else {
			resultBool := result == FirstPlayerWin
			sideBool := !current.State.SideToMove()
			if resultBool == sideBool {
				current.Wins++
			}
		}

		current.Sims++

		if current.Parent == NoParent {
			break
		}
		node = current.Parent
	}
}

// TracePath returns the arena indices on the path from the root's immediate
// child down to 'node', in playing order. The root itself is never included,
// so tracing the root yields an empty path. The caller's best move is the
// provenance of the state at the first index.
func (tree *Tree[T, S]) TracePath(node int) []int {
	path := make([]int, 0, 16)

	// Built backwards from the node, then reversed.
	for tree.Arena[node].Parent != NoParent {
		path = append(path, node)
		node = tree.Arena[node].Parent
	}

	slices.Reverse(path)
	return path
}
