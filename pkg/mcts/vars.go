package mcts

import "math"

// Exploration parameter used in the UCT formula, higher values increase
// exploration while lower values increase exploitation. Sqrt(2) is the
// theoretical optimum and the default, but it usually has to be tuned for
// each game.
var ExplorationParam float64 = math.Sqrt2

// Set the exploration parameter used in the UCT formula
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

// Rollouts are hard-capped to this many action applications. Reaching the
// cap forces a Draw, so random play terminates even in games without a
// guaranteed end.
const RolloutMoveLimit = 200

// DefaultSeed seeds the tree's random generator when no seed is supplied.
// Note this makes "no seed" reproducible, not random; pass WithSeed to vary
// the playouts between runs.
const DefaultSeed uint64 = 0

const (
	DefaultArenaCapacity     = 4096
	DefaultAverageChildCount = 8
)
