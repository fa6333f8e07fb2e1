package pool

import (
	"math/rand"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/wildfunctions/exprtree/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomKind(rng *rand.Rand) expr.Kind
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Newf("unknown pool: %s", errors.Safe(name))
	}
	return ctor(), nil
}

// Names returns all registered pool names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// randomTree is a shared helper for building random trees. The returned
// tree belongs to the caller, who must destroy it.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) expr.Node {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	if rng.Float64() < 0.4 {
		return p.RandomLeaf(rng)
	}
	kind := p.RandomKind(rng)
	if kind == expr.KindNegate {
		return expr.NewNode(kind, randomTree(p, rng, maxDepth-1), nil)
	}
	left := randomTree(p, rng, maxDepth-1)
	right := randomTree(p, rng, maxDepth-1)
	return expr.NewNode(kind, left, right)
}
