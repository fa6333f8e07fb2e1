package pool

import (
	"math/rand"

	"github.com/wildfunctions/exprtree/pkg/expr"
)

func init() {
	Register("moderate", func() Pool { return &ModeratePool{} })
}

// ModeratePool extends conservative with halves as leaves, division and
// negation. Leaves are never zero.
type ModeratePool struct{}

func (p *ModeratePool) Name() string { return "moderate" }

func (p *ModeratePool) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < 0.25 {
		// halves: 0.5, 1.5, ..., 9.5
		return expr.NewValue(float64(rng.Intn(10)) + 0.5)
	}
	return expr.NewValue(float64(rng.Intn(10) + 1))
}

var moderateKinds = []expr.Kind{
	expr.KindAdd,
	expr.KindSub,
	expr.KindMul,
	expr.KindDiv,
	expr.KindNegate,
}

func (p *ModeratePool) RandomKind(rng *rand.Rand) expr.Kind {
	return moderateKinds[rng.Intn(len(moderateKinds))]
}

func (p *ModeratePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
