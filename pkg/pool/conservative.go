package pool

import (
	"math/rand"

	"github.com/wildfunctions/exprtree/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return &ConservativePool{} })
}

// ConservativePool provides integers 1-10 and addition, subtraction and
// multiplication, so every tree evaluates to a finite integer.
type ConservativePool struct{}

func (p *ConservativePool) Name() string { return "conservative" }

func (p *ConservativePool) RandomLeaf(rng *rand.Rand) expr.Node {
	return expr.NewValue(float64(rng.Intn(10) + 1))
}

var conservativeKinds = []expr.Kind{
	expr.KindAdd,
	expr.KindSub,
	expr.KindMul,
}

func (p *ConservativePool) RandomKind(rng *rand.Rand) expr.Kind {
	return conservativeKinds[rng.Intn(len(conservativeKinds))]
}

func (p *ConservativePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
