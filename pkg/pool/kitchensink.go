package pool

import (
	"math/rand"

	"github.com/wildfunctions/exprtree/pkg/expr"
)

func init() {
	Register("kitchensink", func() Pool { return &KitchenSinkPool{} })
}

// KitchenSinkPool uses every operator kind, including power, with signed
// fractional leaves and zeros, so results may be infinite or NaN.
type KitchenSinkPool struct{}

func (p *KitchenSinkPool) Name() string { return "kitchensink" }

func (p *KitchenSinkPool) RandomLeaf(rng *rand.Rand) expr.Node {
	r := rng.Float64()
	switch {
	case r < 0.1:
		return expr.NewValue(0)
	case r < 0.6:
		return expr.NewValue(float64(rng.Intn(21) - 10))
	default:
		// quarters in [-10, 10)
		return expr.NewValue(float64(rng.Intn(80)-40) / 4)
	}
}

var kitchenSinkKinds = []expr.Kind{
	expr.KindAdd,
	expr.KindSub,
	expr.KindMul,
	expr.KindDiv,
	expr.KindPower,
	expr.KindNegate,
}

func (p *KitchenSinkPool) RandomKind(rng *rand.Rand) expr.Kind {
	return kitchenSinkKinds[rng.Intn(len(kitchenSinkKinds))]
}

func (p *KitchenSinkPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
