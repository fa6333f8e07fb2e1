package engine

import (
	"context"
	"math"
	"math/rand"
	"strconv"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/wildfunctions/exprtree/pkg/expr"
	"github.com/wildfunctions/exprtree/pkg/pool"
	"golang.org/x/sync/errgroup"
)

// Engine builds random expression trees and runs every tree operation on
// them.
type Engine struct {
	cfg  Config
	pool pool.Pool
	seed int64
	log  Logger
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger{}
	}

	return &Engine{
		cfg:  cfg,
		pool: p,
		seed: seed,
		log:  logger,
	}, nil
}

// Run samples cfg.Samples trees in parallel and returns the report. Each
// sample draws from its own generator seeded with seed+index, so the report
// does not depend on the number of workers.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	e.log.Infof("sampling %d trees, pool %s, max depth %d, buffer %d, workers %d, seed %d",
		e.cfg.Samples, e.pool.Name(), e.cfg.MaxDepth, e.cfg.BufSize, e.cfg.Workers, e.seed)

	liveBefore := expr.LiveNodes()
	samples := make([]Sample, e.cfg.Samples)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range samples {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < e.cfg.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				samples[i] = e.sample(i)
				if e.cfg.Verbose {
					e.log.Infof("[sample %d] %s = %s", i, samples[i].Expr, samples[i].Result)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, errors.Wrap(err, "sampling interrupted")
	}

	if e.cfg.CheckLeaks {
		if leaked := expr.LiveNodes() - liveBefore; leaked != 0 {
			return Report{}, errors.AssertionFailedf("%d tree nodes were not destroyed", leaked)
		}
	}

	summary, err := summarize(samples)
	if err != nil {
		return Report{}, err
	}
	summary.Seed = e.seed
	e.log.Infof("done: %d samples, mean %.1f nodes, mean depth %.1f, %d non-finite, %d truncated",
		summary.Samples, summary.NodeCount.Mean, summary.Depth.Mean, summary.NonFinite, summary.Truncated)

	return Report{
		Config:  e.cfg,
		Summary: summary,
		Samples: samples,
	}, nil
}

// sample builds tree i, measures it and destroys it.
func (e *Engine) sample(i int) Sample {
	rng := rand.New(rand.NewSource(e.seed + int64(i)))
	tree := e.pool.RandomTree(rng, e.cfg.MaxDepth)
	defer expr.Destroy(tree)

	buf := make([]byte, e.cfg.BufSize)
	n := expr.Tree2String(tree, buf)
	s := Sample{
		Index:    i,
		Expr:     expr.Format(tree),
		LaTeX:    expr.LaTeX(tree),
		Rendered: string(buf[:n]),
		Count:    expr.Count(tree),
		Depth:    expr.Depth(tree),
		Value:    expr.Evaluate(tree),
	}
	s.Truncated = len(s.Expr) >= e.cfg.BufSize
	s.Result = strconv.FormatFloat(s.Value, 'g', -1, 64)
	return s
}

func summarize(samples []Sample) (Summary, error) {
	s := Summary{Samples: len(samples)}
	maxCount, maxDepth := int64(2), int64(2)
	for _, smp := range samples {
		maxCount = max(maxCount, int64(smp.Count))
		maxDepth = max(maxDepth, int64(smp.Depth))
		if math.IsInf(smp.Value, 0) || math.IsNaN(smp.Value) {
			s.NonFinite++
		}
		if smp.Truncated {
			s.Truncated++
		}
	}

	counts := hdrhistogram.New(1, maxCount, 3)
	depths := hdrhistogram.New(1, maxDepth, 3)
	for _, smp := range samples {
		if err := counts.RecordValue(int64(smp.Count)); err != nil {
			return Summary{}, errors.Wrapf(err, "recording node count of sample %d", smp.Index)
		}
		if err := depths.RecordValue(int64(smp.Depth)); err != nil {
			return Summary{}, errors.Wrapf(err, "recording depth of sample %d", smp.Index)
		}
	}
	s.NodeCount = distribution(counts)
	s.Depth = distribution(depths)
	return s, nil
}

func distribution(h *hdrhistogram.Histogram) Distribution {
	return Distribution{
		Mean: h.Mean(),
		P50:  h.ValueAtQuantile(50),
		P99:  h.ValueAtQuantile(99),
		Max:  h.Max(),
	}
}
