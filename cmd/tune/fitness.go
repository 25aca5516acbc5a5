package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/demos"
	"github.com/pthm-cable/flux/sim"
)

// settleWindow is the tail-end stretch of the run the settle metric is
// measured over, in ticks.
const settleWindow = 120

// iterationCostWeight trades residual quality against solver passes per
// frame, so the search prefers the cheapest settings that still settle.
const iterationCostWeight = 0.002

// FitnessEvaluator runs headless cloth simulations and scores how quickly
// and cleanly the cloth comes to rest.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int
	seeds    []int64
	baseCfg  *config.Config

	mu       sync.Mutex
	lastMean float64 // mean tail speed from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		baseCfg:  baseCfg,
	}
}

// LastMeanSpeed returns the mean tail speed from the most recent evaluation.
func (fe *FitnessEvaluator) LastMeanSpeed() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMean
}

// Evaluate computes fitness for a parameter vector (lower = better). The
// score is the mean particle speed over the final settleWindow ticks plus
// the worst constraint residual, with a small per-pass solver cost.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]float64, len(fe.seeds))
	means := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx], means[idx] = fe.runOnce(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total, totalMean float64
	for i := range results {
		total += results[i]
		totalMean += means[i]
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastMean = totalMean / n
	fe.mu.Unlock()

	return total / n
}

// runOnce runs one seeded cloth simulation and returns (fitness, mean tail
// speed).
func (fe *FitnessEvaluator) runOnce(x []float64, seed int64) (float64, float64) {
	registry := demos.Default()
	demo, err := registry.New("cloth")
	if err != nil {
		panic(err)
	}
	demo.Start(fe.baseCfg, rand.New(rand.NewSource(seed)))
	defer demo.Stop()

	in := sim.DefaultInput(fe.baseCfg)
	fe.params.ApplyToInput(&in, x)

	var tailSpeeds []float64
	var worstResidual float64

	for tick := 1; tick <= fe.maxTicks; tick++ {
		in.Tick = tick
		demo.Step(in)

		if tick <= fe.maxTicks-settleWindow {
			continue
		}
		m := demo.(demos.Measurable).Metrics()
		if len(m.Speeds) > 0 {
			tailSpeeds = append(tailSpeeds, stat.Mean(m.Speeds, nil))
		}
		if m.Residual > worstResidual {
			worstResidual = m.Residual
		}
	}

	meanSpeed := 0.0
	if len(tailSpeeds) > 0 {
		meanSpeed = stat.Mean(tailSpeeds, nil)
	}
	if math.IsNaN(meanSpeed) || math.IsInf(meanSpeed, 0) {
		// Blown-up runs score as bad as possible
		return math.MaxFloat64, math.MaxFloat64
	}

	fitness := meanSpeed + worstResidual + iterationCostWeight*float64(in.Iterations)
	return fitness, meanSpeed
}
