// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package crosscheck

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Plan selects the checks Run performs, a zero count skips the check.
type Plan struct {
	Below       uint32 // BelowVsTrial and OffsetVsFull bound
	Ranges      int    // RandomRanges trials
	RangeBound  uint64 // RandomRanges lower bound limit
	RangeWidth  uint64 // RandomRanges window width
	Factors     int    // Factorizations trials
	FactorLimit uint32 // Factorizations value limit
	Primality   int    // Primality trials
	PrimeBound  uint64 // Primality value limit
}

// DefaultPlan is quick enough to run on every invocation of the verify command.
func DefaultPlan() Plan {
	return Plan{
		Below:       100000,
		Ranges:      20,
		RangeBound:  1e12,
		RangeWidth:  1000,
		Factors:     1000,
		FactorLimit: 1<<32 - 1,
		Primality:   1000,
		PrimeBound:  1 << 40,
	}
}

// Report collects the results of one Run.
type Report struct {
	Seed    int64    `json:"seed"`
	Results []Result `json:"results"`
}

func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failed() {
			return true
		}
	}
	return false
}

// Run executes the checks of plan in order, giving up between checks if ctx is done.
func (t *Tester) Run(ctx context.Context, plan Plan) (Report, error) {
	rep := Report{Seed: t.Seed}
	checks := []struct {
		skip bool
		run  func() Result
	}{
		{plan.Below == 0, func() Result { return t.BelowVsTrial(plan.Below) }},
		{plan.Below == 0, func() Result { return t.OffsetVsFull(plan.Below) }},
		{plan.Ranges == 0, func() Result { return t.RandomRanges(plan.Ranges, plan.RangeBound, plan.RangeWidth) }},
		{plan.Factors == 0, func() Result { return t.Factorizations(plan.Factors, plan.FactorLimit) }},
		{plan.Primality == 0, func() Result { return t.Primality(plan.Primality, plan.PrimeBound) }},
	}
	for _, c := range checks {
		if c.skip {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("crosscheck seed %d: %w", t.Seed, err)
		}
		rep.Results = append(rep.Results, c.run())
	}
	return rep, nil
}

// RunTrials runs plan trials times with seeds seed, seed+1, ... using up to workers goroutines.
// Reports are returned in seed order. The library keeps no shared state so trials don't interfere.
func RunTrials(ctx context.Context, g Generator, plan Plan, seed int64, trials, workers int) ([]Report, error) {
	if workers < 1 {
		workers = 1
	}
	reports := make([]Report, trials)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < trials; i++ {
		i := i
		eg.Go(func() error {
			rep, err := NewTester(g, seed+int64(i)).Run(ctx, plan)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
