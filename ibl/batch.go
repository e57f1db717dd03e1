// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ConfigTrialTable configures dt as the trial-record table with nrows rows:
// one row per (subject, trial), with the choice probability, the four
// non-anchor activations, the two blended values, the four non-anchor
// retrieval probabilities, and the realized play.
func ConfigTrialTable(dt *etable.Table, nrows int) {
	dt.SetMetaData("name", "TrialRecords")
	dt.SetMetaData("desc", "per-subject per-trial IBL gamble simulation records")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Subject", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Trial", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Out", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ActA1", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ActA2", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ActB1", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ActB2", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "BlendA", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "BlendB", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ProbA1", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ProbA2", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ProbB1", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "ProbB2", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Play", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Payoff", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, nrows)
}

// Batch runs the full simulation: every subject independently, one row
// per (subject, trial) concatenated in order into the Trials table.
type Batch struct {

	// Params are the validated simulation parameters.
	Params Params

	// Seeds are the per-subject random seeds: subject si uses Seeds[si-1].
	// Stable seeds make repeated runs bit-identical at any thread count.
	Seeds []int64

	// Trials is the output table, NSubjects * NTrials rows.
	Trials *etable.Table `view:"no-inline"`
}

// Config validates the params and sizes the output table and seed list.
// Must be called (successfully) before Run.
func (bt *Batch) Config(pr *Params) error {
	pr.Update()
	if err := pr.Validate(); err != nil {
		return err
	}
	bt.Params = *pr
	bt.NewSeeds(1)
	bt.Trials = &etable.Table{}
	ConfigTrialTable(bt.Trials, pr.NSubjects*pr.NTrials)
	return nil
}

// NewSeeds assigns one random seed per subject, starting from base.
func (bt *Batch) NewSeeds(base int64) {
	bt.Seeds = make([]int64, bt.Params.NSubjects)
	for i := range bt.Seeds {
		bt.Seeds[i] = base + int64(i)
	}
}

// Run simulates every subject and fills the Trials table.  Fail-fast: the
// first subject error aborts the whole batch.  Cancelling ctx aborts
// between trials; no partial row is ever written.
func (bt *Batch) Run(ctx context.Context) error {
	nthr := bt.Params.Threads
	if nthr <= 1 {
		for si := 1; si <= bt.Params.NSubjects; si++ {
			if err := bt.RunSubject(ctx, si); err != nil {
				return err
			}
		}
		return nil
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var wg sync.WaitGroup
	sch := make(chan int)
	errs := make([]error, bt.Params.NSubjects)
	for w := 0; w < nthr; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for si := range sch {
				if err := bt.RunSubject(cctx, si); err != nil {
					errs[si-1] = err
					cancel() // fail fast
				}
			}
		}()
	}
	for si := 1; si <= bt.Params.NSubjects; si++ {
		sch <- si
	}
	close(sch)
	wg.Wait()
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	// remaining errs can only be cancellations: workers cancel each other
	// only after recording a real error above, so any left over came from
	// the caller's context
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// RunSubject simulates one subject (1-based), writing its rows into the
// subject's own region of the Trials table.
func (bt *Batch) RunSubject(ctx context.Context, si int) error {
	st := &Stepper{}
	if err := st.Init(&bt.Params, si, bt.Seeds[si-1]); err != nil {
		return err
	}
	row := (si - 1) * bt.Params.NTrials
	bt.LogTrial(st, si, row)
	for t := 2; t <= bt.Params.NTrials; t++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := st.Step(); err != nil {
			return fmt.Errorf("subject %d: %w", si, err)
		}
		bt.LogTrial(st, si, row+t-1)
	}
	return nil
}

// LogTrial records the stepper's current trial state at the given row.
// Trial-1 rows carry the fixed Out = 0.5 and NaN for everything the
// seed trial does not compute.
func (bt *Batch) LogTrial(st *Stepper, si, row int) {
	dt := bt.Trials
	dt.SetCellFloat("Subject", row, float64(si))
	dt.SetCellFloat("Trial", row, float64(st.Trial))
	dt.SetCellFloat("Out", row, st.Out)
	dt.SetCellFloat("ActA1", row, st.Acts[AOut1])
	dt.SetCellFloat("ActA2", row, st.Acts[AOut2])
	dt.SetCellFloat("ActB1", row, st.Acts[BOut1])
	dt.SetCellFloat("ActB2", row, st.Acts[BOut2])
	dt.SetCellFloat("BlendA", row, st.BlendA)
	dt.SetCellFloat("BlendB", row, st.BlendB)
	dt.SetCellFloat("ProbA1", row, st.Ps[AOut1])
	dt.SetCellFloat("ProbA2", row, st.Ps[AOut2])
	dt.SetCellFloat("ProbB1", row, st.Ps[BOut1])
	dt.SetCellFloat("ProbB2", row, st.Ps[BOut2])
	if st.Trial == 1 {
		dt.SetCellString("Play", row, "")
		dt.SetCellFloat("Payoff", row, math.NaN())
	} else {
		play := "B"
		if st.Env.PlayA {
			play = "A"
		}
		dt.SetCellString("Play", row, play)
		dt.SetCellFloat("Payoff", row, st.Env.Payoff)
	}
}

// OutRange returns the observed range of the choice probability across
// all computed trials (trial-1 seed rows excluded) -- a quick sanity
// check that everything stayed in [0,1].
func (bt *Batch) OutRange() minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	dt := bt.Trials
	for row := 0; row < dt.Rows; row++ {
		if dt.CellFloat("Trial", row) == 1 {
			continue
		}
		rng.FitValInRange(dt.CellFloat("Out", row))
	}
	return rng
}

// SizeReport returns a one-line human-readable summary of the result
// table dimensions and memory footprint.
func (bt *Batch) SizeReport() string {
	dt := bt.Trials
	mem := 0
	for _, cl := range dt.Cols {
		mem += cl.Len() * 8
	}
	return fmt.Sprintf("Trials: %d rows x %d cols\t Mem: %v", dt.Rows, dt.NumCols(), (datasize.ByteSize)(mem).HumanReadable())
}
