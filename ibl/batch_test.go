// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestBatchScenario(t *testing.T) {
	pr := scenParams()
	bt := &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	if err := bt.Run(context.Background()); err != nil {
		t.Fatalf("Batch.Run err: %v\n", err)
	}
	dt := bt.Trials
	if dt.Rows != pr.NSubjects*pr.NTrials {
		t.Fatalf("Batch err: rows: %d, cor: %d\n", dt.Rows, pr.NSubjects*pr.NTrials)
	}
	row := 0
	for si := 1; si <= pr.NSubjects; si++ {
		for tr := 1; tr <= pr.NTrials; tr++ {
			if s := dt.CellFloat("Subject", row); s != float64(si) {
				t.Errorf("Batch err: row %d: Subject %v, cor: %d\n", row, s, si)
			}
			if tl := dt.CellFloat("Trial", row); tl != float64(tr) {
				t.Errorf("Batch err: row %d: Trial %v, cor: %d\n", row, tl, tr)
			}
			out := dt.CellFloat("Out", row)
			if tr == 1 {
				if out != 0.5 {
					t.Errorf("Batch err: subject %d trial 1: Out %v, cor: exactly 0.5\n", si, out)
				}
			} else if math.IsNaN(out) || out < 0 || out > 1 {
				t.Errorf("Batch err: subject %d trial %d: Out %v out of [0,1]\n", si, tr, out)
			}
			row++
		}
	}
}

func TestBatchBoundary(t *testing.T) {
	pr := scenParams()
	pr.NTrials = 2
	pr.NSubjects = 3
	bt := &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	if err := bt.Run(context.Background()); err != nil {
		t.Fatalf("Batch.Run err: %v\n", err)
	}
	dt := bt.Trials
	if dt.Rows != 6 {
		t.Fatalf("Batch err: rows: %d, cor: 6\n", dt.Rows)
	}
	for si := 0; si < 3; si++ {
		if out := dt.CellFloat("Out", si*2); out != 0.5 {
			t.Errorf("Batch err: seed row Out %v, cor: 0.5\n", out)
		}
		if out := dt.CellFloat("Out", si*2+1); math.IsNaN(out) {
			t.Errorf("Batch err: computed trial-2 row is NaN\n")
		}
	}
}

func TestBatchThreadsInvariance(t *testing.T) {
	pr := scenParams()
	bt1 := &Batch{}
	if err := bt1.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	if err := bt1.Run(context.Background()); err != nil {
		t.Fatalf("Batch.Run err: %v\n", err)
	}

	pr2 := scenParams()
	pr2.Threads = 4
	bt2 := &Batch{}
	if err := bt2.Config(pr2); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	if err := bt2.Run(context.Background()); err != nil {
		t.Fatalf("Batch.Run err: %v\n", err)
	}

	cols := []string{"Out", "ActA1", "ActB2", "BlendA", "BlendB", "Payoff"}
	for _, cl := range cols {
		for row := 0; row < bt1.Trials.Rows; row++ {
			v1 := bt1.Trials.CellFloat(cl, row)
			v2 := bt2.Trials.CellFloat(cl, row)
			if v1 != v2 && !(math.IsNaN(v1) && math.IsNaN(v2)) {
				t.Errorf("Batch err: %s row %d differs across thread counts: %v vs %v\n", cl, row, v1, v2)
			}
		}
	}
}

func TestBatchInvalid(t *testing.T) {
	pr := scenParams()
	pr.Blend.Sigma = -0.5
	bt := &Batch{}
	err := bt.Config(pr)
	if err == nil {
		t.Fatalf("Batch err: invalid config accepted\n")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Batch err: wrong error kind: %v\n", err)
	}
}

func TestBatchCancel(t *testing.T) {
	pr := scenParams()
	bt := &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bt.Run(ctx); err == nil {
		t.Errorf("Batch err: cancelled run returned nil\n")
	}

	// parallel path: caller cancellation must surface as context.Canceled
	pr.Threads = 4
	bt = &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	err := bt.Run(ctx)
	if err == nil {
		t.Errorf("Batch err: cancelled parallel run returned nil\n")
	} else if !errors.Is(err, context.Canceled) {
		t.Errorf("Batch err: cancelled parallel run error %v, cor: context.Canceled\n", err)
	}
}

func TestBatchSizeReport(t *testing.T) {
	pr := scenParams()
	bt := &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	sr := bt.SizeReport()
	if sr == "" {
		t.Errorf("Batch err: empty size report\n")
	}
}

func TestBatchOutRange(t *testing.T) {
	pr := scenParams()
	bt := &Batch{}
	if err := bt.Config(pr); err != nil {
		t.Fatalf("Batch.Config err: %v\n", err)
	}
	if err := bt.Run(context.Background()); err != nil {
		t.Fatalf("Batch.Run err: %v\n", err)
	}
	rng := bt.OutRange()
	if rng.Min < 0 || rng.Max > 1 || rng.Min > rng.Max {
		t.Errorf("Batch err: OutRange [%v, %v] outside [0,1]\n", rng.Min, rng.Max)
	}
}
