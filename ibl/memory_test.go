// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import (
	"math"
	"testing"
)

func TestMemoryInit(t *testing.T) {
	pr := scenParams()
	mm := &Memory{}
	if err := mm.Init(pr); err != nil {
		t.Fatalf("Memory.Init err: %v\n", err)
	}

	vals := []float64{0, 100, 110, 10, 20, 110}
	for sl := AOut1; sl < SlotsN; sl++ {
		is := &mm.Slots[sl]
		if math.Abs(is.Value-vals[sl]) > difTol {
			t.Errorf("Memory err: slot %v value: %v, cor: %v\n", sl, is.Value, vals[sl])
		}
		if sl.IsAnchor() {
			if len(is.Traces) != 1 || is.Traces[0] != 1 {
				t.Errorf("Memory err: anchor %v traces: %v, cor: [1]\n", sl, is.Traces)
			}
		} else if len(is.Traces) != 0 {
			t.Errorf("Memory err: outcome slot %v traces not empty: %v\n", sl, is.Traces)
		}
	}
	if n := mm.NTraces(); n != 2 {
		t.Errorf("Memory err: NTraces: %d, cor: 2\n", n)
	}
}

func TestMemoryDegenerate(t *testing.T) {
	pr := scenParams()
	pr.A.P1 = math.NaN()
	pr.B.P1 = math.NaN()
	mm := &Memory{}
	if err := mm.Init(pr); err == nil {
		t.Errorf("Memory err: degenerate config accepted\n")
	}
}

func TestReinforce(t *testing.T) {
	pr := scenParams()
	mm := &Memory{}
	if err := mm.Init(pr); err != nil {
		t.Fatalf("Memory.Init err: %v\n", err)
	}
	mm.Reinforce(AOut2, 2)
	mm.Reinforce(AOut2, 3)
	mm.Reinforce(BOut1, 4)
	if tr := mm.Slots[AOut2].Traces; len(tr) != 2 || tr[0] != 2 || tr[1] != 3 {
		t.Errorf("Reinforce err: AOut2 traces: %v, cor: [2 3]\n", tr)
	}
	if tr := mm.Slots[BOut1].Traces; len(tr) != 1 || tr[0] != 4 {
		t.Errorf("Reinforce err: BOut1 traces: %v, cor: [4]\n", tr)
	}
	if n := mm.NTraces(); n != 5 {
		t.Errorf("Reinforce err: NTraces: %d, cor: 5\n", n)
	}
}
