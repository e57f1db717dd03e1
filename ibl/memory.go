// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

// Instance is one memory instance slot: the fixed payoff value it
// represents and the ordered list of trial numbers at which it was
// reinforced.
type Instance struct {

	// Value is the payoff this instance represents (the shared anchor
	// value for the two anchor slots).
	Value float64

	// Traces is the ordered list of trial numbers at which this instance
	// was reinforced.  Append-only: entries are never removed or reordered.
	Traces []int
}

// Memory is one subject's instance memory: the six slots.  It is owned by
// a single Stepper and never shared across subjects; only the stepper's
// memory-update step mutates it.
type Memory struct {
	Slots [SlotsN]Instance
}

// Init sets the slot values from the params and resets the traces:
// outcome slots start empty, anchor slots are pre-seeded with a single
// trace at trial 1 representing the prior pseudo-observation.
// Returns an error for degenerate configs with no defined anchor value.
func (mm *Memory) Init(pr *Params) error {
	pp, err := pr.Anchor()
	if err != nil {
		return err
	}
	mm.Slots[AOut1] = Instance{Value: pr.A.Out1}
	mm.Slots[AOut2] = Instance{Value: pr.A.Out2}
	mm.Slots[AAnchor] = Instance{Value: pp, Traces: []int{1}}
	mm.Slots[BOut1] = Instance{Value: pr.B.Out1}
	mm.Slots[BOut2] = Instance{Value: pr.B.Out2}
	mm.Slots[BAnchor] = Instance{Value: pp, Traces: []int{1}}
	return nil
}

// Reinforce appends the given trial to the slot's trace list.
func (mm *Memory) Reinforce(sl Slots, trial int) {
	is := &mm.Slots[sl]
	is.Traces = append(is.Traces, trial)
}

// NTraces returns the total number of traces across all slots.
func (mm *Memory) NTraces() int {
	n := 0
	for sl := range mm.Slots {
		n += len(mm.Slots[sl].Traces)
	}
	return n
}
