// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import (
	"fmt"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/ibl/blend"
)

// Stepper advances one subject's simulation one trial at a time, holding
// the instance memory, gamble environment, and random stream for that
// subject.  Trials within a subject are strictly sequential: each step
// reads the memory state left by the previous one.
type Stepper struct {

	// Params are the simulation parameters -- shared, read-only.
	Params *Params `view:"-"`

	// Mem is this subject's instance memory.
	Mem Memory

	// Env realizes the outcome of the gamble played each trial.
	Env GambleEnv

	// Rnd is this subject's private random stream: six noise draws, the
	// play draw, and the outcome draw per trial, in that fixed order.
	Rnd *erand.SysRand `view:"-"`

	// Trial is the current trial number, 1-based.  1 right after Init.
	Trial int

	// Acts are the current trial's activations, anchors included.
	// NaN on trial 1.
	Acts [SlotsN]float64

	// Ps are the current trial's retrieval probabilities, normalized
	// within each option's three slots.  NaN on trial 1.
	Ps [SlotsN]float64

	// BlendA, BlendB are the current blended values.  NaN on trial 1.
	BlendA float64
	BlendB float64

	// Out is the probability of choosing option A this trial.
	// Exactly 0.5 on trial 1.
	Out float64
}

// Init readies the stepper for a fresh run of subject run (1-based) with
// the given random seed: initializes the memory (anchors pre-seeded at
// trial 1) and sets the fixed trial-1 state with Out = 0.5 and no
// computed values.
func (st *Stepper) Init(pr *Params, run int, seed int64) error {
	st.Params = pr
	if err := st.Mem.Init(pr); err != nil {
		return err
	}
	st.Rnd = erand.NewSysRand(seed)
	st.Env.Nm = "Gamble"
	st.Env.Dsc = "two-outcome binary gamble task"
	st.Env.Config(pr.A, pr.B, pr.NTrials)
	st.Env.Rnd = st.Rnd
	st.Env.Init(run)
	st.Trial = 1
	st.Out = 0.5
	for sl := range st.Acts {
		st.Acts[sl] = math.NaN()
		st.Ps[sl] = math.NaN()
	}
	st.BlendA = math.NaN()
	st.BlendB = math.NaN()
	return nil
}

// outProb returns the probability of the outcome a slot represents, and
// false for anchor slots (anchors are always retrievable).
func (st *Stepper) outProb(sl Slots) (float64, bool) {
	switch sl {
	case AOut1:
		return st.Params.A.P1, true
	case AOut2:
		return st.Params.A.P2(), true
	case BOut1:
		return st.Params.B.P1, true
	case BOut2:
		return st.Params.B.P2(), true
	}
	return 0, false
}

// Step runs one trial t >= 2: noisy activations, per-option retrieval
// probabilities, blended values, and choice probability, then samples
// which gamble is actually played and its realized outcome, and
// reinforces the realized instance.  Exactly one trace is appended per
// step.  Returns ErrNumericDegeneracy if the blended values leave the
// choice sampling undefined.
func (st *Stepper) Step() error {
	st.Trial++
	t := st.Trial
	pr := st.Params
	bp := &pr.Blend

	for sl := AOut1; sl < SlotsN; sl++ {
		// always draw, so the stream position does not depend on overrides
		u := st.Rnd.Float64(-1)
		if p, isOut := st.outProb(sl); isOut && p == 0 {
			st.Acts[sl] = math.Inf(-1) // unreachable outcome is never retrievable
			continue
		}
		st.Acts[sl] = bp.BaseAct(t, st.Mem.Slots[sl].Traces) + bp.Noise(u)
	}

	bp.Retrieval(st.Acts[AOut1 : AAnchor+1], st.Ps[AOut1 : AAnchor+1])
	bp.Retrieval(st.Acts[BOut1 : BAnchor+1], st.Ps[BOut1 : BAnchor+1])

	st.BlendA = 0
	st.BlendB = 0
	for sl := AOut1; sl <= AAnchor; sl++ {
		st.BlendA += st.Ps[sl] * st.Mem.Slots[sl].Value
	}
	for sl := BOut1; sl <= BAnchor; sl++ {
		st.BlendB += st.Ps[sl] * st.Mem.Slots[sl].Value
	}

	out := blend.ChoiceProb(st.BlendA, st.BlendB)
	if math.IsNaN(out) {
		return fmt.Errorf("%w: choice softmax undefined at trial %d: blended values %v, %v", ErrNumericDegeneracy, t, st.BlendA, st.BlendB)
	}
	st.Out = out

	pa := out
	if pr.Play == DoubleExp {
		pa = blend.PlayProbDouble(st.BlendA, st.BlendB)
		if math.IsNaN(pa) {
			return fmt.Errorf("%w: double-exponential play weights undefined at trial %d: blended values %v, %v", ErrNumericDegeneracy, t, st.BlendA, st.BlendB)
		}
	}
	st.Env.SetChoice(st.Rnd.Float64(-1) < pa)
	st.Env.Step()
	st.Mem.Reinforce(st.Env.Out, t)
	return nil
}
