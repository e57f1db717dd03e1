// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ibl implements an instance-based learning (IBL) simulation of
repeated choice between two two-outcome gambles.  Each simulated subject
carries a six-slot instance memory (two outcomes + one anchor per option)
whose traces decay with trial lag; noisy activations drive per-option
softmax retrieval, blended values, and the probability of choosing
option A, and the realized outcome of the gamble actually played is
reinforced back into memory.  The Batch runner produces one etable.Table
of per-subject per-trial records for downstream analysis.
*/
package ibl

import (
	"fmt"
	"math"

	"github.com/emer/ibl/blend"
	"github.com/goki/ki/kit"
)

// Gamble is one two-outcome lottery: payoff Out1 with probability P1,
// payoff Out2 with probability 1-P1.
type Gamble struct {

	// Out1 is the payoff of the first outcome.
	Out1 float64

	// Out2 is the payoff of the second outcome.
	Out2 float64

	// P1 is the probability of Out1, in [0,1].  P2 = 1 - P1.
	P1 float64 `min:"0" max:"1"`
}

func (gm *Gamble) Defaults() {
	gm.Out1 = 0
	gm.Out2 = 100
	gm.P1 = 0.5
}

// P2 is the probability of Out2.
func (gm *Gamble) P2() float64 {
	return 1 - gm.P1
}

// EV is the gamble's expected value.
func (gm *Gamble) EV() float64 {
	return gm.P1*gm.Out1 + gm.P2()*gm.Out2
}

// Validate returns an error if P1 is outside [0,1].
// nm is the option name for the error message.
func (gm *Gamble) Validate(nm string) error {
	if !(gm.P1 >= 0 && gm.P1 <= 1) {
		return fmt.Errorf("%w: gamble %s: P1 = %v must be in [0,1]", ErrInvalidConfig, nm, gm.P1)
	}
	return nil
}

// MaxPos returns the largest outcome value with strictly positive
// probability, and false if no outcome can occur.
func (gm *Gamble) MaxPos() (float64, bool) {
	mx := math.Inf(-1)
	ok := false
	if gm.P1 > 0 {
		mx = gm.Out1
		ok = true
	}
	if gm.P2() > 0 && (!ok || gm.Out2 > mx) {
		mx = gm.Out2
		ok = true
	}
	return mx, ok
}

// PlayRules are the rules for sampling which gamble is actually played
// on a trial, from the two blended values.
type PlayRules int

//go:generate stringer -type=PlayRules

var KiT_PlayRules = kit.Enums.AddEnum(PlayRulesN, kit.NotBitFlag, nil)

func (ev PlayRules) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PlayRules) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// DoubleExp weights the options exp(exp(blended value)) -- the rule the
	// reference implementation uses, notably sharper than the standard
	// softmax.  Default.
	DoubleExp PlayRules = iota

	// SingleExp weights the options exp(blended value): the same standard
	// softmax that produces the reported choice probability.
	SingleExp

	PlayRulesN
)

// Params are all the parameters of one simulation batch.
type Params struct {

	// A is the option A gamble.
	A Gamble `view:"inline"`

	// B is the option B gamble.
	B Gamble `view:"inline"`

	// Blend has the IBL decay, noise, and temperature parameters.
	Blend blend.Params `view:"inline"`

	// Play selects how the gamble actually played each trial is sampled
	// from the blended values.  DoubleExp is the reference behavior.
	Play PlayRules

	// NSubjects is the number of independent simulated subjects (>= 1).
	NSubjects int `min:"1"`

	// NTrials is the number of trials per subject (>= 2).  Trial 1 is the
	// fixed seed row with choice probability 0.5 and no computed values.
	NTrials int `min:"2"`

	// Threads is the number of parallel worker goroutines over subjects.
	// <= 1 runs subjects sequentially.  Results are identical at any
	// thread count because each subject has its own random stream.
	Threads int
}

func (pr *Params) Defaults() {
	pr.A.Defaults()
	pr.B.Defaults()
	pr.B.Out1 = 10
	pr.B.Out2 = 20
	pr.Blend.Defaults()
	pr.Play = DoubleExp
	pr.NSubjects = 10
	pr.NTrials = 100
	pr.Threads = 1
	pr.Update()
}

func (pr *Params) Update() {
	pr.Blend.Update()
}

// Validate rejects out-of-range parameters: probabilities outside [0,1],
// non-positive noise, too few subjects or trials, or a degenerate
// configuration with no defined anchor value.  The core never clamps.
func (pr *Params) Validate() error {
	if err := pr.A.Validate("A"); err != nil {
		return err
	}
	if err := pr.B.Validate("B"); err != nil {
		return err
	}
	if !(pr.Blend.Sigma > 0) {
		return fmt.Errorf("%w: Sigma = %v must be > 0", ErrInvalidConfig, pr.Blend.Sigma)
	}
	if pr.NSubjects < 1 {
		return fmt.Errorf("%w: NSubjects = %d must be >= 1", ErrInvalidConfig, pr.NSubjects)
	}
	if pr.NTrials < 2 {
		return fmt.Errorf("%w: NTrials = %d must be >= 2", ErrInvalidConfig, pr.NTrials)
	}
	if _, err := pr.Anchor(); err != nil {
		return err
	}
	return nil
}

// Anchor returns the shared anchor (pre-populated) instance value:
// 1.1 * max over all outcome values with strictly positive probability
// in either gamble.  A degenerate configuration where no outcome can
// occur has no defined anchor and returns an error.
func (pr *Params) Anchor() (float64, error) {
	am, aok := pr.A.MaxPos()
	bm, bok := pr.B.MaxPos()
	switch {
	case aok && bok:
		return 1.1 * math.Max(am, bm), nil
	case aok:
		return 1.1 * am, nil
	case bok:
		return 1.1 * bm, nil
	}
	return 0, fmt.Errorf("%w: no outcome has positive probability -- anchor value undefined", ErrInvalidConfig)
}
