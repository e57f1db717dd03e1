// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import (
	"fmt"

	"github.com/emer/emergent/v2/env"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
)

// GambleEnv presents the binary-gamble task as an environment: the agent's
// sampled choice of which gamble to play is supplied as an Action, and
// Step realizes that gamble's outcome from its own outcome probabilities.
// The realized (gamble, outcome) slot is what gets reinforced in memory.
type GambleEnv struct {

	// name of this environment
	Nm string

	// description of this environment
	Dsc string

	// A is the option A gamble.
	A Gamble

	// B is the option B gamble.
	B Gamble

	// Rnd is the random stream for outcome realization -- shared with the
	// owning subject's stepper so one seed fixes the whole subject run.
	Rnd *erand.SysRand `view:"-"`

	// PlayA is true if option A is the gamble being played this trial.
	PlayA bool

	// Out is the instance slot of the realized outcome.
	Out Slots

	// Payoff is the realized payoff value.
	Payoff float64

	// Pay is Payoff as a 1D state tensor.
	Pay etensor.Float64

	// [view: inline] current subject, provided during Init
	Run env.Ctr `view:"inline"`

	// [view: inline] trial counter within the subject's run
	Trial env.Ctr `view:"inline"`
}

func (ev *GambleEnv) Name() string { return ev.Nm }
func (ev *GambleEnv) Desc() string { return ev.Dsc }

// Config sets the gambles and the number of trials per run.
func (ev *GambleEnv) Config(a, b Gamble, ntrls int) {
	ev.A = a
	ev.B = b
	ev.Trial.Max = ntrls
	ev.Pay.SetShape([]int{1}, nil, []string{"Payoff"})
}

func (ev *GambleEnv) Validate() error {
	if err := ev.A.Validate("A"); err != nil {
		return err
	}
	if err := ev.B.Validate("B"); err != nil {
		return err
	}
	if ev.Rnd == nil {
		return fmt.Errorf("GambleEnv: %v has no random stream -- need to set Rnd", ev.Nm)
	}
	return nil
}

func (ev *GambleEnv) State(element string) etensor.Tensor {
	switch element {
	case "Payoff":
		return &ev.Pay
	}
	return nil
}

// String returns the realized outcome as a string
func (ev *GambleEnv) String() string {
	return fmt.Sprintf("%s=%g", ev.Out, ev.Payoff)
}

// Init is called to restart environment for given subject run
func (ev *GambleEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = 1 // trial 1 is the seed row -- first Step realizes trial 2
	ev.PlayA = false
	ev.Out = SlotsN
	ev.Payoff = 0
	ev.Pay.SetZeros()
}

// SetChoice sets which gamble is played on the upcoming Step.
func (ev *GambleEnv) SetChoice(playA bool) {
	ev.PlayA = playA
}

// Step realizes the outcome of the chosen gamble by sampling from its own
// outcome probabilities, and advances the trial counter.
func (ev *GambleEnv) Step() bool {
	gm := &ev.B
	sl1, sl2 := BOut1, BOut2
	if ev.PlayA {
		gm = &ev.A
		sl1, sl2 = AOut1, AOut2
	}
	if ev.Rnd.Float64(-1) < gm.P1 {
		ev.Out = sl1
		ev.Payoff = gm.Out1
	} else {
		ev.Out = sl2
		ev.Payoff = gm.Out2
	}
	ev.Pay.Values[0] = ev.Payoff
	ev.Trial.Incr()
	return true
}

// Action sets the choice of gamble: any value >= 0.5 in the first element
// of input selects option B, else option A.
func (ev *GambleEnv) Action(element string, input etensor.Tensor) {
	switch element {
	case "Choice":
		ev.SetChoice(input.FloatVal1D(0) < 0.5)
	}
}

func (ev *GambleEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*GambleEnv)(nil)
