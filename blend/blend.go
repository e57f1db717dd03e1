// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package blend implements the core instance-based learning (IBL) equations:
decay-weighted base-level activation of memory instances, logistic
activation noise, per-option softmax retrieval probabilities, and the
blended value and choice probability derived from them.

These are pure functions of the memory trace state -- all stochastic
sampling and memory updating lives in the ibl package.
*/
package blend

import "math"

// Params are the IBL activation and blending equation parameters.
type Params struct {

	// Decay is the memory decay exponent d: a trace laid down at trial tj
	// contributes (t-tj)^(-d) to the activation sum at current trial t.
	// Larger positive values produce faster memory fading (more recency
	// weighting), negative values give growing weight to older traces.
	// Any sign is allowed.
	Decay float64 `def:"0.5"`

	// Sigma is the scale of the logistic noise added to each activation,
	// and sets the retrieval softmax temperature Tau = Sigma * sqrt(2).
	// Must be > 0.
	Sigma float64 `def:"0.25" min:"0"`

	// Tau is the retrieval softmax temperature = Sigma * sqrt(2).
	Tau float64 `inactive:"+"`
}

func (bp *Params) Defaults() {
	bp.Decay = 0.5
	bp.Sigma = 0.25
	bp.Update()
}

func (bp *Params) Update() {
	bp.Tau = bp.Sigma * math.Sqrt2
}

// BaseAct returns the base-level activation at trial t of an instance with
// the given reinforcement traces: ln(sum over tj of (t-tj)^(-Decay)).
// All trace entries must be < t.  An instance with no traces has nothing
// to retrieve: -Inf.
func (bp *Params) BaseAct(t int, traces []int) float64 {
	if len(traces) == 0 {
		return math.Inf(-1)
	}
	sum := 0.0
	for _, tj := range traces {
		sum += math.Pow(float64(t-tj), -bp.Decay)
	}
	return math.Log(sum)
}

// Noise returns the logistic activation noise for a uniform draw u in (0,1):
// Sigma * ln((1-u)/u).
func (bp *Params) Noise(u float64) float64 {
	return bp.Sigma * math.Log((1-u)/u)
}

// Retrieval sets ps to the softmax retrieval probabilities of the given
// activations at temperature Tau: ps[i] = exp(acts[i]/Tau) / sum over the
// same slice.  -Inf activations get 0 probability.  The max activation is
// subtracted before exponentiating so finite activations of any magnitude
// are safe.  acts and ps must be the same length and at least one
// activation must be > -Inf.
func (bp *Params) Retrieval(acts, ps []float64) {
	mx := math.Inf(-1)
	for _, ac := range acts {
		if ac > mx {
			mx = ac
		}
	}
	sum := 0.0
	for i, ac := range acts {
		ps[i] = math.Exp((ac - mx) / bp.Tau)
		sum += ps[i]
	}
	for i := range ps {
		ps[i] /= sum
	}
}

// Blended returns the blended value: the retrieval-probability-weighted
// sum of the instance values.
func Blended(ps, vals []float64) float64 {
	bv := 0.0
	for i, p := range ps {
		bv += p * vals[i]
	}
	return bv
}

// ChoiceProb returns the probability of choosing option A as the softmax
// over the two blended values: exp(bvA) / (exp(bvA) + exp(bvB)), computed
// in the equivalent logistic form 1 / (1 + exp(bvB-bvA)) so that large
// blended values do not overflow.  Returns NaN if both blended values are
// -Inf (no defined choice).
func ChoiceProb(bvA, bvB float64) float64 {
	return 1 / (1 + math.Exp(bvB-bvA))
}

// PlayProbDouble returns the probability that option A is the gamble
// actually played under the double-exponential weighting
// exp(exp(bvA)) : exp(exp(bvB)), in the logistic form
// 1 / (1 + exp(exp(bvB) - exp(bvA))).  Returns NaN when the inner
// exponentials both overflow to +Inf (degenerate weighting).
func PlayProbDouble(bvA, bvB float64) float64 {
	return 1 / (1 + math.Exp(math.Exp(bvB)-math.Exp(bvA)))
}
