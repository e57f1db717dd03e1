// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ibl is the overall repository for an instance-based learning (IBL)
model of repeated binary-gamble choice, implemented in the Go language
(golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* blend: the core IBL equations as pure functions -- decay-weighted
base-level activation of memory instances, logistic activation noise,
per-option softmax retrieval probabilities, blended values, and the
choice probability derived from them.

* ibl: the simulation engine: gamble and model parameters with validation,
the six-slot instance memory per subject, the trial stepper that advances
one subject one trial at a time, the gamble environment that realizes
sampled outcomes, and the batch runner that simulates all subjects into
one etable.Table of trial records.

* examples: these compile into runnable programs.  examples/gamble runs a
full batch from command-line args and writes the trial records as TSV along
with an aggregate summary.
*/
package ibl
