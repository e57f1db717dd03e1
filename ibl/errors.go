// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import "errors"

// ErrInvalidConfig is the base error for rejected configurations: a
// probability outside [0,1], non-positive Sigma, NTrials < 2,
// NSubjects < 1, or a degenerate gamble with no positive-probability
// outcome (undefined anchor value).  Configuration errors are fatal and
// reported before any subject runs.
var ErrInvalidConfig = errors.New("ibl: invalid configuration")

// ErrNumericDegeneracy is the base error for a trial where the blended
// values make the choice softmax degenerate (e.g., both options -Inf, or
// both double-exponential play weights overflowing).  Raised instead of
// silently emitting NaN choice probabilities.
var ErrNumericDegeneracy = errors.New("ibl: numeric degeneracy")
