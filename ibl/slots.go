// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ibl

import "github.com/goki/ki/kit"

// Slots index the six fixed instance slots of a subject's memory:
// the two outcome instances and the anchor instance for each option.
type Slots int

//go:generate stringer -type=Slots

var KiT_Slots = kit.Enums.AddEnum(SlotsN, kit.NotBitFlag, nil)

func (ev Slots) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Slots) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// AOut1 is option A's first outcome instance.
	AOut1 Slots = iota

	// AOut2 is option A's second outcome instance.
	AOut2

	// AAnchor is option A's anchor instance, pre-seeded at trial 1 with the
	// shared anchor value so early trials always have something to retrieve.
	AAnchor

	// BOut1 is option B's first outcome instance.
	BOut1

	// BOut2 is option B's second outcome instance.
	BOut2

	// BAnchor is option B's anchor instance -- same value as AAnchor.
	BAnchor

	SlotsN
)

// IsAnchor returns true for the two anchor slots.
func (sl Slots) IsAnchor() bool {
	return sl == AAnchor || sl == BAnchor
}

// OptA returns true for option A's three slots.
func (sl Slots) OptA() bool {
	return sl <= AAnchor
}
