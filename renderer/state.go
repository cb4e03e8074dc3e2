// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import "fmt"

// Phase is the phase of a negotiation.
type Phase int

const (
	PhaseProbing Phase = iota
	PhaseSelected
	PhaseExhausted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseProbing:
		return "Probing"
	case PhaseSelected:
		return "Selected"
	case PhaseExhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a negotiation state. Index is meaningful for Probing and
// Selected only.
type State struct {
	Phase Phase
	Index int
}

// String returns e.g. "Probing(2)".
func (s State) String() string {
	if s.Phase == PhaseExhausted {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s(%d)", s.Phase, s.Index)
}

// Begin returns the initial state for a plan of planLen attempts starting
// at index start. A negative start is treated as zero.
func Begin(planLen, start int) State {
	if start < 0 {
		start = 0
	}
	if start >= planLen {
		return State{Phase: PhaseExhausted}
	}
	return State{Phase: PhaseProbing, Index: start}
}

// Next is the transition function applied after probing the attempt at
// index. A successful probe selects it; otherwise the next attempt is
// probed, or the plan is exhausted.
func Next(planLen, index int, probeOK bool) State {
	switch {
	case probeOK:
		return State{Phase: PhaseSelected, Index: index}
	case index+1 < planLen:
		return State{Phase: PhaseProbing, Index: index + 1}
	default:
		return State{Phase: PhaseExhausted}
	}
}
