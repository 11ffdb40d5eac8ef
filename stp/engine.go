// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import "math"

// MinStep is the smallest interval in msec between processed spikes
// over which the continuous dynamics are advanced. Shorter intervals,
// including repeated timestamps, leave the state untouched in Relax.
const MinStep = 1e-12

// Decay relaxes the resources x toward 1 and the utilization u toward U
// over the interval dt in msec, using the exact exponential solution.
// Time constants are not checked: non-positive values produce
// non-finite results.
func (sp *STPParams) Decay(st *State, dt float64) {
	st.X = 1 + (st.X-1)*math.Exp(-dt/sp.TauRec)
	st.U = sp.U + (st.U-sp.U)*math.Exp(-dt/sp.TauFac)
}

// Relax advances the state to time t, given the time tPrev of the last
// processed spike. It returns false and does nothing when t - tPrev is
// below MinStep.
func (sp *STPParams) Relax(st *State, tPrev, t float64) bool {
	if t-tPrev < MinStep {
		return false
	}
	sp.Decay(st, t-st.TLs)
	st.TLs = t
	return true
}

// Spike applies the transition triggered by a presynaptic spike at time t
// and returns the effective weight w * u * x to deliver with it.
// Any interval since TLs is decayed first, then u is facilitated,
// the weight is computed, and x is depressed by the released fraction u * x.
// This runs for every spike, so coincident spikes each depress x.
func (sp *STPParams) Spike(st *State, w, t float64) float64 {
	sp.Decay(st, t-st.TLs)
	st.U += sp.U * (1 - st.U)
	wt := w * st.U * st.X
	st.X -= st.U * st.X
	st.TLs = t
	return wt
}
