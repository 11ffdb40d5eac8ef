// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

// State holds the dynamic short-term plasticity variables of one synapse.
// They are advanced by STPParams.Relax and STPParams.Spike, and can be set
// directly through the status layer before any spike is processed.
type State struct {
	U   float64 `desc:"utilization trace u -- fraction of the available resources released by the next spike, facilitated by each spike"`
	X   float64 `desc:"available resource fraction x -- depressed by each spike and recovering toward 1"`
	TLs float64 `desc:"time in msec at which U and X were last advanced"`
}

// Init sets the state to its initial values given the parameters
func (st *State) Init(sp *STPParams) {
	st.U = sp.U
	st.X = 1
	st.TLs = 0
}
