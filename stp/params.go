// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

// STPParams are the short-term plasticity parameters of the Tsodyks-Markram
// synapse: the baseline utilization and the two recovery time constants.
// These do not change across spikes.
type STPParams struct {
	U      float64 `def:"0.19" min:"0" max:"1" desc:"baseline utilization of synaptic efficacy -- the release probability that u relaxes back to, and the facilitation increment fraction applied on each spike"`
	TauRec float64 `def:"200" min:"0" desc:"time constant in msec for recovery of the available resources x back to 1 after depression"`
	TauFac float64 `def:"1500" min:"0" desc:"time constant in msec for decay of the utilization u back to the baseline U after facilitation"`
}

func (sp *STPParams) Defaults() {
	sp.U = 0.19
	sp.TauRec = 200
	sp.TauFac = 1500
}

func (sp *STPParams) Update() {
}
