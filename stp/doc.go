// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stp implements the Tsodyks-Markram short-term plasticity synapse
for discrete-event spiking simulations: use-dependent facilitation of the
release probability u and depression of the available resources x, both
relaxing back toward baseline with exact exponential decay between spikes.

Each presynaptic spike delivered through Connection.Send advances the
synapse state across the elapsed interval, applies the facilitation
increment, scales the outgoing event by w * u * x, and then depresses
the resources by the released fraction:

	x = 1 + (x - 1) * exp(-dt / TauRec)
	u = U + (u - U) * exp(-dt / TauFac)
	u = u + U * (1 - u)
	weight = w * u * x
	x = x - u * x

Spike delivery for a given synapse must be serialized and in
non-decreasing time order. A spike earlier than the last processed one
is rejected with ErrCausalityViolation.

Configuration goes through the typed Status record (SetStatus / Status)
or through emergent params.Sheet styling (ApplyParams). Both stage the
changes on a copy, validate them against the host Time base, and commit
all-or-nothing.

Synapse models are exposed by name in a Registry; CopyModel derives new
named models with different defaults.
*/
package stp
