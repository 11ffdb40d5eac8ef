// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stp is the overall repository for the Tsodyks-Markram short-term
plasticity synapse, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* stp: the synapse itself: parameters and state, the exact event-driven
update applied at each presynaptic spike, status get / set by property name,
params styling, the model registry, and etable recording of the dynamics.

* protocol: presynaptic spike protocols (bursts, pauses, recovery trains) and a
small Sim that drives any number of connections through one protocol onto
accumulating receivers.

* examples: these actually compile into runnable programs.  examples/stpsim is
a command-line simulator comparing facilitating and depressing synapses, and
the place to start for configuring your own models.
*/
package stp
