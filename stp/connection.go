// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"
	"log"
)

// SpikeEvent is a presynaptic spike on its way through a connection.
// The sender sets Stamp; Send fills in the rest before delivery.
type SpikeEvent struct {

	// spike time in msec
	Stamp float64

	// receiver the event is delivered to
	Receiver Receiver

	// effective weight of this spike: w * u * x
	Weight float64

	// transmission delay in host time steps
	DelaySteps int64

	// receptor port on the receiver
	RPort int
}

// Connection is a short-term plasticity synapse onto a fixed target,
// generic over how the host refers to that target.
// A connection must only be used from one goroutine at a time:
// spikes are delivered and status set strictly in sequence.
type Connection[T TargetRef] struct {
	Synapse
	Target T
}

// NewConnection returns a connection to target, starting from a copy of
// the prototype synapse, with derived values updated for the time base.
func NewConnection[T TargetRef](proto *Synapse, target T, tm *Time) *Connection[T] {
	cn := &Connection[T]{Synapse: *proto, Target: target}
	cn.Update(tm)
	return cn
}

// Send processes a presynaptic spike at ev.Stamp: advances the STP state,
// computes the effective weight, and delivers the event to the target
// resolved for thread.  A spike earlier than the last processed spike or
// the last state update returns ErrCausalityViolation, and a target that
// does not resolve on thread returns ErrNoTarget, in both cases with
// nothing changed or delivered.
func (cn *Connection[T]) Send(ev *SpikeEvent, thread int) error {
	t := ev.Stamp
	tPrev := cn.TLastSpike
	if tPrev < 0 { // first spike
		tPrev = 0
	}
	if t < tPrev || t < cn.State.TLs {
		return fmt.Errorf("%w: synapse %q got spike at %v msec after %v msec (state at %v msec)", ErrCausalityViolation, cn.Nm, t, tPrev, cn.State.TLs)
	}
	recv := cn.Target.Target(thread)
	if recv == nil {
		return fmt.Errorf("%w: synapse %q on thread %d", ErrNoTarget, cn.Nm, thread)
	}
	if cn.STP.Relax(&cn.State, tPrev, t) {
		cn.h = t - tPrev
	} else if debugSTP {
		log.Printf("stp: synapse %q: interval %v msec below %v at %v msec, skipping relaxation\n", cn.Nm, t-tPrev, MinStep, t)
	}
	wt := cn.STP.Spike(&cn.State, cn.Weight, t)

	ev.Receiver = recv
	ev.Weight = wt
	ev.DelaySteps = cn.DelaySteps
	ev.RPort = cn.Target.RPort()
	ev.Receiver.HandleSpike(ev)

	cn.TLastSpike = t
	return nil
}
