// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
	"log"

	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/params"
	"github.com/emer/stp/stp"
)

// ConnSpec specifies one connection of a Sim: the registered model it is
// created from, and the overrides applied on top of the model defaults.
type ConnSpec struct {
	Name   string     `yaml:"name"`
	Model  string     `yaml:"model"`
	Class  string     `yaml:"class"`
	Port   int        `yaml:"port"`
	Status stp.Status `yaml:"status"`
}

// ModelName returns the registered model of the connection,
// stp.ModelName if none is given.
func (cs *ConnSpec) ModelName() string {
	if cs.Model == "" {
		return stp.ModelName
	}
	return cs.Model
}

// Sim runs a Protocol through a set of connections, each onto its own
// Accumulator, and records the dynamics.  All connections share the
// presynaptic spike train, stepped through Env, and are driven from
// one goroutine.
type Sim struct {
	Time     *stp.Time     `desc:"host time base"`
	Registry *stp.Registry `desc:"models that connections are created from -- DefaultRegistry if nil"`
	Proto    Protocol      `desc:"presynaptic spike protocol"`
	Specs    []ConnSpec    `desc:"connections to create"`
	Params   *params.Sheet `desc:"optional params styling applied to every connection after its status"`
	SetMsg   bool          `desc:"print a message for each param applied"`

	Env   *SpikeEnv                        `view:"-" desc:"steps through the spikes of Proto"`
	Conns []*stp.Connection[stp.PtrTarget] `view:"-"`
	Recvs []*Accumulator                   `view:"-"`
	Rec   *stp.Recorder                    `view:"-"`
}

// NewSim returns a sim with the default time base and protocol,
// recording state every interval msec.
func NewSim(interval float64) *Sim {
	sm := &Sim{}
	sm.Time = stp.NewTime()
	sm.Proto.Defaults()
	sm.Rec = stp.NewRecorder(interval)
	return sm
}

// Config creates the connections from the specs.
func (sm *Sim) Config() error {
	if sm.Time == nil {
		sm.Time = stp.NewTime()
	}
	if sm.Registry == nil {
		sm.Registry = stp.DefaultRegistry
	}
	if sm.Rec == nil {
		sm.Rec = stp.NewRecorder(0)
	}
	sm.Env = NewSpikeEnv("Protocol", &sm.Proto)
	if err := sm.Env.Validate(); err != nil {
		return err
	}
	sm.Conns = make([]*stp.Connection[stp.PtrTarget], len(sm.Specs))
	sm.Recvs = make([]*Accumulator, len(sm.Specs))
	for i := range sm.Specs {
		cs := &sm.Specs[i]
		model := cs.ModelName()
		nm := cs.Name
		if nm == "" {
			nm = fmt.Sprintf("%s_%d", model, i)
		}
		ac := NewAccumulator(nm, sm.Time)
		cn, err := stp.Connect(sm.Registry, model, nm, stp.PtrTarget{Recv: ac, Port: cs.Port}, sm.Time)
		if err != nil {
			return err
		}
		if cs.Class != "" {
			cn.AddClass(cs.Class)
		}
		if err := cn.SetStatus(cs.Status, sm.Time); err != nil {
			return err
		}
		if sm.Params != nil {
			app, err := cn.ApplyParams(sm.Params, sm.SetMsg, sm.Time)
			if err != nil {
				return fmt.Errorf("connection %q: %w", nm, err)
			}
			if app && sm.SetMsg {
				log.Printf("connection %q: applied params\n", nm)
			}
		}
		sm.Conns[i] = cn
		sm.Recvs[i] = ac
	}
	return nil
}

// Synapses returns the synapse of every connection, in Specs order
func (sm *Sim) Synapses() []*stp.Synapse {
	syns := make([]*stp.Synapse, len(sm.Conns))
	for i, cn := range sm.Conns {
		syns[i] = &cn.Synapse
	}
	return syns
}

// Init resets all connection state to the initial state of its model,
// overridden by the initial state given in its ConnSpec, and clears receivers
// and recorded tables.  Parameters are kept.
func (sm *Sim) Init() error {
	for i, cn := range sm.Conns {
		cs := &sm.Specs[i]
		model, err := sm.Registry.Model(cs.ModelName())
		if err != nil {
			return err
		}
		cn.State = model.State
		cn.TLastSpike = model.TLastSpike
		st0 := stp.Status{Util: cs.Status.Util, Res: cs.Status.Res, TLs: cs.Status.TLs}
		if err := cn.SetStatus(st0, sm.Time); err != nil {
			return fmt.Errorf("connection %q: %w", cn.Name(), err)
		}
		sm.Recvs[i].Init()
	}
	sm.Rec.Init()
	return nil
}

// Run steps Env through every spike of the protocol, sending each spike
// through every connection, sampling state before each spike and logging
// each delivered event.  Returns the number of presynaptic spikes.
func (sm *Sim) Run() (int, error) {
	if sm.Env == nil {
		sm.Env = NewSpikeEnv("Protocol", &sm.Proto)
	}
	if err := sm.Env.Validate(); err != nil {
		return 0, err
	}
	sm.Env.Init(0)
	syns := sm.Synapses()
	for sm.Env.Step() {
		t := sm.Env.SpikeTime()
		sm.Rec.SampleTo(t, syns)
		for ci, cn := range sm.Conns {
			ev := &stp.SpikeEvent{Stamp: t}
			if err := cn.Send(ev, 0); err != nil {
				return 0, err
			}
			sm.Rec.LogSpike(ci, ev, &cn.Synapse)
		}
	}
	sm.Rec.SampleTo(sm.Proto.Duration(), syns)
	trl, _, _ := sm.Env.Counter(etime.Trial)
	return trl + 1, nil
}
