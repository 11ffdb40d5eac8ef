// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protocol

import (
	"fmt"

	"github.com/emer/emergent/v2/env"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/etable/v2/etensor"
)

// SpikeEnv presents a Protocol as an environment, where each Step
// advances to the next presynaptic spike.  The Trial counter is the
// index of the current spike within the protocol.
type SpikeEnv struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// the spike protocol
	Proto *Protocol `desc:"the spike protocol"`

	// time in msec of the current spike, shape [1]
	Time *etensor.Float64 `desc:"time in msec of the current spike, shape [1]"`

	// index of the protocol phase of the current spike
	PhaseIdx int `inactive:"+" desc:"index of the protocol phase of the current spike"`

	// current run as provided during Init
	Run env.Ctr `view:"inline" desc:"current run as provided during Init"`

	// spike counter within the protocol
	Trial env.Ctr `view:"inline" desc:"spike counter within the protocol"`

	times  []float64
	phases []int
}

// NewSpikeEnv returns an environment stepping through the spikes of pr
func NewSpikeEnv(name string, pr *Protocol) *SpikeEnv {
	ev := &SpikeEnv{Nm: name, Dsc: "presynaptic spike protocol", Proto: pr}
	ev.Init(0)
	return ev
}

func (ev *SpikeEnv) Name() string  { return ev.Nm }
func (ev *SpikeEnv) Desc() string  { return ev.Dsc }
func (ev *SpikeEnv) Label() string { return ev.Nm }

func (ev *SpikeEnv) Validate() error {
	if ev.Proto == nil {
		return fmt.Errorf("SpikeEnv: %v has no Proto set", ev.Nm)
	}
	return ev.Proto.Validate()
}

func (ev *SpikeEnv) Counters() []etime.Times {
	return []etime.Times{etime.Run, etime.Trial}
}

func (ev *SpikeEnv) States() env.Elements {
	return env.Elements{
		{Name: "Time", Shape: []int{1}, DimNames: []string{"Time"}},
	}
}

func (ev *SpikeEnv) State(element string) etensor.Tensor {
	switch element {
	case "Time":
		return ev.Time
	}
	return nil
}

func (ev *SpikeEnv) Actions() env.Elements {
	return nil
}

// String returns the current spike as a string
func (ev *SpikeEnv) String() string {
	if ev.Trial.Cur < 0 || ev.Trial.Cur >= len(ev.times) {
		return "NoSpike"
	}
	return fmt.Sprintf("%s_%g", ev.Phase().Name, ev.SpikeTime())
}

// Init is called to restart the protocol.  The spike train is recomputed
// from Proto, so changes to it take effect here.
func (ev *SpikeEnv) Init(run int) {
	ev.Run.Scale = etime.Run
	ev.Trial.Scale = etime.Trial
	ev.Run.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
	if ev.Time == nil {
		ev.Time = etensor.NewFloat64([]int{1}, nil, []string{"Time"})
	}
	ev.Time.Values[0] = 0
	ev.PhaseIdx = -1
	ev.times, ev.phases = nil, nil
	if ev.Proto != nil {
		ev.times, ev.phases = ev.Proto.spikes()
	}
}

// Step advances to the next spike, returning false when the protocol is done
func (ev *SpikeEnv) Step() bool {
	if ev.Trial.Cur+1 >= len(ev.times) {
		return false
	}
	ev.Trial.Incr()
	ev.Time.Values[0] = ev.times[ev.Trial.Cur]
	ev.PhaseIdx = ev.phases[ev.Trial.Cur]
	return true
}

func (ev *SpikeEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *SpikeEnv) Counter(scale etime.Times) (cur, prv int, chg bool) {
	switch scale {
	case etime.Run:
		return ev.Run.Query()
	case etime.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// SpikeTime returns the time in msec of the current spike
func (ev *SpikeEnv) SpikeTime() float64 {
	return ev.Time.Values[0]
}

// Phase returns the protocol phase of the current spike, nil before the first Step
func (ev *SpikeEnv) Phase() *Phase {
	if ev.PhaseIdx < 0 || ev.Proto == nil {
		return nil
	}
	return &ev.Proto.Phases[ev.PhaseIdx]
}

// NSpikes returns the number of spikes in the protocol, as of the last Init
func (ev *SpikeEnv) NSpikes() int {
	return len(ev.times)
}

// Compile-time check that implements Env interface
var _ env.Env = (*SpikeEnv)(nil)
