// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protocol

import "github.com/emer/stp/stp"

// Accumulator is a stand-in postsynaptic node that sums the weights
// of the events delivered to it, per receptor port.
type Accumulator struct {
	Name  string
	N     int             `desc:"number of events received"`
	Sum   map[int]float64 `desc:"summed weight per receptor port"`
	Times []float64       `desc:"arrival step time of each event in msec: stamp + delay"`
	Wts   []float64       `desc:"weight of each event"`

	tm *stp.Time
}

// NewAccumulator returns an accumulator converting delays on time base tm,
// or the default time base if nil.
func NewAccumulator(name string, tm *stp.Time) *Accumulator {
	if tm == nil {
		tm = stp.NewTime()
	}
	ac := &Accumulator{Name: name, tm: tm}
	ac.Init()
	return ac
}

// Init clears everything received
func (ac *Accumulator) Init() {
	ac.N = 0
	ac.Sum = make(map[int]float64)
	ac.Times = nil
	ac.Wts = nil
}

func (ac *Accumulator) HandleSpike(ev *stp.SpikeEvent) {
	ac.N++
	ac.Sum[ev.RPort] += ev.Weight
	ac.Times = append(ac.Times, ev.Stamp+ac.tm.StepsToMs(ev.DelaySteps))
	ac.Wts = append(ac.Wts, ev.Weight)
}

// Total returns the summed weight over all ports
func (ac *Accumulator) Total() float64 {
	tot := 0.0
	for _, v := range ac.Sum {
		tot += v
	}
	return tot
}
