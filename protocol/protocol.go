// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package protocol drives short-term plasticity synapses with presynaptic
spike trains and records their responses, for evaluating facilitation
and depression.  The standard protocol is a regular burst, a silent
pause, and a recovery burst.
*/
package protocol

import (
	"fmt"
	"math"
)

// Phase is a stretch of regular presynaptic spiking at a fixed rate
type Phase struct {
	Name     string  `yaml:"name" desc:"name of the phase, for display"`
	Duration float64 `yaml:"duration" desc:"duration of the phase in msec"`
	Rate     float64 `yaml:"rate" desc:"regular spiking rate in Hz -- 0 = silent"`
}

// ISI returns the inter-spike interval in msec, or 0 for a silent phase
func (ph *Phase) ISI() float64 {
	if ph.Rate <= 0 {
		return 0
	}
	return 1000 / ph.Rate
}

// Protocol is a sequence of phases run back to back from Start
type Protocol struct {
	Start  float64 `yaml:"start" desc:"time in msec at which the first phase begins"`
	Phases []Phase `yaml:"phases"`
}

// Defaults sets the standard burst / pause / recovery protocol:
// 500 msec at 20 Hz, 1000 msec silence, 500 msec at 20 Hz.
func (pr *Protocol) Defaults() {
	pr.Start = 0
	pr.Phases = []Phase{
		{Name: "Burst", Duration: 500, Rate: 20},
		{Name: "Pause", Duration: 1000, Rate: 0},
		{Name: "Recovery", Duration: 500, Rate: 20},
	}
}

// MaxSpikes bounds the number of spikes in one protocol
const MaxSpikes = 10000000

// Validate checks that the start, durations and rates are finite and not
// negative, and that the protocol has at most MaxSpikes spikes.
func (pr *Protocol) Validate() error {
	if !finite(pr.Start) {
		return fmt.Errorf("protocol: start %v is not finite", pr.Start)
	}
	nspk := 0.0
	for i := range pr.Phases {
		ph := &pr.Phases[i]
		if ph.Duration < 0 || !finite(ph.Duration) {
			return fmt.Errorf("protocol phase %d %q: duration %v must be finite and >= 0", i, ph.Name, ph.Duration)
		}
		if ph.Rate < 0 || !finite(ph.Rate) {
			return fmt.Errorf("protocol phase %d %q: rate %v must be finite and >= 0", i, ph.Name, ph.Rate)
		}
		nspk += ph.Duration * ph.Rate / 1000
	}
	if nspk > MaxSpikes {
		return fmt.Errorf("protocol: about %.0f spikes, more than MaxSpikes = %d", nspk, MaxSpikes)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Duration returns the end time of the last phase
func (pr *Protocol) Duration() float64 {
	end := pr.Start
	for _, ph := range pr.Phases {
		end += ph.Duration
	}
	return end
}

// SpikeTimes returns the presynaptic spike times of the whole protocol,
// in increasing order.  Each spiking phase fires one ISI after its start
// and then every ISI, strictly before its end.  An invalid protocol
// has no spikes.
func (pr *Protocol) SpikeTimes() []float64 {
	tms, _ := pr.spikes()
	return tms
}

// spikes returns the spike times and the phase index of each spike
func (pr *Protocol) spikes() ([]float64, []int) {
	if pr.Validate() != nil {
		return nil, nil
	}
	var tms []float64
	var phs []int
	st := pr.Start
	for pi, ph := range pr.Phases {
		isi := ph.ISI()
		if isi > 0 {
			for k := 1; ; k++ {
				t := st + float64(k)*isi
				if t >= st+ph.Duration {
					break
				}
				tms = append(tms, t)
				phs = append(phs, pi)
			}
		}
		st += ph.Duration
	}
	return tms, phs
}
