// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"
	"math"

	"github.com/emer/emergent/v2/params"
	"github.com/goki/ki/ki"
	"github.com/goki/ki/kit"
)

// stp.Synapse is the target-independent part of a short-term plasticity
// connection: weight scale, delay, STP parameters and dynamic state,
// and the spike-time bookkeeping.  Connection adds the target reference.
type Synapse struct {
	Weight float64   `def:"1" desc:"static weight scale w -- effective weight of each spike is Weight * u * x"`
	Delay  float64   `def:"1" min:"0" desc:"transmission delay in msec -- must be legal on the host Time base"`
	STP    STPParams `view:"inline" desc:"short-term plasticity parameters"`
	State  State     `desc:"dynamic short-term plasticity state"`

	DelaySteps int64   `inactive:"+" desc:"Delay in host time steps, computed in Update"`
	TLastSpike float64 `inactive:"+" desc:"time in msec of the last processed spike, negative before the first spike"`
	Nm         string  `desc:"name of this synapse, for params selectors"`
	Cls        string  `desc:"space-separated classes, for params selectors"`

	h float64
}

var KiT_Synapse = kit.Types.AddType(&Synapse{}, SynapseProps)

var SynapseProps = ki.Props{}

// Defaults sets default parameter and initial state values
func (sy *Synapse) Defaults() {
	sy.Weight = 1
	sy.Delay = 1
	sy.STP.Defaults()
	sy.InitState()
}

// InitState resets the dynamic state and spike bookkeeping to initial values
func (sy *Synapse) InitState() {
	sy.State.Init(&sy.STP)
	sy.TLastSpike = -1
}

// Update recomputes values derived from the parameters and the time base:
// the delay in steps and the step size cache.
func (sy *Synapse) Update(tm *Time) {
	tm = tm.orDefault()
	sy.STP.Update()
	sy.DelaySteps = tm.DelaySteps(sy.Delay)
	sy.h = tm.Resolution
}

// Validate checks the parameters against the time base, returning
// an ErrValidation error for the first problem found.
func (sy *Synapse) Validate(tm *Time) error {
	tm = tm.orDefault()
	if err := tm.ValidateDelay(sy.Delay); err != nil {
		return err
	}
	if !(sy.STP.TauRec > 0) || math.IsInf(sy.STP.TauRec, 0) {
		return fmt.Errorf("%w: tau_rec %v msec must be positive and finite", ErrValidation, sy.STP.TauRec)
	}
	if !(sy.STP.TauFac > 0) || math.IsInf(sy.STP.TauFac, 0) {
		return fmt.Errorf("%w: tau_fac %v msec must be positive and finite", ErrValidation, sy.STP.TauFac)
	}
	return nil
}

// StepSize returns the current step size cache in msec: the host
// resolution after configuration, and the last inter-spike interval
// over which the dynamics were advanced after that.
func (sy *Synapse) StepSize() float64 {
	return sy.h
}

func (sy *Synapse) TypeName() string { return KiT_Synapse.Name() } // always, for params..
func (sy *Synapse) Class() string    { return sy.Cls }
func (sy *Synapse) Name() string     { return sy.Nm }

// SetClass sets the params classes of this synapse
func (sy *Synapse) SetClass(cls string) *Synapse { sy.Cls = cls; return sy }

// AddClass adds a params class to this synapse
func (sy *Synapse) AddClass(cls string) { sy.Cls = params.AddClass(sy.Cls, cls) }

// ApplyParams applies given parameter style Sheet to this synapse.
// The sheet is applied to a copy, which is validated against the time
// base before being committed, so on error the synapse is unchanged.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// returns true if any params were set, and error if there were any errors.
func (sy *Synapse) ApplyParams(pars *params.Sheet, setMsg bool, tm *Time) (bool, error) {
	stage := *sy
	app, err := pars.Apply(&stage, setMsg)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !app {
		return false, nil
	}
	if err := stage.Validate(tm); err != nil {
		return false, err
	}
	stage.Update(tm)
	*sy = stage
	return true, nil
}

// VarNames returns the property names of the synapse variables
func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVars are the names of all synapse properties, in Props order
var SynapseVars = func() []string {
	nms := make([]string, PropsN)
	for p := PropWeight; p < PropsN; p++ {
		nms[p] = p.String()
	}
	return nms
}()

// VarByProp returns the value of the given property
func (sy *Synapse) VarByProp(p Props) float64 {
	switch p {
	case PropWeight, PropW:
		return sy.Weight
	case PropU:
		return sy.STP.U
	case PropTauRec:
		return sy.STP.TauRec
	case PropTauFac:
		return sy.STP.TauFac
	case PropDelay:
		return sy.Delay
	case PropUtil:
		return sy.State.U
	case PropRes:
		return sy.State.X
	case PropTLs:
		return sy.State.TLs
	}
	return math.NaN()
}

// SetVarByProp sets the given property without any validation.
// Use SetStatus for validated, all-or-nothing configuration.
func (sy *Synapse) SetVarByProp(p Props, val float64) {
	switch p {
	case PropWeight, PropW:
		sy.Weight = val
	case PropU:
		sy.STP.U = val
	case PropTauRec:
		sy.STP.TauRec = val
	case PropTauFac:
		sy.STP.TauFac = val
	case PropDelay:
		sy.Delay = val
	case PropUtil:
		sy.State.U = val
	case PropRes:
		sy.State.X = val
	case PropTLs:
		sy.State.TLs = val
	}
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float64, error) {
	p, err := PropByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByProp(p), nil
}

// SetVarByName sets synapse variable to given value
func (sy *Synapse) SetVarByName(varNm string, val float64) error {
	p, err := PropByName(varNm)
	if err != nil {
		return err
	}
	sy.SetVarByProp(p, val)
	return nil
}
