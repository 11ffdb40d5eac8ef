// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/emer/emergent/v2/params"
)

func newTestSyn() *Synapse {
	sy := &Synapse{}
	sy.Defaults()
	sy.Update(NewTime())
	return sy
}

func TestStatusDefaults(t *testing.T) {
	sy := newTestSyn()
	st := sy.Status()
	cor := map[string]float64{
		"weight": 1, "w": 1, "U": 0.19, "tau_rec": 200, "tau_fac": 1500,
		"delay": 1, "u": 0.19, "x": 1, "t_ls": 0,
	}
	if !reflect.DeepEqual(st, cor) {
		t.Errorf("default status: %v\nshould be: %v\n", st, cor)
	}
}

func TestSetStatusAliasConflict(t *testing.T) {
	sy := newTestSyn()
	before := sy.Status()

	err := sy.SetStatus(Status{Weight: Float(2), W: Float(3)}, nil)
	if !errors.Is(err, ErrConfigConflict) {
		t.Errorf("expected ErrConfigConflict, got: %v\n", err)
	}
	if after := sy.Status(); !reflect.DeepEqual(before, after) {
		t.Errorf("status changed by rejected call: %v\nwas: %v\n", after, before)
	}

	err = sy.SetStatusMap(map[string]float64{"weight": 2, "w": 3, "U": 0.5}, nil)
	if !errors.Is(err, ErrConfigConflict) {
		t.Errorf("map: expected ErrConfigConflict, got: %v\n", err)
	}
	if sy.STP.U != 0.19 {
		t.Errorf("U changed by rejected call: %v\n", sy.STP.U)
	}
}

func TestSetStatusPartial(t *testing.T) {
	sy := newTestSyn()
	tm := NewTime()
	if err := sy.SetStatus(Status{W: Float(2.5), TauFac: Float(50), Res: Float(0.7)}, tm); err != nil {
		t.Fatal(err)
	}
	if sy.Weight != 2.5 || sy.STP.TauFac != 50 || sy.State.X != 0.7 {
		t.Errorf("fields not set: %+v\n", sy)
	}
	if sy.STP.TauRec != 200 || sy.State.U != 0.19 {
		t.Errorf("unset fields changed: %+v\n", sy)
	}
	if err := sy.SetStatus(Status{Weight: Float(-4)}, tm); err != nil {
		t.Fatal(err)
	}
	st := sy.Status()
	if st["weight"] != -4 || st["w"] != -4 {
		t.Errorf("weight aliases disagree: %v %v\n", st["weight"], st["w"])
	}
}

func TestSetStatusValidation(t *testing.T) {
	sy := newTestSyn()
	tm := NewTime()
	before := *sy

	bad := []Status{
		{Delay: Float(0.01), U: Float(0.5)},
		{Delay: Float(0), Util: Float(0.9)},
		{TauRec: Float(0), Weight: Float(7)},
		{TauFac: Float(-10)},
		{Delay: Float(-2)},
	}
	for i, st := range bad {
		err := sy.SetStatus(st, tm)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("bad status %v: expected ErrValidation, got: %v\n", i, err)
		}
		if *sy != before {
			t.Errorf("bad status %v: synapse changed: %+v\n", i, *sy)
		}
	}

	tm.MaxDelay = 20
	if err := sy.SetStatus(Status{Delay: Float(25)}, tm); !errors.Is(err, ErrValidation) {
		t.Errorf("delay over max: expected ErrValidation, got: %v\n", err)
	}
}

func TestSetStatusRecomputes(t *testing.T) {
	sy := newTestSyn()
	tm := &Time{Resolution: 0.25}
	if err := sy.SetStatus(Status{Delay: Float(1.5)}, tm); err != nil {
		t.Fatal(err)
	}
	if sy.DelaySteps != 6 {
		t.Errorf("DelaySteps: %v, should be 6\n", sy.DelaySteps)
	}
	if sy.StepSize() != 0.25 {
		t.Errorf("StepSize: %v, should be 0.25\n", sy.StepSize())
	}
}

func TestStatusFromMap(t *testing.T) {
	st, err := StatusFromMap(map[string]float64{"tau_rec": 80, "t_ls": 3, "U": 0.4, "u": 0.6})
	if err != nil {
		t.Fatal(err)
	}
	if *st.TauRec != 80 || *st.TLs != 3 || *st.U != 0.4 || *st.Util != 0.6 || st.Weight != nil {
		t.Errorf("bad status: %v\n", st.Map())
	}
	if _, err := StatusFromMap(map[string]float64{"tau_d": 80}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown name: expected ErrValidation, got: %v\n", err)
	}

	st.Merge(Status{TauRec: Float(90), W: Float(2)})
	if m := st.Map(); m["tau_rec"] != 90 || m["w"] != 2 || m["U"] != 0.4 || len(m) != 5 {
		t.Errorf("merge: %v\n", m)
	}
}

func TestStatusJSON(t *testing.T) {
	var st Status
	if err := json.Unmarshal([]byte(`{"U": 0.3, "u": 0.5, "x": 0.9, "weight": 4}`), &st); err != nil {
		t.Fatal(err)
	}
	if *st.U != 0.3 || *st.Util != 0.5 || *st.Res != 0.9 || *st.Weight != 4 || st.W != nil {
		t.Errorf("bad status from json: %v\n", st.Map())
	}
}

func TestVarByName(t *testing.T) {
	sy := newTestSyn()
	for _, nm := range sy.VarNames() {
		v, err := sy.VarByName(nm)
		if err != nil {
			t.Error(err)
		}
		if err := sy.SetVarByName(nm, v+1); err != nil {
			t.Error(err)
		}
	}
	if sy.Weight != 3 { // both aliases incremented
		t.Errorf("Weight: %v, should be 3\n", sy.Weight)
	}
	if _, err := sy.VarByName("y"); err == nil {
		t.Errorf("expected error for unknown var\n")
	}
}

func TestPropsJSON(t *testing.T) {
	b, err := json.Marshal(PropTauRec)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"tau_rec"` {
		t.Errorf("Props json: %s\n", b)
	}
	var p Props
	if err := json.Unmarshal([]byte(`"t_ls"`), &p); err != nil {
		t.Fatal(err)
	}
	if p != PropTLs {
		t.Errorf("Props from json: %v\n", p)
	}
}

func TestApplyParams(t *testing.T) {
	tm := NewTime()
	sy := newTestSyn()
	sy.Nm = "EtoE"
	sy.SetClass("Exc")

	sheet := &params.Sheet{
		{Sel: "Synapse", Desc: "all synapses",
			Params: params.Params{
				"Synapse.STP.TauRec": "100",
			}},
		{Sel: ".Exc", Desc: "excitatory facilitating",
			Params: params.Params{
				"Synapse.STP.U":      "0.1",
				"Synapse.STP.TauFac": "1000",
			}},
		{Sel: "#Other", Desc: "not this one",
			Params: params.Params{
				"Synapse.Weight": "5",
			}},
	}
	app, err := sy.ApplyParams(sheet, false, tm)
	if err != nil {
		t.Fatal(err)
	}
	if !app {
		t.Errorf("params not applied\n")
	}
	if sy.STP.TauRec != 100 || sy.STP.U != 0.1 || sy.STP.TauFac != 1000 || sy.Weight != 1 {
		t.Errorf("params not applied correctly: %+v\n", sy.STP)
	}

	before := *sy
	bad := &params.Sheet{
		{Sel: "Synapse", Desc: "illegal",
			Params: params.Params{
				"Synapse.STP.TauRec": "-1",
				"Synapse.Weight":     "9",
			}},
	}
	if _, err := sy.ApplyParams(bad, false, tm); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v\n", err)
	}
	if *sy != before {
		t.Errorf("synapse changed by rejected params: %+v\n", *sy)
	}
}

func TestSynapseType(t *testing.T) {
	sy := newTestSyn()
	if sy.TypeName() != "Synapse" {
		t.Errorf("TypeName: %v\n", sy.TypeName())
	}
	if typ := reflect.TypeOf(*sy); typ != KiT_Synapse {
		t.Errorf("registered type: %v, should be: %v\n", KiT_Synapse, typ)
	}
}
