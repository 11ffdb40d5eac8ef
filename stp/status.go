// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import "fmt"

// Status is a partial configuration of a synapse: every non-nil field is
// applied by SetStatus, nil fields are left as they are.
// Weight and W are two names for the same weight scale, and at most one
// of them may be set.
type Status struct {
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	W      *float64 `json:"w,omitempty" yaml:"w,omitempty"`
	U      *float64 `json:"U,omitempty" yaml:"U,omitempty"`
	TauRec *float64 `json:"tau_rec,omitempty" yaml:"tau_rec,omitempty"`
	TauFac *float64 `json:"tau_fac,omitempty" yaml:"tau_fac,omitempty"`
	Delay  *float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
	Util   *float64 `json:"u,omitempty" yaml:"u,omitempty"`
	Res    *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	TLs    *float64 `json:"t_ls,omitempty" yaml:"t_ls,omitempty"`
}

// Float returns a pointer to v, for filling in Status fields
func Float(v float64) *float64 { return &v }

// Field returns a pointer to the Status field for the given property
func (st *Status) Field(p Props) **float64 {
	switch p {
	case PropWeight:
		return &st.Weight
	case PropW:
		return &st.W
	case PropU:
		return &st.U
	case PropTauRec:
		return &st.TauRec
	case PropTauFac:
		return &st.TauFac
	case PropDelay:
		return &st.Delay
	case PropUtil:
		return &st.Util
	case PropRes:
		return &st.Res
	case PropTLs:
		return &st.TLs
	}
	return nil
}

// StatusFromMap converts a name-keyed map of property values into a Status.
// Unknown names are an ErrValidation error.
func StatusFromMap(m map[string]float64) (Status, error) {
	var st Status
	for nm, v := range m {
		p, err := PropByName(nm)
		if err != nil {
			return Status{}, err
		}
		*st.Field(p) = Float(v)
	}
	return st, nil
}

// Map returns the set fields of the status as a name-keyed map
func (st *Status) Map() map[string]float64 {
	m := make(map[string]float64)
	for p := PropWeight; p < PropsN; p++ {
		if v := *st.Field(p); v != nil {
			m[p.String()] = *v
		}
	}
	return m
}

// Merge overrides fields of st with the fields set in other
func (st *Status) Merge(other Status) {
	for p := PropWeight; p < PropsN; p++ {
		if v := *other.Field(p); v != nil {
			*st.Field(p) = Float(*v)
		}
	}
}

// CheckAliases returns ErrConfigConflict if both weight aliases are set
func (st *Status) CheckAliases() error {
	if st.Weight != nil && st.W != nil {
		return ErrConfigConflict
	}
	return nil
}

// stage writes all set fields of st onto sy
func (st *Status) stage(sy *Synapse) {
	for p := PropWeight; p < PropsN; p++ {
		if v := *st.Field(p); v != nil {
			sy.SetVarByProp(p, *v)
		}
	}
}

// Status returns every property of the synapse by name, including both
// weight aliases.
func (sy *Synapse) Status() map[string]float64 {
	m := make(map[string]float64, PropsN)
	for p := PropWeight; p < PropsN; p++ {
		m[p.String()] = sy.VarByProp(p)
	}
	return m
}

// SetStatus applies the set fields of st.  All values are staged on a copy
// and validated against the time base before anything is committed:
// ErrConfigConflict if both weight aliases are given, ErrValidation for
// an illegal delay or time constant.  On error the synapse is unchanged.
// Derived values are recomputed after a successful commit.
func (sy *Synapse) SetStatus(st Status, tm *Time) error {
	if err := st.CheckAliases(); err != nil {
		return err
	}
	stage := *sy
	st.stage(&stage)
	if err := stage.Validate(tm); err != nil {
		return fmt.Errorf("synapse %q: %w", sy.Nm, err)
	}
	stage.Update(tm)
	*sy = stage
	return nil
}

// SetStatusMap is SetStatus with a name-keyed map of values
func (sy *Synapse) SetStatusMap(m map[string]float64, tm *Time) error {
	st, err := StatusFromMap(m)
	if err != nil {
		return err
	}
	return sy.SetStatus(st, tm)
}
