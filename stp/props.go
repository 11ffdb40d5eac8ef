// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Props are the named configuration properties of the synapse,
// as used in Status maps.  String returns the property name.
type Props int32

//go:generate stringer -output props_string.go -type=Props -linecomment

var KiT_Props = kit.Enums.AddEnum(PropsN, kit.NotBitFlag, nil)

func (ev Props) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Props) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The synapse properties
const (
	// PropWeight is the host-level name for the weight scale w
	PropWeight Props = iota // weight

	// PropW is the model-level name for the weight scale w
	PropW // w

	// PropU is the baseline utilization parameter
	PropU // U

	PropTauRec // tau_rec

	PropTauFac // tau_fac

	PropDelay // delay

	// PropUtil is the utilization state u
	PropUtil // u

	// PropRes is the available resources state x
	PropRes // x

	PropTLs // t_ls

	PropsN
)

// PropsMap maps property names onto Props
var PropsMap map[string]Props

func init() {
	PropsMap = make(map[string]Props, PropsN)
	for p := PropWeight; p < PropsN; p++ {
		PropsMap[p.String()] = p
	}
}

// PropByName returns the property with the given name, or an ErrValidation error
func PropByName(name string) (Props, error) {
	p, ok := PropsMap[name]
	if !ok {
		return PropsN, fmt.Errorf("%w: unknown synapse property %q", ErrValidation, name)
	}
	return p, nil
}
