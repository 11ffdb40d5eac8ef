// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import "errors"

var (
	// ErrConfigConflict is returned when both weight aliases, "weight" and "w",
	// are supplied in one configuration call.
	ErrConfigConflict = errors.New("stp: set either 'weight' or 'w', not both at the same time")

	// ErrValidation is returned when a staged configuration fails validation,
	// e.g., an illegal delay or a non-positive time constant.
	ErrValidation = errors.New("stp: invalid configuration")

	// ErrCausalityViolation is returned by Send for a spike earlier than
	// the last one processed by the connection.
	ErrCausalityViolation = errors.New("stp: spike delivered out of time order")

	// ErrUnknownModel is returned for a model name that is not registered.
	ErrUnknownModel = errors.New("stp: unknown synapse model")

	// ErrModelExists is returned by CopyModel when the new name is taken.
	ErrModelExists = errors.New("stp: synapse model already exists")

	// ErrNoTarget is returned by Send when the target does not resolve
	// to a receiver on the sending thread.
	ErrNoTarget = errors.New("stp: connection target has no receiver")
)
