// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"
	"math"
)

// stp.Time is the host time base that connections are configured against:
// the simulation resolution, which determines how delays in msec map onto
// discrete delivery steps and which delays are legal.
type Time struct {

	// simulation step size in msec -- delays are rounded to a whole
	// number of steps, and must be at least one step.
	Resolution float64 `def:"0.1" min:"0"`

	// largest legal delay in msec, 0 = no upper bound.
	MaxDelay float64 `def:"0"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Resolution = 0.1
	tm.MaxDelay = 0
}

// DelaySteps converts a delay in msec to the nearest whole number of steps
func (tm *Time) DelaySteps(ms float64) int64 {
	return int64(math.Round(ms / tm.Resolution))
}

// StepsToMs converts a number of steps back to msec
func (tm *Time) StepsToMs(steps int64) float64 {
	return float64(steps) * tm.Resolution
}

// ValidateDelay returns an ErrValidation error if the delay cannot be
// represented on this time base: non-finite, shorter than one step,
// or longer than MaxDelay.
func (tm *Time) ValidateDelay(ms float64) error {
	switch {
	case !(tm.Resolution > 0):
		return fmt.Errorf("%w: resolution %v msec must be positive", ErrValidation, tm.Resolution)
	case math.IsNaN(ms) || math.IsInf(ms, 0):
		return fmt.Errorf("%w: delay %v is not finite", ErrValidation, ms)
	case ms < tm.Resolution:
		return fmt.Errorf("%w: delay %v msec is less than the resolution %v msec", ErrValidation, ms, tm.Resolution)
	case tm.MaxDelay > 0 && ms > tm.MaxDelay:
		return fmt.Errorf("%w: delay %v msec exceeds the maximum delay %v msec", ErrValidation, ms, tm.MaxDelay)
	}
	return nil
}

// orDefault returns tm, or a default Time if tm is nil
func (tm *Time) orDefault() *Time {
	if tm == nil {
		return NewTime()
	}
	return tm
}
