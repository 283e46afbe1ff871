// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

// lif.Time contains the timing state for running LIF dynamics over a
// sequence of integration steps
type Time struct {

	// accumulated amount of time the dynamics have been running,
	// in simulation-time (not real world time), in seconds.
	Time float32

	// number of integration steps taken since last Reset
	Step int

	// amount of time to increment per step -- should match the Dt
	// used by the cells being stepped.
	TimePerStep float32 `def:"0.001"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerStep = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.TimePerStep == 0 {
		tm.Defaults()
	}
}

// StepInc increments the step counter and accumulates time
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time += tm.TimePerStep
}
