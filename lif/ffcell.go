// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "github.com/emer/etable/v2/etensor"

// lif.FeedForwardCell applies the LIF dynamics elementwise to an input
// that is already a current (e.g., the output of an external linear or
// convolutional projection), over an arbitrary feature shape.  It has
// no trainable parameters and, like Cell, retains no state internally.
type FeedForwardCell struct {
	Shp    []int   `desc:"feature shape of one batch element, e.g., [hidden] or [channels, y, x]"`
	Params Params  `view:"inline" desc:"neuron model parameters"`
	Dt     float32 `def:"0.001" desc:"integration time step, in seconds"`
}

// NewFeedForwardCell returns a new feed-forward cell for given feature
// shape, with default parameters
func NewFeedForwardCell(shape ...int) *FeedForwardCell {
	fc := &FeedForwardCell{Shp: shape}
	fc.Defaults()
	return fc
}

func (fc *FeedForwardCell) Defaults() {
	fc.Params.Defaults()
	fc.Dt = 0.001
}

// InitialState returns a new zero-filled state of shape
// [batchSize, Shp...].  Call once per fresh sequence, before the
// first Step.
func (fc *FeedForwardCell) InitialState(batchSize int) *FeedForwardState {
	return NewFeedForwardState(batchSize, fc.Shp...)
}

// Step runs one integration step on input current [batch, Shp...] and
// prior state st, returning the spike output and the next state.
func (fc *FeedForwardCell) Step(in *etensor.Float32, st *FeedForwardState) (*etensor.Float32, *FeedForwardState) {
	return FeedForwardStep(in, st, &fc.Params, fc.Dt)
}
