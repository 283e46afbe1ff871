// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// lif.Layer unrolls a recurrent Cell across the leading time dimension
// of its input, threading the state from each step into the next and
// collecting the per-step spike outputs.  The time loop is strictly
// sequential: step t consumes exactly the state produced by step t-1.
type Layer struct {
	Cell   *Cell           `desc:"the recurrent cell stepped once per point in time"`
	Spikes minmax.AvgMax32 `inactive:"+" desc:"average and max spike output over the last Forward call"`
	Vm     minmax.AvgMax32 `inactive:"+" desc:"average and max membrane potential over the last Forward call"`
}

// NewLayer returns a new layer owning a new recurrent cell of given sizes
func NewLayer(inputSize, hiddenSize int) *Layer {
	return &Layer{Cell: NewCell(inputSize, hiddenSize)}
}

// InitialState returns a new zero-filled state for given batch size
func (ly *Layer) InitialState(batchSize int) *State {
	return ly.Cell.InitialState(batchSize)
}

// Forward unrolls the cell over input [time, batch, input] starting
// from state st, returning the stacked spike outputs
// [time, batch, hidden] and the final state.  st is not modified.
func (ly *Layer) Forward(in *etensor.Float32, st *State) (*etensor.Float32, *State) {
	nt := in.Dim(0)
	nb := in.Dim(1)
	ni := in.Dim(2)
	nh := ly.Cell.HiddenSize
	out := etensor.NewFloat32([]int{nt, nb, nh}, nil, []string{"Time", "Batch", "Hidden"})
	stepIn := etensor.NewFloat32([]int{nb, ni}, nil, []string{"Batch", "Input"})
	ly.Spikes.Init()
	ly.Vm.Init()
	for t := 0; t < nt; t++ {
		copy(stepIn.Values, in.Values[t*nb*ni:(t+1)*nb*ni])
		z, ns := ly.Cell.Step(stepIn, st)
		st = ns
		copy(out.Values[t*nb*nh:(t+1)*nb*nh], z.Values)
		for vi, v := range z.Values {
			ly.Spikes.UpdateVal(v, int32(vi))
		}
		for vi, v := range ns.V.Values {
			ly.Vm.UpdateVal(v, int32(vi))
		}
	}
	ly.Spikes.CalcAvg()
	ly.Vm.CalcAvg()
	return out, st
}

// SizeReport returns a string report of the memory taken by the
// layer's cell weights
func (ly *Layer) SizeReport() string {
	return ly.Cell.SizeReport()
}

// lif.FeedForwardLayer unrolls a FeedForwardCell across the leading
// time dimension, with the same sequential state-threading contract as
// Layer.
type FeedForwardLayer struct {
	Cell *FeedForwardCell `desc:"the feed-forward cell stepped once per point in time"`
}

// NewFeedForwardLayer returns a new layer owning a new feed-forward
// cell of given feature shape
func NewFeedForwardLayer(shape ...int) *FeedForwardLayer {
	return &FeedForwardLayer{Cell: NewFeedForwardCell(shape...)}
}

// InitialState returns a new zero-filled state for given batch size
func (fl *FeedForwardLayer) InitialState(batchSize int) *FeedForwardState {
	return fl.Cell.InitialState(batchSize)
}

// Forward unrolls the cell over input [time, batch, feature shape...]
// starting from state st, returning the stacked spike outputs of the
// same shape as the input, and the final state.
func (fl *FeedForwardLayer) Forward(in *etensor.Float32, st *FeedForwardState) (*etensor.Float32, *FeedForwardState) {
	nt := in.Dim(0)
	chunk := len(st.V.Values)
	out := zerosLike(in)
	stepIn := zerosLike(st.V)
	for t := 0; t < nt; t++ {
		copy(stepIn.Values, in.Values[t*chunk:(t+1)*chunk])
		z, ns := fl.Cell.Step(stepIn, st)
		st = ns
		copy(out.Values[t*chunk:(t+1)*chunk], z.Values)
	}
	return out, st
}
