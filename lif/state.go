// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "github.com/emer/etable/v2/etensor"

// lif.State is the state of a recurrent LIF neuron population: the
// spike output Z, membrane potential V and synaptic input current I,
// each shaped [batch, hidden].  State is threaded functionally through
// successive steps: each Step returns a fresh State and the prior one
// is never written, so the caller owns persistence between calls.
type State struct {
	Z *etensor.Float32 `desc:"spike output (0 or 1 per neuron) from the last step"`
	V *etensor.Float32 `desc:"membrane potential"`
	I *etensor.Float32 `desc:"synaptic input current"`
}

// NewState returns a new zero-filled recurrent state of
// shape [batchSize, hiddenSize]
func NewState(batchSize, hiddenSize int) *State {
	shp := []int{batchSize, hiddenSize}
	nms := []string{"Batch", "Hidden"}
	return &State{
		Z: etensor.NewFloat32(shp, nil, nms),
		V: etensor.NewFloat32(shp, nil, nms),
		I: etensor.NewFloat32(shp, nil, nms),
	}
}

// lif.FeedForwardState is the state of a feed-forward LIF population:
// membrane potential V and synaptic current I shaped [batch, *feature
// shape].  There is no spike-weighted recurrent projection, so the
// prior spike output is not part of the carried state.
type FeedForwardState struct {
	V *etensor.Float32 `desc:"membrane potential"`
	I *etensor.Float32 `desc:"synaptic input current"`
}

// NewFeedForwardState returns a new zero-filled feed-forward state of
// shape [batchSize, shape...]
func NewFeedForwardState(batchSize int, shape ...int) *FeedForwardState {
	shp := make([]int, 0, len(shape)+1)
	shp = append(shp, batchSize)
	shp = append(shp, shape...)
	return &FeedForwardState{
		V: etensor.NewFloat32(shp, nil, nil),
		I: etensor.NewFloat32(shp, nil, nil),
	}
}
