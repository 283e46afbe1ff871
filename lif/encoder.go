// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
)

// lif.ConstantCurrentEncoder converts a static input into a spike
// train by driving a population of LIF neurons with the input as a
// constant external current for SeqLen time steps.  The full membrane
// potential and spike traces are returned, not just the final state.
type ConstantCurrentEncoder struct {
	SeqLen int     `desc:"number of time steps to drive the neurons with the input current"`
	Params Params  `view:"inline" desc:"neuron model parameters"`
	Dt     float32 `def:"0.001" desc:"integration time step, in seconds"`
}

// NewConstantCurrentEncoder returns a new encoder with default
// parameters, unrolling for given number of time steps
func NewConstantCurrentEncoder(seqLen int) *ConstantCurrentEncoder {
	ce := &ConstantCurrentEncoder{SeqLen: seqLen}
	ce.Defaults()
	return ce
}

func (ce *ConstantCurrentEncoder) Defaults() {
	ce.Params.Defaults()
	ce.Dt = 0.001
}

// Encode drives one LIF neuron per element of x with x as a constant
// input current for SeqLen steps.  Returns the membrane potential and
// spike traces, each shaped [SeqLen, x shape...], written step by step
// into preallocated buffers.
func (ce *ConstantCurrentEncoder) Encode(x *etensor.Float32) (voltages, spikes *etensor.Float32) {
	nd := x.NumDims()
	dims := make([]int, nd+1)
	nms := make([]string, nd+1)
	dims[0] = ce.SeqLen
	nms[0] = "Time"
	for d := 0; d < nd; d++ {
		dims[d+1] = x.Dim(d)
	}
	copy(nms[1:], x.DimNames())
	voltages = etensor.NewFloat32(dims, nil, nms)
	spikes = etensor.NewFloat32(dims, nil, nms)
	v := zerosLike(x)
	chunk := x.Len()
	for ts := 0; ts < ce.SeqLen; ts++ {
		z, nv := CurrentEncoderStep(x, v, &ce.Params, ce.Dt)
		v = nv
		copy(voltages.Values[ts*chunk:(ts+1)*chunk], nv.Values)
		copy(spikes.Values[ts*chunk:(ts+1)*chunk], z.Values)
	}
	return
}

// lif.PoissonEncoder converts a static input in the 0-1 range into a
// Poisson spike train: at each time step, each element spikes with
// probability x * FMax * Dt, independently across steps, so the
// expected firing rate is proportional to the input value.
type PoissonEncoder struct {
	SeqLen int             `desc:"number of time steps of spikes to generate"`
	FMax   float32         `def:"100" desc:"maximal firing rate in Hz, produced by an input value of 1"`
	Dt     float32         `def:"0.001" desc:"integration time step, in seconds"`
	Rnd    erand.RndParams `view:"inline" desc:"uniform random distribution for the per-step spike draws -- uses the global rand source"`
}

// NewPoissonEncoder returns a new encoder with default parameters,
// generating given number of time steps
func NewPoissonEncoder(seqLen int) *PoissonEncoder {
	pe := &PoissonEncoder{SeqLen: seqLen}
	pe.Defaults()
	return pe
}

func (pe *PoissonEncoder) Defaults() {
	pe.FMax = 100
	pe.Dt = 0.001
	pe.Rnd.Mean = 0.5
	pe.Rnd.Var = 0.5
	pe.Rnd.Dist = erand.Uniform
}

// Encode returns Poisson spikes shaped [SeqLen, x shape...] for
// input rates x.  Seed the global rand source for reproducible trains.
func (pe *PoissonEncoder) Encode(x *etensor.Float32) *etensor.Float32 {
	nd := x.NumDims()
	dims := make([]int, nd+1)
	nms := make([]string, nd+1)
	dims[0] = pe.SeqLen
	nms[0] = "Time"
	for d := 0; d < nd; d++ {
		dims[d+1] = x.Dim(d)
	}
	copy(nms[1:], x.DimNames())
	spikes := etensor.NewFloat32(dims, nil, nms)
	chunk := x.Len()
	for ts := 0; ts < pe.SeqLen; ts++ {
		for vi, xv := range x.Values {
			if float32(pe.Rnd.Gen(-1)) < xv*pe.FMax*pe.Dt {
				spikes.Values[ts*chunk+vi] = 1
			}
		}
	}
	return spikes
}
