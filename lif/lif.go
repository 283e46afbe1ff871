// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "github.com/emer/etable/v2/etensor"

///////////////////////////////////////////////////////////////////////
//  lif.go contains the neuron model params and step functions

// lif.Params are the leaky integrate-and-fire neuron model parameters.
// Time constants are expressed as inverses (1/tau) so the integration
// step is a pure multiply.  Params are purely descriptive: nothing in
// the dynamics ever writes them.
type Params struct {
	TauSynInv float32 `def:"200" min:"0" desc:"inverse synaptic input current time constant (1 / tau_syn) -- rate at which the synaptic current decays toward the injected input current -- default corresponds to tau_syn = 5 msec"`
	TauMemInv float32 `def:"100" min:"0" desc:"inverse membrane time constant (1 / tau_mem) -- rate at which the membrane potential leaks toward VLeak and integrates current -- default corresponds to tau_mem = 10 msec"`
	VLeak     float32 `def:"0" desc:"leak (resting) potential that the membrane decays back to in the absence of input"`
	VTh       float32 `def:"1" desc:"spike threshold potential -- a spike is emitted whenever the membrane potential reaches this value"`
	VReset    float32 `def:"0" desc:"reset potential that the membrane is clamped to on the step a spike is emitted"`
}

func (lp *Params) Defaults() {
	lp.TauSynInv = 200
	lp.TauMemInv = 100
	lp.VLeak = 0
	lp.VTh = 1
	lp.VReset = 0
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *Params) Update() {
}

///////////////////////////////////////////////////////////////////////
//  Scalar dynamics

// CurrentFmInput integrates the synaptic current one forward-Euler step
// of size dt toward the injected input current inCur.
func (lp *Params) CurrentFmInput(i, inCur, dt float32) float32 {
	return i + dt*lp.TauSynInv*(inCur-i)
}

// VmFmCurrent integrates the membrane potential one forward-Euler step
// of size dt, leaking toward VLeak and integrating the current i.
// Pass the already-updated current here, not the previous one.
func (lp *Params) VmFmCurrent(v, i, dt float32) float32 {
	return v + dt*lp.TauMemInv*((lp.VLeak-v)+i)
}

// SpikeFmVm returns the spike output for membrane potential v:
// 1 if v has reached the VTh threshold, else 0.
func (lp *Params) SpikeFmVm(v float32) float32 {
	if v >= lp.VTh {
		return 1
	}
	return 0
}

// VmFmSpike applies the post-spike reset: a neuron that spiked (z = 1)
// is clamped to VReset, otherwise v is returned unchanged.
func (lp *Params) VmFmSpike(v, z float32) float32 {
	return (1-z)*v + z*lp.VReset
}

///////////////////////////////////////////////////////////////////////
//  Tensor steps

// Step computes one integration step of the recurrent LIF dynamics.
// in is the external input [batch, input], st the prior state, inWts
// the input projection weights [hidden, input] and recWts the recurrent
// projection weights [hidden, hidden].  The synaptic input current for
// each neuron is in @ inWts^T plus the prior spikes @ recWts^T.
// Returns the spike output [batch, hidden] and the next state -- the
// prior state is not modified.  NaN / Inf inputs propagate unchecked,
// and mismatched shapes panic out of the tensor indexing.
func Step(in *etensor.Float32, st *State, inWts, recWts *etensor.Float32, lp *Params, dt float32) (*etensor.Float32, *State) {
	nb := st.V.Dim(0)
	nh := st.V.Dim(1)
	ni := inWts.Dim(1)
	ns := NewState(nb, nh)
	for b := 0; b < nb; b++ {
		for h := 0; h < nh; h++ {
			var inCur float32
			for k := 0; k < ni; k++ {
				inCur += in.Values[b*ni+k] * inWts.Values[h*ni+k]
			}
			for j := 0; j < nh; j++ {
				inCur += st.Z.Values[b*nh+j] * recWts.Values[h*nh+j]
			}
			vi := b*nh + h
			nwI := lp.CurrentFmInput(st.I.Values[vi], inCur, dt)
			nwVm := lp.VmFmCurrent(st.V.Values[vi], nwI, dt)
			z := lp.SpikeFmVm(nwVm)
			ns.Z.Values[vi] = z
			ns.V.Values[vi] = lp.VmFmSpike(nwVm, z)
			ns.I.Values[vi] = nwI
		}
	}
	return ns.Z, ns
}

// FeedForwardStep computes one integration step of the feed-forward LIF
// dynamics, where in [batch, *feature shape] is used directly as the
// injected input current, with no weight projection and no recurrent
// spike term.  Returns the spike output and the next state.
func FeedForwardStep(in *etensor.Float32, st *FeedForwardState, lp *Params, dt float32) (*etensor.Float32, *FeedForwardState) {
	ns := &FeedForwardState{V: zerosLike(st.V), I: zerosLike(st.I)}
	zs := zerosLike(st.V)
	for vi := range st.V.Values {
		nwI := lp.CurrentFmInput(st.I.Values[vi], in.Values[vi], dt)
		nwVm := lp.VmFmCurrent(st.V.Values[vi], nwI, dt)
		z := lp.SpikeFmVm(nwVm)
		zs.Values[vi] = z
		ns.V.Values[vi] = lp.VmFmSpike(nwVm, z)
		ns.I.Values[vi] = nwI
	}
	return zs, ns
}

// CurrentEncoderStep computes one step of a neuron driven directly by a
// constant external current in, with no synaptic current state: the
// membrane integrates the input and spikes / resets as usual.
// Returns the spike output and next membrane potential, both shaped
// like in.
func CurrentEncoderStep(in, v *etensor.Float32, lp *Params, dt float32) (*etensor.Float32, *etensor.Float32) {
	zs := zerosLike(v)
	nv := zerosLike(v)
	for vi := range v.Values {
		nwVm := lp.VmFmCurrent(v.Values[vi], in.Values[vi], dt)
		z := lp.SpikeFmVm(nwVm)
		zs.Values[vi] = z
		nv.Values[vi] = lp.VmFmSpike(nwVm, z)
	}
	return zs, nv
}

// zerosLike returns a new zero-filled Float32 with the same dimensions as t
func zerosLike(t *etensor.Float32) *etensor.Float32 {
	dims := make([]int, t.NumDims())
	for d := range dims {
		dims[d] = t.Dim(d)
	}
	return etensor.NewFloat32(dims, nil, nil)
}
