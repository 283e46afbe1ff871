// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements leaky integrate-and-fire (LIF) spiking neurons
as stateful recurrent units that can be unrolled over time.

The LIF neuron is the simplest useful spiking neuron model: a membrane
potential v integrates a synaptic input current i toward threshold,
leaking back toward a resting potential, and emits a discrete spike z
when it crosses threshold, at which point it is reset:

	di/dt = -1/tau_syn * (i - i_in)
	dv/dt = 1/tau_mem * ((v_leak - v) + i)
	z = H(v - v_th)   (Heaviside step)
	v -> v_reset on spike

Both equations are integrated with a forward-Euler step of size dt, with
the membrane update using the just-updated current (semi-implicit order,
which is more stable than the fully explicit form -- do not reorder).

The main building blocks are:

* Params: the neuron model constants (inverse time constants, leak,
threshold and reset potentials), in the usual Defaults / Update style.

* State / FeedForwardState: the population state tensors threaded
through successive steps.  Updates are functional: each step returns a
fresh state and never writes the prior one, so independent sequences can
run concurrently as long as each threads its own state.

* Cell / FeedForwardCell: one integration step per call.  Cell owns
trainable input and recurrent weight matrices; FeedForwardCell applies
the dynamics elementwise to an externally computed input current.

* Layer / FeedForwardLayer: unroll a cell across the leading time
dimension of an input tensor, threading state step-to-step.

* ConstantCurrentEncoder / PoissonEncoder: convert static inputs into
spike trains over a fixed number of time steps.

* Trace: records per-step population statistics into an etable.Table
for plotting or CSV export.
*/
package lif
