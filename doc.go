// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package norse provides spiking neural network building blocks in the Go
language (golang), centered on the leaky integrate-and-fire (LIF)
neuron model as a trainable recurrent unit.

This top-level of the repository has no functional code -- everything
is organized into the following sub-packages:

* lif: the core LIF neuron model -- parameters, population state,
recurrent and feed-forward cells, sequence-unrolling layers, spike
encoders (constant-current and Poisson), and trace logging.

* surrogate: surrogate-gradient pseudo-derivatives for the spike
threshold, for use by an external trainer backpropagating through
recorded membrane potentials.

* examples: these compile into runnable programs.  examples/lifplot
runs the dynamics over a range of input currents and saves f-I curve
and population trace tables as CSV for plotting.
*/
package norse
