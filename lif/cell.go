// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
)

// lif.Cell is a recurrent LIF cell: one integration step per call,
// with trainable input and recurrent weight matrices projecting the
// external input and the prior spikes into the synaptic input current.
// The cell retains no step-to-step state internally -- the caller must
// thread the State returned by Step into the next call.  The weight
// matrices are the cell's only mutable values, written externally by an
// optimizer and never reassigned here after Build.
type Cell struct {
	InputSize        int              `desc:"number of external input units"`
	HiddenSize       int              `desc:"number of LIF neurons"`
	Params           Params           `view:"inline" desc:"neuron model parameters"`
	Dt               float32          `def:"0.001" desc:"integration time step, in seconds"`
	WtInit           erand.RndParams  `view:"inline" desc:"random distribution for initial weight values -- values are additionally scaled by 1 / sqrt(fan-in)"`
	InputWeights     *etensor.Float32 `view:"-" desc:"input projection weights [hidden, input]"`
	RecurrentWeights *etensor.Float32 `view:"-" desc:"recurrent projection weights [hidden, hidden]"`
}

// NewCell returns a new cell for given input and hidden sizes, with
// default parameters, allocated and randomly initialized weights.
// Weight init draws from the global rand source, so seed that for
// reproducible weights.
func NewCell(inputSize, hiddenSize int) *Cell {
	cl := &Cell{InputSize: inputSize, HiddenSize: hiddenSize}
	cl.Defaults()
	cl.Build()
	cl.InitWeights()
	return cl
}

func (cl *Cell) Defaults() {
	cl.Params.Defaults()
	cl.Dt = 0.001
	cl.WtInit.Mean = 0
	cl.WtInit.Var = 1
	cl.WtInit.Dist = erand.Gaussian
}

// Build allocates the weight matrices -- called by NewCell
func (cl *Cell) Build() {
	cl.InputWeights = etensor.NewFloat32([]int{cl.HiddenSize, cl.InputSize}, nil, []string{"Hidden", "Input"})
	cl.RecurrentWeights = etensor.NewFloat32([]int{cl.HiddenSize, cl.HiddenSize}, nil, []string{"Hidden", "Hidden"})
}

// InitWeights initializes both weight matrices from the WtInit random
// distribution, scaled by 1 / sqrt(fan-in) so that the variance of the
// summed input is independent of the layer sizes.
func (cl *Cell) InitWeights() {
	cl.initWtMat(cl.InputWeights, cl.InputSize)
	cl.initWtMat(cl.RecurrentWeights, cl.HiddenSize)
}

func (cl *Cell) initWtMat(wts *etensor.Float32, fanIn int) {
	sc := float32(1) / mat32.Sqrt(float32(fanIn))
	for i := range wts.Values {
		wts.Values[i] = sc * float32(cl.WtInit.Gen(-1))
	}
}

// InitialState returns a new zero-filled state of shape
// [batchSize, HiddenSize].  Call once per fresh sequence, before the
// first Step.
func (cl *Cell) InitialState(batchSize int) *State {
	return NewState(batchSize, cl.HiddenSize)
}

// Step runs one integration step on input [batch, InputSize] and prior
// state st, returning the spike output [batch, HiddenSize] and the
// next state.  Pure function of (input, state, weights): repeated calls
// with identical arguments produce identical results.
func (cl *Cell) Step(in *etensor.Float32, st *State) (*etensor.Float32, *State) {
	return Step(in, st, cl.InputWeights, cl.RecurrentWeights, &cl.Params, cl.Dt)
}

// SizeReport returns a string report of the memory taken by the cell's
// weight matrices
func (cl *Cell) SizeReport() string {
	var b strings.Builder
	nin := len(cl.InputWeights.Values)
	nrec := len(cl.RecurrentWeights.Values)
	mem := 4 * (nin + nrec)
	fmt.Fprintf(&b, "Cell %d -> %d:\t Weights: %d\t WtMem: %v\n", cl.InputSize, cl.HiddenSize, nin+nrec, (datasize.ByteSize)(mem).HumanReadable())
	return b.String()
}
