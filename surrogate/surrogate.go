// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package surrogate provides surrogate-gradient pseudo-derivatives for
the spike threshold nonlinearity of spiking neurons.

The Heaviside spike function has a derivative that is zero almost
everywhere, so gradient-based training of spiking networks replaces it
on the backward pass with a smooth bump centered on the threshold.
The forward dynamics are unaffected: these functions exist purely for
an external trainer doing backpropagation through time over recorded
membrane potentials.

All functions take x = v - v_th (distance of the membrane potential
from threshold) and peak at 1 for x = 0, falling off at a rate set by
the Alpha steepness parameter.
*/
package surrogate

import (
	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
)

// Methods are the different surrogate gradient functions
type Methods int

//go:generate stringer -type=Methods

var KiT_Methods = kit.Enums.AddEnum(MethodsN, kit.NotBitFlag, nil)

func (ev Methods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Methods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The surrogate gradient methods
const (
	// SuperSpike is the fast sigmoid derivative 1 / (1 + Alpha*|x|)^2,
	// with heavy tails that keep some gradient flowing for neurons far
	// from threshold
	SuperSpike Methods = iota

	// Tanh is the derivative of tanh(Alpha*x): 1 - tanh(Alpha*x)^2,
	// which falls off exponentially away from threshold
	Tanh

	// Triangle is the piecewise-linear bump max(0, 1 - Alpha*|x|),
	// with strictly bounded support
	Triangle

	MethodsN
)

// Params specifies which surrogate gradient to use and how steep it is
type Params struct {
	Method Methods `desc:"which surrogate gradient function to use for the spike threshold"`
	Alpha  float32 `def:"100" min:"0" desc:"steepness of the pseudo-derivative around the threshold -- larger values concentrate the gradient closer to threshold"`
}

func (sp *Params) Defaults() {
	sp.Method = SuperSpike
	sp.Alpha = 100
	sp.Update()
}

// Update must be called after any changes to parameters
func (sp *Params) Update() {
}

// Grad returns the surrogate derivative dz/dv at x = v - v_th,
// using the configured method and steepness
func (sp *Params) Grad(x float32) float32 {
	switch sp.Method {
	case Tanh:
		th := math32.Tanh(sp.Alpha * x)
		return 1 - th*th
	case Triangle:
		g := 1 - sp.Alpha*math32.Abs(x)
		if g < 0 {
			return 0
		}
		return g
	default:
		d := 1 + sp.Alpha*math32.Abs(x)
		return 1 / (d * d)
	}
}
