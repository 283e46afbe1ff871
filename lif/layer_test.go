// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"math/rand"
	"testing"

	"github.com/emer/etable/v2/etensor"
)

// TestLayerUnrollEquivalence checks that unrolling via the Layer is
// identical, step for step, to invoking the cell manually and
// threading the state by hand.
func TestLayerUnrollEquivalence(t *testing.T) {
	rand.Seed(3)
	nt, nb, ni, nh := 8, 2, 3, 4
	ly := NewLayer(ni, nh)

	in := etensor.NewFloat32([]int{nt, nb, ni}, nil, nil)
	for vi := range in.Values {
		in.Values[vi] = 4 * rand.Float32()
	}

	out, fst := ly.Forward(in, ly.InitialState(nb))
	if out.Dim(0) != nt || out.Dim(1) != nb || out.Dim(2) != nh {
		t.Errorf("output shape: %v != [%d, %d, %d]\n", []int{out.Dim(0), out.Dim(1), out.Dim(2)}, nt, nb, nh)
	}

	// manual unroll with the same cell
	st := ly.InitialState(nb)
	stepIn := etensor.NewFloat32([]int{nb, ni}, nil, nil)
	for ts := 0; ts < nt; ts++ {
		copy(stepIn.Values, in.Values[ts*nb*ni:(ts+1)*nb*ni])
		z, ns := ly.Cell.Step(stepIn, st)
		st = ns
		for vi, v := range z.Values {
			if out.Values[ts*nb*nh+vi] != v {
				t.Errorf("ts: %d, vi: %d, layer: %v != manual: %v\n", ts, vi, out.Values[ts*nb*nh+vi], v)
			}
		}
	}
	for vi := range st.V.Values {
		if fst.V.Values[vi] != st.V.Values[vi] || fst.I.Values[vi] != st.I.Values[vi] || fst.Z.Values[vi] != st.Z.Values[vi] {
			t.Errorf("final state differs at %d\n", vi)
		}
	}
}

func TestLayerStats(t *testing.T) {
	rand.Seed(4)
	ly := NewLayer(2, 3)
	in := etensor.NewFloat32([]int{20, 1, 2}, nil, nil)
	for vi := range in.Values {
		in.Values[vi] = 6
	}
	ly.Forward(in, ly.InitialState(1))
	if ly.Vm.Max == 0 && ly.Vm.Avg == 0 {
		t.Errorf("layer Vm stats not updated\n")
	}
	nun := int32(1 * 3) // batch * hidden
	if ly.Vm.MaxIdx < 0 || ly.Vm.MaxIdx >= nun {
		t.Errorf("Vm.MaxIdx: %d out of unit range [0, %d)\n", ly.Vm.MaxIdx, nun)
	}
	if ly.Spikes.MaxIdx < 0 || ly.Spikes.MaxIdx >= nun {
		t.Errorf("Spikes.MaxIdx: %d out of unit range [0, %d)\n", ly.Spikes.MaxIdx, nun)
	}
}

func TestFeedForwardLayerUnroll(t *testing.T) {
	nt, nb := 10, 2
	fl := NewFeedForwardLayer(3, 2)

	in := etensor.NewFloat32([]int{nt, nb, 3, 2}, nil, nil)
	for vi := range in.Values {
		in.Values[vi] = 1.5
	}
	out, fst := fl.Forward(in, fl.InitialState(nb))
	if out.Len() != in.Len() {
		t.Errorf("output len: %d != input len: %d\n", out.Len(), in.Len())
	}

	st := fl.InitialState(nb)
	stepIn := etensor.NewFloat32([]int{nb, 3, 2}, nil, nil)
	chunk := nb * 3 * 2
	for ts := 0; ts < nt; ts++ {
		copy(stepIn.Values, in.Values[ts*chunk:(ts+1)*chunk])
		z, ns := fl.Cell.Step(stepIn, st)
		st = ns
		for vi, v := range z.Values {
			if out.Values[ts*chunk+vi] != v {
				t.Errorf("ts: %d, vi: %d, layer: %v != manual: %v\n", ts, vi, out.Values[ts*chunk+vi], v)
			}
		}
	}
	for vi := range st.V.Values {
		if fst.V.Values[vi] != st.V.Values[vi] {
			t.Errorf("final state differs at %d\n", vi)
		}
	}
}
