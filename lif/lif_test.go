// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-8)

// refTol is the tolerance for comparing float32 dynamics against the
// float64 reference computation
const refTol = float32(1.0e-4)

func TestRestingEquilibrium(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	lp.VLeak = 0.3
	lp.VReset = 0.1

	st := NewFeedForwardState(1, 4)
	for vi := range st.V.Values {
		st.V.Values[vi] = lp.VLeak
	}
	in := etensor.NewFloat32([]int{1, 4}, nil, nil)

	for ts := 0; ts < 100; ts++ {
		z, ns := FeedForwardStep(in, st, &lp, 0.001)
		st = ns
		for vi := range st.V.Values {
			if dif := math32.Abs(st.V.Values[vi] - lp.VLeak); dif > difTol {
				t.Errorf("ts: %d, vi: %d, v: %v drifted from VLeak: %v\n", ts, vi, st.V.Values[vi], lp.VLeak)
			}
			if z.Values[vi] != 0 {
				t.Errorf("ts: %d, vi: %d, spike at resting potential\n", ts, vi)
			}
		}
	}
}

func TestMonotonicCharging(t *testing.T) {
	lp := Params{}
	lp.Defaults() // VReset = VLeak = 0 < VTh = 1

	st := NewFeedForwardState(1, 1)
	in := etensor.NewFloat32([]int{1, 1}, nil, nil)
	in.Values[0] = 1.5

	prevV := st.V.Values[0]
	prevZ := float32(0)
	nspk := 0
	for ts := 0; ts < 200; ts++ {
		z, ns := FeedForwardStep(in, st, &lp, 0.001)
		st = ns
		if prevZ == 0 && z.Values[0] == 0 && st.V.Values[0] < prevV {
			t.Errorf("ts: %d, v decreased from %v to %v without a spike\n", ts, prevV, st.V.Values[0])
		}
		if z.Values[0] == 1 {
			nspk++
		}
		prevV = st.V.Values[0]
		prevZ = z.Values[0]
	}
	if nspk == 0 {
		t.Errorf("suprathreshold constant current produced no spikes\n")
	}
}

func TestResetCorrectness(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	lp.VReset = -0.2

	st := NewFeedForwardState(2, 3)
	in := etensor.NewFloat32([]int{2, 3}, nil, nil)
	for vi := range in.Values {
		in.Values[vi] = 1.2 + 0.3*float32(vi)
	}

	nspk := 0
	for ts := 0; ts < 100; ts++ {
		z, ns := FeedForwardStep(in, st, &lp, 0.001)
		st = ns
		for vi := range z.Values {
			if z.Values[vi] == 1 {
				nspk++
				if st.V.Values[vi] != lp.VReset {
					t.Errorf("ts: %d, vi: %d, post-spike v: %v != VReset: %v\n", ts, vi, st.V.Values[vi], lp.VReset)
				}
			}
		}
	}
	if nspk == 0 {
		t.Errorf("no spikes emitted -- reset never exercised\n")
	}
}

// TestStepVsRef checks the full recurrent tensor step against an
// independent float64 implementation, including the update order:
// current from previous spike, membrane from the updated current.
func TestStepVsRef(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	dt := float32(0.001)

	cl := NewCell(2, 1)
	cl.InputWeights.Values[0] = 0.5
	cl.InputWeights.Values[1] = -0.25
	cl.RecurrentWeights.Values[0] = 0.3

	in := etensor.NewFloat32([]int{1, 2}, nil, nil)
	in.Values[0] = 4.0
	in.Values[1] = 0.8

	st := cl.InitialState(1)

	// reference state in float64
	var rz, rv, ri float64
	for ts := 0; ts < 100; ts++ {
		z, ns := cl.Step(in, st)
		st = ns

		inCur := 4.0*0.5 + 0.8*-0.25 + rz*0.3
		ri = ri + float64(dt)*float64(lp.TauSynInv)*(inCur-ri)
		rv = rv + float64(dt)*float64(lp.TauMemInv)*((float64(lp.VLeak)-rv)+ri)
		rz = 0
		if rv >= float64(lp.VTh) {
			rz = 1
			rv = float64(lp.VReset)
		}

		if dif := math32.Abs(st.V.Values[0] - float32(rv)); dif > refTol {
			t.Errorf("ts: %d, v: %v, ref: %v, dif: %v\n", ts, st.V.Values[0], rv, dif)
		}
		if dif := math32.Abs(st.I.Values[0] - float32(ri)); dif > refTol {
			t.Errorf("ts: %d, i: %v, ref: %v, dif: %v\n", ts, st.I.Values[0], ri, dif)
		}
		if z.Values[0] != float32(rz) {
			t.Errorf("ts: %d, z: %v, ref: %v\n", ts, z.Values[0], rz)
		}
	}
}

func TestCurrentEncoderStepOneStep(t *testing.T) {
	lp := Params{}
	lp.Defaults()

	in := etensor.NewFloat32([]int{2}, nil, nil)
	in.Values[0] = 2.0
	in.Values[1] = -1.0
	v := etensor.NewFloat32([]int{2}, nil, nil)

	z, nv := CurrentEncoderStep(in, v, &lp, 0.001)
	// v' = v + dt * TauMemInv * ((VLeak - v) + in) = 0.001 * 100 * in
	if dif := math32.Abs(nv.Values[0] - 0.2); dif > difTol {
		t.Errorf("v: %v != 0.2\n", nv.Values[0])
	}
	if dif := math32.Abs(nv.Values[1] - -0.1); dif > difTol {
		t.Errorf("v: %v != -0.1\n", nv.Values[1])
	}
	if z.Values[0] != 0 || z.Values[1] != 0 {
		t.Errorf("subthreshold step spiked: %v\n", z.Values)
	}
	if v.Values[0] != 0 || v.Values[1] != 0 {
		t.Errorf("input v was modified: %v\n", v.Values)
	}
}

func TestStepDeterminism(t *testing.T) {
	cl := NewCell(3, 5)
	in := etensor.NewFloat32([]int{2, 3}, nil, nil)
	for vi := range in.Values {
		in.Values[vi] = 0.5 * float32(vi)
	}

	run := func() []float32 {
		st := cl.InitialState(2)
		var out []float32
		for ts := 0; ts < 20; ts++ {
			z, ns := cl.Step(in, st)
			st = ns
			out = append(out, z.Values...)
			out = append(out, ns.V.Values...)
			out = append(out, ns.I.Values...)
		}
		return out
	}

	a := run()
	b := run()
	for vi := range a {
		if a[vi] != b[vi] {
			t.Errorf("vi: %d, repeated run differs: %v vs %v\n", vi, a[vi], b[vi])
		}
	}
}
