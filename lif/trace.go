// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"io"
	"strconv"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// LogPrec is precision for saving float values in the trace table
const LogPrec = 4

// lif.Trace records per-step population statistics of LIF states into
// an etable.Table, one row per recorded step, for plotting or CSV
// export.
type Trace struct {
	Table *etable.Table `view:"no-inline" desc:"the trace data -- one row per recorded step"`
}

// NewTrace returns a new trace with a configured, empty table
func NewTrace() *Trace {
	tr := &Trace{Table: &etable.Table{}}
	tr.ConfigTable(tr.Table)
	return tr
}

func (tr *Trace) ConfigTable(dt *etable.Table) {
	dt.SetMetaData("name", "LIFTrace")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Step", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "VmAvg", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "VmMax", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "SpikeAvg", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "SpikeMax", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// Reset clears all recorded rows
func (tr *Trace) Reset() {
	tr.Table.SetNumRows(0)
}

// RecordState adds one row with stats over the given recurrent state
// at the given time
func (tr *Trace) RecordState(tm *Time, st *State) {
	tr.record(tm, st.V, st.Z)
}

// RecordFeedForward adds one row with stats over the given
// feed-forward state and spike output z at the given time
func (tr *Trace) RecordFeedForward(tm *Time, st *FeedForwardState, z *etensor.Float32) {
	tr.record(tm, st.V, z)
}

func (tr *Trace) record(tm *Time, v, z *etensor.Float32) {
	dt := tr.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)

	var vm, spk minmax.AvgMax32
	vm.Init()
	spk.Init()
	for vi, val := range v.Values {
		vm.UpdateVal(val, int32(vi))
	}
	for vi, val := range z.Values {
		spk.UpdateVal(val, int32(vi))
	}
	vm.CalcAvg()
	spk.CalcAvg()

	dt.SetCellFloat("Time", row, float64(tm.Time))
	dt.SetCellFloat("Step", row, float64(tm.Step))
	dt.SetCellFloat("VmAvg", row, float64(vm.Avg))
	dt.SetCellFloat("VmMax", row, float64(vm.Max))
	dt.SetCellFloat("SpikeAvg", row, float64(spk.Avg))
	dt.SetCellFloat("SpikeMax", row, float64(spk.Max))
}

// WriteCSV writes the trace table in CSV format with headers
func (tr *Trace) WriteCSV(w io.Writer) error {
	return tr.Table.WriteCSV(w, etable.Comma, etable.Headers)
}
