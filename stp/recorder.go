// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"io"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// Recorder logs short-term plasticity dynamics into tables:
// one row per delivered spike in Spikes, and the raw u, x state of
// every recorded synapse at a fixed interval in Samples.
type Recorder struct {
	Interval float64       `desc:"interval in msec between state samples -- 0 = no sampling"`
	Spikes   *etable.Table `view:"no-inline" desc:"one row per delivered spike"`
	Samples  *etable.Table `view:"no-inline" desc:"one row per recorded synapse per sample interval"`

	nsamp int
}

// NewRecorder returns a recorder sampling state every interval msec
func NewRecorder(interval float64) *Recorder {
	rc := &Recorder{Interval: interval}
	rc.Init()
	return rc
}

// Init configures empty tables and resets sampling to time 0
func (rc *Recorder) Init() {
	rc.Spikes = &etable.Table{}
	rc.Spikes.SetFromSchema(SpikeSchema(), 0)
	rc.Samples = &etable.Table{}
	rc.Samples.SetFromSchema(SampleSchema(), 0)
	rc.nsamp = 0
}

// SpikeSchema returns the columns of the spike log
func SpikeSchema() etable.Schema {
	return etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
		{Name: "Conn", Type: etensor.INT64},
		{Name: "Weight", Type: etensor.FLOAT64},
		{Name: "U", Type: etensor.FLOAT64},
		{Name: "X", Type: etensor.FLOAT64},
	}
}

// SampleSchema returns the columns of the state samples
func SampleSchema() etable.Schema {
	return etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
		{Name: "Conn", Type: etensor.INT64},
		{Name: "U", Type: etensor.FLOAT64},
		{Name: "X", Type: etensor.FLOAT64},
	}
}

// LogSpike adds a row for a spike delivered through synapse number conn,
// with the state left after the spike.
func (rc *Recorder) LogSpike(conn int, ev *SpikeEvent, sy *Synapse) {
	dt := rc.Spikes
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, ev.Stamp)
	dt.SetCellFloat("Conn", row, float64(conn))
	dt.SetCellFloat("Weight", row, ev.Weight)
	dt.SetCellFloat("U", row, sy.State.U)
	dt.SetCellFloat("X", row, sy.State.X)
}

// SampleTo adds sample rows for every interval boundary up to and
// including time t, recording the state of syns as it currently is.
func (rc *Recorder) SampleTo(t float64, syns []*Synapse) {
	if rc.Interval <= 0 {
		return
	}
	dt := rc.Samples
	for ; float64(rc.nsamp)*rc.Interval <= t; rc.nsamp++ {
		st := float64(rc.nsamp) * rc.Interval
		for ci, sy := range syns {
			row := dt.Rows
			dt.SetNumRows(row + 1)
			dt.SetCellFloat("Time", row, st)
			dt.SetCellFloat("Conn", row, float64(ci))
			dt.SetCellFloat("U", row, sy.State.U)
			dt.SetCellFloat("X", row, sy.State.X)
		}
	}
}

// WriteSpikesCSV writes the spike log as comma-separated values with headers
func (rc *Recorder) WriteSpikesCSV(w io.Writer) error {
	return rc.Spikes.WriteCSV(w, etable.Comma, etable.Headers)
}

// WriteSamplesCSV writes the state samples as comma-separated values with headers
func (rc *Recorder) WriteSamplesCSV(w io.Writer) error {
	return rc.Samples.WriteCSV(w, etable.Comma, etable.Headers)
}
