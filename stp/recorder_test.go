// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecorder(t *testing.T) {
	rc := NewRecorder(10)
	cn, _ := newTestConn(t)
	syns := []*Synapse{&cn.Synapse}

	for _, tm := range []float64{5, 25} {
		rc.SampleTo(tm, syns)
		ev := &SpikeEvent{Stamp: tm}
		if err := cn.Send(ev, 0); err != nil {
			t.Fatal(err)
		}
		rc.LogSpike(0, ev, &cn.Synapse)
	}
	rc.SampleTo(30, syns)

	if rc.Spikes.Rows != 2 {
		t.Errorf("spike rows: %v, should be 2\n", rc.Spikes.Rows)
	}
	if rc.Samples.Rows != 4 { // 0, 10, 20, 30
		t.Errorf("sample rows: %v, should be 4\n", rc.Samples.Rows)
	}
	cmprFloat(t, "spike weight", rc.Spikes.CellFloat("Weight", 0), 0.3439, difTol)
	cmprFloat(t, "sample x at 0", rc.Samples.CellFloat("X", 0), 1, 0)
	cmprFloat(t, "sample x at 10", rc.Samples.CellFloat("X", 1), 0.6561, difTol)
	cmprFloat(t, "sample time", rc.Samples.CellFloat("Time", 3), 30, 0)
	cmprFloat(t, "sample x at 30", rc.Samples.CellFloat("X", 3), cn.State.X, 0)

	var buf bytes.Buffer
	if err := rc.WriteSpikesCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Errorf("csv lines: %v\n%v\n", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Weight") {
		t.Errorf("csv header: %v\n", lines[0])
	}
}

func TestRecorderNoInterval(t *testing.T) {
	rc := NewRecorder(0)
	sy := newTestSyn()
	rc.SampleTo(100, []*Synapse{sy})
	if rc.Samples.Rows != 0 {
		t.Errorf("sampled with zero interval: %v rows\n", rc.Samples.Rows)
	}
}
