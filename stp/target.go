// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

// Receiver is a postsynaptic node that spike events are delivered to
type Receiver interface {
	// HandleSpike is called synchronously, exactly once per delivered spike
	HandleSpike(ev *SpikeEvent)
}

// TargetRef is a reference to the fixed postsynaptic target of a
// connection, in whatever representation the host uses.
type TargetRef interface {
	// Target resolves the receiver for the given thread, nil if unresolved
	Target(thread int) Receiver

	// RPort is the receptor port events are delivered on
	RPort() int
}

// PtrTarget refers to the receiver directly, with an explicit receptor port
type PtrTarget struct {
	Recv Receiver
	Port int
}

func (pt PtrTarget) Target(thread int) Receiver { return pt.Recv }
func (pt PtrTarget) RPort() int                 { return pt.Port }

// NodeTable holds the receivers local to each thread, indexed by node index
type NodeTable struct {
	Nodes [][]Receiver
}

// NewNodeTable returns a table for the given number of threads
func NewNodeTable(nthreads int) *NodeTable {
	return &NodeTable{Nodes: make([][]Receiver, nthreads)}
}

// Add appends the receiver to the nodes of the thread and returns its index
func (nt *NodeTable) Add(thread int, rv Receiver) uint32 {
	nt.Nodes[thread] = append(nt.Nodes[thread], rv)
	return uint32(len(nt.Nodes[thread]) - 1)
}

// Node returns the receiver at index idx on thread, or nil if there is none
func (nt *NodeTable) Node(thread int, idx uint32) Receiver {
	if thread < 0 || thread >= len(nt.Nodes) || int(idx) >= len(nt.Nodes[thread]) {
		return nil
	}
	return nt.Nodes[thread][idx]
}

// IndexTarget refers to the receiver by its index into the thread-local
// nodes of a NodeTable.  It always delivers on port 0.
type IndexTarget struct {
	Idx   uint32
	Table *NodeTable
}

func (it IndexTarget) Target(thread int) Receiver {
	if it.Table == nil {
		return nil
	}
	return it.Table.Node(thread, it.Idx)
}

func (it IndexTarget) RPort() int { return 0 }
