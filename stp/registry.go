// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stp

import (
	"fmt"
	"sort"
	"sync"
)

// ModelName is the name the synapse model is registered under by default
const ModelName = "stp_synapse"

// Registry maps synapse model names onto prototype synapses holding the
// model defaults.  Connections are created from a copy of the prototype.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*Synapse
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Synapse)}
}

// DefaultRegistry is the process-wide registry used by Register
var DefaultRegistry = NewRegistry()

func init() {
	Register(ModelName)
}

// Register exposes the synapse model under name in DefaultRegistry
func Register(name string) {
	DefaultRegistry.Register(name)
}

// Register exposes the synapse model under name with default parameters.
// Registering an existing name does nothing.
func (rg *Registry) Register(name string) {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	if _, has := rg.models[name]; has {
		return
	}
	sy := &Synapse{}
	sy.Defaults()
	sy.Nm = name
	rg.models[name] = sy
}

// Has returns true if name is registered
func (rg *Registry) Has(name string) bool {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	_, has := rg.models[name]
	return has
}

// Names returns the registered model names in sorted order
func (rg *Registry) Names() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	nms := make([]string, 0, len(rg.models))
	for nm := range rg.models {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// Model returns a copy of the prototype synapse for the model
func (rg *Registry) Model(name string) (Synapse, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	sy, has := rg.models[name]
	if !has {
		return Synapse{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return *sy, nil
}

// SetDefaults changes the defaults of a registered model, with the same
// staging and validation as Synapse.SetStatus.
func (rg *Registry) SetDefaults(name string, st Status, tm *Time) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	sy, has := rg.models[name]
	if !has {
		return fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return sy.SetStatus(st, tm)
}

// CopyModel registers a new model dst whose defaults are those of src
// overridden by st.  It is an error if dst already exists.
func (rg *Registry) CopyModel(src, dst string, st Status, tm *Time) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()
	sy, has := rg.models[src]
	if !has {
		return fmt.Errorf("%w: %q", ErrUnknownModel, src)
	}
	if _, has := rg.models[dst]; has {
		return fmt.Errorf("%w: %q", ErrModelExists, dst)
	}
	cp := *sy
	cp.Nm = dst
	if err := cp.SetStatus(st, tm); err != nil {
		return err
	}
	rg.models[dst] = &cp
	return nil
}

// Connect creates a connection from the model to target, named nm,
// starting from the model defaults.
func Connect[T TargetRef](rg *Registry, model, nm string, target T, tm *Time) (*Connection[T], error) {
	sy, err := rg.Model(model)
	if err != nil {
		return nil, err
	}
	if nm != "" {
		sy.Nm = nm
	}
	return NewConnection(&sy, target, tm), nil
}
