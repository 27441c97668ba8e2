// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the three on-disk formats of spec.md §6: the
// JSON link-configuration file, the per-component YAML task file, and the
// CSV mesh directory, plus the plugin ABI loader contract.
package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/oasis/comm"
	"github.com/cpmech/oasis/oasiserr"
)

// ComponentSpec is one entry of the link-configuration file's "comps" map:
// how to locate and instantiate one component.
type ComponentSpec struct {
	Type string `json:"type"`
	Task string `json:"task"`
	Dll  string `json:"dll"`
}

// Pipeline is one data path inside a link: which component/state feeds which
// component/element, with optional adaptor chains (spec.md §6).
type Pipeline struct {
	SrcComponent      string   `json:"src_component"`
	SrcState          string   `json:"src_state"`
	SrcElements       []string `json:"src_elements"`
	TarComponent      string   `json:"tar_component"`
	TarElement        string   `json:"tar_element"`
	TemporalOperators []string `json:"temporal_operators"`
	SpatialOperators  []string `json:"spatial_operators"`
}

// LinkSpec is one entry of the link-configuration file's "links" map.
type LinkSpec struct {
	Pipelines []Pipeline        `json:"pipelines"`
	Mode      string            `json:"mode"` // "pull" (default) or "loop"
	Params    map[string]string `json:"params"`
}

// LinkConfig is the fully decoded link-configuration file of spec.md §6.
type LinkConfig struct {
	Comps map[string]ComponentSpec `json:"comps"`
	Links map[string]LinkSpec      `json:"links"`
}

// resolveMode returns l's mode, "pull" or "loop" (the empty string means
// "pull"); any other value is a ConfigError.
func (l LinkSpec) resolveMode() (string, error) {
	switch l.Mode {
	case "", "pull":
		return "pull", nil
	case "loop":
		return "loop", nil
	default:
		return "", oasiserr.NewConfigError("link-configuration: unknown mode %q (want \"pull\" or \"loop\")", l.Mode)
	}
}

// LoadLinkConfig reads and decodes the link-configuration file at path,
// exactly as inp/sim.go reads a .sim file with gosl/io (spec.md §6).
func LoadLinkConfig(path string) (*LinkConfig, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		return nil, oasiserr.NewConfigError("link-configuration: cannot read %q: %v", path, err)
	}
	var cfg LinkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, oasiserr.NewConfigError("link-configuration: invalid JSON in %q: %v", path, err)
	}
	if len(cfg.Comps) == 0 {
		return nil, oasiserr.NewConfigError("link-configuration: %q declares no components", path)
	}
	for id, l := range cfg.Links {
		if _, err := l.resolveMode(); err != nil {
			return nil, err
		}
		for _, p := range l.Pipelines {
			if _, ok := cfg.Comps[p.SrcComponent]; !ok {
				return nil, oasiserr.NewConfigError("link %q: unknown src_component %q", id, p.SrcComponent)
			}
			if _, ok := cfg.Comps[p.TarComponent]; !ok {
				return nil, oasiserr.NewConfigError("link %q: unknown tar_component %q", id, p.TarComponent)
			}
		}
	}
	return &cfg, nil
}

// IterationGroup is one "loop"-mode link's participants and parameters,
// exposed to the launcher (spec.md §6).
type IterationGroup struct {
	Id       string
	LinkIds  []string
	Params   map[string]string
	MaxIter  int
	Tolerance float64
	Relaxation float64
}

// IterationGroups collects every "loop"-mode link into its iteration group,
// auto-naming groups that share no explicit "group" param via
// comm.NewAnonymousGroupId (spec.md §6: "all such groups ... are exposed to
// the launcher").
func (cfg *LinkConfig) IterationGroups() ([]IterationGroup, error) {
	byGroup := map[string]*IterationGroup{}
	var order []string
	for linkId, l := range cfg.Links {
		mode, err := l.resolveMode()
		if err != nil {
			return nil, err
		}
		if mode != "loop" {
			continue
		}
		groupId := l.Params["group"]
		if groupId == "" {
			groupId = comm.NewAnonymousGroupId()
		}
		g, ok := byGroup[groupId]
		if !ok {
			g = &IterationGroup{Id: groupId, Params: map[string]string{}, MaxIter: 20, Tolerance: 1e-6, Relaxation: 1}
			byGroup[groupId] = g
			order = append(order, groupId)
		}
		g.LinkIds = append(g.LinkIds, linkId)
		for k, v := range l.Params {
			g.Params[k] = v
		}
	}
	groups := make([]IterationGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, *byGroup[id])
	}
	return groups, nil
}
