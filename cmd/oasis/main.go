// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command oasis launches a simulation described by a link-configuration
// file (spec.md §6): it loads every component from the Go plugin its config
// entry names, wires each link's pipelines through the requested
// operator chain, then drives every component to completion.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/cpmech/oasis/comm"
	"github.com/cpmech/oasis/comm/adapt"
	"github.com/cpmech/oasis/config"
	"github.com/cpmech/oasis/oasiserr"
)

var logLevel = flag.String("log", "info", "log verbosity: debug, info, warn, err")

func main() {
	defer func() {
		if r := recover(); r != nil {
			io.Pfred("FATAL: %v\n", r)
			atexit.Exit(1)
		}
	}()
	atexit.Exit(run())
}

func run() int {
	flag.Parse()

	switch *logLevel {
	case "debug", "info", "warn", "err":
	default:
		io.Pfred("ERROR: unknown --log level %q (want debug, info, warn, err)\n", *logLevel)
		return 1
	}
	chk.Verbose = *logLevel == "debug"

	if flag.NArg() != 1 {
		io.Pfred("ERROR: usage: oasis <link-configuration.json>\n")
		return 1
	}
	cfgPath := flag.Arg(0)

	io.Pforan("oasis -- pull-based component coupling\n")

	cfg, err := config.LoadLinkConfig(cfgPath)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return 1
	}

	groups, err := cfg.IterationGroups()
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return 1
	}

	comps, err := buildComponents(cfg)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return 1
	}

	if err := wireLinks(cfg, comps); err != nil {
		io.Pfred("ERROR: %v\n", err)
		return 1
	}

	atexit.Register(func() { printSummary(cfg, groups, comps) })

	if err := driveToCompletion(comps); err != nil {
		io.Pfred("ERROR: %v\n", err)
		return 1
	}

	io.Pfgreen("finished %d component(s), %d link(s), %d iteration group(s)\n", len(cfg.Comps), len(cfg.Links), len(groups))
	return 0
}

// buildComponents instantiates one comm.Component per "comps" entry from
// the Go plugin named by its "dll" (spec.md §6); an entry without a "dll" is
// a ConfigError.
func buildComponents(cfg *config.LinkConfig) (map[string]comm.Component, error) {
	comps := make(map[string]comm.Component, len(cfg.Comps))
	plugins := map[string]config.ComponentFactory{}
	for id, spec := range cfg.Comps {
		if spec.Dll == "" {
			return nil, oasiserr.NewConfigError("component %q: no dll given and oasis has no built-in component types", id)
		}
		factory, ok := plugins[spec.Dll]
		if !ok {
			var err error
			factory, err = config.LoadPlugin(spec.Dll)
			if err != nil {
				return nil, err
			}
			plugins[spec.Dll] = factory
			io.Pfblue2("loaded plugin %q (oasis ABI %s)\n", spec.Dll, factory.GetOasisVersion())
		}
		c, err := config.InstantiateComponent(factory, id, spec)
		if err != nil {
			return nil, err
		}
		comps[id] = c
	}
	return comps, nil
}

// wireLinks runs every link's pipelines through comm.Connect, inserting the
// requested spatial/temporal adapted-output chain in between (spec.md §4.7,
// §6). Operator strings are "area:<exponent>", "length:<exponent>" for
// spatial operators and "time" for the sole temporal operator.
func wireLinks(cfg *config.LinkConfig, comps map[string]comm.Component) error {
	for linkId, l := range cfg.Links {
		for pIdx, p := range l.Pipelines {
			src, ok := comps[p.SrcComponent]
			if !ok {
				return oasiserr.NewConfigError("link %q pipeline %d: unknown src_component %q", linkId, pIdx, p.SrcComponent)
			}
			tar, ok := comps[p.TarComponent]
			if !ok {
				return oasiserr.NewConfigError("link %q pipeline %d: unknown tar_component %q", linkId, pIdx, p.TarComponent)
			}
			out, err := findOutput(src, p.SrcState)
			if err != nil {
				return oasiserr.NewConfigError("link %q pipeline %d: %v", linkId, pIdx, err)
			}
			in, err := findInput(tar, p.TarElement)
			if err != nil {
				return oasiserr.NewConfigError("link %q pipeline %d: %v", linkId, pIdx, err)
			}
			provider, err := chainAdaptors(fmt.Sprintf("%s/%d", linkId, pIdx), out, p.SpatialOperators, p.TemporalOperators)
			if err != nil {
				return oasiserr.NewConfigError("link %q pipeline %d: %v", linkId, pIdx, err)
			}
			if err := comm.Connect(provider, in); err != nil {
				return err
			}
		}
	}
	return nil
}

// chainAdaptors wraps out in each requested spatial then temporal operator,
// in the order the pipeline names them, returning the final link in the
// chain (spec.md §4.7: "further wrapped by a further AdaptedOutput").
func chainAdaptors(idPrefix string, out *comm.Output, spatialOps, temporalOps []string) (comm.Provider, error) {
	var provider comm.Provider = out
	for i, op := range spatialOps {
		kind, exponent, err := parseSpatialOperator(op)
		if err != nil {
			return nil, err
		}
		id := fmt.Sprintf("%s/spatial%d", idPrefix, i)
		var ao *comm.AdaptedOutput
		switch kind {
		case "area":
			ao, err = adapt.NewSpaceAreaAdaptor(id, provider, exponent)
		case "length":
			ao, err = adapt.NewSpaceLengthAdaptor(id, provider, exponent)
		default:
			return nil, chk.Err("unknown spatial operator %q (want \"area:<exp>\" or \"length:<exp>\")", op)
		}
		if err != nil {
			return nil, err
		}
		if err := provider.AddAdaptedOutput(ao); err != nil {
			return nil, err
		}
		provider = ao
	}
	for i, op := range temporalOps {
		if op != "time" {
			return nil, chk.Err("unknown temporal operator %q (only \"time\" is defined)", op)
		}
		id := fmt.Sprintf("%s/temporal%d", idPrefix, i)
		ao := adapt.NewTimeAdaptor(id, provider)
		if err := provider.AddAdaptedOutput(ao); err != nil {
			return nil, err
		}
		provider = ao
	}
	return provider, nil
}

func parseSpatialOperator(op string) (kind string, exponent float64, err error) {
	parts := strings.SplitN(op, ":", 2)
	if len(parts) != 2 {
		return "", 0, chk.Err("spatial operator %q: want \"kind:exponent\"", op)
	}
	exponent, convErr := strconv.ParseFloat(parts[1], 64)
	if convErr != nil {
		return "", 0, chk.Err("spatial operator %q: invalid exponent: %v", op, convErr)
	}
	return parts[0], exponent, nil
}

func findOutput(c comm.Component, itemId string) (*comm.Output, error) {
	for _, o := range c.Outputs() {
		if o.ItemId() == itemId {
			return o, nil
		}
	}
	return nil, chk.Err("component %q has no output %q", c.Id(), itemId)
}

func findInput(c comm.Component, itemId string) (*comm.Input, error) {
	for _, i := range c.Inputs() {
		if i.ItemId() == itemId {
			return i, nil
		}
	}
	return nil, chk.Err("component %q has no input %q", c.Id(), itemId)
}

// driveToCompletion runs every component's lifecycle (spec.md §4.6):
// Initialize, Validate, Prepare, then repeated Update until Done or Failed,
// then Finish. Components are driven in map order; a pulled component may
// already have advanced past Updated by the time its own turn comes, in
// which case Update is a no-op (the state machine tolerates this).
func driveToCompletion(comps map[string]comm.Component) error {
	for id, c := range comps {
		if err := c.Initialize(); err != nil {
			return oasiserr.NewConfigError("component %q: initialize failed: %v", id, err)
		}
		if err := c.Validate(); err != nil {
			return oasiserr.NewConfigError("component %q: validate failed: %v", id, err)
		}
		if err := c.Prepare(); err != nil {
			return oasiserr.NewConfigError("component %q: prepare failed: %v", id, err)
		}
	}
	pending := make(map[string]comm.Component, len(comps))
	for id, c := range comps {
		pending[id] = c
	}
	for len(pending) > 0 {
		for id, c := range pending {
			if err := c.Update(); err != nil {
				return oasiserr.NewConfigError("component %q: update failed: %v", id, err)
			}
			if c.Status() == comm.Done || c.Status() == comm.Failed {
				delete(pending, id)
			}
		}
	}
	for id, c := range comps {
		if err := c.Finish(); err != nil {
			return oasiserr.NewConfigError("component %q: finish failed: %v", id, err)
		}
	}
	return nil
}

// printSummary renders the launcher's final diagnostic tables (component
// status, iteration groups) via go-pretty, flushed on process exit.
func printSummary(cfg *config.LinkConfig, groups []config.IterationGroup, comps map[string]comm.Component) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"component", "type", "task", "status"})
	for id, spec := range cfg.Comps {
		status := "n/a"
		if c, ok := comps[id]; ok {
			status = c.Status().String()
		}
		t.AppendRow(table.Row{id, spec.Type, spec.Task, status})
	}
	t.Render()

	if len(groups) == 0 {
		return
	}
	g := table.NewWriter()
	g.SetOutputMirror(os.Stdout)
	g.AppendHeader(table.Row{"iteration group", "links", "max iter", "tolerance", "relaxation"})
	for _, grp := range groups {
		g.AppendRow(table.Row{grp.Id, grp.LinkIds, grp.MaxIter, grp.Tolerance, grp.Relaxation})
	}
	g.Render()
}
