// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/oasis/temporal"
)

// Status is a component's position in the state machine of spec.md §4.6.
type Status int

// component statuses
const (
	Created Status = iota
	Initializing
	Initialized
	Validating
	Valid
	Invalid
	Preparing
	Updated
	Updating
	WaitingForData
	Done
	Finishing
	Finished
	Failed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Initializing:
		return "Initializing"
	case Initialized:
		return "Initialized"
	case Validating:
		return "Validating"
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	case Preparing:
		return "Preparing"
	case Updated:
		return "Updated"
	case Updating:
		return "Updating"
	case WaitingForData:
		return "WaitingForData"
	case Done:
		return "Done"
	case Finishing:
		return "Finishing"
	case Finished:
		return "Finished"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// legalTransitions enumerates every edge of the diagram in spec.md §4.6; any
// transition not listed here is illegal.
var legalTransitions = map[Status][]Status{
	Created:        {Initializing},
	Initializing:   {Initialized},
	Initialized:    {Validating},
	Validating:     {Valid, Invalid},
	Valid:          {Preparing},
	Preparing:      {Updated},
	Updated:        {WaitingForData, Finishing},
	WaitingForData: {Updating},
	Updating:       {Updated, Done, Failed},
	Done:           {Finishing},
	Failed:         {Finishing},
	Finishing:      {Finished, Created},
}

func canTransition(from, to Status) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Component is the contract every simulated participant satisfies: a
// lifecycle (Initialize..Finish) plus the exchange items it owns.
type Component interface {
	Id() string
	Status() Status
	Initialize() error
	Validate() error
	Prepare() error

	// Update implements spec.md §4.6's update() contract: pulls inputs,
	// applies them to component state, advances one time step, and
	// refreshes outputs.
	Update() error
	Finish() error

	Inputs() []*Input
	Outputs() []*Output

	// NowTime/EndTime give the component's current and target simulation
	// time, in days since 1970-01-01 UTC (spec.md §6's time representation).
	NowTime() float64
	EndTime() float64
}

// Stepper is the part of a component's behavior that is specific to what it
// simulates: applying pulled input values to internal state and advancing
// exactly one time step. BaseComponent drives everything else (state
// machine, input pulls, output refresh) around it.
type Stepper interface {
	// ApplyInputs is called once all inputs have fresh values; it should
	// copy them into whatever internal state the stepper advances.
	ApplyInputs() error

	// Step advances internal state by one time step, returning the new
	// now-time, or an error if the step could not be completed.
	Step() (nowTime float64, err error)

	// RefreshOutputs pushes the stepper's current internal state into its
	// owned outputs' value sets after a successful Step.
	RefreshOutputs() error
}

// BaseComponent implements the Component state machine and update()
// contract of spec.md §4.6 around a caller-supplied Stepper. Embed it and
// supply Initialize/Validate/Prepare hooks as needed; Update and Finish need
// no further customization by most components.
type BaseComponent struct {
	id      string
	status  Status
	stepper Stepper
	inputs  []*Input
	outputs []*Output
	now     float64
	end     float64
	saved   *stateSnapshot

	// OnInitialize/OnValidate/OnPrepare are optional hooks invoked during the
	// matching lifecycle call, after the state machine has already moved to
	// the Initializing/Validating/Preparing status. A nil hook is a no-op.
	OnInitialize func() error
	OnValidate   func() (bool, []string)
	OnPrepare    func() error
}

// NewBaseComponent creates a component in the Created status, running from
// nowTime to endTime (inclusive), driven by stepper.
func NewBaseComponent(id string, stepper Stepper, nowTime, endTime float64) *BaseComponent {
	return &BaseComponent{id: id, stepper: stepper, now: nowTime, end: endTime}
}

func (c *BaseComponent) Id() string       { return c.id }
func (c *BaseComponent) Status() Status   { return c.status }
func (c *BaseComponent) NowTime() float64 { return c.now }
func (c *BaseComponent) EndTime() float64 { return c.end }
func (c *BaseComponent) Inputs() []*Input   { return c.inputs }
func (c *BaseComponent) Outputs() []*Output { return c.outputs }

// AddInput/AddOutput register exchange items owned by this component; call
// during construction, before Initialize.
func (c *BaseComponent) AddInput(i *Input)   { c.inputs = append(c.inputs, i) }
func (c *BaseComponent) AddOutput(o *Output) { c.outputs = append(c.outputs, o) }

func (c *BaseComponent) transition(to Status) error {
	if !canTransition(c.status, to) {
		return chk.Err("component %q: illegal transition %s -> %s", c.id, c.status, to)
	}
	c.status = to
	return nil
}

// Initialize moves Created -> Initializing -> Initialized.
func (c *BaseComponent) Initialize() error {
	if err := c.transition(Initializing); err != nil {
		return err
	}
	if c.OnInitialize != nil {
		if err := c.OnInitialize(); err != nil {
			return err
		}
	}
	return c.transition(Initialized)
}

// Validate moves Initialized -> Validating -> {Valid, Invalid}.
func (c *BaseComponent) Validate() error {
	if err := c.transition(Validating); err != nil {
		return err
	}
	ok, diagnostics := true, []string(nil)
	if c.OnValidate != nil {
		ok, diagnostics = c.OnValidate()
	}
	if !ok {
		_ = c.transition(Invalid)
		return chk.Err("component %q: invalid: %v", c.id, diagnostics)
	}
	return c.transition(Valid)
}

// Prepare moves Valid -> Preparing -> Updated.
func (c *BaseComponent) Prepare() error {
	if err := c.transition(Preparing); err != nil {
		return err
	}
	if c.OnPrepare != nil {
		if err := c.OnPrepare(); err != nil {
			return err
		}
	}
	return c.transition(Updated)
}

// Update implements spec.md §4.6's update() contract.
func (c *BaseComponent) Update() error {
	switch c.status {
	case Done, Finished, Failed:
		return nil
	case Updating, WaitingForData:
		return nil // current values already reflect the latest completed step
	}
	if err := c.transition(WaitingForData); err != nil {
		return err
	}
	for _, in := range c.inputs {
		if len(in.Providers()) == 0 {
			continue
		}
		if _, err := in.GetValues(); err != nil {
			_ = c.transition(Failed)
			return err
		}
	}
	if err := c.stepper.ApplyInputs(); err != nil {
		_ = c.transition(Failed)
		return err
	}
	if err := c.transition(Updating); err != nil {
		return err
	}
	nowTime, err := c.stepper.Step()
	if err != nil {
		_ = c.transition(Failed)
		return err
	}
	c.now = nowTime
	if err := c.stepper.RefreshOutputs(); err != nil {
		_ = c.transition(Failed)
		return err
	}
	for _, in := range c.inputs {
		dropBefore(in.Times(), in.Values(), c.now)
	}
	if c.now >= c.end {
		return c.transition(Done)
	}
	return c.transition(Updated)
}

// Finish moves {Updated, Done, Failed} -> Finishing -> Finished.
func (c *BaseComponent) Finish() error {
	if err := c.transition(Finishing); err != nil {
		return err
	}
	return c.transition(Finished)
}

// Restart moves Updated -> Finishing -> Created, making the component usable
// again from a fresh Initialize call (spec.md §4.6's restartable edge).
func (c *BaseComponent) Restart() error {
	if err := c.transition(Finishing); err != nil {
		return err
	}
	return c.transition(Created)
}

// ManageState is an optional extension a Component may implement (and
// BaseComponent does) to support an iteration controller's fixed-point
// retries (spec.md §4.9's extension surface note), which asserts it on each
// sub-component: snapshot state before a trial step, restore it if
// the trial does not converge, and drop the snapshot once committed.
type ManageState interface {
	KeepCurrentState() error
	RestoreState() error
	ClearState()
}

// stateSnapshot holds everything KeepCurrentState needs to undo: the clock,
// the status, and every owned item's time set and value set, each deep
// copied so later mutation of the live items cannot reach into the snapshot.
type stateSnapshot struct {
	status       Status
	now          float64
	inputTimes   []*temporal.TimeSet
	inputValues  []*temporal.ValueSet2D
	outputTimes  []*temporal.TimeSet
	outputValues []*temporal.ValueSet2D
}

// KeepCurrentState implements ManageState by snapshotting the clock, status
// and every owned item's time/value sets, giving BaseComponent a real
// default an IterationController can drive without any stepper cooperation.
func (c *BaseComponent) KeepCurrentState() error {
	snap := &stateSnapshot{status: c.status, now: c.now}
	for _, in := range c.inputs {
		snap.inputTimes = append(snap.inputTimes, in.Times().Clone())
		snap.inputValues = append(snap.inputValues, in.Values().Clone())
	}
	for _, out := range c.outputs {
		snap.outputTimes = append(snap.outputTimes, out.Times().Clone())
		snap.outputValues = append(snap.outputValues, out.Values().Clone())
	}
	c.saved = snap
	return nil
}

// RestoreState rewinds the clock, status and every owned item back to the
// last KeepCurrentState snapshot, so a subsequent Update re-attempts the
// same time step rather than advancing past it.
func (c *BaseComponent) RestoreState() error {
	if c.saved == nil {
		return chk.Err("component %q: RestoreState called with no saved snapshot", c.id)
	}
	for i, in := range c.inputs {
		in.SetTimes(c.saved.inputTimes[i].Clone())
		in.SetValues(c.saved.inputValues[i].Clone())
	}
	for i, out := range c.outputs {
		out.SetTimes(c.saved.outputTimes[i].Clone())
		out.SetValues(c.saved.outputValues[i].Clone())
	}
	c.now = c.saved.now
	c.status = c.saved.status
	return nil
}

// ClearState drops the snapshot once an iteration has committed.
func (c *BaseComponent) ClearState() { c.saved = nil }
