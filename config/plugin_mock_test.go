// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/cpmech/oasis/comm"
)

// stubComponent is the minimal comm.Component a mocked factory can hand
// back without pulling in a real stepper.
type stubComponent struct{ id string }

func (s *stubComponent) Id() string          { return s.id }
func (s *stubComponent) Status() comm.Status { return comm.Created }
func (s *stubComponent) Initialize() error   { return nil }
func (s *stubComponent) Validate() error     { return nil }
func (s *stubComponent) Prepare() error      { return nil }
func (s *stubComponent) Update() error       { return nil }
func (s *stubComponent) Finish() error       { return nil }
func (s *stubComponent) Inputs() []*comm.Input   { return nil }
func (s *stubComponent) Outputs() []*comm.Output { return nil }
func (s *stubComponent) NowTime() float64    { return 0 }
func (s *stubComponent) EndTime() float64    { return 0 }

func TestInstantiateComponentUsesFactory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := NewMockComponentFactory(ctrl)
	factory.EXPECT().
		GetOasisComponent("rain-gauge", "rainfall", "tasks/rain.yaml").
		Return(&stubComponent{id: "rain-gauge"}, nil)

	c, err := InstantiateComponent(factory, "rain-gauge", ComponentSpec{Type: "rainfall", Task: "tasks/rain.yaml"})
	if err != nil {
		t.Fatalf("InstantiateComponent failed: %v", err)
	}
	if c.Id() != "rain-gauge" {
		t.Fatalf("expected component id %q, got %q", "rain-gauge", c.Id())
	}
}

func TestInstantiateComponentWrapsFactoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := NewMockComponentFactory(ctrl)
	factory.EXPECT().
		GetOasisComponent("broken", "rainfall", "").
		Return(nil, oasiserrStub{})

	if _, err := InstantiateComponent(factory, "broken", ComponentSpec{Type: "rainfall"}); err == nil {
		t.Fatal("expected an error when the factory fails")
	}
}

// oasiserrStub is a trivial error used only to exercise the failure path
// above without importing a specific oasiserr kind.
type oasiserrStub struct{}

func (oasiserrStub) Error() string { return "factory failed" }
