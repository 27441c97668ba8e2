// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oasiserr names the error kinds shared across the comm, mesh,
// numeric and config packages (spec.md §7). spatial.MappingError/BoundsError
// and temporal.OutOfHorizonError stay local to the packages that raise them
// since they are recoverable at a specific enclosing layer (the adapted
// output / mapper caller); the kinds here propagate to the enclosing
// component or link-setup call per §7's policy table.
package oasiserr

import "github.com/cpmech/gosl/chk"

// ConfigError signals malformed or missing link/task/mesh configuration;
// fatal to the launcher.
type ConfigError struct{ msg string }

func (e *ConfigError) Error() string { return e.msg }

// NewConfigError builds a ConfigError.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: chk.Err(format, args...).Error()}
}

// ContractViolation signals an out-of-range index, a wrong value type
// placed into a value set, an illegal state-transition request, or a mixed
// stamp/span time insertion; fatal to the caller.
type ContractViolation struct{ msg string }

func (e *ContractViolation) Error() string { return e.msg }

// NewContractViolation builds a ContractViolation.
func NewContractViolation(format string, args ...interface{}) *ContractViolation {
	return &ContractViolation{msg: chk.Err(format, args...).Error()}
}

// IncompatibleItem signals a rejected exchange-item connection; surfaced to
// the user, the caller's connection operation is reverted.
type IncompatibleItem struct{ msg string }

func (e *IncompatibleItem) Error() string { return e.msg }

// NewIncompatibleItem builds an IncompatibleItem.
func NewIncompatibleItem(format string, args ...interface{}) *IncompatibleItem {
	return &IncompatibleItem{msg: chk.Err(format, args...).Error()}
}

// NotImplemented signals an explicitly unimplemented combination: polyline
// to polyline mapping, 3-D cell volume for non-tetrahedral cells, etc.
type NotImplemented struct{ msg string }

func (e *NotImplemented) Error() string { return e.msg }

// NewNotImplemented builds a NotImplemented.
func NewNotImplemented(format string, args ...interface{}) *NotImplemented {
	return &NotImplemented{msg: chk.Err(format, args...).Error()}
}

// ComputationFailure signals a component's update() could not advance.
// comm.BaseComponent.Update handles it like any other step error: the
// component moves to Failed and the error is returned; no fallback to
// buffered estimates is made.
type ComputationFailure struct{ msg string }

func (e *ComputationFailure) Error() string { return e.msg }

// NewComputationFailure builds a ComputationFailure.
func NewComputationFailure(format string, args ...interface{}) *ComputationFailure {
	return &ComputationFailure{msg: chk.Err(format, args...).Error()}
}
