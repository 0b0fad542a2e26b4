// Copyright 2016 The Gohx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import "github.com/cpmech/gosl/io"

// ValidationError indicates malformed, contradictory, or physically
// inconsistent input; e.g. wet-bulb above dry-bulb, negative mass flow, or
// supersaturation after sensible cooling
type ValidationError struct {
	Msg string
}

// Error returns the message
func (o *ValidationError) Error() string { return o.Msg }

// ConvergenceError indicates that an iterative solution failed to meet the
// tolerance within the iteration cap
type ConvergenceError struct {
	Msg string
}

// Error returns the message
func (o *ConvergenceError) Error() string { return o.Msg }

// ValErr returns a formatted ValidationError
func ValErr(msg string, prm ...interface{}) *ValidationError {
	return &ValidationError{io.Sf(msg, prm...)}
}

// ConvErr returns a formatted ConvergenceError
func ConvErr(msg string, prm ...interface{}) *ConvergenceError {
	return &ConvergenceError{io.Sf(msg, prm...)}
}
