// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package option

// UnwrapNilError is the panic value raised by [Option.Unwrap] when the
// Option is Nil.
type UnwrapNilError struct{}

// Error implements error.
func (e *UnwrapNilError) Error() string {
	return "option: attempted to unwrap Nil"
}

// ExpectNilError is the panic value raised by [Option.Expect] when the
// Option is Nil. It carries the caller-supplied message.
type ExpectNilError struct {
	Message string
}

// Error implements error.
func (e *ExpectNilError) Error() string {
	if e.Message == "" {
		return "option: expected Some but found Nil"
	}
	return e.Message
}
