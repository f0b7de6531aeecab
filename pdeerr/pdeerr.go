// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pdeerr implements the error taxonomy of spec §7 as a typed error,
// formatted the way gosl/chk.Err formats the teacher's fatal errors.
package pdeerr

import "github.com/cpmech/gosl/io"

// Kind enumerates the distinct fatal error kinds of spec §7. These are
// kinds, not Go types: callers switch on Kind rather than on concrete type.
type Kind int

const (
	ShapeMismatch Kind = iota
	MalformedBoundary
	NonUniformMultidim
	NonMonotoneGrid
	UndersizedGrid
	NoProgress
	NumericalInstability
	BoundaryIllConditioned
)

func (k Kind) String() string {
	switch k {
	case ShapeMismatch:
		return "ShapeMismatch"
	case MalformedBoundary:
		return "MalformedBoundary"
	case NonUniformMultidim:
		return "NonUniformMultidim"
	case NonMonotoneGrid:
		return "NonMonotoneGrid"
	case UndersizedGrid:
		return "UndersizedGrid"
	case NoProgress:
		return "NoProgress"
	case NumericalInstability:
		return "NumericalInstability"
	case BoundaryIllConditioned:
		return "BoundaryIllConditioned"
	}
	return "Unknown"
}

// Error is the fatal error type every layer returns for conditions in
// spec §7. All such conditions are fatal to the step (propagation policy):
// callers are not expected to recover mid-step.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

// New builds an *Error with a message formatted the way chk.Err formats the
// teacher's errors (io.Sf under the hood).
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, for errors.Is-style
// use without requiring callers to import this package's concrete type.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
