// Package libc provides the shim's entry points under their C names. Each
// function mirrors the C prototype quoted above it, takes the caller's errno
// slot first and answers from the compat policy table without looking at its
// arguments.
package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

func apply(ctx compat.Context, nr compat.NR) int64 {
	return compat.MustLookup(nr).Apply(ctx)
}
