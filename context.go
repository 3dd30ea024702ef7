package compat

// Context carries the errno slot of a single caller. Stubs write it only when
// they fail; a successful call leaves whatever value was there.
type Context interface {
	Errno() Errno
	SetErrno(err Errno)
}

type context struct {
	err Errno
}

// NewContext returns an empty errno slot. Callers running concurrently must
// each use their own.
func NewContext() Context {
	return new(context)
}

func (ctx *context) Errno() Errno {
	return ctx.err
}

func (ctx *context) SetErrno(err Errno) {
	ctx.err = err
}
