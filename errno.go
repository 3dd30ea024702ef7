package compat

import "strconv"

// Errno is a Linux errno value as seen by the guest. Values follow the Linux
// numbering regardless of the host the shim runs on.
type Errno int32

const (
	EPERM  Errno = 1
	ENOSYS Errno = 38
)

var errnoNames = map[Errno]string{
	EPERM:  "EPERM",
	ENOSYS: "ENOSYS",
}

var errnoMessages = map[Errno]string{
	EPERM:  "operation not permitted",
	ENOSYS: "function not implemented",
}

func (e Errno) Error() string {
	if msg, ok := errnoMessages[e]; ok {
		return msg
	}
	return "errno " + strconv.Itoa(int(e))
}

// Name returns the symbolic name of e, or its number if it has none.
func (e Errno) Name() string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return strconv.Itoa(int(e))
}
