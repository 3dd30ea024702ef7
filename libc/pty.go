package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

// int posix_openpt(int flags);
func PosixOpenpt(ctx compat.Context, flags int32) int32 {
	return int32(apply(ctx, compat.NR_posix_openpt))
}

// int unlockpt(int fd);
func Unlockpt(ctx compat.Context, fd int32) int32 {
	return int32(apply(ctx, compat.NR_unlockpt))
}
