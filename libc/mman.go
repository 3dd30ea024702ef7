package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

// int madvise(void *addr, size_t length, int advice);
func Madvise(ctx compat.Context, addr uintptr, length uint, advice int32) int32 {
	return int32(apply(ctx, compat.NR_madvise))
}

// int mlock(const void *addr, size_t len);
func Mlock(ctx compat.Context, addr uintptr, len uint) int32 {
	return int32(apply(ctx, compat.NR_mlock))
}

// int munlock(const void *addr, size_t len);
func Munlock(ctx compat.Context, addr uintptr, len uint) int32 {
	return int32(apply(ctx, compat.NR_munlock))
}

// int mlockall(int flags);
func Mlockall(ctx compat.Context, flags int32) int32 {
	return int32(apply(ctx, compat.NR_mlockall))
}

// int munlockall(void);
func Munlockall(ctx compat.Context) int32 {
	return int32(apply(ctx, compat.NR_munlockall))
}

// int msync(void *addr, size_t length, int flags);
func Msync(ctx compat.Context, addr uintptr, length uint, flags int32) int32 {
	return int32(apply(ctx, compat.NR_msync))
}
