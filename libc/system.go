package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

// int reboot(int cmd);
func Reboot(ctx compat.Context, cmd int32) int32 {
	return int32(apply(ctx, compat.NR_reboot))
}

// int pivot_root(const char *new_root, const char *put_old);
func PivotRoot(ctx compat.Context, newRoot, putOld uintptr) int32 {
	return int32(apply(ctx, compat.NR_pivot_root))
}

// int setdomainname(const char *name, size_t len);
func Setdomainname(ctx compat.Context, name uintptr, len uint) int32 {
	return int32(apply(ctx, compat.NR_setdomainname))
}

// int adjtimex(struct timex *buf);
func Adjtimex(ctx compat.Context, buf uintptr) int32 {
	return int32(apply(ctx, compat.NR_adjtimex))
}

// int settimeofday(const struct timeval *tv, const struct timezone *tz);
func Settimeofday(ctx compat.Context, tv, tz uintptr) int32 {
	return int32(apply(ctx, compat.NR_settimeofday))
}
