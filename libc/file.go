package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

// int klogctl(int type, char *bufp, int len);
func Klogctl(ctx compat.Context, typ int32, bufp uintptr, len int32) int32 {
	return int32(apply(ctx, compat.NR_klogctl))
}

// ssize_t sendfile(int out_fd, int in_fd, off_t *offset, size_t count);
func Sendfile(ctx compat.Context, outFd, inFd int32, offset uintptr, count uint) int {
	return int(apply(ctx, compat.NR_sendfile))
}

// ssize_t sendfile64(int out_fd, int in_fd, off64_t *offset, size_t count);
func Sendfile64(ctx compat.Context, outFd, inFd int32, offset uintptr, count uint) int {
	return int(apply(ctx, compat.NR_sendfile64))
}

// int acct(const char *filename);
func Acct(ctx compat.Context, filename uintptr) int32 {
	return int32(apply(ctx, compat.NR_acct))
}
