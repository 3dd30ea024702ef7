package libc

import (
	compat "github.com/wnxd/microdbg-compat"
)

// int sigaltstack(const stack_t *ss, stack_t *old_ss);
func Sigaltstack(ctx compat.Context, ss, oldSs uintptr) int32 {
	return int32(apply(ctx, compat.NR_sigaltstack))
}

// long ptrace(int request, pid_t pid, void *addr, void *data);
func Ptrace(ctx compat.Context, request int32, pid int32, addr, data uintptr) int {
	return int(apply(ctx, compat.NR_ptrace))
}

// int iopl(int level);
func Iopl(ctx compat.Context, level int32) int32 {
	return int32(apply(ctx, compat.NR_iopl))
}

// int ioperm(unsigned long from, unsigned long num, int turn_on);
func Ioperm(ctx compat.Context, from, num uint, turnOn int32) int32 {
	return int32(apply(ctx, compat.NR_ioperm))
}
