package kernel

import (
	"math"

	compat "github.com/wnxd/microdbg-compat"
	"github.com/wnxd/microdbg-compat/libc"
)

type Syscall struct {
}

func NewSyscall() *Syscall {
	return new(Syscall)
}

func (sys *Syscall) Get(nr compat.NR) func(compat.Context, ...uint64) uint64 {
	switch nr {
	case compat.NR_reject:
		return sys.Reject
	case compat.NR_ignore:
		return sys.Ignore
	case compat.NR_klogctl:
		return sys.Emulate_klogctl
	case compat.NR_sendfile:
		return sys.Emulate_sendfile
	case compat.NR_sendfile64:
		return sys.Emulate_sendfile64
	case compat.NR_posix_openpt:
		return sys.Emulate_posix_openpt
	case compat.NR_unlockpt:
		return sys.Emulate_unlockpt
	case compat.NR_sigaltstack:
		return sys.Emulate_sigaltstack
	case compat.NR_madvise:
		return sys.Emulate_madvise
	case compat.NR_mlock:
		return sys.Emulate_mlock
	case compat.NR_munlock:
		return sys.Emulate_munlock
	case compat.NR_mlockall:
		return sys.Emulate_mlockall
	case compat.NR_munlockall:
		return sys.Emulate_munlockall
	case compat.NR_msync:
		return sys.Emulate_msync
	case compat.NR_ptrace:
		return sys.Emulate_ptrace
	case compat.NR_reboot:
		return sys.Emulate_reboot
	case compat.NR_iopl:
		return sys.Emulate_iopl
	case compat.NR_ioperm:
		return sys.Emulate_ioperm
	case compat.NR_pivot_root:
		return sys.Emulate_pivot_root
	case compat.NR_adjtimex:
		return sys.Emulate_adjtimex
	case compat.NR_acct:
		return sys.Emulate_acct
	case compat.NR_setdomainname:
		return sys.Emulate_setdomainname
	case compat.NR_settimeofday:
		return sys.Emulate_settimeofday
	}
	return nil
}

// Symbol resolves an entry point by its C name, for callers that bind by
// symbol rather than by trapping a syscall number. Calls without a syscall
// number, such as posix_openpt or iopl on ARM, are only reachable this way.
func (sys *Syscall) Symbol(name string) func(compat.Context, ...uint64) uint64 {
	nr := compat.ParseNR(name)
	if nr == compat.NR_unknown {
		return nil
	}
	return sys.Get(nr)
}

func (sys *Syscall) Reject(ctx compat.Context, args ...uint64) uint64 {
	ctx.SetErrno(compat.ENOSYS)
	return math.MaxUint64
}

func (sys *Syscall) Ignore(ctx compat.Context, args ...uint64) uint64 {
	return 0
}

// regs pads args to the six argument registers so that short argument lists
// read as zero.
func regs(args []uint64) (r [6]uint64) {
	copy(r[:], args)
	return
}

func (sys *Syscall) Emulate_klogctl(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Klogctl(ctx, int32(a[0]), uintptr(a[1]), int32(a[2]))
	return uint64(r)
}

func (sys *Syscall) Emulate_sendfile(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Sendfile(ctx, int32(a[0]), int32(a[1]), uintptr(a[2]), uint(a[3]))
	return uint64(r)
}

func (sys *Syscall) Emulate_sendfile64(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Sendfile64(ctx, int32(a[0]), int32(a[1]), uintptr(a[2]), uint(a[3]))
	return uint64(r)
}

func (sys *Syscall) Emulate_posix_openpt(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.PosixOpenpt(ctx, int32(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_unlockpt(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Unlockpt(ctx, int32(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_sigaltstack(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Sigaltstack(ctx, uintptr(a[0]), uintptr(a[1]))
	return uint64(r)
}

func (sys *Syscall) Emulate_madvise(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Madvise(ctx, uintptr(a[0]), uint(a[1]), int32(a[2]))
	return uint64(r)
}

func (sys *Syscall) Emulate_mlock(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Mlock(ctx, uintptr(a[0]), uint(a[1]))
	return uint64(r)
}

func (sys *Syscall) Emulate_munlock(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Munlock(ctx, uintptr(a[0]), uint(a[1]))
	return uint64(r)
}

func (sys *Syscall) Emulate_mlockall(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Mlockall(ctx, int32(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_munlockall(ctx compat.Context, args ...uint64) uint64 {
	r := libc.Munlockall(ctx)
	return uint64(r)
}

func (sys *Syscall) Emulate_msync(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Msync(ctx, uintptr(a[0]), uint(a[1]), int32(a[2]))
	return uint64(r)
}

func (sys *Syscall) Emulate_ptrace(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Ptrace(ctx, int32(a[0]), int32(a[1]), uintptr(a[2]), uintptr(a[3]))
	return uint64(r)
}

func (sys *Syscall) Emulate_reboot(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Reboot(ctx, int32(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_iopl(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Iopl(ctx, int32(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_ioperm(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Ioperm(ctx, uint(a[0]), uint(a[1]), int32(a[2]))
	return uint64(r)
}

func (sys *Syscall) Emulate_pivot_root(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.PivotRoot(ctx, uintptr(a[0]), uintptr(a[1]))
	return uint64(r)
}

func (sys *Syscall) Emulate_adjtimex(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Adjtimex(ctx, uintptr(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_acct(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Acct(ctx, uintptr(a[0]))
	return uint64(r)
}

func (sys *Syscall) Emulate_setdomainname(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Setdomainname(ctx, uintptr(a[0]), uint(a[1]))
	return uint64(r)
}

func (sys *Syscall) Emulate_settimeofday(ctx compat.Context, args ...uint64) uint64 {
	a := regs(args)
	r := libc.Settimeofday(ctx, uintptr(a[0]), uintptr(a[1]))
	return uint64(r)
}
