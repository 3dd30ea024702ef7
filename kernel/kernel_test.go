package kernel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	compat "github.com/wnxd/microdbg-compat"
)

func TestGetCoversEveryRule(t *testing.T) {
	sys := NewSyscall()
	for _, r := range compat.Rules() {
		call := sys.Get(r.NR)
		if call == nil {
			t.Errorf("Get(%v) = nil", r.NR)
			continue
		}
		ctx := compat.NewContext()
		got := call(ctx, 1, 2, 3, 4, 5, 6)
		want := uint64(r.Apply(compat.NewContext()))
		if got != want {
			t.Errorf("%v returned %#x, want %#x", r.NR, got, want)
		}
		if r.Policy.Failure() && ctx.Errno() != r.Errno {
			t.Errorf("%v errno = %s, want %s", r.NR, ctx.Errno().Name(), r.Errno.Name())
		}
	}
	if sys.Get(compat.NR_unknown) != nil {
		t.Error("Get(NR_unknown) != nil")
	}
}

func TestFailureSentinelIsAllOnes(t *testing.T) {
	sys := NewSyscall()
	ctx := compat.NewContext()
	if r := sys.Emulate_reboot(ctx, 0xfee1dead); r != math.MaxUint64 {
		t.Fatalf("reboot returned %#x", r)
	}
	if r := sys.Emulate_ptrace(ctx); r != math.MaxUint64 {
		t.Fatalf("ptrace returned %#x", r)
	}
	if ctx.Errno() != compat.ENOSYS {
		t.Fatalf("errno = %s, want ENOSYS", ctx.Errno().Name())
	}
}

func TestShortArgumentLists(t *testing.T) {
	sys := NewSyscall()
	for _, r := range compat.Rules() {
		if got := sys.Get(r.NR)(compat.NewContext()); got != uint64(r.Apply(compat.NewContext())) {
			t.Errorf("%v without arguments returned %#x", r.NR, got)
		}
	}
}

func TestRejectIgnore(t *testing.T) {
	sys := NewSyscall()
	ctx := compat.NewContext()
	if r := sys.Get(compat.NR_ignore)(ctx, 1); r != 0 {
		t.Errorf("Ignore returned %#x", r)
	}
	if ctx.Errno() != 0 {
		t.Errorf("Ignore set errno %s", ctx.Errno().Name())
	}
	if r := sys.Get(compat.NR_reject)(ctx, 1); r != math.MaxUint64 {
		t.Errorf("Reject returned %#x", r)
	}
	if ctx.Errno() != compat.ENOSYS {
		t.Errorf("Reject errno = %s", ctx.Errno().Name())
	}
}

func TestSymbol(t *testing.T) {
	sys := NewSyscall()
	for _, name := range []string{"posix_openpt", "unlockpt", "iopl", "ioperm", "syslog"} {
		if sys.Symbol(name) == nil {
			t.Errorf("Symbol(%q) = nil", name)
		}
	}
	for _, name := range []string{"open", "reject", ""} {
		if sys.Symbol(name) != nil {
			t.Errorf("Symbol(%q) != nil", name)
		}
	}
	ctx := compat.NewContext()
	if r := sys.Symbol("posix_openpt")(ctx, 2); r != math.MaxUint64 || ctx.Errno() != compat.ENOSYS {
		t.Errorf("posix_openpt = %#x, errno %s", r, ctx.Errno().Name())
	}
}

func TestArchNumbers(t *testing.T) {
	tests := []struct {
		name    string
		numbers map[uint64]compat.NR
		want    map[string]uint64
	}{
		{"arm", armNumbers, map[string]uint64{
			"klogctl":      103,
			"reboot":       88,
			"sigaltstack":  186,
			"settimeofday": 79,
			"sendfile64":   239,
		}},
		{"arm64", arm64Numbers, map[string]uint64{
			"klogctl":      116,
			"reboot":       142,
			"sigaltstack":  132,
			"settimeofday": 170,
			"sendfile64":   71,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make(map[string]uint64)
			for no, nr := range tt.numbers {
				if _, ok := tt.want[nr.String()]; ok {
					got[nr.String()] = no
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("numbers mismatch (-want +got):\n%s", diff)
			}
			seen := make(map[compat.NR]uint64)
			for no, nr := range tt.numbers {
				if _, ok := compat.Lookup(nr); !ok {
					t.Errorf("%d maps to %v without a rule", no, nr)
				}
				if prev, ok := seen[nr]; ok {
					t.Errorf("%v mapped by both %d and %d", nr, prev, no)
				}
				seen[nr] = no
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	k := newKernel(arm64Numbers, WithLogger(zap.New(core)))

	r, ok := k.dispatch(7, 142, []uint64{0x01234567, 0, 0, 0, 0, 0})
	if !ok || r != math.MaxUint64 {
		t.Fatalf("reboot dispatch = %#x, %v", r, ok)
	}
	if k.Errno(7) != compat.EPERM {
		t.Fatalf("task errno = %s, want EPERM", k.Errno(7).Name())
	}

	// success leaves the slot alone
	r, ok = k.dispatch(7, 228, []uint64{0x1000, 4096, 0, 0, 0, 0})
	if !ok || r != 0 {
		t.Fatalf("mlock dispatch = %#x, %v", r, ok)
	}
	if k.Errno(7) != compat.EPERM {
		t.Fatalf("task errno = %s after success, want EPERM", k.Errno(7).Name())
	}
	if k.Errno(8) != 0 {
		t.Fatalf("task 8 errno = %s, want 0", k.Errno(8).Name())
	}

	if _, ok := k.dispatch(7, 63, nil); ok {
		t.Fatal("read was claimed by the shim")
	}

	entries := logs.FilterMessage("syscall").AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("logged %d syscalls, want 2", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["nr"] != "reboot" || fields["errno"] != "EPERM" {
		t.Errorf("reboot log fields = %v", fields)
	}
	if _, ok := entries[1].ContextMap()["errno"]; ok {
		t.Error("successful call logged an errno")
	}
	if logs.FilterMessage("unhandled syscall").Len() != 1 {
		t.Error("unhandled syscall not logged")
	}
}

func TestKernelNR(t *testing.T) {
	k := newKernel(armNumbers)
	if nr := k.NR(103); nr != compat.NR_klogctl {
		t.Errorf("NR(103) = %v", nr)
	}
	if nr := k.NR(3); nr != compat.NR_unknown {
		t.Errorf("NR(3) = %v", nr)
	}
	if k.Syscall().Get(k.NR(26)) == nil {
		t.Error("ptrace not reachable through Syscall()")
	}
}
