package kernel

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	compat "github.com/wnxd/microdbg-compat"
	"github.com/wnxd/microdbg/debugger"
	"github.com/wnxd/microdbg/emulator"
	emu_arm "github.com/wnxd/microdbg/emulator/arm"
	emu_arm64 "github.com/wnxd/microdbg/emulator/arm64"
	"go.uber.org/zap"
)

var _ compat.Kernel = (*Kernel)(nil)

type Kernel struct {
	sys      Syscall
	numbers  map[uint64]compat.NR
	log      *zap.Logger
	intrHook debugger.HookHandler

	mu    sync.Mutex
	errno map[int]compat.Errno
}

type Option func(*Kernel)

// WithLogger makes the kernel log every dispatched call at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(k *Kernel) {
		k.log = log
	}
}

func newKernel(numbers map[uint64]compat.NR, opts ...Option) *Kernel {
	k := &Kernel{
		numbers: numbers,
		log:     zap.NewNop(),
		errno:   make(map[int]compat.Errno),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// NewKernel installs the shim on dbg. Syscalls the shim does not know are
// left to the next interrupt hook.
func NewKernel(dbg debugger.Debugger, opts ...Option) (*Kernel, error) {
	var k *Kernel
	var handleIntr debugger.InterruptCallback
	switch dbg.Emulator().Arch() {
	case emulator.ARCH_ARM:
		k = newKernel(armNumbers, opts...)
		handleIntr = k.armIntr
	case emulator.ARCH_ARM64:
		k = newKernel(arm64Numbers, opts...)
		handleIntr = k.arm64Intr
	default:
		return nil, emulator.ErrArchUnsupported
	}
	hook, err := dbg.AddHook(emulator.HOOK_TYPE_INTR, handleIntr, nil, 1, 0)
	if err != nil {
		return nil, errors.Wrap(err, "unable to install syscall hook")
	}
	k.intrHook = hook
	return k, nil
}

func (k *Kernel) Close() error {
	if k.intrHook != nil {
		k.intrHook.Close()
	}
	return nil
}

func (k *Kernel) NR(no uint64) compat.NR {
	if nr, ok := k.numbers[no]; ok {
		return nr
	}
	return compat.NR_unknown
}

func (k *Kernel) Syscall() compat.Syscall {
	return &k.sys
}

// Errno returns the errno left by the last failed call of task.
func (k *Kernel) Errno(task int) compat.Errno {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.errno[task]
}

func (k *Kernel) setErrno(task int, err compat.Errno) {
	k.mu.Lock()
	k.errno[task] = err
	k.mu.Unlock()
}

// dispatch runs syscall no for task. It reports false when no is not part of
// the shim.
func (k *Kernel) dispatch(task int, no uint64, args []uint64) (uint64, bool) {
	nr := k.NR(no)
	call := k.sys.Get(nr)
	if call == nil {
		k.log.Debug("unhandled syscall", zap.Int("task", task), zap.Uint64("no", no))
		return 0, false
	}
	ctx := compat.NewContext()
	r := call(ctx, args...)
	fields := []zap.Field{
		zap.Int("task", task),
		zap.Stringer("nr", nr),
		zap.Uint64s("args", args),
		zap.Int64("ret", int64(r)),
	}
	if errno := ctx.Errno(); errno != 0 {
		k.setErrno(task, errno)
		fields = append(fields, zap.String("errno", errno.Name()))
	}
	k.log.Debug("syscall", fields...)
	return r, true
}

func (k *Kernel) armIntr(ctx debugger.Context, intno uint64, data any) debugger.HookResult {
	const CPSR_T = 1 << 5

	if intno != emu_arm.ARM_INTR_EXCP_SWI {
		return debugger.HookResult_Next
	}
	pc_cpsr, err := ctx.RegReadBatch(emu_arm.ARM_REG_PC, emu_arm.ARM_REG_CPSR)
	if err != nil {
		return debugger.HookResult_Next
	}
	if pc_cpsr[1]&CPSR_T != 0 {
		var code uint16
		err = ctx.ToPointer(pc_cpsr[0]-2).MemReadPtr(2, unsafe.Pointer(&code))
		if err != nil {
			return debugger.HookResult_Next
		} else if swi := code & 0xff; swi != 0 {
			return debugger.HookResult_Next
		}
	} else {
		var code uint32
		err = ctx.ToPointer(pc_cpsr[0]-4).MemReadPtr(4, unsafe.Pointer(&code))
		if err != nil {
			return debugger.HookResult_Next
		} else if swi := code & 0xffffff; swi != 0 {
			return debugger.HookResult_Next
		}
	}
	nr, err := ctx.RegRead(emu_arm.ARM_REG_R7)
	if err != nil {
		return debugger.HookResult_Next
	}
	args, err := ctx.RegReadBatch(emu_arm.ARM_REG_R0, emu_arm.ARM_REG_R1, emu_arm.ARM_REG_R2, emu_arm.ARM_REG_R3, emu_arm.ARM_REG_R4, emu_arm.ARM_REG_R5)
	if err != nil {
		return debugger.HookResult_Next
	}
	r, ok := k.dispatch(int(ctx.TaskID()), nr, args)
	if !ok {
		return debugger.HookResult_Next
	}
	ctx.RegWrite(emu_arm.ARM_REG_R0, r)
	return debugger.HookResult_Done
}

func (k *Kernel) arm64Intr(ctx debugger.Context, intno uint64, data any) debugger.HookResult {
	if intno != emu_arm.ARM_INTR_EXCP_SWI {
		return debugger.HookResult_Next
	}
	pc, err := ctx.RegRead(emu_arm64.ARM64_REG_PC)
	if err != nil {
		return debugger.HookResult_Next
	}
	var code uint32
	err = ctx.ToPointer(pc-4).MemReadPtr(4, unsafe.Pointer(&code))
	if err != nil {
		return debugger.HookResult_Next
	}
	if svc := (code >> 5) & 0xffff; svc != 0 {
		return debugger.HookResult_Next
	}
	nr, err := ctx.RegRead(emu_arm64.ARM64_REG_X8)
	if err != nil {
		return debugger.HookResult_Next
	}
	args, err := ctx.RegReadBatch(emu_arm64.ARM64_REG_X0, emu_arm64.ARM64_REG_X1, emu_arm64.ARM64_REG_X2, emu_arm64.ARM64_REG_X3, emu_arm64.ARM64_REG_X4, emu_arm64.ARM64_REG_X5)
	if err != nil {
		return debugger.HookResult_Next
	}
	r, ok := k.dispatch(int(ctx.TaskID()), nr, args)
	if !ok {
		return debugger.HookResult_Next
	}
	ctx.RegWrite(emu_arm64.ARM64_REG_X0, r)
	return debugger.HookResult_Done
}
