package kernel

import (
	compat "github.com/wnxd/microdbg-compat"
)

// armNumbers follows the ARM EABI syscall table.
var armNumbers = map[uint64]compat.NR{
	26:  compat.NR_ptrace,
	51:  compat.NR_acct,
	79:  compat.NR_settimeofday,
	88:  compat.NR_reboot,
	103: compat.NR_klogctl,
	121: compat.NR_setdomainname,
	124: compat.NR_adjtimex,
	144: compat.NR_msync,
	150: compat.NR_mlock,
	151: compat.NR_munlock,
	152: compat.NR_mlockall,
	153: compat.NR_munlockall,
	186: compat.NR_sigaltstack,
	187: compat.NR_sendfile,
	218: compat.NR_pivot_root,
	220: compat.NR_madvise,
	239: compat.NR_sendfile64,
}

// arm64Numbers follows the generic syscall table. sendfile only exists with
// a 64-bit offset there.
var arm64Numbers = map[uint64]compat.NR{
	41:  compat.NR_pivot_root,
	71:  compat.NR_sendfile64,
	89:  compat.NR_acct,
	116: compat.NR_klogctl,
	117: compat.NR_ptrace,
	132: compat.NR_sigaltstack,
	142: compat.NR_reboot,
	162: compat.NR_setdomainname,
	170: compat.NR_settimeofday,
	171: compat.NR_adjtimex,
	227: compat.NR_msync,
	228: compat.NR_mlock,
	229: compat.NR_munlock,
	230: compat.NR_mlockall,
	231: compat.NR_munlockall,
	233: compat.NR_madvise,
}

func number(numbers map[uint64]compat.NR, nr compat.NR) (uint64, bool) {
	for no, n := range numbers {
		if n == nr {
			return no, true
		}
	}
	return 0, false
}

// ARMNumber returns the syscall number an ARM guest uses for nr.
func ARMNumber(nr compat.NR) (uint64, bool) {
	return number(armNumbers, nr)
}

// ARM64Number returns the syscall number an ARM64 guest uses for nr.
func ARM64Number(nr compat.NR) (uint64, bool) {
	return number(arm64Numbers, nr)
}
