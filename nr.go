package compat

// NR identifies one entry point of the shim. It is not a syscall number:
// architecture specific numbers are translated by the kernel that traps them.
type NR uint32

const (
	NR_unknown NR = iota
	NR_reject
	NR_ignore
	NR_klogctl
	NR_sendfile
	NR_sendfile64
	NR_posix_openpt
	NR_unlockpt
	NR_sigaltstack
	NR_madvise
	NR_mlock
	NR_munlock
	NR_mlockall
	NR_munlockall
	NR_msync
	NR_ptrace
	NR_reboot
	NR_iopl
	NR_ioperm
	NR_pivot_root
	NR_adjtimex
	NR_acct
	NR_setdomainname
	NR_settimeofday

	nrCount
)

var nrNames = [nrCount]string{
	NR_unknown:       "unknown",
	NR_reject:        "reject",
	NR_ignore:        "ignore",
	NR_klogctl:       "klogctl",
	NR_sendfile:      "sendfile",
	NR_sendfile64:    "sendfile64",
	NR_posix_openpt:  "posix_openpt",
	NR_unlockpt:      "unlockpt",
	NR_sigaltstack:   "sigaltstack",
	NR_madvise:       "madvise",
	NR_mlock:         "mlock",
	NR_munlock:       "munlock",
	NR_mlockall:      "mlockall",
	NR_munlockall:    "munlockall",
	NR_msync:         "msync",
	NR_ptrace:        "ptrace",
	NR_reboot:        "reboot",
	NR_iopl:          "iopl",
	NR_ioperm:        "ioperm",
	NR_pivot_root:    "pivot_root",
	NR_adjtimex:      "adjtimex",
	NR_acct:          "acct",
	NR_setdomainname: "setdomainname",
	NR_settimeofday:  "settimeofday",
}

// aliases are other symbol names the same entry points are linked under.
var aliases = map[string]NR{
	"syslog": NR_klogctl,
}

func (nr NR) String() string {
	if nr < nrCount {
		return nrNames[nr]
	}
	return nrNames[NR_unknown]
}

// ParseNR resolves a symbol name to its entry point. It returns NR_unknown
// for names the shim does not provide.
func ParseNR(name string) NR {
	for nr := NR_klogctl; nr < nrCount; nr++ {
		if nrNames[nr] == name {
			return nr
		}
	}
	if nr, ok := aliases[name]; ok {
		return nr
	}
	return NR_unknown
}
