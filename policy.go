package compat

import "strconv"

// Policy is the fixed answer an entry point gives regardless of its arguments.
type Policy uint8

const (
	// SilentSuccess reports success without doing anything.
	SilentSuccess Policy = iota
	// NotSupported fails with ENOSYS; callers are expected to fall back.
	NotSupported
	// PermissionDenied fails with EPERM; the operation is never allowed here.
	PermissionDenied
	// FixedSuccessValue reports success with Rule.Value as the result.
	FixedSuccessValue
)

var policyNames = [...]string{
	SilentSuccess:     "SilentSuccess",
	NotSupported:      "NotSupported",
	PermissionDenied:  "PermissionDenied",
	FixedSuccessValue: "FixedSuccessValue",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Failure reports whether the policy makes a call fail.
func (p Policy) Failure() bool {
	return p == NotSupported || p == PermissionDenied
}

// Rule binds an entry point to its policy.
type Rule struct {
	NR     NR
	Policy Policy
	Errno  Errno
	Value  int64
}

// Apply answers one call under r. Failing policies store the errno in ctx and
// return -1; succeeding ones return their value and leave ctx untouched.
func (r Rule) Apply(ctx Context) int64 {
	switch r.Policy {
	case NotSupported, PermissionDenied:
		ctx.SetErrno(r.Errno)
		return -1
	case FixedSuccessValue:
		return r.Value
	}
	return 0
}

// Err returns the errno r signals, or nil when r succeeds.
func (r Rule) Err() error {
	if !r.Policy.Failure() {
		return nil
	}
	return r.Errno
}

func ignore(nr NR) Rule {
	return Rule{NR: nr, Policy: SilentSuccess}
}

func unsupported(nr NR) Rule {
	return Rule{NR: nr, Policy: NotSupported, Errno: ENOSYS}
}

func denied(nr NR) Rule {
	return Rule{NR: nr, Policy: PermissionDenied, Errno: EPERM}
}

// table is read only after package initialisation.
var table = [nrCount]Rule{
	NR_reject: unsupported(NR_reject),
	NR_ignore: ignore(NR_ignore),

	NR_klogctl:      unsupported(NR_klogctl),
	NR_sendfile:     unsupported(NR_sendfile),
	NR_sendfile64:   unsupported(NR_sendfile64),
	NR_posix_openpt: unsupported(NR_posix_openpt),
	NR_unlockpt:     unsupported(NR_unlockpt),
	NR_ptrace:       unsupported(NR_ptrace),

	NR_sigaltstack: ignore(NR_sigaltstack),
	NR_madvise:     ignore(NR_madvise),
	NR_mlock:       ignore(NR_mlock),
	NR_munlock:     ignore(NR_munlock),
	NR_mlockall:    ignore(NR_mlockall),
	NR_munlockall:  ignore(NR_munlockall),
	NR_msync:       ignore(NR_msync),
	NR_iopl:        ignore(NR_iopl),
	NR_ioperm:      ignore(NR_ioperm),
	NR_acct:        ignore(NR_acct),

	NR_reboot:        denied(NR_reboot),
	NR_pivot_root:    denied(NR_pivot_root),
	NR_adjtimex:      denied(NR_adjtimex),
	NR_setdomainname: denied(NR_setdomainname),
	NR_settimeofday:  denied(NR_settimeofday),
}

// Lookup returns the rule of nr. Unknown entry points report false.
func Lookup(nr NR) (Rule, bool) {
	if nr == NR_unknown || nr >= nrCount {
		return Rule{}, false
	}
	return table[nr], true
}

// MustLookup is like Lookup but panics for entry points without a rule.
func MustLookup(nr NR) Rule {
	r, ok := Lookup(nr)
	if !ok {
		panic("compat: no rule for " + nr.String())
	}
	return r
}

// Rules lists the rules of every real entry point in NR order. The generic
// reject and ignore handlers are not included.
func Rules() []Rule {
	rules := make([]Rule, 0, nrCount-NR_klogctl)
	for nr := NR_klogctl; nr < nrCount; nr++ {
		rules = append(rules, table[nr])
	}
	return rules
}
