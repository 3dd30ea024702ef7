package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wnxd/microdbg-compat/kernel"
)

func TestRowsYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, "yaml", rows()); err != nil {
		t.Fatal(err)
	}
	var decoded []row
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rows(), decoded); diff != "" {
		t.Fatalf("yaml output mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsContent(t *testing.T) {
	byName := make(map[string]row)
	for _, r := range rows() {
		byName[r.Symbol] = r
	}
	reboot := byName["reboot"]
	if reboot.Policy != "PermissionDenied" || reboot.Errno != "EPERM" {
		t.Errorf("reboot row = %+v", reboot)
	}
	if reboot.ARM == nil || *reboot.ARM != 88 || reboot.ARM64 == nil || *reboot.ARM64 != 142 {
		t.Errorf("reboot numbers = %v, %v", reboot.ARM, reboot.ARM64)
	}
	openpt := byName["posix_openpt"]
	if openpt.ARM != nil || openpt.ARM64 != nil {
		t.Errorf("posix_openpt has syscall numbers")
	}
	if mlock := byName["mlock"]; mlock.Errno != "" {
		t.Errorf("mlock errno = %q", mlock.Errno)
	}
}

func TestRenderText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := render(&buf, "text", rows()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(rows())+1 {
		t.Fatalf("rendered %d lines, want %d", len(lines), len(rows())+1)
	}
	if fields := strings.Fields(lines[0]); fields[0] != "SYMBOL" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(buf.String(), "NotSupported") {
		t.Error("NotSupported policy missing from output")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := render(&bytes.Buffer{}, "xml", rows()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestInvoke(t *testing.T) {
	sys := kernel.NewSyscall()
	tests := map[string]string{
		"klogctl":       "klogctl() = -1 ENOSYS (function not implemented)",
		"setdomainname": "setdomainname() = -1 EPERM (operation not permitted)",
		"munlockall":    "munlockall() = 0",
	}
	for name, want := range tests {
		got, err := invoke(zap.NewNop(), sys, name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("invoke(%q) = %q, want %q", name, got, want)
		}
	}
	if _, err := invoke(zap.NewNop(), sys, "fork"); err == nil {
		t.Error("expected error for unknown symbol")
	}
}
