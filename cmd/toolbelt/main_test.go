package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/mkraev/toolbelt/internal/config"
)

func TestDefaultConfigTemplateIsValidTOML(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
}

func TestPasswordCmdPrintsRequestedCount(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"password", "--count", "3", "--length", "10"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %d: %q", len(lines), out.String())
	}
	for _, line := range lines {
		if len(line) != 10 {
			t.Fatalf("expected length 10, got %q", line)
		}
	}
}

func TestUUIDCmdRejectsUnknownVersion(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"uuid", "--version", "5"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unsupported version")
	}
}
