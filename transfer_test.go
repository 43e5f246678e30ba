package main

import (
	"os"
	"strings"
	"testing"
)

func TestWgetConfigKeepsPasswordOffArgv(t *testing.T) {
	creds := &Credentials{username: "alice", password: []byte("s3cret")}
	cfg, err := writeWgetConfig(creds)
	if err != nil {
		t.Fatalf("writeWgetConfig: %v", err)
	}
	defer os.Remove(cfg)

	info, err := os.Stat(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config mode = %o, want 0600", perm)
	}
	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"user=alice", "password=s3cret"} {
		if !strings.Contains(string(data), line) {
			t.Errorf("config is missing %q:\n%s", line, data)
		}
	}
}

func TestCurlAuthStaysOffArgv(t *testing.T) {
	transfer := &CurlTransfer{creds: &Credentials{username: "alice", password: []byte("s3cret")}}

	args := transfer.extraArgs("http://localhost:6008/a.txt")
	for _, arg := range args {
		if strings.Contains(arg, "s3cret") {
			t.Fatalf("password leaked into argv: %q", args)
		}
	}
	if len(args) != 3 || args[0] != "--config" || args[1] != "-" {
		t.Fatalf("extraArgs = %q, want config-from-stdin then the URL", args)
	}

	cfg := transfer.authConfig()
	if !strings.Contains(cfg, "alice:s3cret") {
		t.Errorf("stdin config is missing the credentials: %q", cfg)
	}
	if !strings.HasPrefix(cfg, "user = ") {
		t.Errorf("stdin config is not curl syntax: %q", cfg)
	}
}

func TestCurlNoCredsNoConfig(t *testing.T) {
	transfer := &CurlTransfer{}
	if cfg := transfer.authConfig(); cfg != "" {
		t.Errorf("authConfig without creds = %q, want empty", cfg)
	}
	args := transfer.extraArgs("http://localhost:6008/a.txt")
	if len(args) != 1 || args[0] != "http://localhost:6008/a.txt" {
		t.Errorf("extraArgs without creds = %q", args)
	}
}
