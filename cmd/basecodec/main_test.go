package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unkn0wn-root/basecodec"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestEncodeDecode(t *testing.T) {
	cases := []struct {
		args []string
		in   string
		want string
	}{
		{[]string{"encode", "a"}, "", "2g\n"},
		{[]string{"encode", "-e", "base36", "--hex", "000001"}, "", "001\n"},
		{[]string{"encode", "--hex"}, "00000000\n", "1111\n"},
		{[]string{"decode", "--hex", "a3gV"}, "", "626262\n"},
		{[]string{"decode", "-e", "b36", "--hex"}, "001\n", "000001\n"},
		{[]string{"decode", "2g"}, "", "a"},
		{[]string{"encode", "--hex", ""}, "", "\n"},
	}
	for _, tc := range cases {
		code, out, errOut := runCLI(t, tc.in, tc.args...)
		if code != 0 || out != tc.want {
			t.Fatalf("%v: code=%d out=%q stderr=%q, want %q", tc.args, code, out, errOut, tc.want)
		}
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		args []string
		code int
	}{
		{nil, 2},
		{[]string{"transcode", "x"}, 2},
		{[]string{"encode", "a", "b"}, 2},
		{[]string{"encode", "-e", "base64", "a"}, 2},
		{[]string{"encode", "--bogus", "a"}, 2},
		{[]string{"encode", "--hex", "zz"}, 2},
		{[]string{"decode", "0OIl"}, 1},
		{[]string{"encode", "--max-len", "2", "abc"}, 1},
		{[]string{"--help"}, 0},
	}
	for _, tc := range cases {
		code, _, errOut := runCLI(t, "", tc.args...)
		if code != tc.code {
			t.Fatalf("%v: code=%d want %d (stderr=%q)", tc.args, code, tc.code, errOut)
		}
	}
}

func TestInvalidCharacterMessage(t *testing.T) {
	_, _, errOut := runCLI(t, "", "decode", "-e", "base36", "abC")
	if !strings.Contains(errOut, "position 2") {
		t.Fatalf("stderr should name the position: %q", errOut)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basecodec.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "encoding: base36\nmax_input_len: 64\nverbose: true\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Encoding != basecodec.Base36 || cfg.MaxInputLen != 64 || !cfg.Verbose {
		t.Fatalf("got %+v", cfg)
	}

	if _, err := loadConfig(writeConfig(t, "")); err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if _, err := loadConfig(writeConfig(t, "encodng: base36\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := loadConfig(writeConfig(t, "encoding: base64\n")); err == nil {
		t.Fatalf("expected error for unsupported encoding")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, "encoding: base36\nmax_input_len: 2\n")

	code, out, _ := runCLI(t, "", "encode", "--config", path, "--hex", "00ff")
	if code != 0 || out != "073\n" {
		t.Fatalf("config encoding not applied: code=%d out=%q", code, out)
	}
	if code, _, _ := runCLI(t, "", "encode", "--config", path, "abc"); code != 1 {
		t.Fatalf("config max_input_len not applied: code=%d", code)
	}
	code, out, _ = runCLI(t, "", "encode", "--config", path, "-e", "base58", "--max-len", "0", "abc")
	if code != 0 || out != "ZiCa\n" {
		t.Fatalf("flags should override config: code=%d out=%q", code, out)
	}
	if code, _, _ := runCLI(t, "", "encode", "--config", writeConfig(t, "nope: 1\n"), "a"); code != 2 {
		t.Fatalf("bad config should be a usage error, got %d", code)
	}
}
