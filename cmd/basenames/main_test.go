package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"APP_ENV", "APP_SERVICE", "LOG_LEVEL", "LOG_FORMAT",
	"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
	"NAMING_MAX_LISTING", "NAMING_MAX_BASE", "NAMING_PREWARM",
}

// isolate clears the process environment Config reads and writes env, given
// in .env syntax, to a file whose path is returned.
func isolate(t *testing.T, env string) string {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(env), 0o600))
	return path
}

func runCLI(t *testing.T, ctx context.Context, env string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	path := isolate(t, env)
	var out, errOut bytes.Buffer
	code = run(ctx, append([]string{"-env-file", path}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Name(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "", "60")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "hexagesimal\n", stdout)
	assert.Empty(t, stderr)

	code, stdout, stderr = runCLI(t, context.Background(), "", "-2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "negabinary\n", stdout)
	assert.Empty(t, stderr)

	_, stdout, _ = runCLI(t, context.Background(), "", "--", "-2")
	assert.Equal(t, "negabinary\n", stdout)
}

func TestRun_NegativeFlagValue(t *testing.T) {
	code, stdout, _ := runCLI(t, context.Background(), "", "-from", "-5", "-count", "2")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "-5: negaquinary\n-4: negaquaternary\n", stdout)
}

func TestSplitNegativeBases(t *testing.T) {
	fs := newFlagSet(&options{}, io.Discard)

	tests := []struct {
		args     []string
		flagArgs []string
		bases    []string
	}{
		{[]string{"-2"}, nil, []string{"-2"}},
		{[]string{"-gt6", "-10"}, []string{"-gt6"}, []string{"-10"}},
		{[]string{"-from", "-5"}, []string{"-from", "-5"}, nil},
		{[]string{"-from=-5", "-3"}, []string{"-from=-5"}, []string{"-3"}},
		{[]string{"--", "-7"}, []string{"--", "-7"}, nil},
		{[]string{"-count", "3"}, []string{"-count", "3"}, nil},
	}
	for _, tt := range tests {
		flagArgs, bases := splitNegativeBases(fs, tt.args)
		assert.Equal(t, tt.flagArgs, flagArgs, "%v", tt.args)
		assert.Equal(t, tt.bases, bases, "%v", tt.args)
	}
}

func TestRun_InvalidArgument(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "", "twelve")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `cannot parse "twelve" as an integer`)

	code, _, _ = runCLI(t, context.Background(), "", "--", "-9223372036854775808")
	assert.Equal(t, exitError, code)
}

func TestRun_Listing(t *testing.T) {
	code, stdout, _ := runCLI(t, context.Background(), "", "-count", "3")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1: unary (UNA)\n2: binary (BIN)\n3: trinary (TRI)\n", stdout)

	code, stdout, _ = runCLI(t, context.Background(), "", "-from", "16", "-count", "1", "-format", "json")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `{"base":16,"name":"hex","abbreviation":"HEX"}`, stdout)

	code, stdout, _ = runCLI(t, context.Background(), "", "-from", "16", "-count", "1", "-format", "yaml")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "base: 16\nname: hex\nabbreviation: HEX\n", stdout)

	code, _, stderr := runCLI(t, context.Background(), "", "-count", "1", "-format", "xml")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown listing format")
}

func TestRun_UnboundedListingStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, _ := runCLI(t, ctx, "")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
}

func TestRun_Rational(t *testing.T) {
	code, stdout, _ := runCLI(t, context.Background(), "", "-rational", "2/3")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "bivottrinary\n", stdout)

	for _, arg := range []string{"1/0", "2", "a/3", "2/b"} {
		code, _, stderr := runCLI(t, context.Background(), "", "-rational", arg)
		assert.Equal(t, exitError, code, arg)
		assert.NotEmpty(t, stderr, arg)
	}
}

func TestRun_Symbol(t *testing.T) {
	_, stdout, _ := runCLI(t, context.Background(), "", "-symbol", "tau", "-gt6", "-one-syllable")
	assert.Equal(t, "tauimal\n", stdout)

	_, stdout, _ = runCLI(t, context.Background(), "", "-symbol", "pi")
	assert.Equal(t, "pinary\n", stdout)
}

func TestRun_Parse(t *testing.T) {
	code, stdout, _ := runCLI(t, context.Background(), "", "-parse", "Hex")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "16\n", stdout)

	code, _, stderr := runCLI(t, context.Background(), "", "-parse", "hexadecimal")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown base name")
}

func TestRun_Usage(t *testing.T) {
	code, _, _ := runCLI(t, context.Background(), "", "1", "2")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, context.Background(), "", "-parse", "hex", "12")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI(t, context.Background(), "", "-bogus")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "flag provided but not defined")

	code, _, _ = runCLI(t, context.Background(), "", "-h")
	assert.Equal(t, exitOK, code)
}

func TestRun_InvalidConfig(t *testing.T) {
	code, _, stderr := runCLI(t, context.Background(), "NAMING_MAX_LISTING=0\n", "12")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "NAMING_MAX_LISTING")
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	code, stdout, stderr := runCLI(t, context.Background(), "LOG_LEVEL=debug\n", "16")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "hex\n", stdout)
	assert.Contains(t, stderr, "naming cache")
}

func TestRun_Serve(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	env := "HTTP_ADDR=127.0.0.1:0\nHTTP_SHUTDOWN_TIMEOUT=100ms\nNAMING_PREWARM=50\nLOG_LEVEL=info\n"

	path := isolate(t, env)

	var stdout, stderr bytes.Buffer
	go func() {
		done <- run(ctx, []string{"-env-file", path, "-serve"}, &stdout, &stderr)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()
	select {
	case code := <-done:
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stderr.String(), "cache prewarmed")
		assert.Contains(t, stderr.String(), "server started")
		assert.Empty(t, stdout.String())
	case <-time.After(2 * time.Second):
		require.Fail(t, "serve did not stop")
	}
}
