package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliConfig writes a config with private preferences and a fast tick.
func cliConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return writeConfig(t, "prefs_file: "+filepath.Join(dir, "prefs.yaml")+"\n"+
		"socket_path: "+filepath.Join(dir, "wk.sock")+"\n"+
		"tick_interval: 5ms\n"+
		"color: false\n")
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, config, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := run(ctx, append([]string{"--config", config}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestCLIRun(t *testing.T) {
	cfg := cliConfig(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"arguments", "", []string{"run", "roman-numeral", "1994"}, "MCMXCIV\n"},
		{"stdin", "ABC DEF\n", []string{"run", "case-converter", "-o", "mode=lower"}, "abc def\n"},
		{"joined arguments", "", []string{"run", "slugify", "Hello,", "World!"}, "hello-world\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, cfg, tt.stdin, tt.args...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestCLIRunErrors(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "run", "nope", "x")
	assert.True(t, isCode(res.err, ErrCodeUnknownTool), "got %v", res.err)

	res = runCLI(t, cfg, "", "run", "roman-numeral", "5000")
	assert.True(t, isCode(res.err, ErrCodeOutOfRange), "got %v", res.err)

	res = runCLI(t, cfg, "", "run", "case-converter", "-o", "mode", "x")
	assert.True(t, isCode(res.err, ErrCodeInvalidInput), "got %v", res.err)

	res = runCLI(t, cfg, "", "describe", "nope")
	assert.True(t, isCode(res.err, ErrCodeUnknownTool), "got %v", res.err)
}

func TestCLIRunFileToOut(t *testing.T) {
	cfg := cliConfig(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "photo.png")
	out := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(in, testPNG(t), 0o644))

	res := runCLI(t, cfg, "", "run", "image-converter", "--file", in, "-o", "format=jpeg", "--out", out)
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xFF, 0xD8}))
}

func TestCLIListAndFind(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "roman-numeral")
	assert.Contains(t, res.stdout, "unit-converter")

	res = runCLI(t, cfg, "", "--format", "json", "list", "--category", "units")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"unit-converter"`)
	assert.NotContains(t, res.stdout, `"roman-numeral"`)

	res = runCLI(t, cfg, "", "find", "roman")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "roman-numeral")

	res = runCLI(t, cfg, "", "describe", "case-converter")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "mode")
}

func TestCLIPipe(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "Hello World\n", "pipe", "case-converter:mode=lower", "reverse-text")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "dlrow olleh\n", res.stdout)

	res = runCLI(t, cfg, "x", "pipe", "slugify", "nope")
	assert.True(t, isCode(res.err, ErrCodeUnknownTool), "got %v", res.err)

	res = runCLI(t, cfg, "x", "pipe", "case-converter:mode")
	assert.True(t, isCode(res.err, ErrCodeInvalidInput), "got %v", res.err)
}

func TestParsePipeStep(t *testing.T) {
	step, err := parsePipeStep("trim-text")
	require.NoError(t, err)
	assert.Equal(t, pipeStep{tool: "trim-text"}, step)

	step, err = parsePipeStep("replace-text:find=a,replace=b")
	require.NoError(t, err)
	assert.Equal(t, "replace-text", step.tool)
	assert.Equal(t, map[string]string{"find": "a", "replace": "b"}, step.options)
}

func TestCLIBatch(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "1\n2\n3\n4\n5\n", "batch", "roman-numeral")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "I\nII\nIII\nIV\nV\n", res.stdout, "results keep input order")

	res = runCLI(t, cfg, "1\n4000\n3\n", "batch", "roman-numeral")
	require.Error(t, res.err)
	assert.Equal(t, "I\nIII\n", res.stdout)
	assert.Contains(t, res.stderr, "line 2: OUT_OF_RANGE")
}

func TestRunBatchBoundedWorkers(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "hello"
	}
	out, err := runBatch(context.Background(), NewRegistry(nil), "case-converter", map[string]string{"mode": "upper"}, lines, 3)
	require.NoError(t, err)
	require.Len(t, out, 50)
	for _, line := range out {
		require.NoError(t, line.err)
		assert.Equal(t, "HELLO", line.res.Text)
	}
}

func TestCLIPrefs(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "prefs", "get", DateFormatPatternKey)
	assert.Error(t, res.err)

	res = runCLI(t, cfg, "", "prefs", "set", DateFormatPatternKey, "%Y")
	require.NoError(t, res.err)

	res = runCLI(t, cfg, "", "prefs", "get", DateFormatPatternKey)
	require.NoError(t, res.err)
	assert.Equal(t, "%Y\n", res.stdout)

	res = runCLI(t, cfg, "", "prefs", "path")
	require.NoError(t, res.err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(res.stdout), "prefs.yaml"))
}

func TestCLICountdown(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "timer", "countdown", "30ms")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "00:00:00.0  time's up")

	res = runCLI(t, cfg, "", "timer", "countdown", "soon")
	assert.True(t, isCode(res.err, ErrCodeInvalidInput), "got %v", res.err)
}

func TestCountdownStopsWithContext(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, runCountdown(ctx, &out, time.Hour, 5*time.Millisecond))
	assert.Contains(t, out.String(), "stopped")
}

func TestCLIClockOnce(t *testing.T) {
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "clock", "--once", "--zones", "UTC,Asia/Tokyo")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "UTC:")
	assert.Contains(t, res.stdout, "Asia/Tokyo:")
}

func TestCLISocketSend(t *testing.T) {
	_, socketPath := startTestServer(t)
	cfg := cliConfig(t)

	res := runCLI(t, cfg, "", "--socket", socketPath, "send", `{"action":"create_widget","params":{"tool":"base64"}}`)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, `"success": true`)

	res = runCLI(t, cfg, `{"action":"list_widgets","params":{}}`+"\n", "--socket", socketPath, "send")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "widget_0")
}

func TestCLIBadConfig(t *testing.T) {
	res := runCLI(t, writeConfig(t, "batch_workers: -1\n"), "", "list")
	assert.True(t, isCode(res.err, ErrCodeOutOfRange), "got %v", res.err)
}
