package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
)

// execute runs the root command and returns stdout and stderr separately.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestClassifyText(t *testing.T) {
	out, _, err := execute(t, "classify", "800", "480")
	require.NoError(t, err)
	assert.Equal(t, "breakpoint=md class=tablet orientation=landscape size=800x480\n", out)
}

func TestClassifyJSON(t *testing.T) {
	out, _, err := execute(t, "classify", "375", "812", "--output", "json")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "sm", payload["breakpoint"])
	assert.Equal(t, "mobile", payload["class"])
	assert.Equal(t, "portrait", payload["orientation"])
	assert.Equal(t, true, payload["isMobile"])
	assert.Equal(t, false, payload["isDesktop"])
	assert.EqualValues(t, 375, payload["width"])
}

func TestClassifyYAML(t *testing.T) {
	out, _, err := execute(t, "classify", "1600", "900", "-o", "yaml")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "2xl", payload["breakpoint"])
	assert.Equal(t, "desktop", payload["class"])
	assert.Equal(t, "landscape", payload["orientation"])
	assert.Equal(t, true, payload["isDesktop"])
}

func TestClassifyRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "non numeric width", args: []string{"classify", "wide", "10"}, want: "invalid width"},
		{name: "non numeric height", args: []string{"classify", "10", "tall"}, want: "invalid height"},
		{name: "unknown output", args: []string{"classify", "10", "10", "-o", "xml"}, want: "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBreakpointsListsTable(t *testing.T) {
	out, _, err := execute(t, "breakpoints")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "MIN WIDTH")
	assert.Equal(t, []string{"sm", "640", "mobile"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"lg", "1024", "desktop"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2xl", "1536", "desktop"}, strings.Fields(lines[5]))
}

func TestSimulateScript(t *testing.T) {
	out, _, err := execute(t, "simulate", "375x812", "rotate", "1280x800", "standalone")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{
		"viewport breakpoint=sm class=mobile size=375x812",
		"matcher  min-width=md(768) matches=false",
		"mobile   mobile=true orientation=portrait standalone=false",
	}, lines[:3])

	assert.Contains(t, lines, "viewport breakpoint=md class=tablet size=812x375")
	assert.Contains(t, lines, "matcher  min-width=md(768) matches=true")
	assert.Contains(t, lines, "viewport breakpoint=xl class=desktop size=1280x800")
	assert.Contains(t, lines, "mobile   mobile=false orientation=landscape standalone=true")
}

func TestSimulateJSONSharesSessionID(t *testing.T) {
	out, _, err := execute(t, "simulate", "800x600", "1100x600", "-o", "json", "-b", "lg")
	require.NoError(t, err)

	var sessions []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		sessions = append(sessions, event["session"].(string))
	}
	require.NotEmpty(t, sessions)
	for _, id := range sessions {
		assert.Equal(t, sessions[0], id)
	}
	assert.Contains(t, out, `"matches":true`)
}

func TestSimulateWithoutBoundaryWatchKeepsInitialMatch(t *testing.T) {
	out, _, err := execute(t, "simulate", "800x600", "1400x600", "--no-boundary-watch", "-b", "lg")
	require.NoError(t, err)
	assert.NotContains(t, out, "matches=true")
	assert.Contains(t, out, "viewport breakpoint=xl class=desktop size=1400x600")
}

func TestSimulateRejectsBadScript(t *testing.T) {
	_, _, err := execute(t, "simulate", "800x600", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid step")

	_, _, err = execute(t, "simulate", "800by600")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size")

	_, _, err = execute(t, "simulate", "800x600", "-b", "huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown breakpoint")
}

func TestSimulateUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vpwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\nwatch:\n  breakpoint: xl\n"), 0o644))

	out, stderr, err := execute(t, "--config", path, "simulate", "800x600")
	require.NoError(t, err)
	assert.Contains(t, out, "matcher  min-width=xl(1280) matches=false")
	assert.Empty(t, stderr, "info logs are below the configured level")
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vpwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch:\n  breakpoint: huge\n"), 0o644))

	_, _, err := execute(t, "--config", path, "simulate", "800x600")
	require.Error(t, err)
}

func TestVerboseEnablesDebugLogs(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "simulate", "800x600", "900x600")
	require.NoError(t, err)
	assert.Contains(t, stderr, "watch session started")
}

func TestParseCellSize(t *testing.T) {
	cells, err := parseCellSize("10x20")
	require.NoError(t, err)
	assert.Equal(t, host.CellSize{Width: 10, Height: 20}, cells)

	_, err = parseCellSize("0x20")
	require.Error(t, err)

	_, err = parseCellSize("10")
	require.Error(t, err)
}
