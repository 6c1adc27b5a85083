package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestFormatsCommand(t *testing.T) {
	out, err := runCLI(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "formats: console, console-lite, csv, detailed-csv, html, json")
	assert.Contains(t, out, "verbose")
}

func TestShowBuiltInExample(t *testing.T) {
	out, err := runCLI(t, "show", "--format", "summary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AGORA DASHBOARD SUMMARY"))
	assert.Contains(t, out, "Gas pool: 7,500 SOL available, 25% used")
}

func TestExampleRoundTripThroughShow(t *testing.T) {
	dir := t.TempDir()
	snapPath := filepath.Join(dir, "snapshot.yaml")
	_, err := runCLI(t, "example", "--out", snapPath)
	require.NoError(t, err)

	reportPath := filepath.Join(dir, "report.csv")
	_, err = runCLI(t, "show", "--snapshot", snapPath, "--format", "csv", "--out", reportPath)
	require.NoError(t, err)

	b, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Kind,ID,Title"))
	assert.Contains(t, string(b), "protocol,AGP-45,")
}

func TestShowDirWritesAllFormats(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "show", "--format", "all", "--dir", dir)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestShowUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "show", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestShowMissingSnapshot(t *testing.T) {
	_, err := runCLI(t, "show", "--snapshot", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestConfigFileSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "agora.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\n"), 0644))

	out, err := runCLI(t, "--config", cfg, "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
}
