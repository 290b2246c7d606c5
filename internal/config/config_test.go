// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points FITSDIFF_CFG_FILE at a testdata config file and
// resets the global Config so each test loads fresh.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("FITSDIFF_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	setupTestConfig(t, "fitsdiff.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Contains(t, cfg.Data, "ignore")
	assert.Contains(t, cfg.Data, "numdiffs")
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("FITSDIFF_CFG_FILE", "/nonexistent/path/fitsdiff.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("FITSDIFF_CFG_FILE", "testdata")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "fitsdiff.yaml")

	got, err := GetStringSlice("ignore.keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"DATE", "CHECKSUM", "HISTORY"}, got)

	got, err = GetStringSlice("ignore.missing", []string{"fallback"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback"}, got)

	_, err = GetStringSlice("numdiffs")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "fitsdiff.yaml")

	got, err := GetInt("numdiffs")
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	got, err = GetInt("missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestGetFloat(t *testing.T) {
	setupTestConfig(t, "fitsdiff.yaml")

	got, err := GetFloat("tolerance")
	require.NoError(t, err)
	assert.InDelta(t, 0.0001, got, 1e-12)

	// Integral YAML numbers are accepted as floats.
	got, err = GetFloat("numdiffs")
	require.NoError(t, err)
	assert.Equal(t, 25.0, got)

	got, err = GetFloat("missing", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "fitsdiff.yaml")

	got, err := GetString("report.colors.a")
	require.NoError(t, err)
	assert.Equal(t, "#ff6e6e", got)

	_, err = GetString("ignore")
	assert.Error(t, err, "maps are not strings")

	got, err = GetString("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}
