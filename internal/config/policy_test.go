package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
)

const samplePolicy = `
defaults:
  log_message_patterns:
    trunk: "trunk - .*"
projects:
  p:
    code_frozen: true
    minimum_version: "1.2"
    strip_merge_info: true
    log_message_patterns:
      release: "release.*"
      user branch: "branchName: .*"
    log_message_errors:
      release branch: "release branches of projectName need a release prefix"
`

func TestParsePolicy_ProjectOverlaysDefaults(t *testing.T) {
	policy, err := ParsePolicy([]byte(samplePolicy))
	require.NoError(t, err)

	pp := policy.Project("p")
	assert.True(t, pp.CodeFrozen)
	assert.True(t, pp.StripMergeInfo)
	assert.Equal(t, "1.2", pp.MinimumVersion)
	assert.Equal(t, "trunk - .*", pp.LogMessagePatterns[domain.Trunk])
	assert.Equal(t, "release.*", pp.LogMessagePatterns[domain.ReleaseBranch])
	assert.Equal(t, "branchName: .*", pp.LogMessagePatterns[domain.UserBranch])
	assert.Equal(t, "release branches of projectName need a release prefix", pp.LogMessageErrors[domain.ReleaseBranch])
	assert.Equal(t, DefaultFreezeBreakPattern, pp.FreezeBreakPattern)
}

func TestParsePolicy_UnknownProjectUsesDefaults(t *testing.T) {
	policy, err := ParsePolicy([]byte(samplePolicy))
	require.NoError(t, err)

	pp := policy.Project("other")
	assert.False(t, pp.CodeFrozen)
	assert.False(t, pp.StripMergeInfo)
	assert.Equal(t, "trunk - .*", pp.LogMessagePatterns[domain.Trunk])
	assert.Empty(t, pp.LogMessagePatterns[domain.UserBranch])
}

func TestPolicy_ProjectReturnsCopies(t *testing.T) {
	policy, err := ParsePolicy([]byte(samplePolicy))
	require.NoError(t, err)

	pp := policy.Project("p")
	pp.LogMessagePatterns[domain.Trunk] = "changed"

	assert.Equal(t, "trunk - .*", policy.Project("p").LogMessagePatterns[domain.Trunk])
}

func TestParsePolicy_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{"bad yaml", "projects: [", "invalid policy.yaml"},
		{"unknown branch type", "projects:\n  p:\n    log_message_patterns:\n      feature: x\n", "unknown branch type"},
		{"bad version", "projects:\n  p:\n    minimum_version: banana\n", "minimum_version"},
		{"bad freeze pattern", "defaults:\n  freeze_break_pattern: \"(\"\n", "freeze_break_pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePolicy([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadPolicyFrom_MissingFileIsEmpty(t *testing.T) {
	policy, err := LoadPolicyFrom(filepath.Join(t.TempDir(), "policy.yaml"))
	require.NoError(t, err)

	pp := policy.Project("anything")
	assert.Equal(t, DefaultFreezeError, pp.FreezeError)
	assert.Empty(t, policy.Projects())
}

func TestLoadSettingsFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug": true, "svn_binary": "/opt/svn/bin/svn", "username": "alice"}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.True(t, BoolValue(settings.Debug, false))
	assert.Equal(t, 1000, IntValue(settings.MaxLogFiles, 1000))
	assert.Equal(t, "/opt/svn/bin/svn", settings.SvnBinary)
	assert.Equal(t, "alice", settings.Username)
	assert.Empty(t, settings.SvnmuccBinary)
}

func TestLoadSettingsFrom_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()

	settings, err := LoadSettingsFrom(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, settings.Debug)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadSettingsFrom(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestGetHome_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SVNBRANCH_HOME", dir)

	assert.Equal(t, dir, GetHome())
	assert.Equal(t, filepath.Join(dir, "state.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "policy.yaml"), GetPolicyPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}
