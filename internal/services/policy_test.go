package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/config"
	"svnbranch/internal/domain"
)

func mustPolicy(t *testing.T, doc string) *config.Policy {
	t.Helper()
	policy, err := config.ParsePolicy([]byte(doc))
	require.NoError(t, err)
	return policy
}

func TestCheckLogMessage_PatternPerBranchType(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      trunk: "projectName: .+"
      release branch: "release.*"
      user branch: "\\[branchName\\] .+"
`)
	gate := NewPolicyGate(policy, "1.0.0")

	tests := []struct {
		name    string
		meta    *domain.BranchMetadata
		message string
		wantErr bool
	}{
		{"trunk accepts project prefix", testTrunk(), "proj: fix parser", false},
		{"trunk rejects other prefix", testTrunk(), "other: fix parser", true},
		{"release accepts prefix", testBranch(domain.ReleaseBranch, "1.0", "/proj/trunk", 5, 5), "release notes", false},
		{"release rejects fix", testBranch(domain.ReleaseBranch, "1.0", "/proj/trunk", 5, 5), "fix bug", true},
		{"user branch name is substituted", testBranch(domain.UserBranch, "alice", "/proj/trunk", 5, 5), "[alice] wip", false},
		{"whitespace is normalized", testTrunk(), "  proj:\n\tfix   parser ", false},
		{"pattern must match in full", testTrunk(), "x proj: fix", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.CheckLogMessage(tt.meta, tt.message)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, domain.PolicyRejection))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckLogMessage_RejectionUsesTemplate(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      release branch: "release.*"
    log_message_errors:
      release branch: "branchName of projectName needs a release prefix"
`)
	gate := NewPolicyGate(policy, "1.0.0")
	meta := testBranch(domain.ReleaseBranch, "1.0", "/proj/trunk", 5, 5)

	err := gate.CheckLogMessage(meta, "fix bug")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.0 of proj needs a release prefix")
	assert.Contains(t, err.Error(), `"fix bug"`)
	assert.Contains(t, err.Error(), `"release.*"`)
}

func TestCheckLogMessage_DefaultRejectionMessage(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      user branch: "ok"
`)
	gate := NewPolicyGate(policy, "1.0.0")

	err := gate.CheckLogMessage(testBranch(domain.UserBranch, "alice", "/proj/trunk", 5, 5), "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log message rejected for user branch alice")
}

func TestCheckLogMessage_PlaceholderValuesAreQuoted(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      release branch: "branchName .*"
`)
	gate := NewPolicyGate(policy, "1.0.0")
	meta := testBranch(domain.ReleaseBranch, "1.0", "/proj/trunk", 5, 5)

	assert.NoError(t, gate.CheckLogMessage(meta, "1.0 notes"))
	// The dot in the branch name is literal
	assert.Error(t, gate.CheckLogMessage(meta, "1x0 notes"))
}

func TestCheckLogMessage_PlaceholdersOnlyOnWordBoundaries(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      trunk: "mybranchName.*"
`)
	gate := NewPolicyGate(policy, "1.0.0")

	assert.NoError(t, gate.CheckLogMessage(testTrunk(), "mybranchName here"))
	assert.Error(t, gate.CheckLogMessage(testTrunk(), "mytrunk here"))
}

func TestCheckLogMessage_SourcePlaceholders(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    log_message_patterns:
      user branch: "sourceBranchType sourceBranchName: .*"
`)
	gate := NewPolicyGate(policy, "1.0.0")
	meta := testBranch(domain.UserBranch, "alice", "/proj/branches/releases/2.0", 5, 5)

	assert.NoError(t, gate.CheckLogMessage(meta, "release branch 2.0: backport"))
	assert.Error(t, gate.CheckLogMessage(meta, "trunk trunk: backport"))
}

func TestCheckLogMessage_CodeFreeze(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    code_frozen: true
    freeze_error: "projectName is frozen"
`)
	gate := NewPolicyGate(policy, "1.0.0")

	err := gate.CheckLogMessage(testTrunk(), "ordinary change")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PolicyCancellation))
	assert.Contains(t, err.Error(), "proj is frozen")

	assert.NoError(t, gate.CheckLogMessage(testTrunk(), "hotfix. Code freeze break!"))
}

func TestCheckLogMessage_NoPolicyAcceptsEverything(t *testing.T) {
	gate := NewPolicyGate(nil, "1.0.0")

	assert.NoError(t, gate.CheckLogMessage(testTrunk(), ""))
	assert.NoError(t, gate.CheckLogMessage(testTrunk(), "anything"))
}

func TestCheckVersion(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    minimum_version: "1.3"
`)

	tests := []struct {
		name         string
		running      string
		wantErr      bool
		wantWarnings int
	}{
		{"newer", "1.4.0", false, 0},
		{"equal", "1.3.0", false, 0},
		{"older", "1.2.9", true, 0},
		{"prerelease of the minimum", "1.3.0-rc1", false, 0},
		{"prerelease of an older version", "1.2.9-rc1", true, 0},
		{"unknown version warns", "dev", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewPolicyGate(policy, tt.running)

			warnings, err := gate.CheckVersion(testTrunk())

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, domain.PolicyRejection))
				assert.Contains(t, err.Error(), "1.3")
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestCheck_VersionBeforeMessage(t *testing.T) {
	policy := mustPolicy(t, `
projects:
  proj:
    minimum_version: "9.0"
    code_frozen: true
`)
	gate := NewPolicyGate(policy, "1.0.0")

	_, err := gate.Check(testTrunk(), "ordinary change")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PolicyRejection))
}
