package svn

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
)

func TestPegged(t *testing.T) {
	tests := []struct {
		name   string
		target string
		rev    domain.Revision
		want   string
	}{
		{"head", "file:///repo/trunk", domain.RevisionHead, "file:///repo/trunk@HEAD"},
		{"numbered", "file:///repo/trunk", 42, "file:///repo/trunk@42"},
		{"working plain path", "/wc/a.txt", domain.RevisionWorking, "/wc/a.txt"},
		{"working path with at sign", "/wc/user@host.txt", domain.RevisionWorking, "/wc/user@host.txt@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pegged(tt.target, tt.rev))
		})
	}
}

func TestRedact(t *testing.T) {
	args := []string{"info", "--username", "ann", "--password", "secret", "/wc"}

	got := redact(args)

	assert.Equal(t, []string{"info", "--username", "ann", "--password", "***", "/wc"}, got)
	assert.Equal(t, "secret", args[4], "input must not be modified")
}

func TestHasErrorCode(t *testing.T) {
	err := &commandError{err: errors.New("exit status 1"), stderr: "svn: E155007: '/tmp' is not a working copy"}

	assert.True(t, hasErrorCode(err, "E155007"))
	assert.True(t, hasErrorCode(err, "E170000", "E155007"))
	assert.False(t, hasErrorCode(err, "E170000"))
	assert.False(t, hasErrorCode(nil, "E155007"))
}

func TestCommonArgs(t *testing.T) {
	c := NewClient(Options{NonInteractive: true, Password: "pw", Username: "ann"})

	assert.Equal(t, []string{"--non-interactive", "--username", "ann", "--password", "pw"}, c.commonArgs())
	assert.Empty(t, NewClient(Options{}).commonArgs())
}

func TestRevPropArgs(t *testing.T) {
	args := revPropArgs(map[string]string{
		"svnbranch:promoted-revision": "30",
		"svnbranch:promoted-from":     "/proj/branches/users/alice",
	})

	assert.Equal(t, []string{
		"--with-revprop", "svnbranch:promoted-from=/proj/branches/users/alice",
		"--with-revprop", "svnbranch:promoted-revision=30",
	}, args)
	assert.Empty(t, revPropArgs(nil))
}

// fakeBinary writes a shell script that records its arguments and prints output
func fakeBinary(t *testing.T, output string, exitCode int) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do echo \"$a\" >> '" + argsFile + "'; done\n" +
		"cat <<'EOF'\n" + output + "\nEOF\n"
	if exitCode != 0 {
		script += "echo 'svnmucc: E160020: Path already exists' >&2\nexit 1\n"
	}
	bin := filepath.Join(dir, "fake-svnmucc")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))
	return bin, argsFile
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestCommitOps_BuildsSingleInvocation(t *testing.T) {
	bin, argsFile := fakeBinary(t, "r7 committed by ann at 2024-05-01T10:00:00.000000Z", 0)
	c := NewClient(Options{MuccBinary: bin, NonInteractive: true})

	rev, err := c.CommitOps(context.Background(), "file:///srv/svn/repo/", []domain.CommitOp{
		{Action: domain.CommitMkdir, Path: "/proj/branches/users"},
		{Action: domain.CommitCopy, CopyFrom: "/proj/trunk", CopyRevision: 42, Path: "/proj/branches/users/alice"},
		{Action: domain.CommitPropSet, Path: "/proj/branches/users/alice/.svnbranch", PropName: "svnbranch:branch-type", PropValue: "user branch"},
		{Action: domain.CommitPropDel, Path: "/proj/branches/users/alice", PropName: "svn:mergeinfo"},
	}, "Create user branch alice", map[string]string{"svnbranch:tool": "svnbranch"})

	require.NoError(t, err)
	assert.Equal(t, domain.Revision(7), rev)
	assert.Equal(t, []string{
		"--non-interactive",
		"--message", "Create user branch alice",
		"--with-revprop", "svnbranch:tool=svnbranch",
		"mkdir", "file:///srv/svn/repo/proj/branches/users",
		"cp", "42", "file:///srv/svn/repo/proj/trunk", "file:///srv/svn/repo/proj/branches/users/alice",
		"propset", "svnbranch:branch-type", "user branch", "file:///srv/svn/repo/proj/branches/users/alice/.svnbranch",
		"propdel", "svn:mergeinfo", "file:///srv/svn/repo/proj/branches/users/alice",
	}, recordedArgs(t, argsFile))
}

func TestCommitOps_StagesPutContent(t *testing.T) {
	bin, argsFile := fakeBinary(t, "r8 committed by ann", 0)
	c := NewClient(Options{MuccBinary: bin})

	rev, err := c.CommitOps(context.Background(), "file:///srv/svn/repo", []domain.CommitOp{
		{Action: domain.CommitPut, Content: []byte{}, Path: "/proj/branches/users/bob/.svnbranch"},
	}, "put", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.Revision(8), rev)
	args := recordedArgs(t, argsFile)
	require.Len(t, args, 5)
	assert.Equal(t, "put", args[2])
	assert.Contains(t, args[3], "put-0")
	assert.Equal(t, "file:///srv/svn/repo/proj/branches/users/bob/.svnbranch", args[4])
}

func TestCommitOps_Failures(t *testing.T) {
	t.Run("no operations", func(t *testing.T) {
		_, err := NewClient(Options{}).CommitOps(context.Background(), "file:///repo", nil, "m", nil)
		assert.True(t, domain.IsKind(err, domain.ArgumentError))
	})

	t.Run("command fails", func(t *testing.T) {
		bin, _ := fakeBinary(t, "", 1)
		c := NewClient(Options{MuccBinary: bin})

		_, err := c.CommitOps(context.Background(), "file:///repo", []domain.CommitOp{
			{Action: domain.CommitMkdir, Path: "/a"},
		}, "m", nil)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.TransportError))
		assert.True(t, hasErrorCode(err, "E160020"))
	})

	t.Run("unexpected output", func(t *testing.T) {
		bin, _ := fakeBinary(t, "nothing to see", 0)
		c := NewClient(Options{MuccBinary: bin})

		_, err := c.CommitOps(context.Background(), "file:///repo", []domain.CommitOp{
			{Action: domain.CommitMkdir, Path: "/a"},
		}, "m", nil)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.TransportError))
	})
}
