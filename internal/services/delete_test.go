package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
)

// deleteFixture is a trunk workspace in a repository that has user branch alice
func deleteFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)
	f.tree(map[string]domain.NodeKind{
		"/proj/branches/users/alice":            domain.NodeDir,
		"/proj/branches/users/alice/.svnbranch": domain.NodeFile,
	})
	f.repo.EXPECT().GetProperties(mock.Anything, testRoot+"/proj/branches/users/alice/.svnbranch", domain.RevisionHead).
		Return(domain.EncodeMetadata(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20)), nil).Maybe()
	return f
}

func TestDeleteBranch_CommitsRemoval(t *testing.T) {
	f := deleteFixture(t)
	f.clean()
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, nil)
	f.prompter.EXPECT().Confirm("Delete user branch alice?", mock.Anything).Return(true, nil)
	f.repo.EXPECT().CommitOps(mock.Anything, testRoot,
		[]domain.CommitOp{{Action: domain.CommitDelete, Path: "/proj/branches/users/alice"}},
		"Delete user branch /proj/branches/users/alice", mock.Anything).
		Return(50, nil)

	result, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Name: "alice", Path: f.dir})

	require.NoError(t, err)
	assert.False(t, result.Cancelled)
	assert.Equal(t, domain.Revision(50), result.Revision)
}

func TestDeleteBranch_DeclinedConfirmation(t *testing.T) {
	f := deleteFixture(t)
	f.clean()
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, nil)
	f.prompter.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil)

	result, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Name: "alice", Path: f.dir})

	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	f.repo.AssertNotCalled(t, "CommitOps", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBranch_ForceSkipsConfirmation(t *testing.T) {
	f := deleteFixture(t)
	f.clean()
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, nil)
	f.repo.EXPECT().CommitOps(mock.Anything, testRoot, mock.Anything, mock.Anything, mock.Anything).Return(50, nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "alice", Path: f.dir})

	require.NoError(t, err)
	f.prompter.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestDeleteBranch_BlockedBySwitchedDescendant(t *testing.T) {
	f := deleteFixture(t)
	lib := filepath.Join(f.dir, "lib")
	f.repo.EXPECT().Status(mock.Anything, f.dir, mock.Anything).
		Return([]domain.StatusEntry{{Item: domain.StatusNormal, Switched: true, Path: lib}}, nil)
	f.repo.EXPECT().Info(mock.Anything, lib).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        lib,
		RepoRootURL: testRoot,
		URL:         testRoot + "/proj/branches/users/alice/lib",
	}, nil)
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "alice", Path: f.dir})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PreconditionError))
	assert.Contains(t, err.Error(), lib)
}

func TestDeleteBranch_BlockedByRegisteredWorkspace(t *testing.T) {
	f := deleteFixture(t)
	f.clean()
	other := t.TempDir()
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return([]domain.WorkspaceRecord{
		{Path: other, RepoRootURL: testRoot, BranchPath: "/proj/branches/users/alice"},
		{Path: "/elsewhere", RepoRootURL: "file:///another/repo"},
	}, nil)
	f.repo.EXPECT().Info(mock.Anything, other).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        other,
		RepoRootURL: testRoot,
		URL:         testRoot + "/proj/branches/users/alice",
	}, nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "alice", Path: f.dir})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PreconditionError))
	assert.Contains(t, err.Error(), other)
}

func TestDeleteBranch_ForgetsVanishedWorkspaces(t *testing.T) {
	f := deleteFixture(t)
	f.clean()
	vanished := filepath.Join(t.TempDir(), "removed")
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return([]domain.WorkspaceRecord{
		{Path: vanished, RepoRootURL: testRoot, BranchPath: "/proj/branches/users/alice"},
	}, nil)
	f.repo.EXPECT().Info(mock.Anything, vanished).Return(nil, domain.ErrNotWorkingCopy)
	f.store.EXPECT().Forget(mock.Anything, vanished).Return(nil)
	f.repo.EXPECT().CommitOps(mock.Anything, testRoot, mock.Anything, mock.Anything, mock.Anything).Return(50, nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "alice", Path: f.dir})

	require.NoError(t, err)
}

func TestDeleteBranch_WorkspaceOnTheBranchItself(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20), 25)
	f.tree(map[string]domain.NodeKind{
		"/proj/branches/users/alice": domain.NodeDir,
	})
	f.clean()
	f.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "alice", Path: f.dir})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PreconditionError))
}

func TestDeleteBranch_MissingBranch(t *testing.T) {
	f := deleteFixture(t)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Name: "bob", Path: f.dir})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.NotFound))
	assert.True(t, errors.Is(err, domain.ErrBranchNotFound))
}

func TestDeleteBranch_RefusesNonUserMetadata(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)
	f.tree(map[string]domain.NodeKind{
		"/proj/branches/users/rel":            domain.NodeDir,
		"/proj/branches/users/rel/.svnbranch": domain.NodeFile,
	})
	// A release branch copied into the user area by hand
	release := testBranch(domain.ReleaseBranch, "rel", "/proj/trunk", 10, 10)
	release.BranchPath = "/proj/branches/users/rel"
	f.repo.EXPECT().GetProperties(mock.Anything, testRoot+"/proj/branches/users/rel/.svnbranch", domain.RevisionHead).
		Return(domain.EncodeMetadata(release), nil)

	_, err := f.service.DeleteBranch(context.Background(), DeleteBranchParams{Force: true, Name: "rel", Path: f.dir})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.PreconditionError))
}
