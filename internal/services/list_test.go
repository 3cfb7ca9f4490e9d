package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
)

func TestListBranches_ReadsMetadataOfEveryBranch(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)
	f.tree(map[string]domain.NodeKind{
		"/proj/branches/users":                  domain.NodeDir,
		"/proj/branches/users/alice/.svnbranch": domain.NodeFile,
		"/proj/branches/users/bob/.svnbranch":   domain.NodeFile,
	})
	f.repo.EXPECT().List(mock.Anything, testRoot+"/proj/branches/users", domain.RevisionHead).Return([]domain.DirEntry{
		{Kind: domain.NodeDir, Name: "bob"},
		{Kind: domain.NodeFile, Name: "README"},
		{Kind: domain.NodeDir, Name: "alice"},
		{Kind: domain.NodeDir, Name: "scratch"},
	}, nil)
	f.repo.EXPECT().GetProperties(mock.Anything, testRoot+"/proj/branches/users/alice/.svnbranch", domain.RevisionHead).
		Return(domain.EncodeMetadata(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20)), nil)
	f.repo.EXPECT().GetProperties(mock.Anything, testRoot+"/proj/branches/users/bob/.svnbranch", domain.RevisionHead).
		Return(nil, errors.New("access denied"))

	branches, err := f.service.ListBranches(context.Background(), f.dir, domain.UserBranch)

	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, "alice", branches[0].Name)
	require.NotNil(t, branches[0].Metadata)
	assert.Equal(t, "/proj/trunk", branches[0].Metadata.SourcePath)
	assert.Empty(t, branches[0].Problem)

	assert.Equal(t, "bob", branches[1].Name)
	assert.Nil(t, branches[1].Metadata)
	assert.Contains(t, branches[1].Problem, "access denied")

	assert.Equal(t, "scratch", branches[2].Name)
	assert.Equal(t, "no branch metadata", branches[2].Problem)
}

func TestListBranches_MissingCategory(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)
	f.tree(map[string]domain.NodeKind{})

	branches, err := f.service.ListBranches(context.Background(), f.dir, domain.ReleaseBranch)

	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestListBranches_TrunkIsNotACategory(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.service.ListBranches(context.Background(), f.dir, domain.Trunk)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ArgumentError))
}

func TestListWorkingCopyInfo(t *testing.T) {
	f := newFixture(t, nil)
	meta := testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20)
	meta.SourceSubpath = "lib"
	f.checkout(meta, 25)

	info, err := f.service.ListWorkingCopyInfo(context.Background(), f.dir)

	require.NoError(t, err)
	assert.Equal(t, "alice", info.BranchName)
	assert.Equal(t, domain.UserBranch, info.BranchType)
	assert.Equal(t, "proj", info.ProjectName)
	assert.Equal(t, "/proj/trunk/lib", info.Source)
	assert.Equal(t, "", info.BranchSubpath)
	assert.Equal(t, domain.Revision(10), *info.BranchPointRevision)
	assert.Equal(t, domain.Revision(20), *info.LastMergeRevision)
}

func TestListWorkingCopyInfo_Trunk(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)

	info, err := f.service.ListWorkingCopyInfo(context.Background(), f.dir)

	require.NoError(t, err)
	assert.Equal(t, "trunk", info.BranchName)
	assert.Empty(t, info.Source)
	assert.Nil(t, info.BranchPointRevision)
}

func TestHistory(t *testing.T) {
	f := newFixture(t, nil)
	f.store.EXPECT().Recent(mock.Anything, 5).Return([]domain.OperationRecord{{Operation: "promote"}}, nil)

	records, err := f.service.History(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "promote", records[0].Operation)
}
