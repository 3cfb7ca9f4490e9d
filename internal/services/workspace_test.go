package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
	portsmocks "svnbranch/internal/ports/mocks"
)

func TestResolve_LocalMetadataAtRoot(t *testing.T) {
	f := newFixture(t, nil)
	meta := testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 12)
	f.checkout(meta, 15)

	ws, err := f.service.Resolve(context.Background(), f.dir)

	require.NoError(t, err)
	assert.Equal(t, f.dir, ws.Root)
	assert.Equal(t, "", ws.RootOffset)
	assert.Equal(t, f.metaFile(), ws.MetadataPath)
	assert.Equal(t, "/proj/branches/users/alice", ws.Metadata.BranchPath)
	assert.Equal(t, domain.Revision(12), *ws.Metadata.LastMergeRevision)
	assert.Equal(t, "/proj/trunk", ws.SourceRepoPath())
}

func TestResolve_WalksUpFromSubdirectory(t *testing.T) {
	f := newFixture(t, nil)
	meta := testTrunk()
	f.checkout(meta, 7)

	sub := filepath.Join(f.dir, "src", "text")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	f.repo.EXPECT().Info(mock.Anything, sub).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        sub,
		RepoRootURL: testRoot,
		Revision:    7,
		URL:         testRoot + "/proj/trunk/src/text",
		WCRoot:      f.dir,
	}, nil)
	for _, dir := range []string{sub, filepath.Dir(sub)} {
		f.repo.EXPECT().Info(mock.Anything, filepath.Join(dir, domain.MetadataFileName)).
			Return(nil, domain.E(domain.NotFound, domain.ErrNotWorkingCopy))
	}

	ws, err := f.service.Resolve(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, f.dir, ws.Root)
	assert.Equal(t, domain.Trunk, ws.Metadata.BranchType)
}

func TestResolve_RemoteAncestorOfSubBranchCheckout(t *testing.T) {
	f := newFixture(t, nil)
	meta := testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 10)

	f.repo.EXPECT().Info(mock.Anything, f.dir).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        f.dir,
		RepoRootURL: testRoot,
		Revision:    11,
		URL:         testRoot + "/proj/branches/users/alice/lib",
		WCRoot:      f.dir,
	}, nil)
	f.repo.EXPECT().Info(mock.Anything, f.metaFile()).Return(nil, domain.ErrNotWorkingCopy)
	f.repo.EXPECT().CheckPath(mock.Anything, testRoot+"/proj/branches/users/alice/lib/.svnbranch", domain.Revision(11)).
		Return(domain.NodeNone, nil)
	f.repo.EXPECT().CheckPath(mock.Anything, testRoot+"/proj/branches/users/alice/.svnbranch", domain.Revision(11)).
		Return(domain.NodeFile, nil)
	f.repo.EXPECT().GetProperties(mock.Anything, testRoot+"/proj/branches/users/alice/.svnbranch", domain.Revision(11)).
		Return(domain.EncodeMetadata(meta), nil)

	ws, err := f.service.Resolve(context.Background(), f.dir)

	require.NoError(t, err)
	assert.Equal(t, "lib", ws.RootOffset)
	assert.Equal(t, "", ws.MetadataPath)
	assert.Equal(t, "/proj/branches/users/alice/lib", ws.RootRepoPath())
	assert.Equal(t, "/proj/trunk/lib", ws.SourceRepoPath())
	_, ok := ws.LocalMetadataPath()
	assert.False(t, ok)
}

func TestResolve_MetadataForAnotherLocationIsIntegrityError(t *testing.T) {
	f := newFixture(t, nil)
	meta := testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 10)

	// The working copy root is a plain copy of alice that kept alice's metadata
	f.repo.EXPECT().Info(mock.Anything, f.dir).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        f.dir,
		RepoRootURL: testRoot,
		Revision:    15,
		URL:         testRoot + "/proj/branches/users/bob",
		WCRoot:      f.dir,
	}, nil)
	f.repo.EXPECT().Info(mock.Anything, f.metaFile()).Return(&domain.WorkingCopyInfo{
		Kind: domain.NodeFile,
		Path: f.metaFile(),
	}, nil)
	f.repo.EXPECT().GetProperties(mock.Anything, f.metaFile(), domain.RevisionWorking).
		Return(domain.EncodeMetadata(meta), nil)

	_, err := f.service.Resolve(context.Background(), f.dir)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.IntegrityError))
	assert.Contains(t, err.Error(), "/proj/branches/users/alice")
}

func TestResolve_NoMetadataAnywhere(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	dir := t.TempDir()

	repo.EXPECT().Info(mock.Anything, dir).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        dir,
		RepoRootURL: testRoot,
		Revision:    3,
		URL:         testRoot + "/unmanaged",
		WCRoot:      dir,
	}, nil)
	repo.EXPECT().Info(mock.Anything, filepath.Join(dir, domain.MetadataFileName)).Return(nil, domain.ErrNotWorkingCopy)
	repo.EXPECT().CheckPath(mock.Anything, mock.Anything, domain.Revision(3)).Return(domain.NodeNone, nil).Times(2)

	_, err := NewWorkspaceResolver(repo).Resolve(context.Background(), dir)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.NotFound))
	assert.True(t, errors.Is(err, domain.ErrMetadataNotFound))
}

func TestResolve_NotAWorkingCopy(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().Info(mock.Anything, "/tmp/elsewhere").
		Return(nil, domain.E(domain.Op("svn.info"), domain.NotFound, domain.ErrNotWorkingCopy))

	_, err := NewWorkspaceResolver(repo).Resolve(context.Background(), "/tmp/elsewhere")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotWorkingCopy))
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		target  string
		want    string
		wantErr bool
	}{
		{"same directory", "/wc", "/wc", "", false},
		{"nested file", "/wc", "/wc/src/a.txt", "src/a.txt", false},
		{"outside", "/wc", "/other/a.txt", "", true},
		{"parent", "/wc/sub", "/wc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := relativeTo(tt.root, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

