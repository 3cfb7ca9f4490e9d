package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"svnbranch/internal/config"
	"svnbranch/internal/domain"
	portsmocks "svnbranch/internal/ports/mocks"
)

const testRoot = "file:///srv/svn/repo"

func testTrunk() *domain.BranchMetadata {
	return &domain.BranchMetadata{
		BranchPath:          "/proj/trunk",
		BranchType:          domain.Trunk,
		ProjectName:         "proj",
		ProjectRoot:         "/proj",
		ReleaseBranchesPath: "/proj/branches/releases",
		TrunkPath:           "/proj/trunk",
		UserBranchesPath:    "/proj/branches/users",
	}
}

func testBranch(kind domain.BranchType, name, source string, branchPoint, lastMerge domain.Revision) *domain.BranchMetadata {
	meta := testTrunk()
	meta.BranchType = kind
	meta.BranchPath = meta.BranchPathFor(kind, name)
	meta.SourcePath = source
	meta.BranchPointRevision = domain.RevisionPtr(branchPoint)
	meta.LastMergeRevision = domain.RevisionPtr(lastMerge)
	return meta
}

type fixture struct {
	dir      string
	prompter *portsmocks.MockPrompter
	repo     *portsmocks.MockRepository
	service  *BranchService
	store    *portsmocks.MockStateStore
}

func newFixture(t *testing.T, policy *config.Policy) *fixture {
	t.Helper()

	repo := portsmocks.NewMockRepository(t)
	store := portsmocks.NewMockStateStore(t)
	prompter := portsmocks.NewMockPrompter(t)

	store.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Maybe()
	store.EXPECT().Register(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &fixture{
		dir:      t.TempDir(),
		prompter: prompter,
		repo:     repo,
		service:  NewBranchService(repo, store, NewPolicyGate(policy, "1.4.0"), prompter),
		store:    store,
	}
}

func (f *fixture) metaFile() string {
	return filepath.Join(f.dir, domain.MetadataFileName)
}

// checkout makes the fixture directory a working-copy root on meta's branch, metadata file included
func (f *fixture) checkout(meta *domain.BranchMetadata, rev domain.Revision) {
	f.repo.EXPECT().Info(mock.Anything, f.dir).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeDir,
		Path:        f.dir,
		RepoRootURL: testRoot,
		Revision:    rev,
		URL:         testRoot + meta.BranchPath,
		WCRoot:      f.dir,
	}, nil).Maybe()
	f.repo.EXPECT().Info(mock.Anything, f.metaFile()).Return(&domain.WorkingCopyInfo{
		Kind:        domain.NodeFile,
		Path:        f.metaFile(),
		RepoRootURL: testRoot,
		Revision:    rev,
		URL:         testRoot + domain.JoinRepoPath(meta.BranchPath, domain.MetadataFileName),
		WCRoot:      f.dir,
	}, nil).Maybe()
	// Encoded per call so tests can model local metadata edits
	f.repo.EXPECT().GetProperties(mock.Anything, f.metaFile(), domain.RevisionWorking).RunAndReturn(
		func(context.Context, string, domain.Revision) (map[string]string, error) {
			return domain.EncodeMetadata(meta), nil
		}).Maybe()
}

// tree answers CheckPath from a map of repository paths; anything else does not exist
func (f *fixture) tree(kinds map[string]domain.NodeKind) {
	f.repo.EXPECT().CheckPath(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, url string, _ domain.Revision) (domain.NodeKind, error) {
			return kinds[strings.TrimPrefix(url, testRoot)], nil
		}).Maybe()
}

// clean reports an unmodified working copy for every status walk
func (f *fixture) clean() {
	f.repo.EXPECT().Status(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
}
