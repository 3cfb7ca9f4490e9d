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

func TestSynchronize_TrunkHasNoSource(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testTrunk(), 40)

	_, err := f.service.Synchronize(context.Background(), f.dir)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSource))
	assert.True(t, domain.IsKind(err, domain.PreconditionError))
}

func TestSynchronize_UpToDateIsNoOp(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20), 25)
	f.repo.EXPECT().LatestRevision(mock.Anything, testRoot+"/proj/trunk").Return(25, nil)
	// Later revisions touched other branches only
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk", domain.Revision(25)).Return(20, nil)

	result, err := f.service.Synchronize(context.Background(), f.dir)

	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.Equal(t, domain.Revision(20), result.ToRevision)
	f.repo.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything, mock.Anything)
}

func TestSynchronize_MergesRangeAndRecordsLastMerge(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20), 25)
	f.repo.EXPECT().LatestRevision(mock.Anything, testRoot+"/proj/trunk").Return(30, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk", domain.Revision(30)).Return(28, nil)
	f.repo.EXPECT().Merge(mock.Anything, f.dir, domain.MergeRequest{
		Depth:        domain.DepthInfinity,
		FromRevision: 20,
		FromURL:      testRoot + "/proj/trunk",
		ToRevision:   30,
		ToURL:        testRoot + "/proj/trunk",
	}).Return(&domain.MergeResult{Entries: []domain.MergeEntry{
		{Outcome: domain.MergeModified, Path: filepath.Join(f.dir, "a.txt")},
		{Outcome: domain.MergeAdded, Path: filepath.Join(f.dir, "b.txt")},
		{Outcome: domain.MergePropertyChanged, Path: f.dir},
	}}, nil)
	f.repo.EXPECT().SetProperty(mock.Anything, f.metaFile(), domain.PropLastMergeRevision, "30").Return(nil)

	result, err := f.service.Synchronize(context.Background(), f.dir)

	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, domain.Revision(20), result.FromRevision)
	assert.Equal(t, domain.Revision(30), result.ToRevision)
	assert.Equal(t, []string{filepath.Join(f.dir, "a.txt")}, result.Modified)
	assert.Equal(t, []string{filepath.Join(f.dir, "b.txt")}, result.Added)
	assert.Equal(t, []string{f.dir}, result.PropertyChanged)
}

func TestSynchronize_SkippedPathsWithSourceChanges(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20), 25)
	f.repo.EXPECT().LatestRevision(mock.Anything, testRoot+"/proj/trunk").Return(30, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk", domain.Revision(30)).Return(30, nil)
	f.repo.EXPECT().Merge(mock.Anything, f.dir, mock.Anything).Return(&domain.MergeResult{Entries: []domain.MergeEntry{
		{Outcome: domain.MergeSkipped, Path: filepath.Join(f.dir, "changed.txt")},
		{Outcome: domain.MergeSkipped, Path: filepath.Join(f.dir, "stale.txt")},
	}}, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk/changed.txt", domain.Revision(30)).Return(27, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk/stale.txt", domain.Revision(30)).Return(5, nil)
	f.repo.EXPECT().SetProperty(mock.Anything, f.metaFile(), domain.PropLastMergeRevision, "30").Return(nil)

	result, err := f.service.Synchronize(context.Background(), f.dir)

	require.NoError(t, err)
	assert.Len(t, result.Skipped, 2)
	assert.Equal(t, []string{filepath.Join(f.dir, "changed.txt")}, result.SkippedChanged)
}

func TestSynchronize_ConflictsAreReportedNotRecorded(t *testing.T) {
	f := newFixture(t, nil)
	f.checkout(testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20), 25)
	f.repo.EXPECT().LatestRevision(mock.Anything, testRoot+"/proj/trunk").Return(30, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk", domain.Revision(30)).Return(30, nil)
	f.repo.EXPECT().Merge(mock.Anything, f.dir, mock.Anything).Return(&domain.MergeResult{Entries: []domain.MergeEntry{
		{Outcome: domain.MergeConflicted, Path: filepath.Join(f.dir, "a.txt")},
		{Outcome: domain.MergePropConflicted, Path: f.metaFile()},
	}}, nil)

	result, err := f.service.Synchronize(context.Background(), f.dir)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ConflictError))
	require.NotNil(t, result)
	assert.Equal(t, 2, result.ConflictCount())
	assert.True(t, result.MetadataConflict)
	f.repo.AssertNotCalled(t, "SetProperty", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSynchronize_TwiceIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	meta := testBranch(domain.UserBranch, "alice", "/proj/trunk", 10, 20)

	// First run merges through r30
	f.checkout(meta, 25)
	f.repo.EXPECT().LatestRevision(mock.Anything, testRoot+"/proj/trunk").Return(30, nil)
	f.repo.EXPECT().LastChangedRevision(mock.Anything, testRoot+"/proj/trunk", domain.Revision(30)).Return(30, nil)
	f.repo.EXPECT().Merge(mock.Anything, f.dir, mock.Anything).Return(&domain.MergeResult{}, nil).Once()
	f.repo.EXPECT().SetProperty(mock.Anything, f.metaFile(), domain.PropLastMergeRevision, "30").
		Run(func(context.Context, string, string, string) {
			*meta.LastMergeRevision = 30
		}).
		Return(nil).Once()

	first, err := f.service.Synchronize(context.Background(), f.dir)
	require.NoError(t, err)
	assert.False(t, first.UpToDate)

	// The second run reads the recorded revision and has nothing left to merge
	second, err := f.service.Synchronize(context.Background(), f.dir)
	require.NoError(t, err)
	assert.True(t, second.UpToDate)
}
