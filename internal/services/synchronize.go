package services

import (
	"context"
	"fmt"
	"path/filepath"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// Synchronize merges the source changes made after the last merge revision into the working copy.
// Nothing is committed. On a clean merge the local metadata records the merged-through revision;
// conflicts are left in place and reported with a ConflictError next to the result.
func (s *BranchService) Synchronize(ctx context.Context, path string) (result *SynchronizeResult, err error) {
	const op domain.Op = "synchronize"

	rec := domain.OperationRecord{Operation: string(op)}
	defer func() {
		if result != nil {
			rec.BranchPath = result.BranchPath
			rec.Revision = result.ToRevision
			rec.SourcePath = result.SourcePath
		}
		s.record(ctx, rec, err)
	}()

	ws, err := s.resolver.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root
	meta := ws.Metadata
	if !meta.HasSource() {
		return nil, domain.E(op, domain.PathArg(meta.BranchPath), domain.PreconditionError, domain.ErrNoSource)
	}
	s.track(ctx, ws.Root, ws.RepoRootURL, ws.RootRepoPath())

	lastMerge := *meta.LastMergeRevision
	sourcePath := ws.SourceRepoPath()
	sourceURL := ws.URL(sourcePath)

	head, err := s.repo.LatestRevision(ctx, sourceURL)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(sourcePath), err)
	}
	lastChanged, err := s.repo.LastChangedRevision(ctx, sourceURL, head)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(sourcePath), err)
	}

	result = &SynchronizeResult{
		BranchPath:   meta.BranchPath,
		FromRevision: lastMerge,
		SourcePath:   sourcePath,
		ToRevision:   lastMerge,
	}
	if lastChanged <= lastMerge {
		logging.Logger.Info("Branch is up to date", "branch", meta.BranchPath, "last_merge", lastMerge, "source_changed", lastChanged)
		result.UpToDate = true
		return result, nil
	}

	merge, err := s.repo.Merge(ctx, ws.Root, domain.MergeRequest{
		Depth:        domain.DepthInfinity,
		FromRevision: lastMerge,
		FromURL:      sourceURL,
		ToRevision:   head,
		ToURL:        sourceURL,
	})
	if err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root),
			fmt.Errorf("failed to merge %s r%d:%d: %w", sourcePath, lastMerge, head, err))
	}

	result.ToRevision = head
	result.Added = merge.Paths(domain.MergeAdded)
	result.Conflicted = merge.Paths(domain.MergeConflicted)
	result.Deleted = merge.Paths(domain.MergeDeleted)
	result.Modified = merge.Paths(domain.MergeModified)
	result.PropConflicted = merge.Paths(domain.MergePropConflicted)
	result.PropertyChanged = merge.Paths(domain.MergePropertyChanged)
	result.Skipped = merge.Paths(domain.MergeSkipped)
	result.TreeConflicted = merge.Paths(domain.MergeTreeConflicted)

	for _, p := range append(append([]string{}, result.Conflicted...), result.PropConflicted...) {
		if filepath.Base(p) == domain.MetadataFileName {
			result.MetadataConflict = true
		}
	}

	result.SkippedChanged = s.skippedWithChanges(ctx, ws, result.Skipped, sourcePath, lastMerge, head)

	if n := result.ConflictCount(); n > 0 {
		logging.Logger.Warn("Synchronize left conflicts", "branch", meta.BranchPath, "conflicts", n)
		return result, domain.E(op, domain.PathArg(ws.Root), domain.ConflictError,
			fmt.Errorf("%d conflicts merging %s r%d:%d; resolve them before committing", n, sourcePath, lastMerge, head))
	}

	metaFile, ok := ws.LocalMetadataPath()
	if !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"the root of %s is not part of this working copy; last merge revision stays at r%d", meta.BranchPath, lastMerge))
		return result, nil
	}
	if err := s.repo.SetProperty(ctx, metaFile, domain.PropLastMergeRevision, head.String()); err != nil {
		return result, domain.E(op, domain.PathArg(metaFile), err)
	}
	logging.Logger.Info("Synchronized", "branch", meta.BranchPath, "from", lastMerge, "to", head)
	return result, nil
}

// skippedWithChanges returns the skipped merge targets whose source counterpart changed in (from, to]
func (s *BranchService) skippedWithChanges(ctx context.Context, ws *Workspace, skipped []string,
	sourcePath string, from, to domain.Revision) []string {
	var changed []string
	for _, p := range skipped {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(ws.Root, p)
		}
		rel, err := relativeTo(ws.Root, abs)
		if err != nil {
			changed = append(changed, p)
			continue
		}
		url := ws.URL(domain.JoinRepoPath(sourcePath, rel))
		last, err := s.repo.LastChangedRevision(ctx, url, to)
		if err != nil {
			// Gone from the source at the merged revision: a deletion is a real change too
			logging.Logger.Debug("Skipped path not in source", "path", p, "error", err)
			changed = append(changed, p)
			continue
		}
		if last > from {
			changed = append(changed, p)
		}
	}
	return changed
}
