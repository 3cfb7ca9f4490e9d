package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

const (
	mergeInfoProp = "svn:mergeinfo"

	// Revision properties set on promote commits
	RevPropPromotedFrom     = "svnbranch:promoted-from"
	RevPropPromotedRevision = "svnbranch:promoted-revision"
)

// Promote merges the branch into its source, commits the source and leaves the working copy on the source.
// Uncommitted edits in the branch working copy are carried along and promoted in the same commit.
func (s *BranchService) Promote(ctx context.Context, params PromoteParams) (result *PromoteResult, err error) {
	const op domain.Op = "promote"

	rec := domain.OperationRecord{Operation: string(op), Message: params.Message}
	defer func() {
		if result != nil {
			rec.BranchPath = result.BranchPath
			rec.Revision = result.Revision
			rec.SourcePath = result.SourcePath
		}
		s.record(ctx, rec, err)
	}()

	ws, err := s.resolver.Resolve(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root
	meta := ws.Metadata
	if !meta.HasSource() {
		return nil, domain.E(op, domain.PathArg(meta.BranchPath), domain.PreconditionError, domain.ErrNoSource)
	}
	if params.Message == "" {
		return nil, domain.E(op, domain.ArgumentError, "a log message is required")
	}

	// Policy before status: both run before any mutation
	warnings, err := s.gate.Check(meta, params.Message)
	if err != nil {
		return nil, err
	}

	report, err := s.inspect(ctx, ws.Root, false)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root), err)
	}
	if len(report.switched) > 0 {
		return nil, domain.E(op, domain.PathArg(ws.Root), domain.PreconditionError,
			fmt.Errorf("%s is switched to a different branch; switch it back to %s before promoting",
				listPaths(report.switched), meta.BranchPath))
	}
	if len(report.replaced) > 0 {
		return nil, domain.E(op, domain.PathArg(ws.Root), domain.PreconditionError,
			fmt.Errorf("replaced paths lose history and cannot be promoted: %s", listPaths(report.replaced)))
	}
	if len(report.conflicted) > 0 {
		return nil, domain.E(op, domain.PathArg(ws.Root), domain.PreconditionError,
			fmt.Errorf("working copy has conflicts: %s", listPaths(report.conflicted)))
	}
	// The merge below diffs against the committed branch, so the merge point must be committed too
	if metaFile, ok := ws.LocalMetadataPath(); ok && containsPath(report.propsEdits, metaFile) {
		return nil, domain.E(op, domain.PathArg(metaFile), domain.PreconditionError,
			fmt.Errorf("%s has uncommitted metadata changes, usually from synchronize; commit them to %s before promoting",
				metaFile, meta.BranchPath))
	}

	branchPath := ws.RootRepoPath()
	sourcePath := ws.SourceRepoPath()
	lastMerge := *meta.LastMergeRevision

	head, err := s.repo.LatestRevision(ctx, ws.URL(sourcePath))
	if err != nil {
		return nil, domain.E(op, domain.PathArg(sourcePath), err)
	}
	result = &PromoteResult{
		BranchPath:     meta.BranchPath,
		SourcePath:     sourcePath,
		SourceRevision: head,
		Warnings:       warnings,
	}

	// Uncommitted metadata edits belong to the branch, never to the source
	metaFile, hasMetaFile := ws.LocalMetadataPath()
	if hasMetaFile {
		if err := s.repo.Revert(ctx, []string{metaFile}, domain.DepthEmpty); err != nil {
			return nil, domain.E(op, domain.PathArg(metaFile), err)
		}
	}

	logging.Logger.Info("Switching to source", "root", ws.Root, "source", sourcePath, "revision", head)
	if err := s.repo.Switch(ctx, ws.Root, ws.URL(sourcePath), head); err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root),
			fmt.Errorf("failed to switch %s to %s@%d: %w", ws.Root, sourcePath, head, err))
	}
	if err := s.requireNoConflicts(ctx, op, ws.Root, "switching to "+sourcePath); err != nil {
		return nil, err
	}

	merge, err := s.repo.Merge(ctx, ws.Root, domain.MergeRequest{
		Depth:        domain.DepthInfinity,
		FromRevision: lastMerge,
		FromURL:      ws.URL(sourcePath),
		ToRevision:   head,
		ToURL:        ws.URL(branchPath),
	})
	if err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root),
			fmt.Errorf("failed to merge %s@%d into %s@%d: %w", branchPath, head, sourcePath, head, err))
	}
	if n := merge.ConflictCount(); n > 0 {
		return nil, domain.E(op, domain.PathArg(ws.Root), domain.ConflictError,
			fmt.Errorf("%d conflicts merging %s into %s; %s is left on %s for manual resolution",
				n, branchPath, sourcePath, ws.Root, sourcePath))
	}

	if err := s.discardMetadataChanges(ctx, ws, sourcePath, head); err != nil {
		return nil, domain.E(op, err)
	}

	if s.gate.ProjectPolicy(meta).StripMergeInfo {
		stripped, err := s.stripMergeInfo(ctx, ws.Root)
		if err != nil {
			return nil, domain.E(op, domain.PathArg(ws.Root), err)
		}
		result.StrippedMergeInfo = stripped
	}

	if err := s.classify(ctx, ws, result); err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root), err)
	}
	rootPropsChanged, err := s.rootPropertiesChanged(ctx, ws.Root, ws.URL(sourcePath), head)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root), err)
	}

	if len(result.Added)+len(result.Modified)+len(result.Deleted) == 0 && !rootPropsChanged {
		logging.Logger.Info("Nothing to promote", "branch", meta.BranchPath)
		if err := s.repo.Revert(ctx, []string{ws.Root}, domain.DepthInfinity); err != nil {
			return nil, domain.E(op, domain.PathArg(ws.Root), err)
		}
		result.NothingToPromote = true
		s.track(ctx, ws.Root, ws.RepoRootURL, sourcePath)
		return result, nil
	}

	revision, err := s.repo.Commit(ctx, []string{ws.Root}, params.Message, map[string]string{
		RevPropPromotedFrom:     meta.BranchPath,
		RevPropPromotedRevision: head.String(),
	})
	if err != nil {
		return nil, domain.E(op, domain.PathArg(sourcePath),
			fmt.Errorf("failed to commit %s into %s: %w", branchPath, sourcePath, err))
	}
	result.Revision = revision
	if revision == 0 {
		result.NothingToPromote = true
	}
	logging.Logger.Info("Promoted", "branch", meta.BranchPath, "source", sourcePath, "revision", revision)

	if err := s.repo.Switch(ctx, ws.Root, ws.URL(sourcePath), domain.RevisionHead); err != nil {
		return result, domain.E(op, domain.PathArg(ws.Root), err)
	}
	s.track(ctx, ws.Root, ws.RepoRootURL, sourcePath)
	return result, nil
}

// requireNoConflicts fails with a ConflictError when a working-copy step left conflicts
func (s *BranchService) requireNoConflicts(ctx context.Context, op domain.Op, root, step string) error {
	report, err := s.inspect(ctx, root, false)
	if err != nil {
		return domain.E(op, domain.PathArg(root), err)
	}
	if n := len(report.conflicted); n > 0 {
		return domain.E(op, domain.PathArg(root), domain.ConflictError,
			fmt.Errorf("%d conflicts after %s: %s", n, step, listPaths(report.conflicted)))
	}
	return nil
}

// discardMetadataChanges reverts what the merge did to the metadata file.
// Sub-branches carry a metadata file their source does not have; its local copy is removed.
func (s *BranchService) discardMetadataChanges(ctx context.Context, ws *Workspace, sourcePath string, rev domain.Revision) error {
	if ws.RootOffset != "" {
		return nil
	}
	metaFile := joinLocal(ws.Root, domain.MetadataFileName)
	if err := s.repo.Revert(ctx, []string{metaFile}, domain.DepthEmpty); err != nil {
		return domain.E(domain.PathArg(metaFile), err)
	}
	kind, err := s.repo.CheckPath(ctx, ws.URL(domain.JoinRepoPath(sourcePath, domain.MetadataFileName)), rev)
	if err != nil {
		return err
	}
	if kind == domain.NodeNone {
		if err := os.Remove(metaFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", metaFile, err)
		}
	}
	return nil
}

// stripMergeInfo deletes the top-level merge tracking property when present
func (s *BranchService) stripMergeInfo(ctx context.Context, root string) (bool, error) {
	props, err := s.repo.GetProperties(ctx, root, domain.RevisionWorking)
	if err != nil {
		return false, err
	}
	if _, ok := props[mergeInfoProp]; !ok {
		return false, nil
	}
	if err := s.repo.DeleteProperty(ctx, root, mergeInfoProp); err != nil {
		return false, err
	}
	logging.Logger.Info("Stripped merge info", "root", root)
	return true, nil
}

// classify fills the added/modified/deleted lists from a status walk, ignoring the metadata file and root properties
func (s *BranchService) classify(ctx context.Context, ws *Workspace, result *PromoteResult) error {
	entries, err := s.repo.Status(ctx, ws.Root, domain.StatusOptions{Depth: domain.DepthInfinity, IgnoreExternals: true})
	if err != nil {
		return err
	}
	metaFile := joinLocal(ws.Root, domain.MetadataFileName)
	for _, e := range entries {
		if samePath(e.Path, metaFile) {
			continue
		}
		switch e.Item {
		case domain.StatusAdded, domain.StatusReplaced:
			result.Added = append(result.Added, e.Path)
		case domain.StatusDeleted:
			result.Deleted = append(result.Deleted, e.Path)
		case domain.StatusModified:
			result.Modified = append(result.Modified, e.Path)
		default:
			if e.Props == domain.StatusModified && !samePath(e.Path, ws.Root) {
				result.Modified = append(result.Modified, e.Path)
			}
		}
	}
	return nil
}

// rootPropertiesChanged compares the root's working properties with the source, ignoring merge tracking
func (s *BranchService) rootPropertiesChanged(ctx context.Context, root, sourceURL string, rev domain.Revision) (bool, error) {
	local, err := s.repo.GetProperties(ctx, root, domain.RevisionWorking)
	if err != nil {
		return false, err
	}
	remote, err := s.repo.GetProperties(ctx, sourceURL, rev)
	if err != nil {
		return false, err
	}
	local, remote = maps.Clone(local), maps.Clone(remote)
	delete(local, mergeInfoProp)
	delete(remote, mergeInfoProp)
	return !maps.Equal(local, remote), nil
}
